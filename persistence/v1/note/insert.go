package note

import (
	"context"
	"fmt"

	"github.com/spsquad/sps-api/sys"
)

// Insert creates a note row and returns the generated note id.
func Insert(ctx context.Context, accountId uint64, title, url string) (uint64, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "INSERT INTO tblNotes (account_id, title, url) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	res, err := stmt.ExecContext(dbCtx, accountId, title, url)
	if err != nil {
		return 0, fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return uint64(id), nil
}
