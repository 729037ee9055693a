package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/spsquad/sps-api/sys"
)

// Exists reports whether an account row with the given id is present.
// A missing row is a normal false; only transport failures are errors.
func Exists(ctx context.Context, accountId uint64) (bool, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT account_id FROM tblAccount WHERE account_id = ?")
	if err != nil {
		return false, fmt.Errorf("failed to prepare exists stmt: %w", err)
	}

	var id uint64
	err = stmt.QueryRowContext(dbCtx, accountId).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to query exists stmt: %w", err)
	default:
		return true, nil
	}
}
