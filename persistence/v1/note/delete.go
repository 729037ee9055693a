package note

import (
	"context"
	"fmt"

	"github.com/spsquad/sps-api/sys"
)

// Delete removes a note row.
func Delete(ctx context.Context, noteId uint64) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "DELETE FROM tblNotes WHERE note_id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	if _, err := stmt.ExecContext(dbCtx, noteId); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	return nil
}
