package note

import (
	"context"
	"fmt"

	"github.com/spsquad/sps-api/sys"
)

// UpdateTitle replaces the title column of a note row. The url column is
// never touched after creation; content updates reuse the stored key.
func UpdateTitle(ctx context.Context, noteId uint64, title string) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "UPDATE tblNotes SET title = ? WHERE note_id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare update stmt: %w", err)
	}
	if _, err := stmt.ExecContext(dbCtx, title, noteId); err != nil {
		return fmt.Errorf("failed to exec update stmt: %w", err)
	}
	return nil
}
