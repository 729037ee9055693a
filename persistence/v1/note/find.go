package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/spsquad/sps-api/sys"
)

// ByAccount returns every note row owned by the account. Zero rows is a
// normal empty result, not an error.
func ByAccount(ctx context.Context, accountId uint64) ([]Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT note_id, account_id, title, url FROM tblNotes WHERE account_id = ?")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	rows, err := stmt.QueryContext(dbCtx, accountId)
	if err != nil {
		return nil, fmt.Errorf("failed to query find stmt: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var notes []Note
	for rows.Next() {
		var note Note
		if err := rows.Scan(&note.NoteId, &note.AccountId, &note.Title, &note.Url); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate find stmt: %w", err)
	}

	return notes, nil
}

// ById returns the note row with the given id, or a zero-value Note when
// no row matches.
func ById(ctx context.Context, noteId uint64) (Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT note_id, account_id, title, url FROM tblNotes WHERE note_id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}

	var note Note
	err = stmt.QueryRowContext(dbCtx, noteId).Scan(&note.NoteId, &note.AccountId, &note.Title, &note.Url)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, nil
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	default:
		return note, nil
	}
}
