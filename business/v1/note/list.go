package note

import (
	"context"

	"github.com/spsquad/sps-api/persistence/v1/account"
	"github.com/spsquad/sps-api/persistence/v1/note"
	"github.com/spsquad/sps-api/platform/apperr"
)

// List returns the note projections for an account. An unknown account,
// a failed query, and an account with zero notes all surface as NotFound.
func List(ctx context.Context, accountId uint64) ([]NoteFile, error) {
	exists, err := account.Exists(ctx, accountId)
	if err != nil || !exists {
		return nil, apperr.New(apperr.NotFound, "User account not found")
	}

	records, err := note.ByAccount(ctx, accountId)
	if err != nil || len(records) == 0 {
		return nil, apperr.New(apperr.NotFound, "No notes were found")
	}

	files := make([]NoteFile, 0, len(records))
	for _, r := range records {
		files = append(files, NoteFile{
			NoteId: r.NoteId,
			Title:  r.Title,
			Url:    r.Url,
		})
	}
	return files, nil
}
