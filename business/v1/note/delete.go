package note

import (
	"context"

	"github.com/spsquad/sps-api/persistence/v1/file"
	"github.com/spsquad/sps-api/persistence/v1/note"
	"github.com/spsquad/sps-api/platform/apperr"
	"github.com/spsquad/sps-api/sys"
)

// Delete removes the blob first, then the row. If the blob cannot be
// removed the row is left untouched; if the row delete fails the blob is
// already gone and the row dangles. Neither case is compensated.
func Delete(ctx context.Context, noteId uint64) error {
	record, err := note.ById(ctx, noteId)
	if err != nil || record.NoteId == 0 {
		return apperr.New(apperr.NotFound, "Note not found")
	}

	if err := sys.R.Files.Delete(ctx, file.Key(record.Url)); err != nil {
		return apperr.Wrap(apperr.Internal, "Unable to delete static file", err)
	}

	if err := note.Delete(ctx, noteId); err != nil {
		return apperr.Wrap(apperr.Internal, "Unable to remove file from database", err)
	}

	return nil
}
