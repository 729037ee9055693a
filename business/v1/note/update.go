package note

import (
	"context"
	"io"

	"github.com/spsquad/sps-api/persistence/v1/file"
	"github.com/spsquad/sps-api/persistence/v1/note"
	"github.com/spsquad/sps-api/platform/apperr"
	"github.com/spsquad/sps-api/sys"
)

// UpdateContent replaces the content behind a note's stored url. The
// sequence is delete-then-write on the same key: the record keeps its url
// and no new identifier is minted. The delete is unconditional, so a blob
// that is already missing fails the whole operation, and a crash between
// the two steps leaves the record pointing at nothing.
func UpdateContent(ctx context.Context, noteId uint64, content io.Reader) error {
	record, err := note.ById(ctx, noteId)
	if err != nil || record.NoteId == 0 {
		return apperr.New(apperr.NotFound, "Note not found")
	}

	key := file.Key(record.Url)

	if err := sys.R.Files.Delete(ctx, key); err != nil {
		return apperr.Wrap(apperr.Internal, "Unable to update static file", err)
	}
	if err := sys.R.Files.Write(ctx, key, content); err != nil {
		return apperr.Wrap(apperr.Internal, "Unable to update static file", err)
	}

	return nil
}

// UpdateTitle runs the same content replacement as UpdateContent and then
// updates the title column. A failed title update leaves the content
// already replaced.
func UpdateTitle(ctx context.Context, noteId uint64, title string, content io.Reader) error {
	if err := UpdateContent(ctx, noteId, content); err != nil {
		return err
	}

	if err := note.UpdateTitle(ctx, noteId, title); err != nil {
		return apperr.Wrap(apperr.Internal, "Failed to update the notes title", err)
	}

	return nil
}
