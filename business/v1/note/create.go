package note

import (
	"context"

	"github.com/spsquad/sps-api/persistence/v1/account"
	"github.com/spsquad/sps-api/persistence/v1/file"
	"github.com/spsquad/sps-api/persistence/v1/note"
	"github.com/spsquad/sps-api/platform/apperr"
	"github.com/spsquad/sps-api/sys"
)

// Create mints a fresh blob identifier, writes the content, then inserts
// the metadata row. The blob is written first so a row is never visible
// while its content is missing; if the insert fails, the blob written here
// stays behind as an orphan and is not compensated.
func Create(ctx context.Context, newN NewNote) error {
	exists, err := account.Exists(ctx, newN.AccountId)
	if err != nil || !exists {
		return apperr.New(apperr.NotFound, "User account not found")
	}

	name := file.NewName()
	url := file.PublicURL(name)

	if err := sys.R.Files.Write(ctx, file.Key(url), newN.Content); err != nil {
		return apperr.Wrap(apperr.Internal, "Unable to save file", err)
	}

	if _, err := note.Insert(ctx, newN.AccountId, newN.Title, url); err != nil {
		return apperr.Wrap(apperr.Internal, "Unable to save file in database", err)
	}

	return nil
}
