package schema

import (
	"context"
	"errors"

	"github.com/spsquad/sps-api/sys"
)

func Drop(ctx context.Context) error {
	db := sys.R.Database

	for _, s := range dropSchemas {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return errors.New("drop schema: " + err.Error())
		}
	}

	return nil
}
