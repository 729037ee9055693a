package schema

import (
	"context"
	"errors"

	"github.com/spsquad/sps-api/sys"
)

func Create(ctx context.Context) error {
	db := sys.R.Database

	for _, s := range schemas {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return errors.New("create schema: " + err.Error())
		}
	}

	return nil
}
