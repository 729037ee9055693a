package protocol

import (
	"context"

	"github.com/spsquad/sps-api/persistence/v1/protocol"
	"github.com/spsquad/sps-api/platform/apperr"
)

// List returns every stored emergency protocol. An empty table is
// NotFound, never an empty success.
func List(ctx context.Context) ([]Protocol, error) {
	records, err := protocol.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch protocols", err)
	}
	if len(records) == 0 {
		return nil, apperr.New(apperr.NotFound, "No protocols were found")
	}

	protocols := make([]Protocol, 0, len(records))
	for _, r := range records {
		protocols = append(protocols, Protocol(r))
	}
	return protocols, nil
}
