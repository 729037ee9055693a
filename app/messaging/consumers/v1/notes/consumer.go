package notes

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/spsquad/sps-api/business/v1/note"
	"github.com/spsquad/sps-api/sys"
	"gocloud.dev/pubsub"
)

// Consume pulls note events off the subscription and dispatches them to
// the note lifecycle, at most maxWorkers at a time. Queued creates go
// through the same account gating and blob-then-record sequence as the
// HTTP path. Malformed or unknown events are logged and acked.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		go func(m *pubsub.Message) {
			workers <- 1
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			var e note.Event
			if err := json.Unmarshal(m.Body, &e); err != nil {
				logger.Error("failed to parse body: ", err)
				return
			}

			switch e.Type {
			case "create":
				var c note.CreateEvent
				marshal, _ := json.Marshal(e.Data)
				_ = json.Unmarshal(marshal, &c)

				newN := note.NewNote{
					AccountId: c.AccountId,
					Title:     c.Title,
					Content:   strings.NewReader(c.Content),
				}
				if err := note.Create(ctx, newN); err != nil {
					logger.Errorf("failed to create note %+v: err: %s", e.Data, err)
				}
			default:
				logger.Error("unknown event type: ", e.Type)
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
