package sender

import (
	"context"
	"log"
	"time"

	"ClientCourier/internal/model"
)

// Outcome is the terminal result for one recipient. There are no
// retries: a failed send stays failed for this run. Skipped marks
// recipients never attempted because the run was cancelled.
type Outcome struct {
	Recipient string
	Segments  int
	Err       error
	Skipped   bool
}

// Driver walks a composed batch in first-seen order and submits each
// message with a pacing gap, so a large client book does not trip the
// channel's abuse detection.
type Driver struct {
	Channel   Channel
	ReadyWait time.Duration // wait before the first send
	Pace      time.Duration // gap between consecutive sends
}

func NewDriver(ch Channel, readyWait, pace time.Duration) *Driver {
	return &Driver{Channel: ch, ReadyWait: readyWait, Pace: pace}
}

// Deliver returns one Outcome per recipient in the batch. A failed
// submission is reported and the loop continues; cancelling ctx stops
// the run at the next pacing gap, and the unattempted remainder comes
// back as skipped outcomes so the caller's counts stay complete.
func (d *Driver) Deliver(ctx context.Context, batch *model.Batch) []Outcome {
	msgs := batch.Messages()
	outcomes := make([]Outcome, 0, len(msgs))

	for i, msg := range msgs {
		wait := d.Pace
		if i == 0 {
			wait = d.ReadyWait
		}
		if wait > 0 {
			select {
			case <-ctx.Done():
				log.Printf("[WARN] delivery cancelled after %d of %d messages", i, len(msgs))
				for _, rest := range msgs[i:] {
					outcomes = append(outcomes, Outcome{
						Recipient: rest.Recipient,
						Segments:  len(rest.Segments),
						Err:       ctx.Err(),
						Skipped:   true,
					})
				}
				return outcomes
			case <-time.After(wait):
			}
		}

		err := d.Channel.Send(ctx, msg.Recipient, msg.Flatten())
		if err != nil {
			log.Printf("[ERROR] send to %s: %v", msg.Recipient, err)
		} else {
			log.Printf("[INFO] sent to %s (%d segments)", msg.Recipient, len(msg.Segments))
		}
		outcomes = append(outcomes, Outcome{
			Recipient: msg.Recipient,
			Segments:  len(msg.Segments),
			Err:       err,
		})
	}
	return outcomes
}
