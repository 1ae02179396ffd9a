package runner

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"ClientCourier/internal/composer"
	"ClientCourier/internal/loader"
	"ClientCourier/internal/model"
	"ClientCourier/internal/performance"
	"ClientCourier/internal/recorder"
	"ClientCourier/internal/sender"
)

// Runner wires one batch end to end: load rows, compose messages,
// deliver them, record the run.
type Runner struct {
	Source    loader.Source
	Composer  *composer.Composer
	Driver    *sender.Driver
	Recorder  recorder.Recorder
	InputPath string
}

// Run executes one batch. A load failure is fatal and returns an
// error; everything after that degrades per record or per recipient
// and is reflected in the summary instead.
func (r *Runner) Run(ctx context.Context) (*model.RunSummary, error) {
	sum := &model.RunSummary{
		RunID:     uuid.NewString(),
		InputFile: r.InputPath,
		StartedAt: time.Now(),
	}
	log.Printf("[INFO] run %s: loading %s via %s", sum.RunID, r.InputPath, r.Source.Name())

	records, badRows, err := r.Source.Load(r.InputPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", r.InputPath, err)
	}
	sum.RecordsRead = len(records) + badRows
	sum.RecordsInvalid = badRows

	res := r.Composer.Compose(records)
	sum.RecordsInactive = res.Inactive
	sum.RecordsInvalid += res.Invalid
	sum.Recipients = res.Batch.Len()
	sum.StrongAccounts = res.Grades[performance.GradeStrong]
	sum.SteadyAccounts = res.Grades[performance.GradeSteady]
	sum.WeakAccounts = res.Grades[performance.GradeWeak]

	for i := range res.Entries {
		e := &res.Entries[i]
		if err := r.Recorder.RecordAccount(&recorder.AccountEvent{
			RunID:      sum.RunID,
			Recipient:  e.Recipient,
			Source:     e.Source,
			Currency:   e.Currency,
			Investment: e.Investment,
			Value:      e.Value,
			ProfitLoss: e.ProfitLoss,
			DeltaPct:   e.DeltaPct,
			Grade:      e.Grade,
		}); err != nil {
			log.Printf("[ERROR] record account segment: %v", err)
		}
	}

	log.Printf("[INFO] run %s: composed %d messages from %d records (%d inactive, %d invalid)",
		sum.RunID, sum.Recipients, sum.RecordsRead, sum.RecordsInactive, sum.RecordsInvalid)

	outcomes := r.Driver.Deliver(ctx, res.Batch)
	for _, o := range outcomes {
		evt := &recorder.DeliveryEvent{
			RunID:     sum.RunID,
			Recipient: o.Recipient,
			Segments:  o.Segments,
			Sent:      o.Err == nil,
		}
		switch {
		case o.Skipped:
			evt.Error = "not attempted: " + o.Err.Error()
			sum.Unattempted++
		case o.Err != nil:
			evt.Error = o.Err.Error()
			sum.Failed++
		default:
			sum.Sent++
		}
		if err := r.Recorder.RecordDelivery(evt); err != nil {
			log.Printf("[ERROR] record delivery: %v", err)
		}
	}
	sum.FinishedAt = time.Now()

	if err := r.Recorder.RecordRun(sum); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}

	log.Printf("[INFO] run %s: sent %d, failed %d, unattempted %d, skipped records %d (strong %d / steady %d / weak %d)",
		sum.RunID, sum.Sent, sum.Failed, sum.Unattempted, sum.RecordsInactive+sum.RecordsInvalid,
		sum.StrongAccounts, sum.SteadyAccounts, sum.WeakAccounts)
	return sum, nil
}
