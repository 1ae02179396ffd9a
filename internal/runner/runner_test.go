package runner

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"ClientCourier/internal/composer"
	"ClientCourier/internal/model"
	"ClientCourier/internal/recorder"
	"ClientCourier/internal/sender"
)

type stubSource struct {
	records []model.AccountRecord
	skipped int
	err     error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Load(_ string) ([]model.AccountRecord, int, error) {
	return s.records, s.skipped, s.err
}

type flakyChannel struct {
	failFor string
	sent    int
}

func (c *flakyChannel) Name() string { return "flaky" }

func (c *flakyChannel) Send(_ context.Context, destination, _ string) error {
	if destination == c.failFor {
		return fmt.Errorf("rejected")
	}
	c.sent++
	return nil
}

func stubRecord(phone string, status int, delta float64) model.AccountRecord {
	return model.AccountRecord{
		Nickname:      "Tan",
		AccountStatus: status,
		Investment:    decimal.NewFromInt(10000),
		Currency:      "SGD",
		SourceOfFunds: "Cash",
		ContactPhone:  phone,
		CurrentValue:  decimal.NewFromInt(10500),
		PriorValue:    decimal.NewFromInt(10000),
		CurrentDate:   time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		PriorDate:     time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC),
		Delta:         delta,
	}
}

func testRunner(src *stubSource, ch sender.Channel) *Runner {
	return &Runner{
		Source:    src,
		Composer:  composer.New(composer.DefaultTemplates(), composer.Normalizer{DefaultCountryCode: "65"}),
		Driver:    sender.NewDriver(ch, 0, 0),
		Recorder:  recorder.NewNoopRecorder(),
		InputPath: "clients.csv",
	}
}

func TestRun_Counts(t *testing.T) {
	src := &stubSource{
		records: []model.AccountRecord{
			stubRecord("91234567", 1, 0.05),
			stubRecord("91234567", 1, 0.15),
			stubRecord("81111111", 1, -0.05),
			stubRecord("82222222", 0, 0.05), // inactive
		},
		skipped: 1, // one row already dropped at load time
	}
	ch := &flakyChannel{failFor: "+6581111111"}

	sum, err := testRunner(src, ch).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum.RecordsRead != 5 {
		t.Errorf("expected 5 records read, got %d", sum.RecordsRead)
	}
	if sum.RecordsInactive != 1 || sum.RecordsInvalid != 1 {
		t.Errorf("expected 1 inactive and 1 invalid, got %d and %d",
			sum.RecordsInactive, sum.RecordsInvalid)
	}
	if sum.Recipients != 2 {
		t.Errorf("expected 2 recipients, got %d", sum.Recipients)
	}
	if sum.Sent != 1 || sum.Failed != 1 {
		t.Errorf("expected 1 sent and 1 failed, got %d and %d", sum.Sent, sum.Failed)
	}
	if sum.StrongAccounts != 1 || sum.SteadyAccounts != 1 || sum.WeakAccounts != 1 {
		t.Errorf("unexpected grade counts: strong %d steady %d weak %d",
			sum.StrongAccounts, sum.SteadyAccounts, sum.WeakAccounts)
	}
	if sum.Clean() {
		t.Error("a run with a failed delivery is not clean")
	}
	if sum.RunID == "" {
		t.Error("expected a run id")
	}
}

func TestRun_LoadFailureIsFatal(t *testing.T) {
	src := &stubSource{err: fmt.Errorf("missing required columns: delta")}
	_, err := testRunner(src, &flakyChannel{}).Run(context.Background())
	if err == nil {
		t.Fatal("expected load error to abort the run")
	}
}

func TestRun_CancelledRunCountsUnattempted(t *testing.T) {
	src := &stubSource{
		records: []model.AccountRecord{
			stubRecord("91234567", 1, 0.05),
			stubRecord("81111111", 1, 0.05),
		},
	}
	ch := &flakyChannel{}
	run := testRunner(src, ch)
	run.Driver = sender.NewDriver(ch, 0, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := run.Run(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Sent != 1 || sum.Failed != 0 || sum.Unattempted != 1 {
		t.Errorf("expected 1 sent, 0 failed, 1 unattempted, got %d/%d/%d",
			sum.Sent, sum.Failed, sum.Unattempted)
	}
	if sum.Sent+sum.Failed+sum.Unattempted != sum.Recipients {
		t.Error("every recipient must be accounted for in the summary")
	}
	if sum.Clean() {
		t.Error("a run with unattempted recipients is not clean")
	}
}

func TestRun_CleanRun(t *testing.T) {
	src := &stubSource{records: []model.AccountRecord{stubRecord("91234567", 1, 0.05)}}
	ch := &flakyChannel{}

	sum, err := testRunner(src, ch).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sum.Clean() {
		t.Errorf("expected clean run, got %+v", sum)
	}
	if ch.sent != 1 {
		t.Errorf("expected 1 send, got %d", ch.sent)
	}
}
