package model

import "time"

// RunSummary is the outcome of one batch run.
type RunSummary struct {
	RunID           string
	InputFile       string
	StartedAt       time.Time
	FinishedAt      time.Time
	RecordsRead     int // rows in the source, before any filtering
	RecordsInactive int // rows skipped for status <= 0
	RecordsInvalid  int // rows skipped for parse or missing-field errors
	Recipients      int
	Sent            int
	Failed          int
	Unattempted     int // recipients never tried because the run was cancelled
	StrongAccounts  int
	SteadyAccounts  int
	WeakAccounts    int
}

// Clean reports whether the run completed without skips, failed
// sends, or recipients left unattempted.
func (s *RunSummary) Clean() bool {
	return s.RecordsInvalid == 0 && s.Failed == 0 && s.Unattempted == 0
}
