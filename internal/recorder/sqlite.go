package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"ClientCourier/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id           TEXT PRIMARY KEY,
			input_file       TEXT,
			started_at       INTEGER NOT NULL,
			finished_at      INTEGER NOT NULL,
			records_read     INTEGER,
			records_inactive INTEGER,
			records_invalid  INTEGER,
			recipients       INTEGER,
			sent             INTEGER,
			failed           INTEGER,
			unattempted      INTEGER,
			strong_accounts  INTEGER,
			steady_accounts  INTEGER,
			weak_accounts    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at)`,

		`CREATE TABLE IF NOT EXISTS deliveries (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    TEXT NOT NULL,
			recipient TEXT NOT NULL,
			segments  INTEGER,
			sent      INTEGER NOT NULL,
			error     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_deliveries_run ON deliveries(run_id)`,

		`CREATE TABLE IF NOT EXISTS account_segments (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      TEXT NOT NULL,
			recipient   TEXT NOT NULL,
			source      TEXT,
			currency    TEXT,
			investment  REAL,
			value       REAL,
			profit_loss REAL,
			delta_pct   REAL,
			grade       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_segments_run ON account_segments(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(sum *model.RunSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO runs
		(run_id, input_file, started_at, finished_at,
		 records_read, records_inactive, records_invalid,
		 recipients, sent, failed, unattempted,
		 strong_accounts, steady_accounts, weak_accounts)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		sum.RunID, sum.InputFile, sum.StartedAt.Unix(), sum.FinishedAt.Unix(),
		sum.RecordsRead, sum.RecordsInactive, sum.RecordsInvalid,
		sum.Recipients, sum.Sent, sum.Failed, sum.Unattempted,
		sum.StrongAccounts, sum.SteadyAccounts, sum.WeakAccounts,
	)
	return err
}

func (r *SQLiteRecorder) RecordDelivery(evt *DeliveryEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sent := 0
	if evt.Sent {
		sent = 1
	}
	_, err := r.db.Exec(`INSERT INTO deliveries
		(run_id, recipient, segments, sent, error)
		VALUES (?,?,?,?,?)`,
		evt.RunID, evt.Recipient, evt.Segments, sent, evt.Error,
	)
	return err
}

func (r *SQLiteRecorder) RecordAccount(evt *AccountEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO account_segments
		(run_id, recipient, source, currency, investment, value, profit_loss, delta_pct, grade)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		evt.RunID, evt.Recipient, evt.Source, evt.Currency,
		evt.Investment.InexactFloat64(), evt.Value.InexactFloat64(),
		evt.ProfitLoss.InexactFloat64(), evt.DeltaPct, string(evt.Grade),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
