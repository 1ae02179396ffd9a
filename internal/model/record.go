package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountRecord is one row from the client data source. A client with
// several accounts appears as several rows sharing a contact phone.
type AccountRecord struct {
	IdentityNumber string
	Nickname       string
	AccountStatus  int
	Investment     decimal.Decimal
	Currency       string
	SourceOfFunds  string
	ContactPhone   string
	CurrentValue   decimal.Decimal
	PriorValue     decimal.Decimal
	CurrentDate    time.Time
	PriorDate      time.Time
	Delta          float64 // ratio, not a percentage
}

// Active reports whether the account should receive an update.
// Status zero or negative means the account is closed or suspended.
func (r *AccountRecord) Active() bool { return r.AccountStatus > 0 }

// ProfitLoss is the absolute change between the two snapshots.
func (r *AccountRecord) ProfitLoss() decimal.Decimal {
	return r.CurrentValue.Sub(r.PriorValue)
}

// DeltaPercent converts the stored ratio into a display percentage.
func (r *AccountRecord) DeltaPercent() float64 { return r.Delta * 100 }
