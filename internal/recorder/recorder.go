package recorder

import (
	"ClientCourier/internal/model"
	"ClientCourier/internal/performance"

	"github.com/shopspring/decimal"
)

// DeliveryEvent is one submission attempt for one recipient.
type DeliveryEvent struct {
	RunID     string
	Recipient string
	Segments  int
	Sent      bool
	Error     string
}

// AccountEvent is one account segment that entered a composed message.
type AccountEvent struct {
	RunID      string
	Recipient  string
	Source     string
	Currency   string
	Investment decimal.Decimal
	Value      decimal.Decimal
	ProfitLoss decimal.Decimal
	DeltaPct   float64
	Grade      performance.Grade
}

// Recorder persists run history for later review.
type Recorder interface {
	RecordRun(sum *model.RunSummary) error
	RecordDelivery(evt *DeliveryEvent) error
	RecordAccount(evt *AccountEvent) error
	Close() error
}
