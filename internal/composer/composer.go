package composer

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"ClientCourier/internal/model"
	"ClientCourier/internal/performance"
)

// Composer groups account records by normalized recipient phone and
// assembles one message per recipient.
type Composer struct {
	Templates TemplateSet
	Phones    Normalizer
}

func New(t TemplateSet, n Normalizer) *Composer {
	return &Composer{Templates: t, Phones: n}
}

// AccountEntry is the per-account data kept for the run recorder,
// one per body segment that made it into the batch.
type AccountEntry struct {
	Recipient  string
	Source     string
	Currency   string
	Investment decimal.Decimal
	Value      decimal.Decimal
	ProfitLoss decimal.Decimal
	DeltaPct   float64
	Grade      performance.Grade
}

// Result carries the composed batch plus composition counts.
type Result struct {
	Batch    *model.Batch
	Inactive int // records dropped silently for status <= 0
	Invalid  int // records dropped with a reported error
	Entries  []AccountEntry
	Grades   map[performance.Grade]int
}

// Compose walks records in input order. Inactive accounts are dropped
// silently; records missing required fields are reported and dropped;
// everything else appends one body segment to its recipient's message.
// Segment order within a recipient matches input order.
func (c *Composer) Compose(records []model.AccountRecord) *Result {
	res := &Result{
		Batch:  model.NewBatch(),
		Grades: make(map[performance.Grade]int),
	}

	for i := range records {
		r := &records[i]
		if !r.Active() {
			res.Inactive++
			continue
		}
		if err := validate(r); err != nil {
			log.Printf("[WARN] skip record for %q: %v", r.Nickname, err)
			res.Invalid++
			continue
		}

		key, err := c.Phones.Normalize(r.ContactPhone)
		if err != nil {
			log.Printf("[WARN] skip record for %q: %v", r.Nickname, err)
			res.Invalid++
			continue
		}

		pct := r.DeltaPercent()
		seg := Segment{
			Source:     r.SourceOfFunds,
			Currency:   r.Currency,
			Investment: r.Investment,
			Value:      r.CurrentValue,
			AsOf:       r.CurrentDate,
			PriorAsOf:  r.PriorDate,
			DeltaPct:   pct,
		}

		msg := res.Batch.Get(key)
		if msg == nil {
			msg = &model.ComposedMessage{
				Recipient: key,
				Header:    c.Templates.Header(r.Nickname),
			}
			res.Batch.Put(key, msg)
		}
		msg.Segments = append(msg.Segments, seg.Render())
		// Constant value, so rewriting per record is harmless.
		msg.Footer = c.Templates.FooterText()

		grade := performance.GradeOf(pct)
		res.Grades[grade]++
		res.Entries = append(res.Entries, AccountEntry{
			Recipient:  key,
			Source:     r.SourceOfFunds,
			Currency:   r.Currency,
			Investment: r.Investment,
			Value:      r.CurrentValue,
			ProfitLoss: r.ProfitLoss(),
			DeltaPct:   pct,
			Grade:      grade,
		})
	}

	return res
}

// validate checks the fields a segment needs before any formatting
// happens, so missing data never surfaces as a mangled message.
func validate(r *model.AccountRecord) error {
	switch {
	case r.ContactPhone == "":
		return fmt.Errorf("missing contact phone")
	case r.Nickname == "":
		return fmt.Errorf("missing nickname")
	case r.CurrentDate.IsZero():
		return fmt.Errorf("missing current snapshot date")
	case r.PriorDate.IsZero():
		return fmt.Errorf("missing prior snapshot date")
	case r.Currency == "":
		return fmt.Errorf("missing investment currency")
	}
	return nil
}
