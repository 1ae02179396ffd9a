package composer

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"ClientCourier/internal/performance"
)

// TemplateSet holds the fixed wording that surrounds per-account
// segments. It is passed in explicitly so wording lives in config,
// not in process-wide constants.
type TemplateSet struct {
	Greeting  string
	Opening   string
	Footer    string
	Signature string
}

// DefaultTemplates returns the stock wording. Any field can be
// overridden from config before the set reaches the composer.
func DefaultTemplates() TemplateSet {
	return TemplateSet{
		Greeting: "hope you are doing well!\n",
		Opening:  "Here is a quick update on your investments with me:\n",
		Footer: "\n\nFeel free to reach out for a walkthrough of the numbers" +
			" or to explore any top-up.\n\nLastly, appreciate if you pass my" +
			" name on to people around you who could use my expertise.",
		Signature: "\n\nYour Portfolio Manager",
	}
}

// Header renders the greeting for a recipient. Written once per
// recipient, from the first record seen for that phone.
func (t TemplateSet) Header(name string) string {
	return fmt.Sprintf("Dear %s, %s%s", name, t.Greeting, t.Opening)
}

// FooterText renders the closing boilerplate. Constant across a run.
func (t TemplateSet) FooterText() string {
	return t.Footer + t.Signature
}

// Segment is the validated data behind one body entry. Fields are
// checked before rendering so a missing value surfaces as a skipped
// record, not a half-formatted message.
type Segment struct {
	Source     string
	Currency   string
	Investment decimal.Decimal
	Value      decimal.Decimal
	AsOf       time.Time
	PriorAsOf  time.Time
	DeltaPct   float64
}

const dateLayout = "02 Jan 2006"

// Render formats one account's body entry. Amounts carry thousands
// separators and two decimals, the percentage an explicit sign, and
// the performance indicator sits next to the percentage.
func (s Segment) Render() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s invested %s %s\n",
		s.Source, s.Currency, amount(s.Investment)))
	b.WriteString(fmt.Sprintf("Portfolio value as of %s: %s %s (%+.2f%% %s from %s)\n",
		s.AsOf.Format(dateLayout), s.Currency, amount(s.Value),
		s.DeltaPct, performance.Indicator(s.DeltaPct),
		s.PriorAsOf.Format(dateLayout)))
	b.WriteString("\n--------------------------")
	return b.String()
}

func amount(d decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", d.InexactFloat64())
}
