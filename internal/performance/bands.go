package performance

// Indicator tokens shown next to an account's performance line.
const (
	IndicatorSurge   = "🚀 📈"
	IndicatorUp      = "📈"
	IndicatorDown    = "📉"
	IndicatorWarning = "📉 ⚠️"
)

// bands are evaluated top down, first match wins. Upper thresholds are
// inclusive: exactly +10 is a surge, exactly -10 is still plain down.
var bands = []struct {
	Min   float64
	Token string
}{
	{10, IndicatorSurge},
	{0, IndicatorUp},
	{-10, IndicatorDown},
}

// Indicator maps a signed percentage to its display token. Total over
// all reals, no side effects.
func Indicator(pct float64) string {
	for _, b := range bands {
		if pct >= b.Min {
			return b.Token
		}
	}
	return IndicatorWarning
}

// Grade buckets a percentage for run analytics. This is a separate
// policy from Indicator and deliberately uses different thresholds:
// any loss at all grades Weak, while Indicator keeps a plain-down band
// until -10. Grade never appears in message text.
type Grade string

const (
	GradeStrong Grade = "STRONG"
	GradeSteady Grade = "STEADY"
	GradeWeak   Grade = "WEAK"
)

// GradeOf maps a signed percentage to its analytics grade.
func GradeOf(pct float64) Grade {
	switch {
	case pct >= 10:
		return GradeStrong
	case pct < 0:
		return GradeWeak
	default:
		return GradeSteady
	}
}
