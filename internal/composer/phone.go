package composer

import (
	"fmt"
	"strings"
)

// Normalizer turns raw contact-phone values into the channel's
// destination format: "+" followed by digits only. The fallback
// country code is configuration, not a constant, because the same
// batch tool runs against books of clients in different regions.
type Normalizer struct {
	DefaultCountryCode string // digits only, e.g. "65"
}

// Normalize strips everything but digits and prefixes the default
// country code when the raw value carries no explicit "+". Grouping
// uses the normalized value too, so "91234567" and "9123-4567" land
// in the same message.
func (n Normalizer) Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	hasPlus := strings.HasPrefix(raw, "+")

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return "", fmt.Errorf("no digits in phone %q", raw)
	}
	if hasPlus {
		return "+" + digits, nil
	}
	return "+" + n.DefaultCountryCode + digits, nil
}
