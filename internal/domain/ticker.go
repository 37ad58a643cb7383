package domain

import (
	"regexp"
	"strings"
)

// tickerPattern is the accepted ticker format: 1 to 10 characters drawn
// from ASCII letters, dot, and hyphen, anchored at both ends. Dots and
// hyphens appear in real symbols (share classes like BRK.B / BRK-B).
var tickerPattern = regexp.MustCompile(`^[A-Za-z.\-]{1,10}$`)

// invalidTickerMessage is the fixed user-facing rejection text.
const invalidTickerMessage = "Invalid ticker. Use 1-10 letters (e.g. AAPL, BRK-B, BRK.B)."

// Ticker is a validated equity symbol. Construct via ParseTicker; the
// original case is preserved for the provider call.
type Ticker string

// ParseTicker validates a raw user-supplied ticker string.
// On success the string is returned unmodified as a Ticker; there are no
// side effects. Whitespace-only and partially matching inputs are rejected.
func ParseTicker(raw string) (Ticker, error) {
	if strings.TrimSpace(raw) == "" || !tickerPattern.MatchString(raw) {
		return "", NewValidationError("ticker", invalidTickerMessage)
	}

	return Ticker(raw), nil
}

// String returns the ticker as entered.
func (t Ticker) String() string {
	return string(t)
}

// Upper returns the canonical upper-cased display form.
func (t Ticker) Upper() string {
	return strings.ToUpper(string(t))
}
