package domain

import "strings"

// RawQuote is the typed optional-field record returned by the market data
// provider for a ticker. Pointer fields make absence explicit: a nil field
// was missing from the provider response, which is distinct from zero.
// This is a domain entity - it has no knowledge of the provider's wire format.
type RawQuote struct {
	ShortName                  *string
	LongName                   *string
	CurrentPrice               *float64
	RegularMarketPrice         *float64
	PreviousClose              *float64
	RegularMarketPreviousClose *float64
	FiftyTwoWeekHigh           *float64
	FiftyTwoWeekLow            *float64
	MarketCap                  *float64
	Currency                   *string
	RecommendationKey          *string
	TargetMeanPrice            *float64
	TargetHighPrice            *float64
	TargetLowPrice             *float64
	NumberOfAnalystOpinions    *int64
}

// Quote is the normalized, display-ready record derived from a RawQuote.
// All formatted fields are final strings; nullable facts stay pointers so
// renderers can distinguish "absent" from a real value.
type Quote struct {
	// Name is the company display name.
	Name string

	// Ticker is the canonical upper-cased symbol.
	Ticker string

	// CurrentPrice and PreviousClose are the numeric source values;
	// nil when the provider did not supply them.
	CurrentPrice  *float64
	PreviousClose *float64

	// Change is the formatted price change, e.g. "+5.00 (+5.00%)",
	// or N/A when either price is missing.
	Change string

	// ChangePositive is true when current >= previous, false when
	// current < previous, nil when either price is missing.
	ChangePositive *bool

	High52    string
	Low52     string
	MarketCap string

	// Currency defaults to USD when the provider omits it.
	Currency string

	// Recommendation is the upper-cased analyst recommendation key,
	// or empty when absent (never the N/A sentinel).
	Recommendation string

	TargetMean string
	TargetHigh string
	TargetLow  string

	// NumAnalysts is nil when the provider reported no analyst count.
	NumAnalysts *int64

	CurrentPriceFmt  string
	PreviousCloseFmt string
}

// Normalize derives a display-ready Quote from a provider record.
// It fails with a NoDataError when the record carries no display name or
// no price at all; it never returns a partial Quote.
func Normalize(ticker Ticker, raw *RawQuote) (*Quote, error) {
	if raw == nil {
		return nil, NewNoDataError(ticker.String())
	}

	name := coalesceString(raw.ShortName, raw.LongName)
	current := coalesceFloat(raw.CurrentPrice, raw.RegularMarketPrice)
	previous := coalesceFloat(raw.PreviousClose, raw.RegularMarketPreviousClose)

	if name == nil || (current == nil && previous == nil) {
		return nil, NewNoDataError(ticker.String())
	}

	var changePositive *bool
	if current != nil && previous != nil {
		positive := *current >= *previous
		changePositive = &positive
	}

	currency := "USD"
	if raw.Currency != nil && *raw.Currency != "" {
		currency = *raw.Currency
	}

	recommendation := ""
	if raw.RecommendationKey != nil {
		recommendation = strings.ToUpper(*raw.RecommendationKey)
	}

	return &Quote{
		Name:             *name,
		Ticker:           ticker.Upper(),
		CurrentPrice:     current,
		PreviousClose:    previous,
		Change:           FormatChange(current, previous),
		ChangePositive:   changePositive,
		High52:           FormatPrice(raw.FiftyTwoWeekHigh),
		Low52:            FormatPrice(raw.FiftyTwoWeekLow),
		MarketCap:        FormatMarketCap(raw.MarketCap),
		Currency:         currency,
		Recommendation:   recommendation,
		TargetMean:       FormatPrice(raw.TargetMeanPrice),
		TargetHigh:       FormatPrice(raw.TargetHighPrice),
		TargetLow:        FormatPrice(raw.TargetLowPrice),
		NumAnalysts:      raw.NumberOfAnalystOpinions,
		CurrentPriceFmt:  FormatPrice(current),
		PreviousCloseFmt: FormatPrice(previous),
	}, nil
}

// ChangeUp reports whether the price change is known and non-negative.
// Template-friendly accessor for the nullable ChangePositive field.
func (q *Quote) ChangeUp() bool {
	return q.ChangePositive != nil && *q.ChangePositive
}

// coalesceString returns the first value that is present and non-empty.
func coalesceString(values ...*string) *string {
	for _, v := range values {
		if v != nil && *v != "" {
			return v
		}
	}

	return nil
}

// coalesceFloat returns the first value that is present and non-zero.
// Zero falls through to the next candidate: the provider emits zero for
// fields it could not populate, so preferring a zero "live" price over a
// populated regular-market price would drop real data.
func coalesceFloat(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil && *v != 0 {
			return v
		}
	}

	return nil
}
