package acl

// External DTOs for the Yahoo Finance v10 quoteSummary API. These types
// never leave the ACL; translation to domain.RawQuote happens here.
//
// Numeric fields arrive wrapped as {"raw": 123.45, "fmt": "123.45"}.
// Raw is a pointer so a field the API omitted stays nil instead of
// collapsing to zero.

// yfValue is a wrapped numeric value from the quoteSummary API.
type yfValue struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

// yfIntValue is a wrapped integer value from the quoteSummary API.
type yfIntValue struct {
	Raw *int64 `json:"raw"`
	Fmt string `json:"fmt"`
}

// yfQuoteSummaryResponse wraps the v10 quoteSummary API response envelope.
type yfQuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []yfQuoteSummaryResult `json:"result"`
		Error  *yfError               `json:"error"`
	} `json:"quoteSummary"`
}

// yfQuoteSummaryResult holds the requested modules. A module missing from
// the response stays nil.
type yfQuoteSummaryResult struct {
	Price         *yfPrice         `json:"price"`
	SummaryDetail *yfSummaryDetail `json:"summaryDetail"`
	FinancialData *yfFinancialData `json:"financialData"`
}

type yfPrice struct {
	ShortName                  *string `json:"shortName"`
	LongName                   *string `json:"longName"`
	Currency                   *string `json:"currency"`
	RegularMarketPrice         yfValue `json:"regularMarketPrice"`
	RegularMarketPreviousClose yfValue `json:"regularMarketPreviousClose"`
	MarketCap                  yfValue `json:"marketCap"`
}

type yfSummaryDetail struct {
	PreviousClose    yfValue `json:"previousClose"`
	MarketCap        yfValue `json:"marketCap"`
	FiftyTwoWeekLow  yfValue `json:"fiftyTwoWeekLow"`
	FiftyTwoWeekHigh yfValue `json:"fiftyTwoWeekHigh"`
}

type yfFinancialData struct {
	CurrentPrice            yfValue    `json:"currentPrice"`
	TargetHighPrice         yfValue    `json:"targetHighPrice"`
	TargetLowPrice          yfValue    `json:"targetLowPrice"`
	TargetMeanPrice         yfValue    `json:"targetMeanPrice"`
	RecommendationKey       *string    `json:"recommendationKey"`
	NumberOfAnalystOpinions yfIntValue `json:"numberOfAnalystOpinions"`
}

type yfError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
