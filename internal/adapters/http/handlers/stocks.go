package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dekman10/stock-lookup/internal/adapters/http/dto"
	"github.com/dekman10/stock-lookup/internal/app"
	"github.com/dekman10/stock-lookup/internal/domain"
)

// StockHandler handles stock lookup HTTP endpoints.
type StockHandler struct {
	service *app.StockService
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(service *app.StockService) *StockHandler {
	return &StockHandler{
		service: service,
	}
}

// StockResponse is the HTTP response structure for a normalized quote.
// Pointer fields are omitted when the provider did not supply them.
type StockResponse struct {
	Name             string   `json:"name"`
	Ticker           string   `json:"ticker"`
	CurrentPrice     *float64 `json:"currentPrice,omitempty"`
	PreviousClose    *float64 `json:"previousClose,omitempty"`
	Change           string   `json:"change"`
	ChangePositive   *bool    `json:"changePositive,omitempty"`
	High52           string   `json:"high52"`
	Low52            string   `json:"low52"`
	MarketCap        string   `json:"marketCap"`
	Currency         string   `json:"currency"`
	Recommendation   string   `json:"recommendation,omitempty"`
	TargetMean       string   `json:"targetMean"`
	TargetHigh       string   `json:"targetHigh"`
	TargetLow        string   `json:"targetLow"`
	NumAnalysts      *int64   `json:"numAnalysts,omitempty"`
	CurrentPriceFmt  string   `json:"currentPriceFmt"`
	PreviousCloseFmt string   `json:"previousCloseFmt"`
}

// CompareResponse pairs two quotes for side-by-side display.
type CompareResponse struct {
	First  *StockResponse `json:"first"`
	Second *StockResponse `json:"second"`
}

// compareQuery binds the compare endpoint's query parameters.
type compareQuery struct {
	First  string `form:"first" validate:"required"`
	Second string `form:"second" validate:"required"`
}

// toStockResponse converts a domain Quote to an HTTP response.
func toStockResponse(q *domain.Quote) *StockResponse {
	return &StockResponse{
		Name:             q.Name,
		Ticker:           q.Ticker,
		CurrentPrice:     q.CurrentPrice,
		PreviousClose:    q.PreviousClose,
		Change:           q.Change,
		ChangePositive:   q.ChangePositive,
		High52:           q.High52,
		Low52:            q.Low52,
		MarketCap:        q.MarketCap,
		Currency:         q.Currency,
		Recommendation:   q.Recommendation,
		TargetMean:       q.TargetMean,
		TargetHigh:       q.TargetHigh,
		TargetLow:        q.TargetLow,
		NumAnalysts:      q.NumAnalysts,
		CurrentPriceFmt:  q.CurrentPriceFmt,
		PreviousCloseFmt: q.PreviousCloseFmt,
	}
}

// GetStock handles GET /api/v1/stocks/:ticker
// Looks up a single ticker and returns the normalized quote.
//
// @Summary Look up a stock quote
// @Description Validates the ticker, fetches market data, and returns a normalized quote
// @Tags stocks
// @Produce json
// @Param ticker path string true "Ticker symbol"
// @Success 200 {object} StockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/stocks/{ticker} [get]
func (h *StockHandler) GetStock(c *gin.Context) {
	quote, err := h.service.Lookup(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toStockResponse(quote))
}

// CompareStocks handles GET /api/v1/stocks/compare?first=AAPL&second=MSFT
// Looks up two tickers and returns both quotes.
//
// @Summary Compare two stock quotes
// @Description Validates both tickers, fetches both quotes, and returns them side by side
// @Tags stocks
// @Produce json
// @Param first query string true "First ticker symbol"
// @Param second query string true "Second ticker symbol"
// @Success 200 {object} CompareResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/stocks/compare [get]
func (h *StockHandler) CompareStocks(c *gin.Context) {
	var query compareQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrorCodeValidation,
			"both 'first' and 'second' ticker parameters are required",
			dto.ValidationErrors(err),
		).WithTraceID(dto.GetTraceID(c)))
		return
	}

	first, second, err := h.service.Compare(c.Request.Context(), query.First, query.Second)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, &CompareResponse{
		First:  toStockResponse(first),
		Second: toStockResponse(second),
	})
}

// RegisterStockRoutes registers stock routes on the given router group.
func (h *StockHandler) RegisterStockRoutes(rg *gin.RouterGroup) {
	stocks := rg.Group("/stocks")
	stocks.GET("/compare", h.CompareStocks)
	stocks.GET("/:ticker", h.GetStock)
}
