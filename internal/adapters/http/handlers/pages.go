package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dekman10/stock-lookup/internal/app"
	"github.com/dekman10/stock-lookup/internal/domain"
)

// indexTemplate is the single page template for the HTML front-end.
const indexTemplate = "index.html"

// PageHandler serves the HTML front-end: a lookup form, a single-quote
// view, and a side-by-side comparison view. Errors render inside the page
// with status 200 so the form stays usable.
type PageHandler struct {
	service *app.StockService
}

// NewPageHandler creates a new page handler.
func NewPageHandler(service *app.StockService) *PageHandler {
	return &PageHandler{
		service: service,
	}
}

// Index handles GET / and renders the empty lookup form.
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, gin.H{})
}

// Lookup handles POST /lookup with a "ticker" form field.
func (h *PageHandler) Lookup(c *gin.Context) {
	ticker := strings.TrimSpace(c.PostForm("ticker"))

	quote, err := h.service.Lookup(c.Request.Context(), ticker)
	if err != nil {
		c.HTML(http.StatusOK, indexTemplate, gin.H{"Error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, indexTemplate, gin.H{"Stock": quote})
}

// Compare handles POST /compare with "ticker1" and "ticker2" form fields.
func (h *PageHandler) Compare(c *gin.Context) {
	first := strings.TrimSpace(c.PostForm("ticker1"))
	second := strings.TrimSpace(c.PostForm("ticker2"))

	firstQuote, secondQuote, err := h.service.Compare(c.Request.Context(), first, second)
	if err != nil {
		c.HTML(http.StatusOK, indexTemplate, gin.H{"Error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, indexTemplate, gin.H{
		"Compare": []*domain.Quote{firstQuote, secondQuote},
	})
}

// RegisterPageRoutes registers the HTML routes on the engine root.
func (h *PageHandler) RegisterPageRoutes(engine *gin.Engine) {
	engine.GET("/", h.Index)
	engine.POST("/lookup", h.Lookup)
	engine.POST("/compare", h.Compare)
}
