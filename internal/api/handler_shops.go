package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gourmet-search/config"
	"gourmet-search/internal/gourmet"
	"gourmet-search/internal/pipeline"
	"gourmet-search/internal/shop"
)

// ShopsResponse is the body of a successful GET /api/shops.
type ShopsResponse struct {
	Shops      []shop.ShopRecord `json:"shops"`
	Available  int               `json:"available"`
	Fetched    int               `json:"fetched"`
	Normalized int               `json:"normalized"`
	Matched    int               `json:"matched"`
	Problems   []string          `json:"problems"`
}

// GetShops handles GET /api/shops?keyword=&count=&price=&station=.
func (h *Handler) GetShops(c *gin.Context) {
	query := pipeline.Query{
		Keyword: c.DefaultQuery("keyword", h.cfg.Gourmet.Keyword),
		Count:   h.cfg.Gourmet.Count,
		Station: c.Query("station"),
	}

	if raw := c.Query("count"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil || count < 1 || count > config.MaxCount {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "count must be an integer between 1 and 100"})
			return
		}
		query.Count = count
	}

	if raw := c.Query("price"); raw != "" {
		price, err := strconv.Atoi(raw)
		if err != nil || price < 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "price must be a non-negative integer"})
			return
		}
		query.Price = &price
	}

	report, err := pipeline.Run(c.Request.Context(), h.fetcher, query)
	if err != nil {
		var ferr *gourmet.FetchError
		switch {
		case errors.Is(err, pipeline.ErrEmptyKeyword):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &ferr):
			log.Printf("Error fetching shops for %q: %v", query.Keyword, err)
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "upstream search failed"})
		default:
			log.Printf("Error running search for %q: %v", query.Keyword, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to process search result"})
		}
		return
	}

	c.JSON(http.StatusOK, ShopsResponse{
		Shops:      report.Shops,
		Available:  report.Available,
		Fetched:    report.Fetched,
		Normalized: report.Normalized,
		Matched:    report.Matched,
		Problems:   report.ProblemMessages(),
	})
}

// GetHealth handles GET /healthz.
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
