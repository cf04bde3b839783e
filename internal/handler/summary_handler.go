package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeoJunghao/cold-news-dashboard/pkg/llm"
	"github.com/LeoJunghao/cold-news-dashboard/pkg/news"
)

type SummaryHandler struct {
	client llm.SummaryClient
}

// NewSummaryHandler wires the summary endpoint. A nil client means no LLM
// key was configured; the endpoint then reports itself unavailable.
func NewSummaryHandler(client llm.SummaryClient) *SummaryHandler {
	return &SummaryHandler{client: client}
}

func (h *SummaryHandler) GenerateSummary(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Summary generation is not configured"})
		return
	}

	var req SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("invalid summary request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	llmReq := llm.Request{
		News:  make(map[string][]news.Item, len(req.News)),
		Stats: fromStatsResponse(req.Stats),
	}
	for key, items := range req.News {
		llmReq.News[key] = fromNewsItemResponses(items)
	}

	text, err := h.client.Summarize(llmReq)
	if err != nil {
		slog.Error("error generating summary", "model", h.client.ModelName(), "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": text, "model_used": h.client.ModelName()})
}
