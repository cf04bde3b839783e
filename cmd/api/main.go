package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/LeoJunghao/cold-news-dashboard/internal/cache"
	"github.com/LeoJunghao/cold-news-dashboard/internal/handler"
	"github.com/LeoJunghao/cold-news-dashboard/pkg/llm"
	"github.com/LeoJunghao/cold-news-dashboard/pkg/news"
	"github.com/LeoJunghao/cold-news-dashboard/pkg/stats"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	newsClient := news.NewClient()
	aggregator := news.NewAggregator(newsClient, news.Categories)
	statsClient := stats.NewClient()

	responseCache := cache.NewTTLCache()

	newsHandler := handler.NewNewsHandler(aggregator, responseCache)
	statsHandler := handler.NewStatsHandler(statsClient, responseCache)
	summaryHandler := handler.NewSummaryHandler(summaryClient())

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/news", newsHandler.GetNews)
	r.GET("/api/news/:category", newsHandler.GetCategoryNews)
	r.GET("/api/stats", statsHandler.GetStats)
	r.POST("/api/summary", summaryHandler.GenerateSummary)
	r.GET("/api/export", newsHandler.GetExport)
	r.GET("/health", statsHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err := r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// summaryClient picks the configured LLM backend, Anthropic first.
// Nil means the summary endpoint reports itself unavailable.
func summaryClient() llm.SummaryClient {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return llm.NewAnthropicClient(key)
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return llm.NewOpenAIClient(key)
	}
	slog.Warn("no LLM API key configured, summary endpoint disabled")
	return nil
}
