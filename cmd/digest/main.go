package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/LeoJunghao/cold-news-dashboard/pkg/news"
	"github.com/LeoJunghao/cold-news-dashboard/pkg/report"
)

// One-shot export: fetch every category and print the email digest.
func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	client := news.NewClient()
	aggregator := news.NewAggregator(client, news.Categories)

	bundle := aggregator.FetchAll()
	d := report.Format(bundle, time.Now())

	fmt.Println(d.Subject)
	fmt.Println()
	fmt.Println(d.Body)
}
