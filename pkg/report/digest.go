// Package report renders the news bundle as a plain-text digest for
// clipboard export and email.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/LeoJunghao/cold-news-dashboard/pkg/news"
)

// Digest is one rendered export: an email subject line plus the body text.
type Digest struct {
	Subject string
	Body    string
}

type section struct {
	title string
	key   string
}

var sections = []section{
	{"美國財經焦點", "us"},
	{"國際財經視野", "intl"},
	{"全球地緣政治與軍事", "geo"},
	{"台灣財經要聞", "tw"},
	{"加密貨幣快訊", "crypto"},
}

// Fallback topics for the lead paragraph when a section is empty.
const (
	defaultUSTopic   = "市場波動"
	defaultIntlTopic = "全球局勢"
	defaultGeoTopic  = "地緣動態"
	defaultTWTopic   = "台股表現"
)

const sourcesFooter = "Sources: CNN, CNBC, Anue, Yahoo Finance, WSJ, Google News"

// Format renders the digest for the given bundle at the given instant.
func Format(bundle map[string][]news.Item, now time.Time) Digest {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		loc = time.Local
	}

	subject := fmt.Sprintf("財經新聞摘要 - %s", now.In(loc).Format("2006/1/2 15:04:05"))

	var body strings.Builder
	body.WriteString(leadParagraph(bundle))
	body.WriteString("\n\n")

	for _, sec := range sections {
		items := bundle[sec.key]
		if len(items) == 0 {
			continue
		}

		fmt.Fprintf(&body, "【%s】\n", sec.title)
		for i, item := range items {
			fmt.Fprintf(&body, "%d. %s\n", i+1, item.Title)
			fmt.Fprintf(&body, "   摘要: %s\n\n", item.Summary)
		}
		body.WriteString("----------------------------------------\n\n")
	}

	body.WriteString(sourcesFooter)
	return Digest{Subject: subject, Body: body.String()}
}

// leadParagraph synthesizes the opening market-overview paragraph from the
// top headline of each main section.
func leadParagraph(bundle map[string][]news.Item) string {
	return fmt.Sprintf(
		"市場分析報告顯示，今日全球金融體系持續受到多重宏觀因素交互影響。"+
			"首要焦點集中於美國市場，「%s」消息一出即引發市場關注。"+
			"在國際板塊方面，「%s」亦成為重要風向球。"+
			"此外，地緣政治風險未曾消退，「%s」局勢發展仍具不確定性。"+
			"回歸台灣市場，「%s」議題直接牽動產業鏈敏感神經。",
		topTitle(bundle["us"], defaultUSTopic),
		topTitle(bundle["intl"], defaultIntlTopic),
		topTitle(bundle["geo"], defaultGeoTopic),
		topTitle(bundle["tw"], defaultTWTopic),
	)
}

func topTitle(items []news.Item, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return items[0].Title
}
