package llm

import (
	"fmt"
	"strings"

	"github.com/LeoJunghao/cold-news-dashboard/pkg/news"
)

const promptHeader = `請擔任一位專業的全球總體經濟分析師，根據以下提供的即時財經新聞與市場數據，撰寫一份「市場總結分析報告」。

**風格要求：**
1.  **冷靜、客觀、專業**：使用財經專業術語，語氣簡潔有力。
2.  **注重數據與事實**：分析需基於提供的數據，避免空泛的形容。
3.  **結構嚴謹**：分為「綜合分析摘要」、「核心市場動態」、「國際視野與地緣政治」、「台灣市場觀察」與「投資建議與展望」四個段落。
4.  **字數控制**：約 500-600 字。
5.  **繁體中文** (Traditional Chinese)。

**提供的市場數據 (Market Stats):**
`

// buildPrompt renders the analyst prompt: style rules, the market stat
// lines, then the top headlines of each news section.
func buildPrompt(req Request) string {
	var sb strings.Builder
	sb.WriteString(promptHeader)

	fmt.Fprintf(&sb, "- 恐懼與貪婪指數 (Fear & Greed): %.0f\n", req.Stats.StockFnG)
	fmt.Fprintf(&sb, "- VIX 波動率: %.2f\n", req.Stats.VIX)
	fmt.Fprintf(&sb, "- 美元指數: %.2f\n", req.Stats.DollarIndex)
	fmt.Fprintf(&sb, "- 10年期公債殖利率: %.2f%%\n", req.Stats.US10Y)
	fmt.Fprintf(&sb, "- 比特幣價格: $%.0f\n", req.Stats.Bitcoin.Price)

	sb.WriteString("\n**提供的即時新聞重點 (News Highlights):**\n")

	addNews(&sb, "美國財經焦點", req.News["us"], 3)
	addNews(&sb, "國際財經視野", req.News["intl"], 3)
	addNews(&sb, "全球地緣政治", req.News["geo"], 2)
	addNews(&sb, "台灣財經要聞", req.News["tw"], 3)

	sb.WriteString("\n請根據以上資訊，開始撰寫分析報告：")
	return sb.String()
}

func addNews(sb *strings.Builder, section string, items []news.Item, limit int) {
	fmt.Fprintf(sb, "\n[%s]:\n", section)
	if len(items) > limit {
		items = items[:limit]
	}
	for _, item := range items {
		fmt.Fprintf(sb, "- %s (來源: %s)\n", item.Title, item.Source)
	}
}
