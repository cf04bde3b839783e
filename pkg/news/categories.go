package news

// Category describes one editorial news bucket: the Google News search
// query that feeds it, the maximum number of items shown, and the section
// title used on the dashboard.
type Category struct {
	Key   string
	Query string
	Limit int
	Name  string
}

// Categories is the fixed category table, in display order.
var Categories = []Category{
	{
		Key:   "us",
		Query: "美國財經 OR 美股 OR 聯準會 OR Fed OR 美債",
		Limit: 10,
		Name:  "美國財經焦點",
	},
	{
		Key:   "intl",
		Query: "中國經濟 OR 歐洲市場 OR 日韓股市 OR 新興市場 -美國 -台灣",
		Limit: 10,
		Name:  "國際財經視野",
	},
	{
		Key:   "geo",
		Query: "地緣政治 OR 烏克蘭戰爭 OR 以巴衝突 OR 南海爭議 OR 軍事動態",
		Limit: 5,
		Name:  "全球地緣政治與軍事",
	},
	{
		Key:   "tw",
		Query: "台股 OR 半導體 OR AI供應鏈 OR 台灣經濟政策",
		Limit: 10,
		Name:  "台灣財經要聞",
	},
	{
		Key:   "crypto",
		Query: "比特幣 OR 以太坊 OR 加密貨幣監管",
		Limit: 5,
		Name:  "加密貨幣快訊",
	},
}

// CategoryByKey returns the category config for key, or false when the key
// is not part of the table.
func CategoryByKey(key string) (Category, bool) {
	for _, cat := range Categories {
		if cat.Key == key {
			return cat, true
		}
	}
	return Category{}, false
}
