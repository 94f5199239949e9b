package catalog

// Product is a single item from the static catalog.
// Prices are in JPY, which carries no decimals.
type Product struct {
	UID   string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func Products() []Product {
	return []Product{
		{UID: "1", Name: "極上の和牛セット", Price: 1000},
		{UID: "2", Name: "国産豚ロース", Price: 680},
		{UID: "3", Name: "鶏もも肉", Price: 450},
		{UID: "4", Name: "合いびきミンチ", Price: 380},
		{UID: "5", Name: "ラムチョップ", Price: 1200},
	}
}
