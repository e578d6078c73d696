package models

// RankingEntry is the public projection of an aggregated complex for one
// ranking category. Optional fields are populated per category.
type RankingEntry struct {
	Rank               int     `json:"rank"`
	Name               string  `json:"name"`
	District           string  `json:"district"`
	AvgPrice           int     `json:"avg_price"`
	PricePerPyeong     int     `json:"price_per_pyeong"`
	TransactionCount   int     `json:"transaction_count"`
	ChangePercent      float64 `json:"change_percent"`
	CompositeScore     float64 `json:"composite_score,omitempty"`
	MonthlyRentDeposit int     `json:"monthly_rent_deposit,omitempty"`
	MonthlyRentAmount  int     `json:"monthly_rent_amount,omitempty"`
}

// CategoryRankings groups the five independently sorted ranking views.
type CategoryRankings struct {
	Composite           []RankingEntry `json:"composite"`
	TradePricePerPyeong []RankingEntry `json:"trade_price_per_pyeong"`
	JeonsePrice         []RankingEntry `json:"jeonse_price"`
	MonthlyRentPrice    []RankingEntry `json:"monthly_rent_price"`
	TradeVolume         []RankingEntry `json:"trade_volume"`
}

// RankingResult is the full response for one ranking request.
type RankingResult struct {
	RegionName       string           `json:"region_name"`
	Period           string           `json:"period"` // "YYYY.MM" of the most recent lookback month
	Rankings         []RankingEntry   `json:"rankings"`
	CategoryRankings CategoryRankings `json:"category_rankings"`
	IsFallback       bool             `json:"is_fallback"`
}
