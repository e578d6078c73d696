package models

// TransactionKind distinguishes the three record types parsed from the
// government real-transaction feeds.
type TransactionKind string

const (
	KindTrade       TransactionKind = "TRADE"
	KindJeonse      TransactionKind = "JEONSE"
	KindMonthlyRent TransactionKind = "MONTHLY_RENT"
)

// RawTransactionRecord is one parsed item from a trade or rent response.
// Amounts are in 만원 (10,000 KRW units) as reported by the source.
type RawTransactionRecord struct {
	ComplexName string          `json:"complex_name"`
	District    string          `json:"district"`
	Kind        TransactionKind `json:"kind"`
	Price       int             `json:"price"` // sale amount (TRADE) or deposit (JEONSE)
	AreaSqm     float64         `json:"area_sqm"`
	Deposit     int             `json:"deposit,omitempty"`
	MonthlyRent int             `json:"monthly_rent,omitempty"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
}

// AggregatedComplex holds per-complex accumulators and derived figures for
// one ranking request. Scores are normalized against the other complexes in
// the same request and are meaningless outside of it.
type AggregatedComplex struct {
	Name     string
	District string

	TradeCount      int
	TradeTotalPrice int
	TradeTotalArea  float64

	JeonseCount      int
	JeonseTotalPrice int
	JeonseTotalArea  float64

	MonthlyRentCount        int
	MonthlyRentTotalDeposit int
	MonthlyRentTotalAmount  int

	TradeAvgPrice         int
	TradePricePerPyeong   int
	JeonseAvgPrice        int
	MonthlyRentAvgDeposit int
	MonthlyRentAvgAmount  int

	ChangePercent float64

	VolumeScore    float64
	PriceScore     float64
	ChangeScore    float64
	CompositeScore float64
}

// TotalVolume is the transaction count across all three kinds.
func (a *AggregatedComplex) TotalVolume() int {
	return a.TradeCount + a.JeonseCount + a.MonthlyRentCount
}
