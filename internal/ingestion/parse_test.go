package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aptrank/server/internal/models"
)

const tradeXML = `<?xml version="1.0" encoding="UTF-8"?>
<response>
  <header><resultCode>000</resultCode><resultMsg>OK</resultMsg></header>
  <body>
    <items>
      <item>
        <aptNm>힐스테이트</aptNm><umdNm>역삼동</umdNm>
        <dealAmount>85,000</dealAmount><excluUseAr>84.95</excluUseAr>
        <dealYear>2026</dealYear><dealMonth>7</dealMonth>
      </item>
      <item>
        <aptNm>  </aptNm><umdNm>역삼동</umdNm>
        <dealAmount>50,000</dealAmount><excluUseAr>59.88</excluUseAr>
        <dealYear>2026</dealYear><dealMonth>7</dealMonth>
      </item>
      <item>
        <aptNm>래미안</aptNm><umdNm>대치동</umdNm>
        <dealAmount>협의</dealAmount><excluUseAr>84.43</excluUseAr>
        <dealYear>2026</dealYear><dealMonth>7</dealMonth>
      </item>
    </items>
  </body>
</response>`

func TestParseTradeXML(t *testing.T) {
	records, err := ParseRecords([]byte(tradeXML), FetchTrade)
	require.NoError(t, err)

	// Blank name and non-numeric amount rows are silently dropped.
	require.Len(t, records, 1)
	record := records[0]
	assert.Equal(t, "힐스테이트", record.ComplexName)
	assert.Equal(t, "역삼동", record.District)
	assert.Equal(t, models.KindTrade, record.Kind)
	assert.Equal(t, 85000, record.Price)
	assert.Equal(t, 84.95, record.AreaSqm)
	assert.Equal(t, 2026, record.Year)
	assert.Equal(t, 7, record.Month)
}

const rentXML = `<response>
  <header><resultCode>00</resultCode><resultMsg>NORMAL SERVICE.</resultMsg></header>
  <body>
    <items>
      <item>
        <aptNm>은마아파트</aptNm><umdNm>대치동</umdNm>
        <deposit>40,000</deposit><monthlyRent>0</monthlyRent>
        <excluUseAr>76.79</excluUseAr><dealYear>2026</dealYear><dealMonth>6</dealMonth>
      </item>
      <item>
        <aptNm>도곡렉슬</aptNm><umdNm>도곡동</umdNm>
        <deposit>10,000</deposit><monthlyRent>120</monthlyRent>
        <excluUseAr>59.98</excluUseAr><dealYear>2026</dealYear><dealMonth>6</dealMonth>
      </item>
      <item>
        <aptNm>타워팰리스</aptNm><umdNm>도곡동</umdNm>
        <deposit></deposit><monthlyRent></monthlyRent>
        <excluUseAr>84.10</excluUseAr><dealYear>2026</dealYear><dealMonth>6</dealMonth>
      </item>
    </items>
  </body>
</response>`

func TestParseRentXMLSplitsKinds(t *testing.T) {
	records, err := ParseRecords([]byte(rentXML), FetchRent)
	require.NoError(t, err)
	require.Len(t, records, 2)

	jeonse := records[0]
	assert.Equal(t, models.KindJeonse, jeonse.Kind)
	assert.Equal(t, "은마아파트", jeonse.ComplexName)
	assert.Equal(t, 40000, jeonse.Price) // deposit becomes the jeonse price
	assert.Zero(t, jeonse.MonthlyRent)

	monthly := records[1]
	assert.Equal(t, models.KindMonthlyRent, monthly.Kind)
	assert.Equal(t, "도곡렉슬", monthly.ComplexName)
	assert.Zero(t, monthly.Price)
	assert.Equal(t, 10000, monthly.Deposit)
	assert.Equal(t, 120, monthly.MonthlyRent)
}

func TestParseJSON(t *testing.T) {
	body := `{"response":{"header":{"resultCode":"000","resultMsg":"OK"},"body":{"items":{"item":[
		{"aptNm":"헬리오시티","umdNm":"가락동","dealAmount":"180,000","excluUseAr":"84.98","dealYear":"2026","dealMonth":"7"},
		{"aptNm":"","dealAmount":"90,000","excluUseAr":"59.96","dealYear":"2026","dealMonth":"7"}
	]}}}}`

	records, err := ParseRecords([]byte(body), FetchTrade)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "헬리오시티", records[0].ComplexName)
	assert.Equal(t, 180000, records[0].Price)
}

func TestParseJSONSingleItemObject(t *testing.T) {
	body := `{"response":{"header":{"resultCode":"00"},"body":{"items":{"item":
		{"aptNm":"파크리오","umdNm":"신천동","dealAmount":"210,000","excluUseAr":"84.79","dealYear":"2026","dealMonth":"5"}
	}}}}`

	records, err := ParseRecords([]byte(body), FetchTrade)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "파크리오", records[0].ComplexName)
}

func TestParseErrorResultCode(t *testing.T) {
	body := `<response><header><resultCode>30</resultCode><resultMsg>SERVICE KEY IS NOT REGISTERED ERROR.</resultMsg></header></response>`
	_, err := ParseRecords([]byte(body), FetchTrade)
	assert.Error(t, err)
}

func TestParseMalformedBody(t *testing.T) {
	_, err := ParseRecords([]byte("<response><broken"), FetchTrade)
	assert.Error(t, err)
}

func TestCleanNumberParsing(t *testing.T) {
	tests := []struct {
		in       string
		expected int
	}{
		{"85,000", 85000},
		{" 1,234,567 ", 1234567},
		{"", 0},
		{"협의", 0},
		{"0", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, cleanInt(tt.in), "input %q", tt.in)
	}

	assert.Equal(t, 84.95, cleanFloat("84.95"))
	assert.Equal(t, 0.0, cleanFloat("n/a"))
}
