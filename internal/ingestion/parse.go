package ingestion

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"aptrank/server/internal/models"
)

// The feeds answer in XML by default and in JSON when the caller asks for
// it; both shapes use the same field names under response/body/items/item.

type xmlEnvelope struct {
	Header struct {
		ResultCode string `xml:"resultCode"`
		ResultMsg  string `xml:"resultMsg"`
	} `xml:"header"`
	Body struct {
		Items struct {
			Item []xmlItem `xml:"item"`
		} `xml:"items"`
	} `xml:"body"`
}

type xmlItem struct {
	AptName     string `xml:"aptNm"`
	Dong        string `xml:"umdNm"`
	DealAmount  string `xml:"dealAmount"`
	Deposit     string `xml:"deposit"`
	MonthlyRent string `xml:"monthlyRent"`
	Area        string `xml:"excluUseAr"`
	DealYear    string `xml:"dealYear"`
	DealMonth   string `xml:"dealMonth"`
}

// ParseRecords parses a trade or rent response body into normalized
// records. Items with a blank complex name or a non-positive primary amount
// are normal data gaps and are dropped silently.
func ParseRecords(body []byte, kind FetchKind) ([]models.RawTransactionRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return parseJSON(trimmed, kind)
	}
	return parseXML(trimmed, kind)
}

func parseXML(body []byte, kind FetchKind) ([]models.RawTransactionRecord, error) {
	var envelope xmlEnvelope
	if err := xml.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse XML response: %w", err)
	}
	if code := envelope.Header.ResultCode; code != "" && code != "00" && code != "000" {
		return nil, fmt.Errorf("API error %s: %s", code, envelope.Header.ResultMsg)
	}

	records := make([]models.RawTransactionRecord, 0, len(envelope.Body.Items.Item))
	for _, item := range envelope.Body.Items.Item {
		if record, ok := buildRecord(kind, item.AptName, item.Dong, item.DealAmount,
			item.Deposit, item.MonthlyRent, item.Area, item.DealYear, item.DealMonth); ok {
			records = append(records, record)
		}
	}
	return records, nil
}

func parseJSON(body []byte, kind FetchKind) ([]models.RawTransactionRecord, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON response")
	}

	header := gjson.GetBytes(body, "response.header")
	if code := header.Get("resultCode").String(); code != "" && code != "00" && code != "000" {
		return nil, fmt.Errorf("API error %s: %s", code, header.Get("resultMsg").String())
	}

	// "item" is an array normally but a bare object when the period has a
	// single transaction.
	item := gjson.GetBytes(body, "response.body.items.item")
	items := item.Array()
	if item.IsObject() {
		items = []gjson.Result{item}
	}

	records := make([]models.RawTransactionRecord, 0, len(items))
	for _, it := range items {
		if record, ok := buildRecord(kind,
			it.Get("aptNm").String(), it.Get("umdNm").String(),
			it.Get("dealAmount").String(), it.Get("deposit").String(),
			it.Get("monthlyRent").String(), it.Get("excluUseAr").String(),
			it.Get("dealYear").String(), it.Get("dealMonth").String()); ok {
			records = append(records, record)
		}
	}
	return records, nil
}

func buildRecord(kind FetchKind, name, district, dealAmount, deposit, monthlyRent, area, year, month string) (models.RawTransactionRecord, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.RawTransactionRecord{}, false
	}

	record := models.RawTransactionRecord{
		ComplexName: name,
		District:    strings.TrimSpace(district),
		AreaSqm:     cleanFloat(area),
		Year:        cleanInt(year),
		Month:       cleanInt(month),
	}

	switch kind {
	case FetchTrade:
		price := cleanInt(dealAmount)
		if price <= 0 {
			return models.RawTransactionRecord{}, false
		}
		record.Kind = models.KindTrade
		record.Price = price

	case FetchRent:
		dep := cleanInt(deposit)
		rent := cleanInt(monthlyRent)
		if rent > 0 {
			record.Kind = models.KindMonthlyRent
			record.Deposit = dep
			record.MonthlyRent = rent
		} else {
			if dep <= 0 {
				return models.RawTransactionRecord{}, false
			}
			record.Kind = models.KindJeonse
			record.Price = dep
		}

	default:
		return models.RawTransactionRecord{}, false
	}

	return record, true
}

// cleanInt parses a locale-formatted number like " 85,000 ". Anything
// non-numeric parses to 0.
func cleanInt(s string) int {
	n, err := strconv.Atoi(cleanNumber(s))
	if err != nil {
		return 0
	}
	return n
}

func cleanFloat(s string) float64 {
	f, err := strconv.ParseFloat(cleanNumber(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func cleanNumber(s string) string {
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}
