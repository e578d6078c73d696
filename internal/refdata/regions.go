package refdata

import "strings"

// FallbackRegionName is returned when no part of an address resolves.
const FallbackRegionName = "해당 지역"

// regionCodes maps "city district" combinations to the 5-digit 법정동 code
// prefix the transaction API expects (LAWD_CD). Single-token keys are
// city-level administrative units that have no districts.
var regionCodes = map[string]string{
	"서울특별시 종로구":   "11110",
	"서울특별시 중구":    "11140",
	"서울특별시 용산구":   "11170",
	"서울특별시 성동구":   "11200",
	"서울특별시 광진구":   "11215",
	"서울특별시 동대문구":  "11230",
	"서울특별시 중랑구":   "11260",
	"서울특별시 성북구":   "11290",
	"서울특별시 강북구":   "11305",
	"서울특별시 도봉구":   "11320",
	"서울특별시 노원구":   "11350",
	"서울특별시 은평구":   "11380",
	"서울특별시 서대문구":  "11410",
	"서울특별시 마포구":   "11440",
	"서울특별시 양천구":   "11470",
	"서울특별시 강서구":   "11500",
	"서울특별시 구로구":   "11530",
	"서울특별시 금천구":   "11545",
	"서울특별시 영등포구":  "11560",
	"서울특별시 동작구":   "11590",
	"서울특별시 관악구":   "11620",
	"서울특별시 서초구":   "11650",
	"서울특별시 강남구":   "11680",
	"서울특별시 송파구":   "11710",
	"서울특별시 강동구":   "11740",
	"부산광역시 해운대구":  "26350",
	"부산광역시 수영구":   "26500",
	"인천광역시 연수구":   "28185",
	"대구광역시 수성구":   "27260",
	"성남시 분당구":     "41135",
	"수원시 영통구":     "41117",
	"고양시 일산동구":    "41285",
	"과천시":         "41290",
	"세종특별자치시":     "36110",
}

// cityAliases normalizes the short city forms people actually type to the
// full names used in regionCodes keys.
var cityAliases = map[string]string{
	"서울":      "서울특별시",
	"서울시":     "서울특별시",
	"서울특별시":   "서울특별시",
	"부산":      "부산광역시",
	"부산시":     "부산광역시",
	"부산광역시":   "부산광역시",
	"인천":      "인천광역시",
	"인천시":     "인천광역시",
	"인천광역시":   "인천광역시",
	"대구":      "대구광역시",
	"대구시":     "대구광역시",
	"대구광역시":   "대구광역시",
	"성남":      "성남시",
	"성남시":     "성남시",
	"수원":      "수원시",
	"수원시":     "수원시",
	"고양":      "고양시",
	"고양시":     "고양시",
	"과천":      "과천시",
	"과천시":     "과천시",
	"세종":      "세종특별자치시",
	"세종시":     "세종특별자치시",
	"세종특별자치시": "세종특별자치시",
}

// districtIndex maps a bare district token to its code for addresses that
// omit the city. Built once from regionCodes; districts whose names appear
// under more than one city would be dropped here, the current table has
// none.
var districtIndex = buildDistrictIndex()

func buildDistrictIndex() map[string]string {
	index := make(map[string]string)
	ambiguous := make(map[string]bool)
	for key, code := range regionCodes {
		parts := strings.Fields(key)
		if len(parts) != 2 {
			continue
		}
		district := parts[1]
		if _, seen := index[district]; seen {
			ambiguous[district] = true
			continue
		}
		index[district] = code
	}
	for district := range ambiguous {
		delete(index, district)
	}
	return index
}

// ResolveRegion maps a free-text address to a human-readable region name
// and a 5-digit region code. Precedence: "city district" combined key, then
// district alone, then city alone. An unresolvable address yields an empty
// code and a best-effort name ("해당 지역" as the last resort).
func ResolveRegion(address string) (name string, code string) {
	var city, district string
	for _, token := range strings.Fields(address) {
		if full, ok := cityAliases[token]; ok && city == "" {
			city = full
			continue
		}
		if district == "" && len([]rune(token)) >= 2 &&
			(strings.HasSuffix(token, "구") || strings.HasSuffix(token, "군")) {
			district = token
		}
	}

	if city != "" && district != "" {
		if code, ok := regionCodes[city+" "+district]; ok {
			return city + " " + district, code
		}
	}
	if district != "" {
		if code, ok := districtIndex[district]; ok {
			return district, code
		}
	}
	if city != "" {
		if code, ok := regionCodes[city]; ok {
			return city, code
		}
	}

	switch {
	case district != "":
		return district, ""
	case city != "":
		return city, ""
	default:
		return FallbackRegionName, ""
	}
}
