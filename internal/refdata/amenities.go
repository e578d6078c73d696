package refdata

import "aptrank/server/internal/models"

// Builtin registries cover the Gangnam pilot area. Full-size registries are
// supplied as JSON overrides (see Load).

var builtinSchools = []models.School{
	{Name: "대도초등학교", Level: "초등학교", Foundation: "공립", Coordinate: models.Coordinate{Latitude: 37.5068, Longitude: 127.0350}},
	{Name: "대치초등학교", Level: "초등학교", Foundation: "공립", Coordinate: models.Coordinate{Latitude: 37.4962, Longitude: 127.0637}},
	{Name: "도곡초등학교", Level: "초등학교", Foundation: "공립", Coordinate: models.Coordinate{Latitude: 37.4908, Longitude: 127.0436}},
	{Name: "역삼초등학교", Level: "초등학교", Foundation: "공립", Coordinate: models.Coordinate{Latitude: 37.4957, Longitude: 127.0312}},
	{Name: "언북초등학교", Level: "초등학교", Foundation: "공립", Coordinate: models.Coordinate{Latitude: 37.5213, Longitude: 127.0413}},
	{Name: "압구정초등학교", Level: "초등학교", Foundation: "공립", Coordinate: models.Coordinate{Latitude: 37.5293, Longitude: 127.0339}},
	{Name: "역삼중학교", Level: "중학교", Foundation: "공립", Coordinate: models.Coordinate{Latitude: 37.4939, Longitude: 127.0418}},
	{Name: "대청중학교", Level: "중학교", Foundation: "공립", Coordinate: models.Coordinate{Latitude: 37.4935, Longitude: 127.0789}},
	{Name: "압구정중학교", Level: "중학교", Foundation: "공립", Coordinate: models.Coordinate{Latitude: 37.5317, Longitude: 127.0306}},
	{Name: "휘문중학교", Level: "중학교", Foundation: "사립", Coordinate: models.Coordinate{Latitude: 37.5094, Longitude: 127.0536}},
	{Name: "경기고등학교", Level: "고등학교", Foundation: "공립", Coordinate: models.Coordinate{Latitude: 37.5138, Longitude: 127.0497}},
	{Name: "휘문고등학교", Level: "고등학교", Foundation: "사립", Coordinate: models.Coordinate{Latitude: 37.5098, Longitude: 127.0546}},
	{Name: "중동고등학교", Level: "고등학교", Foundation: "사립", Coordinate: models.Coordinate{Latitude: 37.4883, Longitude: 127.0659}},
	{Name: "숙명여자고등학교", Level: "고등학교", Foundation: "사립", Coordinate: models.Coordinate{Latitude: 37.5016, Longitude: 127.0671}},
	{Name: "은광여자고등학교", Level: "고등학교", Foundation: "사립", Coordinate: models.Coordinate{Latitude: 37.4921, Longitude: 127.0497}},
}

var builtinSubwayStations = []models.SubwayStation{
	{Name: "강남역", EnglishName: "Gangnam", Line: "2호선", IsTransfer: true, TransferLines: []string{"신분당선"}, Coordinate: models.Coordinate{Latitude: 37.4979, Longitude: 127.0276}},
	{Name: "역삼역", EnglishName: "Yeoksam", Line: "2호선", Coordinate: models.Coordinate{Latitude: 37.5006, Longitude: 127.0364}},
	{Name: "선릉역", EnglishName: "Seolleung", Line: "2호선", IsTransfer: true, TransferLines: []string{"수인분당선"}, Coordinate: models.Coordinate{Latitude: 37.5045, Longitude: 127.0490}},
	{Name: "삼성역", EnglishName: "Samseong", Line: "2호선", Coordinate: models.Coordinate{Latitude: 37.5088, Longitude: 127.0631}},
	{Name: "교대역", EnglishName: "Seoul Nat'l Univ. of Education", Line: "2호선", IsTransfer: true, TransferLines: []string{"3호선"}, Coordinate: models.Coordinate{Latitude: 37.4934, Longitude: 127.0141}},
	{Name: "양재역", EnglishName: "Yangjae", Line: "3호선", IsTransfer: true, TransferLines: []string{"신분당선"}, Coordinate: models.Coordinate{Latitude: 37.4846, Longitude: 127.0342}},
	{Name: "매봉역", EnglishName: "Maebong", Line: "3호선", Coordinate: models.Coordinate{Latitude: 37.4869, Longitude: 127.0467}},
	{Name: "도곡역", EnglishName: "Dogok", Line: "3호선", IsTransfer: true, TransferLines: []string{"수인분당선"}, Coordinate: models.Coordinate{Latitude: 37.4908, Longitude: 127.0554}},
	{Name: "대치역", EnglishName: "Daechi", Line: "3호선", Coordinate: models.Coordinate{Latitude: 37.4946, Longitude: 127.0634}},
	{Name: "학여울역", EnglishName: "Hangnyeoul", Line: "3호선", Coordinate: models.Coordinate{Latitude: 37.4969, Longitude: 127.0706}},
	{Name: "압구정역", EnglishName: "Apgujeong", Line: "3호선", Coordinate: models.Coordinate{Latitude: 37.5270, Longitude: 127.0285}},
	{Name: "신사역", EnglishName: "Sinsa", Line: "3호선", IsTransfer: true, TransferLines: []string{"신분당선"}, Coordinate: models.Coordinate{Latitude: 37.5163, Longitude: 127.0203}},
	{Name: "한티역", EnglishName: "Hanti", Line: "수인분당선", Coordinate: models.Coordinate{Latitude: 37.4966, Longitude: 127.0527}},
	{Name: "구룡역", EnglishName: "Guryong", Line: "수인분당선", Coordinate: models.Coordinate{Latitude: 37.4868, Longitude: 127.0594}},
}

var builtinBusStops = []models.BusStop{
	{Name: "강남역12번출구", City: "서울", MobileNo: "23290", Coordinate: models.Coordinate{Latitude: 37.4990, Longitude: 127.0283}},
	{Name: "역삼역.포스코타워", City: "서울", MobileNo: "23284", Coordinate: models.Coordinate{Latitude: 37.5009, Longitude: 127.0357}},
	{Name: "선릉역", City: "서울", MobileNo: "23199", Coordinate: models.Coordinate{Latitude: 37.5040, Longitude: 127.0484}},
	{Name: "도곡동한티역", City: "서울", MobileNo: "23314", Coordinate: models.Coordinate{Latitude: 37.4961, Longitude: 127.0521}},
	{Name: "대치동미도아파트", City: "서울", MobileNo: "23321", Coordinate: models.Coordinate{Latitude: 37.4988, Longitude: 127.0588}},
	{Name: "은마아파트입구", City: "서울", MobileNo: "23331", Coordinate: models.Coordinate{Latitude: 37.4963, Longitude: 127.0617}},
	{Name: "압구정현대아파트", City: "서울", MobileNo: "23104", Coordinate: models.Coordinate{Latitude: 37.5282, Longitude: 127.0320}},
	{Name: "신사역4번출구", City: "서울", MobileNo: "23111", Coordinate: models.Coordinate{Latitude: 37.5159, Longitude: 127.0209}},
	{Name: "양재역말죽거리.강남베드로병원", City: "서울", MobileNo: "22297", Coordinate: models.Coordinate{Latitude: 37.4843, Longitude: 127.0350}},
	{Name: "매봉역", City: "서울", MobileNo: "23306", Coordinate: models.Coordinate{Latitude: 37.4872, Longitude: 127.0462}},
	{Name: "개포동역", City: "서울", MobileNo: "23368", Coordinate: models.Coordinate{Latitude: 37.4890, Longitude: 127.0665}},
	{Name: "삼성역7번출구", City: "서울", MobileNo: "23251", Coordinate: models.Coordinate{Latitude: 37.5096, Longitude: 127.0641}},
}
