package domain

// Province は省・中央直轄市です。depth=2 で取得した場合のみ Districts が埋まります。
type Province struct {
	Code         int        `json:"code"`
	Name         string     `json:"name"`
	Codename     string     `json:"codename"`
	DivisionType string     `json:"division_type"`
	PhoneCode    int        `json:"phone_code"`
	Districts    []District `json:"districts"`
}

// District は県・区・市社です。depth=2 で取得した場合のみ Wards が埋まります。
type District struct {
	Code         int    `json:"code"`
	Name         string `json:"name"`
	Codename     string `json:"codename"`
	DivisionType string `json:"division_type"`
	ProvinceCode int    `json:"province_code"`
	Wards        []Ward `json:"wards"`
}

// Ward は坊・社・市鎮です。
type Ward struct {
	Code         int    `json:"code"`
	Name         string `json:"name"`
	Codename     string `json:"codename"`
	DivisionType string `json:"division_type"`
	DistrictCode int    `json:"district_code"`
}
