package domain

// Address はユーザーの配送先住所です。
type Address struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Street       string `json:"street"`
	WardCode     int    `json:"wardCode"`
	WardName     string `json:"wardName"`
	DistrictCode int    `json:"districtCode"`
	DistrictName string `json:"districtName"`
	ProvinceCode int    `json:"provinceCode"`
	ProvinceName string `json:"provinceName"`
	IsDefault    bool   `json:"isDefault"`
}

// AddressInput は住所の作成・更新リクエストのボディです。
type AddressInput struct {
	UserID       int64  `json:"userId"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Street       string `json:"street"`
	WardCode     int    `json:"wardCode"`
	WardName     string `json:"wardName"`
	DistrictCode int    `json:"districtCode"`
	DistrictName string `json:"districtName"`
	ProvinceCode int    `json:"provinceCode"`
	ProvinceName string `json:"provinceName"`
	IsDefault    bool   `json:"isDefault"`
}

// Category は商品カテゴリです。
type Category struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Image    *string `json:"image"`
	ParentID *int64  `json:"parentId,omitempty"`
}

// Recommendation はユーザー向けのおすすめ商品です。
type Recommendation struct {
	Product Product `json:"product"`
	Score   float64 `json:"score"`
	Reason  string  `json:"reason,omitempty"`
}
