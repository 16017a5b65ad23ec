package entity

// StoreCity 店铺与城市的关联
type StoreCity struct {
	ID      string
	StoreID string
	CityID  string
}

// StoreCategory 店铺与类目的关联
type StoreCategory struct {
	ID         string
	StoreID    string
	CategoryID string
}
