package entity

// City 城市
type City struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// CitySelection 城市及其与某店铺的关联状态
type CitySelection struct {
	ID       string
	Title    string
	IsLinked bool
}
