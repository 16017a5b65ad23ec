package entity

// Category 商品类目
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// CategorySelection 类目及其与某店铺的关联状态
type CategorySelection struct {
	ID       string
	Title    string
	IsLinked bool
}
