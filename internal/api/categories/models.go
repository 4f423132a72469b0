package categories

type createCategoryRequest struct {
	Title string `json:"title"`
}
