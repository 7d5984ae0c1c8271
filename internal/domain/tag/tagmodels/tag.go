package tagmodels

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TagRequest struct {
	Name string `json:"name" validate:"required"`
}

type TagUpdateRequest struct {
	Name string `json:"name"`
}

// MergeTag - то же правило, что и для пользователя: пустое имя игнорируется.
func MergeTag(tag *Tag, req TagUpdateRequest) {
	if req.Name != "" {
		tag.Name = req.Name
	}
}
