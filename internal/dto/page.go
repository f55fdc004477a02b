package dto

// PageDto 分頁列表通用外層
type PageDto struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Size  int64 `json:"size"`
}

func NewPage(items any, total, page, size int64) *PageDto {
	return &PageDto{Items: items, Total: total, Page: page, Size: size}
}
