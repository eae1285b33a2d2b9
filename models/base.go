package models

// PageResult 分页查询结果，list 与 total 在同一过滤条件下计算
type PageResult struct {
	List     interface{} `json:"list"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

// NewPageResult 创建一个新的分页结果对象
func NewPageResult(list interface{}, total int64, page, pageSize int) PageResult {
	return PageResult{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

// NormalizePage 规范化分页参数，页码从1开始，每页最多100条
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}
