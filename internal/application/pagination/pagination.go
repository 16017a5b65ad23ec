// Package pagination 提供基于内存快照的分页能力
package pagination

// Page 分页结果，Total 与 TotalPages 基于切片时的同一份快照
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// New 对快照按 1 起始的页码切片。
// 页码超出范围时返回空页，最后一页可能不足 pageSize。
func New[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(total, pageSize),
	}
}

// TotalPages 计算总页数
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	pages := total / pageSize
	if total%pageSize > 0 {
		pages++
	}
	return pages
}

// Next 返回下一页页码，最后一页回绕到第一页
func Next(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page >= totalPages {
		return 1
	}
	return page + 1
}

// Prev 返回上一页页码，第一页回绕到最后一页
func Prev(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page <= 1 {
		return totalPages
	}
	return page - 1
}
