package directory

import "strings"

// Параметры страниц по умолчанию
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page страница отфильтрованного списка
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// Filter возвращает элементы, для которых keep вернул true, сохраняя порядок
func Filter[T any](items []T, keep func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

// Paginate режет список на страницы с номерами от 1.
// page < 1 считается первой страницей, pageSize < 1 - размером по умолчанию.
// Страница за пределами списка пустая, но итоги посчитаны по всему списку.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	total := len(items)
	result := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}

	// Номер страницы сравнивается до умножения, иначе огромный page переполняет смещение
	if page > result.TotalPages {
		return result
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	result.Items = items[start:end]
	return result
}

// Map конвертирует элементы страницы, сохраняя итоги
func Map[T, R any](p Page[T], convert func(T) R) Page[R] {
	items := make([]R, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, convert(item))
	}
	return Page[R]{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}

// matchesSearch сообщает, что хотя бы одно из полей содержит query без учета регистра.
// Пустой query подходит всем.
func matchesSearch(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
