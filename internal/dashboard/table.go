package dashboard

import (
	"math"
	"strings"
)

// AllValues - значение фильтра, при котором фильтр не применяется
const AllValues = "all"

const DefaultPerPage = 10

// Table описывает, как искать и фильтровать строки одного ресурса
type Table[T any] struct {
	// Search - поля, по которым идет поиск подстроки без учета регистра
	Search []func(T) string
	// Filters - поля для точного совпадения, по имени фильтра
	Filters map[string]func(T) string
	Status  func(T) string
}

// Query - параметры таблицы из запроса
type Query struct {
	Search  string
	Filters map[string]string
	Page    int
	PerPage int
}

// Page - одна страница отфильтрованных строк.
// Start и End - границы среза, показ "Showing Start+1 to End of Total".
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
	Start      int `json:"start"`
	End        int `json:"end"`
}

// Filter оставляет строки, совпадающие с поиском и всеми фильтрами.
// Неизвестные имена фильтров игнорируются.
func (t *Table[T]) Filter(items []T, search string, filters map[string]string) []T {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if term != "" && !t.matchesSearch(item, term) {
			continue
		}
		if !t.matchesFilters(item, filters) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (t *Table[T]) matchesSearch(item T, term string) bool {
	for _, field := range t.Search {
		if strings.Contains(strings.ToLower(field(item)), term) {
			return true
		}
	}
	return false
}

func (t *Table[T]) matchesFilters(item T, filters map[string]string) bool {
	for name, want := range filters {
		if isAll(want) {
			continue
		}
		field, ok := t.Filters[name]
		if !ok {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(field(item)), strings.TrimSpace(want)) {
			return false
		}
	}
	return true
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, AllValues)
}

// Apply фильтрует строки и возвращает запрошенную страницу
func (t *Table[T]) Apply(items []T, q Query) Page[T] {
	return Paginate(t.Filter(items, q.Search, q.Filters), q.Page, q.PerPage)
}

// Counts считает строки по статусу без учета фильтров
func (t *Table[T]) Counts(items []T) map[string]int {
	if t.Status == nil {
		return map[string]int{}
	}
	return CountByStatus(items, t.Status)
}

// Paginate режет список на страницы. Номер страницы начинается с 1
// и прижимается к допустимому диапазону.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	total := len(items)
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	end := min(start+perPage, total)
	if start > total {
		start = total
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		Total:      total,
		Start:      start,
		End:        end,
	}
}

// CountByStatus считает строки по нормализованному статусу
func CountByStatus[T any](items []T, status func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[strings.ToLower(strings.TrimSpace(status(item)))]++
	}
	return counts
}
