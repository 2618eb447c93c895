package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/internal/querycache"
)

var ErrUnknownResource = errors.New("dashboard: unknown resource")

// Source - ресурс, из которого панель берет строки
type Source[T any] interface {
	List(ctx context.Context, opts ...querycache.Option) ([]T, error)
	Get(ctx context.Context, id models.ID) (*T, error)
	Delete(ctx context.Context, id models.ID) error
}

// StatusSetter меняет статус записи по строковому значению
type StatusSetter func(ctx context.Context, id models.ID, status string) error

// Row - строка таблицы с подписью статуса
type Row struct {
	Data  any          `json:"data"`
	Badge models.Badge `json:"badge"`
}

// View - состояние таблицы для отображения
type View struct {
	Resource   string         `json:"resource"`
	Rows       []Row          `json:"rows"`
	Counts     map[string]int `json:"counts"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	TotalPages int            `json:"total_pages"`
	Total      int            `json:"total"`
	Start      int            `json:"start"`
	End        int            `json:"end"`
}

// Board - таблица одного ресурса на панели сотрудника
type Board interface {
	Name() string
	View(ctx context.Context, q Query) (*View, error)
	Get(ctx context.Context, id models.ID) (any, error)
	SetStatus(ctx context.Context, id models.ID, status string) error
	Delete(ctx context.Context, id models.ID) error
}

// Resource связывает источник записей с описанием таблицы
type Resource[T any] struct {
	name      string
	kind      models.Kind
	source    Source[T]
	table     *Table[T]
	setStatus StatusSetter
}

func NewResource[T any](name string, kind models.Kind, source Source[T], table *Table[T], setStatus StatusSetter) *Resource[T] {
	return &Resource[T]{
		name:      name,
		kind:      kind,
		source:    source,
		table:     table,
		setStatus: setStatus,
	}
}

func (r *Resource[T]) Name() string {
	return r.name
}

// View загружает список (через кеш) и строит страницу таблицы
func (r *Resource[T]) View(ctx context.Context, q Query) (*View, error) {
	items, err := r.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: could not load %s: %w", r.name, err)
	}

	page := r.table.Apply(items, q)
	rows := make([]Row, 0, len(page.Items))
	for _, item := range page.Items {
		row := Row{Data: item}
		if r.table.Status != nil {
			row.Badge = models.BadgeFor(r.kind, r.table.Status(item))
		}
		rows = append(rows, row)
	}

	return &View{
		Resource:   r.name,
		Rows:       rows,
		Counts:     r.table.Counts(items),
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalPages: page.TotalPages,
		Total:      page.Total,
		Start:      page.Start,
		End:        page.End,
	}, nil
}

func (r *Resource[T]) Get(ctx context.Context, id models.ID) (any, error) {
	item, err := r.source.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *Resource[T]) SetStatus(ctx context.Context, id models.ID, status string) error {
	if r.setStatus == nil {
		return fmt.Errorf("%w: %s has no status", ErrUnknownResource, r.name)
	}
	return r.setStatus(ctx, id, status)
}

func (r *Resource[T]) Delete(ctx context.Context, id models.ID) error {
	return r.source.Delete(ctx, id)
}

// Registry - набор таблиц по имени ресурса
type Registry struct {
	boards map[string]Board
}

func NewRegistry(boards ...Board) *Registry {
	r := &Registry{boards: make(map[string]Board, len(boards))}
	for _, b := range boards {
		r.boards[b.Name()] = b
	}
	return r
}

func (r *Registry) Lookup(name string) (Board, error) {
	b, ok := r.boards[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResource, name)
	}
	return b, nil
}

// Names возвращает имена ресурсов в алфавитном порядке
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.boards))
	for name := range r.boards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
