package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shenikar/barangay_portal/internal/apiclient"
	"github.com/shenikar/barangay_portal/internal/models"
)

// ErrUnsupported - ресурс не поддерживает операцию
var ErrUnsupported = errors.New("repository: operation not supported")

// Endpoints - пути ресурса. Item, Update и Delete содержат %s на месте идентификатора.
type Endpoints struct {
	List         string
	Item         string
	Create       string
	Update       string
	Delete       string
	UpdateMethod string
}

// FormEncoder превращает входные данные в multipart-форму.
// nil означает, что тело уходит JSON.
type FormEncoder[In any] func(in *In) *apiclient.Form

// REST - репозиторий ресурса поверх REST API.
// T - запись, C - данные создания, U - данные обновления.
type REST[T, C, U any] struct {
	api        *apiclient.Client
	name       string
	ep         Endpoints
	createForm FormEncoder[C]
	updateForm FormEncoder[U]
}

func newREST[T, C, U any](api *apiclient.Client, name string, ep Endpoints) *REST[T, C, U] {
	if ep.UpdateMethod == "" {
		ep.UpdateMethod = http.MethodPut
	}
	return &REST[T, C, U]{api: api, name: name, ep: ep}
}

// Name возвращает имя ресурса
func (r *REST[T, C, U]) Name() string {
	return r.name
}

// List возвращает все записи, видимые текущему пользователю
func (r *REST[T, C, U]) List(ctx context.Context) ([]T, error) {
	return r.list(ctx, r.ep.List)
}

func (r *REST[T, C, U]) list(ctx context.Context, path string) ([]T, error) {
	var raw json.RawMessage
	if err := r.api.Get(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.name, err)
	}
	items, err := decodeList[T](raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s list: %w", r.name, err)
	}
	return items, nil
}

// Get возвращает запись по идентификатору
func (r *REST[T, C, U]) Get(ctx context.Context, id models.ID) (*T, error) {
	var out T
	if err := r.api.Get(ctx, itemPath(r.ep.Item, id), &out); err != nil {
		return nil, fmt.Errorf("failed to get %s %s: %w", r.name, id, err)
	}
	return &out, nil
}

// Create создает запись
func (r *REST[T, C, U]) Create(ctx context.Context, in *C) (*T, error) {
	if r.ep.Create == "" {
		return nil, fmt.Errorf("create %s: %w", r.name, ErrUnsupported)
	}
	var out T
	var err error
	if form := encodeForm(r.createForm, in); form != nil {
		err = r.api.SendForm(ctx, http.MethodPost, r.ep.Create, form, &out)
	} else {
		err = r.api.PostJSON(ctx, r.ep.Create, in, &out)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", r.name, err)
	}
	return &out, nil
}

// Update обновляет запись методом ресурса (PUT или PATCH)
func (r *REST[T, C, U]) Update(ctx context.Context, id models.ID, in *U) (*T, error) {
	if r.ep.Update == "" {
		return nil, fmt.Errorf("update %s: %w", r.name, ErrUnsupported)
	}
	path := itemPath(r.ep.Update, id)
	var out T
	var err error
	if form := encodeForm(r.updateForm, in); form != nil {
		err = r.api.SendForm(ctx, r.ep.UpdateMethod, path, form, &out)
	} else {
		err = r.sendJSON(ctx, r.ep.UpdateMethod, path, in, &out)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update %s %s: %w", r.name, id, err)
	}
	return &out, nil
}

// Delete удаляет запись без возможности восстановления
func (r *REST[T, C, U]) Delete(ctx context.Context, id models.ID) error {
	if r.ep.Delete == "" {
		return fmt.Errorf("delete %s: %w", r.name, ErrUnsupported)
	}
	if err := r.api.Delete(ctx, itemPath(r.ep.Delete, id)); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", r.name, id, err)
	}
	return nil
}

func (r *REST[T, C, U]) sendJSON(ctx context.Context, method, path string, in, out any) error {
	switch method {
	case http.MethodPatch:
		return r.api.PatchJSON(ctx, path, in, out)
	case http.MethodPost:
		return r.api.PostJSON(ctx, path, in, out)
	default:
		return r.api.PutJSON(ctx, path, in, out)
	}
}

func encodeForm[In any](enc FormEncoder[In], in *In) *apiclient.Form {
	if enc == nil || in == nil {
		return nil
	}
	return enc(in)
}

func itemPath(pattern string, id models.ID) string {
	return fmt.Sprintf(pattern, url.PathEscape(id.String()))
}

// decodeList принимает как массив, так и постраничный ответ {"results": [...]}
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return []T{}, nil
	}
	if strings.HasPrefix(string(trimmed), "{") {
		var page struct {
			Results []T `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, err
		}
		if page.Results == nil {
			return []T{}, nil
		}
		return page.Results, nil
	}
	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, err
	}
	return items, nil
}
