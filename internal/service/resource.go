package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/barangay_portal/internal/apiclient"
	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/internal/notify"
	"github.com/shenikar/barangay_portal/internal/querycache"
	"github.com/sirupsen/logrus"
)

// Repository определяет контракт REST-ресурса
type Repository[T, C, U any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id models.ID) (*T, error)
	Create(ctx context.Context, in *C) (*T, error)
	Update(ctx context.Context, id models.ID, in *U) (*T, error)
	Delete(ctx context.Context, id models.ID) error
}

// Messages - тексты уведомлений ресурса
type Messages struct {
	Created      string
	CreateFailed string
	Updated      string
	UpdateFailed string
	Deleted      string
	DeleteFailed string
}

// MessagesFor строит стандартные тексты для сущности, например "certificate"
func MessagesFor(singular, display string) Messages {
	return Messages{
		Created:      display + " created successfully.",
		CreateFailed: "Failed to create " + singular + ".",
		Updated:      display + " updated successfully.",
		UpdateFailed: "Failed to update " + singular + ".",
		Deleted:      display + " deleted successfully.",
		DeleteFailed: "Failed to delete " + singular + ".",
	}
}

// Resource связывает REST-ресурс с кешем запросов.
// Каждая успешная мутация инвалидирует ключ списка (и элементы под ним),
// каждая неудачная публикует уведомление об ошибке и не трогает кеш. Повторов нет.
type Resource[T, C, U any] struct {
	repo     Repository[T, C, U]
	cache    *querycache.Cache
	notifier notify.Notifier
	logger   *logrus.Logger
	name     string
	messages Messages
}

func NewResource[T, C, U any](
	name string,
	repo Repository[T, C, U],
	cache *querycache.Cache,
	notifier notify.Notifier,
	logger *logrus.Logger,
	messages Messages,
) *Resource[T, C, U] {
	return &Resource[T, C, U]{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
		name:     name,
		messages: messages,
	}
}

// ListKey возвращает ключ кеша списка
func (s *Resource[T, C, U]) ListKey() string {
	return s.name
}

// ItemKey возвращает ключ кеша записи
func (s *Resource[T, C, U]) ItemKey(id models.ID) string {
	return s.name + "/" + id.String()
}

func (s *Resource[T, C, U]) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"service":  "resource",
		"resource": s.name,
		"method":   method,
	})
}

// List возвращает список из кеша или загружает его
func (s *Resource[T, C, U]) List(ctx context.Context, opts ...querycache.Option) ([]T, error) {
	items, err := querycache.Query(ctx, s.cache, s.ListKey(), s.repo.List, opts...)
	if err != nil {
		s.log("List").WithError(err).Error("Failed to list")
		return nil, fmt.Errorf("service: could not list %s: %w", s.name, err)
	}
	return items, nil
}

// ListFiltered фильтрует закешированный список на клиенте
func (s *Resource[T, C, U]) ListFiltered(ctx context.Context, keep func(T) bool) ([]T, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Get возвращает запись по идентификатору
func (s *Resource[T, C, U]) Get(ctx context.Context, id models.ID) (*T, error) {
	item, err := querycache.Query(ctx, s.cache, s.ItemKey(id), func(ctx context.Context) (*T, error) {
		return s.repo.Get(ctx, id)
	})
	if err != nil {
		s.log("Get").WithField("id", id).WithError(err).Warn("Failed to get")
		return nil, fmt.Errorf("service: could not get %s %s: %w", s.name, id, err)
	}
	return item, nil
}

// Create создает запись
func (s *Resource[T, C, U]) Create(ctx context.Context, in *C) (*T, error) {
	log := s.log("Create")
	log.Info("Attempting to create")

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		log.WithError(err).Error("Failed to create in repository")
		s.fail(s.messages.CreateFailed, err)
		return nil, fmt.Errorf("service: could not create %s: %w", s.name, err)
	}

	s.cache.Invalidate(s.ListKey())
	notify.Success(s.notifier, "Created", s.messages.Created)
	log.Info("Created successfully")
	return created, nil
}

// Update изменяет запись
func (s *Resource[T, C, U]) Update(ctx context.Context, id models.ID, in *U) (*T, error) {
	log := s.log("Update").WithField("id", id)
	log.Info("Attempting to update")

	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		log.WithError(err).Error("Failed to update in repository")
		s.fail(s.messages.UpdateFailed, err)
		return nil, fmt.Errorf("service: could not update %s %s: %w", s.name, id, err)
	}

	s.cache.Invalidate(s.ListKey())
	notify.Success(s.notifier, "Updated", s.messages.Updated)
	log.Info("Updated successfully")
	return updated, nil
}

// Delete удаляет запись
func (s *Resource[T, C, U]) Delete(ctx context.Context, id models.ID) error {
	log := s.log("Delete").WithField("id", id)
	log.Info("Attempting to delete")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete in repository")
		s.fail(s.messages.DeleteFailed, err)
		return fmt.Errorf("service: could not delete %s %s: %w", s.name, id, err)
	}

	s.cache.Invalidate(s.ListKey())
	notify.Success(s.notifier, "Deleted", s.messages.Deleted)
	log.Info("Deleted successfully")
	return nil
}

// Refresh помечает список устаревшим и загружает его заново
func (s *Resource[T, C, U]) Refresh(ctx context.Context) ([]T, error) {
	s.cache.Invalidate(s.ListKey())
	return s.List(ctx)
}

func (s *Resource[T, C, U]) fail(description string, err error) {
	if msg := serverMessage(err); msg != "" {
		description = description + " " + msg
	}
	notify.Failure(s.notifier, "Error", description)
}

// serverMessage достает detail из ответа сервера для клиентских ошибок 4xx
func serverMessage(err error) string {
	code := apiclient.StatusCode(err)
	if code < 400 || code >= 500 {
		return ""
	}
	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) {
		return ""
	}
	return apiErr.Message()
}
