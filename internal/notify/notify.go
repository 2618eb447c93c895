package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// DefaultCapacity - сколько уведомлений хранит лента
const DefaultCapacity = 50

// Notification - короткое закрываемое уведомление для пользователя
type Notification struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Variant     Variant   `json:"variant"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notifier - получатель уведомлений
type Notifier interface {
	Notify(n Notification)
}

// Success публикует обычное уведомление
func Success(n Notifier, title, description string) {
	n.Notify(Notification{Title: title, Description: description, Variant: VariantDefault})
}

// Failure публикует уведомление об ошибке
func Failure(n Notifier, title, description string) {
	n.Notify(Notification{Title: title, Description: description, Variant: VariantDestructive})
}

// Feed хранит последние уведомления и пишет каждое в лог
type Feed struct {
	mu       sync.Mutex
	items    []Notification
	capacity int
	logger   *logrus.Logger
}

func NewFeed(capacity int, logger *logrus.Logger) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{
		capacity: capacity,
		logger:   logger,
	}
}

// Notify добавляет уведомление; самые старые вытесняются при переполнении
func (f *Feed) Notify(n Notification) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.Variant == "" {
		n.Variant = VariantDefault
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	f.mu.Lock()
	f.items = append(f.items, n)
	if over := len(f.items) - f.capacity; over > 0 {
		f.items = append([]Notification(nil), f.items[over:]...)
	}
	f.mu.Unlock()

	entry := f.logger.WithFields(logrus.Fields{
		"service":         "notify",
		"notification_id": n.ID,
		"title":           n.Title,
		"description":     n.Description,
	})
	if n.Variant == VariantDestructive {
		entry.Warn("Notification")
		return
	}
	entry.Info("Notification")
}

// List возвращает уведомления, новые первыми
func (f *Feed) List() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notification, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		out = append(out, f.items[i])
	}
	return out
}

// Dismiss закрывает уведомление; false, если его уже нет
func (f *Feed) Dismiss(id uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, n := range f.items {
		if n.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}
