package querycache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// DefaultStaleTime - окно свежести данных по умолчанию
const DefaultStaleTime = 5 * time.Minute

type entry struct {
	value     any
	hasValue  bool
	updatedAt time.Time
	// seq - номер запроса, результат которого сейчас лежит в записи
	seq uint64
	// invalidSeq - номер, выданный при последней инвалидации
	invalidSeq uint64
}

type subscriber struct {
	key string
	ch  chan string
}

// Cache - общий для процесса кеш серверного состояния.
// Ключи - имена ресурсов ("emergencies") и их элементы ("emergencies/42").
// На один ключ выполняется не больше одного запроса одновременно.
// Каждый запрос получает возрастающий номер, и ответ записывается, только
// если он новее уже записанного: запоздавший старый ответ не затирает свежие данные.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*entry
	subs       map[int]*subscriber
	nextSub    int
	seq        uint64
	clearedSeq uint64

	group     singleflight.Group
	staleTime time.Duration
	logger    *logrus.Logger
}

// New создает кеш; staleTime <= 0 означает DefaultStaleTime
func New(staleTime time.Duration, logger *logrus.Logger) *Cache {
	if staleTime <= 0 {
		staleTime = DefaultStaleTime
	}
	return &Cache{
		entries:   make(map[string]*entry),
		subs:      make(map[int]*subscriber),
		staleTime: staleTime,
		logger:    logger,
	}
}

type queryOptions struct {
	staleTime time.Duration
}

// Option настраивает отдельный запрос
type Option func(*queryOptions)

// WithStaleTime переопределяет окно свежести для запроса
func WithStaleTime(d time.Duration) Option {
	return func(o *queryOptions) {
		o.staleTime = d
	}
}

// Query возвращает свежие данные из кеша или загружает их.
// Параллельные вызовы по одному ключу разделяют один запрос.
// Отмена ctx вызывающего не отменяет общий запрос: его результат все равно попадет в кеш.
func Query[T any](ctx context.Context, c *Cache, key string, fetch func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	var zero T

	o := queryOptions{staleTime: c.staleTime}
	for _, opt := range opts {
		opt(&o)
	}

	if v, ok := c.fresh(key, o.staleTime); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		seq := c.nextSeq()
		log := c.logger.WithFields(logrus.Fields{
			"service": "querycache",
			"method":  "Query",
			"key":     key,
			"seq":     seq,
		})
		log.Debug("Fetching")

		v, err := fetch(shared)
		if err != nil {
			log.WithError(err).Debug("Fetch failed")
			return nil, err
		}
		return c.store(key, v, seq), nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		typed, ok := res.Val.(T)
		if !ok {
			return zero, fmt.Errorf("querycache: key %q holds %T", key, res.Val)
		}
		return typed, nil
	}
}

// Peek возвращает закешированное значение без запроса, даже устаревшее
func Peek[T any](c *Cache, key string) (T, bool) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.hasValue {
		return zero, false
	}
	typed, ok := e.value.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Set записывает значение как самое свежее
func (c *Cache) Set(key string, value any) {
	seq := c.nextSeq()
	c.store(key, value, seq)
}

// IsStale сообщает, что ключ отсутствует или помечен устаревшим
func (c *Cache) IsStale(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.hasValue {
		return true
	}
	return e.invalidSeq > e.seq || time.Since(e.updatedAt) >= c.staleTime
}

// Invalidate помечает ключ и все его элементы ("key/...") устаревшими.
// Следующее чтение загрузит данные заново, подписчики получат уведомление.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	c.seq++
	mark := c.seq

	if _, ok := c.entries[key]; !ok {
		c.entries[key] = &entry{}
	}
	for k, e := range c.entries {
		if matches(k, key) {
			e.invalidSeq = mark
			c.group.Forget(k)
		}
	}

	var targets []chan string
	for _, s := range c.subs {
		if matches(s.key, key) {
			targets = append(targets, s.ch)
		}
	}
	c.mu.Unlock()

	c.logger.WithFields(logrus.Fields{
		"service": "querycache",
		"method":  "Invalidate",
		"key":     key,
	}).Debug("Invalidated")

	for _, ch := range targets {
		select {
		case ch <- key:
		default:
		}
	}
}

// Remove удаляет ключ из кеша
func (c *Cache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.group.Forget(key)
}

// Clear удаляет все записи. Ответы запросов, начатых до очистки, отбрасываются.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.clearedSeq = c.seq
	for k := range c.entries {
		c.group.Forget(k)
	}
	c.entries = make(map[string]*entry)
}

// Subscribe возвращает канал уведомлений об инвалидации ключа (и его родителей).
// Уведомления сливаются: если получатель занят, повторное не ставится в очередь.
func (c *Cache) Subscribe(key string) (<-chan string, func()) {
	ch := make(chan string, 1)

	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = &subscriber{key: key, ch: ch}
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

func (c *Cache) fresh(key string, staleTime time.Duration) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.hasValue {
		return nil, false
	}
	if e.invalidSeq > e.seq || time.Since(e.updatedAt) >= staleTime {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) nextSeq() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// store записывает результат запроса seq, если он новее записанного,
// и возвращает значение, которое в итоге лежит в кеше
func (c *Cache) store(key string, value any, seq uint64) any {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq < c.clearedSeq {
		return value
	}

	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	if e.hasValue && seq <= e.seq {
		c.logger.WithFields(logrus.Fields{
			"service":  "querycache",
			"key":      key,
			"seq":      seq,
			"have_seq": e.seq,
		}).Debug("Dropping out-of-order response")
		return e.value
	}

	e.value = value
	e.hasValue = true
	e.seq = seq
	e.updatedAt = time.Now()
	return value
}

// matches сообщает, что key совпадает с prefix или является его элементом
func matches(key, prefix string) bool {
	return key == prefix || strings.HasPrefix(key, prefix+"/")
}
