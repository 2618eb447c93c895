package connectivity

import (
	"context"
	_ "embed"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const pingTimeout = 3 * time.Second

//go:embed offline.html
var offlinePage []byte

// Pinger проверяет доступность REST API
type Pinger interface {
	Ping(ctx context.Context) error
}

// Listener вызывается при смене состояния сети
type Listener func(online bool)

// Monitor периодически проверяет связь с API.
// До первой проверки считается, что связь есть.
type Monitor struct {
	pinger   Pinger
	interval time.Duration
	logger   *logrus.Logger

	online atomic.Bool

	mu        sync.Mutex
	listeners []Listener
	done      chan struct{}
}

func NewMonitor(pinger Pinger, interval time.Duration, logger *logrus.Logger) *Monitor {
	m := &Monitor{
		pinger:   pinger,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
	m.online.Store(true)
	return m
}

// Start сразу проверяет связь и затем повторяет проверку с интервалом
func (m *Monitor) Start(ctx context.Context) {
	m.logger.WithField("interval", m.interval).Info("Starting connectivity monitor...")
	go func() {
		defer close(m.done)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		m.Check(ctx)
		for {
			select {
			case <-ctx.Done():
				m.logger.Info("Stopping connectivity monitor.")
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}

// Done закрывается после остановки монитора
func (m *Monitor) Done() <-chan struct{} {
	return m.done
}

// Check выполняет одну проверку и возвращает текущее состояние
func (m *Monitor) Check(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := m.pinger.Ping(pingCtx)
	if err != nil && ctx.Err() != nil {
		// Остановка процесса не означает потерю связи
		return m.Online()
	}
	online := err == nil

	if m.online.Swap(online) != online {
		log := m.logger.WithField("service", "connectivity")
		if online {
			log.Info("API connection restored")
		} else {
			log.WithError(err).Warn("API is unreachable, switching to offline mode")
		}
		m.notify(online)
	}
	return online
}

func (m *Monitor) Online() bool {
	return m.online.Load()
}

// OnChange подписывает на смену состояния; возвращает функцию отписки
func (m *Monitor) OnChange(fn Listener) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
	idx := len(m.listeners) - 1
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.listeners[idx] = nil
	}
}

func (m *Monitor) notify(online bool) {
	m.mu.Lock()
	listeners := append([]Listener(nil), m.listeners...)
	m.mu.Unlock()
	for _, fn := range listeners {
		if fn != nil {
			fn(online)
		}
	}
}

// Middleware отдает статическую страницу (503), пока API недоступен
func (m *Monitor) Middleware() gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(m.interval.Round(time.Second) / time.Second))
	return func(c *gin.Context) {
		if m.Online() {
			c.Next()
			return
		}

		c.Header("Retry-After", retryAfter)
		if strings.Contains(c.GetHeader("Accept"), "application/json") {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "API is unreachable, working offline"})
			return
		}
		c.Data(http.StatusServiceUnavailable, "text/html; charset=utf-8", offlinePage)
		c.Abort()
	}
}
