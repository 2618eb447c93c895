package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shenikar/barangay_portal/internal/apiclient"
	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/internal/notify"
	"github.com/shenikar/barangay_portal/internal/querycache"
	"github.com/sirupsen/logrus"
)

var ErrNotAuthenticated = errors.New("session: not authenticated")

// Authenticator - вызовы аутентификации REST API
type Authenticator interface {
	Login(ctx context.Context, in *models.LoginInput) (*models.LoginResponse, error)
	Refresh(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, in *models.RegisterInput) (*models.User, error)
	Tokens() (access, refresh string)
	RestoreTokens(access, refresh string)
	ClearTokens()
}

// Listener получает нового пользователя сессии (nil после выхода)
type Listener func(user *models.User)

// Store - состояние сессии: текущий пользователь, флаг загрузки и токены.
// Проверки ролей здесь только для интерфейса, права проверяет сервер.
type Store struct {
	auth     Authenticator
	tokens   TokenStore
	cache    *querycache.Cache
	notifier notify.Notifier
	logger   *logrus.Logger

	mu        sync.RWMutex
	user      *models.User
	loading   bool
	listeners map[int]Listener
	nextID    int
}

func NewStore(auth Authenticator, tokens TokenStore, cache *querycache.Cache, notifier notify.Notifier, logger *logrus.Logger) *Store {
	return &Store{
		auth:      auth,
		tokens:    tokens,
		cache:     cache,
		notifier:  notifier,
		logger:    logger,
		listeners: make(map[int]Listener),
	}
}

func (s *Store) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"service": "session",
		"method":  method,
	})
}

// Init восстанавливает сессию при старте: один запрос "кто я".
// При 401 делается одна попытка обновить токен. Любая другая ошибка
// очищает сессию, и пользователь остается неавторизованным.
func (s *Store) Init(ctx context.Context) error {
	log := s.log("Init")
	s.setLoading(true)
	defer s.setLoading(false)

	if saved, err := s.tokens.Load(ctx); err != nil {
		log.WithError(err).Warn("Failed to load saved tokens")
	} else if !saved.Empty() {
		s.auth.RestoreTokens(saved.Access, saved.Refresh)
	}

	user, err := s.auth.CurrentUser(ctx)
	if apiclient.IsUnauthorized(err) {
		log.Info("Access token rejected, refreshing")
		if refreshErr := s.auth.Refresh(ctx); refreshErr == nil {
			user, err = s.auth.CurrentUser(ctx)
		} else {
			err = refreshErr
		}
	}
	if err != nil {
		log.WithError(err).Info("No active session")
		s.clearLocal(ctx)
		return fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}

	s.persistTokens(ctx)
	s.setUser(user)
	log.WithField("user_id", user.ID).Info("Session restored")
	return nil
}

// Login входит по email и паролю
func (s *Store) Login(ctx context.Context, in *models.LoginInput) (*models.User, error) {
	log := s.log("Login").WithField("email", in.Email)
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.auth.Login(ctx, in)
	if err != nil {
		log.WithError(err).Warn("Login failed")
		notify.Failure(s.notifier, "Login failed", "Invalid email or password.")
		return nil, fmt.Errorf("session: could not login: %w", err)
	}

	user := resp.User
	if user == nil {
		user, err = s.auth.CurrentUser(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to fetch user after login")
			s.clearLocal(ctx)
			notify.Failure(s.notifier, "Login failed", "Could not load your account.")
			return nil, fmt.Errorf("session: could not load user: %w", err)
		}
	}

	s.persistTokens(ctx)
	s.setUser(user)
	notify.Success(s.notifier, "Welcome back", "Login successful.")
	log.WithField("user_id", user.ID).Info("Logged in")
	return user, nil
}

// Register создает учетную запись жителя; вход не выполняется
func (s *Store) Register(ctx context.Context, in *models.RegisterInput) (*models.User, error) {
	log := s.log("Register").WithField("email", in.Email)

	user, err := s.auth.Register(ctx, in)
	if err != nil {
		log.WithError(err).Warn("Registration failed")
		notify.Failure(s.notifier, "Registration failed", "Failed to create account.")
		return nil, fmt.Errorf("session: could not register: %w", err)
	}

	notify.Success(s.notifier, "Account created", "You can now log in.")
	log.Info("Registered")
	return user, nil
}

// Logout завершает сессию: сервер, cookie, сохраненные токены и кеш запросов.
// Ошибка сервера не мешает локальной очистке.
func (s *Store) Logout(ctx context.Context) error {
	log := s.log("Logout")

	err := s.auth.Logout(ctx)
	if err != nil {
		log.WithError(err).Warn("Server logout failed, clearing local session anyway")
	}

	s.clearLocal(ctx)
	s.cache.Clear()
	log.Info("Logged out")

	if err != nil {
		return fmt.Errorf("session: server logout: %w", err)
	}
	return nil
}

// Refresh обновляет access-токен
func (s *Store) Refresh(ctx context.Context) error {
	if err := s.auth.Refresh(ctx); err != nil {
		s.log("Refresh").WithError(err).Warn("Token refresh failed")
		if apiclient.IsUnauthorized(err) {
			s.clearLocal(ctx)
		}
		return fmt.Errorf("session: could not refresh: %w", err)
	}
	s.persistTokens(ctx)
	return nil
}

// AccessToken возвращает текущий access-токен
func (s *Store) AccessToken() string {
	access, _ := s.auth.Tokens()
	return access
}

func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) Authenticated() bool {
	return s.User() != nil
}

// HasRole сообщает, что роль пользователя входит в список
func (s *Store) HasRole(roles ...models.Role) bool {
	role := s.User().Role()
	if role == "" {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func (s *Store) IsStaff() bool {
	return s.HasRole(models.RoleAdmin, models.RoleStaff)
}

func (s *Store) IsResident() bool {
	return s.HasRole(models.RoleResident, models.RoleUser)
}

// OnChange подписывает на смену пользователя; возвращает отписку
func (s *Store) OnChange(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) setUser(user *models.User) {
	s.mu.Lock()
	s.user = user
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(user)
	}
}

func (s *Store) clearLocal(ctx context.Context) {
	s.auth.ClearTokens()
	if err := s.tokens.Clear(ctx); err != nil {
		s.log("clearLocal").WithError(err).Warn("Failed to clear saved tokens")
	}
	if s.User() != nil {
		s.setUser(nil)
	}
}

func (s *Store) persistTokens(ctx context.Context) {
	access, refresh := s.auth.Tokens()
	if access == "" && refresh == "" {
		return
	}
	if err := s.tokens.Save(ctx, Tokens{Access: access, Refresh: refresh}); err != nil {
		s.log("persistTokens").WithError(err).Warn("Failed to save tokens")
	}
}
