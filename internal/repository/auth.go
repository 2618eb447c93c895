package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/barangay_portal/internal/apiclient"
	"github.com/shenikar/barangay_portal/internal/models"
)

// AuthRepository - вызовы аутентификации. Токены сервер кладет в cookie, jar клиента их хранит.
type AuthRepository struct {
	api *apiclient.Client
}

func NewAuthRepository(api *apiclient.Client) *AuthRepository {
	return &AuthRepository{api: api}
}

// Login получает пару токенов. Если токены пришли в теле, они дублируются в cookie.
func (r *AuthRepository) Login(ctx context.Context, in *models.LoginInput) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := r.api.PostJSON(ctx, "/api/token/", in, &out); err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}
	r.storeTokens(out.Access, out.Refresh)
	return &out, nil
}

// Refresh обновляет access-токен по refresh-токену из cookie
func (r *AuthRepository) Refresh(ctx context.Context) error {
	body := map[string]string{}
	if refresh := r.api.Cookie(apiclient.RefreshCookie); refresh != "" {
		body["refresh"] = refresh
	}
	var out models.LoginResponse
	if err := r.api.PostJSON(ctx, "/api/token/refresh/", body, &out); err != nil {
		return fmt.Errorf("failed to refresh token: %w", err)
	}
	r.storeTokens(out.Access, out.Refresh)
	return nil
}

// CurrentUser возвращает пользователя текущей сессии
func (r *AuthRepository) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := r.api.Get(ctx, "/api/auth/user/", &out); err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return &out, nil
}

// Logout завершает сессию на сервере
func (r *AuthRepository) Logout(ctx context.Context) error {
	if err := r.api.PostJSON(ctx, "/api/logout/", map[string]string{}, nil); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

func (r *AuthRepository) Register(ctx context.Context, in *models.RegisterInput) (*models.User, error) {
	var out models.User
	if err := r.api.PostJSON(ctx, "/api/register/", in, &out); err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}
	return &out, nil
}

// Tokens возвращает текущие токены из cookie
func (r *AuthRepository) Tokens() (access, refresh string) {
	return r.api.Cookie(apiclient.AccessCookie), r.api.Cookie(apiclient.RefreshCookie)
}

// RestoreTokens кладет сохраненные токены обратно в cookie
func (r *AuthRepository) RestoreTokens(access, refresh string) {
	r.storeTokens(access, refresh)
}

// ClearTokens удаляет cookie с токенами
func (r *AuthRepository) ClearTokens() {
	r.api.ClearCookies(apiclient.AccessCookie, apiclient.RefreshCookie)
}

func (r *AuthRepository) storeTokens(access, refresh string) {
	if access != "" {
		r.api.SetCookie(apiclient.AccessCookie, access)
	}
	if refresh != "" {
		r.api.SetCookie(apiclient.RefreshCookie, refresh)
	}
}
