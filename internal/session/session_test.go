package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/barangay_portal/internal/apiclient"
	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/internal/notify"
	"github.com/shenikar/barangay_portal/internal/querycache"
	"github.com/shenikar/barangay_portal/internal/repository"
	"github.com/shenikar/barangay_portal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

// fakeAuthAPI - минимальный API аутентификации: /api/auth/user/ отвечает только на validAccess
type fakeAuthAPI struct {
	validAccess  atomic.Value
	refreshCalls atomic.Int32
	refreshOK    bool
	refreshTo    string
	logoutStatus int
}

func newTestStore(t *testing.T, api *fakeAuthAPI) (*Store, *querycache.Cache, *notify.Feed) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.POST("/api/token/", func(c *gin.Context) {
		var in models.LoginInput
		if err := c.ShouldBindJSON(&in); err != nil || in.Password != "secret" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "No active account found with the given credentials"})
			return
		}
		api.validAccess.Store("acc-login")
		c.JSON(http.StatusOK, gin.H{"access": "acc-login", "refresh": "ref-login"})
	})
	router.POST("/api/token/refresh/", func(c *gin.Context) {
		api.refreshCalls.Add(1)
		if !api.refreshOK {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired"})
			return
		}
		api.validAccess.Store(api.refreshTo)
		c.JSON(http.StatusOK, gin.H{"access": api.refreshTo})
	})
	router.GET("/api/auth/user/", func(c *gin.Context) {
		valid, _ := api.validAccess.Load().(string)
		if valid == "" || c.GetHeader("Authorization") != "Bearer "+valid {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":      7,
			"email":   "staff@barangay.ph",
			"profile": gin.H{"name": "Ana", "role": "staff"},
		})
	})
	router.POST("/api/logout/", func(c *gin.Context) {
		status := api.logoutStatus
		if status == 0 {
			status = http.StatusOK
		}
		c.Status(status)
	})
	router.POST("/api/register/", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"id": 8, "email": "new@barangay.ph"})
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	log := logger.Discard()
	client, err := apiclient.New(apiclient.Options{BaseURL: srv.URL, Timeout: 2 * time.Second}, log)
	require.NoError(t, err)

	cache := querycache.New(time.Minute, log)
	feed := notify.NewFeed(10, log)
	store := NewStore(repository.NewAuthRepository(client), NewMemoryTokenStore(), cache, feed, log)
	return store, cache, feed
}

func TestInit_NoSessionLeavesUserEmpty(t *testing.T) {
	api := &fakeAuthAPI{}
	store, _, _ := newTestStore(t, api)

	err := store.Init(context.Background())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Nil(t, store.User())
	assert.False(t, store.Loading())
	assert.Equal(t, int32(1), api.refreshCalls.Load(), "refresh is attempted once")
}

func TestInit_RefreshesOnceAfterUnauthorized(t *testing.T) {
	api := &fakeAuthAPI{refreshOK: true, refreshTo: "acc-2"}
	store, _, _ := newTestStore(t, api)
	require.NoError(t, store.tokens.Save(context.Background(), Tokens{Access: "acc-old", Refresh: "ref-1"}))

	err := store.Init(context.Background())

	require.NoError(t, err)
	require.NotNil(t, store.User())
	assert.Equal(t, models.ID("7"), store.User().ID)
	assert.True(t, store.IsStaff())
	assert.False(t, store.IsResident())
	assert.Equal(t, int32(1), api.refreshCalls.Load())

	saved, err := store.tokens.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "acc-2", saved.Access)
}

func TestLogin_SetsUserAndNotifiesListeners(t *testing.T) {
	api := &fakeAuthAPI{}
	store, _, feed := newTestStore(t, api)

	var seen []*models.User
	unsubscribe := store.OnChange(func(u *models.User) { seen = append(seen, u) })
	defer unsubscribe()

	user, err := store.Login(context.Background(), &models.LoginInput{Email: "staff@barangay.ph", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "staff@barangay.ph", user.Email)
	assert.True(t, store.HasRole(models.RoleStaff))
	require.Len(t, seen, 1)
	assert.Equal(t, user, seen[0])
	assert.Equal(t, notify.VariantDefault, feed.List()[0].Variant)
}

func TestLogin_WrongPasswordNotifiesFailure(t *testing.T) {
	api := &fakeAuthAPI{}
	store, _, feed := newTestStore(t, api)

	_, err := store.Login(context.Background(), &models.LoginInput{Email: "staff@barangay.ph", Password: "nope"})

	require.Error(t, err)
	assert.True(t, apiclient.IsUnauthorized(err))
	assert.Nil(t, store.User())
	assert.Equal(t, notify.VariantDestructive, feed.List()[0].Variant)
}

func TestLogout_ClearsUserTokensAndCache(t *testing.T) {
	api := &fakeAuthAPI{logoutStatus: http.StatusInternalServerError}
	store, cache, _ := newTestStore(t, api)
	ctx := context.Background()

	_, err := store.Login(ctx, &models.LoginInput{Email: "staff@barangay.ph", Password: "secret"})
	require.NoError(t, err)
	cache.Set("emergencies", []int{1})

	err = store.Logout(ctx)

	assert.Error(t, err, "server failure is reported")
	assert.Nil(t, store.User())
	assert.Empty(t, store.AccessToken())
	_, ok := querycache.Peek[[]int](cache, "emergencies")
	assert.False(t, ok)
	saved, err := store.tokens.Load(ctx)
	require.NoError(t, err)
	assert.True(t, saved.Empty())
}

func TestRegister_DoesNotLogIn(t *testing.T) {
	store, _, _ := newTestStore(t, &fakeAuthAPI{})

	user, err := store.Register(context.Background(), &models.RegisterInput{Email: "new@barangay.ph", Password: "x", ConfirmPassword: "x"})

	require.NoError(t, err)
	assert.Equal(t, models.ID("8"), user.ID)
	assert.False(t, store.Authenticated())
}

func TestHasRole_NoUser(t *testing.T) {
	store, _, _ := newTestStore(t, &fakeAuthAPI{})
	assert.False(t, store.HasRole(models.RoleAdmin, models.RoleStaff))
	assert.False(t, store.IsStaff())
}

func TestRedisTokenStore_TTLFollowsRefreshExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	s := NewRedisTokenStore(client)
	ctx := context.Background()

	tokens := Tokens{Access: "a", Refresh: signedToken(t, time.Now().Add(time.Hour))}
	require.NoError(t, s.Save(ctx, tokens))

	ttl := mr.TTL(tokensKey)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, tokens, loaded)

	require.NoError(t, s.Clear(ctx))
	loaded, err = s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.Empty())
}

func TestRedisTokenStore_ExpiredRefreshIsNotSaved(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	s := NewRedisTokenStore(client)

	require.NoError(t, s.Save(context.Background(), Tokens{Access: "a", Refresh: signedToken(t, time.Now().Add(-time.Minute))}))
	assert.False(t, mr.Exists(tokensKey))
}

func TestRedisTokenStore_OpaqueTokenUsesFallbackTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	s := NewRedisTokenStore(client)

	require.NoError(t, s.Save(context.Background(), Tokens{Access: "a", Refresh: "opaque"}))
	assert.Equal(t, 24*time.Hour, mr.TTL(tokensKey))
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(10 * time.Minute).Truncate(time.Second)
	got, err := TokenExpiry(signedToken(t, exp))
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))

	_, err = TokenExpiry("")
	assert.Error(t, err)
	_, err = TokenExpiry("not-a-jwt")
	assert.Error(t, err)
}

func TestRefresher_InvalidSchedule(t *testing.T) {
	store, _, _ := newTestStore(t, &fakeAuthAPI{})
	_, err := NewRefresher(store, "every sometimes", time.Minute, logger.Discard())
	assert.Error(t, err)
}

func TestRefresher_RefreshIfExpiring(t *testing.T) {
	api := &fakeAuthAPI{refreshOK: true}
	store, _, _ := newTestStore(t, api)
	ctx := context.Background()

	soon := signedToken(t, time.Now().Add(time.Minute))
	api.refreshTo = signedToken(t, time.Now().Add(time.Hour))
	api.validAccess.Store(soon)
	store.auth.RestoreTokens(soon, "ref-1")
	require.NoError(t, store.Init(ctx))

	refresher, err := NewRefresher(store, "@every 1h", 5*time.Minute, logger.Discard())
	require.NoError(t, err)

	refreshed, err := refresher.RefreshIfExpiring(ctx)
	require.NoError(t, err)
	assert.True(t, refreshed)
	assert.Equal(t, api.refreshTo, store.AccessToken())

	refreshed, err = refresher.RefreshIfExpiring(ctx)
	require.NoError(t, err)
	assert.False(t, refreshed, "fresh token is left alone")

	refresher.Start()
	refresher.Stop()
}
