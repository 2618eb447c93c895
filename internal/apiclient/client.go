package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/publicsuffix"
)

const (
	// AccessCookie и RefreshCookie - имена cookie с токенами, которые выставляет сервер
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"

	maxErrorBody = 64 << 10
)

// Options - параметры клиента REST API
type Options struct {
	BaseURL      string
	MediaBaseURL string
	Timeout      time.Duration
}

// Client - единственный настроенный HTTP-клиент процесса.
// Все запросы идут с cookie из общего jar и bearer-токеном из cookie access_token.
type Client struct {
	baseURL   *url.URL
	mediaBase string
	http      *http.Client
	jar       http.CookieJar
	logger    *logrus.Logger
}

// New создает клиент REST API
func New(opts Options, logger *logrus.Logger) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("apiclient: invalid base url %q", opts.BaseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("apiclient: could not create cookie jar: %w", err)
	}

	mediaBase := opts.MediaBaseURL
	if mediaBase == "" {
		mediaBase = opts.BaseURL
	}

	return &Client{
		baseURL:   base,
		mediaBase: strings.TrimRight(mediaBase, "/"),
		http: &http.Client{
			Timeout: opts.Timeout,
			Jar:     jar,
		},
		jar:    jar,
		logger: logger,
	}, nil
}

// BaseURL возвращает адрес API
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Get выполняет GET и декодирует JSON-ответ в out
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Send(ctx, http.MethodGet, path, nil, "", out)
}

// PostJSON отправляет in как JSON методом POST
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, in, out)
}

// PutJSON отправляет in как JSON методом PUT
func (c *Client) PutJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, in, out)
}

// PatchJSON отправляет in как JSON методом PATCH
func (c *Client) PatchJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPatch, path, in, out)
}

// Delete выполняет DELETE; тело ответа игнорируется
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Send(ctx, http.MethodDelete, path, nil, "", nil)
}

// SendForm отправляет multipart-форму указанным методом
func (c *Client) SendForm(ctx context.Context, method, path string, form *Form, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return fmt.Errorf("apiclient: could not encode form for %s %s: %w", method, path, err)
	}
	return c.Send(ctx, method, path, body, contentType, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("apiclient: could not marshal body for %s %s: %w", method, path, err)
	}
	return c.Send(ctx, method, path, bytes.NewReader(payload), "application/json", out)
}

// Send выполняет запрос с произвольным телом.
// Ответ вне диапазона 2xx возвращается как *APIError.
func (c *Client) Send(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	requestID := uuid.New().String()
	log := c.logger.WithFields(logrus.Fields{
		"service":    "apiclient",
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), body)
	if err != nil {
		return fmt.Errorf("apiclient: could not create request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Cookie(AccessCookie); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Warn("Request failed")
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(started).Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Warn("Request returned error status")
		return &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Body:       string(raw),
		}
	}
	log.Debug("Request completed")

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("apiclient: could not decode response of %s %s: %w", method, path, err)
	}
	return nil
}

// Ping проверяет доступность сервера. Любой HTTP-ответ считается доступностью.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL.String(), nil)
	if err != nil {
		return fmt.Errorf("apiclient: could not create ping request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: server unreachable: %w", err)
	}
	resp.Body.Close()
	return nil
}

// Cookie возвращает значение cookie для адреса API или пустую строку
func (c *Client) Cookie(name string) string {
	for _, ck := range c.jar.Cookies(c.baseURL) {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}

// SetCookie кладет cookie в jar для адреса API
func (c *Client) SetCookie(name, value string) {
	c.jar.SetCookies(c.baseURL, []*http.Cookie{{
		Name:  name,
		Value: value,
		Path:  "/",
	}})
}

// ClearCookies удаляет перечисленные cookie
func (c *Client) ClearCookies(names ...string) {
	expired := make([]*http.Cookie, 0, len(names))
	for _, name := range names {
		expired = append(expired, &http.Cookie{
			Name:   name,
			Path:   "/",
			MaxAge: -1,
		})
	}
	c.jar.SetCookies(c.baseURL, expired)
}

// MediaURL превращает относительный путь медиафайла в абсолютный адрес
func (c *Client) MediaURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.mediaBase + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(c.baseURL.String(), "/") + "/" + strings.TrimLeft(path, "/")
}
