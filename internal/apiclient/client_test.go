package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	client, err := New(Options{BaseURL: srv.URL + "/", Timeout: 2 * time.Second}, logger.Discard())
	require.NoError(t, err)
	return client, srv
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(Options{BaseURL: "not a url"}, logger.Discard())
	assert.Error(t, err)
}

func TestGet_DecodesJSONAndSetsHeaders(t *testing.T) {
	var gotAuth, gotRequestID, gotAccept string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAccept = r.Header.Get("Accept")
		assert.Equal(t, "/api/emergencies/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id": 7, "name": "Juan", "status": "pending", "latitude": "14.599512", "longitude": 120.984222}]`)
	})
	client.SetCookie(AccessCookie, "tok-123")

	var reports []models.EmergencyReport
	err := client.Get(context.Background(), "/api/emergencies/", &reports)

	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, models.ID("7"), reports[0].ID)
	assert.InDelta(t, 14.599512, reports[0].Latitude.Float64(), 1e-9)
	assert.InDelta(t, 120.984222, reports[0].Longitude.Float64(), 1e-9)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "application/json", gotAccept)
}

func TestSend_ErrorStatusReturnsAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail": "Not found."}`)
	})

	err := client.Get(context.Background(), "/api/emergencies/99/", nil)

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	assert.Contains(t, err.Error(), "Not found.")
}

func TestPatchJSON_SendsBody(t *testing.T) {
	var body string
	var method string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		method = r.Method
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{}`)
	})

	err := client.PatchJSON(context.Background(), "/api/emergencies/1/", models.StatusPatch("In_Progress "), nil)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, method)
	assert.JSONEq(t, `{"status": "in_progress"}`, body)
}

func TestDelete_NoContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.Delete(context.Background(), "/api/emergencies/1/"))
}

func TestSendForm_Multipart(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "14.599512", r.FormValue("latitude"))
		assert.Equal(t, "fire", r.FormValue("incident_type"))

		file, header, err := r.FormFile("media_file")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "photo.jpg", header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))
		assert.Equal(t, "jpegdata", string(content))

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id": "1"}`)
	})

	form := NewForm().
		Set("incident_type", "fire").
		SetFloat("latitude", 14.599512).
		File(&models.Upload{
			Field:       "media_file",
			Filename:    "photo.jpg",
			ContentType: "image/jpeg",
			Content:     strings.NewReader("jpegdata"),
		})

	var out models.EmergencyReport
	err := client.SendForm(context.Background(), http.MethodPost, "/api/emergencies/", form, &out)

	require.NoError(t, err)
	assert.Equal(t, models.ID("1"), out.ID)
}

func TestCookies_ServerSetAndClear(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: AccessCookie, Value: "from-server", Path: "/"})
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{}`)
	})

	require.NoError(t, client.PostJSON(context.Background(), "/api/token/", map[string]string{"email": "a@b.c"}, nil))
	assert.Equal(t, "from-server", client.Cookie(AccessCookie))

	client.ClearCookies(AccessCookie, RefreshCookie)
	assert.Empty(t, client.Cookie(AccessCookie))
}

func TestMediaURL(t *testing.T) {
	client, err := New(Options{BaseURL: "http://api.local:8000/", MediaBaseURL: "https://cdn.example.org/media/"}, logger.Discard())
	require.NoError(t, err)

	assert.Equal(t, "", client.MediaURL(""))
	assert.Equal(t, "https://cdn.example.org/media/emergencies/a.jpg", client.MediaURL("/emergencies/a.jpg"))
	assert.Equal(t, "https://s3.example.org/x.png", client.MediaURL("https://s3.example.org/x.png"))
}

func TestPing(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	assert.NoError(t, client.Ping(context.Background()))

	srv.Close()
	assert.Error(t, client.Ping(context.Background()))
}
