package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/barangay_portal/internal/apiclient"
	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeAPI поднимает gin-сервер, изображающий REST API
func newFakeAPI(t *testing.T, register func(r *gin.Engine)) *apiclient.Client {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	register(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	api, err := apiclient.New(apiclient.Options{BaseURL: srv.URL, Timeout: 2 * time.Second}, logger.Discard())
	require.NoError(t, err)
	return api
}

func TestEmergencyRepository_CreateRoundsCoordinates(t *testing.T) {
	var form map[string][]string
	var mediaName string
	api := newFakeAPI(t, func(r *gin.Engine) {
		r.POST("/api/emergencies/", func(c *gin.Context) {
			mf, err := c.MultipartForm()
			if !assert.NoError(t, err) {
				c.Status(http.StatusBadRequest)
				return
			}
			form = mf.Value
			if files := mf.File["media_file"]; len(files) == 1 {
				mediaName = files[0].Filename
			}
			c.JSON(http.StatusCreated, gin.H{"id": 12, "status": "pending", "latitude": "14.599512"})
		})
	})
	repo := NewEmergencyRepository(api)

	created, err := repo.Create(context.Background(), &models.CreateEmergencyInput{
		Name:         "Maria",
		IncidentType: models.IncidentFire,
		Description:  "Kitchen fire",
		LocationText: "Purok 3",
		Latitude:     14.59951234,
		Longitude:    120.98422199,
		Media: &models.Upload{
			Filename: "fire.jpg",
			Content:  strings.NewReader("img"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, models.ID("12"), created.ID)
	assert.Equal(t, []string{"14.599512"}, form["latitude"])
	assert.Equal(t, []string{"120.984222"}, form["longitude"])
	assert.Equal(t, []string{"fire"}, form["incident_type"])
	assert.Equal(t, "fire.jpg", mediaName)
}

func TestEmergencyRepository_UpdateSendsOnlyStatus(t *testing.T) {
	var method string
	var body map[string]any
	api := newFakeAPI(t, func(r *gin.Engine) {
		r.PATCH("/api/emergencies/:id/", func(c *gin.Context) {
			method = c.Request.Method
			assert.Equal(t, "7", c.Param("id"))
			_ = c.ShouldBindJSON(&body)
			c.JSON(http.StatusOK, gin.H{"id": 7, "status": "in_progress"})
		})
	})
	repo := NewEmergencyRepository(api)

	updated, err := repo.Update(context.Background(), "7", models.StatusPatch(models.EmergencyInProgress))

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, map[string]any{"status": "in_progress"}, body)
	assert.Equal(t, models.EmergencyInProgress, updated.Status)
}

func TestEmergencyRepository_ListAndDelete(t *testing.T) {
	deleted := ""
	api := newFakeAPI(t, func(r *gin.Engine) {
		r.GET("/api/emergencies/", func(c *gin.Context) {
			c.JSON(http.StatusOK, []gin.H{
				{"id": 1, "status": "pending", "submitted_at": "2025-01-01T10:00:00Z"},
				{"id": "2", "status": "resolved", "submitted_at": "2025-01-01T11:00:00Z"},
			})
		})
		r.DELETE("/api/emergencies/:id/", func(c *gin.Context) {
			deleted = c.Param("id")
			c.Status(http.StatusNoContent)
		})
	})
	repo := NewEmergencyRepository(api)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.ID("1"), items[0].ID)
	assert.Equal(t, models.ID("2"), items[1].ID)

	require.NoError(t, repo.Delete(context.Background(), "2"))
	assert.Equal(t, "2", deleted)
}

func TestREST_ListAcceptsPaginatedResponse(t *testing.T) {
	api := newFakeAPI(t, func(r *gin.Engine) {
		r.GET("/api/blotters/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"count": 1, "results": []gin.H{{"report_number": "BLT-1", "status": "pending"}}})
		})
	})

	items, err := NewBlotterRepository(api).List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.ID("BLT-1"), items[0].ReportNumber)
}

func TestREST_ErrorsAreWrapped(t *testing.T) {
	api := newFakeAPI(t, func(r *gin.Engine) {
		r.GET("/api/certificates/:id/", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		})
	})

	_, err := NewCertificateRepository(api).Get(context.Background(), "5")
	require.Error(t, err)
	assert.True(t, apiclient.IsNotFound(err))
	assert.Contains(t, err.Error(), "certificates")
}

func TestCertificateRepository_EditUsesPutPath(t *testing.T) {
	var got models.EditCertificateInput
	api := newFakeAPI(t, func(r *gin.Engine) {
		r.PUT("/api/certificates/edit/:id/", func(c *gin.Context) {
			_ = c.ShouldBindJSON(&got)
			c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": got.Status})
		})
	})

	cert := &models.Certificate{ID: "3", FirstName: "Ana", LastName: "Cruz", Status: models.CertificatePending}
	in := cert.EditInput()
	in.Status = models.CertificateApproved

	out, err := NewCertificateRepository(api).Update(context.Background(), "3", in)
	require.NoError(t, err)
	assert.Equal(t, models.CertificateApproved, out.Status)
	assert.Equal(t, "Ana", got.FirstName)
}

func TestUserRepository_CreateUnsupported(t *testing.T) {
	api := newFakeAPI(t, func(r *gin.Engine) {})

	_, err := NewUserRepository(api).Create(context.Background(), &models.RegisterInput{})
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestAnnouncementRepository_JSONWithoutImage(t *testing.T) {
	var contentType string
	api := newFakeAPI(t, func(r *gin.Engine) {
		r.POST("/api/announcements/create/", func(c *gin.Context) {
			contentType = c.ContentType()
			c.JSON(http.StatusCreated, gin.H{"id": 1, "title": "Clean-up drive"})
		})
	})

	_, err := NewAnnouncementRepository(api).Create(context.Background(), &models.AnnouncementInput{Title: "Clean-up drive"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
}

func TestComplaintRepository_MineAndMultipartUpdate(t *testing.T) {
	var fields map[string][]string
	var evidence string
	api := newFakeAPI(t, func(r *gin.Engine) {
		r.GET("/api/complaints/my-complaints/", func(c *gin.Context) {
			c.JSON(http.StatusOK, []gin.H{{"id": 4, "reference_number": "CMP-4", "latitude": "15.1", "longitude": "120.6"}})
		})
		r.PUT("/api/complaints/:id/update/", func(c *gin.Context) {
			mf, err := c.MultipartForm()
			if !assert.NoError(t, err) {
				c.Status(http.StatusBadRequest)
				return
			}
			fields = mf.Value
			fh := mf.File["evidence"][0]
			f, _ := fh.Open()
			raw, _ := io.ReadAll(f)
			f.Close()
			evidence = string(raw)
			c.JSON(http.StatusOK, gin.H{"id": 4, "status": "resolved"})
		})
	})
	repo := NewComplaintRepository(api)

	mine, err := repo.Mine(context.Background())
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.InDelta(t, 15.1, mine[0].Latitude.Float64(), 1e-9)

	in := mine[0].EditInput()
	in.Status = models.ComplaintResolved
	in.Evidence = &models.Upload{Filename: "proof.txt", Content: strings.NewReader("proof")}

	out, err := repo.Update(context.Background(), mine[0].ID, in)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintResolved, out.Status)
	assert.Equal(t, []string{"resolved"}, fields["status"])
	assert.Equal(t, []string{"true"}, fields["agree_to_terms"])
	assert.Equal(t, "proof", evidence)
}

func TestAuthRepository_LoginStoresTokensAndRefresh(t *testing.T) {
	var refreshBody map[string]string
	api := newFakeAPI(t, func(r *gin.Engine) {
		r.POST("/api/token/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"access": "acc-1", "refresh": "ref-1"})
		})
		r.POST("/api/token/refresh/", func(c *gin.Context) {
			raw, _ := io.ReadAll(c.Request.Body)
			_ = json.Unmarshal(raw, &refreshBody)
			c.JSON(http.StatusOK, gin.H{"access": "acc-2"})
		})
		r.GET("/api/auth/user/", func(c *gin.Context) {
			assert.Equal(t, "Bearer acc-2", c.GetHeader("Authorization"))
			c.JSON(http.StatusOK, gin.H{"id": 1, "username": "staff", "profile": gin.H{"role": "staff"}})
		})
	})
	repo := NewAuthRepository(api)

	_, err := repo.Login(context.Background(), &models.LoginInput{Email: "s@b.ph", Password: "pw"})
	require.NoError(t, err)
	access, refresh := repo.Tokens()
	assert.Equal(t, "acc-1", access)
	assert.Equal(t, "ref-1", refresh)

	require.NoError(t, repo.Refresh(context.Background()))
	assert.Equal(t, "ref-1", refreshBody["refresh"])

	user, err := repo.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, user.Role())

	repo.ClearTokens()
	access, refresh = repo.Tokens()
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}
