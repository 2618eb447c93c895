package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/barangay_portal/internal/apiclient"
	"github.com/shenikar/barangay_portal/internal/config"
	"github.com/shenikar/barangay_portal/internal/dashboard"
	"github.com/shenikar/barangay_portal/internal/emergency"
	"github.com/shenikar/barangay_portal/internal/forms"
	"github.com/shenikar/barangay_portal/internal/geo"
	"github.com/shenikar/barangay_portal/internal/idcard"
	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/internal/notify"
	"github.com/shenikar/barangay_portal/internal/service"
	"github.com/sirupsen/logrus"
)

// SessionStore - текущая сессия пользователя
type SessionStore interface {
	Login(ctx context.Context, in *models.LoginInput) (*models.User, error)
	Register(ctx context.Context, in *models.RegisterInput) (*models.User, error)
	Logout(ctx context.Context) error
	User() *models.User
	HasRole(roles ...models.Role) bool
}

// EmergencyPanel - панель экстренных вызовов сотрудника
type EmergencyPanel interface {
	Snapshot() emergency.Snapshot
	SetSound(enabled bool)
	DismissPanel()
	ViewDetails(id models.ID) (models.EmergencyReport, error)
	CloseDetails()
	ChangeStatus(ctx context.Context, id models.ID, status models.EmergencyStatus) error
	DismissReport(ctx context.Context, id models.ID) error
}

// Creator - ресурс, в который форма отправляет новую запись
type Creator[In, Out any] interface {
	Create(ctx context.Context, in *In) (*Out, error)
}

// ComplaintLister - жалобы текущего пользователя
type ComplaintLister interface {
	Mine(ctx context.Context) ([]models.Complaint, error)
}

type AnnouncementLister interface {
	Published(ctx context.Context) ([]models.Announcement, error)
}

// Dashboards - таблицы панели сотрудника по имени ресурса
type Dashboards interface {
	Lookup(name string) (dashboard.Board, error)
	Names() []string
}

type NotificationFeed interface {
	List() []notify.Notification
	Dismiss(id uuid.UUID) bool
}

// Deps - зависимости обработчиков
type Deps struct {
	Session       SessionStore
	Panel         EmergencyPanel
	Emergencies   Creator[models.CreateEmergencyInput, models.EmergencyReport]
	Certificates  Creator[models.CreateCertificateInput, models.Certificate]
	Permits       Creator[models.CreateBusinessPermitInput, models.BusinessPermit]
	Blotters      Creator[models.CreateBlotterInput, models.BlotterReport]
	Complaints    Creator[models.ComplaintInput, models.Complaint]
	MyComplaints  ComplaintLister
	Announcements AnnouncementLister
	Dashboards    Dashboards
	Notifications NotificationFeed
	Forms         *forms.Validator
	Locator       geo.Locator
}

type Handler struct {
	Deps
	logger *logrus.Logger
	cfg    *config.Config
}

func NewHandler(deps Deps, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		Deps:   deps,
		logger: logger,
		cfg:    cfg,
	}
}

func (h *Handler) log(method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"handler": "v1",
		"method":  method,
	})
}

// respondError переводит ошибку слоя сервисов в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var verrs forms.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "validation failed", Fields: verrs.Fields()})
		return
	case errors.Is(err, emergency.ErrUnknownStatus), errors.Is(err, service.ErrInvalidStatus):
		log.WithError(err).Warn("Invalid status")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	case errors.Is(err, emergency.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "report is not active"})
		return
	case errors.Is(err, dashboard.ErrUnknownResource):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown resource"})
		return
	case errors.Is(err, idcard.ErrNoNumericID):
		log.WithError(err).Warn("Cannot issue ID card")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cannot issue an ID card for this account"})
		return
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status >= http.StatusInternalServerError {
			log.WithError(err).Error("Portal API failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "portal API is unavailable"})
			return
		}
		log.WithError(err).Warn("Portal API rejected request")
		c.JSON(status, gin.H{"error": apiErr.Message()})
		return
	}

	log.WithError(err).Error("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func parseID(c *gin.Context) (models.ID, bool) {
	id := models.ID(c.Param("id"))
	if id.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return "", false
	}
	return id, true
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
