package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/internal/notify"
	"github.com/shenikar/barangay_portal/internal/querycache"
	"github.com/sirupsen/logrus"
)

// ErrInvalidStatus - статус не входит в перечисление ресурса
var ErrInvalidStatus = errors.New("service: invalid status")

// Ключи кеша списков
const (
	CertificateKey    = "certificates"
	BusinessPermitKey = "business-permits"
	BlotterKey        = "blotters"
	ComplaintKey      = "complaints"
	AnnouncementKey   = "announcements"
	UserKey           = "users"
)

func parseStatus[S ~string](raw string, allowed []S) (S, error) {
	normalized := S(strings.ToLower(strings.TrimSpace(raw)))
	for _, s := range allowed {
		if s == normalized {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}

type CertificateService struct {
	*Resource[models.Certificate, models.CreateCertificateInput, models.EditCertificateInput]
}

func NewCertificateService(repo Repository[models.Certificate, models.CreateCertificateInput, models.EditCertificateInput], cache *querycache.Cache, notifier notify.Notifier, logger *logrus.Logger) *CertificateService {
	return &CertificateService{
		Resource: NewResource(CertificateKey, repo, cache, notifier, logger, MessagesFor("certificate", "Certificate")),
	}
}

// SetStatus меняет статус заявки, отправляя полную запись (PUT)
func (s *CertificateService) SetStatus(ctx context.Context, id models.ID, raw string) error {
	status, err := parseStatus(raw, models.CertificateStatuses)
	if err != nil {
		return err
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	in := current.EditInput()
	in.Status = status
	_, err = s.Update(ctx, id, in)
	return err
}

type BusinessPermitService struct {
	*Resource[models.BusinessPermit, models.CreateBusinessPermitInput, models.EditBusinessPermitInput]
}

func NewBusinessPermitService(repo Repository[models.BusinessPermit, models.CreateBusinessPermitInput, models.EditBusinessPermitInput], cache *querycache.Cache, notifier notify.Notifier, logger *logrus.Logger) *BusinessPermitService {
	messages := MessagesFor("permit", "Business permit")
	return &BusinessPermitService{
		Resource: NewResource(BusinessPermitKey, repo, cache, notifier, logger, messages),
	}
}

func (s *BusinessPermitService) SetStatus(ctx context.Context, id models.ID, raw string) error {
	status, err := parseStatus(raw, models.BusinessPermitStatuses)
	if err != nil {
		return err
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	in := current.EditInput()
	in.Status = status
	_, err = s.Update(ctx, id, in)
	return err
}

type BlotterService struct {
	*Resource[models.BlotterReport, models.CreateBlotterInput, models.EditBlotterInput]
}

func NewBlotterService(repo Repository[models.BlotterReport, models.CreateBlotterInput, models.EditBlotterInput], cache *querycache.Cache, notifier notify.Notifier, logger *logrus.Logger) *BlotterService {
	return &BlotterService{
		Resource: NewResource(BlotterKey, repo, cache, notifier, logger, MessagesFor("blotter report", "Blotter report")),
	}
}

// Create выставляет приоритет по типу происшествия, если он не задан
func (s *BlotterService) Create(ctx context.Context, in *models.CreateBlotterInput) (*models.BlotterReport, error) {
	withPriority := *in
	if withPriority.Priority == "" {
		if p, ok := models.BlotterIncidentPriority[in.IncidentType]; ok {
			withPriority.Priority = p
		}
	}
	return s.Resource.Create(ctx, &withPriority)
}

// SetStatus отправляет PATCH только со статусом
func (s *BlotterService) SetStatus(ctx context.Context, id models.ID, raw string) error {
	status, err := parseStatus(raw, models.BlotterStatuses)
	if err != nil {
		return err
	}
	_, err = s.Update(ctx, id, &models.EditBlotterInput{Status: &status})
	return err
}

// ComplaintRepository добавляет к ресурсу выборку жалоб текущего пользователя
type ComplaintRepository interface {
	Repository[models.Complaint, models.ComplaintInput, models.ComplaintInput]
	Mine(ctx context.Context) ([]models.Complaint, error)
}

type ComplaintService struct {
	*Resource[models.Complaint, models.ComplaintInput, models.ComplaintInput]
	complaints ComplaintRepository
}

func NewComplaintService(repo ComplaintRepository, cache *querycache.Cache, notifier notify.Notifier, logger *logrus.Logger) *ComplaintService {
	messages := MessagesFor("complaint", "Complaint")
	messages.Created = "Your complaint has been created."
	messages.CreateFailed = "Failed to submit complaint."
	return &ComplaintService{
		Resource: NewResource[models.Complaint, models.ComplaintInput, models.ComplaintInput](
			ComplaintKey, repo, cache, notifier, logger, messages,
		),
		complaints: repo,
	}
}

// Mine возвращает жалобы текущего пользователя; ключ лежит под списком жалоб
func (s *ComplaintService) Mine(ctx context.Context) ([]models.Complaint, error) {
	items, err := querycache.Query(ctx, s.cache, s.ListKey()+"/mine", s.complaints.Mine)
	if err != nil {
		s.log("Mine").WithError(err).Error("Failed to list own complaints")
		return nil, fmt.Errorf("service: could not list own complaints: %w", err)
	}
	return items, nil
}

// SetStatus меняет статус, повторно отправляя форму жалобы
func (s *ComplaintService) SetStatus(ctx context.Context, id models.ID, raw string) error {
	status, err := parseStatus(raw, models.ComplaintStatuses)
	if err != nil {
		return err
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	in := current.EditInput()
	in.Status = status
	_, err = s.Update(ctx, id, in)
	return err
}

type AnnouncementService struct {
	*Resource[models.Announcement, models.AnnouncementInput, models.AnnouncementInput]
}

func NewAnnouncementService(repo Repository[models.Announcement, models.AnnouncementInput, models.AnnouncementInput], cache *querycache.Cache, notifier notify.Notifier, logger *logrus.Logger) *AnnouncementService {
	return &AnnouncementService{
		Resource: NewResource(AnnouncementKey, repo, cache, notifier, logger, MessagesFor("announcement", "Announcement")),
	}
}

// Published возвращает опубликованные объявления
func (s *AnnouncementService) Published(ctx context.Context) ([]models.Announcement, error) {
	return s.ListFiltered(ctx, func(a models.Announcement) bool {
		return strings.EqualFold(string(a.Status), string(models.AnnouncementPublished))
	})
}

func (s *AnnouncementService) SetStatus(ctx context.Context, id models.ID, raw string) error {
	status, err := parseStatus(raw, models.AnnouncementStatuses)
	if err != nil {
		return err
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	_, err = s.Update(ctx, id, &models.AnnouncementInput{
		Title:          current.Title,
		Description:    current.Description,
		Status:         status,
		StartDate:      current.StartDate,
		EndDate:        current.EndDate,
		Location:       current.Location,
		TargetAudience: current.TargetAudience,
	})
	return err
}

type UserService struct {
	*Resource[models.User, models.RegisterInput, models.UserUpdateInput]
}

func NewUserService(repo Repository[models.User, models.RegisterInput, models.UserUpdateInput], cache *querycache.Cache, notifier notify.Notifier, logger *logrus.Logger) *UserService {
	return &UserService{
		Resource: NewResource(UserKey, repo, cache, notifier, logger, MessagesFor("user", "User")),
	}
}

// SetRole меняет роль пользователя
func (s *UserService) SetRole(ctx context.Context, id models.ID, raw string) error {
	role, err := parseStatus(raw, []models.Role{models.RoleAdmin, models.RoleStaff, models.RoleUser, models.RoleResident})
	if err != nil {
		return err
	}
	_, err = s.Update(ctx, id, &models.UserUpdateInput{Role: &role})
	return err
}
