package service

import (
	"context"

	"github.com/shenikar/barangay_portal/internal/geo"
	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/internal/notify"
	"github.com/shenikar/barangay_portal/internal/querycache"
	"github.com/sirupsen/logrus"
)

// EmergencyRepository определяет контракт REST-ресурса экстренных вызовов
type EmergencyRepository interface {
	List(ctx context.Context) ([]models.EmergencyReport, error)
	Get(ctx context.Context, id models.ID) (*models.EmergencyReport, error)
	Create(ctx context.Context, in *models.CreateEmergencyInput) (*models.EmergencyReport, error)
	Update(ctx context.Context, id models.ID, in *models.EmergencyPatch) (*models.EmergencyReport, error)
	Delete(ctx context.Context, id models.ID) error
}

// EmergencyKey - ключ кеша списка экстренных вызовов
const EmergencyKey = "emergencies"

var emergencyMessages = Messages{
	Created:      "Emergency report submitted.",
	CreateFailed: "Failed to submit emergency report.",
	Updated:      "Emergency updated successfully.",
	UpdateFailed: "Failed to update emergency.",
	Deleted:      "Emergency deleted successfully.",
	DeleteFailed: "Failed to delete emergency.",
}

type EmergencyService struct {
	*Resource[models.EmergencyReport, models.CreateEmergencyInput, models.EmergencyPatch]
}

func NewEmergencyService(repo EmergencyRepository, cache *querycache.Cache, notifier notify.Notifier, logger *logrus.Logger) *EmergencyService {
	return &EmergencyService{
		Resource: NewResource[models.EmergencyReport, models.CreateEmergencyInput, models.EmergencyPatch](
			EmergencyKey, repo, cache, notifier, logger, emergencyMessages,
		),
	}
}

// Create отправляет вызов с координатами, округленными до 6 знаков
func (s *EmergencyService) Create(ctx context.Context, in *models.CreateEmergencyInput) (*models.EmergencyReport, error) {
	rounded := *in
	rounded.Latitude = geo.Round6(in.Latitude)
	rounded.Longitude = geo.Round6(in.Longitude)
	return s.Resource.Create(ctx, &rounded)
}

// ChangeStatus отправляет одно изменение, содержащее только статус
func (s *EmergencyService) ChangeStatus(ctx context.Context, id models.ID, status models.EmergencyStatus) (*models.EmergencyReport, error) {
	return s.Update(ctx, id, models.StatusPatch(status))
}
