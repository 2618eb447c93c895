package v1

import (
	"github.com/shenikar/barangay_portal/internal/emergency"
	"github.com/shenikar/barangay_portal/internal/geo"
	"github.com/shenikar/barangay_portal/internal/models"
)

// ModelToUserResponse преобразует пользователя в DTO для ответа
func ModelToUserResponse(u *models.User) *UserResponse {
	resp := &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
	if p := u.Profile; p != nil {
		resp.Name = p.Name
		resp.Role = string(p.Role)
		resp.ContactNumber = p.ContactNumber
		resp.Address = p.Address
	}
	switch u.Role() {
	case models.RoleAdmin, models.RoleStaff:
		resp.IsStaff = true
	}
	return resp
}

// ModelToReportResponse преобразует экстренный вызов в DTO; координаты с точностью 6 знаков
func ModelToReportResponse(r models.EmergencyReport) ReportResponse {
	resp := ReportResponse{
		ID:             r.ID,
		Name:           r.Name,
		IncidentType:   string(r.IncidentType),
		Description:    r.Description,
		LocationText:   r.LocationText,
		Latitude:       geo.Round6(r.Latitude.Float64()),
		Longitude:      geo.Round6(r.Longitude.Float64()),
		HasCoordinates: r.HasCoordinates(),
		ContactNumber:  r.ContactNumber,
		Status:         string(r.Status.Normalize()),
		Badge:          models.BadgeFor(models.KindEmergency, string(r.Status)),
		SubmittedAt:    r.SubmittedAt,
	}
	if r.MediaFile != nil {
		resp.MediaURL = *r.MediaFile
	}
	return resp
}

func ModelsToReportResponses(reports []models.EmergencyReport) []ReportResponse {
	responses := make([]ReportResponse, len(reports))
	for i, r := range reports {
		responses[i] = ModelToReportResponse(r)
	}
	return responses
}

// SnapshotToPanelResponse преобразует состояние панели в DTO для ответа
func SnapshotToPanelResponse(s emergency.Snapshot) *PanelResponse {
	resp := &PanelResponse{
		Visible:      s.Visible,
		Dismissed:    s.Dismissed,
		SoundEnabled: s.SoundEnabled,
		AlarmPlaying: s.AlarmPlaying,
		Loading:      s.Loading,
		Error:        s.Error,
		Pending:      ModelsToReportResponses(s.Pending),
		InProgress:   ModelsToReportResponses(s.InProgress),
		Statuses:     make([]string, len(s.Statuses)),
		FetchedAt:    s.FetchedAt,
	}
	for i, st := range s.Statuses {
		resp.Statuses[i] = string(st)
	}
	if s.Selected != nil {
		selected := ModelToReportResponse(*s.Selected)
		resp.Selected = &selected
	}
	return resp
}

func ResolutionToLocationResponse(res geo.Resolution) *LocationResponse {
	return &LocationResponse{
		Located:   res.Located,
		Latitude:  res.Coordinates.Latitude,
		Longitude: res.Coordinates.Longitude,
		Message:   res.Message,
	}
}
