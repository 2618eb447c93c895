package dashboard

import (
	"context"
	"fmt"

	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/internal/service"
)

// StatusSource - ресурс со сменой статуса по строке
type StatusSource[T any] interface {
	Source[T]
	SetStatus(ctx context.Context, id models.ID, raw string) error
}

// EmergencySource - ресурс экстренных вызовов
type EmergencySource interface {
	Source[models.EmergencyReport]
	ChangeStatus(ctx context.Context, id models.ID, status models.EmergencyStatus) (*models.EmergencyReport, error)
}

// UserSource - ресурс пользователей; "статус" в таблице персонала - это роль
type UserSource interface {
	Source[models.User]
	SetRole(ctx context.Context, id models.ID, raw string) error
}

func EmergencyBoard(src EmergencySource) *Resource[models.EmergencyReport] {
	table := &Table[models.EmergencyReport]{
		Search: []func(models.EmergencyReport) string{
			func(r models.EmergencyReport) string { return r.Name },
			func(r models.EmergencyReport) string { return string(r.IncidentType) },
			func(r models.EmergencyReport) string { return r.LocationText },
			func(r models.EmergencyReport) string { return r.Description },
		},
		Filters: map[string]func(models.EmergencyReport) string{
			"status": func(r models.EmergencyReport) string { return string(r.Status.Normalize()) },
			"type":   func(r models.EmergencyReport) string { return string(r.IncidentType) },
		},
		Status: func(r models.EmergencyReport) string { return string(r.Status.Normalize()) },
	}
	setStatus := func(ctx context.Context, id models.ID, raw string) error {
		status := models.EmergencyStatus(raw)
		if !status.Valid() {
			return fmt.Errorf("%w: %q", service.ErrInvalidStatus, raw)
		}
		_, err := src.ChangeStatus(ctx, id, status.Normalize())
		return err
	}
	return NewResource(service.EmergencyKey, models.KindEmergency, Source[models.EmergencyReport](src), table, setStatus)
}

func CertificateBoard(src StatusSource[models.Certificate]) *Resource[models.Certificate] {
	table := &Table[models.Certificate]{
		Search: []func(models.Certificate) string{
			func(c models.Certificate) string { return c.ApplicantName() },
			func(c models.Certificate) string { return c.RequestNumber },
			func(c models.Certificate) string { return c.CertificateType },
		},
		Filters: map[string]func(models.Certificate) string{
			"status": func(c models.Certificate) string { return string(c.Status) },
			"type":   func(c models.Certificate) string { return c.CertificateType },
		},
		Status: func(c models.Certificate) string { return string(c.Status) },
	}
	return NewResource(service.CertificateKey, models.KindCertificate, Source[models.Certificate](src), table, src.SetStatus)
}

func BusinessPermitBoard(src StatusSource[models.BusinessPermit]) *Resource[models.BusinessPermit] {
	table := &Table[models.BusinessPermit]{
		Search: []func(models.BusinessPermit) string{
			func(p models.BusinessPermit) string { return p.BusinessName },
			func(p models.BusinessPermit) string { return p.OwnerName },
			func(p models.BusinessPermit) string { return p.BusinessType },
		},
		Filters: map[string]func(models.BusinessPermit) string{
			"status": func(p models.BusinessPermit) string { return string(p.Status) },
			"type":   func(p models.BusinessPermit) string { return p.BusinessType },
		},
		Status: func(p models.BusinessPermit) string { return string(p.Status) },
	}
	return NewResource(service.BusinessPermitKey, models.KindBusinessPermit, Source[models.BusinessPermit](src), table, src.SetStatus)
}

func BlotterBoard(src StatusSource[models.BlotterReport]) *Resource[models.BlotterReport] {
	table := &Table[models.BlotterReport]{
		Search: []func(models.BlotterReport) string{
			func(b models.BlotterReport) string { return b.ReportNumber.String() },
			func(b models.BlotterReport) string { return b.ComplainantName },
			func(b models.BlotterReport) string { return b.IncidentType },
			func(b models.BlotterReport) string { return b.Location },
		},
		Filters: map[string]func(models.BlotterReport) string{
			"status":   func(b models.BlotterReport) string { return string(b.Status) },
			"priority": func(b models.BlotterReport) string { return string(b.Priority) },
			"type":     func(b models.BlotterReport) string { return b.IncidentType },
		},
		Status: func(b models.BlotterReport) string { return string(b.Status) },
	}
	return NewResource(service.BlotterKey, models.KindBlotter, Source[models.BlotterReport](src), table, src.SetStatus)
}

func ComplaintBoard(src StatusSource[models.Complaint]) *Resource[models.Complaint] {
	table := &Table[models.Complaint]{
		Search: []func(models.Complaint) string{
			func(c models.Complaint) string { return c.Subject },
			func(c models.Complaint) string { return c.Fullname },
			func(c models.Complaint) string { return c.ReferenceNumber },
			func(c models.Complaint) string { return c.ID.String() },
		},
		Filters: map[string]func(models.Complaint) string{
			"status":   func(c models.Complaint) string { return string(c.Status) },
			"category": func(c models.Complaint) string { return c.Type },
		},
		Status: func(c models.Complaint) string { return string(c.Status) },
	}
	return NewResource(service.ComplaintKey, models.KindComplaint, Source[models.Complaint](src), table, src.SetStatus)
}

func AnnouncementBoard(src StatusSource[models.Announcement]) *Resource[models.Announcement] {
	table := &Table[models.Announcement]{
		Search: []func(models.Announcement) string{
			func(a models.Announcement) string { return a.Title },
			func(a models.Announcement) string { return a.Description },
			func(a models.Announcement) string { return a.Location },
		},
		Filters: map[string]func(models.Announcement) string{
			"status": func(a models.Announcement) string { return string(a.Status) },
		},
		Status: func(a models.Announcement) string { return string(a.Status) },
	}
	return NewResource(service.AnnouncementKey, models.KindAnnouncement, Source[models.Announcement](src), table, src.SetStatus)
}

func PersonnelBoard(src UserSource) *Resource[models.User] {
	name := func(u models.User) string {
		if u.Profile == nil {
			return ""
		}
		return u.Profile.Name
	}
	role := func(u models.User) string { return string(u.Role()) }
	table := &Table[models.User]{
		Search: []func(models.User) string{
			name,
			func(u models.User) string { return u.Email },
			func(u models.User) string { return u.Username },
		},
		Filters: map[string]func(models.User) string{
			"role": role,
		},
		Status: role,
	}
	return NewResource(service.UserKey, models.KindRole, Source[models.User](src), table, src.SetRole)
}
