package repository

import (
	"context"
	"net/http"

	"github.com/shenikar/barangay_portal/internal/apiclient"
	"github.com/shenikar/barangay_portal/internal/geo"
	"github.com/shenikar/barangay_portal/internal/models"
)

type (
	EmergencyRepository      = REST[models.EmergencyReport, models.CreateEmergencyInput, models.EmergencyPatch]
	CertificateRepository    = REST[models.Certificate, models.CreateCertificateInput, models.EditCertificateInput]
	BusinessPermitRepository = REST[models.BusinessPermit, models.CreateBusinessPermitInput, models.EditBusinessPermitInput]
	BlotterRepository        = REST[models.BlotterReport, models.CreateBlotterInput, models.EditBlotterInput]
	AnnouncementRepository   = REST[models.Announcement, models.AnnouncementInput, models.AnnouncementInput]
	UserRepository           = REST[models.User, models.RegisterInput, models.UserUpdateInput]
)

// NewEmergencyRepository - экстренные вызовы. Создание всегда multipart, изменение PATCH.
func NewEmergencyRepository(api *apiclient.Client) *EmergencyRepository {
	r := newREST[models.EmergencyReport, models.CreateEmergencyInput, models.EmergencyPatch](api, "emergencies", Endpoints{
		List:         "/api/emergencies/",
		Item:         "/api/emergencies/%s/",
		Create:       "/api/emergencies/",
		Update:       "/api/emergencies/%s/",
		Delete:       "/api/emergencies/%s/",
		UpdateMethod: http.MethodPatch,
	})
	r.createForm = emergencyForm
	return r
}

func emergencyForm(in *models.CreateEmergencyInput) *apiclient.Form {
	form := apiclient.NewForm().
		Set("name", in.Name).
		Set("incident_type", string(in.IncidentType)).
		Set("description", in.Description).
		Set("location_text", in.LocationText).
		SetOptional("contact_number", in.ContactNumber).
		Set("latitude", geo.Format6(in.Latitude)).
		Set("longitude", geo.Format6(in.Longitude))
	if in.Media != nil {
		media := *in.Media
		media.Field = "media_file"
		form.File(&media)
	}
	return form
}

func NewCertificateRepository(api *apiclient.Client) *CertificateRepository {
	return newREST[models.Certificate, models.CreateCertificateInput, models.EditCertificateInput](api, "certificates", Endpoints{
		List:   "/api/certificates/",
		Item:   "/api/certificates/%s/",
		Create: "/api/certificates/create/",
		Update: "/api/certificates/edit/%s/",
		Delete: "/api/certificates/delete/%s/",
	})
}

func NewBusinessPermitRepository(api *apiclient.Client) *BusinessPermitRepository {
	return newREST[models.BusinessPermit, models.CreateBusinessPermitInput, models.EditBusinessPermitInput](api, "business-permits", Endpoints{
		List:   "/api/certificates/business-permits/",
		Item:   "/api/certificates/business-permits/%s/",
		Create: "/api/certificates/business-permits/",
		Update: "/api/certificates/business-permits/%s/",
		Delete: "/api/certificates/business-permits/%s/",
	})
}

func NewBlotterRepository(api *apiclient.Client) *BlotterRepository {
	return newREST[models.BlotterReport, models.CreateBlotterInput, models.EditBlotterInput](api, "blotters", Endpoints{
		List:         "/api/blotters/",
		Item:         "/api/blotters/%s/",
		Create:       "/api/blotters/",
		Update:       "/api/blotters/%s/",
		Delete:       "/api/blotters/%s/",
		UpdateMethod: http.MethodPatch,
	})
}

// NewAnnouncementRepository - объявления; с картинкой тело уходит multipart-формой
func NewAnnouncementRepository(api *apiclient.Client) *AnnouncementRepository {
	r := newREST[models.Announcement, models.AnnouncementInput, models.AnnouncementInput](api, "announcements", Endpoints{
		List:   "/api/announcements/",
		Item:   "/api/announcements/%s/",
		Create: "/api/announcements/create/",
		Update: "/api/announcements/%s/edit/",
		Delete: "/api/announcements/%s/delete/",
	})
	r.createForm = announcementForm
	r.updateForm = announcementForm
	return r
}

func announcementForm(in *models.AnnouncementInput) *apiclient.Form {
	if in.Image == nil {
		return nil
	}
	image := *in.Image
	image.Field = "image"
	return apiclient.NewForm().
		Set("title", in.Title).
		Set("description", in.Description).
		Set("status", string(in.Status)).
		SetOptional("start_date", in.StartDate).
		SetOptional("end_date", in.EndDate).
		SetOptional("location", in.Location).
		SetOptional("target_audience", in.TargetAudience).
		File(&image)
}

// NewUserRepository - пользователи. Создание идет через регистрацию, поэтому здесь его нет.
func NewUserRepository(api *apiclient.Client) *UserRepository {
	r := newREST[models.User, models.RegisterInput, models.UserUpdateInput](api, "users", Endpoints{
		List:   "/api/users/",
		Item:   "/api/users/%s/",
		Update: "/api/users/%s/",
		Delete: "/api/users/%s/",
	})
	r.updateForm = userForm
	return r
}

func userForm(in *models.UserUpdateInput) *apiclient.Form {
	form := apiclient.NewForm()
	setPtr := func(name string, v *string) {
		if v != nil {
			form.Set(name, *v)
		}
	}
	setPtr("email", in.Email)
	setPtr("profile.name", in.Name)
	setPtr("profile.contact_number", in.ContactNumber)
	setPtr("profile.address", in.Address)
	setPtr("profile.civil_status", in.CivilStatus)
	if in.Role != nil {
		form.Set("profile.role", string(*in.Role))
	}
	if in.Image != nil {
		image := *in.Image
		image.Field = "profile.image"
		form.File(&image)
	}
	return form
}

// ComplaintRepository - жалобы; создание и изменение multipart, есть выборка своих жалоб
type ComplaintRepository struct {
	*REST[models.Complaint, models.ComplaintInput, models.ComplaintInput]
	mine string
}

func NewComplaintRepository(api *apiclient.Client) *ComplaintRepository {
	r := newREST[models.Complaint, models.ComplaintInput, models.ComplaintInput](api, "complaints", Endpoints{
		List:   "/api/complaints/",
		Item:   "/api/complaints/%s/",
		Create: "/api/complaints/create/",
		Update: "/api/complaints/%s/update/",
		Delete: "/api/complaints/%s/delete/",
	})
	r.createForm = complaintForm
	r.updateForm = complaintForm
	return &ComplaintRepository{REST: r, mine: "/api/complaints/my-complaints/"}
}

// Mine возвращает жалобы текущего пользователя
func (r *ComplaintRepository) Mine(ctx context.Context) ([]models.Complaint, error) {
	return r.list(ctx, r.mine)
}

func complaintForm(in *models.ComplaintInput) *apiclient.Form {
	form := apiclient.NewForm().
		Set("type", in.Type).
		Set("fullname", in.Fullname).
		Set("contact_number", in.ContactNumber).
		Set("email_address", in.EmailAddress).
		Set("address", in.Address).
		Set("subject", in.Subject).
		Set("detailed_description", in.DetailedDescription).
		SetOptional("respondent_name", in.RespondentName).
		SetOptional("respondent_address", in.RespondentAddress).
		SetBool("request_mediation", in.RequestMediation).
		SetBool("agree_to_terms", in.AgreeToTerms).
		SetOptional("status", string(in.Status))
	if in.Latitude != 0 || in.Longitude != 0 {
		form.Set("latitude", geo.Format6(in.Latitude)).
			Set("longitude", geo.Format6(in.Longitude))
	}
	if in.Evidence != nil {
		evidence := *in.Evidence
		evidence.Field = "evidence"
		form.File(&evidence)
	}
	return form
}
