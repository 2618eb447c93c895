package forms

import (
	"strings"

	"github.com/shenikar/barangay_portal/internal/geo"
	"github.com/shenikar/barangay_portal/internal/models"
)

// CertificateTypes - виды справок, доступные для заказа
var CertificateTypes = []string{
	"barangay-clearance",
	"certificate-of-residency",
	"indigency-certificate",
	"business-clearance",
}

// EmergencyForm - форма экстренного вызова. Координаты обязательны:
// либо из геолокации, либо введенные вручную.
type EmergencyForm struct {
	Name          string         `json:"name" form:"name" validate:"required,max=255"`
	IncidentType  string         `json:"incident_type" form:"incident_type" validate:"required,incident_type"`
	Description   string         `json:"description" form:"description" validate:"required"`
	LocationText  string         `json:"location_text" form:"location_text" validate:"required,max=255"`
	ContactNumber string         `json:"contact_number" form:"contact_number" validate:"required,max=32"`
	Latitude      float64        `json:"latitude" form:"latitude" validate:"required,latitude"`
	Longitude     float64        `json:"longitude" form:"longitude" validate:"required,longitude"`
	Media         *models.Upload `json:"-" form:"-" validate:"-"`
}

// ApplyLocation подставляет координаты, если их удалось определить
func (f *EmergencyForm) ApplyLocation(res geo.Resolution) {
	if res.Located {
		f.Latitude = res.Coordinates.Latitude
		f.Longitude = res.Coordinates.Longitude
	}
}

// Input собирает данные для API; координаты округляются до 6 знаков
func (f *EmergencyForm) Input() *models.CreateEmergencyInput {
	return &models.CreateEmergencyInput{
		Name:          strings.TrimSpace(f.Name),
		IncidentType:  models.IncidentType(f.IncidentType),
		Description:   f.Description,
		LocationText:  strings.TrimSpace(f.LocationText),
		ContactNumber: f.ContactNumber,
		Latitude:      geo.Round6(f.Latitude),
		Longitude:     geo.Round6(f.Longitude),
		Media:         f.Media,
	}
}

type CertificateForm struct {
	CertificateType string `json:"certificate_type" validate:"required,oneof=barangay-clearance certificate-of-residency indigency-certificate business-clearance"`
	FirstName       string `json:"first_name" validate:"required,max=100"`
	LastName        string `json:"last_name" validate:"required,max=100"`
	MiddleName      string `json:"middle_name" validate:"max=100"`
	CompleteAddress string `json:"complete_address" validate:"required"`
	ContactNumber   string `json:"contact_number" validate:"required,max=32"`
	EmailAddress    string `json:"email_address" validate:"required,email"`
	Purpose         string `json:"purpose" validate:"required"`
	AgreeTerms      bool   `json:"agree_terms" validate:"required"`
}

func (f *CertificateForm) Input() *models.CreateCertificateInput {
	return &models.CreateCertificateInput{
		CertificateType: f.CertificateType,
		FirstName:       strings.TrimSpace(f.FirstName),
		LastName:        strings.TrimSpace(f.LastName),
		MiddleName:      strings.TrimSpace(f.MiddleName),
		CompleteAddress: f.CompleteAddress,
		ContactNumber:   f.ContactNumber,
		EmailAddress:    f.EmailAddress,
		Purpose:         f.Purpose,
		AgreeTerms:      f.AgreeTerms,
	}
}

type BusinessPermitForm struct {
	BusinessName        string `json:"business_name" validate:"required,max=255"`
	BusinessType        string `json:"business_type" validate:"required"`
	OwnerName           string `json:"owner_name" validate:"required"`
	BusinessAddress     string `json:"business_address" validate:"required"`
	ContactNumber       string `json:"contact_number" validate:"required,max=32"`
	OwnerAddress        string `json:"owner_address"`
	BusinessDescription string `json:"business_description"`
	IsRenewal           bool   `json:"is_renewal"`
	AgreeTerms          bool   `json:"agree_terms" validate:"required"`
}

func (f *BusinessPermitForm) Input() *models.CreateBusinessPermitInput {
	return &models.CreateBusinessPermitInput{
		BusinessName:        strings.TrimSpace(f.BusinessName),
		BusinessType:        f.BusinessType,
		OwnerName:           strings.TrimSpace(f.OwnerName),
		BusinessAddress:     f.BusinessAddress,
		ContactNumber:       f.ContactNumber,
		OwnerAddress:        f.OwnerAddress,
		BusinessDescription: f.BusinessDescription,
		IsRenewal:           f.IsRenewal,
	}
}

// BlotterForm - заявление в журнал происшествий; подают только жители
type BlotterForm struct {
	ComplainantName string `json:"complainant_name" validate:"required"`
	ContactNumber   string `json:"contact_number" validate:"required,max=32"`
	EmailAddress    string `json:"email_address" validate:"omitempty,email"`
	RespondentName  string `json:"respondent_name"`
	IncidentType    string `json:"incident_type" validate:"required,blotter_type"`
	IncidentDate    string `json:"incident_date" validate:"required,datetime=2006-01-02"`
	IncidentTime    string `json:"incident_time" validate:"required,datetime=15:04"`
	Location        string `json:"location" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Witnesses       string `json:"witnesses"`
	AgreeTerms      bool   `json:"agree_terms" validate:"required"`
}

// Input подставляет приоритет по типу происшествия
func (f *BlotterForm) Input() *models.CreateBlotterInput {
	return &models.CreateBlotterInput{
		ComplainantName: strings.TrimSpace(f.ComplainantName),
		ContactNumber:   f.ContactNumber,
		EmailAddress:    f.EmailAddress,
		RespondentName:  f.RespondentName,
		IncidentType:    f.IncidentType,
		IncidentDate:    f.IncidentDate,
		IncidentTime:    f.IncidentTime,
		Location:        f.Location,
		Description:     f.Description,
		Witnesses:       f.Witnesses,
		AgreeTerms:      f.AgreeTerms,
		Priority:        models.BlotterIncidentPriority[f.IncidentType],
	}
}

type ComplaintForm struct {
	Type                string         `json:"type" form:"type" validate:"required,oneof=noise dispute safety property other"`
	Fullname            string         `json:"fullname" form:"fullname" validate:"required"`
	ContactNumber       string         `json:"contact_number" form:"contact_number" validate:"required,max=32"`
	EmailAddress        string         `json:"email_address" form:"email_address" validate:"omitempty,email"`
	Address             string         `json:"address" form:"address" validate:"required"`
	Subject             string         `json:"subject" form:"subject" validate:"required,max=255"`
	DetailedDescription string         `json:"detailed_description" form:"detailed_description" validate:"required"`
	RespondentName      string         `json:"respondent_name" form:"respondent_name"`
	RespondentAddress   string         `json:"respondent_address" form:"respondent_address"`
	Latitude            float64        `json:"latitude" form:"latitude" validate:"omitempty,latitude"`
	Longitude           float64        `json:"longitude" form:"longitude" validate:"omitempty,longitude"`
	RequestMediation    bool           `json:"request_mediation" form:"request_mediation"`
	AgreeToTerms        bool           `json:"agree_to_terms" form:"agree_to_terms" validate:"required"`
	Evidence            *models.Upload `json:"-" form:"-" validate:"-"`
}

func (f *ComplaintForm) Input() *models.ComplaintInput {
	return &models.ComplaintInput{
		Type:                f.Type,
		Fullname:            strings.TrimSpace(f.Fullname),
		ContactNumber:       f.ContactNumber,
		EmailAddress:        f.EmailAddress,
		Address:             f.Address,
		Subject:             strings.TrimSpace(f.Subject),
		DetailedDescription: f.DetailedDescription,
		RespondentName:      f.RespondentName,
		RespondentAddress:   f.RespondentAddress,
		RequestMediation:    f.RequestMediation,
		AgreeToTerms:        f.AgreeToTerms,
		Latitude:            geo.Round6(f.Latitude),
		Longitude:           geo.Round6(f.Longitude),
		Evidence:            f.Evidence,
	}
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (f *LoginForm) Input() *models.LoginInput {
	return &models.LoginInput{Email: strings.TrimSpace(f.Email), Password: f.Password}
}

type RegisterForm struct {
	Name            string `json:"name" validate:"required,max=255"`
	Username        string `json:"username" validate:"omitempty,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	ContactNumber   string `json:"contact_number" validate:"max=32"`
	Address         string `json:"address"`
	CivilStatus     string `json:"civil_status" validate:"omitempty,oneof=single married widowed separated divorced"`
	Birthdate       string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
}

func (f *RegisterForm) Input() *models.RegisterInput {
	username := f.Username
	if username == "" {
		username = strings.TrimSpace(f.Email)
	}
	return &models.RegisterInput{
		Name:            strings.TrimSpace(f.Name),
		Username:        username,
		Email:           strings.TrimSpace(f.Email),
		Password:        f.Password,
		ConfirmPassword: f.ConfirmPassword,
		ContactNumber:   f.ContactNumber,
		Address:         f.Address,
		CivilStatus:     f.CivilStatus,
		Birthdate:       f.Birthdate,
	}
}

type AnnouncementForm struct {
	Title          string         `json:"title" validate:"required,max=255"`
	Description    string         `json:"description" validate:"required"`
	Status         string         `json:"status" validate:"required,oneof=draft published archived"`
	StartDate      string         `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        string         `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Location       string         `json:"location"`
	TargetAudience string         `json:"target_audience"`
	Image          *models.Upload `json:"-" validate:"-"`
}

func (f *AnnouncementForm) Input() *models.AnnouncementInput {
	return &models.AnnouncementInput{
		Title:          strings.TrimSpace(f.Title),
		Description:    f.Description,
		Status:         models.AnnouncementStatus(f.Status),
		StartDate:      f.StartDate,
		EndDate:        f.EndDate,
		Location:       f.Location,
		TargetAudience: f.TargetAudience,
		Image:          f.Image,
	}
}
