package forms

import (
	"errors"
	"testing"

	"github.com/shenikar/barangay_portal/internal/geo"
	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/internal/notify"
	"github.com/shenikar/barangay_portal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() (*Validator, *notify.Feed) {
	log := logger.Discard()
	feed := notify.NewFeed(10, log)
	return NewValidator(feed, log), feed
}

func validEmergency() *EmergencyForm {
	return &EmergencyForm{
		Name:          "Maria Santos",
		IncidentType:  "fire",
		Description:   "Smoke from the market",
		LocationText:  "Purok 3",
		ContactNumber: "09171234567",
		Latitude:      14.59951234,
		Longitude:     120.98422199,
	}
}

func TestEmergencyForm_InputRoundsCoordinates(t *testing.T) {
	v, _ := newTestValidator()
	form := validEmergency()

	require.NoError(t, v.Check(form))
	in := form.Input()

	assert.Equal(t, 14.599512, in.Latitude)
	assert.Equal(t, 120.984222, in.Longitude)
	assert.Equal(t, models.IncidentFire, in.IncidentType)
}

func TestEmergencyForm_MissingCoordinatesFails(t *testing.T) {
	v, feed := newTestValidator()
	form := validEmergency()
	form.Latitude, form.Longitude = 0, 0

	err := v.Check(form)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.Fields(), "latitude")
	assert.Contains(t, verrs.Fields(), "longitude")
	require.Len(t, feed.List(), 1)
	assert.Equal(t, notify.VariantDestructive, feed.List()[0].Variant)
}

func TestEmergencyForm_UnknownIncidentType(t *testing.T) {
	v, _ := newTestValidator()
	form := validEmergency()
	form.IncidentType = "alien"

	err := v.Validate(form)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Please select an incident type", verrs.Fields()["incident_type"])
}

func TestEmergencyForm_ApplyLocation(t *testing.T) {
	form := &EmergencyForm{}

	form.ApplyLocation(geo.Resolution{Message: geo.UnavailableMessage})
	assert.Zero(t, form.Latitude)

	form.ApplyLocation(geo.Resolution{Located: true, Coordinates: geo.Coordinates{Latitude: 15.03, Longitude: 120.69}})
	assert.Equal(t, 15.03, form.Latitude)
	assert.Equal(t, 120.69, form.Longitude)
}

func TestCertificateForm_TermsMustBeAgreed(t *testing.T) {
	v, feed := newTestValidator()
	form := &CertificateForm{
		CertificateType: "barangay-clearance",
		FirstName:       "Juan",
		LastName:        "Dela Cruz",
		CompleteAddress: "Sindalan",
		ContactNumber:   "0917",
		EmailAddress:    "juan@example.ph",
		Purpose:         "Employment",
	}

	err := v.Check(form)

	require.Error(t, err)
	assert.Equal(t, "Please agree to the terms and conditions", feed.List()[0].Title)

	form.AgreeTerms = true
	assert.NoError(t, v.Check(form))
}

func TestCertificateForm_TypeRequired(t *testing.T) {
	v, _ := newTestValidator()

	err := v.Validate(&CertificateForm{})

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Please select a certificate type", verrs.Fields()["certificate_type"])
	assert.Equal(t, "first_name is required", verrs.Fields()["first_name"])
}

func TestBlotterForm_CustomIncidentTypeAndPriority(t *testing.T) {
	v, _ := newTestValidator()
	form := &BlotterForm{
		ComplainantName: "Ana",
		ContactNumber:   "0917",
		IncidentType:    "Theft/Burglary",
		IncidentDate:    "2025-03-01",
		IncidentTime:    "21:30",
		Location:        "Purok 1",
		Description:     "Bike stolen",
		AgreeTerms:      true,
	}

	require.NoError(t, v.Validate(form))
	assert.Equal(t, models.PriorityHigh, form.Input().Priority)

	form.IncidentType = "Jaywalking"
	err := v.Validate(form)
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "blotter_type", verrs[0].Tag)
}

func TestBlotterForm_BadDate(t *testing.T) {
	v, _ := newTestValidator()
	form := &BlotterForm{
		ComplainantName: "Ana",
		ContactNumber:   "0917",
		IncidentType:    "Others",
		IncidentDate:    "03/01/2025",
		IncidentTime:    "21:30",
		Location:        "Purok 1",
		Description:     "x",
		AgreeTerms:      true,
	}

	err := v.Validate(form)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "incident_date must match format 2006-01-02", verrs.Fields()["incident_date"])
}

func TestRegisterForm_PasswordsMustMatch(t *testing.T) {
	v, _ := newTestValidator()
	form := &RegisterForm{
		Name:            "Ana",
		Email:           "ana@example.ph",
		Password:        "longenough",
		ConfirmPassword: "different1",
	}

	err := v.Validate(form)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Passwords do not match", verrs.Fields()["confirm_password"])

	form.ConfirmPassword = form.Password
	require.NoError(t, v.Validate(form))
	assert.Equal(t, "ana@example.ph", form.Input().Username)
}

func TestComplaintForm_Input(t *testing.T) {
	v, _ := newTestValidator()
	form := &ComplaintForm{
		Type:                "noise",
		Fullname:            " Pedro ",
		ContactNumber:       "0917",
		Address:             "Sindalan",
		Subject:             "Karaoke",
		DetailedDescription: "Every night",
		AgreeToTerms:        true,
		Latitude:            15.0312345678,
		Longitude:           120.6912345678,
	}

	require.NoError(t, v.Validate(form))
	in := form.Input()
	assert.Equal(t, "Pedro", in.Fullname)
	assert.Equal(t, 15.031235, in.Latitude)
}

func TestLoginForm_InvalidEmail(t *testing.T) {
	v, _ := newTestValidator()

	err := v.Validate(&LoginForm{Email: "not-an-email", Password: "x"})

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "email must be a valid email address", verrs[0].Message)
}

func TestAnnouncementForm_Status(t *testing.T) {
	v, _ := newTestValidator()
	form := &AnnouncementForm{Title: "Clean-up drive", Description: "Saturday", Status: "live"}

	require.Error(t, v.Validate(form))

	form.Status = "published"
	require.NoError(t, v.Validate(form))
	assert.Equal(t, models.AnnouncementPublished, form.Input().Status)
}
