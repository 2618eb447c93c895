package v1

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/barangay_portal/internal/forms"
	"github.com/shenikar/barangay_portal/internal/geo"
	"github.com/shenikar/barangay_portal/internal/models"
)

// inputForm - форма, которая собирает данные для API
type inputForm[F, In any] interface {
	*F
	Input() *In
}

// submitJSON проверяет JSON-форму и создает запись в ресурсе
func submitJSON[F, In, Out any, PF inputForm[F, In]](
	h *Handler,
	c *gin.Context,
	method string,
	creator Creator[In, Out],
	idOf func(*Out) models.ID,
	message string,
) {
	log := h.log(method)
	form := PF(new(F))

	if err := c.ShouldBindJSON(form); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.Forms.Check(form); err != nil {
		h.respondError(c, log, err)
		return
	}

	created, err := creator.Create(c.Request.Context(), form.Input())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: idOf(created), Message: message})
}

// openUpload открывает необязательный файл из multipart-формы.
// Возвращенный файл нужно закрыть.
func openUpload(c *gin.Context, field string) (*models.Upload, multipart.File, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return &models.Upload{
		Field:       field,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}, file, nil
}

// @Summary Submit an emergency report
// @Description Submit an emergency report with an optional media file. Coordinates are required; when both are omitted the configured location is used.
// @Tags Forms
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Reporter name"
// @Param incident_type formData string true "Incident type"
// @Param description formData string true "Description"
// @Param location_text formData string true "Location description"
// @Param contact_number formData string true "Contact number"
// @Param latitude formData number false "Latitude"
// @Param longitude formData number false "Longitude"
// @Param media_file formData file false "Photo or video"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ValidationErrorResponse "Validation error"
// @Failure 502 {object} map[string]string "Portal API is unavailable"
// @Router /emergencies [post]
func (h *Handler) createEmergency(c *gin.Context) {
	var input forms.EmergencyForm
	log := h.log("createEmergency")

	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var location geo.Resolution
	if input.Latitude == 0 && input.Longitude == 0 {
		location = geo.Resolve(c.Request.Context(), h.Locator)
		input.ApplyLocation(location)
	}

	if err := h.Forms.Check(&input); err != nil {
		var verrs forms.ValidationErrors
		if errors.As(err, &verrs) && location.Message != "" {
			fields := verrs.Fields()
			fields["location"] = location.Message
			c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "validation failed", Fields: fields})
			return
		}
		h.respondError(c, log, err)
		return
	}

	media, file, err := openUpload(c, "media_file")
	if err != nil {
		log.WithError(err).Warn("Failed to read media file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media file"})
		return
	}
	if file != nil {
		defer file.Close()
	}
	input.Media = media

	report, err := h.Emergencies.Create(c.Request.Context(), input.Input())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: report.ID, Message: "Emergency report submitted."})
}

// @Summary Request a certificate
// @Tags Forms
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param certificate body forms.CertificateForm true "Certificate request"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ValidationErrorResponse "Validation error"
// @Failure 502 {object} map[string]string "Portal API is unavailable"
// @Router /certificates [post]
func (h *Handler) createCertificate(c *gin.Context) {
	submitJSON[forms.CertificateForm, models.CreateCertificateInput, models.Certificate](
		h, c, "createCertificate", h.Certificates,
		func(out *models.Certificate) models.ID { return out.ID },
		"Certificate request submitted.",
	)
}

// @Summary Apply for a business permit
// @Tags Forms
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param permit body forms.BusinessPermitForm true "Business permit application"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ValidationErrorResponse "Validation error"
// @Failure 502 {object} map[string]string "Portal API is unavailable"
// @Router /business-permits [post]
func (h *Handler) createBusinessPermit(c *gin.Context) {
	submitJSON[forms.BusinessPermitForm, models.CreateBusinessPermitInput, models.BusinessPermit](
		h, c, "createBusinessPermit", h.Permits,
		func(out *models.BusinessPermit) models.ID { return out.ID },
		"Business permit application submitted.",
	)
}

// @Summary File a blotter report
// @Description Residents only. Priority is derived from the incident type.
// @Tags Forms
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param blotter body forms.BlotterForm true "Blotter report"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ValidationErrorResponse "Validation error"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /blotters [post]
func (h *Handler) createBlotter(c *gin.Context) {
	submitJSON[forms.BlotterForm, models.CreateBlotterInput, models.BlotterReport](
		h, c, "createBlotter", h.Blotters,
		func(out *models.BlotterReport) models.ID { return out.ReportNumber },
		"Blotter report submitted.",
	)
}

// @Summary File a complaint
// @Tags Forms
// @Accept multipart/form-data
// @Produce json
// @Security CookieAuth
// @Param type formData string true "Complaint type"
// @Param fullname formData string true "Complainant name"
// @Param contact_number formData string true "Contact number"
// @Param address formData string true "Address"
// @Param subject formData string true "Subject"
// @Param detailed_description formData string true "Description"
// @Param agree_to_terms formData bool true "Terms accepted"
// @Param evidence formData file false "Evidence file"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ValidationErrorResponse "Validation error"
// @Failure 502 {object} map[string]string "Portal API is unavailable"
// @Router /complaints [post]
func (h *Handler) createComplaint(c *gin.Context) {
	var input forms.ComplaintForm
	log := h.log("createComplaint")

	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.Forms.Check(&input); err != nil {
		h.respondError(c, log, err)
		return
	}

	evidence, file, err := openUpload(c, "evidence")
	if err != nil {
		log.WithError(err).Warn("Failed to read evidence file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid evidence file"})
		return
	}
	if file != nil {
		defer file.Close()
	}
	input.Evidence = evidence

	complaint, err := h.Complaints.Create(c.Request.Context(), input.Input())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: complaint.ID, Message: "Your complaint has been created."})
}

// @Summary My complaints
// @Description Complaints filed by the current user
// @Tags Forms
// @Produce json
// @Security CookieAuth
// @Success 200 {array} models.Complaint
// @Failure 401 {object} map[string]string "Not authenticated"
// @Router /complaints/mine [get]
func (h *Handler) listMyComplaints(c *gin.Context) {
	log := h.log("listMyComplaints")

	complaints, err := h.MyComplaints.Mine(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// @Summary Resolve the reporter location
// @Description Coordinates for the "use my location" action of the forms, rounded to 6 decimals
// @Tags Forms
// @Produce json
// @Success 200 {object} LocationResponse
// @Router /location [get]
func (h *Handler) locate(c *gin.Context) {
	c.JSON(http.StatusOK, ResolutionToLocationResponse(geo.Resolve(c.Request.Context(), h.Locator)))
}

// @Summary Published announcements
// @Tags Announcements
// @Produce json
// @Success 200 {array} models.Announcement
// @Failure 502 {object} map[string]string "Portal API is unavailable"
// @Router /announcements [get]
func (h *Handler) listAnnouncements(c *gin.Context) {
	log := h.log("listAnnouncements")

	announcements, err := h.Announcements.Published(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, announcements)
}
