package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/barangay_portal/internal/models"
)

// @Summary Emergency panel state
// @Description Get pending and in-progress emergency reports, alarm and visibility state. Staff only.
// @Tags Panel
// @Produce json
// @Security CookieAuth
// @Success 200 {object} PanelResponse
// @Failure 401 {object} map[string]string "Not authenticated"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /panel [get]
func (h *Handler) getPanel(c *gin.Context) {
	c.JSON(http.StatusOK, SnapshotToPanelResponse(h.Panel.Snapshot()))
}

// @Summary Toggle the alarm sound
// @Description Enable or disable the looping alarm. Panel visibility does not change.
// @Tags Panel
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param sound body SoundRequest true "Sound state"
// @Success 200 {object} PanelResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /panel/sound [post]
func (h *Handler) setSound(c *gin.Context) {
	var input SoundRequest
	log := h.log("setSound")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.Forms.Validate(&input); err != nil {
		h.respondError(c, log, err)
		return
	}

	h.Panel.SetSound(*input.Enabled)
	c.JSON(http.StatusOK, SnapshotToPanelResponse(h.Panel.Snapshot()))
}

// @Summary Dismiss the panel
// @Description Hide the emergency panel until the next mount. Polling and alarm continue.
// @Tags Panel
// @Security CookieAuth
// @Success 204 "No Content"
// @Router /panel/dismiss [post]
func (h *Handler) dismissPanel(c *gin.Context) {
	h.Panel.DismissPanel()
	c.Status(http.StatusNoContent)
}

// @Summary Open report details
// @Description Select an active report for the details view. Media path is resolved to an absolute URL.
// @Tags Panel
// @Produce json
// @Security CookieAuth
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 404 {object} map[string]string "Report is not active"
// @Router /panel/reports/{id} [get]
func (h *Handler) viewReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.log("viewReport").WithField("id", id)

	report, err := h.Panel.ViewDetails(id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Close report details
// @Tags Panel
// @Security CookieAuth
// @Success 204 "No Content"
// @Router /panel/details [delete]
func (h *Handler) closeDetails(c *gin.Context) {
	h.Panel.CloseDetails()
	c.Status(http.StatusNoContent)
}

// @Summary Change report status
// @Description Send a single status change. The report moves between lists after the next poll.
// @Tags Panel
// @Accept json
// @Security CookieAuth
// @Param id path string true "Report ID"
// @Param status body StatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 502 {object} map[string]string "Portal API is unavailable"
// @Router /panel/reports/{id}/status [patch]
func (h *Handler) changeReportStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.log("changeReportStatus").WithField("id", id)

	var input StatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.Forms.Validate(&input); err != nil {
		h.respondError(c, log, err)
		return
	}

	if err := h.Panel.ChangeStatus(c.Request.Context(), id, models.EmergencyStatus(input.Status)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Dismiss a report
// @Description Delete the report without confirmation
// @Tags Panel
// @Security CookieAuth
// @Param id path string true "Report ID"
// @Success 204 "No Content"
// @Failure 502 {object} map[string]string "Portal API is unavailable"
// @Router /panel/reports/{id} [delete]
func (h *Handler) dismissReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.log("dismissReport").WithField("id", id)

	if err := h.Panel.DismissReport(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
