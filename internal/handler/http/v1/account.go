package v1

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/barangay_portal/internal/idcard"
)

// @Summary Notifications
// @Description Recent notifications, newest first
// @Tags Notifications
// @Produce json
// @Success 200 {array} notify.Notification
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.Notifications.List())
}

// @Summary Dismiss a notification
// @Tags Notifications
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid notification ID"
// @Failure 404 {object} map[string]string "Notification not found"
// @Router /notifications/{id} [delete]
func (h *Handler) dismissNotification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification ID"})
		return
	}

	if !h.Notifications.Dismiss(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Download the barangay ID card
// @Description Render the current user's ID card as an 86x54 mm PDF
// @Tags Account
// @Produce application/pdf
// @Security CookieAuth
// @Success 200 {file} file
// @Failure 401 {object} map[string]string "Not authenticated"
// @Failure 422 {object} map[string]string "Cannot issue an ID card"
// @Router /me/id-card [get]
func (h *Handler) downloadIDCard(c *gin.Context) {
	log := h.log("downloadIDCard")

	user := h.Session.User()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	card, err := idcard.FromUser(user, h.cfg.BarangayLocality, time.Now())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	var buf bytes.Buffer
	if err := idcard.Render(&buf, card); err != nil {
		h.respondError(c, log, err)
		return
	}

	log.WithField("number", card.Number).Info("ID card generated")
	c.Header("Content-Disposition", `attachment; filename="`+idcard.FileName(card.Number)+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
