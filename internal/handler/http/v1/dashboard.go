package v1

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/barangay_portal/internal/dashboard"
	"github.com/sirupsen/logrus"
)

// Параметры таблицы, которые не являются фильтрами
var reservedQueryParams = map[string]bool{
	"search":   true,
	"page":     true,
	"per_page": true,
}

// RecoveryBoundary не дает сбою одной страницы панели уронить остальные:
// паника превращается в ответ 500, который клиент показывает с кнопкой повтора.
func RecoveryBoundary(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithFields(logrus.Fields{
					"path":  c.FullPath(),
					"panic": fmt.Sprint(r),
					"stack": string(debug.Stack()),
				}).Error("Dashboard page crashed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Something went wrong while loading this page.",
					"retry": true,
				})
			}
		}()
		c.Next()
	}
}

func queryFromRequest(c *gin.Context) dashboard.Query {
	q := dashboard.Query{
		Search:  c.Query("search"),
		Filters: make(map[string]string),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(dashboard.DefaultPerPage)))

	for key, values := range c.Request.URL.Query() {
		if reservedQueryParams[key] || len(values) == 0 {
			continue
		}
		q.Filters[key] = values[0]
	}
	return q
}

func (h *Handler) board(c *gin.Context) (dashboard.Board, bool) {
	b, err := h.Dashboards.Lookup(c.Param("resource"))
	if err != nil {
		h.respondError(c, h.log("board"), err)
		return nil, false
	}
	return b, true
}

// @Summary Dashboard resources
// @Description List the resources that have a dashboard table. Staff only.
// @Tags Dashboard
// @Produce json
// @Security CookieAuth
// @Success 200 {array} string
// @Router /dashboard [get]
func (h *Handler) listBoards(c *gin.Context) {
	c.JSON(http.StatusOK, h.Dashboards.Names())
}

// @Summary Dashboard table
// @Description Search, filter and paginate a resource. Any query parameter other than search, page and per_page is an exact-match filter; "all" disables it.
// @Tags Dashboard
// @Produce json
// @Security CookieAuth
// @Param resource path string true "Resource name" Enums(emergencies, certificates, business-permits, blotters, complaints, announcements, users)
// @Param search query string false "Case-insensitive search"
// @Param status query string false "Status filter"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Rows per page" default(10)
// @Success 200 {object} dashboard.View
// @Failure 404 {object} map[string]string "Unknown resource"
// @Failure 502 {object} map[string]string "Portal API is unavailable"
// @Router /dashboard/{resource} [get]
func (h *Handler) viewBoard(c *gin.Context) {
	b, ok := h.board(c)
	if !ok {
		return
	}
	log := h.log("viewBoard").WithField("resource", b.Name())

	view, err := b.View(c.Request.Context(), queryFromRequest(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Dashboard record
// @Tags Dashboard
// @Produce json
// @Security CookieAuth
// @Param resource path string true "Resource name"
// @Param id path string true "Record ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Not found"
// @Router /dashboard/{resource}/{id} [get]
func (h *Handler) getRecord(c *gin.Context) {
	b, ok := h.board(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.log("getRecord").WithFields(logrus.Fields{"resource": b.Name(), "id": id})

	item, err := b.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Change record status
// @Description Change the status of a record. For users the status is the role.
// @Tags Dashboard
// @Accept json
// @Security CookieAuth
// @Param resource path string true "Resource name"
// @Param id path string true "Record ID"
// @Param status body StatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "Unknown resource"
// @Router /dashboard/{resource}/{id}/status [patch]
func (h *Handler) setRecordStatus(c *gin.Context) {
	b, ok := h.board(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.log("setRecordStatus").WithFields(logrus.Fields{"resource": b.Name(), "id": id})

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

	if err := b.SetStatus(c.Request.Context(), id, input.Status); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a record
// @Tags Dashboard
// @Security CookieAuth
// @Param resource path string true "Resource name"
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Unknown resource"
// @Router /dashboard/{resource}/{id} [delete]
func (h *Handler) deleteRecord(c *gin.Context) {
	b, ok := h.board(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.log("deleteRecord").WithFields(logrus.Fields{"resource": b.Name(), "id": id})

	if err := b.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
