package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

var (
	staffRoles    = []models.Role{models.RoleAdmin, models.RoleStaff}
	residentRoles = []models.Role{models.RoleResident, models.RoleUser}
)

// RequireRoles - middleware для проверки сессии и роли пользователя.
// Без списка ролей достаточно любой активной сессии.
// Проверка только скрывает разделы: права на данные проверяет API портала.
func RequireRoles(store SessionStore, log *logrus.Logger, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := store.User()
		if user == nil {
			log.WithField("path", c.FullPath()).Warn("Request without session")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		if len(roles) > 0 && !store.HasRole(roles...) {
			log.WithFields(logrus.Fields{
				"path": c.FullPath(),
				"role": user.Role(),
			}).Warn("Insufficient permissions")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}

		c.Next()
	}
}

// RequestID выдает запросу идентификатор, если клиент его не передал
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
