package v1

import (
	"time"

	"github.com/shenikar/barangay_portal/internal/models"
)

// ValidationErrorResponse DTO для ошибки проверки формы
// @Description DTO для ошибки проверки формы
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// UserResponse DTO с данными текущего пользователя
// @Description DTO с данными текущего пользователя
type UserResponse struct {
	ID            models.ID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Name          string    `json:"name,omitempty"`
	Role          string    `json:"role,omitempty"`
	ContactNumber string    `json:"contact_number,omitempty"`
	Address       string    `json:"address,omitempty"`
	IsStaff       bool      `json:"is_staff"`
}

// SoundRequest DTO для переключения звука тревоги
// @Description DTO для переключения звука тревоги
type SoundRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// StatusRequest DTO для смены статуса записи
// @Description DTO для смены статуса записи
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ReportResponse DTO экстренного вызова на панели
// @Description DTO экстренного вызова на панели
type ReportResponse struct {
	ID             models.ID    `json:"id"`
	Name           string       `json:"name"`
	IncidentType   string       `json:"incident_type"`
	Description    string       `json:"description"`
	LocationText   string       `json:"location_text"`
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`
	HasCoordinates bool         `json:"has_coordinates"`
	ContactNumber  string       `json:"contact_number,omitempty"`
	MediaURL       string       `json:"media_url,omitempty"`
	Status         string       `json:"status"`
	Badge          models.Badge `json:"badge"`
	SubmittedAt    time.Time    `json:"submitted_at"`
}

// PanelResponse DTO состояния панели экстренных вызовов
// @Description DTO состояния панели экстренных вызовов
type PanelResponse struct {
	Visible      bool             `json:"visible"`
	Dismissed    bool             `json:"dismissed"`
	SoundEnabled bool             `json:"sound_enabled"`
	AlarmPlaying bool             `json:"alarm_playing"`
	Loading      bool             `json:"loading"`
	Error        string           `json:"error,omitempty"`
	Pending      []ReportResponse `json:"pending"`
	InProgress   []ReportResponse `json:"in_progress"`
	Selected     *ReportResponse  `json:"selected,omitempty"`
	Statuses     []string         `json:"statuses"`
	FetchedAt    time.Time        `json:"fetched_at"`
}

// LocationResponse DTO результата определения координат для форм
// @Description DTO результата определения координат для форм
type LocationResponse struct {
	Located   bool    `json:"located"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Message   string  `json:"message,omitempty"`
}

// CreatedResponse DTO созданной записи
// @Description DTO созданной записи
type CreatedResponse struct {
	ID      models.ID `json:"id"`
	Message string    `json:"message"`
}
