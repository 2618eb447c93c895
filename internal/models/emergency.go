package models

import (
	"strings"
	"time"
)

type IncidentType string

const (
	IncidentFire       IncidentType = "fire"
	IncidentMedical    IncidentType = "medical"
	IncidentSecurity   IncidentType = "security"
	IncidentFlood      IncidentType = "flood"
	IncidentEarthquake IncidentType = "earthquake"
	IncidentOther      IncidentType = "other"
)

// IncidentTypes - допустимые типы экстренных происшествий
var IncidentTypes = []IncidentType{
	IncidentFire,
	IncidentMedical,
	IncidentSecurity,
	IncidentFlood,
	IncidentEarthquake,
	IncidentOther,
}

type EmergencyStatus string

const (
	EmergencyPending    EmergencyStatus = "pending"
	EmergencyInProgress EmergencyStatus = "in_progress"
	EmergencyResolved   EmergencyStatus = "resolved"
	EmergencyRejected   EmergencyStatus = "rejected"
)

// EmergencyStatuses - фиксированный список статусов для выпадающего списка панели.
// Граф переходов не задан: любой статус можно сменить на любой.
var EmergencyStatuses = []EmergencyStatus{
	EmergencyPending,
	EmergencyInProgress,
	EmergencyResolved,
	EmergencyRejected,
}

// Normalize приводит статус к нижнему регистру и убирает пробелы
func (s EmergencyStatus) Normalize() EmergencyStatus {
	return EmergencyStatus(strings.ToLower(strings.TrimSpace(string(s))))
}

// IsActive сообщает, что вызов еще требует работы (pending или in_progress)
func (s EmergencyStatus) IsActive() bool {
	n := s.Normalize()
	return n == EmergencyPending || n == EmergencyInProgress
}

// Valid сообщает, входит ли статус в перечисление
func (s EmergencyStatus) Valid() bool {
	n := s.Normalize()
	for _, v := range EmergencyStatuses {
		if v == n {
			return true
		}
	}
	return false
}

// EmergencyReport - экстренный вызов жителя
type EmergencyReport struct {
	ID            ID              `json:"id"`
	Name          string          `json:"name"`
	IncidentType  IncidentType    `json:"incident_type"`
	Description   string          `json:"description"`
	LocationText  string          `json:"location_text"`
	Latitude      Coordinate      `json:"latitude"`
	Longitude     Coordinate      `json:"longitude"`
	ContactNumber string          `json:"contact_number,omitempty"`
	MediaFile     *string         `json:"media_file,omitempty"`
	Status        EmergencyStatus `json:"status"`
	SubmittedAt   time.Time       `json:"submitted_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// HasCoordinates сообщает, что у вызова заданы координаты.
// Нулевая широта или долгота допустимы (экватор, нулевой меридиан); отсутствие - это обе координаты равны нулю.
func (r *EmergencyReport) HasCoordinates() bool {
	return r.Latitude != 0 || r.Longitude != 0
}

// CreateEmergencyInput - данные для создания вызова. Вложение одно или отсутствует.
type CreateEmergencyInput struct {
	Name          string
	IncidentType  IncidentType
	Description   string
	LocationText  string
	ContactNumber string
	Latitude      float64
	Longitude     float64
	Media         *Upload
}

// EmergencyPatch - частичное обновление вызова; пустые поля не отправляются
type EmergencyPatch struct {
	Name         *string          `json:"name,omitempty"`
	IncidentType *IncidentType    `json:"incident_type,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Status       *EmergencyStatus `json:"status,omitempty"`
	LocationText *string          `json:"location_text,omitempty"`
	Latitude     *Coordinate      `json:"latitude,omitempty"`
	Longitude    *Coordinate      `json:"longitude,omitempty"`
}

// StatusPatch собирает патч, содержащий только статус
func StatusPatch(status EmergencyStatus) *EmergencyPatch {
	s := status.Normalize()
	return &EmergencyPatch{Status: &s}
}
