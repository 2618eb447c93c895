package models

import "time"

type BlotterStatus string

const (
	BlotterPending            BlotterStatus = "pending"
	BlotterUnderInvestigation BlotterStatus = "under_investigation"
	BlotterResolved           BlotterStatus = "resolved"
	BlotterDismissed          BlotterStatus = "dismissed"
)

var BlotterStatuses = []BlotterStatus{
	BlotterPending,
	BlotterUnderInvestigation,
	BlotterResolved,
	BlotterDismissed,
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
	PriorityVaries Priority = "Varies"
)

// BlotterIncidentPriority - типы происшествий журнала и их приоритет
var BlotterIncidentPriority = map[string]Priority{
	"Noise Complaint":   PriorityMedium,
	"Theft/Burglary":    PriorityHigh,
	"Neighbor Dispute":  PriorityMedium,
	"Traffic Violation": PriorityLow,
	"Property Damage":   PriorityMedium,
	"Others":            PriorityVaries,
}

// BlotterReport - запись журнала происшествий (blotter)
type BlotterReport struct {
	ReportNumber    ID            `json:"report_number"`
	FiledBy         ID            `json:"filed_by,omitempty"`
	ComplainantName string        `json:"complainant_name"`
	ContactNumber   string        `json:"contact_number,omitempty"`
	EmailAddress    string        `json:"email_address,omitempty"`
	RespondentName  string        `json:"respondent_name,omitempty"`
	IncidentType    string        `json:"incident_type"`
	IncidentDate    string        `json:"incident_date"`
	IncidentTime    string        `json:"incident_time"`
	Location        string        `json:"location"`
	Description     string        `json:"description"`
	Witnesses       string        `json:"witnesses,omitempty"`
	AgreeTerms      bool          `json:"agree_terms"`
	Priority        Priority      `json:"priority"`
	Status          BlotterStatus `json:"status"`
	ResolutionNotes string        `json:"resolution_notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type CreateBlotterInput struct {
	ComplainantName string   `json:"complainant_name"`
	ContactNumber   string   `json:"contact_number,omitempty"`
	EmailAddress    string   `json:"email_address,omitempty"`
	RespondentName  string   `json:"respondent_name,omitempty"`
	IncidentType    string   `json:"incident_type"`
	IncidentDate    string   `json:"incident_date"`
	IncidentTime    string   `json:"incident_time"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Witnesses       string   `json:"witnesses,omitempty"`
	AgreeTerms      bool     `json:"agree_terms"`
	Priority        Priority `json:"priority"`
}

// EditBlotterInput - частичное обновление (PATCH)
type EditBlotterInput struct {
	Status          *BlotterStatus `json:"status,omitempty"`
	Priority        *Priority      `json:"priority,omitempty"`
	ResolutionNotes *string        `json:"resolution_notes,omitempty"`
	Description     *string        `json:"description,omitempty"`
	Location        *string        `json:"location,omitempty"`
}
