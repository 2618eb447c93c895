package models

import "time"

type CertificateStatus string

const (
	CertificatePending   CertificateStatus = "pending"
	CertificateApproved  CertificateStatus = "approved"
	CertificateRejected  CertificateStatus = "rejected"
	CertificateCompleted CertificateStatus = "completed"
)

var CertificateStatuses = []CertificateStatus{
	CertificatePending,
	CertificateApproved,
	CertificateRejected,
	CertificateCompleted,
}

// Certificate - заявка жителя на справку
type Certificate struct {
	ID              ID                `json:"id"`
	CertificateType string            `json:"certificate_type"`
	RequestNumber   string            `json:"request_number"`
	FirstName       string            `json:"first_name"`
	LastName        string            `json:"last_name"`
	MiddleName      string            `json:"middle_name,omitempty"`
	CompleteAddress string            `json:"complete_address"`
	ContactNumber   string            `json:"contact_number"`
	EmailAddress    string            `json:"email_address"`
	Purpose         string            `json:"purpose"`
	AgreeTerms      bool              `json:"agree_terms"`
	Status          CertificateStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	User            ID                `json:"user,omitempty"`
}

// ApplicantName возвращает полное имя заявителя
func (c *Certificate) ApplicantName() string {
	if c.MiddleName != "" {
		return c.FirstName + " " + c.MiddleName + " " + c.LastName
	}
	return c.FirstName + " " + c.LastName
}

type CreateCertificateInput struct {
	CertificateType string `json:"certificate_type"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	MiddleName      string `json:"middle_name,omitempty"`
	CompleteAddress string `json:"complete_address"`
	ContactNumber   string `json:"contact_number"`
	EmailAddress    string `json:"email_address"`
	Purpose         string `json:"purpose"`
	AgreeTerms      bool   `json:"agree_terms"`
}

type EditCertificateInput struct {
	CreateCertificateInput
	Status CertificateStatus `json:"status"`
}

// EditInput строит полное тело PUT-запроса из текущей записи
func (c *Certificate) EditInput() *EditCertificateInput {
	return &EditCertificateInput{
		CreateCertificateInput: CreateCertificateInput{
			CertificateType: c.CertificateType,
			FirstName:       c.FirstName,
			LastName:        c.LastName,
			MiddleName:      c.MiddleName,
			CompleteAddress: c.CompleteAddress,
			ContactNumber:   c.ContactNumber,
			EmailAddress:    c.EmailAddress,
			Purpose:         c.Purpose,
			AgreeTerms:      c.AgreeTerms,
		},
		Status: c.Status,
	}
}
