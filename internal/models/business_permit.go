package models

import "time"

type BusinessPermitStatus string

const (
	PermitPending   BusinessPermitStatus = "pending"
	PermitApproved  BusinessPermitStatus = "approved"
	PermitRejected  BusinessPermitStatus = "rejected"
	PermitCompleted BusinessPermitStatus = "completed"
)

var BusinessPermitStatuses = []BusinessPermitStatus{
	PermitPending,
	PermitApproved,
	PermitRejected,
	PermitCompleted,
}

type BusinessPermit struct {
	ID                  ID                   `json:"id"`
	BusinessName        string               `json:"business_name"`
	BusinessType        string               `json:"business_type"`
	OwnerName           string               `json:"owner_name"`
	BusinessAddress     string               `json:"business_address"`
	ContactNumber       string               `json:"contact_number"`
	OwnerAddress        string               `json:"owner_address"`
	BusinessDescription string               `json:"business_description"`
	IsRenewal           bool                 `json:"is_renewal"`
	Status              BusinessPermitStatus `json:"status"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
	User                ID                   `json:"user,omitempty"`
}

type CreateBusinessPermitInput struct {
	BusinessName        string `json:"business_name"`
	BusinessType        string `json:"business_type"`
	OwnerName           string `json:"owner_name"`
	BusinessAddress     string `json:"business_address"`
	ContactNumber       string `json:"contact_number"`
	OwnerAddress        string `json:"owner_address"`
	BusinessDescription string `json:"business_description"`
	IsRenewal           bool   `json:"is_renewal"`
}

type EditBusinessPermitInput struct {
	CreateBusinessPermitInput
	Status BusinessPermitStatus `json:"status"`
}

func (p *BusinessPermit) EditInput() *EditBusinessPermitInput {
	return &EditBusinessPermitInput{
		CreateBusinessPermitInput: CreateBusinessPermitInput{
			BusinessName:        p.BusinessName,
			BusinessType:        p.BusinessType,
			OwnerName:           p.OwnerName,
			BusinessAddress:     p.BusinessAddress,
			ContactNumber:       p.ContactNumber,
			OwnerAddress:        p.OwnerAddress,
			BusinessDescription: p.BusinessDescription,
			IsRenewal:           p.IsRenewal,
		},
		Status: p.Status,
	}
}
