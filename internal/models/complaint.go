package models

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

var ComplaintStatuses = []ComplaintStatus{
	ComplaintPending,
	ComplaintInProgress,
	ComplaintResolved,
}

// ComplaintTypes - категории жалоб формы
var ComplaintTypes = []string{"noise", "dispute", "safety", "property", "other"}

type Evidence struct {
	ID      ID     `json:"id"`
	FileURL string `json:"file_url"`
}

type Complaint struct {
	ID                  ID              `json:"id"`
	ReferenceNumber     string          `json:"reference_number"`
	Type                string          `json:"type"`
	Fullname            string          `json:"fullname"`
	ContactNumber       string          `json:"contact_number"`
	Address             string          `json:"address"`
	EmailAddress        string          `json:"email_address"`
	Subject             string          `json:"subject"`
	DetailedDescription string          `json:"detailed_description"`
	RespondentName      string          `json:"respondent_name"`
	RespondentAddress   string          `json:"respondent_address"`
	Latitude            Coordinate      `json:"latitude"`
	Longitude           Coordinate      `json:"longitude"`
	DateFiled           string          `json:"date_filed"`
	Status              ComplaintStatus `json:"status"`
	Priority            string          `json:"priority"`
	Evidence            *Evidence       `json:"evidence,omitempty"`
}

// ComplaintInput - данные формы жалобы; отправляются multipart-формой
type ComplaintInput struct {
	Type                string
	Fullname            string
	ContactNumber       string
	EmailAddress        string
	Address             string
	Subject             string
	DetailedDescription string
	RespondentName      string
	RespondentAddress   string
	RequestMediation    bool
	AgreeToTerms        bool
	Latitude            float64
	Longitude           float64
	Status              ComplaintStatus
	Evidence            *Upload
}

func (c *Complaint) EditInput() *ComplaintInput {
	return &ComplaintInput{
		Type:                c.Type,
		Fullname:            c.Fullname,
		ContactNumber:       c.ContactNumber,
		EmailAddress:        c.EmailAddress,
		Address:             c.Address,
		Subject:             c.Subject,
		DetailedDescription: c.DetailedDescription,
		RespondentName:      c.RespondentName,
		RespondentAddress:   c.RespondentAddress,
		AgreeToTerms:        true,
		Latitude:            c.Latitude.Float64(),
		Longitude:           c.Longitude.Float64(),
		Status:              c.Status,
	}
}
