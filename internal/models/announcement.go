package models

import "time"

type AnnouncementStatus string

const (
	AnnouncementDraft     AnnouncementStatus = "draft"
	AnnouncementPublished AnnouncementStatus = "published"
	AnnouncementArchived  AnnouncementStatus = "archived"
)

var AnnouncementStatuses = []AnnouncementStatus{
	AnnouncementDraft,
	AnnouncementPublished,
	AnnouncementArchived,
}

type Announcement struct {
	ID             ID                 `json:"id"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Status         AnnouncementStatus `json:"status"`
	StartDate      string             `json:"start_date"`
	EndDate        string             `json:"end_date"`
	Location       string             `json:"location"`
	TargetAudience string             `json:"target_audience"`
	Image          string             `json:"image,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

// AnnouncementInput - тело создания/редактирования; с картинкой уходит multipart-формой
type AnnouncementInput struct {
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Status         AnnouncementStatus `json:"status"`
	StartDate      string             `json:"start_date"`
	EndDate        string             `json:"end_date"`
	Location       string             `json:"location"`
	TargetAudience string             `json:"target_audience"`
	Image          *Upload            `json:"-"`
}
