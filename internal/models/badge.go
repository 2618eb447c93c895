package models

import "strings"

// Badge - подпись и цвет статуса для таблиц и диалогов
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Kind - вид ресурса для таблиц подписей
type Kind string

const (
	KindEmergency      Kind = "emergency"
	KindCertificate    Kind = "certificate"
	KindBusinessPermit Kind = "business_permit"
	KindBlotter        Kind = "blotter"
	KindComplaint      Kind = "complaint"
	KindAnnouncement   Kind = "announcement"
	KindPriority       Kind = "priority"
	KindRole           Kind = "role"
)

var badges = map[Kind]map[string]Badge{
	KindEmergency: {
		"pending":     {Label: "Pending", Color: "orange"},
		"in_progress": {Label: "In Progress", Color: "blue"},
		"resolved":    {Label: "Resolved", Color: "green"},
		"rejected":    {Label: "Rejected", Color: "red"},
	},
	KindCertificate: {
		"pending":   {Label: "Pending", Color: "yellow"},
		"approved":  {Label: "Approved", Color: "blue"},
		"rejected":  {Label: "Rejected", Color: "red"},
		"completed": {Label: "Completed", Color: "green"},
	},
	KindBusinessPermit: {
		"pending":   {Label: "Pending", Color: "yellow"},
		"approved":  {Label: "Approved", Color: "blue"},
		"rejected":  {Label: "Rejected", Color: "red"},
		"completed": {Label: "Completed", Color: "green"},
	},
	KindBlotter: {
		"pending":             {Label: "Pending", Color: "yellow"},
		"under_investigation": {Label: "Under Investigation", Color: "blue"},
		"resolved":            {Label: "Resolved", Color: "green"},
		"dismissed":           {Label: "Dismissed", Color: "gray"},
	},
	KindComplaint: {
		"pending":     {Label: "Pending", Color: "yellow"},
		"in_progress": {Label: "In Progress", Color: "blue"},
		"resolved":    {Label: "Resolved", Color: "green"},
	},
	KindAnnouncement: {
		"draft":     {Label: "Draft", Color: "gray"},
		"published": {Label: "Published", Color: "green"},
		"archived":  {Label: "Archived", Color: "yellow"},
	},
	KindPriority: {
		"high":   {Label: "High", Color: "red"},
		"medium": {Label: "Medium", Color: "yellow"},
		"low":    {Label: "Low", Color: "green"},
		"varies": {Label: "Varies", Color: "gray"},
	},
	KindRole: {
		"admin":    {Label: "Admin", Color: "purple"},
		"staff":    {Label: "Staff", Color: "blue"},
		"resident": {Label: "Resident", Color: "green"},
		"user":     {Label: "User", Color: "gray"},
	},
}

// BadgeFor возвращает подпись статуса; неизвестный статус показывается как есть серым
func BadgeFor(kind Kind, status string) Badge {
	key := strings.ToLower(strings.TrimSpace(status))
	if b, ok := badges[kind][key]; ok {
		return b
	}
	return Badge{Label: status, Color: "gray"}
}
