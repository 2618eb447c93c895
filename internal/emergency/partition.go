package emergency

import (
	"sort"

	"github.com/shenikar/barangay_portal/internal/models"
)

// Partition - активные вызовы, разделенные по статусу
type Partition struct {
	Pending    []models.EmergencyReport `json:"pending"`
	InProgress []models.EmergencyReport `json:"in_progress"`
}

// Empty сообщает, что активных вызовов нет
func (p Partition) Empty() bool {
	return len(p.Pending) == 0 && len(p.InProgress) == 0
}

// Find ищет вызов среди активных
func (p Partition) Find(id models.ID) (models.EmergencyReport, bool) {
	for _, list := range [][]models.EmergencyReport{p.Pending, p.InProgress} {
		for _, r := range list {
			if r.ID == id {
				return r, true
			}
		}
	}
	return models.EmergencyReport{}, false
}

// PartitionReports отбирает вызовы в статусах pending и in_progress.
// Статус сравнивается без учета регистра и пробелов, остальные статусы отбрасываются.
// Оба списка упорядочены по времени подачи, самый старый первым.
func PartitionReports(reports []models.EmergencyReport) Partition {
	var p Partition
	for _, r := range reports {
		switch r.Status.Normalize() {
		case models.EmergencyPending:
			p.Pending = append(p.Pending, r)
		case models.EmergencyInProgress:
			p.InProgress = append(p.InProgress, r)
		}
	}
	sortBySubmission(p.Pending)
	sortBySubmission(p.InProgress)
	return p
}

func sortBySubmission(reports []models.EmergencyReport) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].SubmittedAt.Before(reports[j].SubmittedAt)
	})
}
