package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/internal/querycache"
	"github.com/shenikar/barangay_portal/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blotters() []models.BlotterReport {
	return []models.BlotterReport{
		{ReportNumber: "1001", ComplainantName: "Ana Reyes", IncidentType: "Theft/Burglary", Location: "Purok 1", Priority: models.PriorityHigh, Status: models.BlotterPending},
		{ReportNumber: "1002", ComplainantName: "Ben Cruz", IncidentType: "Noise Complaint", Location: "Purok 2", Priority: models.PriorityMedium, Status: models.BlotterResolved},
		{ReportNumber: "1003", ComplainantName: "Carla Santos", IncidentType: "Noise Complaint", Location: "Purok 1", Priority: models.PriorityMedium, Status: models.BlotterPending},
	}
}

func numbers(items []models.BlotterReport) []string {
	out := make([]string, 0, len(items))
	for _, b := range items {
		out = append(out, b.ReportNumber.String())
	}
	return out
}

func blotterTable() *Table[models.BlotterReport] {
	return BlotterBoard(&fakeBlotters{}).table
}

func TestTable_SearchIsCaseInsensitive(t *testing.T) {
	table := blotterTable()

	got := table.Filter(blotters(), "  PUROK 1 ", nil)
	assert.Equal(t, []string{"1001", "1003"}, numbers(got))

	got = table.Filter(blotters(), "1002", nil)
	assert.Equal(t, []string{"1002"}, numbers(got))
}

func TestTable_AllMeansNoFilter(t *testing.T) {
	table := blotterTable()

	got := table.Filter(blotters(), "", map[string]string{"status": "All", "priority": ""})
	assert.Len(t, got, 3)

	got = table.Filter(blotters(), "", map[string]string{"status": "pending", "type": "noise complaint"})
	assert.Equal(t, []string{"1003"}, numbers(got))
}

func TestTable_UnknownFilterIgnored(t *testing.T) {
	got := blotterTable().Filter(blotters(), "", map[string]string{"colour": "red"})
	assert.Len(t, got, 3)
}

func TestPaginate(t *testing.T) {
	items := make([]int, 12)
	for i := range items {
		items[i] = i + 1
	}

	testCases := []struct {
		name      string
		page      int
		perPage   int
		wantItems []int
		wantPage  int
		wantPages int
		wantStart int
		wantEnd   int
	}{
		{name: "first page", page: 1, perPage: 5, wantItems: []int{1, 2, 3, 4, 5}, wantPage: 1, wantPages: 3, wantStart: 0, wantEnd: 5},
		{name: "last partial page", page: 3, perPage: 5, wantItems: []int{11, 12}, wantPage: 3, wantPages: 3, wantStart: 10, wantEnd: 12},
		{name: "page beyond range is clamped", page: 9, perPage: 5, wantItems: []int{11, 12}, wantPage: 3, wantPages: 3, wantStart: 10, wantEnd: 12},
		{name: "zero page is first", page: 0, perPage: 5, wantItems: []int{1, 2, 3, 4, 5}, wantPage: 1, wantPages: 3, wantStart: 0, wantEnd: 5},
		{name: "default per page", page: 2, perPage: 0, wantItems: []int{11, 12}, wantPage: 2, wantPages: 2, wantStart: 10, wantEnd: 12},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Paginate(items, tc.page, tc.perPage)

			assert.Equal(t, tc.wantItems, p.Items)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantPages, p.TotalPages)
			assert.Equal(t, tc.wantStart, p.Start)
			assert.Equal(t, tc.wantEnd, p.End)
			assert.Equal(t, 12, p.Total)
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate([]string{}, 3, 10)

	assert.Empty(t, p.Items)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 0, p.Start)
	assert.Equal(t, 0, p.End)
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus(blotters(), func(b models.BlotterReport) string { return string(b.Status) })

	assert.Equal(t, map[string]int{"pending": 2, "resolved": 1}, counts)
}

type fakeBlotters struct {
	items    []models.BlotterReport
	listErr  error
	statuses map[models.ID]string
	deleted  []models.ID
}

func (f *fakeBlotters) List(_ context.Context, _ ...querycache.Option) ([]models.BlotterReport, error) {
	return f.items, f.listErr
}

func (f *fakeBlotters) Get(_ context.Context, id models.ID) (*models.BlotterReport, error) {
	for i := range f.items {
		if f.items[i].ReportNumber == id {
			return &f.items[i], nil
		}
	}
	return nil, fmt.Errorf("blotter %s not found", id)
}

func (f *fakeBlotters) Delete(_ context.Context, id models.ID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBlotters) SetStatus(_ context.Context, id models.ID, raw string) error {
	if f.statuses == nil {
		f.statuses = map[models.ID]string{}
	}
	f.statuses[id] = raw
	return nil
}

func TestResource_View(t *testing.T) {
	src := &fakeBlotters{items: blotters()}
	board := BlotterBoard(src)

	view, err := board.View(context.Background(), Query{
		Filters: map[string]string{"status": "pending"},
		Page:    1,
		PerPage: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, service.BlotterKey, view.Resource)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, models.Badge{Label: "Pending", Color: "yellow"}, view.Rows[0].Badge)
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, 2, view.TotalPages)
	// Счетчики считаются по всему списку, а не по отфильтрованному
	assert.Equal(t, 2, view.Counts["pending"])
	assert.Equal(t, 1, view.Counts["resolved"])
}

func TestResource_ViewListError(t *testing.T) {
	board := BlotterBoard(&fakeBlotters{listErr: errors.New("boom")})

	_, err := board.View(context.Background(), Query{})

	assert.Error(t, err)
}

func TestResource_ActionsDelegate(t *testing.T) {
	src := &fakeBlotters{items: blotters()}
	board := BlotterBoard(src)
	ctx := context.Background()

	item, err := board.Get(ctx, "1002")
	require.NoError(t, err)
	assert.Equal(t, "Ben Cruz", item.(*models.BlotterReport).ComplainantName)

	require.NoError(t, board.SetStatus(ctx, "1001", "resolved"))
	require.NoError(t, board.Delete(ctx, "1003"))

	assert.Equal(t, "resolved", src.statuses["1001"])
	assert.Equal(t, []models.ID{"1003"}, src.deleted)
}

type fakeEmergencies struct {
	fakeReports []models.EmergencyReport
	changed     models.EmergencyStatus
}

func (f *fakeEmergencies) List(_ context.Context, _ ...querycache.Option) ([]models.EmergencyReport, error) {
	return f.fakeReports, nil
}

func (f *fakeEmergencies) Get(_ context.Context, _ models.ID) (*models.EmergencyReport, error) {
	return nil, errors.New("not used")
}

func (f *fakeEmergencies) Delete(_ context.Context, _ models.ID) error {
	return nil
}

func (f *fakeEmergencies) ChangeStatus(_ context.Context, _ models.ID, status models.EmergencyStatus) (*models.EmergencyReport, error) {
	f.changed = status
	return &models.EmergencyReport{Status: status}, nil
}

func TestEmergencyBoard_StatusIsValidated(t *testing.T) {
	src := &fakeEmergencies{}
	board := EmergencyBoard(src)
	ctx := context.Background()

	err := board.SetStatus(ctx, "1", "escalated")
	assert.ErrorIs(t, err, service.ErrInvalidStatus)

	require.NoError(t, board.SetStatus(ctx, "1", " In_Progress "))
	assert.Equal(t, models.EmergencyInProgress, src.changed)
}

func TestRegistry_Lookup(t *testing.T) {
	registry := NewRegistry(BlotterBoard(&fakeBlotters{}), EmergencyBoard(&fakeEmergencies{}))

	b, err := registry.Lookup(service.BlotterKey)
	require.NoError(t, err)
	assert.Equal(t, service.BlotterKey, b.Name())

	_, err = registry.Lookup("weather")
	assert.ErrorIs(t, err, ErrUnknownResource)

	assert.Equal(t, []string{service.BlotterKey, service.EmergencyKey}, registry.Names())
}
