package service

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/internal/notify"
	"github.com/shenikar/barangay_portal/internal/querycache"
	"github.com/shenikar/barangay_portal/internal/service/mocks"
	"github.com/shenikar/barangay_portal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestComplaintService(t *testing.T) (*ComplaintService, *mocks.MockComplaintRepository, *querycache.Cache) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockComplaintRepository(ctrl)
	log := logger.Discard()
	cache := querycache.New(time.Minute, log)
	return NewComplaintService(repoMock, cache, notify.NewFeed(10, log), log), repoMock, cache
}

func TestComplaintMine_CachedUnderListKey(t *testing.T) {
	svc, repoMock, cache := newTestComplaintService(t)
	mine := []models.Complaint{{ID: "1", ReferenceNumber: "CMP-1"}}

	repoMock.EXPECT().Mine(gomock.Any()).Return(mine, nil).Times(1)

	got, err := svc.Mine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mine, got)

	_, err = svc.Mine(context.Background())
	require.NoError(t, err)

	cache.Invalidate(ComplaintKey)
	assert.True(t, cache.IsStale(ComplaintKey+"/mine"))
}

func TestComplaintSetStatus_ResubmitsFormWithStatus(t *testing.T) {
	svc, repoMock, _ := newTestComplaintService(t)
	current := &models.Complaint{ID: "2", Subject: "Loud karaoke", Status: models.ComplaintPending}

	repoMock.EXPECT().Get(gomock.Any(), models.ID("2")).Return(current, nil)
	repoMock.EXPECT().
		Update(gomock.Any(), models.ID("2"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.ID, in *models.ComplaintInput) (*models.Complaint, error) {
			assert.Equal(t, models.ComplaintInProgress, in.Status)
			assert.Equal(t, "Loud karaoke", in.Subject)
			return &models.Complaint{ID: "2", Status: in.Status}, nil
		})

	require.NoError(t, svc.SetStatus(context.Background(), "2", "IN_PROGRESS"))
}

func TestComplaintSetStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestComplaintService(t)

	err := svc.SetStatus(context.Background(), "2", "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParseStatus(t *testing.T) {
	s, err := parseStatus(" Under_Investigation ", models.BlotterStatuses)
	require.NoError(t, err)
	assert.Equal(t, models.BlotterUnderInvestigation, s)

	_, err = parseStatus("closed", models.BlotterStatuses)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestMessagesFor(t *testing.T) {
	m := MessagesFor("permit", "Business permit")
	assert.Equal(t, "Business permit created successfully.", m.Created)
	assert.Equal(t, "Failed to delete permit.", m.DeleteFailed)
}
