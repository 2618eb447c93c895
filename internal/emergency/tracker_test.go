package emergency

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/barangay_portal/internal/emergency/mocks"
	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/internal/notify"
	"github.com/shenikar/barangay_portal/internal/querycache"
	"github.com/shenikar/barangay_portal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testKey = "emergencies"

// fakeAlarm запоминает запуски и остановки
type fakeAlarm struct {
	mu      sync.Mutex
	playing bool
	plays   int
	stops   int
	err     error
}

func (a *fakeAlarm) Play() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.plays++
	if a.err != nil {
		return a.err
	}
	a.playing = true
	return nil
}

func (a *fakeAlarm) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stops++
	a.playing = false
}

func (a *fakeAlarm) state() (playing bool, plays, stops int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.playing, a.plays, a.stops
}

// interruptibleAlarm умеет обрываться сам, как внешний плеер
type interruptibleAlarm struct {
	*fakeAlarm
	onFailure func(error)
}

func (a *interruptibleAlarm) Playing() bool {
	playing, _, _ := a.state()
	return playing
}

func (a *interruptibleAlarm) OnFailure(fn func(error)) {
	a.onFailure = fn
}

func (a *interruptibleAlarm) interrupt(err error) {
	a.mu.Lock()
	a.playing = false
	a.mu.Unlock()
	a.onFailure(err)
}

// reportList - изменяемый ответ сервера для мока
type reportList struct {
	mu    sync.Mutex
	items []models.EmergencyReport
	calls int
}

func (l *reportList) set(items ...models.EmergencyReport) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = items
}

func (l *reportList) list(_ context.Context, _ ...querycache.Option) ([]models.EmergencyReport, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	return append([]models.EmergencyReport(nil), l.items...), nil
}

func (l *reportList) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

type trackerFixture struct {
	tracker *Tracker
	reports *mocks.MockReports
	list    *reportList
	alarm   *fakeAlarm
	cache   *querycache.Cache
	feed    *notify.Feed
}

func newTrackerFixture(t *testing.T, interval time.Duration, opts ...func(*Options)) *trackerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logger.Discard()

	f := &trackerFixture{
		reports: mocks.NewMockReports(ctrl),
		list:    &reportList{},
		alarm:   &fakeAlarm{},
		cache:   querycache.New(time.Minute, log),
		feed:    notify.NewFeed(20, log),
	}
	f.reports.EXPECT().ListKey().Return(testKey).AnyTimes()
	f.reports.EXPECT().List(gomock.Any()).DoAndReturn(f.list.list).AnyTimes()

	o := Options{PollInterval: interval}
	for _, fn := range opts {
		fn(&o)
	}
	f.tracker = NewTracker(f.reports, f.cache, f.alarm, f.feed, log, o)
	t.Cleanup(f.tracker.Unmount)
	return f
}

func (f *trackerFixture) mountAndLoad(t *testing.T) {
	t.Helper()
	f.tracker.Mount(context.Background())
	require.Eventually(t, func() bool { return !f.tracker.Snapshot().Loading }, time.Second, 5*time.Millisecond)
}

// reload форсирует перечитывание и ждет, пока оно завершится
func (f *trackerFixture) reload(t *testing.T) {
	t.Helper()
	before := f.refreshes()
	f.cache.Invalidate(testKey)
	require.Eventually(t, func() bool { return f.refreshes() > before }, time.Second, 5*time.Millisecond)
}

func (f *trackerFixture) refreshes() int {
	f.tracker.mu.Lock()
	defer f.tracker.mu.Unlock()
	return f.tracker.refreshes
}

func TestTracker_AlarmPlaysWithPendingAndSound(t *testing.T) {
	f := newTrackerFixture(t, time.Hour)
	f.list.set(report("1", models.EmergencyPending, t0))

	f.mountAndLoad(t)

	snap := f.tracker.Snapshot()
	assert.True(t, snap.Visible)
	assert.True(t, snap.SoundEnabled)
	assert.True(t, snap.AlarmPlaying)
	playing, _, _ := f.alarm.state()
	assert.True(t, playing)
}

func TestTracker_SoundOffStopsAlarmImmediately(t *testing.T) {
	f := newTrackerFixture(t, time.Hour)
	f.list.set(report("1", models.EmergencyPending, t0))
	f.mountAndLoad(t)

	f.tracker.SetSound(false)

	playing, _, stops := f.alarm.state()
	assert.False(t, playing)
	assert.Equal(t, 1, stops)
	assert.False(t, f.tracker.Snapshot().AlarmPlaying)
	assert.True(t, f.tracker.Snapshot().Visible, "sound does not affect visibility")

	assert.True(t, f.tracker.ToggleSound())
	playing, plays, _ := f.alarm.state()
	assert.True(t, playing)
	assert.Equal(t, 2, plays)
}

func TestTracker_InProgressOnlyDoesNotPlay(t *testing.T) {
	f := newTrackerFixture(t, time.Hour)
	f.list.set(report("1", models.EmergencyInProgress, t0))

	f.mountAndLoad(t)

	snap := f.tracker.Snapshot()
	assert.True(t, snap.Visible)
	assert.True(t, snap.SoundEnabled)
	assert.False(t, snap.AlarmPlaying)
	_, plays, _ := f.alarm.state()
	assert.Zero(t, plays)
}

func TestTracker_PendingToZeroStopsAlarmWithoutTouchingSound(t *testing.T) {
	f := newTrackerFixture(t, time.Hour)
	f.list.set(report("1", models.EmergencyPending, t0))
	f.mountAndLoad(t)
	require.True(t, f.tracker.Snapshot().AlarmPlaying)

	f.list.set(report("1", models.EmergencyInProgress, t0))
	f.reload(t)

	snap := f.tracker.Snapshot()
	assert.False(t, snap.AlarmPlaying)
	assert.True(t, snap.SoundEnabled)
	assert.Equal(t, []models.ID{"1"}, ids(snap.InProgress))
	assert.Empty(t, snap.Pending)
}

func TestTracker_HiddenWhenNoActiveWork(t *testing.T) {
	f := newTrackerFixture(t, time.Hour)
	f.list.set(report("1", models.EmergencyResolved, t0), report("2", models.EmergencyRejected, t0))

	f.mountAndLoad(t)

	snap := f.tracker.Snapshot()
	assert.False(t, snap.Visible)
	assert.False(t, snap.Dismissed)
}

func TestTracker_DismissHidesUntilRemount(t *testing.T) {
	f := newTrackerFixture(t, time.Hour)
	f.list.set(report("1", models.EmergencyPending, t0))
	f.mountAndLoad(t)

	f.tracker.DismissPanel()

	snap := f.tracker.Snapshot()
	assert.False(t, snap.Visible, "dismissed panel stays hidden with active reports")
	assert.True(t, snap.Dismissed)
	assert.Len(t, snap.Pending, 1)

	f.reload(t)
	assert.False(t, f.tracker.Snapshot().Visible)

	f.tracker.Unmount()
	f.mountAndLoad(t)

	assert.True(t, f.tracker.Snapshot().Visible)
}

func TestTracker_UnmountStopsAlarm(t *testing.T) {
	f := newTrackerFixture(t, time.Hour)
	f.list.set(report("1", models.EmergencyPending, t0))
	f.mountAndLoad(t)

	f.tracker.Unmount()

	playing, _, _ := f.alarm.state()
	assert.False(t, playing)
	assert.False(t, f.tracker.Snapshot().Visible)
}

func TestTracker_PollFiresWhileMountedAndStopsAfterUnmount(t *testing.T) {
	interval := 50 * time.Millisecond
	f := newTrackerFixture(t, interval)
	f.list.set(report("1", models.EmergencyPending, t0))

	f.tracker.Mount(context.Background())
	time.Sleep(6 * interval)

	// первое чтение при монтировании плюс хотя бы один тик
	assert.GreaterOrEqual(t, f.list.count(), 2)

	f.tracker.Unmount()
	after := f.list.count()
	time.Sleep(6 * interval)

	assert.Equal(t, after, f.list.count())
}

func TestTracker_MutationInvalidationTriggersRefetch(t *testing.T) {
	f := newTrackerFixture(t, time.Hour)
	f.list.set(report("1", models.EmergencyPending, t0), report("2", models.EmergencyPending, t0.Add(time.Minute)))
	f.mountAndLoad(t)

	f.list.set(report("1", models.EmergencyPending, t0))
	f.reload(t)

	assert.Equal(t, []models.ID{"1"}, ids(f.tracker.Snapshot().Pending))
}

func TestTracker_ChangeStatusIssuesOneEdit(t *testing.T) {
	f := newTrackerFixture(t, time.Hour)
	f.reports.EXPECT().
		ChangeStatus(gomock.Any(), models.ID("4"), models.EmergencyResolved).
		Return(&models.EmergencyReport{ID: "4", Status: models.EmergencyResolved}, nil).
		Times(1)

	err := f.tracker.ChangeStatus(context.Background(), "4", "Resolved")

	require.NoError(t, err)
}

func TestTracker_ChangeStatusRejectsUnknownStatus(t *testing.T) {
	f := newTrackerFixture(t, time.Hour)

	err := f.tracker.ChangeStatus(context.Background(), "4", "closed")

	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestTracker_ViewAndCloseDetails(t *testing.T) {
	media := "emergencies/fire.jpg"
	f := newTrackerFixture(t, time.Hour, func(o *Options) {
		o.MediaURL = func(p string) string { return "https://media.example.ph/" + p }
	})
	r := report("1", models.EmergencyInProgress, t0)
	r.MediaFile = &media
	f.list.set(r)
	f.mountAndLoad(t)

	got, err := f.tracker.ViewDetails("1")

	require.NoError(t, err)
	require.NotNil(t, got.MediaFile)
	assert.Equal(t, "https://media.example.ph/emergencies/fire.jpg", *got.MediaFile)
	require.NotNil(t, f.tracker.Snapshot().Selected)
	assert.Equal(t, models.ID("1"), f.tracker.Snapshot().Selected.ID)

	f.tracker.CloseDetails()
	assert.Nil(t, f.tracker.Snapshot().Selected)

	_, err = f.tracker.ViewDetails("99")
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestTracker_DismissReportDeletes(t *testing.T) {
	f := newTrackerFixture(t, time.Hour)
	f.list.set(report("1", models.EmergencyPending, t0))
	f.mountAndLoad(t)
	_, err := f.tracker.ViewDetails("1")
	require.NoError(t, err)

	f.reports.EXPECT().Delete(gomock.Any(), models.ID("1")).Return(nil).Times(1)

	require.NoError(t, f.tracker.DismissReport(context.Background(), "1"))
	assert.Nil(t, f.tracker.Snapshot().Selected)
}

func TestTracker_AlarmFailureNotifiesAndRetriesOnChange(t *testing.T) {
	f := newTrackerFixture(t, time.Hour)
	f.alarm.err = errors.New("autoplay blocked")
	f.list.set(report("1", models.EmergencyPending, t0))
	f.mountAndLoad(t)

	items := f.feed.List()
	require.Len(t, items, 1)
	assert.Equal(t, notify.VariantDestructive, items[0].Variant)
	assert.Equal(t, "Audio Playback Error", items[0].Title)
	assert.False(t, f.tracker.Snapshot().AlarmPlaying)

	f.reload(t)
	_, plays, _ := f.alarm.state()
	assert.Equal(t, 1, plays, "same pending count is not retried")

	f.list.set(report("1", models.EmergencyPending, t0), report("2", models.EmergencyPending, t0.Add(time.Second)))
	f.reload(t)
	_, plays, _ = f.alarm.state()
	assert.Equal(t, 2, plays)
	assert.Len(t, f.feed.List(), 2)
}

func TestTracker_PublishesNewlyPendingOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockAlertPublisher(ctrl)
	f := newTrackerFixture(t, time.Hour, func(o *Options) { o.Publisher = publisher })

	a := report("1", models.EmergencyPending, t0)
	b := report("2", models.EmergencyPending, t0.Add(time.Second))
	f.list.set(a)

	publisher.EXPECT().PublishAlert(gomock.Any(), a).Return(nil).Times(1)
	f.mountAndLoad(t)

	publisher.EXPECT().PublishAlert(gomock.Any(), b).Return(errors.New("redis down")).Times(1)
	f.list.set(a, b)
	f.reload(t)

	f.reload(t)
}

func TestTracker_AlarmInterruptedNotifiesAndRetriesOnChange(t *testing.T) {
	f := newTrackerFixture(t, time.Hour)
	alarm := &interruptibleAlarm{fakeAlarm: &fakeAlarm{}}
	f.tracker = NewTracker(f.reports, f.cache, alarm, f.feed, logger.Discard(), Options{PollInterval: time.Hour})
	t.Cleanup(f.tracker.Unmount)

	f.list.set(report("1", models.EmergencyPending, t0))
	f.mountAndLoad(t)
	require.True(t, f.tracker.Snapshot().AlarmPlaying)

	alarm.interrupt(errors.New("player exited with status 1"))

	assert.False(t, f.tracker.Snapshot().AlarmPlaying)
	items := f.feed.List()
	require.Len(t, items, 1)
	assert.Equal(t, "Audio Playback Error", items[0].Title)

	f.reload(t)
	_, plays, _ := alarm.state()
	assert.Equal(t, 1, plays, "same pending count is not retried")

	f.list.set(report("1", models.EmergencyPending, t0), report("2", models.EmergencyPending, t0.Add(time.Second)))
	f.reload(t)
	_, plays, _ = alarm.state()
	assert.Equal(t, 2, plays)
	assert.True(t, f.tracker.Snapshot().AlarmPlaying)
}

func TestTracker_StaleInterruptionIgnoredAfterRestart(t *testing.T) {
	f := newTrackerFixture(t, time.Hour)
	alarm := &interruptibleAlarm{fakeAlarm: &fakeAlarm{}}
	f.tracker = NewTracker(f.reports, f.cache, alarm, f.feed, logger.Discard(), Options{PollInterval: time.Hour})
	t.Cleanup(f.tracker.Unmount)

	f.list.set(report("1", models.EmergencyPending, t0))
	f.mountAndLoad(t)

	// сигнал снова звучит: ошибка прошлого цикла не должна его сбросить
	alarm.onFailure(errors.New("old loop failed"))

	assert.True(t, f.tracker.Snapshot().AlarmPlaying)
	assert.Empty(t, f.feed.List())
}

func TestTracker_RemountRepublishesPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockAlertPublisher(ctrl)
	f := newTrackerFixture(t, time.Hour, func(o *Options) { o.Publisher = publisher })

	a := report("1", models.EmergencyPending, t0)
	f.list.set(a)

	publisher.EXPECT().PublishAlert(gomock.Any(), a).Return(nil).Times(2)
	f.mountAndLoad(t)
	f.reload(t)

	f.tracker.Unmount()
	f.mountAndLoad(t)
}
