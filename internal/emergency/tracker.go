package emergency

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/internal/notify"
	"github.com/shenikar/barangay_portal/internal/querycache"
	"github.com/sirupsen/logrus"
)

const DefaultPollInterval = 5 * time.Second

var (
	ErrUnknownStatus  = errors.New("emergency: unknown status")
	ErrReportNotFound = errors.New("emergency: report not found among active reports")
)

// Reports - операции над вызовами, которые нужны панели
type Reports interface {
	ListKey() string
	List(ctx context.Context, opts ...querycache.Option) ([]models.EmergencyReport, error)
	ChangeStatus(ctx context.Context, id models.ID, status models.EmergencyStatus) (*models.EmergencyReport, error)
	Delete(ctx context.Context, id models.ID) error
}

// AlertPublisher получает вызовы, впервые замеченные в статусе pending
type AlertPublisher interface {
	PublishAlert(ctx context.Context, report models.EmergencyReport) error
}

type Options struct {
	PollInterval time.Duration
	// MediaURL превращает относительный путь вложения в абсолютный
	MediaURL  func(path string) string
	Publisher AlertPublisher
}

// Snapshot - состояние панели для отрисовки
type Snapshot struct {
	Mounted      bool                     `json:"mounted"`
	Visible      bool                     `json:"visible"`
	Dismissed    bool                     `json:"dismissed"`
	SoundEnabled bool                     `json:"sound_enabled"`
	AlarmPlaying bool                     `json:"alarm_playing"`
	Loading      bool                     `json:"loading"`
	Error        string                   `json:"error,omitempty"`
	Pending      []models.EmergencyReport `json:"pending"`
	InProgress   []models.EmergencyReport `json:"in_progress"`
	Selected     *models.EmergencyReport  `json:"selected,omitempty"`
	Statuses     []models.EmergencyStatus `json:"statuses"`
	FetchedAt    time.Time                `json:"fetched_at"`
}

type alarmAttempt struct {
	pending int
	toggles int
}

// Tracker - панель активных экстренных вызовов для сотрудников.
// Пока панель смонтирована, список вызовов перечитывается каждые PollInterval
// и по каждой инвалидации ключа в кеше. Сигнал звучит, пока включен звук
// и есть хотя бы один вызов в статусе pending.
type Tracker struct {
	reports   Reports
	cache     *querycache.Cache
	alarm     Alarm
	notifier  notify.Notifier
	logger    *logrus.Logger
	interval  time.Duration
	mediaURL  func(string) string
	publisher AlertPublisher

	mu           sync.Mutex
	mounted      bool
	gen          uint64
	cancel       context.CancelFunc
	done         chan struct{}
	visible      bool
	soundEnabled bool
	soundToggles int
	selected     *models.EmergencyReport
	partition    Partition
	loading      bool
	lastErr      error
	fetchedAt    time.Time
	refreshes    int
	alerted      map[models.ID]struct{}

	alarmMu      sync.Mutex
	alarmPlaying bool
	failed       *alarmAttempt
}

func NewTracker(reports Reports, cache *querycache.Cache, alarm Alarm, notifier notify.Notifier, logger *logrus.Logger, opts Options) *Tracker {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	t := &Tracker{
		reports:      reports,
		cache:        cache,
		alarm:        alarm,
		notifier:     notifier,
		logger:       logger,
		interval:     opts.PollInterval,
		mediaURL:     opts.MediaURL,
		publisher:    opts.Publisher,
		visible:      true,
		soundEnabled: true,
		alerted:      make(map[models.ID]struct{}),
	}
	if ia, ok := alarm.(Interruptible); ok {
		ia.OnFailure(t.alarmInterrupted)
	}
	return t
}

func (t *Tracker) log(method string) *logrus.Entry {
	return t.logger.WithFields(logrus.Fields{
		"service": "emergency_tracker",
		"method":  method,
	})
}

// Mount запускает опрос. Состояние панели и список уже отправленных тревог сбрасываются.
func (t *Tracker) Mount(ctx context.Context) {
	t.mu.Lock()
	if t.mounted {
		t.mu.Unlock()
		return
	}
	t.gen++
	gen := t.gen
	loopCtx, cancel := context.WithCancel(ctx)
	t.mounted = true
	t.cancel = cancel
	t.done = make(chan struct{})
	t.visible = true
	t.soundEnabled = true
	t.soundToggles++
	t.selected = nil
	t.partition = Partition{}
	t.alerted = make(map[models.ID]struct{})
	t.loading = true
	t.lastErr = nil
	done := t.done
	t.mu.Unlock()

	events, unsubscribe := t.cache.Subscribe(t.reports.ListKey())

	go func() {
		defer close(done)
		defer unsubscribe()
		t.run(loopCtx, gen, events)
	}()

	t.log("Mount").WithField("interval", t.interval.String()).Info("Emergency panel mounted")
}

// Unmount останавливает опрос и сигнал. Запрос в полете не прерывается,
// его результат будет отброшен.
func (t *Tracker) Unmount() {
	t.mu.Lock()
	if !t.mounted {
		t.mu.Unlock()
		return
	}
	t.mounted = false
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	cancel()
	<-done
	t.syncAlarm()

	t.log("Unmount").Info("Emergency panel unmounted")
}

func (t *Tracker) run(ctx context.Context, gen uint64, events <-chan string) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.refresh(ctx, gen)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Инвалидация вернется к нам через подписку и вызовет перечитывание
			t.cache.Invalidate(t.reports.ListKey())
		case <-events:
			t.refresh(ctx, gen)
		}
	}
}

func (t *Tracker) refresh(ctx context.Context, gen uint64) {
	log := t.log("refresh")

	reports, err := t.reports.List(ctx)
	if ctx.Err() != nil {
		return
	}

	t.mu.Lock()
	if !t.mounted || t.gen != gen {
		t.mu.Unlock()
		return
	}
	if err != nil {
		t.lastErr = err
		t.loading = false
		t.refreshes++
		t.mu.Unlock()
		log.WithError(err).Warn("Failed to load emergency reports")
		return
	}
	t.lastErr = nil
	t.partition = PartitionReports(reports)
	fresh := t.newlyPending()
	t.mu.Unlock()

	t.syncAlarm()
	t.publish(ctx, fresh)

	t.mu.Lock()
	if t.gen == gen {
		t.loading = false
		t.fetchedAt = time.Now()
		t.refreshes++
	}
	t.mu.Unlock()
}

// newlyPending возвращает вызовы pending, которые еще не отправлялись.
// Вызывается под t.mu.
func (t *Tracker) newlyPending() []models.EmergencyReport {
	current := make(map[models.ID]struct{}, len(t.partition.Pending))
	var fresh []models.EmergencyReport
	for _, r := range t.partition.Pending {
		current[r.ID] = struct{}{}
		if _, ok := t.alerted[r.ID]; !ok {
			fresh = append(fresh, r)
		}
	}
	t.alerted = current
	return fresh
}

func (t *Tracker) publish(ctx context.Context, reports []models.EmergencyReport) {
	if t.publisher == nil {
		return
	}
	for _, r := range reports {
		if err := t.publisher.PublishAlert(ctx, r); err != nil {
			t.log("publish").WithError(err).WithField("report_id", r.ID).Error("Failed to publish emergency alert")
		}
	}
}

// syncAlarm приводит сигнал в соответствие с состоянием панели.
// Неудачный запуск повторяется только после смены числа pending или переключения звука.
func (t *Tracker) syncAlarm() {
	t.alarmMu.Lock()
	defer t.alarmMu.Unlock()

	t.mu.Lock()
	want := t.mounted && t.soundEnabled && len(t.partition.Pending) > 0
	attempt := alarmAttempt{pending: len(t.partition.Pending), toggles: t.soundToggles}
	t.mu.Unlock()

	if !want {
		if t.alarmPlaying {
			t.alarm.Stop()
			t.alarmPlaying = false
		}
		return
	}
	if t.alarmPlaying {
		return
	}
	if t.failed != nil && *t.failed == attempt {
		return
	}

	if err := t.alarm.Play(); err != nil {
		t.failed = &attempt
		t.log("syncAlarm").WithError(err).Error("Alarm playback failed")
		title := "Audio Playback Error"
		if errors.Is(err, ErrAlarmAsset) {
			title = "Audio Load Error"
		}
		notify.Failure(t.notifier, title, "Unable to play alarm sound: "+err.Error())
		return
	}
	t.failed = nil
	t.alarmPlaying = true
}

// alarmInterrupted вызывается сигналом, оборвавшимся посреди воспроизведения.
// Как и неудачный запуск, повторяется только после смены числа pending или переключения звука.
func (t *Tracker) alarmInterrupted(err error) {
	t.alarmMu.Lock()
	defer t.alarmMu.Unlock()

	// Сигнал уже перезапущен или остановлен: ошибка относится к прошлому циклу
	if !t.alarmPlaying {
		return
	}
	if ia, ok := t.alarm.(Interruptible); ok && ia.Playing() {
		return
	}

	t.mu.Lock()
	attempt := alarmAttempt{pending: len(t.partition.Pending), toggles: t.soundToggles}
	t.mu.Unlock()

	t.alarmPlaying = false
	t.failed = &attempt
	t.log("alarmInterrupted").WithError(err).Error("Alarm playback stopped unexpectedly")
	notify.Failure(t.notifier, "Audio Playback Error", "Unable to play alarm sound: "+err.Error())
}

// Snapshot возвращает текущее состояние панели
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	s := Snapshot{
		Mounted:      t.mounted,
		Dismissed:    !t.visible,
		Visible:      t.mounted && t.visible && !t.partition.Empty(),
		SoundEnabled: t.soundEnabled,
		Loading:      t.loading,
		Pending:      append([]models.EmergencyReport(nil), t.partition.Pending...),
		InProgress:   append([]models.EmergencyReport(nil), t.partition.InProgress...),
		Statuses:     models.EmergencyStatuses,
		FetchedAt:    t.fetchedAt,
	}
	if t.lastErr != nil {
		s.Error = t.lastErr.Error()
	}
	if t.selected != nil {
		selected := *t.selected
		s.Selected = &selected
	}
	t.mu.Unlock()

	t.alarmMu.Lock()
	s.AlarmPlaying = t.alarmPlaying
	t.alarmMu.Unlock()
	return s
}

// SetSound включает или выключает звук; видимость панели не меняется
func (t *Tracker) SetSound(enabled bool) {
	t.mu.Lock()
	if t.soundEnabled != enabled {
		t.soundEnabled = enabled
		t.soundToggles++
	}
	t.mu.Unlock()
	t.syncAlarm()
}

func (t *Tracker) ToggleSound() bool {
	t.mu.Lock()
	enabled := !t.soundEnabled
	t.mu.Unlock()
	t.SetSound(enabled)
	return enabled
}

// DismissPanel скрывает панель до следующего монтирования
func (t *Tracker) DismissPanel() {
	t.mu.Lock()
	t.visible = false
	t.mu.Unlock()
	t.log("DismissPanel").Info("Emergency panel dismissed")
}

// ChangeStatus отправляет одно изменение со статусом из перечисления.
// Вызов переедет в другой список после следующего чтения.
func (t *Tracker) ChangeStatus(ctx context.Context, id models.ID, status models.EmergencyStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	if _, err := t.reports.ChangeStatus(ctx, id, status.Normalize()); err != nil {
		return err
	}
	return nil
}

// ViewDetails открывает карточку активного вызова
func (t *Tracker) ViewDetails(id models.ID) (models.EmergencyReport, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	report, ok := t.partition.Find(id)
	if !ok {
		return models.EmergencyReport{}, fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	if report.MediaFile != nil && t.mediaURL != nil {
		media := t.mediaURL(*report.MediaFile)
		report.MediaFile = &media
	}
	t.selected = &report
	return report, nil
}

func (t *Tracker) CloseDetails() {
	t.mu.Lock()
	t.selected = nil
	t.mu.Unlock()
}

// DismissReport удаляет вызов без подтверждения
func (t *Tracker) DismissReport(ctx context.Context, id models.ID) error {
	if err := t.reports.Delete(ctx, id); err != nil {
		return err
	}

	t.mu.Lock()
	if t.selected != nil && t.selected.ID == id {
		t.selected = nil
	}
	t.mu.Unlock()
	return nil
}
