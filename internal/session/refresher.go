package session

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Refresher по расписанию обновляет access-токен, если он скоро истечет
type Refresher struct {
	cron   *cron.Cron
	store  *Store
	leeway time.Duration
	logger *logrus.Logger
}

// NewRefresher регистрирует задачу; schedule - выражение cron ("@every 10m")
func NewRefresher(store *Store, schedule string, leeway time.Duration, logger *logrus.Logger) (*Refresher, error) {
	r := &Refresher{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		store:  store,
		leeway: leeway,
		logger: logger,
	}
	if _, err := r.cron.AddFunc(schedule, r.run); err != nil {
		return nil, fmt.Errorf("session: invalid refresh schedule %q: %w", schedule, err)
	}
	return r, nil
}

func (r *Refresher) Start() {
	r.cron.Start()
	r.logger.WithField("service", "session").Info("Token refresher started")
}

// Stop останавливает планировщик и ждет текущую задачу
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.WithField("service", "session").Info("Token refresher stopped")
}

func (r *Refresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := r.RefreshIfExpiring(ctx); err != nil {
		r.logger.WithFields(logrus.Fields{
			"service": "session",
			"method":  "RefreshIfExpiring",
		}).WithError(err).Warn("Scheduled token refresh failed")
	}
}

// RefreshIfExpiring обновляет токен, если до истечения меньше leeway.
// Непрозрачные токены без exp не трогает.
func (r *Refresher) RefreshIfExpiring(ctx context.Context) (bool, error) {
	if !r.store.Authenticated() {
		return false, nil
	}
	exp, err := TokenExpiry(r.store.AccessToken())
	if err != nil {
		return false, nil
	}
	if time.Until(exp) > r.leeway {
		return false, nil
	}
	if err := r.store.Refresh(ctx); err != nil {
		return false, err
	}
	return true, nil
}
