package emergency

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Alarm - зацикленный звуковой сигнал
type Alarm interface {
	// Play запускает сигнал с начала; повторный вызов во время звучания ничего не делает
	Play() error
	// Stop останавливает сигнал и перематывает его в начало
	Stop()
}

// Interruptible - сигнал, который может оборваться сам (ошибка плеера, закрытый терминал)
type Interruptible interface {
	Alarm
	// Playing сообщает, что цикл воспроизведения еще идет
	Playing() bool
	// OnFailure задает обработчик самопроизвольной остановки
	OnFailure(fn func(error))
}

// loop крутит fn в горутине до Stop или до ошибки fn
type loop struct {
	mu        sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
	onFailure func(error)
}

func (l *loop) start(fn func(ctx context.Context) error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.done = make(chan struct{})
	go func(done chan struct{}) {
		defer close(done)
		err := fn(ctx)
		if err == nil || ctx.Err() != nil {
			return
		}
		l.fail(done, err)
	}(l.done)
	return true
}

// fail снимает состояние цикла, если его еще не остановили через stop
func (l *loop) fail(done chan struct{}, err error) {
	l.mu.Lock()
	if l.done != done {
		l.mu.Unlock()
		return
	}
	l.cancel()
	l.cancel, l.done = nil, nil
	onFailure := l.onFailure
	l.mu.Unlock()

	if onFailure != nil {
		onFailure(err)
	}
}

func (l *loop) stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (l *loop) running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}

func (l *loop) setOnFailure(fn func(error)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onFailure = fn
}

// BellAlarm пишет символ BEL в терминал с заданным периодом
type BellAlarm struct {
	out    io.Writer
	period time.Duration
	loop   loop
}

func NewBellAlarm(out io.Writer, period time.Duration) *BellAlarm {
	if period <= 0 {
		period = time.Second
	}
	return &BellAlarm{out: out, period: period}
}

func (a *BellAlarm) Play() error {
	if _, err := a.out.Write([]byte{'\a'}); err != nil {
		return fmt.Errorf("alarm: could not ring bell: %w", err)
	}
	a.loop.start(func(ctx context.Context) error {
		ticker := time.NewTicker(a.period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if _, err := a.out.Write([]byte{'\a'}); err != nil {
					return fmt.Errorf("alarm: could not ring bell: %w", err)
				}
			}
		}
	})
	return nil
}

func (a *BellAlarm) Stop() {
	a.loop.stop()
}

func (a *BellAlarm) Playing() bool {
	return a.loop.running()
}

func (a *BellAlarm) OnFailure(fn func(error)) {
	a.loop.setOnFailure(fn)
}

var ErrAlarmAsset = errors.New("alarm: sound asset unavailable")

// CommandAlarm проигрывает файл внешним плеером (mpg123, afplay, paplay) по кругу
type CommandAlarm struct {
	player string
	path   string
	gap    time.Duration
	logger *logrus.Logger
	loop   loop
}

func NewCommandAlarm(player, path string, logger *logrus.Logger) *CommandAlarm {
	return &CommandAlarm{
		player: player,
		path:   path,
		gap:    200 * time.Millisecond,
		logger: logger,
	}
}

// Play проверяет файл и плеер, затем запускает цикл воспроизведения.
// Ошибка плеера посреди цикла останавливает цикл и передается в обработчик OnFailure.
func (a *CommandAlarm) Play() error {
	if _, err := os.Stat(a.path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrAlarmAsset, a.path, err)
	}
	player, err := exec.LookPath(a.player)
	if err != nil {
		return fmt.Errorf("alarm: player %q not found: %w", a.player, err)
	}

	a.loop.start(func(ctx context.Context) error {
		log := a.logger.WithFields(logrus.Fields{
			"service": "alarm",
			"player":  a.player,
			"path":    a.path,
		})
		for {
			cmd := exec.CommandContext(ctx, player, a.path)
			if err := cmd.Run(); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.WithError(err).Error("Alarm player failed")
				return fmt.Errorf("alarm: player %q failed: %w", a.player, err)
			}
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(a.gap):
			}
		}
	})
	return nil
}

func (a *CommandAlarm) Stop() {
	a.loop.stop()
}

func (a *CommandAlarm) Playing() bool {
	return a.loop.running()
}

func (a *CommandAlarm) OnFailure(fn func(error)) {
	a.loop.setOnFailure(fn)
}
