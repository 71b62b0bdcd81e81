package session

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// IdleWatcher forces a logout after a fixed period without user activity.
// Activity is whatever the embedding surface decides to report via Touch;
// the CLI touches on every command.
//
// The timer fires after the full timeout and re-checks actual idle time, so
// a Touch only costs a timestamp write instead of a timer reset per event.
type IdleWatcher struct {
	timeout time.Duration
	onIdle  func()
	log     *zap.Logger

	mu         sync.Mutex
	timer      *time.Timer
	lastActive time.Time
	running    bool

	timeNow func() time.Time
}

func NewIdleWatcher(timeout time.Duration, onIdle func(), log *zap.Logger) *IdleWatcher {
	return &IdleWatcher{
		timeout: timeout,
		onIdle:  onIdle,
		log:     log,
		timeNow: time.Now,
	}
}

// Start arms the watcher. It is a no-op when already running.
func (w *IdleWatcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true
	w.lastActive = w.timeNow()
	w.scheduleLocked(w.timeout)
}

// Touch records user activity.
func (w *IdleWatcher) Touch() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.lastActive = w.timeNow()
}

// Stop disarms the watcher. Safe to call repeatedly.
func (w *IdleWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.running = false
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *IdleWatcher) scheduleLocked(d time.Duration) {
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(d, w.check)
}

func (w *IdleWatcher) check() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	idleFor := w.timeNow().Sub(w.lastActive)
	if idleFor < w.timeout {
		w.scheduleLocked(w.timeout - idleFor)
		w.mu.Unlock()
		return
	}
	w.running = false
	w.timer = nil
	w.mu.Unlock()

	w.log.Info("idle threshold reached, logging out",
		zap.Duration("idle_for", idleFor))
	w.onIdle()
}
