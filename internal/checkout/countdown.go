package checkout

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const countdownInterval = time.Second

// Countdown ticks once per second from order placement until the payment
// deadline, recomputing remaining time from the deadline timestamp rather
// than decrementing a counter. It stops itself at expiry.
type Countdown struct {
	interval time.Duration
	onTick   func(remaining time.Duration, expired bool)
	log      *zap.Logger

	wg       sync.WaitGroup
	shutdown chan struct{}
	stopOnce sync.Once

	window func() (time.Duration, bool)
}

// StartCountdown arms the payment countdown, replacing any previous one.
// onTick receives the recomputed remaining window every second and a final
// call with expired set.
func (s *Store) StartCountdown(ctx context.Context, onTick func(remaining time.Duration, expired bool)) *Countdown {
	s.StopCountdown()

	cd := &Countdown{
		interval: countdownInterval,
		onTick:   onTick,
		log:      s.log,
		shutdown: make(chan struct{}),
		window:   s.PaymentWindow,
	}

	s.mu.Lock()
	s.countdown = cd
	s.mu.Unlock()

	cd.wg.Add(1)
	go cd.run(ctx)
	return cd
}

// StopCountdown cancels the active countdown, if any. Safe to call with
// none running; timers are never left ticking against a cleared order.
func (s *Store) StopCountdown() {
	s.mu.Lock()
	cd := s.countdown
	s.countdown = nil
	s.mu.Unlock()

	if cd != nil {
		cd.Stop()
	}
}

func (cd *Countdown) run(ctx context.Context) {
	defer cd.wg.Done()

	ticker := time.NewTicker(cd.interval)
	defer ticker.Stop()

	for {
		remaining, expired := cd.window()
		if cd.onTick != nil {
			cd.onTick(remaining, expired)
		}
		if expired {
			cd.log.Info("payment window expired")
			return
		}

		select {
		case <-ticker.C:
		case <-cd.shutdown:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop terminates the countdown and waits for the tick loop to exit.
func (cd *Countdown) Stop() {
	cd.stopOnce.Do(func() {
		close(cd.shutdown)
	})
	cd.wg.Wait()
}
