// Package spinning provides a friendly spinning clock (or some other spinning symbols)
// to show while an engine is "thinking", and the interrupt handling of the CLI.
package spinning

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Spinning displays a spinning symbol until Done is called.
type Spinning struct {
	wg     sync.WaitGroup
	cancel func()
}

var (
	ThemeAscii = []rune("|/-\\")
	ThemeMoon  = []rune("🌑🌒🌓🌔🌕🌖🌗🌘")
	ThemeClock = []rune("🕐🕑🕒🕓🕔🕕🕖🕗🕘🕙🕚🕛")

	// Theme defaults to ThemeClock, but it can be set to anything else.
	Theme = ThemeClock

	// Output where the spinner is drawn.
	Output io.Writer = os.Stdout

	// Period between symbols.
	Period = 250 * time.Millisecond
)

// SafeInterrupt will capture SigInt (Ctrl+C) and SigTerm and call the provided onInterrupt.
// If the program haven't exited after gracePeriod, it will call Reset to reset the terminal
// and exit.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		fmt.Println()
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}
		time.Sleep(gracePeriod)
		Reset()
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset() {
	_, _ = fmt.Fprint(Output, "\033[?25h\033[39;49;0m\n")
}

// New starts a spinning display that runs on a separate goroutine.
// It stops when Spinning.Done is called or the context is cancelled.
func New(ctx context.Context) *Spinning {
	s := &Spinning{}
	ctx, s.cancel = context.WithCancel(ctx)
	theme, out := Theme, Output
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(Period)
		defer ticker.Stop()
		// Hide the cursor while spinning, and restore it at the end.
		_, _ = fmt.Fprint(out, "\033[?25l")
		defer func() { _, _ = fmt.Fprint(out, "\033[?25h") }()

		_, _ = fmt.Fprint(out, "  ")
		for idx := 0; ; idx = (idx + 1) % len(theme) {
			_, _ = fmt.Fprintf(out, "\b\b%c", theme[idx])
			select {
			case <-ctx.Done():
				_, _ = fmt.Fprint(out, "\b\b")
				return
			case <-ticker.C:
			}
		}
	}()
	return s
}

// Done stops the spinner and waits for it to clear its symbol.
func (s *Spinning) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}

// Think waits for delay and then calls compute, all while showing the spinner.
//
// If ctx is cancelled before compute returns, Think returns the context error right away and the
// result of compute is discarded when it arrives: the engines are pure, so a stale result can be
// simply dropped.
func Think[T any](ctx context.Context, delay time.Duration, compute func() T) (result T, err error) {
	s := New(ctx)
	defer s.Done()

	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, errors.Wrap(ctx.Err(), "thinking cancelled before it started")
		case <-timer.C:
		}
	}

	done := make(chan T, 1)
	go func() { done <- compute() }()
	select {
	case <-ctx.Done():
		return result, errors.Wrap(ctx.Err(), "thinking cancelled, result discarded")
	case result = <-done:
		return result, nil
	}
}
