// Package sender runs outbound Telegram calls on a small worker pool so
// handlers return before the Bot API answers.
package sender

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	coreconfig "github.com/m3rciful/cryptonews/core/config"
	"github.com/m3rciful/cryptonews/core/logger"
	"github.com/m3rciful/cryptonews/core/telegram/netutil"
)

const component = "tg.sender"

var (
	// ErrQueueClosed is returned by Enqueue once Close has been called.
	ErrQueueClosed = errors.New("telegram sender: queue closed")
	// ErrQueueFull means the job was dropped because every slot is taken.
	ErrQueueFull = errors.New("telegram sender: queue full")

	tokenRe = regexp.MustCompile(`bot[0-9]+:[A-Za-z0-9_-]+`)
)

// Options controls the dispatcher. Zero fields take defaults.
type Options struct {
	QueueSize    int
	Workers      int
	MaxRetries   int
	RetryBackoff time.Duration
	// MaxDuration caps one job including its retries.
	MaxDuration time.Duration
}

// OptionsFrom maps the sender config section.
func OptionsFrom(cfg coreconfig.SenderConfig) Options {
	return Options{
		QueueSize:    cfg.QueueSize,
		Workers:      cfg.Workers,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: time.Duration(cfg.RetryBackoffMS) * time.Millisecond,
	}
}

func (o Options) withDefaults() Options {
	if o.QueueSize <= 0 {
		o.QueueSize = 256
	}
	if o.Workers <= 0 {
		o.Workers = 4
	}
	o.MaxRetries = max(o.MaxRetries, 0)
	if o.RetryBackoff <= 0 {
		o.RetryBackoff = 2 * time.Second
	}
	if o.MaxDuration <= 0 {
		o.MaxDuration = 12 * time.Second
	}
	return o
}

type job struct {
	ctx      context.Context
	action   string
	endpoint string
	run      func() error
}

func (j job) attrs(extra ...slog.Attr) []slog.Attr {
	attrs := make([]slog.Attr, 0, 2+len(extra))
	attrs = append(attrs, slog.String("action", j.action))
	if j.endpoint != "" {
		attrs = append(attrs, slog.String("endpoint", j.endpoint))
	}
	return append(attrs, extra...)
}

// Dispatcher drains a bounded queue of send jobs.
type Dispatcher struct {
	opts   Options
	jobs   chan job
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
	errs   atomic.Uint64
	sent   atomic.Uint64
}

// NewDispatcher starts the workers.
func NewDispatcher(opts Options) *Dispatcher {
	opts = opts.withDefaults()
	d := &Dispatcher{opts: opts, jobs: make(chan job, opts.QueueSize)}
	d.wg.Add(opts.Workers)
	for range opts.Workers {
		go func() {
			defer d.wg.Done()
			for j := range d.jobs {
				d.process(j)
			}
		}()
	}
	return d
}

// Enqueue hands run to a worker. run may be called more than once when the
// first attempt fails with a retryable error.
func (d *Dispatcher) Enqueue(ctx context.Context, action, endpoint string, run func() error) error {
	if run == nil {
		return errors.New("telegram sender: nil run function")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrQueueClosed
	}
	select {
	case d.jobs <- job{ctx: ctx, action: action, endpoint: endpoint, run: run}:
		return nil
	default:
		return ErrQueueFull
	}
}

// SentCount counts completed jobs; edits Telegram reported as unchanged are
// included.
func (d *Dispatcher) SentCount() uint64 { return d.sent.Load() }

// ErrorCount counts jobs that gave up.
func (d *Dispatcher) ErrorCount() uint64 { return d.errs.Load() }

// Close stops accepting jobs and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.jobs)
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *Dispatcher) process(j job) {
	ctx, cancel := context.WithTimeout(j.ctx, d.opts.MaxDuration)
	defer cancel()

	start := time.Now()
	attempts, err := d.attempt(ctx, j)
	elapsed := slog.Int("elapsed_ms", int(logger.RoundMS(time.Since(start))/time.Millisecond))

	switch {
	case err == nil:
		d.sent.Add(1)
		if attempts > 1 {
			logger.Info(j.ctx, component, "send.retry.success", j.attrs(slog.Int("attempt", attempts), elapsed)...)
			return
		}
		logger.Debug(j.ctx, component, "send.success", j.attrs(elapsed)...)
	case netutil.IsNotModified(err):
		d.sent.Add(1)
		logger.Debug(j.ctx, component, "send.unchanged", j.attrs()...)
	default:
		d.errs.Add(1)
		logger.Error(j.ctx, component, "send.fail", j.attrs(
			slog.String("error", sanitizeErrorMessage(err)),
			slog.String("error_kind", netutil.Classify(err)),
			slog.Int("attempts", attempts),
			elapsed,
		)...)
	}
}

// attempt runs the job until it succeeds, fails permanently, runs out of
// retries or hits the deadline.
func (d *Dispatcher) attempt(ctx context.Context, j job) (int, error) {
	limit := d.opts.MaxRetries + 1
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return n - 1, err
		}
		err := j.run()
		if err == nil || netutil.IsNotModified(err) || !netutil.ShouldRetry(err) || n == limit {
			return n, err
		}

		delay := d.opts.RetryBackoff * time.Duration(n)
		if wait, ok := netutil.RetryAfter(err); ok {
			delay = wait
		}
		logger.Debug(j.ctx, component, "send.retry.backoff", j.attrs(slog.Int("attempt", n), slog.Duration("delay", delay))...)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return n, ctx.Err()
		case <-timer.C:
		}
	}
}

// sanitizeErrorMessage strips bot tokens that net/http puts into request URLs.
func sanitizeErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return tokenRe.ReplaceAllString(err.Error(), "bot<redacted>")
}
