package feed

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/tokenboard/internal/ui"
	"github.com/rovshanmuradov/tokenboard/internal/viewmodel"
	"go.uber.org/zap"
)

// Sender delivers messages to the running program without blocking.
// ui.UpdateSender implements it.
type Sender interface {
	SendUpdate(msg tea.Msg) bool
}

// PollerConfig controls reload timing
type PollerConfig struct {
	Interval time.Duration
	// MaxRetry bounds how long a failing load is retried before the error is
	// reported. Zero disables retries.
	MaxRetry time.Duration
}

// Poller reloads a Source periodically and forwards changed snapshots
type Poller struct {
	source Source
	sender Sender
	cfg    PollerConfig
	logger *zap.Logger
	now    func() time.Time
	wake   <-chan struct{}

	last      Digest
	delivered bool
	failed    bool
}

// NewPoller creates a poller for source
func NewPoller(source Source, sender Sender, cfg PollerConfig, logger *zap.Logger) *Poller {
	return &Poller{
		source: source,
		sender: sender,
		cfg:    cfg,
		logger: logger.Named("feed"),
		now:    time.Now,
	}
}

// WakeOn makes Run poll as soon as ch fires, in addition to the interval.
// A Watcher's Changes channel is the usual source.
func (p *Poller) WakeOn(ch <-chan struct{}) *Poller {
	p.wake = ch
	return p
}

// Run polls immediately and then every interval until ctx is done
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("Starting snapshot poller", zap.Duration("interval", p.cfg.Interval))

	p.Poll(ctx)

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.Poll(ctx)
		case <-p.wake:
			p.Poll(ctx)
		case <-ctx.Done():
			p.logger.Debug("Snapshot poller stopped")
			return nil
		}
	}
}

// Poll loads the source once, with retries, and sends a ui.SnapshotMsg when
// the contents changed since the last delivered snapshot, or a ui.ErrorMsg
// when loading failed. It reports whether a snapshot was sent.
func (p *Poller) Poll(ctx context.Context) bool {
	type loaded struct {
		snap   viewmodel.Snapshot
		digest Digest
	}

	op := func() (loaded, error) {
		snap, digest, err := p.source.Load(ctx)
		return loaded{snap, digest}, err
	}

	notify := func(err error, wait time.Duration) {
		p.logger.Debug("Snapshot load failed, retrying", zap.Error(err), zap.Duration("backoff", wait))
	}

	opts := []backoff.RetryOption{
		backoff.WithBackOff(p.newBackOff()),
		backoff.WithNotify(notify),
	}
	if p.cfg.MaxRetry > 0 {
		opts = append(opts, backoff.WithMaxElapsedTime(p.cfg.MaxRetry))
	} else {
		opts = append(opts, backoff.WithMaxTries(1))
	}

	res, err := backoff.Retry(ctx, op, opts...)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return false
		}
		p.failed = true
		p.logger.Warn("Snapshot load failed", zap.Error(err))
		p.sender.SendUpdate(ui.ErrorMsg{Error: err, Title: "Snapshot feed"})
		return false
	}

	if p.delivered && !p.failed && res.digest == p.last {
		return false
	}

	msg := ui.SnapshotMsg{Snapshot: res.snap, ReceivedAt: p.now()}
	if !p.sender.SendUpdate(msg) {
		p.logger.Warn("Snapshot dropped, UI is busy")
		return false
	}

	p.last = res.digest
	p.delivered = true
	p.failed = false
	p.logger.Debug("Snapshot delivered",
		zap.Int("wallets", len(res.snap.Wallets)),
		zap.Int("tokens", len(res.snap.Tokens)))
	return true
}

func (p *Poller) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	if p.cfg.Interval > 0 {
		b.MaxInterval = p.cfg.Interval
	}
	return b
}
