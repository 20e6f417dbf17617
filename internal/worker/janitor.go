// Package worker holds the background janitor that removes bot replies after
// their time-to-live expires, keeping channels clean.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"scmm_bot/internal/metrics"
	"scmm_bot/pkg/contextx"
	"scmm_bot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	outcomeDeleted     = "deleted"
	outcomeAlreadyGone = "already_gone"
	outcomeFailed      = "failed"
	outcomeCancelled   = "cancelled"
)

// MessageDeleter is the slice of the Discord session the janitor needs.
type MessageDeleter interface {
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

type pendingDelete struct {
	cancel context.CancelFunc
}

// Janitor deletes scheduled messages once their TTL elapses. All methods are
// safe for concurrent use.
type Janitor struct {
	deleter MessageDeleter

	mu      sync.Mutex
	pending map[string]*pendingDelete
	wg      sync.WaitGroup
}

func NewJanitor(deleter MessageDeleter) *Janitor {
	return &Janitor{
		deleter: deleter,
		pending: make(map[string]*pendingDelete),
	}
}

// Schedule arranges for the message to be deleted after ttl. Scheduling the
// same message twice replaces the earlier timer.
func (j *Janitor) Schedule(ctx context.Context, channelID, messageID string, ttl time.Duration) {
	key := channelID + "/" + messageID

	timerCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	entry := &pendingDelete{cancel: cancel}

	j.mu.Lock()
	if prev, ok := j.pending[key]; ok {
		prev.cancel()
	}
	j.pending[key] = entry
	j.mu.Unlock()

	j.wg.Add(1)

	go func() {
		defer j.wg.Done()
		defer j.forget(key, entry)

		timer := time.NewTimer(ttl)
		defer timer.Stop()

		select {
		case <-timerCtx.Done():
			metrics.AutodeleteTotal.WithLabelValues(outcomeCancelled).Inc()
			return
		case <-timer.C:
		}

		j.delete(timerCtx, channelID, messageID)
	}()
}

func (j *Janitor) delete(ctx context.Context, channelID, messageID string) {
	err := j.deleter.ChannelMessageDelete(channelID, messageID)
	if err == nil {
		metrics.AutodeleteTotal.WithLabelValues(outcomeDeleted).Inc()
		logger(ctx).Debug(
			"deleted expired reply",
			slog.String(logx.FieldChannelID, channelID),
			slog.String(logx.FieldMessageID, messageID),
		)

		return
	}

	// Someone beating the janitor to the delete is fine.
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) &&
		restErr.Message != nil &&
		restErr.Message.Code == discordgo.ErrCodeUnknownMessage {
		metrics.AutodeleteTotal.WithLabelValues(outcomeAlreadyGone).Inc()
		logger(ctx).Debug(
			"reply already gone",
			slog.String(logx.FieldChannelID, channelID),
			slog.String(logx.FieldMessageID, messageID),
		)

		return
	}

	metrics.AutodeleteTotal.WithLabelValues(outcomeFailed).Inc()
	logger(ctx).Warn(
		"delete expired reply",
		slog.String(logx.FieldChannelID, channelID),
		slog.String(logx.FieldMessageID, messageID),
		logx.Error(err),
	)
}

// forget drops the map entry, but only when it still belongs to the caller:
// a rescheduled message must not lose its replacement timer.
func (j *Janitor) forget(key string, entry *pendingDelete) {
	j.mu.Lock()
	if j.pending[key] == entry {
		delete(j.pending, key)
	}
	j.mu.Unlock()
}

// Stop cancels every pending deletion and waits for the timers to wind down.
// Messages whose TTL had not elapsed are left in place.
func (j *Janitor) Stop() {
	j.mu.Lock()
	for _, entry := range j.pending {
		entry.cancel()
	}
	j.mu.Unlock()

	j.wg.Wait()
}
