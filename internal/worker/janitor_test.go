package worker_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"scmm_bot/internal/worker"
)

type fakeDeleter struct {
	mu      sync.Mutex
	deleted []string
	err     error
}

func (f *fakeDeleter) ChannelMessageDelete(channelID, messageID string, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deleted = append(f.deleted, channelID+"/"+messageID)

	return f.err
}

func (f *fakeDeleter) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.deleted...)
}

func TestJanitorDeletesAfterTTL(t *testing.T) {
	rq := require.New(t)

	deleter := &fakeDeleter{}
	janitor := worker.NewJanitor(deleter)

	janitor.Schedule(context.Background(), "chan-1", "msg-1", 20*time.Millisecond)

	rq.Eventually(func() bool {
		calls := deleter.calls()
		return len(calls) == 1 && calls[0] == "chan-1/msg-1"
	}, time.Second, 5*time.Millisecond)

	janitor.Stop()
}

func TestJanitorStopCancelsPending(t *testing.T) {
	rq := require.New(t)

	deleter := &fakeDeleter{}
	janitor := worker.NewJanitor(deleter)

	janitor.Schedule(context.Background(), "chan-1", "msg-1", time.Hour)
	janitor.Stop()

	rq.Empty(deleter.calls())
}

func TestJanitorSurvivesCallerContextCancel(t *testing.T) {
	rq := require.New(t)

	deleter := &fakeDeleter{}
	janitor := worker.NewJanitor(deleter)

	ctx, cancel := context.WithCancel(context.Background())
	janitor.Schedule(ctx, "chan-1", "msg-1", 20*time.Millisecond)
	// The interaction context ends as soon as the command returns; the timer
	// must keep running regardless.
	cancel()

	rq.Eventually(func() bool {
		return len(deleter.calls()) == 1
	}, time.Second, 5*time.Millisecond)

	janitor.Stop()
}

func TestJanitorAlreadyGoneIsNotAnError(t *testing.T) {
	rq := require.New(t)

	deleter := &fakeDeleter{
		err: &discordgo.RESTError{
			Response: &http.Response{StatusCode: http.StatusNotFound},
			Message:  &discordgo.APIErrorMessage{Code: discordgo.ErrCodeUnknownMessage},
		},
	}
	janitor := worker.NewJanitor(deleter)

	janitor.Schedule(context.Background(), "chan-1", "msg-1", time.Millisecond)

	rq.Eventually(func() bool {
		return len(deleter.calls()) == 1
	}, time.Second, 5*time.Millisecond)

	janitor.Stop()
}

func TestJanitorReschedulingReplacesTimer(t *testing.T) {
	rq := require.New(t)

	deleter := &fakeDeleter{}
	janitor := worker.NewJanitor(deleter)

	janitor.Schedule(context.Background(), "chan-1", "msg-1", time.Hour)
	janitor.Schedule(context.Background(), "chan-1", "msg-1", 10*time.Millisecond)

	rq.Eventually(func() bool {
		return len(deleter.calls()) == 1
	}, time.Second, 5*time.Millisecond)

	janitor.Stop()
	rq.Len(deleter.calls(), 1)
}
