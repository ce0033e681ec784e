package session_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"onlinetracker/pkg/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))
}

func TestSweeperEvictsExpired(t *testing.T) {
	r := session.NewInMemoryRegistry(session.WithTTL(30 * time.Millisecond))
	sweeper := session.NewSweeper(r, 10*time.Millisecond, testLogger())
	sweeper.Start()
	defer sweeper.Stop()

	s, err := r.Login("alice")
	assert.NoError(t, err)
	assert.True(t, r.Validate(s))

	assert.Eventually(t, func() bool {
		return !r.Validate(s) && r.Count() == 0
	}, time.Second, 10*time.Millisecond, "silent session should be reaped")
}

func TestSweeperSparesActiveSessions(t *testing.T) {
	r := session.NewInMemoryRegistry(session.WithTTL(100 * time.Millisecond))
	sweeper := session.NewSweeper(r, 20*time.Millisecond, testLogger())
	sweeper.Start()
	defer sweeper.Stop()

	s, err := r.Login("bob")
	assert.NoError(t, err)

	// keep the heartbeats coming for a few TTLs
	deadline := time.Now().Add(300 * time.Millisecond)
	for time.Now().Before(deadline) {
		assert.True(t, r.Heartbeat(s))
		time.Sleep(20 * time.Millisecond)
	}

	assert.True(t, r.Validate(s))
	assert.Equal(t, 1, r.Count())
}

func TestSweeperStopJoins(t *testing.T) {
	r := session.NewInMemoryRegistry()
	sweeper := session.NewSweeper(r, 10*time.Millisecond, testLogger())
	sweeper.Start()

	done := make(chan struct{})
	go func() {
		sweeper.Stop()
		sweeper.Stop() // second Stop is a no-op
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}
