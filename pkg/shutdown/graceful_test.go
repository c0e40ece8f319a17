package shutdown

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobspy-proxy/pkg/logging"
)

type fakeStoppable struct {
	called   bool
	deadline bool
	err      error
}

func (f *fakeStoppable) Shutdown(ctx context.Context) error {
	f.called = true
	_, f.deadline = ctx.Deadline()
	return f.err
}

func TestGraceful_StopsAllTargets(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	first := &fakeStoppable{}
	second := &fakeStoppable{}

	err := Graceful(ctx, []os.Signal{syscall.SIGTERM}, time.Second, logging.NewNop(), first, second)
	require.NoError(t, err)
	assert.True(t, first.called)
	assert.True(t, second.called)
	assert.True(t, first.deadline)
}

func TestGraceful_JoinsErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	boom := errors.New("listener busy")
	other := &fakeStoppable{}

	err := Graceful(ctx, []os.Signal{syscall.SIGTERM}, time.Second, logging.NewNop(), &fakeStoppable{err: boom}, other)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, other.called)
}
