package batch_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/safeinput"
	"github.com/dmitrymomot/safeinput/pkg/batch"
	"github.com/dmitrymomot/safeinput/pkg/validator"
)

func TestGo(t *testing.T) {
	t.Parallel()

	t.Run("returns result", func(t *testing.T) {
		f := batch.Go(context.Background(), 21, func(_ context.Context, n int) (string, error) {
			return fmt.Sprintf("n=%d", n*2), nil
		})
		v, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, "n=42", v)
		assert.True(t, f.IsComplete())
	})

	t.Run("precancelled context skips work", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var called atomic.Bool
		f := batch.Go(ctx, "x", func(context.Context, string) (int, error) {
			called.Store(true)
			return 1, nil
		})
		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called.Load())
	})

	t.Run("await with timeout", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		f := batch.Go(context.Background(), 0, func(context.Context, int) (int, error) {
			<-release
			return 1, nil
		})
		_, err := f.AwaitWithTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, batch.ErrTimeout)
		assert.False(t, f.IsComplete())
	})
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"good@example.com",
		"<script>",
		"DROP TABLE users",
		"invalid-email",
		"other@example.org",
	}

	items := batch.ValidateAll(context.Background(), inputs, validator.Email{}, safeinput.Default())
	require.Len(t, items, len(inputs))

	for i, it := range items {
		assert.Equal(t, i, it.Index)
	}

	require.NoError(t, items[0].Err)
	assert.Equal(t, "good@example.com", items[0].Value.Cleaned())
	assert.True(t, errors.Is(items[1].Err, safeinput.ErrDangerousCharacters))
	assert.True(t, errors.Is(items[2].Err, safeinput.ErrBlockedPattern))
	assert.True(t, errors.Is(items[3].Err, safeinput.ErrInvalidFormat))
	require.NoError(t, items[4].Err)
	assert.Equal(t, "other@example.org", items[4].Value.Original())

	failed := batch.Failed(items)
	require.Len(t, failed, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{failed[0].Index, failed[1].Index, failed[2].Index})
}

func TestRun_Concurrency(t *testing.T) {
	t.Parallel()

	var current, peak atomic.Int32
	fn := func(_ context.Context, s string) (string, error) {
		n := current.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		current.Add(-1)
		return s, nil
	}

	inputs := make([]string, 20)
	for i := range inputs {
		inputs[i] = fmt.Sprint(i)
	}

	items := batch.Run(context.Background(), inputs, fn, batch.WithConcurrency(3))
	require.Len(t, items, 20)
	assert.Empty(t, batch.Failed(items))
	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.Equal(t, "7", items[7].Value)
}

func TestRun_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	items := batch.Run(context.Background(), []string{"slow"}, func(context.Context, string) (int, error) {
		<-release
		return 0, nil
	}, batch.WithTimeout(10*time.Millisecond))

	require.Len(t, items, 1)
	assert.ErrorIs(t, items[0].Err, batch.ErrTimeout)
}

func TestRun_Empty(t *testing.T) {
	items := batch.Run(context.Background(), nil, func(context.Context, string) (int, error) { return 0, nil })
	assert.Empty(t, items)
}

func sleepFor(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestRun_TimeoutPerItem(t *testing.T) {
	t.Parallel()

	durations := map[string]time.Duration{
		"fast":   20 * time.Millisecond,
		"slow":   300 * time.Millisecond,
		"slower": 400 * time.Millisecond,
	}
	var cancelled atomic.Int32
	fn := func(ctx context.Context, name string) (string, error) {
		if err := sleepFor(ctx, durations[name]); err != nil {
			cancelled.Add(1)
			return "", err
		}
		return name, nil
	}

	start := time.Now()
	items := batch.Run(context.Background(), []string{"fast", "slow", "slower"}, fn,
		batch.WithTimeout(100*time.Millisecond))
	elapsed := time.Since(start)

	require.Len(t, items, 3)
	require.NoError(t, items[0].Err)
	assert.Equal(t, "fast", items[0].Value)
	assert.ErrorIs(t, items[1].Err, batch.ErrTimeout)
	assert.ErrorIs(t, items[2].Err, batch.ErrTimeout)
	assert.Less(t, elapsed, 250*time.Millisecond)

	// Timed out items see their context cancelled and stop.
	assert.Eventually(t, func() bool { return cancelled.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestRun_TimeoutStartsWhenItemRuns(t *testing.T) {
	t.Parallel()

	fn := func(ctx context.Context, s string) (string, error) {
		return s, sleepFor(ctx, 60*time.Millisecond)
	}

	// Run one at a time: the last item waits ~120ms for a slot, longer than the
	// timeout, but each item's own run fits.
	items := batch.Run(context.Background(), []string{"a", "b", "c"}, fn,
		batch.WithConcurrency(1),
		batch.WithTimeout(100*time.Millisecond))

	require.Len(t, items, 3)
	assert.Empty(t, batch.Failed(items))
}

func TestRun_ParentCancelIsNotTimeout(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	items := batch.Run(ctx, []string{"x"}, func(ctx context.Context, _ string) (int, error) {
		return 0, sleepFor(ctx, time.Second)
	}, batch.WithTimeout(500*time.Millisecond))

	require.Len(t, items, 1)
	assert.ErrorIs(t, items[0].Err, context.Canceled)
	assert.NotErrorIs(t, items[0].Err, batch.ErrTimeout)
}
