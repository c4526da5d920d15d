package search_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/agstats/shionweb/internal/models"
	"github.com/agstats/shionweb/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func results(names ...string) []models.SearchResult {
	out := make([]models.SearchResult, len(names))
	for i, n := range names {
		out[i] = models.SearchResult{ID: int64(i + 1), SteamName: n}
	}
	return out
}

func TestQuery_ShortQueryReturnsEmptyWithoutLookup(t *testing.T) {
	var calls int32
	c := search.NewCoordinator(func(ctx context.Context, q string) ([]models.SearchResult, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	}, 0, 2)

	got, err := c.Query(context.Background(), "s1", " a ")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestQuery_ReturnsResults(t *testing.T) {
	c := search.NewCoordinator(func(ctx context.Context, q string) ([]models.SearchResult, error) {
		assert.Equal(t, "shi", q)
		return results("shion"), nil
	}, time.Millisecond, 2)

	got, err := c.Query(context.Background(), "s1", "shi")
	require.NoError(t, err)
	assert.Equal(t, results("shion"), got)
}

func TestQuery_DebounceKeepsOnlyLatest(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	c := search.NewCoordinator(func(ctx context.Context, q string) ([]models.SearchResult, error) {
		mu.Lock()
		seen = append(seen, q)
		mu.Unlock()
		return results(q), nil
	}, 100*time.Millisecond, 2)

	firstErr := make(chan error, 1)
	go func() {
		_, err := c.Query(context.Background(), "s1", "sh")
		firstErr <- err
	}()
	time.Sleep(20 * time.Millisecond)

	got, err := c.Query(context.Background(), "s1", "shio")
	require.NoError(t, err)
	assert.Equal(t, results("shio"), got)
	assert.ErrorIs(t, <-firstErr, search.ErrSuperseded)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"shio"}, seen)
}

func TestQuery_OutOfOrderResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	c := search.NewCoordinator(func(ctx context.Context, q string) ([]models.SearchResult, error) {
		if q == "slow" {
			close(started)
			<-release
		}
		return results(q), nil
	}, 0, 2)

	slowDone := make(chan error, 1)
	go func() {
		_, err := c.Query(context.Background(), "s1", "slow")
		slowDone <- err
	}()
	<-started

	got, err := c.Query(context.Background(), "s1", "fast")
	require.NoError(t, err)
	assert.Equal(t, results("fast"), got)

	close(release)
	assert.ErrorIs(t, <-slowDone, search.ErrSuperseded)
}

func TestQuery_SessionsAreIndependent(t *testing.T) {
	c := search.NewCoordinator(func(ctx context.Context, q string) ([]models.SearchResult, error) {
		return results(q), nil
	}, 30*time.Millisecond, 2)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{"a", "b"} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = c.Query(context.Background(), id, "query")
		}(i, id)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
}

func TestQuery_PropagatesLookupError(t *testing.T) {
	boom := errors.New("upstream down")
	c := search.NewCoordinator(func(ctx context.Context, q string) ([]models.SearchResult, error) {
		return nil, boom
	}, 0, 2)

	_, err := c.Query(context.Background(), "s1", "shion")
	assert.ErrorIs(t, err, boom)
}

func TestQuery_ContextCancelledDuringDebounce(t *testing.T) {
	c := search.NewCoordinator(func(ctx context.Context, q string) ([]models.SearchResult, error) {
		t.Fatal("lookup should not run")
		return nil, nil
	}, time.Second, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Query(ctx, "s1", "shion")
	assert.ErrorIs(t, err, context.Canceled)
}
