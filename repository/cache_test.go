// file: repository/cache_test.go

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"product-insights-api/model"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockCacheClient is a mock implementation of ICacheClient.
type mockCacheClient struct{ mock.Mock }

func (m *mockCacheClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return redis.NewStringResult(args.String(0), args.Error(1))
}

func (m *mockCacheClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return redis.NewStatusResult("OK", args.Error(0))
}

func (m *mockCacheClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return redis.NewIntResult(int64(len(keys)), args.Error(0))
}

// countingSource returns a fixed dataset and counts calls.
type countingSource struct {
	calls atomic.Int32
	txs   []model.Transaction
	err   error
	delay time.Duration
}

func (s *countingSource) FetchAll(ctx context.Context) ([]model.Transaction, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.txs, s.err
}

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: 1, Title: "Lamp", Price: 30, Sold: true, DateOfSale: model.ParseSaleTime("2024-03-05")},
		{ID: 2, Title: "Chair", Price: 75, DateOfSale: model.ParseSaleTime("2024-03-10")},
	}
}

func TestRedisCachedRepository_Hit(t *testing.T) {
	cache := new(mockCacheClient)
	source := &countingSource{}
	payload, err := json.Marshal(sampleTransactions())
	require.NoError(t, err)

	cache.On("Get", mock.Anything, ProductsCacheKey).Return(string(payload), nil).Once()

	repo := NewRedisCachedRepository(source, cache, time.Minute)
	txs, err := repo.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, "Lamp", txs[0].Title)
	assert.EqualValues(t, 0, source.calls.Load())
	cache.AssertExpectations(t)
}

func TestRedisCachedRepository_MissStoresWithTTL(t *testing.T) {
	cache := new(mockCacheClient)
	source := &countingSource{txs: sampleTransactions()}

	cache.On("Get", mock.Anything, ProductsCacheKey).Return("", redis.Nil).Once()
	cache.On("Set", mock.Anything, ProductsCacheKey, mock.AnythingOfType("[]uint8"), time.Minute).Return(nil).Once()

	repo := NewRedisCachedRepository(source, cache, time.Minute)
	txs, err := repo.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.EqualValues(t, 1, source.calls.Load())
	cache.AssertExpectations(t)
}

func TestRedisCachedRepository_CacheDownFallsThrough(t *testing.T) {
	cache := new(mockCacheClient)
	source := &countingSource{txs: sampleTransactions()}

	cache.On("Get", mock.Anything, ProductsCacheKey).Return("", errors.New("dial tcp: refused")).Once()
	cache.On("Set", mock.Anything, ProductsCacheKey, mock.Anything, time.Minute).Return(errors.New("dial tcp: refused")).Once()

	txs, err := NewRedisCachedRepository(source, cache, time.Minute).FetchAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, txs, 2)
	cache.AssertExpectations(t)
}

func TestRedisCachedRepository_SourceErrorIsNotCached(t *testing.T) {
	cache := new(mockCacheClient)
	source := &countingSource{err: errors.New("remote down")}

	cache.On("Get", mock.Anything, ProductsCacheKey).Return("", redis.Nil).Once()

	_, err := NewRedisCachedRepository(source, cache, time.Minute).FetchAll(context.Background())

	assert.EqualError(t, err, "remote down")
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRedisCachedRepository_Invalidate(t *testing.T) {
	cache := new(mockCacheClient)
	cache.On("Del", mock.Anything, []string{ProductsCacheKey}).Return(nil).Once()

	err := NewRedisCachedRepository(&countingSource{}, cache, time.Minute).Invalidate(context.Background())

	assert.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestMemoryCachedRepository_TTL(t *testing.T) {
	source := &countingSource{txs: sampleTransactions()}
	repo := NewMemoryCachedRepository(source, time.Minute)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		txs, err := repo.FetchAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, txs, 2)
	}
	assert.EqualValues(t, 1, source.calls.Load())

	now = now.Add(time.Minute)
	_, err := repo.FetchAll(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, source.calls.Load(), "expired entry must be refetched")

	repo.Invalidate()
	_, err = repo.FetchAll(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, source.calls.Load())
}

func TestMemoryCachedRepository_ErrorNotCached(t *testing.T) {
	source := &countingSource{err: errors.New("remote down")}
	repo := NewMemoryCachedRepository(source, time.Minute)

	_, err := repo.FetchAll(context.Background())
	assert.Error(t, err)
	_, err = repo.FetchAll(context.Background())
	assert.Error(t, err)
	assert.EqualValues(t, 2, source.calls.Load())
}

func TestMemoryCachedRepository_CoalescesConcurrentMisses(t *testing.T) {
	source := &countingSource{txs: sampleTransactions(), delay: 100 * time.Millisecond}
	repo := NewMemoryCachedRepository(source, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			txs, err := repo.FetchAll(context.Background())
			assert.NoError(t, err)
			assert.Len(t, txs, 2)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, source.calls.Load())
}

// gatedSource blocks inside FetchAll until release is closed.
type gatedSource struct {
	calls   atomic.Int32
	txs     []model.Transaction
	started chan struct{}
	release chan struct{}
}

func newGatedSource() *gatedSource {
	return &gatedSource{txs: sampleTransactions(), started: make(chan struct{}), release: make(chan struct{})}
}

func (s *gatedSource) FetchAll(ctx context.Context) ([]model.Transaction, error) {
	if s.calls.Add(1) == 1 {
		close(s.started)
	}
	select {
	case <-s.release:
		return s.txs, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestMemoryCachedRepository_CancelledCallerDoesNotFailOthers(t *testing.T) {
	source := newGatedSource()
	repo := NewMemoryCachedRepository(source, time.Minute)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := repo.FetchAll(firstCtx)
		firstErr <- err
	}()
	<-source.started

	type result struct {
		txs []model.Transaction
		err error
	}
	second := make(chan result, 1)
	go func() {
		txs, err := repo.FetchAll(context.Background())
		second <- result{txs, err}
	}()

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	time.Sleep(20 * time.Millisecond)
	close(source.release)

	got := <-second
	require.NoError(t, got.err)
	assert.Len(t, got.txs, 2)
	assert.EqualValues(t, 1, source.calls.Load())

	// The shared fetch still filled the cache.
	txs, err := repo.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.EqualValues(t, 1, source.calls.Load())
}

func TestRedisCachedRepository_CancelledCallerStillFillsCache(t *testing.T) {
	cache := new(mockCacheClient)
	source := newGatedSource()
	stored := make(chan struct{})

	cache.On("Get", mock.Anything, ProductsCacheKey).Return("", redis.Nil).Once()
	cache.On("Set", mock.Anything, ProductsCacheKey, mock.Anything, time.Minute).
		Return(nil).
		Run(func(mock.Arguments) { close(stored) }).
		Once()

	repo := NewRedisCachedRepository(source, cache, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := repo.FetchAll(ctx)
		errCh <- err
	}()
	<-source.started

	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)

	close(source.release)
	select {
	case <-stored:
	case <-time.After(time.Second):
		t.Fatal("shared fetch did not write the cache after its caller left")
	}
	cache.AssertExpectations(t)
}
