package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shortlink/internal/urlservice/domain"
	"shortlink/internal/urlservice/repository/cache"
	"shortlink/internal/urlservice/testutil/mocks"
)

const ttl = 10 * time.Minute

func setupCache(t *testing.T) (*cache.CachedURLRepository, *mocks.MockURLRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	inner := mocks.NewMockURLRepository(t)
	return cache.NewCachedURLRepository(inner, rdb, ttl, zap.NewNop()), inner, mr
}

func testLink(url string) *domain.ShortLink {
	return &domain.ShortLink{ID: 7, Code: "abc123", OriginalURL: url, CreatedAt: time.Unix(1700000000, 0).UTC()}
}

func TestCachedURLRepository_FindByCode_MissFillsCache(t *testing.T) {
	// Setup
	sut, inner, mr := setupCache(t)
	inner.EXPECT().FindByCode(mock.Anything, "abc123").Return(testLink("https://example.com"), nil).Once()

	// Act
	first, err := sut.FindByCode(context.Background(), "abc123")
	require.NoError(t, err)
	second, err := sut.FindByCode(context.Background(), "abc123")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.OriginalURL, second.OriginalURL)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	assert.True(t, mr.Exists("shortlink:code:abc123"))
	assert.Equal(t, ttl, mr.TTL("shortlink:code:abc123"))
}

func TestCachedURLRepository_FindByCode_NotFoundIsNotCached(t *testing.T) {
	sut, inner, mr := setupCache(t)
	inner.EXPECT().FindByCode(mock.Anything, "abc123").Return(nil, domain.ErrURLNotFound).Twice()

	_, err := sut.FindByCode(context.Background(), "abc123")
	assert.ErrorIs(t, err, domain.ErrURLNotFound)
	_, err = sut.FindByCode(context.Background(), "abc123")
	assert.ErrorIs(t, err, domain.ErrURLNotFound)

	assert.False(t, mr.Exists("shortlink:code:abc123"))
}

func TestCachedURLRepository_Delete_InvalidatesEntry(t *testing.T) {
	// Setup
	sut, inner, mr := setupCache(t)
	inner.EXPECT().FindByCode(mock.Anything, "abc123").Return(testLink("https://example.com"), nil).Once()
	_, err := sut.FindByCode(context.Background(), "abc123")
	require.NoError(t, err)
	inner.EXPECT().Delete(mock.Anything, "abc123").Return(nil).Once()
	inner.EXPECT().FindByCode(mock.Anything, "abc123").Return(nil, domain.ErrURLNotFound).Once()

	// Act
	err = sut.Delete(context.Background(), "abc123")

	// Assert
	require.NoError(t, err)
	assert.False(t, mr.Exists("shortlink:code:abc123"))
	_, err = sut.FindByCode(context.Background(), "abc123")
	assert.ErrorIs(t, err, domain.ErrURLNotFound)
}

func TestCachedURLRepository_Delete_StoreErrorKeepsEntry(t *testing.T) {
	sut, inner, mr := setupCache(t)
	inner.EXPECT().FindByCode(mock.Anything, "abc123").Return(testLink("https://example.com"), nil).Once()
	_, err := sut.FindByCode(context.Background(), "abc123")
	require.NoError(t, err)
	inner.EXPECT().Delete(mock.Anything, "abc123").Return(assert.AnError).Once()

	err = sut.Delete(context.Background(), "abc123")

	assert.ErrorIs(t, err, assert.AnError)
	assert.True(t, mr.Exists("shortlink:code:abc123"))
	assert.False(t, mr.Exists("shortlink:deleted:abc123"))
}

// A lookup that read the row before a concurrent delete must not put the
// deleted link back into the cache.
func TestCachedURLRepository_LookupRacingDelete_DoesNotResurrectLink(t *testing.T) {
	// Setup
	sut, inner, mr := setupCache(t)
	read := make(chan struct{})
	resume := make(chan struct{})
	inner.EXPECT().FindByCode(mock.Anything, "abc123").RunAndReturn(func(context.Context, string) (*domain.ShortLink, error) {
		close(read)
		<-resume
		return testLink("https://old.example"), nil
	}).Once()
	inner.EXPECT().Delete(mock.Anything, "abc123").Return(nil).Once()

	staleDone := make(chan error, 1)
	go func() {
		_, err := sut.FindByCode(context.Background(), "abc123")
		staleDone <- err
	}()
	<-read

	// Act
	require.NoError(t, sut.Delete(context.Background(), "abc123"))
	close(resume)
	require.NoError(t, <-staleDone)

	// Assert
	assert.False(t, mr.Exists("shortlink:code:abc123"))
	assert.True(t, mr.Exists("shortlink:deleted:abc123"))
	inner.EXPECT().FindByCode(mock.Anything, "abc123").Return(nil, domain.ErrURLNotFound).Once()
	_, err := sut.FindByCode(context.Background(), "abc123")
	assert.ErrorIs(t, err, domain.ErrURLNotFound)
}

func TestCachedURLRepository_RedisDown_FallsBackToStore(t *testing.T) {
	sut, inner, mr := setupCache(t)
	mr.Close()
	inner.EXPECT().FindByCode(mock.Anything, "abc123").Return(testLink("https://example.com"), nil).Once()
	inner.EXPECT().Delete(mock.Anything, "abc123").Return(nil).Once()

	link, err := sut.FindByCode(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", link.OriginalURL)
	assert.NoError(t, sut.Delete(context.Background(), "abc123"))
}
