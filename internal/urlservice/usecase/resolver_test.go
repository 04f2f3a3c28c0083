package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shortlink/internal/shared/events"
	"shortlink/internal/urlservice/domain"
	"shortlink/internal/urlservice/testutil/mocks"
	"shortlink/internal/urlservice/usecase"
)

func TestResolve_Found_RecordsClickAndReturnsURL(t *testing.T) {
	// Setup
	repo := mocks.NewMockURLRepository(t)
	recorder := mocks.NewMockClickRecorder(t)
	sut := usecase.NewResolver(repo, recorder, zap.NewNop())
	visit := usecase.Visit{ClientIP: "203.0.113.9", UserAgent: "Mozilla/5.0", Referer: "https://google.com"}

	repo.EXPECT().FindByCode(mock.Anything, "abc123").Return(link("abc123", "https://example.com"), nil)
	var recorded events.ClickEvent
	recorder.EXPECT().RecordClick(mock.Anything, mock.AnythingOfType("events.ClickEvent")).
		Run(func(_ context.Context, e events.ClickEvent) { recorded = e }).
		Return(nil).Once()

	// Act
	target, err := sut.Resolve(context.Background(), "abc123", visit)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", target)
	assert.Equal(t, "abc123", recorded.ShortCode)
	assert.Equal(t, "203.0.113.9", recorded.ClientIP)
	assert.Equal(t, "https://google.com", recorded.Referer)
	assert.False(t, recorded.Timestamp.IsZero())
	id, err := uuid.Parse(recorded.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestResolve_NotFound_RecordsNothing(t *testing.T) {
	repo := mocks.NewMockURLRepository(t)
	recorder := mocks.NewMockClickRecorder(t)
	sut := usecase.NewResolver(repo, recorder, zap.NewNop())
	repo.EXPECT().FindByCode(mock.Anything, "zzzzzz").Return(nil, domain.ErrURLNotFound)

	target, err := sut.Resolve(context.Background(), "zzzzzz", usecase.Visit{})

	assert.ErrorIs(t, err, domain.ErrURLNotFound)
	assert.Empty(t, target)
	recorder.AssertNotCalled(t, "RecordClick", mock.Anything, mock.Anything)
}

func TestResolve_MalformedCode_SkipsStore(t *testing.T) {
	for _, code := range []string{"", "has space", "a/b", "abcdefghijklmnopqrstuvwxyz0123456789"} {
		repo := mocks.NewMockURLRepository(t)
		recorder := mocks.NewMockClickRecorder(t)
		sut := usecase.NewResolver(repo, recorder, zap.NewNop())

		_, err := sut.Resolve(context.Background(), code, usecase.Visit{})

		assert.ErrorIs(t, err, domain.ErrURLNotFound, code)
	}
}

func TestResolve_StoreError_IsNotNotFound(t *testing.T) {
	repo := mocks.NewMockURLRepository(t)
	recorder := mocks.NewMockClickRecorder(t)
	sut := usecase.NewResolver(repo, recorder, zap.NewNop())
	storeErr := errors.New("connection reset")
	repo.EXPECT().FindByCode(mock.Anything, "abc123").Return(nil, storeErr)

	_, err := sut.Resolve(context.Background(), "abc123", usecase.Visit{})

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, domain.ErrURLNotFound)
}

func TestResolve_RecorderError_StillRedirects(t *testing.T) {
	repo := mocks.NewMockURLRepository(t)
	recorder := mocks.NewMockClickRecorder(t)
	sut := usecase.NewResolver(repo, recorder, zap.NewNop())
	repo.EXPECT().FindByCode(mock.Anything, "abc123").Return(link("abc123", "https://example.com"), nil)
	recorder.EXPECT().RecordClick(mock.Anything, mock.Anything).Return(errors.New("db locked"))

	target, err := sut.Resolve(context.Background(), "abc123", usecase.Visit{})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", target)
}
