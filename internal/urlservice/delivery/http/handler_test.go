package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shortlink/internal/conf"
	"shortlink/internal/shared/events"
	httphandler "shortlink/internal/urlservice/delivery/http"
	"shortlink/internal/urlservice/domain"
	"shortlink/internal/urlservice/testutil/mocks"
	"shortlink/internal/urlservice/usecase"
	"shortlink/pkg/problemdetails"
)

type handlerMocks struct {
	repo      *mocks.MockURLRepository
	allocator *mocks.MockCodeAllocator
	counter   *mocks.MockClickCounter
	recorder  *mocks.MockClickRecorder
}

// setupTestHandler creates a handler with mocked dependencies for testing
func setupTestHandler(t *testing.T, checks ...httphandler.HealthCheck) (*httphandler.Handler, handlerMocks) {
	m := handlerMocks{
		repo:      mocks.NewMockURLRepository(t),
		allocator: mocks.NewMockCodeAllocator(t),
		counter:   mocks.NewMockClickCounter(t),
		recorder:  mocks.NewMockClickRecorder(t),
	}
	service := usecase.NewURLService(m.repo, m.allocator, m.counter, zap.NewNop(), &conf.Server{BaseURL: "http://localhost:8080"})
	resolver := usecase.NewResolver(m.repo, m.recorder, zap.NewNop())
	return httphandler.NewHandler(service, resolver, checks, zap.NewNop()), m
}

func testLink(code, url string) *domain.ShortLink {
	return &domain.ShortLink{ID: 1, Code: code, OriginalURL: url, CreatedAt: time.Unix(1700000000, 0).UTC()}
}

// serve routes req through a chi router so URL params are populated
func serve(method, pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeProblem(t *testing.T, rr *httptest.ResponseRecorder) problemdetails.ProblemDetail {
	t.Helper()
	var problem problemdetails.ProblemDetail
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&problem))
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
	return problem
}

// TestShorten_ValidRequest_Returns201 verifies successful link creation
func TestShorten_ValidRequest_Returns201(t *testing.T) {
	// Setup
	handler, m := setupTestHandler(t)
	m.allocator.EXPECT().Allocate(mock.Anything, "https://example.com").Return(testLink("abc123", "https://example.com"), nil)

	req := httptest.NewRequest("POST", "/shorten", strings.NewReader(`{"url":"https://example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	// Act
	handler.Shorten(rr, req)

	// Assert
	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp httphandler.LinkResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "abc123", resp.Code)
	assert.Equal(t, "http://localhost:8080/abc123", resp.ShortURL)
	assert.Equal(t, "https://example.com", resp.OriginalURL)
}

// TestShorten_InvalidJSON_Returns400 verifies malformed bodies are rejected
func TestShorten_InvalidJSON_Returns400(t *testing.T) {
	handler, _ := setupTestHandler(t)

	req := httptest.NewRequest("POST", "/shorten", strings.NewReader(`{not json`))
	rr := httptest.NewRecorder()

	handler.Shorten(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	problem := decodeProblem(t, rr)
	assert.Contains(t, problem.Type, problemdetails.TypeInvalidRequest)
}

// TestShorten_InvalidURL_Returns400 verifies URL validation failures
func TestShorten_InvalidURL_Returns400(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty url", body: `{"url":""}`},
		{name: "missing url", body: `{}`},
		{name: "ftp scheme", body: `{"url":"ftp://example.com/file"}`},
		{name: "not a url", body: `{"url":"not a url"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler, _ := setupTestHandler(t)
			req := httptest.NewRequest("POST", "/shorten", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			handler.Shorten(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			problem := decodeProblem(t, rr)
			assert.Contains(t, problem.Type, problemdetails.TypeInvalidURL)
			assert.Equal(t, http.StatusBadRequest, problem.Status)
		})
	}
}

// TestShorten_CapacityExhausted_Returns503 verifies exhausted code generation
func TestShorten_CapacityExhausted_Returns503(t *testing.T) {
	handler, m := setupTestHandler(t)
	m.allocator.EXPECT().Allocate(mock.Anything, "https://example.com").Return(nil, domain.ErrCapacityExhausted)

	req := httptest.NewRequest("POST", "/shorten", strings.NewReader(`{"url":"https://example.com"}`))
	rr := httptest.NewRecorder()

	handler.Shorten(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	problem := decodeProblem(t, rr)
	assert.Contains(t, problem.Type, problemdetails.TypeCapacityExhausted)
}

// TestShorten_ServerError_Returns500 verifies internal errors hide details
func TestShorten_ServerError_Returns500(t *testing.T) {
	handler, m := setupTestHandler(t)
	m.allocator.EXPECT().Allocate(mock.Anything, "https://example.com").Return(nil, errors.New("disk on fire"))

	req := httptest.NewRequest("POST", "/shorten", strings.NewReader(`{"url":"https://example.com"}`))
	rr := httptest.NewRecorder()

	handler.Shorten(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	problem := decodeProblem(t, rr)
	assert.NotContains(t, problem.Detail, "disk on fire")
}

// TestShortenBatch_ValidRequest_Returns201 verifies batch creation keeps input order
func TestShortenBatch_ValidRequest_Returns201(t *testing.T) {
	handler, m := setupTestHandler(t)
	m.allocator.EXPECT().Allocate(mock.Anything, "https://a.example").Return(testLink("aaa111", "https://a.example"), nil)
	m.allocator.EXPECT().Allocate(mock.Anything, "https://b.example").Return(testLink("bbb222", "https://b.example"), nil)

	body, _ := json.Marshal(httphandler.BatchShortenRequest{URLs: []string{"https://a.example", "https://b.example"}})
	req := httptest.NewRequest("POST", "/shorten/batch", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ShortenBatch(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp httphandler.BatchShortenResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "aaa111", resp.Results[0].Code)
	assert.Equal(t, "bbb222", resp.Results[1].Code)
}

// TestShortenBatch_InvalidEntry_ReturnsFieldErrors verifies all-or-nothing validation
func TestShortenBatch_InvalidEntry_ReturnsFieldErrors(t *testing.T) {
	handler, _ := setupTestHandler(t)

	body, _ := json.Marshal(httphandler.BatchShortenRequest{URLs: []string{"https://a.example", "nope"}})
	req := httptest.NewRequest("POST", "/shorten/batch", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ShortenBatch(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	problem := decodeProblem(t, rr)
	assert.Contains(t, problem.Type, problemdetails.TypeValidationError)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "urls[1]", problem.Errors[0].Field)
}

// TestShortenBatch_TooMany_Returns400 verifies the batch size cap
func TestShortenBatch_TooMany_Returns400(t *testing.T) {
	handler, _ := setupTestHandler(t)

	urls := make([]string, usecase.MaxBatchSize+1)
	for i := range urls {
		urls[i] = "https://example.com"
	}
	body, _ := json.Marshal(httphandler.BatchShortenRequest{URLs: urls})
	req := httptest.NewRequest("POST", "/shorten/batch", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ShortenBatch(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// TestRedirect_ExistingCode_Returns302 verifies redirects record a click
func TestRedirect_ExistingCode_Returns302(t *testing.T) {
	// Setup
	handler, m := setupTestHandler(t)
	m.repo.EXPECT().FindByCode(mock.Anything, "abc123").Return(testLink("abc123", "https://example.com"), nil)
	m.recorder.EXPECT().RecordClick(mock.Anything, mock.MatchedBy(func(e events.ClickEvent) bool {
		return e.ShortCode == "abc123" &&
			e.ClientIP == "203.0.113.7" &&
			e.UserAgent == "test-agent" &&
			e.Referer == "https://www.google.com/"
	})).Return(nil)

	req := httptest.NewRequest("GET", "/abc123", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Referer", "https://www.google.com/")

	// Act
	rr := serve("GET", "/{code}", handler.Redirect, req)

	// Assert
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "https://example.com", rr.Header().Get("Location"))
}

// TestRedirect_RecordFails_StillRedirects verifies click loss never blocks redirects
func TestRedirect_RecordFails_StillRedirects(t *testing.T) {
	handler, m := setupTestHandler(t)
	m.repo.EXPECT().FindByCode(mock.Anything, "abc123").Return(testLink("abc123", "https://example.com"), nil)
	m.recorder.EXPECT().RecordClick(mock.Anything, mock.Anything).Return(errors.New("store down"))

	rr := serve("GET", "/{code}", handler.Redirect, httptest.NewRequest("GET", "/abc123", nil))

	assert.Equal(t, http.StatusFound, rr.Code)
}

// TestRedirect_NotFound_Returns404 verifies not found handling
func TestRedirect_NotFound_Returns404(t *testing.T) {
	handler, m := setupTestHandler(t)
	m.repo.EXPECT().FindByCode(mock.Anything, "missing").Return(nil, domain.ErrURLNotFound)

	rr := serve("GET", "/{code}", handler.Redirect, httptest.NewRequest("GET", "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	problem := decodeProblem(t, rr)
	assert.Contains(t, problem.Type, problemdetails.TypeNotFound)
	assert.Contains(t, problem.Detail, "missing")
}

// TestRedirect_MalformedCode_Returns404WithoutLookup verifies impossible codes skip the store
func TestRedirect_MalformedCode_Returns404WithoutLookup(t *testing.T) {
	handler, _ := setupTestHandler(t)

	rr := serve("GET", "/{code}", handler.Redirect, httptest.NewRequest("GET", "/bad.code", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// TestRedirect_ServerError_Returns500 verifies store failures
func TestRedirect_ServerError_Returns500(t *testing.T) {
	handler, m := setupTestHandler(t)
	m.repo.EXPECT().FindByCode(mock.Anything, "abc123").Return(nil, errors.New("connection reset"))

	rr := serve("GET", "/{code}", handler.Redirect, httptest.NewRequest("GET", "/abc123", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// TestListLinks_DefaultParams_Returns200 verifies listing with default parameters
func TestListLinks_DefaultParams_Returns200(t *testing.T) {
	handler, m := setupTestHandler(t)
	l := testLink("abc123", "https://example.com")
	m.repo.EXPECT().FindAll(mock.Anything, usecase.FindAllParams{SortOrder: "desc", Limit: 20, Offset: 0}).Return([]*domain.ShortLink{l}, nil)
	m.repo.EXPECT().Count(mock.Anything, usecase.CountParams{}).Return(int64(1), nil)
	m.counter.EXPECT().CountSince(mock.Anything, "abc123", l.CreatedAt).Return(int64(4), nil)

	rr := httptest.NewRecorder()
	handler.ListLinks(rr, httptest.NewRequest("GET", "/api/v1/links", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var result usecase.LinkListResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&result))
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, 1, result.TotalPages)
	require.Len(t, result.Links, 1)
	assert.Equal(t, int64(4), result.Links[0].TotalClicks)
}

// TestListLinks_WithQuery_PassesParams verifies query parameter parsing
func TestListLinks_WithQuery_PassesParams(t *testing.T) {
	handler, m := setupTestHandler(t)
	m.repo.EXPECT().FindAll(mock.Anything, usecase.FindAllParams{Search: "go", SortOrder: "asc", Limit: 5, Offset: 5}).Return([]*domain.ShortLink{}, nil)
	m.repo.EXPECT().Count(mock.Anything, usecase.CountParams{Search: "go"}).Return(int64(6), nil)

	rr := httptest.NewRecorder()
	handler.ListLinks(rr, httptest.NewRequest("GET", "/api/v1/links?page=2&perPage=5&order=asc&search=go", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var result usecase.LinkListResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&result))
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 2, result.TotalPages)
}

// TestListLinks_InvalidOrder_Returns400 verifies unknown sort orders are rejected
func TestListLinks_InvalidOrder_Returns400(t *testing.T) {
	handler, _ := setupTestHandler(t)

	rr := httptest.NewRecorder()
	handler.ListLinks(rr, httptest.NewRequest("GET", "/api/v1/links?order=sideways", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	problem := decodeProblem(t, rr)
	assert.Contains(t, problem.Type, problemdetails.TypeInvalidRequest)
}

// TestListLinks_ServerError_Returns500 verifies store failures
func TestListLinks_ServerError_Returns500(t *testing.T) {
	handler, m := setupTestHandler(t)
	m.repo.EXPECT().FindAll(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	rr := httptest.NewRecorder()
	handler.ListLinks(rr, httptest.NewRequest("GET", "/api/v1/links", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// TestGetLinkDetail_Exists_Returns200 verifies detail includes the click total
func TestGetLinkDetail_Exists_Returns200(t *testing.T) {
	handler, m := setupTestHandler(t)
	l := testLink("abc123", "https://example.com")
	m.repo.EXPECT().FindByCode(mock.Anything, "abc123").Return(l, nil)
	m.counter.EXPECT().CountSince(mock.Anything, "abc123", l.CreatedAt).Return(int64(9), nil)

	rr := serve("GET", "/api/v1/links/{code}", handler.GetLinkDetail, httptest.NewRequest("GET", "/api/v1/links/abc123", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var detail usecase.LinkWithClicks
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&detail))
	assert.Equal(t, "abc123", detail.Code)
	assert.Equal(t, "http://localhost:8080/abc123", detail.ShortURL)
	assert.Equal(t, int64(9), detail.TotalClicks)
}

// TestGetLinkDetail_NotFound_Returns404 verifies not found handling
func TestGetLinkDetail_NotFound_Returns404(t *testing.T) {
	handler, m := setupTestHandler(t)
	m.repo.EXPECT().FindByCode(mock.Anything, "missing").Return(nil, domain.ErrURLNotFound)

	rr := serve("GET", "/api/v1/links/{code}", handler.GetLinkDetail, httptest.NewRequest("GET", "/api/v1/links/missing", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// TestDeleteLink_Success_Returns204 verifies deletion
func TestDeleteLink_Success_Returns204(t *testing.T) {
	handler, m := setupTestHandler(t)
	m.repo.EXPECT().Delete(mock.Anything, "abc123").Return(nil)

	rr := serve("DELETE", "/api/v1/links/{code}", handler.DeleteLink, httptest.NewRequest("DELETE", "/api/v1/links/abc123", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

// TestDeleteLink_Error_Returns500 verifies store failures
func TestDeleteLink_Error_Returns500(t *testing.T) {
	handler, m := setupTestHandler(t)
	m.repo.EXPECT().Delete(mock.Anything, "abc123").Return(errors.New("tx aborted"))

	rr := serve("DELETE", "/api/v1/links/{code}", handler.DeleteLink, httptest.NewRequest("DELETE", "/api/v1/links/abc123", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// TestHealthz_Returns200 verifies liveness
func TestHealthz_Returns200(t *testing.T) {
	handler, _ := setupTestHandler(t)

	rr := httptest.NewRecorder()
	handler.Healthz(rr, httptest.NewRequest("GET", "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp httphandler.HealthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
}

// TestReadyz_AllChecksPass_Returns200 verifies readiness with healthy dependencies
func TestReadyz_AllChecksPass_Returns200(t *testing.T) {
	ok := func(context.Context) error { return nil }
	handler, _ := setupTestHandler(t,
		httphandler.HealthCheck{Name: "database", Ping: ok},
		httphandler.HealthCheck{Name: "redis", Ping: ok},
	)

	rr := httptest.NewRecorder()
	handler.Readyz(rr, httptest.NewRequest("GET", "/readyz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp httphandler.HealthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "ready", resp.Status)
}

// TestReadyz_CheckFails_Returns503 verifies the failing dependency is named
func TestReadyz_CheckFails_Returns503(t *testing.T) {
	handler, _ := setupTestHandler(t,
		httphandler.HealthCheck{Name: "database", Ping: func(context.Context) error { return nil }},
		httphandler.HealthCheck{Name: "redis", Ping: func(context.Context) error { return errors.New("connection refused") }},
	)

	rr := httptest.NewRecorder()
	handler.Readyz(rr, httptest.NewRequest("GET", "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	var resp httphandler.HealthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "unavailable", resp.Status)
	assert.Contains(t, resp.Reason, "redis")
}
