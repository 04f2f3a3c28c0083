package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	analyticshttp "shortlink/internal/analytics/delivery/http"
	"shortlink/internal/analytics/enrichment"
	analyticsrepo "shortlink/internal/analytics/repository"
	analyticsusecase "shortlink/internal/analytics/usecase"
	"shortlink/internal/conf"
	"shortlink/internal/database"
	"shortlink/internal/infra/eventbus"
	"shortlink/internal/logging"
	"shortlink/internal/server"
	urlhttp "shortlink/internal/urlservice/delivery/http"
	urlrepo "shortlink/internal/urlservice/repository"
	"shortlink/internal/urlservice/shortcode"
	"shortlink/internal/urlservice/usecase"
)

// newStack assembles the service the way the binary does, on an in-memory
// SQLite database.
func newStack(t *testing.T, pipeline string) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	bc := conf.Default()
	bc.Data.Database.Source = ":memory:"
	bc.Analytics.Pipeline = pipeline

	db, err := database.OpenDB(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db, database.DriverSQLite))

	links := urlrepo.NewURLRepository(bc.Data, db, nil, logger)
	clicks := analyticsrepo.NewClickRepository(bc.Data, db)
	geoIP, err := enrichment.NewGeoIPResolver("")
	require.NoError(t, err)
	analytics := analyticsusecase.NewAnalyticsService(clicks, links, geoIP,
		enrichment.NewDeviceDetector(), enrichment.NewRefererClassifier(), logger)

	bus := eventbus.NewEventBus(logging.NewWatermillLogger(logger))
	router, err := eventbus.NewRouter(bus, logging.NewWatermillLogger(logger))
	require.NoError(t, err)
	recorder := server.NewClickRecorder(bc.Analytics, analytics, bus, router, logger)

	if pipeline == server.PipelineBus {
		done := make(chan struct{})
		go func() {
			defer close(done)
			assert.NoError(t, router.Start(context.Background()))
		}()
		select {
		case <-router.Running():
		case <-time.After(5 * time.Second):
			t.Fatal("event router did not start")
		}
		t.Cleanup(func() {
			require.NoError(t, router.Stop(context.Background()))
			<-done
			require.NoError(t, bus.Close())
		})
	}

	generator := shortcode.NewGenerator(bc.Shortcode, links, logger)
	service := usecase.NewURLService(links, generator, analytics, logger, bc.Server)
	resolver := usecase.NewResolver(links, recorder, logger)
	checks := server.NewHealthChecks(db, nil)

	limiter := urlhttp.NewRateLimiter(bc.Server.RateLimit)
	t.Cleanup(limiter.Stop)

	return server.NewRouter(bc.Server,
		urlhttp.NewHandler(service, resolver, checks, logger),
		analyticshttp.NewHandler(analytics, logger),
		limiter, logger)
}

func do(h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func shorten(t *testing.T, h http.Handler, url string) urlhttp.LinkResponse {
	t.Helper()
	rr := do(h, http.MethodPost, "/shorten", `{"url":"`+url+`"}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var resp urlhttp.LinkResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func stats(t *testing.T, h http.Handler, code string) analyticsusecase.StatsResult {
	t.Helper()
	rr := do(h, http.MethodGet, "/stats/"+code, "", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp analyticsusecase.StatsResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestEndToEnd_ShortenRedirectStats(t *testing.T) {
	for _, pipeline := range []string{server.PipelineDirect, server.PipelineBus} {
		t.Run(pipeline, func(t *testing.T) {
			// Setup
			h := newStack(t, pipeline)
			link := shorten(t, h, "https://example.com/landing")

			// Act
			rr := do(h, http.MethodGet, "/"+link.Code, "", map[string]string{
				"Referer":    "https://www.google.com/search?q=x",
				"User-Agent": "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			})

			// Assert
			require.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, "https://example.com/landing", rr.Header().Get("Location"))

			got := stats(t, h, link.Code)
			assert.Equal(t, int64(1), got.TotalClicks)
			require.Len(t, got.Clicks, 1)
			assert.Equal(t, "search", got.Clicks[0].Source)
			assert.Equal(t, "mobile", got.Clicks[0].Device)
			assert.Equal(t, enrichment.LocationUnknown, got.Clicks[0].Location)
		})
	}
}

func TestEndToEnd_SameURLTwice_GetsDistinctCodes(t *testing.T) {
	h := newStack(t, server.PipelineDirect)

	first := shorten(t, h, "https://example.com")
	second := shorten(t, h, "https://example.com")

	assert.NotEqual(t, first.Code, second.Code)
	assert.Equal(t, "http://localhost:8080/"+first.Code, first.ShortURL)
}

func TestEndToEnd_UnknownCode_Returns404(t *testing.T) {
	h := newStack(t, server.PipelineDirect)

	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/zzzzzz", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/stats/zzzzzz", "", nil).Code)
}

func TestEndToEnd_DeletedLink_StopsRedirecting(t *testing.T) {
	// Setup
	h := newStack(t, server.PipelineDirect)
	link := shorten(t, h, "https://example.com/gone")

	// Act
	rr := do(h, http.MethodDelete, "/api/v1/links/"+link.Code, "", nil)

	// Assert
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/"+link.Code, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/api/v1/links/"+link.Code, "", nil).Code)
}

func TestEndToEnd_LinkDetail_CountsClicks(t *testing.T) {
	h := newStack(t, server.PipelineDirect)
	link := shorten(t, h, "https://example.com/counted")
	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusFound, do(h, http.MethodGet, "/"+link.Code, "", nil).Code)
	}

	rr := do(h, http.MethodGet, "/api/v1/links/"+link.Code, "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var detail usecase.LinkWithClicks
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&detail))
	assert.Equal(t, int64(3), detail.TotalClicks)
}

func TestEndToEnd_Readyz_ReportsReady(t *testing.T) {
	h := newStack(t, server.PipelineDirect)

	rr := do(h, http.MethodGet, "/readyz", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ready")
}

func TestNewHealthChecks_WithoutRedis_OnlyChecksDatabase(t *testing.T) {
	db, err := database.OpenDB(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	checks := server.NewHealthChecks(db, nil)

	require.Len(t, checks, 1)
	assert.Equal(t, "database", checks[0].Name)
	assert.NoError(t, checks[0].Ping(context.Background()))
}

func TestNewHTTPServer_UsesConfiguredAddress(t *testing.T) {
	c := conf.Default().Server
	c.HTTP.Addr = "127.0.0.1:0"

	srv := server.NewHTTPServer(c, http.NotFoundHandler(), logging.NewKratosLogger(zap.NewNop()))

	require.NotNil(t, srv)
}
