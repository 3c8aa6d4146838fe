package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/travel-planner/internal/domain/destination"
	domainexport "github.com/yanqian/travel-planner/internal/domain/export"
	"github.com/yanqian/travel-planner/internal/domain/planner"
	"github.com/yanqian/travel-planner/internal/infra/config"
	infraexport "github.com/yanqian/travel-planner/internal/infra/export"
	"github.com/yanqian/travel-planner/internal/infra/knowledge"
	"github.com/yanqian/travel-planner/internal/infra/trending"
)

type testEnv struct {
	server   *http.Server
	trending *trending.MemoryStore
}

func newRouterUnderTest(t *testing.T, rateLimit config.RateLimitConfig) testEnv {
	t.Helper()
	logger := newTestLogger()

	doc, err := knowledge.EmbeddedSource{}.Load(context.Background())
	require.NoError(t, err)
	catalog, err := planner.NewCatalog(doc.CatalogData)
	require.NoError(t, err)
	destinations, err := destination.NewService(doc.Destinations, doc.Featured, logger)
	require.NoError(t, err)

	store := trending.NewMemoryStore()
	plannerSvc := planner.NewService(planner.Config{Location: time.UTC, TrendingLimit: 5}, planner.NewGenerator(catalog, func(int) int { return 0 }), store, logger)
	qr := infraexport.NewQREncoder(128)
	exportSvc := domainexport.NewService(domainexport.Config{}, infraexport.NewPDFRenderer("₹", qr), qr, nil, logger)

	handler := NewHandler(plannerSvc, destinations, exportSvc, PageOptions{
		CurrencySymbol: "₹",
		PublicBaseURL:  "http://planner.test/",
		Location:       time.UTC,
	}, logger)
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			RateLimit:    rateLimit,
		},
	}
	return testEnv{server: NewRouter(cfg, handler, logger), trending: store}
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

func tripForm(startOffset, endOffset int) url.Values {
	today := time.Now().UTC()
	return url.Values{
		"destination": {"bali"},
		"startDate":   {today.AddDate(0, 0, startOffset).Format(planner.DateLayout)},
		"endDate":     {today.AddDate(0, 0, endOffset).Format(planner.DateLayout)},
		"travelers":   {"2"},
		"budget":      {"moderate"},
		"interests":   {"food"},
	}
}

func perform(server *http.Server, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func postForm(server *http.Server, path string, form url.Values, fragment bool) *httptest.ResponseRecorder {
	headers := map[string]string{"Content-Type": "application/x-www-form-urlencoded"}
	if fragment {
		headers[headerRequestedBy] = "fetch"
	}
	return perform(server, http.MethodPost, path, strings.NewReader(form.Encode()), headers)
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestRouter_LandingPage(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{})

	rec := perform(env.server, http.MethodGet, "/?destination=Tokyo&budget=luxury", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "<!DOCTYPE html>")
	require.Contains(t, body, `href="/destinations/paris"`)
	require.Contains(t, body, `value="Tokyo"`)
	require.Contains(t, body, `value="luxury" checked`)
	require.NotEmpty(t, rec.Header().Get(headerRequestID))
}

func TestRouter_SubmitPlanFragment(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{})

	rec := postForm(env.server, "/planner", tripForm(1, 4), true)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.NotContains(t, body, "<!DOCTYPE html>")
	require.Contains(t, body, `data-fragment="results"`)
	require.Contains(t, body, "₹139,440")
	require.Contains(t, body, "Ubud Sacred Monkey Forest")
	require.Contains(t, body, `data-toast="success"`)
	require.Contains(t, body, "Travel plan generated successfully!")

	top, err := env.trending.Top(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "bali", top[0].Key)
}

func TestRouter_SubmitPlanFullPage(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{})

	rec := postForm(env.server, "/planner", tripForm(1, 4), false)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "<!DOCTYPE html>")
	require.Contains(t, body, `id="results" class="mt-12 bg-gray-50 rounded-2xl p-8"`)
	require.Contains(t, body, "₹139,440")
}

func TestRouter_SubmitPlanValidationFailure(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{})

	cases := map[string]struct {
		form    url.Values
		message string
	}{
		"past start": {form: tripForm(-1, 3), message: planner.MsgStartInPast},
		"end before": {form: tripForm(3, 3), message: planner.MsgEndBeforeStart},
	}
	missing := tripForm(1, 4)
	missing.Del("budget")
	cases["missing budget"] = struct {
		form    url.Values
		message string
	}{form: missing, message: planner.MsgMissingFields}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := postForm(env.server, "/planner", tc.form, true)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			body := rec.Body.String()
			require.Contains(t, body, `data-toast="error"`)
			require.Contains(t, body, tc.message)
			require.NotContains(t, body, `data-fragment="results"`)
		})
	}

	top, err := env.trending.Top(context.Background(), 5)
	require.NoError(t, err)
	require.Empty(t, top)
}

func TestRouter_DestinationModal(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{})

	rec := perform(env.server, http.MethodGet, "/destinations/PARIS", nil, map[string]string{headerRequestedBy: "fetch"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `data-fragment="modal"`)
	require.Contains(t, rec.Body.String(), "Paris, France")

	page := perform(env.server, http.MethodGet, "/destinations/paris", nil, nil)
	require.Equal(t, http.StatusOK, page.Code)
	require.Contains(t, page.Body.String(), `id="destinationModal" class="fixed inset-0 z-40 bg-black/50 overflow-y-auto"`)
}

func TestRouter_DestinationUnknown(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{})

	rec := perform(env.server, http.MethodGet, "/destinations/atlantis", nil, map[string]string{headerRequestedBy: "fetch"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), `data-toast="info"`)
	require.Contains(t, rec.Body.String(), destination.MsgComingSoon)
	require.NotContains(t, rec.Body.String(), `data-fragment="modal"`)
}

func TestRouter_QuickPlan(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{})

	rec := postForm(env.server, "/destinations/paris/plan", url.Values{}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Paris, France")
	require.Contains(t, body, "Flexible dates")
	require.Contains(t, body, ">culture</span>")
	require.Contains(t, body, ">food</span>")
	require.Contains(t, body, "/planner/export.pdf?destination=Paris%2C+France")
}

func TestRouter_ExportPDF(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{})

	rec := perform(env.server, http.MethodGet, "/planner/export.pdf?"+tripForm(1, 4).Encode(), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "bali-travel-plan.pdf")
	require.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	quick := perform(env.server, http.MethodGet, "/planner/export.pdf?destination=Tokyo", nil, nil)
	require.Equal(t, http.StatusOK, quick.Code)
}

func TestRouter_ExportPDFInvalidRequest(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{})

	rec := perform(env.server, http.MethodGet, "/planner/export.pdf?"+tripForm(-2, 1).Encode(), nil, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), planner.MsgStartInPast)
}

func TestRouter_SharePNG(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{})

	rec := perform(env.server, http.MethodGet, "/planner/share.png?destination=bali", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	empty := perform(env.server, http.MethodGet, "/planner/share.png", nil, nil)
	require.Equal(t, http.StatusUnprocessableEntity, empty.Code)
}

func TestRouter_APICreatePlan(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{})
	form := tripForm(1, 4)
	payload, err := json.Marshal(planner.Request{
		Destination: "Atlantis",
		StartDate:   form.Get("startDate"),
		EndDate:     form.Get("endDate"),
		Travelers:   "2",
		Budget:      "moderate",
		Interests:   []string{"food"},
	})
	require.NoError(t, err)

	rec := perform(env.server, http.MethodPost, "/api/v1/plans", bytes.NewReader(payload), map[string]string{"Content-Type": "application/json"})
	require.Equal(t, http.StatusOK, rec.Code)

	var plan planner.TripPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	require.Equal(t, int64(139440), plan.TotalCost)
	require.Len(t, plan.Itinerary, 3)
	require.Empty(t, plan.NearbyPlaces)
	require.NotNil(t, plan.NearbyPlaces)

	trendingRec := perform(env.server, http.MethodGet, "/api/v1/trending", nil, nil)
	require.Equal(t, http.StatusOK, trendingRec.Code)
	require.Contains(t, trendingRec.Body.String(), `"label":"Atlantis"`)
}

func TestRouter_APIValidationError(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{})

	rec := perform(env.server, http.MethodPost, "/api/v1/plans", strings.NewReader(`{"destination":"bali"}`), map[string]string{"Content-Type": "application/json"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "invalid_input", errBody["error"]["code"])
	require.Equal(t, planner.MsgMissingFields, errBody["error"]["message"])

	bad := perform(env.server, http.MethodPost, "/api/v1/plans", strings.NewReader(`{"travelers":2}`), map[string]string{"Content-Type": "application/json"})
	require.Equal(t, http.StatusBadRequest, bad.Code)
	require.Equal(t, "invalid_request", decodeErrorBody(t, bad.Body.Bytes())["error"]["code"])
}

func TestRouter_APIDestinationAndCatalog(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{})

	rec := perform(env.server, http.MethodGet, "/api/v1/destinations/tokyo", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail destination.Detail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	require.Equal(t, "Tokyo, Japan", detail.Name)

	missing := perform(env.server, http.MethodGet, "/api/v1/destinations/atlantis", nil, nil)
	require.Equal(t, http.StatusNotFound, missing.Code)
	require.Equal(t, destination.MsgComingSoon, decodeErrorBody(t, missing.Body.Bytes())["error"]["message"])

	catalog := perform(env.server, http.MethodGet, "/api/v1/catalog", nil, nil)
	require.Equal(t, http.StatusOK, catalog.Code)
	var resp catalogResponse
	require.NoError(t, json.Unmarshal(catalog.Body.Bytes(), &resp))
	require.Len(t, resp.Budgets, 4)
	require.Equal(t, int64(23240), resp.Budgets[1].Daily)
	require.Equal(t, planner.Interests, resp.Interests)
	require.Contains(t, resp.Destinations, "bali")
}

func TestRouter_HealthzAndStatic(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{})

	rec := perform(env.server, http.MethodGet, "/healthz", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	js := perform(env.server, http.MethodGet, "/static/js/planner.js", nil, nil)
	require.Equal(t, http.StatusOK, js.Code)
	require.Contains(t, js.Body.String(), "scrollIntoView")
}

func TestRouter_RateLimit(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1})

	first := perform(env.server, http.MethodGet, "/api/v1/trending", nil, nil)
	require.Equal(t, http.StatusOK, first.Code)

	second := perform(env.server, http.MethodGet, "/api/v1/trending", nil, nil)
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	require.Equal(t, "rate_limit_exceeded", decodeErrorBody(t, second.Body.Bytes())["error"]["code"])
}

func TestRouter_RequestIDPropagates(t *testing.T) {
	env := newRouterUnderTest(t, config.RateLimitConfig{})

	rec := perform(env.server, http.MethodGet, "/healthz", nil, map[string]string{headerRequestID: "abc-123"})
	require.Equal(t, "abc-123", rec.Header().Get(headerRequestID))
}
