package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/metrics"
	"github.com/Skotchmaster/storefront/internal/middleware/auth"
	loggingmw "github.com/Skotchmaster/storefront/internal/middleware/logging"
	"github.com/Skotchmaster/storefront/internal/pricing"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/testutil"
	"github.com/Skotchmaster/storefront/internal/transport"
)

var testSecret = []byte("http-test-secret")

type testEnv struct {
	t       *testing.T
	E       *echo.Echo
	DB      *gorm.DB
	Metrics *metrics.ServerMetrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb := testutil.NewDB(t)
	r := &repo.GormRepo{DB: gdb}
	m := metrics.NewServerMetrics("http_test")
	engine := pricing.NewEngine(pricing.DefaultConfig())
	events := service.NopPublisher{}

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	e.Use(m.Middleware())
	e.Use(loggingmw.RequestLogger(slog.New(slog.NewJSONHandler(io.Discard, nil))))

	Register(e, &Deps{
		DB:      gdb,
		Auth:    auth.New(testSecret),
		Metrics: m,
		Catalog: &CatalogHTTP{Svc: &service.CatalogService{Repo: r}},
		Cart:    &CartHTTP{Svc: &service.CartService{Repo: r, Pricing: engine, Events: events, Metrics: m}},
		Orders: &OrderHTTP{
			Checkout: &service.CheckoutService{Repo: r, Pricing: engine, Events: events, Metrics: m},
			Orders:   &service.OrderService{Repo: r, Events: events, Metrics: m},
		},
		Recommendations: &RecommendationHTTP{Svc: &service.RecommendationService{Repo: r}},
	})

	return &testEnv{t: t, E: e, DB: gdb, Metrics: m}
}

func (env *testEnv) login(email string) (uuid.UUID, *http.Cookie) {
	user := uuid.New()
	return user, testutil.AccessCookie(env.t, testSecret, user, email)
}

func (env *testEnv) doJSONRequest(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	env.t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(env.t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, kind string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	resp := decode[transport.ErrorResponse](t, rec)
	require.Equal(t, "error", resp.Status)
	require.Equal(t, kind, resp.Kind)
}

var address = map[string]any{
	"full_name":   "Ada Lovelace",
	"address":     "12 Analytical Row",
	"city":        "London",
	"postal_code": "N1 9GU",
	"country":     "UK",
}
