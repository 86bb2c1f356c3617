package rest_test

import (
	"atlas-sorter/rest"
	"net/http"
	"net/http/httptest"
	"testing"

	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestRegisterHandlerRequiresTenant(t *testing.T) {
	l, _ := test.NewNullLogger()
	called := false
	h := rest.RegisterHandler(l)(rest.NewServerInformation("", "/api/"))("get_defaults", func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			called = true
		}
	})

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, called)
}

func TestRegisterHandlerContinuesTrace(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(t.Context()) }()
	prevProvider, prevPropagator := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	defer func() {
		otel.SetTracerProvider(prevProvider)
		otel.SetTextMapPropagator(prevPropagator)
	}()

	l, _ := test.NewNullLogger()
	te, err := tenant.Create(uuid.New(), "GMS", 83, 1)
	require.NoError(t, err)

	var seen trace.SpanContext
	var seenTenant tenant.Model
	router := mux.NewRouter()
	router.HandleFunc("/players/{playerId}", rest.RegisterHandler(l)(rest.NewServerInformation("", "/api/"))("get_player", func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParsePlayerId(d.Logger(), func(playerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				seen = trace.SpanContextFromContext(d.Context())
				seenTenant = tenant.MustFromContext(d.Context())
				w.WriteHeader(http.StatusNoContent)
			}
		})
	}))

	req := httptest.NewRequest(http.MethodGet, "/players/"+uuid.New().String(), nil)
	req.Header.Set(rest.TenantIdHeader, te.Id().String())
	req.Header.Set(rest.RegionHeader, "GMS")
	req.Header.Set(rest.MajorVersionHeader, "83")
	req.Header.Set(rest.MinorVersionHeader, "1")
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, te.Id(), seenTenant.Id())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", seen.TraceID().String())
	assert.NotEqual(t, "00f067aa0ba902b7", seen.SpanID().String())
}

func TestParseSlotRejectsGarbage(t *testing.T) {
	l, _ := test.NewNullLogger()
	router := mux.NewRouter()
	router.HandleFunc("/slots/{slot}", rest.ParseSlot(l, func(slot int16) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}
	}))

	for path, code := range map[string]int{"/slots/4": http.StatusNoContent, "/slots/x": http.StatusBadRequest, "/slots/70000": http.StatusBadRequest} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, code, rr.Code, path)
	}
}
