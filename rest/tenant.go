package rest

import (
	"context"
	"net/http"
	"strconv"

	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	TenantIdHeader     = "TENANT_ID"
	RegionHeader       = "REGION"
	MajorVersionHeader = "MAJOR_VERSION"
	MinorVersionHeader = "MINOR_VERSION"
)

type TenantHandler func(ctx context.Context) http.HandlerFunc

// RetrieveTenant builds the request context from the tenant headers every call must carry, continuing
// any trace the caller propagated.
func RetrieveTenant(l logrus.FieldLogger, next TenantHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := ParseTenant(r.Header)
		if err != nil {
			l.WithError(err).Errorf("Unable to identify tenant for request.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		next(tenant.WithContext(ctx, t))(w, r)
	}
}

func ParseTenant(h http.Header) (tenant.Model, error) {
	id, err := uuid.Parse(h.Get(TenantIdHeader))
	if err != nil {
		return tenant.Model{}, err
	}
	major, err := strconv.ParseUint(h.Get(MajorVersionHeader), 10, 16)
	if err != nil {
		return tenant.Model{}, err
	}
	minor, err := strconv.ParseUint(h.Get(MinorVersionHeader), 10, 16)
	if err != nil {
		return tenant.Model{}, err
	}
	return tenant.Create(id, h.Get(RegionHeader), uint16(major), uint16(minor))
}
