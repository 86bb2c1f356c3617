package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"
)

const tracerName = "atlas-sorter"

type HandlerDependency struct {
	l   logrus.FieldLogger
	ctx context.Context
}

func (h HandlerDependency) Logger() logrus.FieldLogger {
	return h.l
}

func (h HandlerDependency) Context() context.Context {
	return h.ctx
}

type HandlerContext struct {
	si jsonapi.ServerInformation
}

func (h HandlerContext) ServerInformation() jsonapi.ServerInformation {
	return h.si
}

type GetHandler func(d *HandlerDependency, c *HandlerContext) http.HandlerFunc

type InputHandler[M any] func(d *HandlerDependency, c *HandlerContext, model M) http.HandlerFunc

func RegisterHandler(l logrus.FieldLogger) func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
	return func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
		return func(handlerName string, handler GetHandler) http.HandlerFunc {
			return RetrieveTenant(l, func(ctx context.Context) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					sctx, span := otel.GetTracerProvider().Tracer(tracerName).Start(ctx, handlerName)
					defer span.End()
					fl := l.WithField("handler", handlerName).WithField("trace.id", span.SpanContext().TraceID().String())
					handler(&HandlerDependency{l: fl, ctx: sctx}, &HandlerContext{si: si})(w, r)
				}
			})
		}
	}
}

// RegisterInputHandler decodes a JSON:API request body into M before invoking the handler.
func RegisterInputHandler[M any](l logrus.FieldLogger) func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
	return func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
		return func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
			return RetrieveTenant(l, func(ctx context.Context) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					ctx, span := otel.GetTracerProvider().Tracer(tracerName).Start(ctx, handlerName)
					defer span.End()
					fl := l.WithField("handler", handlerName).WithField("trace.id", span.SpanContext().TraceID().String())
					body, err := io.ReadAll(r.Body)
					if err != nil {
						fl.WithError(err).Errorf("Reading request body.")
						w.WriteHeader(http.StatusBadRequest)
						return
					}
					var m M
					err = jsonapi.Unmarshal(body, &m)
					if err != nil {
						fl.WithError(err).Errorf("Deserializing input.")
						w.WriteHeader(http.StatusBadRequest)
						return
					}
					handler(&HandlerDependency{l: fl, ctx: ctx}, &HandlerContext{si: si}, m)(w, r)
				}
			})
		}
	}
}

type IdHandler func(id uuid.UUID) http.HandlerFunc

func ParsePlayerId(l logrus.FieldLogger, next IdHandler) http.HandlerFunc {
	return parseUUID(l, "playerId", next)
}

func ParseContainerId(l logrus.FieldLogger, next IdHandler) http.HandlerFunc {
	return parseUUID(l, "containerId", next)
}

func parseUUID(l logrus.FieldLogger, key string, next IdHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(mux.Vars(r)[key])
		if err != nil {
			l.WithError(err).Errorf("Unable to properly parse [%s] from path.", key)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(id)(w, r)
	}
}

type SlotHandler func(slot int16) http.HandlerFunc

func ParseSlot(l logrus.FieldLogger, next SlotHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, err := strconv.ParseInt(mux.Vars(r)["slot"], 10, 16)
		if err != nil {
			l.WithError(err).Errorf("Unable to properly parse slot from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(int16(slot))(w, r)
	}
}

// StatusFor maps an operation error onto a response code. Callers supply the sentinels that represent
// bad input and inapplicable requests for their domain.
func StatusFor(err error, badRequest []error, conflict []error) int {
	for _, e := range badRequest {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}
	for _, e := range conflict {
		if errors.Is(err, e) {
			return http.StatusConflict
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
