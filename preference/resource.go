package preference

import (
	"atlas-sorter/player"
	"atlas-sorter/rest"
	"atlas-sorter/sorting"
	"net/http"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) func(locks *player.LockRegistry, defaults sorting.Preference) server.RouteInitializer {
	return func(db *gorm.DB) func(locks *player.LockRegistry, defaults sorting.Preference) server.RouteInitializer {
		return func(locks *player.LockRegistry, defaults sorting.Preference) server.RouteInitializer {
			return func(router *mux.Router, l logrus.FieldLogger) {
				pf := processorFactory(db, locks, defaults)
				register := rest.RegisterHandler(l)(si)
				r := router.PathPrefix("/players/{playerId}/sort/preference").Subrouter()
				r.HandleFunc("", register("get_sort_preference", handleOperation(pf, get))).Methods(http.MethodGet)
				r.HandleFunc("", rest.RegisterInputHandler[RestModel](l)(si)("set_sort_preference", handleSetPreference(pf))).Methods(http.MethodPatch)
				r.HandleFunc("", register("reset_sort_preference", handleOperation(pf, reset))).Methods(http.MethodDelete)
				r.HandleFunc("/cycle", register("cycle_sort_preference", handleOperation(pf, cycle))).Methods(http.MethodPost)
				r.HandleFunc("/next-method", register("next_sort_method", handleOperation(pf, nextMethod))).Methods(http.MethodPost)
				r.HandleFunc("/toggle-order", register("toggle_sort_order", handleOperation(pf, toggleOrder))).Methods(http.MethodPost)
			}
		}
	}
}

type factory func(d *rest.HandlerDependency) *Processor

func processorFactory(db *gorm.DB, locks *player.LockRegistry, defaults sorting.Preference) factory {
	return func(d *rest.HandlerDependency) *Processor {
		return NewProcessor(d.Logger(), d.Context(), db, locks).WithDefaults(defaults)
	}
}

type operation func(p *Processor, playerId uuid.UUID) (sorting.Preference, error)

func get(p *Processor, playerId uuid.UUID) (sorting.Preference, error) {
	return p.GetByPlayerId(playerId)
}

func reset(p *Processor, playerId uuid.UUID) (sorting.Preference, error) {
	return p.ResetAndEmit(playerId)
}

func cycle(p *Processor, playerId uuid.UUID) (sorting.Preference, error) {
	return p.CycleAndEmit(playerId)
}

func nextMethod(p *Processor, playerId uuid.UUID) (sorting.Preference, error) {
	return p.NextMethodAndEmit(playerId)
}

func toggleOrder(p *Processor, playerId uuid.UUID) (sorting.Preference, error) {
	return p.ToggleOrderAndEmit(playerId)
}

var badRequest = []error{sorting.ErrInvalidPreferenceValue}

func handleSetPreference(pf factory) rest.InputHandler[RestModel] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
		return handleOperation(pf, func(p *Processor, playerId uuid.UUID) (sorting.Preference, error) {
			return p.SetAndEmit(playerId, input.Method, input.Order)
		})(d, c)
	}
}

func handleOperation(pf factory, op operation) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParsePlayerId(d.Logger(), func(playerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				m, err := op(pf(d), playerId)
				if err != nil {
					w.WriteHeader(rest.StatusFor(err, badRequest, nil))
					return
				}

				rm, err := model.Map(Transform(playerId))(model.FixedProvider(m))()
				if err != nil {
					d.Logger().WithError(err).Errorf("Creating REST model.")
					w.WriteHeader(http.StatusInternalServerError)
					return
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[RestModel](d.Logger())(w)(c.ServerInformation())(queryParams)(rm)
			}
		})
	}
}
