package locked

import (
	"atlas-sorter/player"
	"atlas-sorter/rest"
	"net/http"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) func(locks *player.LockRegistry) server.RouteInitializer {
	return func(db *gorm.DB) func(locks *player.LockRegistry) server.RouteInitializer {
		return func(locks *player.LockRegistry) server.RouteInitializer {
			return func(router *mux.Router, l logrus.FieldLogger) {
				register := rest.RegisterHandler(l)(si)
				r := router.PathPrefix("/players/{playerId}/sort/locked-slots").Subrouter()
				r.HandleFunc("", register("get_locked_slots", handleGetLockedSlots(db, locks))).Methods(http.MethodGet)
				r.HandleFunc("", register("unlock_all_slots", handleUnlockAll(db, locks))).Methods(http.MethodDelete)
				r.HandleFunc("/{slot}", register("toggle_slot_lock", handleToggleLock(db, locks))).Methods(http.MethodPost)
			}
		}
	}
}

var badRequest = []error{ErrInvalidSlotIndex}

type operation func(p *Processor, playerId uuid.UUID) (Model, error)

func handleGetLockedSlots(db *gorm.DB, locks *player.LockRegistry) rest.GetHandler {
	return handleOperation(db, locks, func(p *Processor, playerId uuid.UUID) (Model, error) {
		return p.GetByPlayerId(playerId)
	})
}

func handleUnlockAll(db *gorm.DB, locks *player.LockRegistry) rest.GetHandler {
	return handleOperation(db, locks, func(p *Processor, playerId uuid.UUID) (Model, error) {
		return p.UnlockAllAndEmit(playerId)
	})
}

func handleToggleLock(db *gorm.DB, locks *player.LockRegistry) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseSlot(d.Logger(), func(slot int16) http.HandlerFunc {
			return handleOperation(db, locks, func(p *Processor, playerId uuid.UUID) (Model, error) {
				return p.ToggleLockAndEmit(playerId, slot)
			})(d, c)
		})
	}
}

func handleOperation(db *gorm.DB, locks *player.LockRegistry, op operation) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParsePlayerId(d.Logger(), func(playerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				m, err := op(NewProcessor(d.Logger(), d.Context(), db, locks), playerId)
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
