package snapshot

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
				register := rest.RegisterHandler(l)(si)
				router.HandleFunc("/players/{playerId}/sort", register("get_sort_snapshot", handleGetSnapshot(db, locks, defaults))).Methods(http.MethodGet)
				router.HandleFunc("/sort/defaults", register("get_sort_defaults", handleGetDefaults(defaults))).Methods(http.MethodGet)
			}
		}
	}
}

func handleGetSnapshot(db *gorm.DB, locks *player.LockRegistry, defaults sorting.Preference) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParsePlayerId(d.Logger(), func(playerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				m, err := NewProcessor(d.Logger(), d.Context(), db, locks, defaults).GetByPlayerId(playerId)
				if err != nil {
					d.Logger().WithError(err).Errorf("Unable to retrieve sort snapshot for player [%s].", playerId.String())
					w.WriteHeader(rest.StatusFor(err, nil, nil))
					return
				}

				rm, err := model.Map(Transform)(model.FixedProvider(m))()
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

func handleGetDefaults(defaults sorting.Preference) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			rm, err := model.Map(TransformDefaults)(model.FixedProvider(defaults))()
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating REST model.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			query := r.URL.Query()
			queryParams := jsonapi.ParseQueryFields(&query)
			server.MarshalResponse[DefaultsRestModel](d.Logger())(w)(c.ServerInformation())(queryParams)(rm)
		}
	}
}
