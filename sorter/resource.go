package sorter

import (
	"atlas-sorter/region"
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

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) func(c Collaborators) server.RouteInitializer {
	return func(db *gorm.DB) func(c Collaborators) server.RouteInitializer {
		return func(c Collaborators) server.RouteInitializer {
			return func(router *mux.Router, l logrus.FieldLogger) {
				register := rest.RegisterHandler(l)(si)
				r := router.PathPrefix("/players/{playerId}/sort").Subrouter()
				r.HandleFunc("/regions/{region}", register("sort_region", handleSortRegion(db, c))).Methods(http.MethodPost)
				r.HandleFunc("/inventory", register("sort_inventory", handleSortInventory(db, c))).Methods(http.MethodPost)
			}
		}
	}
}

var (
	badRequest = []error{region.ErrInvalidRegion}
	conflict   = []error{ErrNotApplicable}
)

func ParseRegion(l logrus.FieldLogger, next func(r region.Region) http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rg, err := region.Parse(mux.Vars(r)["region"])
		if err != nil {
			l.WithError(err).Errorf("Unable to properly parse region from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(rg)(w, r)
	}
}

func handleSortRegion(db *gorm.DB, c Collaborators) rest.GetHandler {
	return func(d *rest.HandlerDependency, hc *rest.HandlerContext) http.HandlerFunc {
		return rest.ParsePlayerId(d.Logger(), func(playerId uuid.UUID) http.HandlerFunc {
			return ParseRegion(d.Logger(), func(rg region.Region) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					res, err := NewProcessor(d.Logger(), d.Context(), db, c).SortRegionAndEmit(playerId, rg)
					if err != nil {
						w.WriteHeader(rest.StatusFor(err, badRequest, conflict))
						return
					}

					rm, err := model.Map(Transform)(model.FixedProvider(res))()
					if err != nil {
						d.Logger().WithError(err).Errorf("Creating REST model.")
						w.WriteHeader(http.StatusInternalServerError)
						return
					}

					query := r.URL.Query()
					queryParams := jsonapi.ParseQueryFields(&query)
					server.MarshalResponse[RestModel](d.Logger())(w)(hc.ServerInformation())(queryParams)(rm)
				}
			})
		})
	}
}

func handleSortInventory(db *gorm.DB, c Collaborators) rest.GetHandler {
	return func(d *rest.HandlerDependency, hc *rest.HandlerContext) http.HandlerFunc {
		return rest.ParsePlayerId(d.Logger(), func(playerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				res, err := NewProcessor(d.Logger(), d.Context(), db, c).SortInventoryAndEmit(playerId)
				if err != nil {
					w.WriteHeader(rest.StatusFor(err, badRequest, conflict))
					return
				}

				rm, err := model.SliceMap(Transform)(model.FixedProvider(res))()()
				if err != nil {
					d.Logger().WithError(err).Errorf("Creating REST model.")
					w.WriteHeader(http.StatusInternalServerError)
					return
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[[]RestModel](d.Logger())(w)(hc.ServerInformation())(queryParams)(rm)
			}
		})
	}
}
