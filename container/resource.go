package container

import (
	"atlas-sorter/rest"
	"atlas-sorter/slot"
	"atlas-sorter/stack"
	"net/http"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) func(o stack.Oracle) server.RouteInitializer {
	return func(db *gorm.DB) func(o stack.Oracle) server.RouteInitializer {
		return func(o stack.Oracle) server.RouteInitializer {
			return func(router *mux.Router, l logrus.FieldLogger) {
				register := rest.RegisterHandler(l)(si)
				r := router.PathPrefix("/players/{playerId}/containers").Subrouter()
				r.HandleFunc("", register("get_player_containers", handleGetPlayerContainers(db))).Methods(http.MethodGet)
				r.HandleFunc("", rest.RegisterInputHandler[RestModel](l)(si)("create_container", handleCreateContainer(db))).Methods(http.MethodPost)

				cr := router.PathPrefix("/containers/{containerId}").Subrouter()
				cr.HandleFunc("", register("get_container", handleGetContainer(db))).Methods(http.MethodGet)
				cr.HandleFunc("", register("delete_container", handleDeleteContainer(db))).Methods(http.MethodDelete)
				cr.HandleFunc("/slots/{slot}", rest.RegisterInputHandler[slot.RestModel](l)(si)("set_slot", handleSetSlot(db, o))).Methods(http.MethodPut)
			}
		}
	}
}

var badRequest = []error{ErrUnknownKind, stack.ErrExceedsMaxSize}

var conflict = []error{ErrPlayerInventoryExists}

func handleGetPlayerContainers(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParsePlayerId(d.Logger(), func(playerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				ms, err := NewProcessor(d.Logger(), d.Context(), db).GetByOwnerId(playerId)
				if err != nil {
					w.WriteHeader(rest.StatusFor(err, badRequest, conflict))
					return
				}

				rm, err := model.SliceMap(Transform)(model.FixedProvider(ms))()()
				if err != nil {
					d.Logger().WithError(err).Errorf("Creating REST model.")
					w.WriteHeader(http.StatusInternalServerError)
					return
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[[]RestModel](d.Logger())(w)(c.ServerInformation())(queryParams)(rm)
			}
		})
	}
}

func handleCreateContainer(db *gorm.DB) rest.InputHandler[RestModel] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
		return rest.ParsePlayerId(d.Logger(), func(playerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				kind := KindPlayer
				if input.Kind != "" {
					var err error
					kind, err = ParseKind(input.Kind)
					if err != nil {
						w.WriteHeader(http.StatusBadRequest)
						return
					}
				}

				m, err := NewProcessor(d.Logger(), d.Context(), db).CreateAndEmit(playerId, kind, input.Capacity)
				if err != nil {
					w.WriteHeader(rest.StatusFor(err, badRequest, conflict))
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

func handleGetContainer(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseContainerId(d.Logger(), func(containerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				m, err := NewProcessor(d.Logger(), d.Context(), db).GetById(containerId)
				if err != nil {
					w.WriteHeader(rest.StatusFor(err, badRequest, conflict))
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

func handleDeleteContainer(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseContainerId(d.Logger(), func(containerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				err := NewProcessor(d.Logger(), d.Context(), db).DeleteAndEmit(containerId)
				if err != nil {
					w.WriteHeader(rest.StatusFor(err, badRequest, conflict))
					return
				}
				w.WriteHeader(http.StatusNoContent)
			}
		})
	}
}

func handleSetSlot(db *gorm.DB, o stack.Oracle) rest.InputHandler[slot.RestModel] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input slot.RestModel) http.HandlerFunc {
		return rest.ParseContainerId(d.Logger(), func(containerId uuid.UUID) http.HandlerFunc {
			return rest.ParseSlot(d.Logger(), func(index int16) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					s, err := slot.ExtractStack(input)
					if err != nil {
						w.WriteHeader(http.StatusBadRequest)
						return
					}

					m, err := NewProcessor(d.Logger(), d.Context(), db).SetSlot(o)(containerId, index, s)
					if err != nil {
						w.WriteHeader(rest.StatusFor(err, badRequest, conflict))
						return
					}

					rm, err := model.Map(slot.Transform)(model.FixedProvider(m))()
					if err != nil {
						d.Logger().WithError(err).Errorf("Creating REST model.")
						w.WriteHeader(http.StatusInternalServerError)
						return
					}

					query := r.URL.Query()
					queryParams := jsonapi.ParseQueryFields(&query)
					server.MarshalResponse[slot.RestModel](d.Logger())(w)(c.ServerInformation())(queryParams)(rm)
				}
			})
		})
	}
}
