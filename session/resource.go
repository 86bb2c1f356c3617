package session

import (
	"atlas-sorter/container"
	"atlas-sorter/rest"
	"errors"
	"net/http"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) func(r *Registry) server.RouteInitializer {
	return func(db *gorm.DB) func(r *Registry) server.RouteInitializer {
		return func(sr *Registry) server.RouteInitializer {
			return func(router *mux.Router, l logrus.FieldLogger) {
				r := router.PathPrefix("/players/{playerId}/session").Subrouter()
				r.HandleFunc("", rest.RegisterHandler(l)(si)("get_session", handleGetSession(sr))).Methods(http.MethodGet)
				r.HandleFunc("", rest.RegisterInputHandler[RestModel](l)(si)("update_session", handleUpdateSession(db, sr))).Methods(http.MethodPut)
			}
		}
	}
}

func handleGetSession(sr *Registry) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParsePlayerId(d.Logger(), func(playerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				t := tenant.MustFromContext(d.Context())
				rm, err := model.Map(Transform(playerId))(model.FixedProvider(sr.Get(t.Id(), playerId)))()
				if err != nil {
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

func handleUpdateSession(db *gorm.DB, sr *Registry) rest.InputHandler[RestModel] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
		return rest.ParsePlayerId(d.Logger(), func(playerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				s, err := Extract(input)
				if err != nil {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				if id, ok := s.OpenContainerId(); ok {
					_, err = container.NewProcessor(d.Logger(), d.Context(), db).GetById(id)
					if errors.Is(err, gorm.ErrRecordNotFound) {
						w.WriteHeader(http.StatusNotFound)
						return
					}
					if err != nil {
						w.WriteHeader(http.StatusInternalServerError)
						return
					}
				}

				t := tenant.MustFromContext(d.Context())
				sr.Set(t.Id(), playerId, s)
				d.Logger().Debugf("Session of player [%s] updated. open container [%s], spectator [%t].", playerId.String(), input.OpenContainerId, s.Spectator())
				w.WriteHeader(http.StatusNoContent)
			}
		})
	}
}
