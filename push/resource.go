package push

import (
	"atlas-sorter/player"
	"atlas-sorter/rest"
	"atlas-sorter/snapshot"
	"atlas-sorter/sorting"
	"net/http"

	"github.com/Chronicle20/atlas-rest/server"
	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) func(hub *Hub, locks *player.LockRegistry, defaults sorting.Preference) server.RouteInitializer {
	return func(db *gorm.DB) func(hub *Hub, locks *player.LockRegistry, defaults sorting.Preference) server.RouteInitializer {
		return func(hub *Hub, locks *player.LockRegistry, defaults sorting.Preference) server.RouteInitializer {
			return func(router *mux.Router, l logrus.FieldLogger) {
				register := rest.RegisterHandler(l)(si)
				router.HandleFunc("/players/{playerId}/sort/sync", register("sort_sync", handleSync(db, hub, locks, defaults))).Methods(http.MethodGet)
			}
		}
	}
}

// handleSync upgrades to a websocket, sends the current snapshot and then streams changes until the
// client disconnects. Client frames are read only to detect the close.
func handleSync(db *gorm.DB, hub *Hub, locks *player.LockRegistry, defaults sorting.Preference) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParsePlayerId(d.Logger(), func(playerId uuid.UUID) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				t := tenant.MustFromContext(d.Context())
				conn, err := upgrader.Upgrade(w, r, nil)
				if err != nil {
					d.Logger().WithError(err).Errorf("Unable to upgrade sync connection for player [%s].", playerId.String())
					return
				}

				s := hub.Subscribe(t.Id(), playerId, conn)
				defer func() {
					hub.Unsubscribe(t.Id(), playerId, s)
					_ = conn.Close()
				}()

				m, err := snapshot.NewProcessor(d.Logger(), d.Context(), db, locks, defaults).GetByPlayerId(playerId)
				if err != nil {
					d.Logger().WithError(err).Errorf("Unable to retrieve sort snapshot for player [%s].", playerId.String())
					return
				}
				rm, err := snapshot.Transform(m)
				if err != nil {
					d.Logger().WithError(err).Errorf("Creating REST model.")
					return
				}
				if err = s.WriteJSON(Envelope{Type: EnvelopeTypeSnapshot, PlayerId: playerId, Body: rm}); err != nil {
					return
				}

				for {
					if _, _, err = conn.ReadMessage(); err != nil {
						if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
							d.Logger().WithError(err).Debugf("Sync connection for player [%s] closed unexpectedly.", playerId.String())
						}
						return
					}
				}
			}
		})
	}
}
