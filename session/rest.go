package session

import "github.com/google/uuid"

type RestModel struct {
	Id              uuid.UUID `json:"-"`
	OpenContainerId string    `json:"openContainerId,omitempty"`
	Spectator       bool      `json:"spectator"`
}

func (r RestModel) GetName() string {
	return "sessions"
}

func (r RestModel) GetID() string {
	return r.Id.String()
}

func (r *RestModel) SetID(strId string) error {
	if strId == "" {
		return nil
	}
	id, err := uuid.Parse(strId)
	if err != nil {
		return err
	}
	r.Id = id
	return nil
}

func Transform(playerId uuid.UUID) func(s State) (RestModel, error) {
	return func(s State) (RestModel, error) {
		rm := RestModel{Id: playerId, Spectator: s.spectator}
		if id, ok := s.OpenContainerId(); ok {
			rm.OpenContainerId = id.String()
		}
		return rm, nil
	}
}

func Extract(rm RestModel) (State, error) {
	if rm.OpenContainerId == "" {
		return NewState(uuid.Nil, rm.Spectator), nil
	}
	id, err := uuid.Parse(rm.OpenContainerId)
	if err != nil {
		return State{}, err
	}
	return NewState(id, rm.Spectator), nil
}
