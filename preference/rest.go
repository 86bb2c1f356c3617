package preference

import (
	"atlas-sorter/sorting"

	"github.com/google/uuid"
)

type RestModel struct {
	Id     uuid.UUID `json:"-"`
	Method string    `json:"method"`
	Order  string    `json:"order"`
}

func (r RestModel) GetName() string {
	return "sort-preferences"
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

func Transform(playerId uuid.UUID) func(p sorting.Preference) (RestModel, error) {
	return func(p sorting.Preference) (RestModel, error) {
		return RestModel{
			Id:     playerId,
			Method: p.Method().String(),
			Order:  p.Order().String(),
		}, nil
	}
}

func Extract(rm RestModel) (sorting.Preference, error) {
	return sorting.ParsePreference(rm.Method, rm.Order)
}
