package container

import (
	"atlas-sorter/slot"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
)

type RestModel struct {
	Id       uuid.UUID        `json:"-"`
	OwnerId  uuid.UUID        `json:"ownerId"`
	Kind     string           `json:"kind"`
	Capacity uint32           `json:"capacity"`
	Slots    []slot.RestModel `json:"slots"`
}

func (r RestModel) GetName() string {
	return "containers"
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

func Transform(m Model) (RestModel, error) {
	ss, err := model.SliceMap(slot.Transform)(model.FixedProvider(m.Slots()))()()
	if err != nil {
		return RestModel{}, err
	}
	return RestModel{
		Id:       m.id,
		OwnerId:  m.ownerId,
		Kind:     string(m.kind),
		Capacity: m.capacity,
		Slots:    ss,
	}, nil
}
