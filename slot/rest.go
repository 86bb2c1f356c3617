package slot

import (
	"atlas-sorter/stack"
	"strconv"
)

type RestModel struct {
	Id         uint32 `json:"-"`
	Slot       int16  `json:"slot"`
	Kind       string `json:"kind"`
	ItemId     string `json:"itemId"`
	Quantity   uint32 `json:"quantity"`
	Components string `json:"components,omitempty"`
}

func (r RestModel) GetName() string {
	return "slots"
}

func (r RestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *RestModel) SetID(strId string) error {
	if strId == "" {
		return nil
	}
	id, err := strconv.Atoi(strId)
	if err != nil {
		return err
	}
	r.Id = uint32(id)
	return nil
}

func Transform(m Model) (RestModel, error) {
	return RestModel{
		Id:         m.id,
		Slot:       m.index,
		Kind:       string(m.kind),
		ItemId:     m.stack.ItemId(),
		Quantity:   m.stack.Quantity(),
		Components: m.stack.Components(),
	}, nil
}

// ExtractStack reads the stack portion of a rest model.
func ExtractStack(rm RestModel) (stack.Model, error) {
	return stack.NewBuilder(rm.ItemId).
		SetQuantity(rm.Quantity).
		SetComponents(rm.Components).
		Build(), nil
}
