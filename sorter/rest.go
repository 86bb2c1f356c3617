package sorter

import (
	"github.com/google/uuid"
)

type SlotRestModel struct {
	ContainerId uuid.UUID `json:"containerId"`
	Slot        int16     `json:"slot"`
	ItemId      string    `json:"itemId,omitempty"`
	Quantity    uint32    `json:"quantity"`
	Components  string    `json:"components,omitempty"`
}

type RestModel struct {
	Id     string          `json:"-"`
	Region string          `json:"region"`
	Method string          `json:"method"`
	Order  string          `json:"order"`
	Slots  []SlotRestModel `json:"slots"`
}

func (r RestModel) GetName() string {
	return "sort-results"
}

func (r RestModel) GetID() string {
	return r.Id
}

func (r *RestModel) SetID(strId string) error {
	r.Id = strId
	return nil
}

func Transform(r Result) (RestModel, error) {
	slots := make([]SlotRestModel, 0, len(r.Slots()))
	for _, s := range r.Slots() {
		st := s.Slot().Stack()
		slots = append(slots, SlotRestModel{
			ContainerId: s.ContainerId(),
			Slot:        s.Index(),
			ItemId:      st.ItemId(),
			Quantity:    st.Quantity(),
			Components:  st.Components(),
		})
	}
	return RestModel{
		Id:     r.PlayerId().String() + ":" + r.Region().String(),
		Region: r.Region().String(),
		Method: r.Preference().Method().String(),
		Order:  r.Preference().Order().String(),
		Slots:  slots,
	}, nil
}
