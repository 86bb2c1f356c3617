package snapshot

import (
	"atlas-sorter/sorting"

	"github.com/google/uuid"
)

type RestModel struct {
	Id           uuid.UUID `json:"-"`
	Method       string    `json:"method"`
	Order        string    `json:"order"`
	LockedSlots  []int16   `json:"lockedSlots"`
	LockedMain   int       `json:"lockedMain"`
	LockedHotbar int       `json:"lockedHotbar"`
}

func (r RestModel) GetName() string {
	return "sort-snapshots"
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
	return RestModel{
		Id:           m.playerId,
		Method:       m.preference.Method().String(),
		Order:        m.preference.Order().String(),
		LockedSlots:  m.locked.Slots(),
		LockedMain:   m.LockedMain(),
		LockedHotbar: m.LockedHotbar(),
	}, nil
}

type DefaultsRestModel struct {
	Id      string   `json:"-"`
	Method  string   `json:"method"`
	Order   string   `json:"order"`
	Methods []string `json:"methods"`
	Orders  []string `json:"orders"`
}

func (r DefaultsRestModel) GetName() string {
	return "sort-defaults"
}

func (r DefaultsRestModel) GetID() string {
	return r.Id
}

func (r *DefaultsRestModel) SetID(strId string) error {
	r.Id = strId
	return nil
}

func TransformDefaults(p sorting.Preference) (DefaultsRestModel, error) {
	rm := DefaultsRestModel{
		Id:     "defaults",
		Method: p.Method().String(),
		Order:  p.Order().String(),
	}
	for _, m := range sorting.Methods {
		rm.Methods = append(rm.Methods, m.String())
	}
	for _, o := range sorting.Orders {
		rm.Orders = append(rm.Orders, o.String())
	}
	return rm, nil
}
