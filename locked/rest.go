package locked

import (
	"atlas-sorter/region"

	"github.com/google/uuid"
)

type RestModel struct {
	Id           uuid.UUID `json:"-"`
	Slots        []int16   `json:"slots"`
	LockedMain   int       `json:"lockedMain"`
	LockedHotbar int       `json:"lockedHotbar"`
}

func (r RestModel) GetName() string {
	return "locked-slots"
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

func Transform(playerId uuid.UUID) func(m Model) (RestModel, error) {
	return func(m Model) (RestModel, error) {
		return RestModel{
			Id:           playerId,
			Slots:        m.Slots(),
			LockedMain:   m.CountInRange(region.MainStart, region.MainEnd),
			LockedHotbar: m.CountInRange(region.HotbarStart, region.HotbarEnd),
		}, nil
	}
}
