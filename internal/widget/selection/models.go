package selection

import "github.com/m04kA/SMC-CampBooking/internal/domain"

// Leaf слот внутри раскрытой группы
type Leaf struct {
	Time      string
	Available bool
	IsPast    bool
	Reason    string // почему слот нельзя выбрать
	Selected  bool
}

// Block раскрываемый блок одного часа
type Block struct {
	Hour     string
	Label    string // "09:00"
	Disabled bool   // все слоты часа недоступны
	Expanded bool
	Leaves   []Leaf
}

func newBlock(g domain.HourGroup) Block {
	leaves := make([]Leaf, len(g.Slots))
	for i, s := range g.Slots {
		leaves[i] = Leaf{
			Time:      s.Time,
			Available: s.Available,
			IsPast:    s.IsPast,
			Reason:    unavailableReason(s),
		}
	}

	return Block{
		Hour:     g.Hour,
		Label:    g.Hour + ":00",
		Disabled: g.AllUnavailable(),
		Leaves:   leaves,
	}
}

func unavailableReason(s domain.TimeSlot) string {
	switch {
	case s.Available:
		return ""
	case s.IsPast:
		return domain.ReasonTimePassed
	default:
		return domain.ReasonTimeTaken
	}
}
