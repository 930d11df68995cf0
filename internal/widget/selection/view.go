package selection

import (
	"sync"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
)

// View состояние списка слотов: блоки по часам, раскрытый час и выбранное время
//
// Раскрытый блок и выбранный слот хранятся в одном месте (expanded, selected),
// поэтому в каждый момент раскрыто не больше одного блока и выбран не больше одного слота.
type View struct {
	mu       sync.Mutex
	blocks   []Block
	expanded string
	selected string

	form   Form
	store  TimeSlotStore
	logger Logger
}

// NewView создает пустой список слотов
func NewView(form Form, logger Logger) *View {
	return &View{
		blocks: make([]Block, 0),
		form:   form,
		logger: logger,
	}
}

// BindStore подключает хранилище выбранного времени
func (v *View) BindStore(store TimeSlotStore) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.store = store
}

// Render заменяет блоки новыми группами, сбрасывая раскрытие и выбор
func (v *View) Render(groups []domain.HourGroup) {
	blocks := make([]Block, len(groups))
	for i, g := range groups {
		blocks[i] = newBlock(g)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.blocks = blocks
	v.expanded = ""
	v.selected = ""
}

// Toggle раскрывает блок часа, закрывая остальные, или закрывает уже раскрытый
func (v *View) Toggle(hour string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	block, ok := v.findBlock(hour)
	if !ok {
		return ErrGroupNotFound
	}
	if block.Disabled {
		return ErrGroupDisabled
	}

	if v.expanded == hour {
		v.expanded = ""
	} else {
		v.expanded = hour
	}
	return nil
}

// Collapse закрывает раскрытый блок
func (v *View) Collapse() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.expanded = ""
}

// Expanded возвращает раскрытый час или пустую строку
func (v *View) Expanded() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.expanded
}

// SelectTimeSlot выбирает свободный слот: снимает прошлое выделение, сохраняет время,
// открывает форму бронирования и прокручивает к ней
func (v *View) SelectTimeSlot(t string) error {
	v.mu.Lock()
	leaf, ok := v.findLeaf(t)
	if !ok {
		v.mu.Unlock()
		return ErrSlotNotFound
	}
	if !leaf.Available {
		v.mu.Unlock()
		return ErrSlotUnavailable
	}

	if v.store != nil {
		if err := v.store.SetTimeSlot(t); err != nil {
			v.mu.Unlock()
			v.logger.Warn("SelectTimeSlot: failed to store time=%s: %v", t, err)
			return err
		}
	}
	v.selected = t
	v.mu.Unlock()

	v.form.SetTimeValue(t)
	v.form.Show()
	v.form.ScrollIntoView()

	v.logger.Info("SelectTimeSlot: time=%s selected", t)
	return nil
}

// Selected возвращает выбранное время или пустую строку
func (v *View) Selected() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected
}

// Clear снимает выделение слота
func (v *View) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = ""
}

// Blocks возвращает снимок блоков с примененными раскрытием и выделением
func (v *View) Blocks() []Block {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]Block, len(v.blocks))
	for i, b := range v.blocks {
		leaves := make([]Leaf, len(b.Leaves))
		for j, l := range b.Leaves {
			l.Selected = l.Time == v.selected && v.selected != ""
			leaves[j] = l
		}
		b.Leaves = leaves
		b.Expanded = b.Hour == v.expanded && v.expanded != ""
		out[i] = b
	}
	return out
}

func (v *View) findBlock(hour string) (Block, bool) {
	for _, b := range v.blocks {
		if b.Hour == hour {
			return b, true
		}
	}
	return Block{}, false
}

func (v *View) findLeaf(t string) (Leaf, bool) {
	for _, b := range v.blocks {
		for _, l := range b.Leaves {
			if l.Time == t {
				return l, true
			}
		}
	}
	return Leaf{}, false
}
