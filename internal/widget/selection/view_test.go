package selection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
	"github.com/m04kA/SMC-CampBooking/pkg/logger"
)

type fakeForm struct {
	value    string
	visible  bool
	scrolled int
}

func (f *fakeForm) SetTimeValue(t string) { f.value = t }
func (f *fakeForm) Show()                 { f.visible = true }
func (f *fakeForm) ScrollIntoView()       { f.scrolled++ }

type fakeStore struct {
	value string
	err   error
}

func (s *fakeStore) SetTimeSlot(t string) error {
	if s.err != nil {
		return s.err
	}
	s.value = t
	return nil
}

func testGroups() []domain.HourGroup {
	return []domain.HourGroup{
		{Hour: "09", Slots: []domain.TimeSlot{
			{Time: "09:00", Available: false, IsPast: true},
			{Time: "09:15", Available: false},
		}},
		{Hour: "10", Slots: []domain.TimeSlot{
			{Time: "10:00", Available: true},
			{Time: "10:15", Available: false},
			{Time: "10:30", Available: true},
		}},
		{Hour: "11", Slots: []domain.TimeSlot{
			{Time: "11:00", Available: true},
		}},
	}
}

func newTestView() (*View, *fakeForm, *fakeStore) {
	form := &fakeForm{}
	store := &fakeStore{}
	v := NewView(form, logger.NewNop())
	v.BindStore(store)
	v.Render(testGroups())
	return v, form, store
}

func TestRender_Blocks(t *testing.T) {
	v, _, _ := newTestView()

	blocks := v.Blocks()
	require.Len(t, blocks, 3)

	assert.Equal(t, "09:00", blocks[0].Label)
	assert.True(t, blocks[0].Disabled)
	assert.Equal(t, domain.ReasonTimePassed, blocks[0].Leaves[0].Reason)
	assert.Equal(t, domain.ReasonTimeTaken, blocks[0].Leaves[1].Reason)

	assert.Equal(t, "10:00", blocks[1].Label)
	assert.False(t, blocks[1].Disabled)
	assert.Equal(t, "", blocks[1].Leaves[0].Reason)
	assert.Equal(t, domain.ReasonTimeTaken, blocks[1].Leaves[1].Reason)

	for _, b := range blocks {
		assert.False(t, b.Expanded)
	}
}

func TestToggle_OnlyOneExpanded(t *testing.T) {
	v, _, _ := newTestView()

	require.NoError(t, v.Toggle("10"))
	assert.Equal(t, "10", v.Expanded())

	require.NoError(t, v.Toggle("11"))
	assert.Equal(t, "11", v.Expanded())

	expanded := 0
	for _, b := range v.Blocks() {
		if b.Expanded {
			expanded++
			assert.Equal(t, "11", b.Hour)
		}
	}
	assert.Equal(t, 1, expanded)

	require.NoError(t, v.Toggle("11"))
	assert.Equal(t, "", v.Expanded())
}

func TestToggle_DisabledAndUnknown(t *testing.T) {
	v, _, _ := newTestView()

	assert.ErrorIs(t, v.Toggle("09"), ErrGroupDisabled)
	assert.ErrorIs(t, v.Toggle("12"), ErrGroupNotFound)
	assert.Equal(t, "", v.Expanded())
}

func TestSelectTimeSlot(t *testing.T) {
	v, form, store := newTestView()
	require.NoError(t, v.Toggle("10"))

	require.NoError(t, v.SelectTimeSlot("10:00"))
	assert.Equal(t, "10:00", v.Selected())
	assert.Equal(t, "10:00", store.value)
	assert.Equal(t, "10:00", form.value)
	assert.True(t, form.visible)
	assert.Equal(t, 1, form.scrolled)

	require.NoError(t, v.SelectTimeSlot("10:30"))

	selected := make([]string, 0)
	for _, b := range v.Blocks() {
		for _, l := range b.Leaves {
			if l.Selected {
				selected = append(selected, l.Time)
			}
		}
	}
	assert.Equal(t, []string{"10:30"}, selected)
	assert.Equal(t, "10:30", store.value)
}

func TestSelectTimeSlot_Rejected(t *testing.T) {
	v, form, store := newTestView()

	assert.ErrorIs(t, v.SelectTimeSlot("10:15"), ErrSlotUnavailable)
	assert.ErrorIs(t, v.SelectTimeSlot("09:00"), ErrSlotUnavailable)
	assert.ErrorIs(t, v.SelectTimeSlot("12:00"), ErrSlotNotFound)

	assert.Equal(t, "", v.Selected())
	assert.Equal(t, "", store.value)
	assert.False(t, form.visible)
}

func TestSelectTimeSlot_StoreError(t *testing.T) {
	v, form, store := newTestView()
	store.err = errors.New("no date")

	err := v.SelectTimeSlot("10:00")

	assert.EqualError(t, err, "no date")
	assert.Equal(t, "", v.Selected())
	assert.False(t, form.visible)
}

func TestRender_ResetsState(t *testing.T) {
	v, _, _ := newTestView()
	require.NoError(t, v.Toggle("10"))
	require.NoError(t, v.SelectTimeSlot("10:00"))

	v.Render(testGroups()[1:])

	assert.Equal(t, "", v.Expanded())
	assert.Equal(t, "", v.Selected())
	assert.Len(t, v.Blocks(), 2)
}

func TestBlocks_ReturnsCopy(t *testing.T) {
	v, _, _ := newTestView()

	blocks := v.Blocks()
	blocks[1].Leaves[0].Available = false

	require.NoError(t, v.SelectTimeSlot("10:00"))
}

func TestClear(t *testing.T) {
	v, _, _ := newTestView()
	require.NoError(t, v.SelectTimeSlot("11:00"))

	v.Clear()

	assert.Equal(t, "", v.Selected())
}
