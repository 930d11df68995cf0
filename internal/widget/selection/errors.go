package selection

import "errors"

var (
	// ErrGroupNotFound возвращается, когда часа нет среди отрисованных групп
	ErrGroupNotFound = errors.New("selection: hour group not found")

	// ErrGroupDisabled возвращается при попытке раскрыть группу без свободных слотов
	ErrGroupDisabled = errors.New("selection: hour group is disabled")

	// ErrSlotNotFound возвращается, когда слота нет среди отрисованных
	ErrSlotNotFound = errors.New("selection: time slot not found")

	// ErrSlotUnavailable возвращается при выборе занятого или прошедшего слота
	ErrSlotUnavailable = errors.New("selection: time slot is not available")
)
