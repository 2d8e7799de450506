package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда одна из выбранных услуг не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrEmptySelection возвращается, когда не выбрана ни одна услуга
	ErrEmptySelection = errors.New("get_available_slots: at least one service must be selected")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("get_available_slots: internal error")
)
