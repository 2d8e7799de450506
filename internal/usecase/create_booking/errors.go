package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда одна из выбранных услуг не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrEmptySelection возвращается, когда не выбрана ни одна услуга
	ErrEmptySelection = errors.New("create_booking: at least one service must be selected")

	// ErrCustomerNotFound возвращается, когда профиль клиента не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования (в прошлом)
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrOutsideBusinessHours возвращается, когда слот выходит за рабочие часы
	ErrOutsideBusinessHours = errors.New("create_booking: outside business hours")

	// ErrSlotConflict возвращается, когда слот конфликтует с существующей записью
	// с учётом буфера между записями
	ErrSlotConflict = errors.New("create_booking: time slot conflicts with another appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
