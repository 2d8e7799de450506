package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("reschedule_booking: access denied")

	// ErrBookingFinalized возвращается при попытке перенести завершённое или отменённое бронирование
	ErrBookingFinalized = errors.New("reschedule_booking: booking is already finalized")

	// ErrServicesLocked возвращается при попытке изменить состав услуг после подтверждения
	ErrServicesLocked = errors.New("reschedule_booking: services can no longer be changed, only the appointment time")

	// ErrServiceNotFound возвращается, когда одна из выбранных услуг не найдена
	ErrServiceNotFound = errors.New("reschedule_booking: service not found")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("reschedule_booking: invalid booking date")

	// ErrOutsideBusinessHours возвращается, когда слот выходит за рабочие часы
	ErrOutsideBusinessHours = errors.New("reschedule_booking: slot is outside business hours")

	// ErrSlotConflict возвращается при пересечении с другим бронированием
	ErrSlotConflict = errors.New("reschedule_booking: slot conflicts with an existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("reschedule_booking: internal error")
)
