package identity

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identity client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что identity-сервис недоступен и следует использовать
	// плейсхолдер вместо имени клиента
	ErrServiceDegraded = errors.New("identity service unavailable: graceful degradation applied")
)
