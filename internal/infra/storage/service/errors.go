package service

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service.repository: service not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("service.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("service.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("service.repository: failed to scan row")

	// ErrDuplicateName возвращается при попытке создать услугу с существующим именем
	ErrDuplicateName = errors.New("service.repository: duplicate service name")

	// ErrServiceInUse возвращается при попытке удалить услугу с активными бронированиями
	ErrServiceInUse = errors.New("service.repository: service has active bookings")
)
