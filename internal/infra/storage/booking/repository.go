package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/herlindaapr/beautybook-service/internal/domain"
	"github.com/herlindaapr/beautybook-service/pkg/dbmetrics"
	"github.com/herlindaapr/beautybook-service/pkg/psqlbuilder"
)

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"user_id",
	"customer_name",
	"booking_date",
	"start_time",
	"status",
	"notes",
	"handled_by_admin_id",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование вместе с позициями услуг
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"customer_name",
			"booking_date",
			"start_time",
			"status",
			"notes",
		).
		Values(
			booking.UserID,
			booking.CustomerName,
			booking.BookingDate,
			booking.StartTime,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if err := r.insertLineItems(ctx, executor, booking.ID, booking.LineItems); err != nil {
		return nil, err
	}
	for i := range booking.LineItems {
		booking.LineItems[i].BookingID = booking.ID
	}

	return booking, nil
}

// GetByID получает бронирование по ID вместе с позициями услуг
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CustomerName,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.Status,
		&booking.Notes,
		&booking.HandledByAdminID,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	// Нормализуем статус: в старых строках встречаются legacy-написания
	booking.Status = domain.ParseStatus(string(booking.Status))

	if err := r.loadLineItems(ctx, executor, []*domain.Booking{&booking}); err != nil {
		return nil, err
	}

	return &booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadLineItems(ctx, executor, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// GetAllWithFilter получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых
//
// Если вызов происходит внутри транзакции и фильтр указывает на одну дату,
// добавляется FOR UPDATE - это путь usecase создания/переноса бронирования,
// где строки блокируются для проверки конфликтов слотов
func (r *Repository) GetAllWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)

	// Для конкретной даты сортируем по времени начала, для периода - сначала новые
	if singleDate {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadLineItems(ctx, executor, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// Reschedule обновляет дату и время бронирования
// Если replaceItems не nil, заменяет позиции услуг (только для pending бронирований,
// проверка выполняется на уровне usecase)
func (r *Repository) Reschedule(ctx context.Context, booking *domain.Booking, replaceItems []domain.BookingLineItem) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_date", booking.BookingDate).
		Set("start_time", booking.StartTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reschedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	if replaceItems == nil {
		return nil
	}

	// Полная замена позиций: удаляем старые и вставляем новые
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("booking_services").
		Where(squirrel.Eq{"booking_id": booking.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - build delete items query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Reschedule - delete old items: %v", ErrExecQuery, err)
	}

	return r.insertLineItems(ctx, executor, booking.ID, replaceItems)
}

// UpdateStatus обновляет статус бронирования
// Опционально дописывает заметку и фиксирует обработавшего администратора
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, notes *string, adminID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if notes != nil {
		updateBuilder = updateBuilder.Set("notes", *notes)
	}
	if adminID != nil {
		updateBuilder = updateBuilder.Set("handled_by_admin_id", *adminID)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountByStatus возвращает количество бронирований по каждому статусу
// Используется для админской статистики
func (r *Repository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("bookings").
		GroupBy("status").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.BookingStatus]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}
		// Legacy-написания статусов суммируются в канонический ключ
		counts[domain.ParseStatus(status)] += count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// CompletedRevenue возвращает суммарную выручку по завершённым бронированиям
func (r *Repository) CompletedRevenue(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Фильтр по всем написаниям completed, включая legacy-строки
	query, args, err := psqlbuilder.Select("COALESCE(SUM(bs.service_price * bs.quantity), 0)").
		From("booking_services bs").
		Join("bookings b ON b.id = bs.booking_id").
		Where(squirrel.Eq{"b.status": domain.StatusCompleted.Spellings()}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CompletedRevenue - build select query: %v", ErrBuildQuery, err)
	}

	var revenue int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&revenue); err != nil {
		return 0, fmt.Errorf("%w: CompletedRevenue - scan revenue: %v", ErrScanRow, err)
	}

	return revenue, nil
}

// insertLineItems вставляет позиции услуг бронирования
func (r *Repository) insertLineItems(ctx context.Context, executor DBExecutor, bookingID int64, items []domain.BookingLineItem) error {
	if len(items) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("booking_services").
		Columns(
			"booking_id",
			"service_id",
			"service_name",
			"service_price",
			"duration_minutes",
			"quantity",
		)

	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		insertBuilder = insertBuilder.Values(
			bookingID,
			item.ServiceID,
			item.ServiceName,
			item.ServicePrice,
			item.DurationMinutes,
			qty,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertLineItems - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertLineItems - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// loadLineItems загружает позиции услуг для набора бронирований одним запросом
func (r *Repository) loadLineItems(ctx context.Context, executor DBExecutor, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]int64, len(bookings))
	byID := make(map[int64]*domain.Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		byID[b.ID] = b
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"service_id",
		"service_name",
		"service_price",
		"duration_minutes",
		"quantity",
	).
		From("booking_services").
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadLineItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadLineItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.BookingLineItem
		err := rows.Scan(
			&item.ID,
			&item.BookingID,
			&item.ServiceID,
			&item.ServiceName,
			&item.ServicePrice,
			&item.DurationMinutes,
			&item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("%w: loadLineItems - scan row: %v", ErrScanRow, err)
		}

		if b, ok := byID[item.BookingID]; ok {
			b.LineItems = append(b.LineItems, item)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadLineItems - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.CustomerName,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.Status,
			&booking.Notes,
			&booking.HandledByAdminID,
			&booking.CancellationReason,
			&booking.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time
		booking.Status = domain.ParseStatus(string(booking.Status))

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
