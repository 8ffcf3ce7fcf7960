package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	"github.com/freshkart/FK-DeliverySlotsService/pkg/dbmetrics"
	"github.com/freshkart/FK-DeliverySlotsService/pkg/psqlbuilder"
)

// Repository репозиторий счетчиков доступности слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySlotKey получает счетчик доступности по составному ключу
// (pincode, slotId, date, deliveryType)
func (r *Repository) GetBySlotKey(ctx context.Context, pincode, slotID string, date time.Time, deliveryType domain.DeliveryType) (*domain.SlotAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"pincode",
		"slot_id",
		"date",
		"delivery_type",
		"max_capacity",
		"current_bookings",
		"available_slots",
		"max_weight",
		"current_weight",
		"available_weight",
		"status",
		"last_updated",
	).
		From("slot_availability").
		Where(squirrel.Eq{
			"pincode":       pincode,
			"slot_id":       slotID,
			"date":          date.Format(domain.DateFormat),
			"delivery_type": deliveryType,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotKey - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.SlotAvailability
	var lastUpdated sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.Pincode,
		&a.SlotID,
		&a.Date,
		&a.DeliveryType,
		&a.MaxCapacity,
		&a.CurrentBookings,
		&a.AvailableSlots,
		&a.MaxWeight,
		&a.CurrentWeight,
		&a.AvailableWeight,
		&a.Status,
		&lastUpdated,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotKey - scan availability: %v", ErrScanRow, err)
	}

	a.LastUpdated = lastUpdated.Time

	return &a, nil
}

// ReserveCapacity атомарно резервирует одну единицу вместимости слота:
// currentBookings+1, availableSlots-1, currentWeight+w, availableWeight-w.
// Запись условная - выполняется только пока availableSlots >= 1 и статус
// AVAILABLE; при нулевом остатке статус переводится в FULL тем же UPDATE.
// Если условие не прошло (слот заполнился между чтением и записью, либо
// строка отсутствует), возвращает ErrSlotFull - это штатный исход,
// вызывающая сторона предлагает клиенту выбрать слот заново.
//
// Счетчики веса намеренно не участвуют в условии: вес учитывается для
// планирования загрузки курьеров, жесткого лимита по весу нет.
func (r *Repository) ReserveCapacity(ctx context.Context, pincode, slotID string, date time.Time, deliveryType domain.DeliveryType, weight decimal.Decimal) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slot_availability").
		Set("current_bookings", squirrel.Expr("current_bookings + 1")).
		Set("available_slots", squirrel.Expr("available_slots - 1")).
		Set("current_weight", squirrel.Expr("current_weight + ?", weight)).
		Set("available_weight", squirrel.Expr("available_weight - ?", weight)).
		Set("status", squirrel.Expr("CASE WHEN available_slots - 1 <= 0 THEN 'FULL' ELSE 'AVAILABLE' END")).
		Set("last_updated", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"pincode":       pincode,
			"slot_id":       slotID,
			"date":          date.Format(domain.DateFormat),
			"delivery_type": deliveryType,
			"status":        domain.AvailabilityAvailable,
		}).
		Where(squirrel.GtOrEq{"available_slots": 1}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReserveCapacity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReserveCapacity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReserveCapacity - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotFull
	}

	return nil
}
