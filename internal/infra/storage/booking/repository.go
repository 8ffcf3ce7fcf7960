package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	"github.com/freshkart/FK-DeliverySlotsService/pkg/dbmetrics"
	"github.com/freshkart/FK-DeliverySlotsService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"booking_id",
	"order_id",
	"customer_id",
	"pincode",
	"slot_id",
	"delivery_date",
	"delivery_type",
	"slot_name",
	"start_time",
	"end_time",
	"estimated_delivery",
	"customer_address",
	"customer_phone",
	"product_details",
	"delivery_charge",
	"total_weight",
	"rider_id",
	"status",
	"confirmation_code",
	"booked_at",
	"delivered_at",
}

// Repository репозиторий бронирований слотов доставки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование.
// Если в контексте передана активная транзакция (через context.Value),
// использует её - при бронировании вставка выполняется в одной транзакции
// с резервированием вместимости слота.
func (r *Repository) Create(ctx context.Context, b *domain.SlotBooking) (*domain.SlotBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	customerAddress, err := json.Marshal(b.CustomerAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - customer_address: %v", ErrEncodeDocument, err)
	}
	productDetails, err := json.Marshal(b.ProductDetails)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - product_details: %v", ErrEncodeDocument, err)
	}

	query, args, err := psqlbuilder.Insert("slot_bookings").
		Columns(
			"booking_id",
			"order_id",
			"customer_id",
			"pincode",
			"slot_id",
			"delivery_date",
			"delivery_type",
			"slot_name",
			"start_time",
			"end_time",
			"estimated_delivery",
			"customer_address",
			"customer_phone",
			"product_details",
			"delivery_charge",
			"total_weight",
			"rider_id",
			"status",
			"confirmation_code",
		).
		Values(
			b.BookingID,
			b.OrderID,
			b.CustomerID,
			b.Pincode,
			b.SlotID,
			b.DeliveryDate.Format(domain.DateFormat),
			b.DeliveryType,
			b.SlotDetails.SlotName,
			b.SlotDetails.StartTime,
			b.SlotDetails.EndTime,
			b.SlotDetails.EstimatedDelivery,
			customerAddress,
			b.CustomerPhone,
			productDetails,
			b.DeliveryCharge,
			b.TotalWeight,
			b.RiderID,
			b.Status,
			b.ConfirmationCode,
		).
		Suffix("RETURNING booked_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var bookedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&bookedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.BookedAt = bookedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, bookingID string) (*domain.SlotBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("slot_bookings").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

// GetByOrderID получает бронирование по ID заказа (индексированная колонка,
// аналог вторичного индекса OrderIndex). Дубликаты бронирований по одному
// заказу не схлопываются - возвращается самое свежее.
func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*domain.SlotBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("slot_bookings").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("booked_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

// scanBooking сканирует одну строку бронирования; JSONB колонки
// декодируются из JSON
func scanBooking(scan func(dest ...interface{}) error) (*domain.SlotBooking, error) {
	var b domain.SlotBooking
	var customerAddressRaw, productDetailsRaw []byte
	var bookedAt, deliveredAt sql.NullTime

	err := scan(
		&b.BookingID,
		&b.OrderID,
		&b.CustomerID,
		&b.Pincode,
		&b.SlotID,
		&b.DeliveryDate,
		&b.DeliveryType,
		&b.SlotDetails.SlotName,
		&b.SlotDetails.StartTime,
		&b.SlotDetails.EndTime,
		&b.SlotDetails.EstimatedDelivery,
		&customerAddressRaw,
		&b.CustomerPhone,
		&productDetailsRaw,
		&b.DeliveryCharge,
		&b.TotalWeight,
		&b.RiderID,
		&b.Status,
		&b.ConfirmationCode,
		&bookedAt,
		&deliveredAt,
	)

	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanBooking - scan row: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(customerAddressRaw, &b.CustomerAddress); err != nil {
		return nil, fmt.Errorf("%w: scanBooking - customer_address: %v", ErrDecodeDocument, err)
	}
	if err := json.Unmarshal(productDetailsRaw, &b.ProductDetails); err != nil {
		return nil, fmt.Errorf("%w: scanBooking - product_details: %v", ErrDecodeDocument, err)
	}

	b.BookedAt = bookedAt.Time
	if deliveredAt.Valid {
		b.DeliveredAt = &deliveredAt.Time
	}

	return &b, nil
}
