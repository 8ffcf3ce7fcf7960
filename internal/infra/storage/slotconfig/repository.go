package slotconfig

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

var configColumns = []string{
	"id",
	"pincode",
	"slot_type",
	"product_type",
	"area",
	"city",
	"zone",
	"delivery_types",
	"time_slots",
	"special_rules",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигураций слотов доставки.
// Конфигурации создаются административной настройкой; путь выбора слотов
// использует репозиторий только на чтение.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигураций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPincodeAndProductType получает активную конфигурацию слотов для
// пинкода и типа товара (slot_type всегда STANDARD)
func (r *Repository) GetByPincodeAndProductType(ctx context.Context, pincode, productType string) (*domain.SlotConfiguration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("slot_configurations").
		Where(squirrel.Eq{
			"pincode":      pincode,
			"slot_type":    domain.SlotTypeStandard,
			"product_type": productType,
			"is_active":    true,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPincodeAndProductType - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	cfg, err := scanConfiguration(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// ListByPincode получает все активные конфигурации для пинкода
// (по одной на тип товара). Используется проверкой обслуживаемости.
func (r *Repository) ListByPincode(ctx context.Context, pincode string) ([]*domain.SlotConfiguration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("slot_configurations").
		Where(squirrel.Eq{
			"pincode":   pincode,
			"is_active": true,
		}).
		OrderBy("product_type ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByPincode - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPincode - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.SlotConfiguration, 0)
	for rows.Next() {
		cfg, err := scanConfiguration(rows.Scan)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByPincode - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// scanConfiguration сканирует одну строку конфигурации; JSONB колонки
// (delivery_types, time_slots, special_rules) декодируются из JSON
func scanConfiguration(scan func(dest ...interface{}) error) (*domain.SlotConfiguration, error) {
	var cfg domain.SlotConfiguration
	var deliveryTypesRaw, timeSlotsRaw, specialRulesRaw []byte
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&cfg.ID,
		&cfg.Pincode,
		&cfg.SlotType,
		&cfg.ProductType,
		&cfg.Area,
		&cfg.City,
		&cfg.Zone,
		&deliveryTypesRaw,
		&timeSlotsRaw,
		&specialRulesRaw,
		&cfg.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanConfiguration - scan row: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(deliveryTypesRaw, &cfg.DeliveryTypes); err != nil {
		return nil, fmt.Errorf("%w: scanConfiguration - delivery_types: %v", ErrDecodeDocument, err)
	}
	if err := json.Unmarshal(timeSlotsRaw, &cfg.TimeSlots); err != nil {
		return nil, fmt.Errorf("%w: scanConfiguration - time_slots: %v", ErrDecodeDocument, err)
	}
	if err := json.Unmarshal(specialRulesRaw, &cfg.SpecialRules); err != nil {
		return nil, fmt.Errorf("%w: scanConfiguration - special_rules: %v", ErrDecodeDocument, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}
