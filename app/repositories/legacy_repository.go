package repositories

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/shashiranjanraj/forno/app/models"
	"github.com/shashiranjanraj/forno/config"
	"github.com/shashiranjanraj/forno/pkg/storage"
	"github.com/shashiranjanraj/forno/pkg/tabular"
)

// LegacyOrderRepository handles the password-per-order table.
type LegacyOrderRepository struct {
	disk storage.Disk
	path string
}

func NewLegacyOrderRepository() *LegacyOrderRepository {
	return &LegacyOrderRepository{disk: storage.Default(), path: config.LegacyOrdersFile()}
}

// NewLegacyOrderRepositoryOn binds the repository to an explicit disk and path.
func NewLegacyOrderRepositoryOn(d storage.Disk, path string) *LegacyOrderRepository {
	return &LegacyOrderRepository{disk: d, path: path}
}

// All returns every legacy order in file order.
func (r *LegacyOrderRepository) All() ([]models.LegacyOrder, error) {
	records, err := tabular.Load(r.disk, r.path, models.LegacyOrderFields)
	if err != nil {
		return nil, err
	}

	orders := make([]models.LegacyOrder, 0, len(records))
	for _, rec := range records {
		size, err := models.ParseSize(rec["size"])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", tabular.ErrStorageUnavailable, r.path, err)
		}
		orders = append(orders, models.LegacyOrder{
			Customer:  rec["customer"],
			Size:      size,
			OrderTime: rec["order_time"],
			Password:  rec["password"],
		})
	}
	return orders, nil
}

// SaveAll rewrites the legacy table in full, preserving the given order.
func (r *LegacyOrderRepository) SaveAll(orders []models.LegacyOrder) error {
	records := lo.Map(orders, func(o models.LegacyOrder, _ int) tabular.Record {
		return legacyRecord(o)
	})
	return tabular.Save(r.disk, r.path, models.LegacyOrderFields, records)
}

// Append adds one legacy order without rewriting the table.
func (r *LegacyOrderRepository) Append(o models.LegacyOrder) error {
	return tabular.Append(r.disk, r.path, models.LegacyOrderFields, legacyRecord(o))
}

func legacyRecord(o models.LegacyOrder) tabular.Record {
	return tabular.Record{
		"customer":   o.Customer,
		"size":       o.Size,
		"order_time": o.OrderTime,
		"password":   o.Password,
	}
}
