package repositories

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/shashiranjanraj/forno/app/models"
	"github.com/shashiranjanraj/forno/config"
	"github.com/shashiranjanraj/forno/pkg/storage"
	"github.com/shashiranjanraj/forno/pkg/tabular"
)

// OrderRepository handles table operations for the account-backed ledger.
type OrderRepository struct {
	disk storage.Disk
	path string
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{disk: storage.Default(), path: config.OrdersFile()}
}

// NewOrderRepositoryOn binds the repository to an explicit disk and path.
func NewOrderRepositoryOn(d storage.Disk, path string) *OrderRepository {
	return &OrderRepository{disk: d, path: path}
}

// All returns every order in ledger order. A stored size outside the three
// recognized values is a table failure: display logic switches on size, so it
// must never see anything else.
func (r *OrderRepository) All() ([]models.Order, error) {
	records, err := tabular.Load(r.disk, r.path, models.OrderFields)
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(records))
	for _, rec := range records {
		size, err := models.ParseSize(rec["size"])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", tabular.ErrStorageUnavailable, r.path, err)
		}
		orders = append(orders, models.Order{
			ID:        rec["id"],
			Username:  rec["username"],
			Size:      size,
			OrderTime: rec["order_time"],
		})
	}
	return orders, nil
}

// ByUsername returns the orders owned by username, in ledger order.
func (r *OrderRepository) ByUsername(username string) ([]models.Order, error) {
	orders, err := r.All()
	if err != nil {
		return nil, err
	}
	return lo.Filter(orders, func(o models.Order, _ int) bool {
		return o.Username == username
	}), nil
}

// SaveAll rewrites the ledger in full, preserving the given order.
func (r *OrderRepository) SaveAll(orders []models.Order) error {
	records := lo.Map(orders, func(o models.Order, _ int) tabular.Record {
		return orderRecord(o)
	})
	return tabular.Save(r.disk, r.path, models.OrderFields, records)
}

// Append adds one order without rewriting the ledger.
func (r *OrderRepository) Append(o models.Order) error {
	return tabular.Append(r.disk, r.path, models.OrderFields, orderRecord(o))
}

func orderRecord(o models.Order) tabular.Record {
	return tabular.Record{
		"id":         o.ID,
		"username":   o.Username,
		"size":       o.Size,
		"order_time": o.OrderTime,
	}
}
