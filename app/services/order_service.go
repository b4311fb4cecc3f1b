package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/shashiranjanraj/forno/app/models"
	"github.com/shashiranjanraj/forno/app/repositories"
	"github.com/shashiranjanraj/forno/config"
	"github.com/shashiranjanraj/forno/pkg/logger"
	"github.com/shashiranjanraj/forno/pkg/rbac"
)

// OrderService owns the account-backed order ledger. Every method takes an
// already-authenticated account; authentication itself is AccountService's job.
type OrderService struct {
	orders *repositories.OrderRepository
	now    func() time.Time
}

func NewOrderService() *OrderService {
	return &OrderService{orders: repositories.NewOrderRepository(), now: time.Now}
}

// NewOrderServiceWith binds the service to an explicit repository and clock.
func NewOrderServiceWith(repo *repositories.OrderRepository, now func() time.Time) *OrderService {
	if now == nil {
		now = time.Now
	}
	return &OrderService{orders: repo, now: now}
}

// Place appends a new order for account, stamped with the current wall-clock
// time. The id is fresh within the ledger; the write is a pure append, not a
// rewrite.
func (s *OrderService) Place(account models.Account, size string) (models.Order, error) {
	normalized, err := models.ParseSize(size)
	if err != nil {
		return models.Order{}, err
	}

	existing, err := s.orders.All()
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		ID:        freshID(existing),
		Username:  account.Username,
		Size:      normalized,
		OrderTime: s.now().Format(models.TimeLayout),
	}
	if err := s.orders.Append(order); err != nil {
		return models.Order{}, err
	}

	logger.Debug("order placed", "id", order.ID, "username", order.Username, "size", order.Size)
	return order, nil
}

// List returns the orders visible to account: an ADMIN sees the whole ledger,
// everyone else only their own orders. Ledger order either way; an empty
// result is not an error.
func (s *OrderService) List(account models.Account) ([]models.Order, error) {
	if rbac.IsAdmin(account.Status) {
		return s.orders.All()
	}
	return s.orders.ByUsername(account.Username)
}

// CancelCandidates returns the orders account may cancel, in ledger order.
//
// Candidates are the account's own orders. Naming another owner requires an
// ADMIN account and the ADMIN_CANCEL_OVERRIDE config switch: elevated
// visibility does not imply elevated cancellation rights.
func (s *OrderService) CancelCandidates(account models.Account, owner string) ([]models.Order, error) {
	target := account.Username
	if owner != "" && owner != account.Username {
		if !rbac.IsAdmin(account.Status) || !config.AdminCancelOverride() {
			return nil, ErrAuthorizationDenied
		}
		target = owner
	}

	candidates, err := s.orders.ByUsername(target)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoOrdersFound
	}
	return candidates, nil
}

// Cancel removes the selection-th candidate (1-based) and rewrites the ledger,
// preserving the relative order of the surviving orders. An out-of-range
// selection fails without touching the ledger.
func (s *OrderService) Cancel(account models.Account, owner string, selection int) (models.Order, error) {
	candidates, err := s.CancelCandidates(account, owner)
	if err != nil {
		return models.Order{}, err
	}
	if selection < 1 || selection > len(candidates) {
		return models.Order{}, ErrInvalidSelection
	}
	victim := candidates[selection-1]

	all, err := s.orders.All()
	if err != nil {
		return models.Order{}, err
	}

	removed := false
	remaining := lo.Filter(all, func(o models.Order, _ int) bool {
		if !removed && o.ID == victim.ID {
			removed = true
			return false
		}
		return true
	})
	if err := s.orders.SaveAll(remaining); err != nil {
		return models.Order{}, err
	}

	logger.Debug("order cancelled", "id", victim.ID, "username", victim.Username)
	return victim, nil
}

// freshID returns an 8-hex-char id not present in existing, re-rolling on
// collision against the loaded ledger.
func freshID(existing []models.Order) string {
	taken := make(map[string]bool, len(existing))
	for _, o := range existing {
		taken[o.ID] = true
	}
	for {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		if !taken[id] {
			return id
		}
	}
}
