package services

import (
	"time"

	"github.com/samber/lo"

	"github.com/shashiranjanraj/forno/app/models"
	"github.com/shashiranjanraj/forno/app/repositories"
	"github.com/shashiranjanraj/forno/pkg/crypt"
	"github.com/shashiranjanraj/forno/pkg/logger"
	"github.com/shashiranjanraj/forno/pkg/validate"
)

// LegacyOrderService implements the password-per-order model that predates
// the account registry. Each order carries its own secret; the only elevated
// credential is the configured admin override. This model is kept strictly
// separate from the account-backed one — their authorization rules never mix.
type LegacyOrderService struct {
	orders *repositories.LegacyOrderRepository
	now    func() time.Time
}

func NewLegacyOrderService() *LegacyOrderService {
	return &LegacyOrderService{orders: repositories.NewLegacyOrderRepository(), now: time.Now}
}

// NewLegacyOrderServiceWith binds the service to an explicit repository and clock.
func NewLegacyOrderServiceWith(repo *repositories.LegacyOrderRepository, now func() time.Time) *LegacyOrderService {
	if now == nil {
		now = time.Now
	}
	return &LegacyOrderService{orders: repo, now: now}
}

// CreateInput is the validated input for Create.
type CreateInput struct {
	Customer string `json:"customer" validate:"required,min=1,max=64"`
	Password string `json:"password" validate:"required,min=1,max=128"`
	Size     string `json:"size"     validate:"nullable,in=small,medium,large"`
}

// Create appends a new legacy order stamped with the current wall-clock time.
func (s *LegacyOrderService) Create(in CreateInput) (models.LegacyOrder, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return models.LegacyOrder{}, validationError(errs)
	}

	size, err := models.ParseSize(in.Size)
	if err != nil {
		return models.LegacyOrder{}, err
	}

	order := models.LegacyOrder{
		Customer:  in.Customer,
		Size:      size,
		OrderTime: s.now().Format(models.TimeLayout),
		Password:  in.Password,
	}
	if err := s.orders.Append(order); err != nil {
		return models.LegacyOrder{}, err
	}

	logger.Debug("legacy order created", "customer", order.Customer, "size", order.Size)
	return order, nil
}

// Cancel removes the first order (in file order) for customer whose password
// matches, or — when password is the configured admin override — the first
// order for customer regardless of its own password. The returned flag
// reports whether the override was used.
func (s *LegacyOrderService) Cancel(customer, password string) (models.LegacyOrder, bool, error) {
	all, err := s.orders.All()
	if err != nil {
		return models.LegacyOrder{}, false, err
	}

	customerOrders := lo.Filter(all, func(o models.LegacyOrder, _ int) bool {
		return o.Customer == customer
	})
	if len(customerOrders) == 0 {
		return models.LegacyOrder{}, false, ErrNoOrdersFound
	}

	override := crypt.VerifyOverride(password)
	idx := -1
	for i, o := range all {
		if o.Customer == customer && (o.Password == password || override) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.LegacyOrder{}, false, ErrInvalidCredentials
	}
	victim := all[idx]

	remaining := append(all[:idx:idx], all[idx+1:]...)
	if err := s.orders.SaveAll(remaining); err != nil {
		return models.LegacyOrder{}, false, err
	}

	logger.Debug("legacy order cancelled", "customer", customer, "override", override)
	return victim, override, nil
}

// List returns every legacy order in file order, plus whether adminPassword
// matches the configured override (which entitles the caller to see per-order
// passwords). A wrong non-empty credential is reported so the surface can
// warn and fall back to the non-revealing view.
func (s *LegacyOrderService) List(adminPassword string) (orders []models.LegacyOrder, reveal bool, err error) {
	all, err := s.orders.All()
	if err != nil {
		return nil, false, err
	}
	return all, crypt.VerifyOverride(adminPassword), nil
}
