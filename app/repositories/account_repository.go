// Package repositories maps forno's entities onto their flat tables.
//
// Every repository follows the same read-modify-write discipline: load the
// whole table, change the in-memory slice, save the whole table. There is no
// cross-invocation locking; overlapping invocations are last-writer-wins.
package repositories

import (
	"github.com/samber/lo"

	"github.com/shashiranjanraj/forno/app/models"
	"github.com/shashiranjanraj/forno/config"
	"github.com/shashiranjanraj/forno/pkg/storage"
	"github.com/shashiranjanraj/forno/pkg/tabular"
)

// AccountRepository handles table operations for Account.
type AccountRepository struct {
	disk storage.Disk
	path string
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{disk: storage.Default(), path: config.AccountsFile()}
}

// NewAccountRepositoryOn binds the repository to an explicit disk and path.
func NewAccountRepositoryOn(d storage.Disk, path string) *AccountRepository {
	return &AccountRepository{disk: d, path: path}
}

// All returns every account in table order.
func (r *AccountRepository) All() ([]models.Account, error) {
	records, err := tabular.Load(r.disk, r.path, models.AccountFields)
	if err != nil {
		return nil, err
	}
	return lo.Map(records, func(rec tabular.Record, _ int) models.Account {
		return models.Account{
			Username: rec["username"],
			Password: rec["password"],
			Status:   rec["status"],
		}
	}), nil
}

// FindByUsername looks up an account by its unique username.
func (r *AccountRepository) FindByUsername(username string) (models.Account, bool, error) {
	accounts, err := r.All()
	if err != nil {
		return models.Account{}, false, err
	}
	account, found := lo.Find(accounts, func(a models.Account) bool {
		return a.Username == username
	})
	return account, found, nil
}

// SaveAll rewrites the accounts table in full.
func (r *AccountRepository) SaveAll(accounts []models.Account) error {
	records := lo.Map(accounts, func(a models.Account, _ int) tabular.Record {
		return accountRecord(a)
	})
	return tabular.Save(r.disk, r.path, models.AccountFields, records)
}

// Append adds one account without rewriting the table.
func (r *AccountRepository) Append(a models.Account) error {
	return tabular.Append(r.disk, r.path, models.AccountFields, accountRecord(a))
}

func accountRecord(a models.Account) tabular.Record {
	return tabular.Record{
		"username": a.Username,
		"password": a.Password,
		"status":   a.Status,
	}
}
