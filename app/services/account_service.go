// Package services implements forno's account and order operations on top of
// the repositories. Authorization decisions live here; the command surface
// only parses input and renders results.
package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shashiranjanraj/forno/app/models"
	"github.com/shashiranjanraj/forno/app/repositories"
	"github.com/shashiranjanraj/forno/pkg/logger"
	"github.com/shashiranjanraj/forno/pkg/rbac"
	"github.com/shashiranjanraj/forno/pkg/validate"
)

// AccountService owns authentication and account administration.
type AccountService struct {
	accounts *repositories.AccountRepository
}

func NewAccountService() *AccountService {
	return &AccountService{accounts: repositories.NewAccountRepository()}
}

// NewAccountServiceWith binds the service to an explicit repository.
func NewAccountServiceWith(repo *repositories.AccountRepository) *AccountService {
	return &AccountService{accounts: repo}
}

// CreateAccountInput is the validated input for CreateAccount.
type CreateAccountInput struct {
	Username string `json:"username" validate:"required,alpha_dash,min=2,max=64"`
	Password string `json:"password" validate:"required,min=1,max=128"`
	Status   string `json:"status"   validate:"nullable"`
}

// CreateAccount registers a new account. Creation is unauthenticated; the
// status option exists for bootstrapping an administrator, it is not a
// security boundary.
func (s *AccountService) CreateAccount(in CreateAccountInput) (models.Account, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return models.Account{}, validationError(errs)
	}

	status := rbac.RoleUser
	if in.Status != "" {
		normalized, ok := rbac.Normalize(in.Status)
		if !ok {
			return models.Account{}, fmt.Errorf("unknown status %q (want USER or ADMIN)", in.Status)
		}
		status = normalized
	}

	_, exists, err := s.accounts.FindByUsername(in.Username)
	if err != nil {
		return models.Account{}, err
	}
	if exists {
		return models.Account{}, ErrDuplicateAccount
	}

	account := models.Account{
		Username: in.Username,
		Password: in.Password,
		Status:   status,
	}
	if err := s.accounts.Append(account); err != nil {
		return models.Account{}, err
	}

	logger.Debug("account created", "username", account.Username, "status", account.Status)
	return account, nil
}

// Authenticate returns the account matching both username and password
// exactly. Every mutating operation except account creation goes through
// this gate first.
func (s *AccountService) Authenticate(username, password string) (models.Account, error) {
	accounts, err := s.accounts.All()
	if err != nil {
		return models.Account{}, err
	}
	for _, a := range accounts {
		if a.Username == username && a.Password == password {
			return a, nil
		}
	}
	return models.Account{}, ErrInvalidCredentials
}

// DeleteAccount removes target from the registry.
//
// An ADMIN may delete any account except itself — the self-deletion guard
// keeps the registry from losing its last administrator. A USER may delete
// only its own account. Exactly one record is removed even if the table
// somehow holds duplicates.
func (s *AccountService) DeleteAccount(requester models.Account, target string) error {
	if requester.Username == target {
		if rbac.IsAdmin(requester.Status) {
			return ErrAuthorizationDenied
		}
	} else if !rbac.IsAdmin(requester.Status) {
		return ErrAuthorizationDenied
	}

	accounts, err := s.accounts.All()
	if err != nil {
		return err
	}

	idx := -1
	for i, a := range accounts {
		if a.Username == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrAccountNotFound
	}

	remaining := append(accounts[:idx:idx], accounts[idx+1:]...)
	if err := s.accounts.SaveAll(remaining); err != nil {
		return err
	}

	logger.Debug("account deleted", "target", target, "requester", requester.Username)
	return nil
}

// Promote elevates target from USER to ADMIN. The promotion is irreversible
// through this surface. Promoting an account that is already ADMIN is not an
// error; the boolean reports that nothing changed.
func (s *AccountService) Promote(requester models.Account, target string) (already bool, err error) {
	if !rbac.IsAdmin(requester.Status) {
		return false, ErrAuthorizationDenied
	}
	if requester.Username == target {
		return false, ErrAuthorizationDenied
	}

	accounts, err := s.accounts.All()
	if err != nil {
		return false, err
	}

	idx := -1
	for i, a := range accounts {
		if a.Username == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, ErrAccountNotFound
	}
	if rbac.IsAdmin(accounts[idx].Status) {
		return true, nil
	}

	accounts[idx].Status = rbac.RoleAdmin
	if err := s.accounts.SaveAll(accounts); err != nil {
		return false, err
	}

	logger.Debug("account promoted", "target", target, "requester", requester.Username)
	return false, nil
}

// validationError folds a validate.Struct result into one error line,
// field-sorted so the message is stable.
func validationError(errs map[string]string) error {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, errs[f])
	}
	return errors.New(strings.Join(msgs, " "))
}
