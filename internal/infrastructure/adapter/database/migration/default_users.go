package migration

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
)

// DefaultAccount is an account seeded into development databases
type DefaultAccount struct {
	Email string
	Name  string
}

// DefaultAccounts are the accounts seeded in development
var DefaultAccounts = []DefaultAccount{
	{Email: "dev@image2code.local", Name: "Developer"},
	{Email: "qa@image2code.local", Name: "QA"},
}

// CreateDefaultUsers makes sure every default account exists; existing accounts are left untouched
func CreateDefaultUsers(ctx context.Context, users usecase.UserUseCase, accounts []DefaultAccount) (int, error) {
	created := 0
	for _, account := range accounts {
		_, isNew, err := users.SyncUser(ctx, account.Email, account.Name)
		if err != nil {
			return created, err
		}
		if isNew {
			created++
		}
	}
	return created, nil
}
