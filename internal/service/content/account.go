package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/studyhub/backend/internal/adapter/postgres/account"
	"github.com/studyhub/backend/internal/domain"
	"github.com/studyhub/backend/pkg/ctxutil"
)

// RegisterAccount creates a new account from an identity-provider handoff.
// The external ID and email must be globally unique; a duplicate surfaces as
// a conflict naming the offending field.
func (s *Service) RegisterAccount(ctx context.Context, input CreateAccountInput) (domain.Account, error) {
	if err := input.Validate(); err != nil {
		return domain.Account{}, err
	}

	acc, err := s.accounts.Create(ctx, account.CreateParams{
		ExternalID:  input.ExternalID,
		Email:       input.Email,
		Name:        input.Name,
		Role:        input.Role,
		Preferences: input.Preferences,
	})
	if err != nil {
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.String("account_id", acc.ID.String()),
		slog.String("role", acc.Role.String()),
	)

	return acc, nil
}

// GetAccount returns the caller's own account.
func (s *Service) GetAccount(ctx context.Context) (domain.Account, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return domain.Account{}, fmt.Errorf("get account: %w", err)
	}
	return acc, nil
}

// GetAccountByEmail looks an account up by contact address.
// Restricted to administrators.
func (s *Service) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	role, _ := ctxutil.RoleFromCtx(ctx)
	if !role.CanApproveMentors() {
		return domain.Account{}, domain.ErrForbidden
	}

	acc, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return domain.Account{}, fmt.Errorf("get account by email: %w", err)
	}
	return acc, nil
}

// UpdateAccount applies a merge patch to the caller's own account.
func (s *Service) UpdateAccount(ctx context.Context, input UpdateAccountInput) (domain.Account, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Account{}, err
	}

	acc, err := s.accounts.Update(ctx, accountID, account.Patch{
		Name:        input.Name,
		Preferences: input.Preferences,
		Active:      input.Active,
	})
	if err != nil {
		return domain.Account{}, fmt.Errorf("update account: %w", err)
	}
	return acc, nil
}

// UpdateAccountRole changes another account's role.
// Restricted to administrators.
func (s *Service) UpdateAccountRole(ctx context.Context, accountID string, newRole domain.AccountRole) (domain.Account, error) {
	role, _ := ctxutil.RoleFromCtx(ctx)
	if !role.CanApproveMentors() {
		return domain.Account{}, domain.ErrForbidden
	}

	if !newRole.IsValid() {
		return domain.Account{}, domain.NewValidationError("role", "unknown role")
	}

	id, err := parseID(accountID)
	if err != nil {
		return domain.Account{}, err
	}

	acc, err := s.accounts.Update(ctx, id, account.Patch{Role: &newRole})
	if err != nil {
		return domain.Account{}, fmt.Errorf("update account role: %w", err)
	}

	s.log.InfoContext(ctx, "account role changed",
		slog.String("account_id", acc.ID.String()),
		slog.String("role", newRole.String()),
	)

	return acc, nil
}

// DeactivateAccount clears the caller's active flag. Owned content stays in
// place; only explicit deletes remove data.
func (s *Service) DeactivateAccount(ctx context.Context) error {
	accountID, err := tenantID(ctx)
	if err != nil {
		return err
	}

	if err := s.accounts.Deactivate(ctx, accountID); err != nil {
		return fmt.Errorf("deactivate account: %w", err)
	}

	s.log.InfoContext(ctx, "account deactivated",
		slog.String("account_id", accountID.String()),
	)

	return nil
}
