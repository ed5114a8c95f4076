package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth_test

type accountStore interface {
	DeleteUserData(ctx context.Context, userID string) (DeletedCounts, error)
}

type revoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

type userCacheInvalidator interface {
	InvalidateUser(userID string)
}

type Service struct {
	accounts    accountStore
	revocations revoker
	caches      []userCacheInvalidator
	now         func() time.Time
}

func NewService(accounts accountStore, revocations revoker, caches ...userCacheInvalidator) *Service {
	return &Service{
		accounts:    accounts,
		revocations: revocations,
		caches:      caches,
		now:         time.Now,
	}
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, claims *Claims) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.revocations.Revoke(ctx, claims.TokenID(), claims.ExpiresIn(s.now())); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// DeleteAccount removes all data of the token owner and revokes the token.
func (s *Service) DeleteAccount(ctx context.Context, claims *Claims) (_ DeletedCounts, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.deleteaccount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	counts, err := s.accounts.DeleteUserData(ctx, claims.Subject)
	if err != nil {
		return DeletedCounts{}, fmt.Errorf("delete user data: %w", err)
	}

	for _, c := range s.caches {
		c.InvalidateUser(claims.Subject)
	}

	if err := s.revocations.Revoke(ctx, claims.TokenID(), claims.ExpiresIn(s.now())); err != nil {
		return counts, fmt.Errorf("revoke token: %w", err)
	}

	return counts, nil
}
