package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora-inc/sellora/internal/domain/subscription"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

func TestCalculateProrationPreview(t *testing.T) {
	currentPlan := buildPlan(t, 1, "Basic", 30, nil, nil)
	newPlan := buildPlan(t, 2, "Pro", 60, nil, nil)
	tn := buildTenant(t, 1)

	// One hour past ten full days in, so the remaining-day count is stable
	// regardless of when the clock is read during the call.
	startsAt := time.Now().UTC().Add(-10*24*time.Hour + time.Hour)
	sub, err := subscription.NewSubscription("sub_a", 1, 1, decimal.NewFromInt(30), startsAt)
	require.NoError(t, err)
	require.NoError(t, sub.SetID(1))

	tenantRepo := &mockTenantRepo{
		getByIDFn: func(ctx context.Context, id uint) (*tenant.Tenant, error) {
			return tn, nil
		},
	}
	planRepo := &mockPlanRepo{
		getByIDFn: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			switch id {
			case 1:
				return currentPlan, nil
			case 2:
				return newPlan, nil
			}
			return nil, nil
		},
	}
	subRepo := &mockSubRepo{
		getActiveByTenantIDFn: func(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
			return sub, nil
		},
	}

	uc := NewCalculateProrationUseCase(tenantRepo, planRepo, subRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CalculateProrationCommand{TenantID: 1, NewPlanID: 2})
	require.NoError(t, err)

	assert.Equal(t, 20, result.DaysRemaining)
	assert.True(t, result.UnusedAmount.Equal(decimal.NewFromInt(20)), "unused = %s", result.UnusedAmount)
	assert.True(t, result.NewAmount.Equal(decimal.NewFromInt(60)))
	assert.True(t, result.ProrationAmount.Equal(decimal.NewFromInt(40)), "proration = %s", result.ProrationAmount)
}

func TestCalculateProrationNoActiveSubscription(t *testing.T) {
	tn := buildTenant(t, 1)
	newPlan := buildPlan(t, 2, "Pro", 60, nil, nil)

	tenantRepo := &mockTenantRepo{
		getByIDFn: func(ctx context.Context, id uint) (*tenant.Tenant, error) {
			return tn, nil
		},
	}
	planRepo := &mockPlanRepo{
		getByIDFn: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return newPlan, nil
		},
	}

	uc := NewCalculateProrationUseCase(tenantRepo, planRepo, &mockSubRepo{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CalculateProrationCommand{TenantID: 1, NewPlanID: 2})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 422, appErr.Code)
}

func TestCalculateProrationNotFound(t *testing.T) {
	uc := NewCalculateProrationUseCase(&mockTenantRepo{}, &mockPlanRepo{}, &mockSubRepo{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CalculateProrationCommand{TenantID: 1, NewPlanID: 2})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}
