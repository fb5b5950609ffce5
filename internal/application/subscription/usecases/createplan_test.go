package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora-inc/sellora/internal/domain/subscription"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

func TestCreatePlan(t *testing.T) {
	var created *subscription.Plan
	planRepo := &mockPlanRepo{
		createFn: func(ctx context.Context, plan *subscription.Plan) error {
			created = plan
			return plan.SetID(1)
		},
	}

	uc := NewCreatePlanUseCase(planRepo, mockSIDs{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreatePlanCommand{
		Name:         "Pro",
		Price:        decimal.NewFromFloat(29.99),
		BillingCycle: "monthly",
		Features:     []string{"api", "sso"},
		Limits:       map[string]int64{"seats": 50},
		TrialDays:    14,
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "plan_mock0000000", created.SID())
	assert.Equal(t, []string{"api", "sso"}, created.Features())

	assert.Equal(t, "Pro", result.Name)
	assert.Equal(t, "monthly", result.BillingCycle)
	assert.True(t, result.IsActive)
	assert.Equal(t, 14, result.TrialDays)
}

func TestCreatePlanInvalidCycle(t *testing.T) {
	uc := NewCreatePlanUseCase(&mockPlanRepo{}, mockSIDs{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreatePlanCommand{
		Name:         "Pro",
		Price:        decimal.NewFromInt(10),
		BillingCycle: "weekly",
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 422, appErr.Code)
}

func TestCreatePlanDuplicateName(t *testing.T) {
	planRepo := &mockPlanRepo{
		createFn: func(ctx context.Context, plan *subscription.Plan) error {
			return errors.New("Error 1062: Duplicate entry 'Pro' for key 'plans.uk_plans_name'")
		},
	}

	uc := NewCreatePlanUseCase(planRepo, mockSIDs{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreatePlanCommand{
		Name:         "Pro",
		Price:        decimal.NewFromInt(10),
		BillingCycle: "monthly",
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.Code)
}
