package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora-inc/sellora/internal/domain/subscription"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

func TestUpdatePlanLimitsCascades(t *testing.T) {
	plan := buildPlan(t, 1, "Pro", 30, []string{"api"}, map[string]int64{"seats": 10})

	tn := buildTenant(t, 1)
	require.NoError(t, tn.AssignPlan(plan.ID(), plan.Features(), plan.Limits()))

	planRepo := &mockPlanRepo{
		getByIDFn: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return plan, nil
		},
	}
	tenantRepo := &mockTenantRepo{
		getByPlanIDFn: func(ctx context.Context, planID uint) ([]*tenant.Tenant, error) {
			return []*tenant.Tenant{tn}, nil
		},
	}
	auditor := &mockAuditor{}

	uc := NewUpdatePlanLimitsUseCase(planRepo, tenantRepo, auditor, &mockTx{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), UpdatePlanLimitsCommand{
		PlanID: 1,
		Limits: map[string]int64{"seats": 100, "projects": 20},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TenantsUpdated)

	assert.Equal(t, int64(100), tn.Settings().Limits["seats"])
	assert.Equal(t, int64(20), tn.Settings().Limits["projects"])
	require.Len(t, auditor.entries, 1)
}

func TestUpdatePlanLimitsValidation(t *testing.T) {
	plan := buildPlan(t, 1, "Pro", 30, nil, map[string]int64{"seats": 10})
	planRepo := &mockPlanRepo{
		getByIDFn: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return plan, nil
		},
	}

	uc := NewUpdatePlanLimitsUseCase(planRepo, &mockTenantRepo{}, &mockAuditor{}, &mockTx{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdatePlanLimitsCommand{PlanID: 1, Limits: nil})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 422, appErr.Code)

	_, err = uc.Execute(context.Background(), UpdatePlanLimitsCommand{PlanID: 1, Limits: map[string]int64{"seats": -1}})
	require.Error(t, err)
	appErr = apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 422, appErr.Code)
}

func TestUpdatePlanLimitsTxFailureReturnsError(t *testing.T) {
	uc := NewUpdatePlanLimitsUseCase(&mockPlanRepo{}, &mockTenantRepo{}, &mockAuditor{}, &mockTx{err: assert.AnError}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdatePlanLimitsCommand{PlanID: 1, Limits: map[string]int64{"seats": 5}})
	assert.ErrorIs(t, err, assert.AnError)
}
