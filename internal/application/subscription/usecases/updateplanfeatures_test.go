package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora-inc/sellora/internal/domain/subscription"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	"github.com/sellora-inc/sellora/internal/shared/constants"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

func TestUpdatePlanFeaturesCascades(t *testing.T) {
	plan := buildPlan(t, 1, "Pro", 30, []string{"api"}, map[string]int64{"seats": 10})

	tenants := make([]*tenant.Tenant, 0, 3)
	for i := uint(1); i <= 3; i++ {
		tn := buildTenant(t, i)
		require.NoError(t, tn.AssignPlan(plan.ID(), plan.Features(), plan.Limits()))
		require.NoError(t, tn.SetSetting("theme", "dark"))
		tenants = append(tenants, tn)
	}

	planRepo := &mockPlanRepo{
		getByIDFn: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return plan, nil
		},
	}
	var updatedTenants []uint
	tenantRepo := &mockTenantRepo{
		getByPlanIDFn: func(ctx context.Context, planID uint) ([]*tenant.Tenant, error) {
			return tenants, nil
		},
		updateFn: func(ctx context.Context, tn *tenant.Tenant) error {
			updatedTenants = append(updatedTenants, tn.ID())
			return nil
		},
	}
	auditor := &mockAuditor{}
	invalidator := &mockInvalidator{}

	uc := NewUpdatePlanFeaturesUseCase(planRepo, tenantRepo, auditor, &mockTx{}, logger.NewLogger())
	uc.SetInvalidator(invalidator)

	actor := uint(9)
	result, err := uc.Execute(context.Background(), UpdatePlanFeaturesCommand{
		PlanID:   1,
		Features: []string{"api", "sso"},
		ActorID:  &actor,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.TenantsUpdated)
	assert.Equal(t, []uint{1, 2, 3}, updatedTenants)

	// Every subscribed tenant mirrors the new feature set; local keys survive.
	for _, tn := range tenants {
		assert.Equal(t, []string{"api", "sso"}, tn.Settings().Features)
		v, ok := tn.Settings().Get("theme")
		require.True(t, ok)
		assert.Equal(t, "dark", v)
	}

	require.Len(t, auditor.entries, 1)
	assert.Equal(t, constants.AuditActionPlanUpdated, auditor.entries[0].Action())

	assert.ElementsMatch(t, []uint{1, 2, 3}, invalidator.invalidated)
}

func TestUpdatePlanFeaturesNilRejected(t *testing.T) {
	uc := NewUpdatePlanFeaturesUseCase(&mockPlanRepo{}, &mockTenantRepo{}, &mockAuditor{}, &mockTx{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdatePlanFeaturesCommand{PlanID: 1, Features: nil})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 422, appErr.Code)
}

func TestUpdatePlanFeaturesPlanNotFound(t *testing.T) {
	uc := NewUpdatePlanFeaturesUseCase(&mockPlanRepo{}, &mockTenantRepo{}, &mockAuditor{}, &mockTx{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdatePlanFeaturesCommand{PlanID: 99, Features: []string{"api"}})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestUpdatePlanFeaturesCascadeFailureAborts(t *testing.T) {
	plan := buildPlan(t, 1, "Pro", 30, []string{"api"}, nil)
	tenants := []*tenant.Tenant{buildTenant(t, 1), buildTenant(t, 2)}

	planRepo := &mockPlanRepo{
		getByIDFn: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return plan, nil
		},
	}
	tenantRepo := &mockTenantRepo{
		getByPlanIDFn: func(ctx context.Context, planID uint) ([]*tenant.Tenant, error) {
			return tenants, nil
		},
		updateFn: func(ctx context.Context, tn *tenant.Tenant) error {
			if tn.ID() == 2 {
				return assert.AnError
			}
			return nil
		},
	}
	invalidator := &mockInvalidator{}

	uc := NewUpdatePlanFeaturesUseCase(planRepo, tenantRepo, &mockAuditor{}, &mockTx{}, logger.NewLogger())
	uc.SetInvalidator(invalidator)

	_, err := uc.Execute(context.Background(), UpdatePlanFeaturesCommand{PlanID: 1, Features: []string{"api", "sso"}})
	require.Error(t, err)

	// A failed cascade must not invalidate any cache entries.
	assert.Empty(t, invalidator.invalidated)
}
