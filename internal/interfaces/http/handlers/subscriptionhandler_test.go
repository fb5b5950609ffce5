package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subdto "github.com/sellora-inc/sellora/internal/application/subscription/dto"
	"github.com/sellora-inc/sellora/internal/application/subscription/usecases"
	"github.com/sellora-inc/sellora/internal/interfaces/http/handlers/testutil"
	"github.com/sellora-inc/sellora/internal/shared/constants"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type mockAssignPlanUC struct {
	executeFn func(ctx context.Context, cmd usecases.AssignPlanCommand) (*usecases.AssignPlanResult, error)
}

func (m *mockAssignPlanUC) Execute(ctx context.Context, cmd usecases.AssignPlanCommand) (*usecases.AssignPlanResult, error) {
	return m.executeFn(ctx, cmd)
}

type mockCalculateProrationUC struct {
	executeFn func(ctx context.Context, cmd usecases.CalculateProrationCommand) (*subdto.ProrationDTO, error)
}

func (m *mockCalculateProrationUC) Execute(ctx context.Context, cmd usecases.CalculateProrationCommand) (*subdto.ProrationDTO, error) {
	return m.executeFn(ctx, cmd)
}

type mockGetHistoryUC struct {
	executeFn func(ctx context.Context, cmd usecases.GetSubscriptionHistoryCommand) (*usecases.SubscriptionHistoryResult, error)
}

func (m *mockGetHistoryUC) Execute(ctx context.Context, cmd usecases.GetSubscriptionHistoryCommand) (*usecases.SubscriptionHistoryResult, error) {
	return m.executeFn(ctx, cmd)
}

func newSubscriptionHandler(assign assignPlanUseCase, proration calculateProrationUseCase, history getSubscriptionHistoryUseCase) *SubscriptionHandler {
	return NewSubscriptionHandler(assign, proration, nil, history, logger.NewLogger())
}

func TestAssignPlanHandler(t *testing.T) {
	var got usecases.AssignPlanCommand
	assign := &mockAssignPlanUC{
		executeFn: func(ctx context.Context, cmd usecases.AssignPlanCommand) (*usecases.AssignPlanResult, error) {
			got = cmd
			return &usecases.AssignPlanResult{
				Subscription: &subdto.SubscriptionDTO{ID: 100, TenantID: cmd.TenantID, PlanID: cmd.PlanID},
			}, nil
		},
	}
	h := newSubscriptionHandler(assign, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/tenants/1/plan", AssignPlanRequest{PlanID: 2})
	testutil.SetAuthContext(c, 9, constants.RoleSuperAdmin)
	testutil.SetURLParam(c, "id", "1")
	h.AssignPlan(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), got.TenantID)
	assert.Equal(t, uint(2), got.PlanID)
	require.NotNil(t, got.ActorID)
	assert.Equal(t, uint(9), *got.ActorID)
}

func TestAssignPlanHandlerMissingPlanID(t *testing.T) {
	h := newSubscriptionHandler(&mockAssignPlanUC{}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/tenants/1/plan", map[string]any{})
	testutil.SetURLParam(c, "id", "1")
	h.AssignPlan(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAssignPlanHandlerConflict(t *testing.T) {
	assign := &mockAssignPlanUC{
		executeFn: func(ctx context.Context, cmd usecases.AssignPlanCommand) (*usecases.AssignPlanResult, error) {
			return nil, apperrors.NewConflictError("tenant plan changed concurrently")
		},
	}
	h := newSubscriptionHandler(assign, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/tenants/1/plan", AssignPlanRequest{PlanID: 2})
	testutil.SetURLParam(c, "id", "1")
	h.AssignPlan(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCalculateProrationHandler(t *testing.T) {
	var got usecases.CalculateProrationCommand
	proration := &mockCalculateProrationUC{
		executeFn: func(ctx context.Context, cmd usecases.CalculateProrationCommand) (*subdto.ProrationDTO, error) {
			got = cmd
			return &subdto.ProrationDTO{
				ProrationAmount: decimal.NewFromInt(40),
				DaysRemaining:   20,
				UnusedAmount:    decimal.NewFromInt(20),
				NewAmount:       decimal.NewFromInt(60),
			}, nil
		},
	}
	h := newSubscriptionHandler(nil, proration, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tenants/1/subscription/proration", nil)
	testutil.SetURLParam(c, "id", "1")
	testutil.SetQueryParams(c, map[string]string{"new_plan_id": "2"})
	h.CalculateProration(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), got.TenantID)
	assert.Equal(t, uint(2), got.NewPlanID)
}

func TestCalculateProrationHandlerMissingPlan(t *testing.T) {
	h := newSubscriptionHandler(nil, &mockCalculateProrationUC{}, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tenants/1/subscription/proration", nil)
	testutil.SetURLParam(c, "id", "1")
	h.CalculateProration(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCalculateProrationHandlerInvalidPlan(t *testing.T) {
	h := newSubscriptionHandler(nil, &mockCalculateProrationUC{}, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tenants/1/subscription/proration", nil)
	testutil.SetURLParam(c, "id", "1")
	testutil.SetQueryParams(c, map[string]string{"new_plan_id": "0"})
	h.CalculateProration(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetSubscriptionHistoryHandler(t *testing.T) {
	history := &mockGetHistoryUC{
		executeFn: func(ctx context.Context, cmd usecases.GetSubscriptionHistoryCommand) (*usecases.SubscriptionHistoryResult, error) {
			assert.Equal(t, uint(1), cmd.TenantID)
			return &usecases.SubscriptionHistoryResult{
				Subscriptions: []*subdto.SubscriptionDTO{{ID: 2}, {ID: 1}},
				Changes:       []*subdto.SubscriptionChangeDTO{{ID: 1, TenantID: 1, NewPlanID: 2}},
			}, nil
		},
	}
	h := newSubscriptionHandler(nil, nil, history)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tenants/1/subscription/history", nil)
	testutil.SetURLParam(c, "id", "1")
	h.GetSubscriptionHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}
