package handlers

import (
	"context"

	subdto "github.com/sellora-inc/sellora/internal/application/subscription/dto"
	"github.com/sellora-inc/sellora/internal/application/subscription/usecases"
)

// Use case interfaces for PlanHandler

type createPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePlanCommand) (*subdto.PlanDTO, error)
}

type updatePlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePlanCommand) (*subdto.PlanDTO, error)
}

type getPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.GetPlanCommand) (*usecases.GetPlanResult, error)
}

type listPlansUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListPlansCommand) (*usecases.ListPlansResult, error)
}

type setPlanStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.SetPlanStatusCommand) (*subdto.PlanDTO, error)
}

type updatePlanFeaturesUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePlanFeaturesCommand) (*usecases.UpdatePlanFeaturesResult, error)
}

type updatePlanLimitsUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePlanLimitsCommand) (*usecases.UpdatePlanLimitsResult, error)
}
