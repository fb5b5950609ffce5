package handlers

import (
	"context"

	subdto "github.com/sellora-inc/sellora/internal/application/subscription/dto"
	"github.com/sellora-inc/sellora/internal/application/subscription/usecases"
)

// Use case interfaces for SubscriptionHandler

type assignPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.AssignPlanCommand) (*usecases.AssignPlanResult, error)
}

type calculateProrationUseCase interface {
	Execute(ctx context.Context, cmd usecases.CalculateProrationCommand) (*subdto.ProrationDTO, error)
}

type getCurrentSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.GetCurrentSubscriptionCommand) (*usecases.CurrentSubscriptionResult, error)
}

type getSubscriptionHistoryUseCase interface {
	Execute(ctx context.Context, cmd usecases.GetSubscriptionHistoryCommand) (*usecases.SubscriptionHistoryResult, error)
}
