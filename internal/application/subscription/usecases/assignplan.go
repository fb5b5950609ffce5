package usecases

import (
	"context"
	"fmt"

	"github.com/sellora-inc/sellora/internal/application/subscription/dto"
	tenantdto "github.com/sellora-inc/sellora/internal/application/tenant/dto"
	"github.com/sellora-inc/sellora/internal/domain/audit"
	"github.com/sellora-inc/sellora/internal/domain/subscription"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	"github.com/sellora-inc/sellora/internal/shared/biztime"
	"github.com/sellora-inc/sellora/internal/shared/constants"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type AssignPlanCommand struct {
	TenantID uint
	PlanID   uint
	ActorID  *uint
}

type AssignPlanResult struct {
	Subscription *dto.SubscriptionDTO `json:"subscription"`
	Tenant       *tenantdto.TenantDTO `json:"tenant"`
	PreviousPlan *uint                `json:"previous_plan_id,omitempty"`
}

// AssignPlanUseCase assigns a plan to a tenant, or changes the tenant's plan
// when an active subscription already exists. Both paths share one contract:
// the previous active subscription (if any) is cancelled, a new active
// subscription is created at the plan's current price, the tenant's mirrored
// entitlements are synced, and a change record is appended. Everything
// commits in a single transaction; the tenant row is locked for the duration
// so concurrent changes cannot both observe the same active subscription.
type AssignPlanUseCase struct {
	tenantRepo  tenant.Repository
	planRepo    subscription.PlanRepository
	subRepo     subscription.SubscriptionRepository
	changeRepo  subscription.SubscriptionChangeRepository
	auditor     audit.Recorder
	tx          Transactor
	sids        SIDGenerator
	notifier    PlanChangeNotifier
	invalidator EntitlementInvalidator
	logger      logger.Interface
}

func NewAssignPlanUseCase(
	tenantRepo tenant.Repository,
	planRepo subscription.PlanRepository,
	subRepo subscription.SubscriptionRepository,
	changeRepo subscription.SubscriptionChangeRepository,
	auditor audit.Recorder,
	tx Transactor,
	sids SIDGenerator,
	logger logger.Interface,
) *AssignPlanUseCase {
	return &AssignPlanUseCase{
		tenantRepo: tenantRepo,
		planRepo:   planRepo,
		subRepo:    subRepo,
		changeRepo: changeRepo,
		auditor:    auditor,
		tx:         tx,
		sids:       sids,
		logger:     logger,
	}
}

// SetNotifier sets the optional plan-change notifier.
func (uc *AssignPlanUseCase) SetNotifier(notifier PlanChangeNotifier) {
	uc.notifier = notifier
}

// SetInvalidator sets the optional entitlement cache invalidator.
func (uc *AssignPlanUseCase) SetInvalidator(invalidator EntitlementInvalidator) {
	uc.invalidator = invalidator
}

func (uc *AssignPlanUseCase) Execute(ctx context.Context, cmd AssignPlanCommand) (*AssignPlanResult, error) {
	newPlan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if newPlan == nil {
		return nil, apperrors.NewNotFoundError("plan not found")
	}
	if !newPlan.IsActive() {
		return nil, apperrors.NewValidationError("plan is not active").
			WithField("plan_id", "must reference an active plan")
	}

	var (
		newSub  *subscription.Subscription
		tn      *tenant.Tenant
		oldPlan *subscription.Plan
	)

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		tn, err = uc.tenantRepo.GetByIDForUpdate(txCtx, cmd.TenantID)
		if err != nil {
			return fmt.Errorf("failed to get tenant: %w", err)
		}
		if tn == nil {
			return apperrors.NewNotFoundError("tenant not found")
		}
		if tn.IsArchived() {
			return apperrors.NewValidationError("tenant is archived").
				WithField("tenant_id", "archived tenants cannot change plans")
		}

		now := biztime.NowUTC()

		current, err := uc.subRepo.GetActiveByTenantID(txCtx, tn.ID())
		if err != nil {
			return fmt.Errorf("failed to get active subscription: %w", err)
		}

		var oldPlanID *uint
		if current != nil {
			prev := current.PlanID()
			oldPlanID = &prev
			if err := current.Cancel(now); err != nil {
				return fmt.Errorf("failed to cancel current subscription: %w", err)
			}
			if err := uc.subRepo.Update(txCtx, current); err != nil {
				return fmt.Errorf("failed to update cancelled subscription: %w", err)
			}
		}

		sid, err := uc.sids.NewSubscriptionSID()
		if err != nil {
			return fmt.Errorf("failed to generate subscription SID: %w", err)
		}

		newSub, err = subscription.NewSubscription(sid, tn.ID(), newPlan.ID(), newPlan.Price(), now)
		if err != nil {
			return fmt.Errorf("failed to create subscription aggregate: %w", err)
		}
		if err := uc.subRepo.Create(txCtx, newSub); err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}

		if err := tn.AssignPlan(newPlan.ID(), newPlan.Features(), newPlan.Limits()); err != nil {
			return fmt.Errorf("failed to assign plan to tenant: %w", err)
		}
		if err := uc.tenantRepo.Update(txCtx, tn); err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}

		change, err := subscription.NewSubscriptionChange(tn.ID(), oldPlanID, newPlan.ID())
		if err != nil {
			return fmt.Errorf("failed to create change record: %w", err)
		}
		if err := uc.changeRepo.Create(txCtx, change); err != nil {
			return fmt.Errorf("failed to append change record: %w", err)
		}

		action := constants.AuditActionPlanAssigned
		if oldPlanID != nil {
			action = constants.AuditActionPlanChanged
			oldPlan, err = uc.planRepo.GetByID(txCtx, *oldPlanID)
			if err != nil {
				return fmt.Errorf("failed to get previous plan: %w", err)
			}
		}

		entry, err := audit.NewEntry(cmd.ActorID, action, "tenant", tn.ID())
		if err != nil {
			return fmt.Errorf("failed to create audit entry: %w", err)
		}
		if oldPlanID != nil {
			entry.AddMetadata("old_plan_id", *oldPlanID)
		}
		entry.AddMetadata("new_plan_id", newPlan.ID())
		if err := uc.auditor.Record(txCtx, entry); err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("plan assigned to tenant",
		"tenant_id", tn.ID(),
		"plan_id", newPlan.ID(),
		"subscription_id", newSub.ID(),
	)

	uc.afterCommit(ctx, cmd.ActorID, tn, oldPlan, newPlan)

	var previousPlan *uint
	if oldPlan != nil {
		prev := oldPlan.ID()
		previousPlan = &prev
	}

	return &AssignPlanResult{
		Subscription: dto.ToSubscriptionDTO(newSub),
		Tenant:       tenantdto.ToTenantDTO(tn),
		PreviousPlan: previousPlan,
	}, nil
}

// afterCommit runs best-effort side channels. A failure here is logged and
// audited but never surfaces to the caller: the primary change has committed.
func (uc *AssignPlanUseCase) afterCommit(ctx context.Context, actorID *uint, tn *tenant.Tenant, oldPlan, newPlan *subscription.Plan) {
	if uc.invalidator != nil {
		if err := uc.invalidator.Invalidate(ctx, tn.ID()); err != nil {
			uc.logger.Warnw("failed to invalidate entitlement cache", "error", err, "tenant_id", tn.ID())
		}
	}

	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.NotifyPlanChanged(ctx, tn, oldPlan, newPlan); err != nil {
		uc.logger.Warnw("failed to send plan change notification", "error", err, "tenant_id", tn.ID())

		entry, auditErr := audit.NewEntry(actorID, constants.AuditActionNotificationFailed, "tenant", tn.ID())
		if auditErr != nil {
			return
		}
		entry.AddMetadata("notification", "plan_changed")
		entry.AddMetadata("error", err.Error())
		if auditErr := uc.auditor.Record(ctx, entry); auditErr != nil {
			uc.logger.Errorw("failed to record notification failure", "error", auditErr, "tenant_id", tn.ID())
		}
	}
}
