package dto

import (
	"github.com/sellora-inc/sellora/internal/domain/tenant"
)

// ToTenantDTO converts a Tenant aggregate to its presentation form.
func ToTenantDTO(tn *tenant.Tenant) *TenantDTO {
	if tn == nil {
		return nil
	}

	settings := tn.Settings()
	return &TenantDTO{
		ID:                 tn.ID(),
		SID:                tn.SID(),
		Name:               tn.Name(),
		Domain:             tn.Domain(),
		Status:             tn.Status().String(),
		PlanID:             tn.PlanID(),
		Settings:           toSettingsDTO(settings),
		SubscriptionStatus: tn.SubscriptionStatus(),
		DeletedAt:          tn.DeletedAt(),
		CreatedAt:          tn.CreatedAt(),
		UpdatedAt:          tn.UpdatedAt(),
	}
}

// ToTenantDTOList converts a slice of tenants preserving order.
func ToTenantDTOList(tenants []*tenant.Tenant) []*TenantDTO {
	dtos := make([]*TenantDTO, 0, len(tenants))
	for _, tn := range tenants {
		if tn != nil {
			dtos = append(dtos, ToTenantDTO(tn))
		}
	}
	return dtos
}

// ToEntitlementsDTO projects the entitlement view out of a tenant.
func ToEntitlementsDTO(tn *tenant.Tenant) *EntitlementsDTO {
	if tn == nil {
		return nil
	}

	settings := tn.Settings()
	return &EntitlementsDTO{
		TenantID:  tn.ID(),
		PlanID:    tn.PlanID(),
		Features:  settings.Features,
		Limits:    settings.Limits,
		Suspended: settings.IsSuspended() || tn.IsSuspended(),
	}
}

func toSettingsDTO(s tenant.Settings) SettingsDTO {
	return SettingsDTO{
		Features: s.Features,
		Limits:   s.Limits,
		Extra:    s.Extra,
	}
}
