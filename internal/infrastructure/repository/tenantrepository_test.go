package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sellora-inc/sellora/internal/domain/subscription"
	vo "github.com/sellora-inc/sellora/internal/domain/subscription/valueobjects"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	"github.com/sellora-inc/sellora/internal/infrastructure/migration"
	"github.com/sellora-inc/sellora/internal/shared/db"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(migration.AutoMigrateModels()...))

	return gormDB
}

func seedTenant(t *testing.T, repo tenant.Repository, sid, domain string) *tenant.Tenant {
	t.Helper()
	tn, err := tenant.NewTenant(sid, "Acme", domain)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tn))
	return tn
}

func TestTenantRepositoryRoundTrip(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewTenantRepository(gormDB, logger.NewLogger())
	ctx := context.Background()

	tn := seedTenant(t, repo, "tnt_a", "acme.example.com")
	require.NotZero(t, tn.ID())

	got, err := repo.GetByID(ctx, tn.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tnt_a", got.SID())
	assert.Equal(t, "acme.example.com", got.Domain())
	assert.Equal(t, tenant.StatusActive, got.Status())

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	exists, err := repo.ExistsByDomain(ctx, "acme.example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByDomain(ctx, "other.example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTenantRepositoryUpdatePersistsSettings(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewTenantRepository(gormDB, logger.NewLogger())
	ctx := context.Background()

	tn := seedTenant(t, repo, "tnt_a", "acme.example.com")

	require.NoError(t, tn.AssignPlan(2, []string{"api", "sso"}, map[string]int64{"seats": 50}))
	require.NoError(t, tn.SetSetting("theme", "dark"))
	require.NoError(t, repo.Update(ctx, tn))

	got, err := repo.GetByID(ctx, tn.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.PlanID())
	assert.Equal(t, uint(2), *got.PlanID())
	assert.Equal(t, []string{"api", "sso"}, got.Settings().Features)
	assert.Equal(t, int64(50), got.Settings().Limits["seats"])

	v, ok := got.Settings().Get("theme")
	require.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestTenantRepositoryArchiveRoundTrip(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewTenantRepository(gormDB, logger.NewLogger())
	ctx := context.Background()

	tn := seedTenant(t, repo, "tnt_a", "acme.example.com")
	require.NoError(t, tn.Archive(time.Now()))
	require.NoError(t, repo.Update(ctx, tn))

	// Archived rows stay reachable by ID; GORM soft deletes are not in play.
	got, err := repo.GetByID(ctx, tn.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsArchived())
	require.NotNil(t, got.DeletedAt())
}

func TestTenantRepositoryListFiltersArchived(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewTenantRepository(gormDB, logger.NewLogger())
	ctx := context.Background()

	active := seedTenant(t, repo, "tnt_a", "a.example.com")
	archived := seedTenant(t, repo, "tnt_b", "b.example.com")
	require.NoError(t, archived.Archive(time.Now()))
	require.NoError(t, repo.Update(ctx, archived))

	tenants, total, err := repo.List(ctx, tenant.Filter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tenants, 1)
	assert.Equal(t, active.ID(), tenants[0].ID())

	status := "archived"
	tenants, total, err = repo.List(ctx, tenant.Filter{Status: &status, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tenants, 1)
	assert.Equal(t, archived.ID(), tenants[0].ID())
}

func TestTenantRepositoryGetByPlanID(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewTenantRepository(gormDB, logger.NewLogger())
	ctx := context.Background()

	first := seedTenant(t, repo, "tnt_a", "a.example.com")
	second := seedTenant(t, repo, "tnt_b", "b.example.com")
	seedTenant(t, repo, "tnt_c", "c.example.com")

	for _, tn := range []*tenant.Tenant{first, second} {
		require.NoError(t, tn.AssignPlan(7, []string{"api"}, nil))
		require.NoError(t, repo.Update(ctx, tn))
	}

	subscribed, err := repo.GetByPlanID(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, subscribed, 2)
}

func TestSubscriptionRepositoryActiveLookup(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewSubscriptionRepository(gormDB, logger.NewLogger())
	ctx := context.Background()

	sub, err := subscription.NewSubscription("sub_a", 1, 2, decimal.NewFromInt(30), time.Now().UTC().AddDate(0, 0, -10))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, sub))
	require.NotZero(t, sub.ID())

	active, err := repo.GetActiveByTenantID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, sub.ID(), active.ID())
	assert.Equal(t, vo.StatusActive, active.Status())

	require.NoError(t, active.Cancel(time.Now().UTC()))
	require.NoError(t, repo.Update(ctx, active))

	none, err := repo.GetActiveByTenantID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, none)

	history, err := repo.GetByTenantID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestTransactionManagerRollsBack(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewTenantRepository(gormDB, logger.NewLogger())
	tm := db.NewTransactionManager(gormDB)
	ctx := context.Background()

	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		tn, err := tenant.NewTenant("tnt_a", "Acme", "acme.example.com")
		require.NoError(t, err)
		if err := repo.Create(txCtx, tn); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	exists, err := repo.ExistsByDomain(ctx, "acme.example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactionManagerCommits(t *testing.T) {
	gormDB := newTestDB(t)
	tenantRepo := NewTenantRepository(gormDB, logger.NewLogger())
	subRepo := NewSubscriptionRepository(gormDB, logger.NewLogger())
	tm := db.NewTransactionManager(gormDB)
	ctx := context.Background()

	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		tn, err := tenant.NewTenant("tnt_a", "Acme", "acme.example.com")
		if err != nil {
			return err
		}
		if err := tenantRepo.Create(txCtx, tn); err != nil {
			return err
		}

		sub, err := subscription.NewSubscription("sub_a", tn.ID(), 2, decimal.NewFromInt(30), time.Now().UTC())
		if err != nil {
			return err
		}
		return subRepo.Create(txCtx, sub)
	})
	require.NoError(t, err)

	exists, err := tenantRepo.ExistsByDomain(ctx, "acme.example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}
