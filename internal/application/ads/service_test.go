package ads

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/ads"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryCampaignRepo struct {
	mu        sync.Mutex
	campaigns map[uuid.UUID]*ads.Campaign
}

func newMemoryCampaignRepo() *memoryCampaignRepo {
	return &memoryCampaignRepo{campaigns: make(map[uuid.UUID]*ads.Campaign)}
}

func (r *memoryCampaignRepo) FindByID(_ context.Context, id uuid.UUID) (*ads.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.campaigns[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryCampaignRepo) FindActiveByPlacement(_ context.Context, placement ads.PlacementTag) ([]ads.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []ads.Campaign
	for _, c := range r.campaigns {
		if c.Placement == placement && c.Active {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memoryCampaignRepo) FindAll(_ context.Context) ([]ads.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []ads.Campaign
	for _, c := range r.campaigns {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memoryCampaignRepo) Save(_ context.Context, campaign *ads.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *campaign
	r.campaigns[campaign.ID] = &copied
	return nil
}

func (r *memoryCampaignRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.campaigns, id)
	return nil
}

type memoryRotationRepo struct {
	mu      sync.Mutex
	configs map[ads.PlacementTag]*ads.RotationConfig
}

func newMemoryRotationRepo() *memoryRotationRepo {
	return &memoryRotationRepo{configs: make(map[ads.PlacementTag]*ads.RotationConfig)}
}

func (r *memoryRotationRepo) FindByPlacement(_ context.Context, placement ads.PlacementTag) (*ads.RotationConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.configs[placement]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryRotationRepo) FindAll(_ context.Context) ([]ads.RotationConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []ads.RotationConfig
	for _, c := range r.configs {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memoryRotationRepo) Save(_ context.Context, config *ads.RotationConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *config
	r.configs[config.Placement] = &copied
	return nil
}

func newTestAdsService(t *testing.T) (*Service, *memoryCampaignRepo, *memoryRotationRepo) {
	t.Helper()
	campaignRepo := newMemoryCampaignRepo()
	rotationRepo := newMemoryRotationRepo()
	selector := ads.NewSelectorWithSource(rand.New(rand.NewSource(1)))
	svc := NewService(campaignRepo, rotationRepo, selector, 5, zap.NewNop())
	return svc, campaignRepo, rotationRepo
}

func mustCampaign(t *testing.T, placement ads.PlacementTag) *ads.Campaign {
	t.Helper()
	c, err := ads.NewCampaign("Sữa ABC", "https://cdn.example.com/banner.png", "https://example.com/sua-abc", "Xem ngay", placement)
	require.NoError(t, err)
	return c
}

func TestAdsService_Serve(t *testing.T) {
	t.Run("empty placement serves an empty slot", func(t *testing.T) {
		svc, _, _ := newTestAdsService(t)

		result, err := svc.Serve(context.Background(), ads.PlacementHome)

		require.NoError(t, err)
		assert.Nil(t, result.Campaign)
		assert.Equal(t, 5, result.Interval)
	})

	t.Run("unknown placement is rejected", func(t *testing.T) {
		svc, _, _ := newTestAdsService(t)

		_, err := svc.Serve(context.Background(), "footer")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PLACEMENT", domainErr.Code)
	})

	t.Run("active campaign is served", func(t *testing.T) {
		svc, campaignRepo, _ := newTestAdsService(t)
		campaign := mustCampaign(t, ads.PlacementHome)
		require.NoError(t, campaignRepo.Save(context.Background(), campaign))

		result, err := svc.Serve(context.Background(), ads.PlacementHome)

		require.NoError(t, err)
		require.NotNil(t, result.Campaign)
		assert.Equal(t, campaign.ID, result.Campaign.ID)
	})

	t.Run("expired campaign is skipped", func(t *testing.T) {
		svc, campaignRepo, _ := newTestAdsService(t)
		campaign := mustCampaign(t, ads.PlacementBlog)
		start := time.Now().Add(-48 * time.Hour)
		end := time.Now().Add(-24 * time.Hour)
		require.NoError(t, campaign.Schedule(&start, &end))
		require.NoError(t, campaignRepo.Save(context.Background(), campaign))

		result, err := svc.Serve(context.Background(), ads.PlacementBlog)

		require.NoError(t, err)
		assert.Nil(t, result.Campaign)
	})

	t.Run("disabled rotation serves no banner but keeps the interval", func(t *testing.T) {
		svc, campaignRepo, rotationRepo := newTestAdsService(t)
		require.NoError(t, campaignRepo.Save(context.Background(), mustCampaign(t, ads.PlacementHome)))

		config, err := ads.NewRotationConfig(ads.PlacementHome, 3)
		require.NoError(t, err)
		config.Disable()
		require.NoError(t, rotationRepo.Save(context.Background(), config))

		result, err := svc.Serve(context.Background(), ads.PlacementHome)

		require.NoError(t, err)
		assert.Nil(t, result.Campaign)
		assert.Equal(t, 3, result.Interval)
	})
}

func TestAdsService_ConfigureRotation(t *testing.T) {
	svc, _, rotationRepo := newTestAdsService(t)

	t.Run("creates settings on first configure", func(t *testing.T) {
		info, err := svc.ConfigureRotation(context.Background(), RotationInput{
			Placement: ads.PlacementDocument,
			Interval:  7,
			Enabled:   true,
		})
		require.NoError(t, err)
		assert.Equal(t, 7, info.Interval)
		assert.True(t, info.Enabled)
	})

	t.Run("updates existing settings in place", func(t *testing.T) {
		_, err := svc.ConfigureRotation(context.Background(), RotationInput{
			Placement: ads.PlacementDocument,
			Interval:  4,
			Enabled:   false,
		})
		require.NoError(t, err)

		stored, err := rotationRepo.FindByPlacement(context.Background(), ads.PlacementDocument)
		require.NoError(t, err)
		assert.Equal(t, 4, stored.Interval)
		assert.False(t, stored.Enabled)
	})

	t.Run("rejects an out-of-range interval", func(t *testing.T) {
		_, err := svc.ConfigureRotation(context.Background(), RotationInput{
			Placement: ads.PlacementHome,
			Interval:  0,
			Enabled:   true,
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INTERVAL", domainErr.Code)
	})
}

func TestAdsService_CampaignLifecycle(t *testing.T) {
	svc, _, _ := newTestAdsService(t)

	created, err := svc.CreateCampaign(context.Background(), CampaignInput{
		Title:     "Bỉm XYZ",
		ImageURL:  "https://cdn.example.com/xyz.png",
		LinkURL:   "https://example.com/bim-xyz",
		CTAText:   "Mua ngay",
		Placement: ads.PlacementSidebar,
	})
	require.NoError(t, err)
	assert.True(t, created.Active)

	deactivated, err := svc.SetCampaignActive(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.False(t, deactivated.Active)

	result, err := svc.Serve(context.Background(), ads.PlacementSidebar)
	require.NoError(t, err)
	assert.Nil(t, result.Campaign)

	require.NoError(t, svc.DeleteCampaign(context.Background(), created.ID))
	_, err = svc.ListCampaigns(context.Background())
	require.NoError(t, err)
}
