package ads

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCampaigns(t *testing.T, n int) []Campaign {
	t.Helper()
	campaigns := make([]Campaign, 0, n)
	for i := 0; i < n; i++ {
		c, err := NewCampaign("Sữa công thức", "https://cdn.example.com/banner.png", "https://example.com", "Xem ngay", PlacementHome)
		require.NoError(t, err)
		campaigns = append(campaigns, *c)
	}
	return campaigns
}

func TestSelectorPick(t *testing.T) {
	t.Run("empty set yields nil", func(t *testing.T) {
		s := NewSelector()
		assert.Nil(t, s.Pick(nil))
		assert.Nil(t, s.Pick([]Campaign{}))
	})

	t.Run("single campaign always picked", func(t *testing.T) {
		s := NewSelector()
		campaigns := makeCampaigns(t, 1)
		for i := 0; i < 10; i++ {
			got := s.Pick(campaigns)
			require.NotNil(t, got)
			assert.Equal(t, campaigns[0].ID, got.ID)
		}
	})

	t.Run("fixed seed is reproducible", func(t *testing.T) {
		campaigns := makeCampaigns(t, 7)

		a := NewSelectorWithSource(rand.New(rand.NewSource(42)))
		b := NewSelectorWithSource(rand.New(rand.NewSource(42)))
		for i := 0; i < 50; i++ {
			assert.Equal(t, a.Pick(campaigns).ID, b.Pick(campaigns).ID)
		}
	})

	t.Run("picks are roughly uniform", func(t *testing.T) {
		campaigns := makeCampaigns(t, 4)
		s := NewSelectorWithSource(rand.New(rand.NewSource(1)))

		counts := make(map[int]int)
		index := make(map[uuid.UUID]int, len(campaigns))
		for i, c := range campaigns {
			index[c.ID] = i
		}

		const picks = 4000
		for i := 0; i < picks; i++ {
			got := s.Pick(campaigns)
			require.NotNil(t, got)
			counts[index[got.ID]]++
		}

		// Expect ~1000 each; a 250 margin is far beyond random noise.
		for i := 0; i < len(campaigns); i++ {
			assert.InDelta(t, picks/len(campaigns), counts[i], 250)
		}
	})
}

func TestSelectorPickEligible(t *testing.T) {
	now := time.Now()

	t.Run("skips inactive and out-of-window campaigns", func(t *testing.T) {
		campaigns := makeCampaigns(t, 3)
		campaigns[0].Deactivate()

		past := now.Add(-2 * time.Hour)
		earlier := now.Add(-time.Hour)
		require.NoError(t, campaigns[1].Schedule(&past, &earlier))

		s := NewSelectorWithSource(rand.New(rand.NewSource(3)))
		for i := 0; i < 20; i++ {
			got := s.PickEligible(campaigns, now)
			require.NotNil(t, got)
			assert.Equal(t, campaigns[2].ID, got.ID)
		}
	})

	t.Run("nil when nothing is eligible", func(t *testing.T) {
		campaigns := makeCampaigns(t, 2)
		campaigns[0].Deactivate()
		campaigns[1].Deactivate()

		s := NewSelector()
		assert.Nil(t, s.PickEligible(campaigns, now))
	})
}

func TestRotationConfig(t *testing.T) {
	t.Run("banner slot after every interval", func(t *testing.T) {
		cfg, err := NewRotationConfig(PlacementBlog, 3)
		require.NoError(t, err)

		assert.False(t, cfg.ShouldShowAt(0))
		assert.False(t, cfg.ShouldShowAt(1))
		assert.True(t, cfg.ShouldShowAt(2))
		assert.True(t, cfg.ShouldShowAt(5))
	})

	t.Run("disabled config never shows", func(t *testing.T) {
		cfg, err := NewRotationConfig(PlacementHome, 1)
		require.NoError(t, err)
		cfg.Disable()
		assert.False(t, cfg.ShouldShowAt(0))
	})

	t.Run("interval bounds", func(t *testing.T) {
		_, err := NewRotationConfig(PlacementHome, 0)
		require.Error(t, err)

		cfg, err := NewRotationConfig(PlacementHome, 5)
		require.NoError(t, err)
		require.Error(t, cfg.SetInterval(101))
	})
}

func TestCampaignValidation(t *testing.T) {
	t.Run("rejects relative urls", func(t *testing.T) {
		_, err := NewCampaign("Title", "/banner.png", "https://example.com", "", PlacementHome)
		require.Error(t, err)
	})

	t.Run("rejects unknown placement", func(t *testing.T) {
		_, err := NewCampaign("Title", "https://cdn.example.com/b.png", "https://example.com", "", PlacementTag("footer"))
		require.Error(t, err)
	})

	t.Run("rejects inverted schedule window", func(t *testing.T) {
		c, err := NewCampaign("Title", "https://cdn.example.com/b.png", "https://example.com", "", PlacementHome)
		require.NoError(t, err)

		start := time.Now()
		end := start.Add(-time.Hour)
		require.Error(t, c.Schedule(&start, &end))
	})
}
