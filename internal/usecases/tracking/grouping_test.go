package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
)

func TestGroupDataByPlatform(t *testing.T) {
	campaigns := []domain.CampaignData{
		{ID: "c1", Platform: domain.PlatformMeta},
		{ID: "c2", Platform: domain.PlatformTikTok},
		{ID: "c3", Platform: domain.PlatformMeta},
	}

	grouped := GroupDataByPlatform(campaigns)

	require.Len(t, grouped, 2)
	require.Len(t, grouped[domain.PlatformMeta], 2)
	// Ordem relativa preservada dentro do grupo
	assert.Equal(t, "c1", grouped[domain.PlatformMeta][0].ID)
	assert.Equal(t, "c3", grouped[domain.PlatformMeta][1].ID)
	assert.Equal(t, "c2", grouped[domain.PlatformTikTok][0].ID)
}

func TestFilterDataByPlatform(t *testing.T) {
	leads := []domain.LeadData{
		{ID: "l1", Platform: domain.PlatformMeta},
		{ID: "l2", Platform: domain.PlatformKwai},
		{ID: "l3", Platform: domain.PlatformMeta},
	}

	t.Run("Filtra apenas os registros da plataforma pedida", func(t *testing.T) {
		filtered := FilterDataByPlatform(leads, domain.PlatformMeta)

		require.Len(t, filtered, 2)
		assert.Equal(t, "l1", filtered[0].ID)
		assert.Equal(t, "l3", filtered[1].ID)
	})

	t.Run("Plataforma sem registros retorna slice vazio, não nil", func(t *testing.T) {
		filtered := FilterDataByPlatform(leads, domain.PlatformGoogleAds)

		assert.NotNil(t, filtered)
		assert.Empty(t, filtered)
	})
}
