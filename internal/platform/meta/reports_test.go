package meta

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
)

func newReportTestAdapter(t *testing.T) *Adapter {
	t.Helper()

	adapter, err := New(domain.PlatformConfig{
		ID:      domain.PlatformMeta,
		Name:    "Meta Ads",
		BaseURL: "https://graph.facebook.com/v19.0",
		Credentials: map[string]string{
			CredAccessToken: "tok",
		},
	}, platform.NewClient(0))
	require.NoError(t, err)

	return adapter.(*Adapter)
}

func TestAdapter_Reports(t *testing.T) {
	ctx := context.Background()

	t.Run("Criar, buscar e apagar um relatório", func(t *testing.T) {
		adapter := newReportTestAdapter(t)

		created, err := adapter.CreateReport(ctx, domain.ReportConfig{
			Type:     "campaign_performance",
			Schedule: "0 8 * * 1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, domain.PlatformMeta, created.Platform)
		assert.False(t, created.CreatedAt.IsZero())

		fetched, found := adapter.GetReport(ctx, created.ID)
		require.True(t, found)
		assert.Equal(t, "campaign_performance", fetched.Type)

		require.NoError(t, adapter.DeleteReport(ctx, created.ID))

		_, found = adapter.GetReport(ctx, created.ID)
		assert.False(t, found)
	})

	t.Run("Tipo ausente - VALIDATION_ERROR", func(t *testing.T) {
		adapter := newReportTestAdapter(t)

		_, err := adapter.CreateReport(ctx, domain.ReportConfig{})

		require.Error(t, err)
		assert.Equal(t, platform.CodeValidation, platform.Normalize(err).Code)
	})

	t.Run("Apagar relatório inexistente retorna erro", func(t *testing.T) {
		adapter := newReportTestAdapter(t)

		err := adapter.DeleteReport(ctx, "rep_inexistente")

		require.Error(t, err)
		assert.Equal(t, platform.CodePlatformNotFound, platform.Normalize(err).Code)
	})

	t.Run("Relatórios não vazam entre instâncias do adaptador", func(t *testing.T) {
		first := newReportTestAdapter(t)
		second := newReportTestAdapter(t)

		created, err := first.CreateReport(ctx, domain.ReportConfig{Type: "ads"})
		require.NoError(t, err)

		_, found := second.GetReport(ctx, created.ID)
		assert.False(t, found)
	})
}
