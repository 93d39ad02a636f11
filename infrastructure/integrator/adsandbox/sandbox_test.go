package adsandbox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time { return c.current }

func newTestSandbox() (*Sandbox, *fakeClock) {
	clock := &fakeClock{current: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	sandbox := New()
	sandbox.now = clock.now
	return sandbox, clock
}

func TestSandbox_CicloDeVida(t *testing.T) {
	ctx := context.Background()
	sandbox, clock := newTestSandbox()
	variant := &domain.Variant{ID: "VAR001", ExperimentID: "EXP001"}

	external, err := sandbox.CreateAd(ctx, variant, domain.BudgetOptions{DailyBudget: 1000, Objective: "OUTCOME_LEADS"})
	require.NoError(t, err)
	assert.Equal(t, &domain.ExternalAdIDs{CampaignID: "sbx-cmp-1", AdSetID: "sbx-set-1", CreativeID: "sbx-crt-1", AdID: "sbx-ad-1"}, external)
	variant.External = *external

	counters, err := sandbox.GetAdInsights(ctx, external.AdID)
	require.NoError(t, err)
	assert.Nil(t, counters, "sem tempo decorrido não há entrega")

	clock.current = clock.current.Add(10 * time.Hour)
	first, err := sandbox.GetAdInsights(ctx, external.AdID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Greater(t, first.Impressions, int64(0))
	assert.LessOrEqual(t, first.Clicks, first.Impressions)
	assert.LessOrEqual(t, first.Leads, first.Clicks)
	assert.False(t, first.HasNegative())

	again, err := sandbox.GetAdInsights(ctx, external.AdID)
	require.NoError(t, err)
	assert.Equal(t, first, again, "contadores são determinísticos")

	require.NoError(t, sandbox.PauseAd(ctx, variant))
	clock.current = clock.current.Add(10 * time.Hour)

	frozen, err := sandbox.GetAdInsights(ctx, external.AdID)
	require.NoError(t, err)
	assert.Equal(t, first, frozen, "anúncio pausado não acumula")

	assert.NoError(t, sandbox.PauseAd(ctx, variant), "pausar de novo é idempotente")
}

func TestSandbox_PauseAdDesconhecido(t *testing.T) {
	sandbox, _ := newTestSandbox()

	err := sandbox.PauseAd(context.Background(), &domain.Variant{ID: "VAR404", External: domain.ExternalAdIDs{AdID: "sbx-ad-404"}})
	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestSandbox_GetAdInsightsDesconhecido(t *testing.T) {
	sandbox, _ := newTestSandbox()

	counters, err := sandbox.GetAdInsights(context.Background(), "sbx-ad-404")
	assert.NoError(t, err)
	assert.Nil(t, counters)
}

func TestDeliveryProfile_RespeitaOrcamento(t *testing.T) {
	profile := deliveryProfile{impressionsPerHour: 1000, ctrBasisPoints: 100, leadBasisPoints: 1000, cpm: 10}

	tests := []struct {
		name        string
		hours       float64
		dailyBudget float64
		expected    *domain.RawCounters
	}{
		{
			name:        "Abaixo do orçamento",
			hours:       5,
			dailyBudget: 100,
			expected:    &domain.RawCounters{Impressions: 5000, Clicks: 50, Leads: 5, Spend: 50},
		},
		{
			name:        "Limitado ao orçamento do dia",
			hours:       20,
			dailyBudget: 100,
			expected:    &domain.RawCounters{Impressions: 10000, Clicks: 100, Leads: 10, Spend: 100},
		},
		{
			name:        "Sem orçamento não limita",
			hours:       20,
			dailyBudget: 0,
			expected:    &domain.RawCounters{Impressions: 20000, Clicks: 200, Leads: 20, Spend: 200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, profile.counters(tt.hours, tt.dailyBudget))
		})
	}
}
