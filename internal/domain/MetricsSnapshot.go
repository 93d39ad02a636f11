package domain

import "time"

type RawCounters struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Leads       int64   `json:"leads"`
	Spend       float64 `json:"spend"`
}

// HasNegative indica se algum contador está abaixo de zero
func (c RawCounters) HasNegative() bool {
	return c.Impressions < 0 || c.Clicks < 0 || c.Leads < 0 || c.Spend < 0
}

type MetricsSnapshot struct {
	ID        int64  `json:"id"`
	VariantID string `json:"variant_id"`
	RawCounters
	CTR        float64   `json:"ctr"`
	CPL        *float64  `json:"cpl"`
	CPC        *float64  `json:"cpc"`
	CapturedAt time.Time `json:"captured_at"`
}

// NewMetricsSnapshot monta um snapshot calculando as métricas derivadas
func NewMetricsSnapshot(variantID string, counters RawCounters, capturedAt time.Time) *MetricsSnapshot {
	return &MetricsSnapshot{
		VariantID:   variantID,
		RawCounters: counters,
		CTR:         ComputeCTR(counters.Clicks, counters.Impressions),
		CPL:         ComputeCostPer(counters.Spend, counters.Leads),
		CPC:         ComputeCostPer(counters.Spend, counters.Clicks),
		CapturedAt:  capturedAt,
	}
}

// ComputeCTR retorna cliques/impressões, ou 0 sem impressões
func ComputeCTR(clicks, impressions int64) float64 {
	if impressions == 0 {
		return 0
	}
	return float64(clicks) / float64(impressions)
}

// ComputeCostPer retorna spend/count, ou nil quando count é zero
func ComputeCostPer(spend float64, count int64) *float64 {
	if count == 0 {
		return nil
	}
	value := spend / float64(count)
	return &value
}

type MetricsAggregate struct {
	TotalImpressions int64    `json:"total_impressions"`
	TotalClicks      int64    `json:"total_clicks"`
	TotalLeads       int64    `json:"total_leads"`
	TotalSpend       float64  `json:"total_spend"`
	AvgCTR           float64  `json:"avg_ctr"`
	AvgCPL           *float64 `json:"avg_cpl"`
	AvgCPC           *float64 `json:"avg_cpc"`
}

type TrendDirection string

const (
	TrendStable    TrendDirection = "stable"
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
)

type MetricsTrend struct {
	CTRTrend   TrendDirection `json:"ctr_trend"`
	CPLTrend   TrendDirection `json:"cpl_trend"`
	LeadGrowth int64          `json:"lead_growth"`
}
