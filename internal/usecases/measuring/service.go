package measuring

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

const (
	ctrStableThreshold = 0.001
	cplStableThreshold = 0.01
)

// MetricsStore concentra o registro de snapshots e o cálculo das métricas derivadas
type MetricsStore interface {
	RecordSnapshot(variantID string, counters domain.RawCounters) (*domain.MetricsSnapshot, error)
	LatestSnapshot(variantID string) (*domain.MetricsSnapshot, error)
	LatestSnapshots(variantIDs []string) (map[string]*domain.MetricsSnapshot, error)
	History(variantID string) ([]*domain.MetricsSnapshot, error)
	Aggregate(variantIDs []string) (*domain.MetricsAggregate, error)
	Trend(variantID string, lastN int) (*domain.MetricsTrend, error)
}

type Service struct {
	snapshotRepo repository.MetricsSnapshotRepository
	variantRepo  repository.VariantRepository
	now          func() time.Time
}

func NewService(snapshotRepo repository.MetricsSnapshotRepository, variantRepo repository.VariantRepository) MetricsStore {
	return &Service{
		snapshotRepo: snapshotRepo,
		variantRepo:  variantRepo,
		now:          time.Now,
	}
}

func (s *Service) RecordSnapshot(variantID string, counters domain.RawCounters) (*domain.MetricsSnapshot, error) {
	if variantID == "" {
		return nil, domain.NewValidationError("variant_id is required")
	}

	if counters.HasNegative() {
		return nil, domain.NewValidationError(fmt.Sprintf(
			"counters must be non-negative (impressions=%d clicks=%d leads=%d spend=%.2f)",
			counters.Impressions, counters.Clicks, counters.Leads, counters.Spend,
		))
	}

	variant, err := s.variantRepo.GetByID(variantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar variante: %w", err)
	}
	if variant == nil {
		return nil, domain.NewVariantNotFoundError(variantID)
	}

	snapshot := domain.NewMetricsSnapshot(variantID, counters, s.now())
	if err := s.snapshotRepo.Append(snapshot); err != nil {
		return nil, fmt.Errorf("erro ao registrar snapshot: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"variant_id":  variantID,
		"snapshot_id": snapshot.ID,
		"impressions": counters.Impressions,
		"leads":       counters.Leads,
		"spend":       counters.Spend,
	}).Debug("Snapshot de métricas registrado")

	return snapshot, nil
}

func (s *Service) LatestSnapshot(variantID string) (*domain.MetricsSnapshot, error) {
	return s.snapshotRepo.GetLatest(variantID)
}

func (s *Service) LatestSnapshots(variantIDs []string) (map[string]*domain.MetricsSnapshot, error) {
	return s.snapshotRepo.GetLatestByVariantIDs(variantIDs)
}

func (s *Service) History(variantID string) ([]*domain.MetricsSnapshot, error) {
	return s.snapshotRepo.ListByVariant(variantID, 0)
}

// Aggregate soma os contadores do último snapshot de cada variante e recalcula as taxas a partir das somas
func (s *Service) Aggregate(variantIDs []string) (*domain.MetricsAggregate, error) {
	latest, err := s.snapshotRepo.GetLatestByVariantIDs(variantIDs)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshots para agregação: %w", err)
	}

	return AggregateSnapshots(latest), nil
}

// AggregateSnapshots é a parte pura de Aggregate
func AggregateSnapshots(latest map[string]*domain.MetricsSnapshot) *domain.MetricsAggregate {
	aggregate := &domain.MetricsAggregate{}

	for _, snapshot := range latest {
		if snapshot == nil {
			continue
		}
		aggregate.TotalImpressions += snapshot.Impressions
		aggregate.TotalClicks += snapshot.Clicks
		aggregate.TotalLeads += snapshot.Leads
		aggregate.TotalSpend += snapshot.Spend
	}

	aggregate.AvgCTR = domain.ComputeCTR(aggregate.TotalClicks, aggregate.TotalImpressions)
	aggregate.AvgCPL = domain.ComputeCostPer(aggregate.TotalSpend, aggregate.TotalLeads)
	aggregate.AvgCPC = domain.ComputeCostPer(aggregate.TotalSpend, aggregate.TotalClicks)

	return aggregate
}

// Trend compara o primeiro e o último snapshot dentre os últimos lastN; lastN <= 0 usa a série inteira
func (s *Service) Trend(variantID string, lastN int) (*domain.MetricsTrend, error) {
	snapshots, err := s.snapshotRepo.ListByVariant(variantID, lastN)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico para tendência: %w", err)
	}

	return ComputeTrend(snapshots), nil
}

// ComputeTrend espera a janela já em ordem de inserção
func ComputeTrend(window []*domain.MetricsSnapshot) *domain.MetricsTrend {
	trend := &domain.MetricsTrend{
		CTRTrend: domain.TrendStable,
		CPLTrend: domain.TrendStable,
	}

	if len(window) < 2 {
		return trend
	}

	first, last := window[0], window[len(window)-1]

	deltaCTR := last.CTR - first.CTR
	if math.Abs(deltaCTR) >= ctrStableThreshold {
		if deltaCTR > 0 {
			trend.CTRTrend = domain.TrendImproving
		} else {
			trend.CTRTrend = domain.TrendDeclining
		}
	}

	// CPL menor é melhor
	if first.CPL != nil && last.CPL != nil {
		deltaCPL := *last.CPL - *first.CPL
		if math.Abs(deltaCPL) >= cplStableThreshold {
			if deltaCPL < 0 {
				trend.CPLTrend = domain.TrendImproving
			} else {
				trend.CPLTrend = domain.TrendDeclining
			}
		}
	}

	trend.LeadGrowth = last.Leads - first.Leads

	return trend
}
