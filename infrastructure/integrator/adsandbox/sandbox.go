package adsandbox

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/pkg/utils"
)

const serviceName = "adsandbox"

type adStatus string

const (
	adStatusActive adStatus = "ACTIVE"
	adStatusPaused adStatus = "PAUSED"
)

type ad struct {
	variantID   string
	status      adStatus
	dailyBudget float64
	createdAt   time.Time
	pausedAt    time.Time
	profile     deliveryProfile
}

// deliveryProfile define o desempenho sintético de um anúncio, derivado do ID da variante
type deliveryProfile struct {
	impressionsPerHour int64
	ctrBasisPoints     int64
	leadBasisPoints    int64
	cpm                float64
}

// Sandbox é uma plataforma de anúncios em memória com contadores determinísticos
type Sandbox struct {
	mu  sync.Mutex
	ads map[string]*ad
	seq int
	now func() time.Time
}

func New() *Sandbox {
	return &Sandbox{
		ads: make(map[string]*ad),
		now: time.Now,
	}
}

func (s *Sandbox) CreateAd(_ context.Context, variant *domain.Variant, budget domain.BudgetOptions) (*domain.ExternalAdIDs, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	external := &domain.ExternalAdIDs{
		CampaignID: fmt.Sprintf("sbx-cmp-%d", s.seq),
		AdSetID:    fmt.Sprintf("sbx-set-%d", s.seq),
		CreativeID: fmt.Sprintf("sbx-crt-%d", s.seq),
		AdID:       fmt.Sprintf("sbx-ad-%d", s.seq),
	}

	s.ads[external.AdID] = &ad{
		variantID:   variant.ID,
		status:      adStatusActive,
		dailyBudget: budget.DailyBudget,
		createdAt:   s.now(),
		profile:     profileFor(variant.ID),
	}

	logrus.WithFields(logrus.Fields{
		"variant_id": variant.ID,
		"ad_id":      external.AdID,
	}).Info("Anúncio criado no sandbox")

	return external, nil
}

func (s *Sandbox) PauseAd(_ context.Context, variant *domain.Variant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.ads[variant.External.AdID]
	if !ok {
		return domain.NewExternalServiceError(serviceName, "pause_ad", fmt.Errorf("anúncio %q não existe", variant.External.AdID))
	}

	if current.status == adStatusPaused {
		return nil
	}

	current.status = adStatusPaused
	current.pausedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"variant_id": variant.ID,
		"ad_id":      variant.External.AdID,
	}).Info("Anúncio pausado no sandbox")

	return nil
}

// GetAdInsights devolve os contadores acumulados; anúncios pausados param de entregar
func (s *Sandbox) GetAdInsights(_ context.Context, adID string) (*domain.RawCounters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.ads[adID]
	if !ok {
		logrus.WithField("ad_id", adID).Warn("Anúncio desconhecido no sandbox")
		return nil, nil
	}

	until := s.now()
	if current.status == adStatusPaused {
		until = current.pausedAt
	}

	hours := until.Sub(current.createdAt).Hours()
	if hours <= 0 {
		return nil, nil
	}

	return current.profile.counters(hours, current.dailyBudget), nil
}

func (p deliveryProfile) counters(hours, dailyBudget float64) *domain.RawCounters {
	impressions := int64(hours * float64(p.impressionsPerHour))

	// O gasto nunca passa do orçamento diário acumulado
	if dailyBudget > 0 {
		maxSpend := dailyBudget * math.Ceil(hours/24)
		if maxImpressions := int64(maxSpend / p.cpm * 1000); impressions > maxImpressions {
			impressions = maxImpressions
		}
	}

	clicks := impressions * p.ctrBasisPoints / 10000
	leads := clicks * p.leadBasisPoints / 10000
	spend := utils.RoundWithTwoDecimalPlace(float64(impressions) * p.cpm / 1000)

	return &domain.RawCounters{
		Impressions: impressions,
		Clicks:      clicks,
		Leads:       leads,
		Spend:       spend,
	}
}

func profileFor(variantID string) deliveryProfile {
	h := fnv.New32a()
	_, _ = h.Write([]byte(variantID))
	sum := int64(h.Sum32())

	return deliveryProfile{
		impressionsPerHour: 500 + sum%1500,
		ctrBasisPoints:     50 + (sum>>8)%250,
		leadBasisPoints:    200 + (sum>>16)%1300,
		cpm:                float64(8 + (sum>>4)%20),
	}
}
