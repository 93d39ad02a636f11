package meta

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	serviceName = "meta"

	statusActive = "ACTIVE"
	statusPaused = "PAUSED"

	defaultTargeting = `{"geo_locations":{"countries":["BR"]}}`
)

// MetaIntegrator publica, pausa e mede anúncios na Graph API
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) PauseAd(ctx context.Context, variant *domain.Variant) error {
	if !variant.External.IsPublished() {
		return domain.NewExternalServiceError(serviceName, "pause_ad", fmt.Errorf("variante %s sem anúncio publicado", variant.ID))
	}

	if err := s.Client.UpdateStatus(ctx, variant.External.AdID, statusPaused); err != nil {
		logrus.WithFields(logrus.Fields{
			"variant_id": variant.ID,
			"ad_id":      variant.External.AdID,
			"error":      err.Error(),
		}).Error("ads: failed to pause ad")
		return domain.NewExternalServiceError(serviceName, "pause_ad", err)
	}

	logrus.WithFields(logrus.Fields{
		"variant_id": variant.ID,
		"ad_id":      variant.External.AdID,
	}).Info("ads: ad paused")

	return nil
}

// CreateAd cria campanha, conjunto, criativo e anúncio, nessa ordem
func (s *MetaIntegrator) CreateAd(ctx context.Context, variant *domain.Variant, budget domain.BudgetOptions) (*domain.ExternalAdIDs, error) {
	name := fmt.Sprintf("opt-%s-%s", variant.ExperimentID, variant.ID)
	external := &domain.ExternalAdIDs{}

	campaignID, err := s.Client.CreateObject(ctx, "campaigns", url.Values{
		"name":                  {name},
		"objective":             {budget.Objective},
		"status":                {statusActive},
		"special_ad_categories": {"[]"},
	})
	if err != nil {
		return nil, s.createError("campaign", variant, err)
	}
	external.CampaignID = campaignID

	promotedObject, err := json.MarshalToString(map[string]string{"page_id": s.cfg.Meta.PageID})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar promoted_object: %w", err)
	}

	adSetID, err := s.Client.CreateObject(ctx, "adsets", url.Values{
		"name":              {name},
		"campaign_id":       {campaignID},
		"daily_budget":      {strconv.FormatInt(toCents(budget.DailyBudget), 10)},
		"billing_event":     {"IMPRESSIONS"},
		"optimization_goal": {"LEAD_GENERATION"},
		"promoted_object":   {promotedObject},
		"targeting":         {defaultTargeting},
		"status":            {statusActive},
	})
	if err != nil {
		return nil, s.createError("adset", variant, err)
	}
	external.AdSetID = adSetID

	storySpec, err := s.objectStorySpec(variant)
	if err != nil {
		return nil, err
	}

	creativeID, err := s.Client.CreateObject(ctx, "adcreatives", url.Values{
		"name":              {name},
		"object_story_spec": {storySpec},
	})
	if err != nil {
		return nil, s.createError("creative", variant, err)
	}
	external.CreativeID = creativeID

	adID, err := s.Client.CreateObject(ctx, "ads", url.Values{
		"name":     {name},
		"adset_id": {adSetID},
		"creative": {fmt.Sprintf(`{"creative_id":"%s"}`, creativeID)},
		"status":   {statusActive},
	})
	if err != nil {
		return nil, s.createError("ad", variant, err)
	}
	external.AdID = adID

	logrus.WithFields(logrus.Fields{
		"variant_id":  variant.ID,
		"campaign_id": external.CampaignID,
		"adset_id":    external.AdSetID,
		"creative_id": external.CreativeID,
		"ad_id":       external.AdID,
	}).Info("ads: ad published")

	return external, nil
}

func (s *MetaIntegrator) objectStorySpec(variant *domain.Variant) (string, error) {
	linkData := map[string]any{
		"name":    variant.Headline,
		"message": variant.Body,
		"link":    s.cfg.Meta.LandingURL,
		"call_to_action": map[string]any{
			"type":  variant.CallToAction,
			"value": map[string]string{"link": s.cfg.Meta.LandingURL},
		},
	}
	if variant.ImageURL != "" {
		linkData["picture"] = variant.ImageURL
	}

	spec, err := json.MarshalToString(map[string]any{
		"page_id":   s.cfg.Meta.PageID,
		"link_data": linkData,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao serializar object_story_spec: %w", err)
	}

	return spec, nil
}

func (s *MetaIntegrator) createError(object string, variant *domain.Variant, err error) error {
	logrus.WithFields(logrus.Fields{
		"variant_id": variant.ID,
		"object":     object,
		"error":      err.Error(),
	}).Error("ads: failed to create object")

	return domain.NewExternalServiceError(serviceName, "create_"+object, err)
}

// GetAdInsights converte os contadores da Graph API; nil quando o anúncio ainda não entregou
func (s *MetaIntegrator) GetAdInsights(ctx context.Context, adID string) (*domain.RawCounters, error) {
	insight, err := s.Client.GetAdInsights(ctx, adID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"error": err.Error(),
		}).Error("insights: failed to get ad insights from API")
		return nil, domain.NewExternalServiceError(serviceName, "get_ad_insights", err)
	}

	if insight == nil {
		return nil, nil
	}

	return FactoryRawCounters(insight), nil
}

// FactoryRawCounters converte os campos em string do insight; valores inválidos viram zero
func FactoryRawCounters(insight *metadomain.AdInsight) *domain.RawCounters {
	impressions, err := strconv.ParseInt(insight.Impressions, 10, 64)
	if err != nil && insight.Impressions != "" {
		logrus.WithFields(logrus.Fields{
			"impressions_value": insight.Impressions,
			"error":             err.Error(),
		}).Warn("insights: error converting impressions to integer")
	}

	clicks, err := strconv.ParseInt(insight.Clicks, 10, 64)
	if err != nil && insight.Clicks != "" {
		logrus.WithFields(logrus.Fields{
			"clicks_value": insight.Clicks,
			"error":        err.Error(),
		}).Warn("insights: error converting clicks to integer")
	}

	spend, err := strconv.ParseFloat(insight.Spend, 64)
	if err != nil && insight.Spend != "" {
		logrus.WithFields(logrus.Fields{
			"spend_value": insight.Spend,
			"error":       err.Error(),
		}).Warn("insights: error converting spend to float")
	}

	return &domain.RawCounters{
		Impressions: impressions,
		Clicks:      clicks,
		Leads:       insight.GetLeads(),
		Spend:       spend,
	}
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
