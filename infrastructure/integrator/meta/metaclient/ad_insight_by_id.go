package metaclient

import (
	"context"
	"net/http"
	"net/url"

	metadomain "github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/meta/domain"
)

type ResponseAdInsight struct {
	Data []metadomain.AdInsight `json:"data"`
}

// GetAdInsights retorna os contadores acumulados do anúncio desde a criação; nil quando ainda não há entrega
func (c *MetaClient) GetAdInsights(ctx context.Context, adID string) (*metadomain.AdInsight, error) {
	params := url.Values{}
	params.Add("fields", "ad_id,impressions,clicks,spend,actions,objective")
	params.Add("date_preset", "maximum")

	var response ResponseAdInsight
	if err := c.do(ctx, http.MethodGet, adID+"/insights", params, &response); err != nil {
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}
