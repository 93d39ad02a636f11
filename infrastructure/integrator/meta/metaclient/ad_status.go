package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	metadomain "github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/meta/domain"
)

// UpdateStatus altera o status (ACTIVE, PAUSED) de um anúncio, conjunto ou campanha
func (c *MetaClient) UpdateStatus(ctx context.Context, objectID, status string) error {
	params := url.Values{}
	params.Set("status", status)

	var response metadomain.SuccessResponse
	if err := c.do(ctx, http.MethodPost, objectID, params, &response); err != nil {
		return err
	}

	if !response.Success {
		return fmt.Errorf("meta não confirmou a alteração de status de %s para %s", objectID, status)
	}

	return nil
}

// CreateObject cria um objeto sob a conta de anúncios (campaigns, adsets, adcreatives, ads) e retorna o id
func (c *MetaClient) CreateObject(ctx context.Context, edge string, params url.Values) (string, error) {
	path := fmt.Sprintf("act_%s/%s", c.cfg.Meta.AdAccountID, edge)

	var response metadomain.CreateResponse
	if err := c.do(ctx, http.MethodPost, path, params, &response); err != nil {
		return "", err
	}

	if response.ID == "" {
		return "", fmt.Errorf("meta não retornou id ao criar %s", edge)
	}

	return response.ID, nil
}
