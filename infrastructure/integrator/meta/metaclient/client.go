package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	UpdateStatus(ctx context.Context, objectID, status string) error
	CreateObject(ctx context.Context, edge string, params url.Values) (string, error)
	GetAdInsights(ctx context.Context, adID string) (*metadomain.AdInsight, error)
}

type MetaClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithHTTP permite injetar o http.Client (usado nos testes)
func NewClientWithHTTP(cfg *config.Config, httpClient *http.Client) Client {
	return &MetaClient{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// do executa a requisição na Graph API e decodifica o corpo em out
func (c *MetaClient) do(ctx context.Context, method, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/%s", strings.TrimRight(c.cfg.Meta.URL, "/"), strings.TrimLeft(path, "/"))

	var (
		req *http.Request
		err error
	)
	if method == http.MethodGet {
		req, err = http.NewRequestWithContext(ctx, method, endpoint+"?"+params.Encode(), nil)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, strings.NewReader(params.Encode()))
		if req != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return fmt.Errorf("erro ao decodificar resposta do Meta: %w", err)
	}

	return nil
}

// HandleResponse lê o corpo e converte respostas de erro em *metadomain.APIError
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	errorResp, parseErr := ParseErrorResponse(body)
	if parseErr != nil {
		return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
	}

	if errorResp.IsTokenExpired() {
		logrus.Warnf("Token expirado detectado pela API Meta. Código: %d, Subcódigo: %d",
			errorResp.Error.Code, errorResp.Error.ErrorSubcode)
	}

	return nil, &metadomain.APIError{StatusCode: resp.StatusCode, Details: errorResp.Error}
}

// ParseErrorResponse tenta parsear um erro da API do Meta
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil, err
	}

	if errorResp.Error.Code == 0 && errorResp.Error.Message == "" {
		return nil, errors.New("corpo sem envelope de erro")
	}

	return &errorResp, nil
}
