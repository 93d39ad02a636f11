package copywriter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	serviceName = "copywriter"

	defaultCallToAction = "LEARN_MORE"
	maxHeadlineLength   = 255
	maxCallToAction     = 64
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature,omitempty"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// draftsEnvelope é o JSON que o modelo deve devolver no conteúdo da mensagem
type draftsEnvelope struct {
	Variants []domain.CreativeDraft `json:"variants"`
}

// OpenAIGenerator gera criativos num endpoint de chat completions compatível com a OpenAI
type OpenAIGenerator struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewOpenAIGenerator(cfg *config.Config) *OpenAIGenerator {
	return &OpenAIGenerator{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

// NewOpenAIGeneratorWithHTTP permite injetar o http.Client (usado nos testes)
func NewOpenAIGeneratorWithHTTP(cfg *config.Config, httpClient *http.Client) *OpenAIGenerator {
	return &OpenAIGenerator{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, product *domain.Product, count int) ([]domain.CreativeDraft, error) {
	if count <= 0 {
		return []domain.CreativeDraft{}, nil
	}
	if product == nil {
		return nil, domain.NewExternalServiceError(serviceName, "generate", fmt.Errorf("produto não informado"))
	}

	timeout := g.cfg.Generator.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	content, err := g.complete(ctx, buildMessages(product, count))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"product_id": product.ID,
			"count":      count,
			"error":      err.Error(),
		}).Error("Erro ao chamar o gerador de criativos")
		return nil, domain.NewExternalServiceError(serviceName, "generate", err)
	}

	drafts, err := parseDrafts(content, count)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"product_id": product.ID,
			"error":      err.Error(),
		}).Error("Resposta do gerador de criativos inválida")
		return nil, domain.NewExternalServiceError(serviceName, "generate", err)
	}

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"requested":  count,
		"generated":  len(drafts),
	}).Info("Criativos gerados")

	return drafts, nil
}

func (g *OpenAIGenerator) complete(ctx context.Context, messages []chatMessage) (string, error) {
	payload, err := json.Marshal(chatCompletionRequest{
		Model:          g.cfg.Generator.Model,
		Messages:       messages,
		Temperature:    0.9,
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Generator.URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.Generator.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("requisição falhou com status %d: %s", resp.StatusCode, truncate(string(body), 512))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("resposta sem choices")
	}

	return completion.Choices[0].Message.Content, nil
}

func buildMessages(product *domain.Product, count int) []chatMessage {
	system := "Você é um redator de anúncios de geração de leads. " +
		`Responda apenas com JSON no formato {"variants":[{"headline":"","body":"","call_to_action":""}]}. ` +
		"call_to_action deve ser um tipo de CTA do Meta como LEARN_MORE, SIGN_UP ou APPLY_NOW."

	var user strings.Builder
	fmt.Fprintf(&user, "Gere %d variantes de anúncio distintas para o produto abaixo.\n", count)
	fmt.Fprintf(&user, "Nome: %s\n", product.Name)
	fmt.Fprintf(&user, "Conceito: %s\n", product.Concept)
	if product.Audience != "" {
		fmt.Fprintf(&user, "Público: %s\n", product.Audience)
	}

	return []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: user.String()},
	}
}

// parseDrafts descarta rascunhos sem título ou texto e limita ao número pedido
func parseDrafts(content string, count int) ([]domain.CreativeDraft, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var envelope draftsEnvelope
	if err := json.Unmarshal([]byte(content), &envelope); err != nil {
		return nil, fmt.Errorf("conteúdo não é JSON válido: %w", err)
	}

	drafts := make([]domain.CreativeDraft, 0, count)
	for _, draft := range envelope.Variants {
		draft.Headline = truncate(strings.TrimSpace(draft.Headline), maxHeadlineLength)
		draft.Body = strings.TrimSpace(draft.Body)
		draft.CallToAction = strings.ToUpper(strings.TrimSpace(draft.CallToAction))

		if draft.Headline == "" || draft.Body == "" {
			continue
		}
		if draft.CallToAction == "" || len(draft.CallToAction) > maxCallToAction {
			draft.CallToAction = defaultCallToAction
		}

		drafts = append(drafts, draft)
		if len(drafts) == count {
			break
		}
	}

	if len(drafts) == 0 {
		return nil, fmt.Errorf("nenhum criativo válido na resposta")
	}

	return drafts, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
