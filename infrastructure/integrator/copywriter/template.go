package copywriter

import (
	"context"
	"fmt"
	"sync"

	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

var (
	headlineTemplates = []string{
		"%s: comece hoje",
		"Descubra o %s",
		"%s para quem quer resultado",
		"Últimas vagas: %s",
	}

	bodyTemplates = []string{
		"%s. Cadastre-se e receba mais informações.",
		"%s. Garanta seu lugar agora.",
		"%s. Fale com a gente e tire suas dúvidas.",
	}

	callToActions = []string{"LEARN_MORE", "SIGN_UP", "APPLY_NOW"}
)

// TemplateGenerator produz criativos a partir de modelos fixos, sem chamadas externas
type TemplateGenerator struct {
	mu  sync.Mutex
	seq int
}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) Generate(_ context.Context, product *domain.Product, count int) ([]domain.CreativeDraft, error) {
	if count <= 0 {
		return []domain.CreativeDraft{}, nil
	}
	if product == nil {
		return nil, domain.NewExternalServiceError(serviceName, "generate", fmt.Errorf("produto não informado"))
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	drafts := make([]domain.CreativeDraft, 0, count)
	for i := 0; i < count; i++ {
		n := g.seq
		g.seq++

		drafts = append(drafts, domain.CreativeDraft{
			Headline:     truncate(fmt.Sprintf(headlineTemplates[n%len(headlineTemplates)], product.Name), maxHeadlineLength),
			Body:         fmt.Sprintf(bodyTemplates[n%len(bodyTemplates)], product.Concept),
			CallToAction: callToActions[n%len(callToActions)],
		})
	}

	return drafts, nil
}
