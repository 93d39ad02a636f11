package optimizing

import (
	"context"

	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

// AdPlatform define as operações usadas na plataforma de anúncios
type AdPlatform interface {
	// PauseAd pausa o anúncio externo da variante
	PauseAd(ctx context.Context, variant *domain.Variant) error

	// CreateAd publica a variante e retorna os identificadores externos criados
	CreateAd(ctx context.Context, variant *domain.Variant, budget domain.BudgetOptions) (*domain.ExternalAdIDs, error)

	// GetAdInsights obtém os contadores acumulados do anúncio
	GetAdInsights(ctx context.Context, adID string) (*domain.RawCounters, error)
}

// VariantGenerator define o gerador de criativos para variantes de reposição
type VariantGenerator interface {
	// Generate produz até count criativos para o produto
	Generate(ctx context.Context, product *domain.Product, count int) ([]domain.CreativeDraft, error)
}
