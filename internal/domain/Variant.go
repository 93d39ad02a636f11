package domain

import "time"

type VariantStatus string

const (
	VariantStatusDraft   VariantStatus = "draft"
	VariantStatusActive  VariantStatus = "active"
	VariantStatusPaused  VariantStatus = "paused"
	VariantStatusDeleted VariantStatus = "deleted"
)

// PauseSource identifica quem pausou a variante
type PauseSource string

const (
	PauseSourceManual    PauseSource = "manual"
	PauseSourceOptimizer PauseSource = "optimizer"
)

var variantTransitions = map[VariantStatus][]VariantStatus{
	VariantStatusDraft:  {VariantStatusActive},
	VariantStatusActive: {VariantStatusPaused, VariantStatusDeleted},
	VariantStatusPaused: {VariantStatusActive, VariantStatusDeleted},
}

func CanTransitionVariant(from, to VariantStatus) bool {
	for _, allowed := range variantTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ExternalAdIDs são os identificadores do anúncio na plataforma de mídia
type ExternalAdIDs struct {
	CampaignID string `json:"campaign_id,omitempty"`
	AdSetID    string `json:"adset_id,omitempty"`
	CreativeID string `json:"creative_id,omitempty"`
	AdID       string `json:"ad_id,omitempty"`
}

func (e ExternalAdIDs) IsPublished() bool {
	return e.AdID != ""
}

type Variant struct {
	ID           string        `json:"id"`
	ExperimentID string        `json:"experiment_id" validate:"required"`
	ProductID    string        `json:"product_id" validate:"required"`
	Headline     string        `json:"headline" validate:"required,max=255"`
	Body         string        `json:"body" validate:"required"`
	CallToAction string        `json:"call_to_action" validate:"required,max=64"`
	ImageURL     string        `json:"image_url,omitempty" validate:"omitempty,url"`
	External     ExternalAdIDs `json:"external"`
	Status       VariantStatus `json:"status" validate:"oneof=draft active paused deleted"`
	PausedBy     *PauseSource  `json:"paused_by,omitempty"`
	PausedAt     *time.Time    `json:"paused_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type CreateVariantRequest struct {
	ExperimentID string         `json:"experiment_id"`
	Headline     string         `json:"headline"`
	Body         string         `json:"body"`
	CallToAction string         `json:"call_to_action"`
	ImageURL     string         `json:"image_url,omitempty"`
	External     *ExternalAdIDs `json:"external,omitempty"`
	Status       VariantStatus  `json:"status,omitempty"`
}

// CreativeDraft é o conteúdo criativo devolvido pelo gerador de variantes
type CreativeDraft struct {
	Headline     string `json:"headline"`
	Body         string `json:"body"`
	CallToAction string `json:"call_to_action"`
	ImageURL     string `json:"image_url,omitempty"`
}

// BudgetOptions são os parâmetros de orçamento enviados ao publicar um anúncio
type BudgetOptions struct {
	DailyBudget float64 `json:"daily_budget"`
	Objective   string  `json:"objective"`
}

// VariantCascade descreve uma mudança em lote de status das variantes de um experimento
type VariantCascade struct {
	From          VariantStatus
	To            VariantStatus
	OnlyPausedBy  *PauseSource
	SetPausedBy   *PauseSource
	TransitionsAt time.Time
}
