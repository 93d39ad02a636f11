package domain

import "time"

// Product é o conceito de produto a partir do qual os criativos são gerados
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,max=255"`
	Concept   string    `json:"concept" validate:"required"`
	Audience  string    `json:"audience,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
