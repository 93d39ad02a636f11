package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID gera o ID curto usado por produtos, experimentos e variantes
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
