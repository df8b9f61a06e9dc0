package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idLength   = 12
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// NewID gera um identificador curto e seguro para URLs
func NewID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}
