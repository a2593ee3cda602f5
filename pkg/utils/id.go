package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID devuelve un identificador corto para contratos y registros locales
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 10)
}
