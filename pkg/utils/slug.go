package utils

import (
	"strings"
	"unicode"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto aleatório para compor slugs públicos
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// Slugify normaliza um nome para uso em URL: minúsculas, hífens no lugar de
// espaços e somente caracteres alfanuméricos ASCII
func Slugify(name string) string {
	var builder strings.Builder
	lastHyphen := true

	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			builder.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				builder.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(builder.String(), "-")
}
