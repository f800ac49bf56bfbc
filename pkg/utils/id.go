package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateQuoteNumber gera o número público de um orçamento (ex.: ORC-7K2M9Q)
func GenerateQuoteNumber() (string, error) {
	suffix, err := gonanoid.Generate(characters, 6)
	if err != nil {
		return "", err
	}
	return "ORC-" + suffix, nil
}
