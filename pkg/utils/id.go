package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateOrderID gera um identificador para vendas cuja origem não traz
// order_id. O prefixo GEN- distingue IDs sintéticos dos reais.
func GenerateOrderID() string {
	id, err := gonanoid.Generate(characters, 9)
	if err != nil {
		return "GEN-000000000"
	}
	return "GEN-" + id
}
