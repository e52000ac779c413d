package geminiclient

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/biznexus-api/internal/config"
	"google.golang.org/genai"
)

// Client é a fronteira mínima com a API do Gemini: texto entra, texto sai.
// Streaming, retries e seleção de modelo ficam fora do núcleo.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewClient cria o cliente da API do Gemini
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cliente do Gemini")
	}

	return &GeminiClient{
		client: client,
		model:  cfg.Gemini.Model,
	}, nil
}

// GenerateText envia um único prompt e devolve o texto da resposta.
// Sem retry: falha é terminal para esta operação e deve ser reiniciada
// pelo usuário.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", errors.Wrap(err, "erro na chamada ao Gemini")
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("resposta vazia do Gemini")
	}

	return text, nil
}
