// Package extract parses free boleto text into structured fields using the
// Gemini API. Callers treat any failure as "no suggestion".
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"encore.app/boletos/model"
)

const geminiModel = "gemini-2.0-flash"

const extractionPrompt = `Analise o seguinte texto de um boleto ou fatura e extraia as informações principais em formato JSON estruturado.

REGRAS:
1. Se houver uma "Linha Digitável", extraia-a como 'barcode'.
2. Identifique o valor (amount) como um número decimal.
3. A data de vencimento (due_date) deve estar estritamente no formato YYYY-MM-DD. Se encontrar algo como 25/10/2023, converta para 2023-10-25.
4. Dê um título curto e amigável ao boleto.
5. Categorize o gasto em uma destas opções: %s.

TEXTO:
%s`

type Gemini struct {
	client *genai.Client
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Gemini{client: client}, nil
}

func (g *Gemini) Extract(ctx context.Context, text string) (*model.ExtractedInfo, error) {
	prompt := fmt.Sprintf(extractionPrompt, strings.Join(model.Categories, ", "), text)

	resp, err := g.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":    {Type: genai.TypeString},
				"amount":   {Type: genai.TypeNumber},
				"due_date": {Type: genai.TypeString},
				"barcode":  {Type: genai.TypeString},
				"category": {Type: genai.TypeString},
			},
			Required: []string{"title", "amount", "due_date", "category"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	var out struct {
		Title    string  `json:"title"`
		Amount   float64 `json:"amount"`
		DueDate  string  `json:"due_date"`
		Barcode  string  `json:"barcode"`
		Category string  `json:"category"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &out); err != nil {
		return nil, fmt.Errorf("decode extraction response: %w", err)
	}

	info := &model.ExtractedInfo{
		Title:    out.Title,
		Amount:   decimal.NewFromFloat(out.Amount),
		DueDate:  out.DueDate,
		Category: out.Category,
	}
	if out.Barcode != "" {
		info.Barcode = &out.Barcode
	}
	return info, nil
}
