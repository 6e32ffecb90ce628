// Package agent generates investment suggestions for a portfolio snapshot
// using the Gemini API.
package agent

import (
	"context"
	"fmt"

	"github.com/papertrade/papertrade"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const systemPrompt = "You are a financial advisor analyzing market data and " +
	"portfolio composition for a paper-trading account. Be concise and " +
	"concrete; this is a simulation, so skip the usual disclaimers."

// Advisor produces prose investment suggestions from a read-only view of the
// portfolio and a market summary. It never mutates the portfolio.
type Advisor struct {
	ModelName string
	client    *genai.Client
}

// NewAdvisor creates an Advisor on an initialized Gemini client.
func NewAdvisor(client *genai.Client) *Advisor {
	return &Advisor{ModelName: DefaultModel, client: client}
}

// Suggest asks the model for recommendations given the current holdings,
// their performance and the market context, and returns them as markdown.
func (a *Advisor) Suggest(ctx context.Context, snap *papertrade.Snapshot, report *papertrade.PerformanceReport, market papertrade.MarketSummary) (string, error) {
	prompt := BuildPrompt(snap, report, market)

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}
	resp, err := a.client.Models.GenerateContent(ctx, a.ModelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("cannot generate suggestions: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model %s", a.ModelName)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
