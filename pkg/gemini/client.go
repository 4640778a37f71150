// Package gemini provides a small client for the Gemini API used for smart
// search classification and bio drafting.
//
// The marketplace treats this service as a best-effort collaborator: a failed
// or empty response is "no confident match" for classification and a fixed
// fallback string for bios, never an error surfaced to the user.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"
	"google.golang.org/genai"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

// FallbackBio is returned whenever bio generation is unavailable or fails.
const FallbackBio = "Experienced professional ready to help."

// SmartMatch is the classifier's verdict for a free-text search query.
type SmartMatch struct {
	Category        model.Category `json:"category"`
	Reasoning       string         `json:"reasoning"`
	SuggestedAction string         `json:"suggested_action"`
}

// Client represents a Gemini client used for classification and generation.
type Client struct {
	apiKey  string
	model   string
	timeout time.Duration // per-call deadline to avoid indefinite suspension

	mu          sync.Mutex // guards the lazy init below
	genaiClient *genai.Client
}

// NewClient creates a new Gemini Client instance. An empty API key is allowed:
// every call then takes the local fallback path.
func NewClient(apiKey, modelID string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   modelID,
		timeout: timeout,
	}
}

// client lazily builds the underlying GenAI client. Safe for concurrent use:
// overlapping requests build it at most once.
func (c *Client) client(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.genaiClient != nil {
		return c.genaiClient, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  c.apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	c.genaiClient = client
	return client, nil
}

// classifyResponse mirrors the JSON schema requested from the model.
type classifyResponse struct {
	Category        string `json:"category"`
	Reasoning       string `json:"reasoning"`
	SuggestedAction string `json:"suggestedAction"`
}

// Classify matches a search query against the closed category set. A nil
// result means no confident match; the caller falls back to plain text
// filtering. Classify never returns an error to its caller.
func (c *Client) Classify(ctx context.Context, query string) *SmartMatch {
	if c.apiKey == "" {
		zlog.Logger.Warn().Msg("gemini api key missing, skipping ai search")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := c.client(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to create gemini client")
		return nil
	}

	labels := make([]string, 0, len(model.Categories()))
	for _, cat := range model.Categories() {
		labels = append(labels, string(cat))
	}

	prompt := fmt.Sprintf(
		"User search query: %q.\n"+
			"Available Categories: %s.\n"+
			"Task: Match the query to the single most relevant Category. "+
			"If no category fits well, choose 'Other'. "+
			"Provide a short, helpful reasoning for the user.",
		query, strings.Join(labels, ", "),
	)

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"category":        {Type: genai.TypeString, Enum: labels},
				"reasoning":       {Type: genai.TypeString},
				"suggestedAction": {Type: genai.TypeString},
			},
			Required: []string{"category", "reasoning", "suggestedAction"},
		},
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("query", query).Msg("gemini classification failed")
		return nil
	}

	text := resp.Text()
	if text == "" {
		return nil
	}

	var parsed classifyResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to parse gemini response")
		return nil
	}

	return &SmartMatch{
		Category:        model.ParseCategory(parsed.Category),
		Reasoning:       parsed.Reasoning,
		SuggestedAction: parsed.SuggestedAction,
	}
}

// DraftBio generates a short promotional bio for a professional. On any
// failure it returns FallbackBio.
func (c *Client) DraftBio(ctx context.Context, profession string, traits []string) string {
	if c.apiKey == "" {
		return FallbackBio
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := c.client(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to create gemini client")
		return FallbackBio
	}

	prompt := fmt.Sprintf(
		"Write a short, professional, and catchy bio (max 25 words) for a %s who is skilled in: %s.",
		profession, strings.Join(traits, ", "),
	)

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("profession", profession).Msg("gemini bio generation failed")
		return FallbackBio
	}

	if text := resp.Text(); text != "" {
		return strings.TrimSpace(text)
	}
	return FallbackBio
}
