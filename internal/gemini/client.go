// Package gemini wraps the Gemini API for report generation and industry
// validation.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/MargotLh/market-research-assistant/internal/research"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

const maxOutputTokens = 2048

// Client handles Gemini API operations. The API key is supplied per call
// because every user brings their own credential.
type Client struct {
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Gemini client that generates with the given model.
func NewClient(model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		model: model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

func (c *Client) newAPIClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	}
	if c.baseURL != "" {
		cc.HTTPOptions.BaseURL = c.baseURL
	}
	return genai.NewClient(ctx, cc)
}

// GenerateReport asks the model for an industry report grounded in the given
// pages. The result is bounded at MaxReportWords even if the model overruns
// the instruction.
func (c *Client) GenerateReport(ctx context.Context, apiKey, industry string, pages []research.Page) (research.Report, error) {
	if strings.TrimSpace(apiKey) == "" {
		return research.Report{}, errors.New("API key is required")
	}

	client, err := c.newAPIClient(ctx, apiKey)
	if err != nil {
		return research.Report{}, fmt.Errorf("creating Gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(buildReportPrompt(industry, pages, MaxReportWords)),
		&genai.GenerateContentConfig{
			CandidateCount:  1,
			Temperature:     genai.Ptr[float32](0.3),
			MaxOutputTokens: maxOutputTokens,
		},
	)
	if err != nil {
		return research.Report{}, fmt.Errorf("generating report: %w", classifyErr(err))
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return research.Report{}, research.ErrEmptyReport
	}

	text = TruncateWords(text, MaxReportWords)
	return research.Report{
		Text:        text,
		WordCount:   CountWords(text),
		Model:       c.model,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// ValidateIndustry asks the model whether the text names a real industry or
// sector.
func (c *Client) ValidateIndustry(ctx context.Context, apiKey, industry string) (bool, error) {
	if strings.TrimSpace(apiKey) == "" {
		return false, errors.New("API key is required")
	}

	client, err := c.newAPIClient(ctx, apiKey)
	if err != nil {
		return false, fmt.Errorf("creating Gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(buildValidationPrompt(industry)),
		&genai.GenerateContentConfig{
			CandidateCount:  1,
			Temperature:     genai.Ptr[float32](0),
			MaxOutputTokens: 16,
		},
	)
	if err != nil {
		return false, fmt.Errorf("checking industry: %w", classifyErr(err))
	}

	answer := strings.ToUpper(strings.TrimSpace(resp.Text()))
	return strings.Contains(answer, "YES"), nil
}

// classifyErr translates common API failures into messages that make sense
// to someone pasting in their own key.
func classifyErr(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("API key rejected: %w", err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("rate limited by Gemini: %w", err)
		}
	}
	return err
}
