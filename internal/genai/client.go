package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JoshD94/triviargh/internal/metrics"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash-001"
	defaultTimeout = 15 * time.Second
)

// Generated is the structural contract of the adapter: callers can rely
// on exactly 4 options and an answer index in [0,3] even when the
// upstream call fails.
type Generated struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // overridable for tests; defaults to the public endpoint
	Timeout time.Duration
}

// Client calls the Gemini generateContent REST endpoint. It is safe for
// concurrent use and is constructed once at startup.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}
}

// Generate asks the model for one trivia question, scoped to theme when
// non-empty. It never fails: any upstream or parse error degrades to the
// static fallback question.
func (c *Client) Generate(ctx context.Context, theme string) Generated {
	generated, err := c.generate(ctx, theme)
	if err != nil {
		log.Warn().Err(err).Str("theme", theme).Msg("question generation failed, using fallback")
		metrics.GeneratedQuestionsTotal.WithLabelValues("fallback").Inc()
		return Fallback(theme)
	}
	metrics.GeneratedQuestionsTotal.WithLabelValues("ok").Inc()
	return generated
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, theme string) (Generated, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(theme)}}}},
	})
	if err != nil {
		return Generated{}, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Generated{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Generated{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Generated{}, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Generated{}, err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return Generated{}, errors.New("response carries no text candidate")
	}

	text := stripFences(out.Candidates[0].Content.Parts[0].Text)
	var generated Generated
	if err := json.Unmarshal([]byte(text), &generated); err != nil {
		return Generated{}, fmt.Errorf("parse model output: %w", err)
	}
	if generated.Question == "" || len(generated.Options) != 4 || generated.Answer < 0 || generated.Answer > 3 {
		return Generated{}, errors.New("model output is not a valid question")
	}
	return generated, nil
}

func buildPrompt(theme string) string {
	topic := "a random topic"
	if theme != "" {
		topic = fmt.Sprintf("the theme %q", theme)
	}
	return fmt.Sprintf(`Generate a fun, challenging trivia question on %s.
Return the response in the following JSON structure:

{
"question": "The full text of the trivia question",
"options": ["First option", "Second option", "Third option", "Fourth option"],
"answer": 0
}

The answer field is the index of the correct answer (0-3).
For example, if the question is "What is the capital of France?" and the options are ["Berlin", "Madrid", "Paris", "Rome"], the answer should be 2.
There must only be one correct answer, and only four options in total.
Omit any code blocks in the response with json ticks.
Do not include any additional text or explanations outside of the JSON structure.
Make sure the question is not too easy or too difficult, and that the options are plausible.
The question should be suitable for a general audience and should not be too obscure or niche.`, topic)
}

// stripFences drops markdown code-block markers the model sometimes
// wraps its JSON in despite the prompt.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// Fallback is the static question served when generation fails.
func Fallback(theme string) Generated {
	if theme != "" {
		return Generated{
			Question: fmt.Sprintf("Which of these is most closely associated with %s?", theme),
			Options:  []string{"Its history", "Its people", "Its places", "All of the above"},
			Answer:   3,
		}
	}
	return Generated{
		Question: "What is the capital of France?",
		Options:  []string{"London", "Berlin", "Paris", "Madrid"},
		Answer:   2,
	}
}
