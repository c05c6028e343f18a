package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"wellness-tracker/pkg/utils"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// celebrationSystemPrompt keeps the companion's voice consistent across
// every generated message.
const celebrationSystemPrompt = `You are a warm, encouraging wellness companion with a cozy autumn vibe.
When a user completes a task, respond with genuine celebration and motivation. Keep responses:
- Sweet and supportive (like a caring friend by a fireplace)
- Motivational but not overwhelming
- Cozy and comforting in tone with autumn warmth
- 1 sentence max
- Focus on their progress and self-care
- Use warm, gentle language but also casual and friendly
- Be genuinely excited about their accomplishment
- Make it feel personal and heartfelt
- Use autumn-themed emojis: 🍂 🧡 🌟 🍯 ✨ 🌙 🕯️ 🌻 ☕ 🥧
- Channel the feeling of golden hour, cozy sweaters, and warm drinks`

type CelebrateService interface {
	// Celebrate returns a one-sentence celebration for a completed
	// task. It never fails: when the AI call errors out a static
	// fallback message is returned instead.
	Celebrate(ctx context.Context, completedTask string) string
}

type celebrateService struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

// NewCelebrateService builds the Gemini-backed celebration service.
// When the client cannot be created (missing key, network) the service
// degrades to fallback messages instead of failing startup.
func NewCelebrateService(config *utils.Config, log *zap.Logger) CelebrateService {
	log = log.With(zap.String("service", "celebrate"))

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.AI.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Warn("Gemini client unavailable, celebrations will use fallback messages", zap.Error(err))
		client = nil
	}

	return &celebrateService{
		client: client,
		model:  config.AI.Model,
		log:    log,
	}
}

func (s *celebrateService) Celebrate(ctx context.Context, completedTask string) string {
	safeTask := html.EscapeString(strings.TrimSpace(completedTask))
	if safeTask == "" {
		return "Great job completing your task! You're taking wonderful care of yourself. 🌟"
	}

	if s.client == nil {
		return fallbackCelebration(safeTask)
	}

	prompt := fmt.Sprintf("Completed task: %s\n\nCelebrate this accomplishment:", safeTask)

	generateConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(celebrationSystemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.8),
		MaxOutputTokens:   40,
		CandidateCount:    1,
		TopP:              genai.Ptr[float32](0.8),
		TopK:              genai.Ptr[float32](20),
		ResponseMIMEType:  "text/plain",
		PresencePenalty:   genai.Ptr[float32](0.1),
		FrequencyPenalty:  genai.Ptr[float32](0.1),
	}

	var message string

	backoff := retry.WithMaxRetries(2, retry.NewFibonacci(300*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), generateConfig)
		if err != nil {
			return retry.RetryableError(err)
		}
		message = strings.TrimSpace(resp.Text())
		return nil
	})

	if err != nil {
		s.log.Error("Celebration generation failed", zap.Error(err))
		return fallbackCelebration(safeTask)
	}
	if message == "" {
		return fallbackCelebration(safeTask)
	}

	return message
}

func fallbackCelebration(task string) string {
	return fmt.Sprintf("Beautiful work completing '%s'! You're taking such good care of yourself. 🌟", task)
}
