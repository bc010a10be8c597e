package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/inventory"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrEstimateUnavailable is returned when the model reply holds no usable nutrition facts.
var ErrEstimateUnavailable = errors.New("nutrition estimate unavailable")

// NutritionEstimator estimates per-serving nutrition for a recipe.
type NutritionEstimator interface {
	Estimate(ctx context.Context, recipeName string, ingredients []inventory.Ingredient, servings int) (*model.NutritionFacts, error)
}

// LLMConfig configures the language model behind LLMNutritionEstimator.
type LLMConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// LLMNutritionEstimator asks a chat model for a JSON nutrition estimate.
type LLMNutritionEstimator struct {
	llm     llms.Model
	model   string
	timeout time.Duration
}

// NewLLMNutritionEstimator builds an estimator backed by an OpenAI-compatible API.
func NewLLMNutritionEstimator(cfg LLMConfig) (*LLMNutritionEstimator, error) {
	opts := []openai.Option{openai.WithToken(cfg.APIKey)}
	if cfg.Model != "" {
		opts = append(opts, openai.WithModel(cfg.Model))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create llm client: %w", err)
	}
	return NewLLMNutritionEstimatorWithModel(client, cfg.Model, cfg.Timeout), nil
}

// NewLLMNutritionEstimatorWithModel wraps an existing model.
func NewLLMNutritionEstimatorWithModel(llm llms.Model, modelName string, timeout time.Duration) *LLMNutritionEstimator {
	return &LLMNutritionEstimator{llm: llm, model: modelName, timeout: timeout}
}

type nutritionReply struct {
	Calories         float64 `json:"calories"`
	Protein          float64 `json:"protein"`
	Carbs            float64 `json:"carbs"`
	Fat              float64 `json:"fat"`
	Fiber            float64 `json:"fiber"`
	Sugar            float64 `json:"sugar"`
	ServingSizeValue float64 `json:"serving_size"`
	ServingSizeUnit  string  `json:"serving_unit"`
}

// Estimate returns per-serving macros for the recipe.
func (e *LLMNutritionEstimator) Estimate(ctx context.Context, recipeName string, ingredients []inventory.Ingredient, servings int) (*model.NutritionFacts, error) {
	if servings <= 0 {
		return nil, fmt.Errorf("%w: servings must be positive", ErrEstimateUnavailable)
	}
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	opts := []llms.CallOption{llms.WithTemperature(0)}
	if e.model != "" {
		opts = append(opts, llms.WithModel(e.model))
	}
	reply, err := llms.GenerateFromSinglePrompt(ctx, e.llm, nutritionPrompt(recipeName, ingredients, servings), opts...)
	if err != nil {
		return nil, fmt.Errorf("generate nutrition estimate: %w", err)
	}
	return parseNutritionReply(reply)
}

func nutritionPrompt(recipeName string, ingredients []inventory.Ingredient, servings int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Estimate the nutrition of one serving of %q, which makes %d servings.\n", recipeName, servings)
	b.WriteString("Ingredients for the whole recipe:\n")
	for _, ing := range ingredients {
		fmt.Fprintf(&b, "- %s %s\n", ing.Quantity, ing.Name)
	}
	b.WriteString("Reply with a single JSON object and nothing else, using the keys ")
	b.WriteString(`calories, protein, carbs, fat, fiber, sugar (grams except calories), serving_size and serving_unit.`)
	return b.String()
}

// parseNutritionReply extracts the first JSON object from the reply; models often wrap it in prose or fences.
func parseNutritionReply(reply string) (*model.NutritionFacts, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, ErrEstimateUnavailable
	}

	var r nutritionReply
	if err := json.Unmarshal([]byte(reply[start:end+1]), &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEstimateUnavailable, err)
	}
	if r.Calories < 0 || r.Protein < 0 || r.Carbs < 0 || r.Fat < 0 || r.Fiber < 0 || r.Sugar < 0 {
		return nil, fmt.Errorf("%w: negative values", ErrEstimateUnavailable)
	}

	unit := r.ServingSizeUnit
	size := r.ServingSizeValue
	if size <= 0 || unit == "" {
		size, unit = 1, "serving"
	}
	return &model.NutritionFacts{
		PerServing: model.Macros{
			Calories: r.Calories,
			Protein:  r.Protein,
			Carbs:    r.Carbs,
			Fat:      r.Fat,
			Fiber:    r.Fiber,
			Sugar:    r.Sugar,
		},
		ServingSize: model.ServingSize{Amount: size, Unit: unit},
	}, nil
}
