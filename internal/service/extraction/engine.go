// Package extraction guesses which form template a free-text voice transcript
// corresponds to and fills in plausible field values. It is deliberately dumb:
// classification is case-insensitive substring matching against a fixed
// keyword table, and confidence is binary. The engine sits behind a single
// boundary so a real NLP model can replace it later without touching callers.
package extraction

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/domain"
)

// matchConfidence is the flat score assigned to any classified transcript.
// Placeholder for a future graduated model; see Score.
const matchConfidence = 0.85

// Engine classifies transcripts and extracts template field values. It holds
// no mutable state and is safe for concurrent use.
type Engine struct {
	categories []Category
	now        func() time.Time
	log        *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's notion of "now". Used by tests to freeze
// date-valued literal fields.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithCategories replaces the built-in category table.
func WithCategories(categories []Category) Option {
	return func(e *Engine) {
		e.categories = categories
	}
}

func NewEngine(log *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		categories: defaultCategories,
		now:        time.Now,
		log:        log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Classify returns the first category in table order with at least one
// trigger phrase present in the transcript, or nil when none hit.
func (e *Engine) Classify(transcript string) *Category {
	lower := strings.ToLower(transcript)
	for i := range e.categories {
		for _, trigger := range e.categories[i].Triggers {
			if strings.Contains(lower, trigger) {
				return &e.categories[i]
			}
		}
	}
	return nil
}

// Extract fills the category's fields from the transcript. Keyword rules
// yield the first candidate phrase found (the candidate literal as declared,
// not the transcript slice), falling back to the rule default.
func (e *Engine) Extract(category *Category, transcript string) map[string]string {
	data := make(map[string]string, len(category.Fields))
	for _, rule := range category.Fields {
		switch {
		case rule.CurrentDate:
			data[rule.Name] = e.now().Format("2006-01-02")
		case len(rule.Candidates) > 0:
			data[rule.Name] = extractValue(transcript, rule.Candidates, rule.Default)
		default:
			data[rule.Name] = rule.Literal
		}
	}
	return data
}

// Score maps a classification outcome to a confidence value. Kept as its own
// boundary so the binary score can be swapped for a graduated one without
// touching Classify or Extract.
func Score(matched bool) float64 {
	if matched {
		return matchConfidence
	}
	return 0.0
}

// Process runs the full classify-extract-score pipeline. It is a total
// function: any string input, including empty, yields a well-formed result.
// staffID is not used by the algorithm; it is carried through for the
// caller's activity logging only.
func (e *Engine) Process(transcript, staffID string) *domain.ExtractionResult {
	result := &domain.ExtractionResult{
		ExtractedData: map[string]string{},
	}

	category := e.Classify(transcript)
	if category != nil {
		result.TemplateMatch = &domain.TemplateMatch{
			TemplateID:   category.TemplateID,
			TemplateName: category.TemplateName,
		}
		result.ExtractedData = e.Extract(category, transcript)
	}
	result.Confidence = Score(category != nil)

	if e.log != nil {
		e.log.Debug("Processed transcript",
			zap.String("staff_id", staffID),
			zap.Bool("matched", result.Matched()),
			zap.Float64("confidence", result.Confidence),
		)
	}

	return result
}

func extractValue(transcript string, candidates []string, defaultValue string) string {
	lower := strings.ToLower(transcript)
	for _, candidate := range candidates {
		if strings.Contains(lower, strings.ToLower(candidate)) {
			return candidate
		}
	}
	return defaultValue
}
