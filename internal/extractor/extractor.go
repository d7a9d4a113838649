package extractor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MikeSquared-Agency/studynotes/internal/llm"
	"github.com/MikeSquared-Agency/studynotes/internal/metrics"
)

// Pipeline names used in logs and metrics.
const (
	PipelineNotes     = "notes"
	PipelineQuestions = "questions"
	PipelineRelevance = "relevance"
)

// Extractor runs prompt → generate → extract → sanitize → validate. Every
// public pipeline method is fail-soft: any stage failure is logged and an
// empty result is returned.
type Extractor struct {
	llm       llm.Generator
	maxTokens int
	logger    *slog.Logger
}

func New(gen llm.Generator, maxTokens int, logger *slog.Logger) *Extractor {
	return &Extractor{llm: gen, maxTokens: maxTokens, logger: logger}
}

// Notes converts a transcript into study notes.
func (e *Extractor) Notes(ctx context.Context, transcript string) []Note {
	raw, err := e.generate(ctx, PipelineNotes, NotesPrompt(transcript), notesTemperature)
	if err != nil {
		return []Note{}
	}

	notes, err := DecodeNotes(raw)
	if err != nil {
		e.fail(PipelineNotes, "validate", err, raw)
		return []Note{}
	}
	e.done(PipelineNotes, len(notes))
	return notes
}

// Questions generates exam questions from notes for the given exam type.
func (e *Extractor) Questions(ctx context.Context, notes any, examType string) []QuestionAnswer {
	prompt, err := QuestionsPrompt(notes, examType)
	if err != nil {
		e.fail(PipelineQuestions, "prompt", err, "")
		return []QuestionAnswer{}
	}

	raw, err := e.generate(ctx, PipelineQuestions, prompt, questionsTemperature)
	if err != nil {
		return []QuestionAnswer{}
	}

	qas, err := DecodeQuestions(raw)
	if err != nil {
		e.fail(PipelineQuestions, "validate", err, raw)
		return []QuestionAnswer{}
	}
	e.done(PipelineQuestions, len(qas))
	return qas
}

// Relevance classifies transcript topics against the user's request.
func (e *Extractor) Relevance(ctx context.Context, transcript, userPrompt string) RelevanceBucket {
	raw, err := e.generate(ctx, PipelineRelevance, RelevancePrompt(transcript, userPrompt), relevanceTemperature)
	if err != nil {
		return EmptyBucket()
	}

	bucket, err := DecodeRelevance(raw)
	if err != nil {
		e.fail(PipelineRelevance, "validate", err, raw)
		return EmptyBucket()
	}
	e.done(PipelineRelevance, bucket.Count())
	return bucket
}

// DecodeNotes runs extract, sanitize and validate on raw model output.
func DecodeNotes(raw string) ([]Note, error) {
	return ValidateNotes(Sanitize(ExtractJSON(raw), ArrayWrap))
}

// DecodeQuestions runs extract, sanitize and validate on raw model output.
func DecodeQuestions(raw string) ([]QuestionAnswer, error) {
	return ValidateQuestions(Sanitize(ExtractJSON(raw), ArraySlice))
}

// DecodeRelevance runs extract, sanitize and validate on raw model output.
func DecodeRelevance(raw string) (RelevanceBucket, error) {
	return ValidateRelevance(Sanitize(ExtractJSON(raw), Object))
}

func (e *Extractor) generate(ctx context.Context, pipeline, prompt string, temperature float64) (string, error) {
	e.logger.Info("generating", "pipeline", pipeline, "prompt_len", len(prompt))

	raw, err := e.llm.GenerateText(ctx, llm.Request{
		Prompt:      prompt,
		Temperature: temperature,
		MaxTokens:   e.maxTokens,
	})
	if err != nil {
		e.fail(pipeline, "generate", fmt.Errorf("llm generation: %w", err), "")
		return "", err
	}
	return raw, nil
}

func (e *Extractor) fail(pipeline, stage string, err error, raw string) {
	metrics.PipelineStageFailuresTotal.WithLabelValues(pipeline, stage).Inc()
	metrics.PipelineRunsTotal.WithLabelValues(pipeline, "empty").Inc()
	e.logger.Error("generation pipeline failed",
		"pipeline", pipeline,
		"stage", stage,
		"error", err,
		"raw", raw,
	)
}

func (e *Extractor) done(pipeline string, count int) {
	metrics.PipelineRunsTotal.WithLabelValues(pipeline, "ok").Inc()
	e.logger.Info("generation complete", "pipeline", pipeline, "items", count)
}
