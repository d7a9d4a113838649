package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/studynotes/internal/extractor"
	"github.com/MikeSquared-Agency/studynotes/internal/hermes"
	"github.com/MikeSquared-Agency/studynotes/internal/media"
	"github.com/MikeSquared-Agency/studynotes/internal/metrics"
	"github.com/MikeSquared-Agency/studynotes/internal/openai"
	"github.com/MikeSquared-Agency/studynotes/internal/rapidapi"
	"github.com/google/uuid"
)

var (
	ErrVideoIDRequired = errors.New("video id is required")
	ErrNoAudioLink     = errors.New("no audio link for video")
	ErrQuestionsInput  = errors.New("notes and exam type are required")
	ErrUpstream        = errors.New("upstream service failed")
)

// Upstream service names used in metrics and errors.
const (
	serviceAudio         = "audio"
	serviceStorage       = "storage"
	serviceTranscription = "transcription"
)

type AudioSource interface {
	FetchAudioLink(ctx context.Context, videoID string) (rapidapi.AudioLink, error)
}

type Mirror interface {
	Mirror(ctx context.Context, url string) (string, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, url string) (string, error)
}

// Pipelines are the fail-soft generation runs; *extractor.Extractor implements it.
type Pipelines interface {
	Notes(ctx context.Context, transcript string) []extractor.Note
	Questions(ctx context.Context, notes any, examType string) []extractor.QuestionAnswer
	Relevance(ctx context.Context, transcript, userPrompt string) extractor.RelevanceBucket
}

type Publisher interface {
	Publish(subject string, data any) error
}

// Transcript is the audio side of a run: where the audio came from, where it
// is stored and what was said.
type Transcript struct {
	VideoID   string
	AudioURL  string
	StoredURL string
	Text      string
	Title     string
	FileSize  json.Number
}

type NotesResult struct {
	Transcript
	Notes []extractor.Note
}

type AnalysisResult struct {
	Transcript
	Relevance extractor.RelevanceBucket
}

// Processor chains audio lookup, storage, transcription and generation for
// each request.
type Processor struct {
	audio       AudioSource
	mirror      Mirror
	transcriber Transcriber
	pipelines   Pipelines
	events      Publisher
	logger      *slog.Logger
	now         func() time.Time
}

// New builds a Processor. events may be nil to disable publishing.
func New(audio AudioSource, mirror Mirror, transcriber Transcriber, pipelines Pipelines, events Publisher, logger *slog.Logger) *Processor {
	return &Processor{
		audio:       audio,
		mirror:      mirror,
		transcriber: transcriber,
		pipelines:   pipelines,
		events:      events,
		logger:      logger,
		now:         time.Now,
	}
}

// Convert turns a video into study notes. noteType is recorded but does not
// change generation.
func (p *Processor) Convert(ctx context.Context, videoID, noteType string) (NotesResult, error) {
	runID := uuid.New().String()
	p.logger.Info("convert started", "run_id", runID, "video_id", videoID, "note_type", noteType)

	tr, err := p.transcribe(ctx, runID, videoID)
	if err != nil {
		return NotesResult{}, err
	}

	notes := p.pipelines.Notes(ctx, tr.Text)

	p.publish(hermes.SubjectNotesGenerated, hermes.NotesGenerated{
		RunID:     runID,
		VideoID:   videoID,
		NoteType:  noteType,
		Count:     len(notes),
		Empty:     len(notes) == 0,
		Timestamp: p.now().UTC(),
	})
	p.logger.Info("convert complete", "run_id", runID, "notes", len(notes))

	return NotesResult{Transcript: tr, Notes: notes}, nil
}

// Analyze transcribes a video and grades its topics against userPrompt.
func (p *Processor) Analyze(ctx context.Context, videoID, userPrompt string) (AnalysisResult, error) {
	runID := uuid.New().String()
	p.logger.Info("analysis started", "run_id", runID, "video_id", videoID)

	tr, err := p.transcribe(ctx, runID, videoID)
	if err != nil {
		return AnalysisResult{}, err
	}

	bucket := p.pipelines.Relevance(ctx, tr.Text, userPrompt)

	p.publish(hermes.SubjectAnalysisCompleted, hermes.AnalysisCompleted{
		RunID:   runID,
		VideoID: videoID,
		Counts: hermes.TierCount{
			High:   len(bucket.HighRelevance),
			Medium: len(bucket.MediumRelevance),
			Low:    len(bucket.LowRelevance),
		},
		Empty:     bucket.Count() == 0,
		Timestamp: p.now().UTC(),
	})
	p.logger.Info("analysis complete", "run_id", runID,
		"high", len(bucket.HighRelevance),
		"medium", len(bucket.MediumRelevance),
		"low", len(bucket.LowRelevance),
	)

	return AnalysisResult{Transcript: tr, Relevance: bucket}, nil
}

// Questions generates exam questions from previously produced notes.
func (p *Processor) Questions(ctx context.Context, notes any, examType string) ([]extractor.QuestionAnswer, error) {
	if notes == nil || examType == "" {
		return nil, ErrQuestionsInput
	}

	runID := uuid.New().String()
	p.logger.Info("questions started", "run_id", runID, "exam_type", examType)

	qas := p.pipelines.Questions(ctx, notes, examType)

	var short, long int
	for _, qa := range qas {
		if qa.Type == extractor.QuestionShort {
			short++
		} else {
			long++
		}
	}
	p.publish(hermes.SubjectQuestionsGenerated, hermes.QuestionsGenerated{
		RunID:     runID,
		ExamType:  examType,
		Count:     len(qas),
		Short:     short,
		Long:      long,
		Empty:     len(qas) == 0,
		Timestamp: p.now().UTC(),
	})
	p.logger.Info("questions complete", "run_id", runID, "questions", len(qas))

	return qas, nil
}

// transcribe runs lookup → mirror → transcription for one video.
func (p *Processor) transcribe(ctx context.Context, runID, videoID string) (Transcript, error) {
	if strings.TrimSpace(videoID) == "" {
		return Transcript{}, ErrVideoIDRequired
	}

	link, err := p.audio.FetchAudioLink(ctx, videoID)
	if err != nil {
		return Transcript{}, p.upstream(runID, serviceAudio, err)
	}
	if link.Link == "" {
		p.logger.Warn("no audio link", "run_id", runID, "video_id", videoID, "status", link.Status, "msg", link.Msg)
		return Transcript{}, ErrNoAudioLink
	}

	stored, err := p.mirror.Mirror(ctx, link.Link)
	if err != nil {
		return Transcript{}, p.upstream(runID, serviceStorage, err)
	}

	text, err := p.transcriber.Transcribe(ctx, stored)
	if err != nil {
		return Transcript{}, p.upstream(runID, serviceTranscription, err)
	}
	p.logger.Info("audio transcribed", "run_id", runID, "title", link.Title, "chars", len(text))

	return Transcript{
		VideoID:   videoID,
		AudioURL:  link.Link,
		StoredURL: stored,
		Text:      text,
		Title:     link.Title,
		FileSize:  link.FileSize,
	}, nil
}

// upstream records a failed external call. Non-2xx answers are classified as
// ErrUpstream; transport and decoding failures are returned as they are.
func (p *Processor) upstream(runID, service string, err error) error {
	metrics.UpstreamFailuresTotal.WithLabelValues(service).Inc()
	p.logger.Error("upstream call failed", "run_id", runID, "service", service, "error", err)

	if errors.Is(err, rapidapi.ErrStatus) || errors.Is(err, media.ErrDownload) || errors.Is(err, openai.ErrAPI) {
		return fmt.Errorf("%s: %w: %w", service, ErrUpstream, err)
	}
	return fmt.Errorf("%s: %w", service, err)
}

func (p *Processor) publish(subject string, event any) {
	if p.events == nil {
		return
	}
	if err := p.events.Publish(subject, event); err != nil {
		p.logger.Error("failed to publish event", "subject", subject, "error", err)
	}
}
