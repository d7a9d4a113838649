package main

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/MikeSquared-Agency/studynotes/internal/app"
	"github.com/MikeSquared-Agency/studynotes/internal/config"
	"github.com/MikeSquared-Agency/studynotes/internal/extractor"
	"github.com/spf13/cobra"
)

var (
	transcriptPath string
	notesPath      string
	examType       string
	userPrompt     string
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Generate study notes from a transcript file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		transcript, err := readInput(cmd, transcriptPath)
		if err != nil {
			return err
		}
		ex, err := newExtractor(cmd)
		if err != nil {
			return err
		}
		return printJSON(cmd, ex.Notes(cmd.Context(), string(transcript)))
	},
}

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate exam questions from a notes JSON file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, notesPath)
		if err != nil {
			return err
		}
		if !json.Valid(data) {
			return errors.New("notes file is not valid JSON")
		}
		ex, err := newExtractor(cmd)
		if err != nil {
			return err
		}
		return printJSON(cmd, ex.Questions(cmd.Context(), json.RawMessage(data), examType))
	},
}

var relevanceCmd = &cobra.Command{
	Use:   "relevance",
	Short: "Grade transcript topics against a request",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		transcript, err := readInput(cmd, transcriptPath)
		if err != nil {
			return err
		}
		ex, err := newExtractor(cmd)
		if err != nil {
			return err
		}
		return printJSON(cmd, ex.Relevance(cmd.Context(), string(transcript), userPrompt))
	},
}

func newExtractor(cmd *cobra.Command) (*extractor.Extractor, error) {
	cfg := config.Load()
	gen, err := app.NewGenerator(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}
	slog.Debug("generator ready", "provider", cfg.GenerationProvider)
	return extractor.New(gen, cfg.MaxOutputTokens, slog.Default()), nil
}

func init() {
	notesCmd.Flags().StringVar(&transcriptPath, "transcript", "-", "Transcript file (- for stdin)")

	questionsCmd.Flags().StringVar(&notesPath, "notes", "-", "Notes JSON file (- for stdin)")
	questionsCmd.Flags().StringVar(&examType, "exam-type", "", "Exam type, e.g. \"university final\"")
	_ = questionsCmd.MarkFlagRequired("exam-type")

	relevanceCmd.Flags().StringVar(&transcriptPath, "transcript", "-", "Transcript file (- for stdin)")
	relevanceCmd.Flags().StringVar(&userPrompt, "prompt", "", "Topics to grade, separated by commas or semicolons")
	_ = relevanceCmd.MarkFlagRequired("prompt")

	rootCmd.AddCommand(notesCmd, questionsCmd, relevanceCmd)
}
