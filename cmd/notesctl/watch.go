package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikeSquared-Agency/studynotes/internal/config"
	"github.com/MikeSquared-Agency/studynotes/internal/hermes"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print pipeline events from NATS as JSON lines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.NatsURL == "" {
			return errors.New("NATS_URL is required")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		client, err := hermes.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			return err
		}
		defer client.Close()

		out := cmd.OutOrStdout()
		err = client.Subscribe(hermes.SubjectAll, func(subject string, data []byte) {
			line, err := eventLine(subject, data)
			if err != nil {
				slog.Warn("skipping event", "subject", subject, "error", err)
				return
			}
			fmt.Fprintln(out, string(line))
		})
		if err != nil {
			return err
		}

		<-ctx.Done()
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil
		}
		return ctx.Err()
	},
}

type eventEnvelope struct {
	Subject string          `json:"subject"`
	Event   json.RawMessage `json:"event"`
}

// eventLine renders one received event as a single JSON object.
func eventLine(subject string, data []byte) ([]byte, error) {
	return json.Marshal(eventEnvelope{Subject: subject, Event: json.RawMessage(data)})
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
