//go:build integration

package hermes

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"
)

func skipWithoutNATS(t *testing.T) string {
	t.Helper()
	url := os.Getenv("NATS_URL")
	if url == "" {
		t.Skip("NATS_URL not set, skipping integration test")
	}
	return url
}

func TestIntegration_PublishEvent(t *testing.T) {
	natsURL := skipWithoutNATS(t)
	ctx := context.Background()
	logger := slog.Default()

	client, err := NewClient(ctx, natsURL, os.Getenv("NATS_TOKEN"), logger)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer client.Close()

	type received struct {
		subject string
		event   QuestionsGenerated
	}
	ch := make(chan received, 1)

	err = client.Subscribe(SubjectAll, func(subject string, data []byte) {
		var ev QuestionsGenerated
		_ = json.Unmarshal(data, &ev)
		ch <- received{subject: subject, event: ev}
	})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	// Give subscription time to propagate
	time.Sleep(100 * time.Millisecond)

	err = client.Publish(SubjectQuestionsGenerated, QuestionsGenerated{
		RunID:     "integration-run",
		ExamType:  "midterm",
		Count:     2,
		Short:     1,
		Long:      1,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case msg := <-ch:
		if msg.subject != SubjectQuestionsGenerated {
			t.Errorf("expected subject %s, got %s", SubjectQuestionsGenerated, msg.subject)
		}
		if msg.event.RunID != "integration-run" || msg.event.Count != 2 {
			t.Errorf("unexpected event %+v", msg.event)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}
