package hermes

import "time"

// Subjects published after each pipeline run.
const (
	SubjectNotesGenerated     = "studynotes.notes.generated"
	SubjectAnalysisCompleted  = "studynotes.analysis.completed"
	SubjectQuestionsGenerated = "studynotes.questions.generated"

	// SubjectAll matches every studynotes event.
	SubjectAll = "studynotes.>"
)

// NotesGenerated is emitted when /convert-mp3 finishes.
type NotesGenerated struct {
	RunID     string    `json:"run_id"`
	VideoID   string    `json:"video_id"`
	NoteType  string    `json:"note_type,omitempty"`
	Count     int       `json:"count"`
	Empty     bool      `json:"empty"`
	Timestamp time.Time `json:"timestamp"`
}

// AnalysisCompleted is emitted when /content-analysis finishes. Counts are per
// relevance tier.
type AnalysisCompleted struct {
	RunID     string    `json:"run_id"`
	VideoID   string    `json:"video_id"`
	Counts    TierCount `json:"counts"`
	Empty     bool      `json:"empty"`
	Timestamp time.Time `json:"timestamp"`
}

type TierCount struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// QuestionsGenerated is emitted when /generate-questions finishes.
type QuestionsGenerated struct {
	RunID     string    `json:"run_id"`
	ExamType  string    `json:"exam_type"`
	Count     int       `json:"count"`
	Short     int       `json:"short"`
	Long      int       `json:"long"`
	Empty     bool      `json:"empty"`
	Timestamp time.Time `json:"timestamp"`
}
