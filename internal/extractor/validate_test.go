package extractor

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidateQuestions_RoundTrip(t *testing.T) {
	text := `[{"question":"What is a process?","answer":"A program in execution.","type":"short"},` +
		`{"question":"Explain paging.","answer":"Paging splits memory into fixed-size frames...","type":"long"}]`

	got, err := ValidateQuestions(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []QuestionAnswer{
		{Question: "What is a process?", Answer: "A program in execution.", Type: QuestionShort},
		{Question: "Explain paging.", Answer: "Paging splits memory into fixed-size frames...", Type: QuestionLong},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestValidateQuestions_Rejects(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"not an array", `{"question":"Q","answer":"A","type":"short"}`, ErrNotArray},
		{"invalid type", `[{"question":"Q","answer":"A","type":"medium"}]`, ErrInvalidQuestion},
		{"missing type", `[{"question":"Q","answer":"A"}]`, ErrInvalidQuestion},
		{"empty question", `[{"question":"","answer":"A","type":"short"}]`, ErrInvalidQuestion},
		{"missing answer", `[{"question":"Q","type":"long"}]`, ErrInvalidQuestion},
		{"non-object element", `["Q"]`, ErrInvalidQuestion},
		{"null element", `[null]`, ErrInvalidQuestion},
		{"one bad among good", `[{"question":"Q","answer":"A","type":"short"},{"question":"Q","answer":"A","type":"SHORT"}]`, ErrInvalidQuestion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateQuestions(tt.text)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateQuestions_SyntaxError(t *testing.T) {
	if _, err := ValidateQuestions(`[{"question":"Q1"`); err == nil {
		t.Fatal("expected parse error for truncated array")
	}
}

func TestValidateNotes(t *testing.T) {
	got, err := ValidateNotes(`[{"title":"Scheduling","subtitle":"Round robin","description":["- Time slices","- Fairness"]},{"title":"T","subtitle":"S"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(got))
	}
	if got[0].Description[1] != "- Fairness" {
		t.Errorf("unexpected description %v", got[0].Description)
	}
	if got[1].Description == nil {
		t.Error("missing description must decode as empty, not nil")
	}

	if _, err := ValidateNotes(`{"title":"T"}`); !errors.Is(err, ErrNotArray) {
		t.Errorf("expected ErrNotArray, got %v", err)
	}
}

func TestValidateNotes_LenientElements(t *testing.T) {
	got, err := ValidateNotes(`[` +
		`{"title":"T","subtitle":"S","description":"- one bullet"},` +
		`{"title":"Numbers","subtitle":3,"description":["- a",42,true,null,{"x":1},["y"]]},` +
		`"stray text",` +
		`null,` +
		`{"title":"Blank","description":""}` +
		`]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Note{
		{Title: "T", Subtitle: "S", Description: []string{"- one bullet"}},
		{Title: "Numbers", Subtitle: "3", Description: []string{"- a", "42", "true"}},
		{Description: []string{}},
		{Description: []string{}},
		{Title: "Blank", Description: []string{}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestDecodeNotes_StringDescription(t *testing.T) {
	got, err := DecodeNotes(`[{"title":"T","subtitle":"S","description":"- one bullet"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || !reflect.DeepEqual(got[0].Description, []string{"- one bullet"}) {
		t.Errorf("unexpected notes %#v", got)
	}
}

func TestValidateRelevance_MissingTiersDefaultEmpty(t *testing.T) {
	got, err := ValidateRelevance(`{"high_relevance":[{"title":"T","subtitle":"High Relevance","description":["- a","- b"]}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := RelevanceBucket{
		HighRelevance:   []Note{{Title: "T", Subtitle: "High Relevance", Description: []string{"- a", "- b"}}},
		MediumRelevance: []Note{},
		LowRelevance:    []Note{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestValidateRelevance_Lenient(t *testing.T) {
	got, err := ValidateRelevance(`{"high_relevance":"lots","medium_relevance":[{"title":"M","subtitle":"Medium Relevance","description":["- x"]}],"low_relevance":[42]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.HighRelevance) != 0 || got.HighRelevance == nil {
		t.Errorf("expected empty non-nil high tier, got %#v", got.HighRelevance)
	}
	if len(got.MediumRelevance) != 1 {
		t.Errorf("expected medium tier kept, got %#v", got.MediumRelevance)
	}
	if !reflect.DeepEqual(got.LowRelevance, []Note{{Description: []string{}}}) {
		t.Errorf("expected a non-object note to decode as an empty note, got %#v", got.LowRelevance)
	}
}

func TestValidateRelevance_OneOddNoteKeepsTier(t *testing.T) {
	got, err := ValidateRelevance(`{"high_relevance":[` +
		`{"title":"Good","subtitle":"High Relevance","description":["- a","- b"]},` +
		`{"title":"Odd","subtitle":"High Relevance","description":"oops"}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Note{
		{Title: "Good", Subtitle: "High Relevance", Description: []string{"- a", "- b"}},
		{Title: "Odd", Subtitle: "High Relevance", Description: []string{"oops"}},
	}
	if !reflect.DeepEqual(got.HighRelevance, want) {
		t.Errorf("got %#v, want %#v", got.HighRelevance, want)
	}
}

func TestValidateRelevance_NonObject(t *testing.T) {
	got, err := ValidateRelevance(`[1,2,3]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, EmptyBucket()) {
		t.Errorf("expected empty bucket, got %+v", got)
	}
}

func TestValidateRelevance_InvalidJSON(t *testing.T) {
	got, err := ValidateRelevance(`{"high_relevance":[`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !reflect.DeepEqual(got, EmptyBucket()) {
		t.Errorf("expected empty bucket alongside the error, got %+v", got)
	}
}
