package extractor

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotArray        = errors.New("invalid response format: expected an array")
	ErrInvalidQuestion = errors.New("invalid object structure: each entry must have 'question', 'answer', and 'type' ('short' or 'long')")
)

// ValidateNotes parses sanitized text as an array of Note. Only invalid JSON or
// a non-array fails; elements are decoded leniently.
func ValidateNotes(text string) ([]Note, error) {
	elems, err := parseArray(text)
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(elems))
	for i, raw := range elems {
		var n Note
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}
		if n.Description == nil {
			n.Description = []string{}
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// ValidateQuestions parses sanitized text as an array of QuestionAnswer. A single
// malformed element fails the whole array.
func ValidateQuestions(text string) ([]QuestionAnswer, error) {
	elems, err := parseArray(text)
	if err != nil {
		return nil, err
	}

	qas := make([]QuestionAnswer, 0, len(elems))
	for i, raw := range elems {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
			return nil, fmt.Errorf("question %d: %w", i, ErrInvalidQuestion)
		}

		question, okQ := nonEmptyString(fields["question"])
		answer, okA := nonEmptyString(fields["answer"])
		typ, _ := nonEmptyString(fields["type"])
		if !okQ || !okA || !QuestionType(typ).Valid() {
			return nil, fmt.Errorf("question %d: %w", i, ErrInvalidQuestion)
		}

		qas = append(qas, QuestionAnswer{Question: question, Answer: answer, Type: QuestionType(typ)})
	}
	return qas, nil
}

// ValidateRelevance parses sanitized text as a RelevanceBucket. Only invalid
// JSON is an error; any tier that is missing, not an array or not made of notes
// becomes empty.
func ValidateRelevance(text string) (RelevanceBucket, error) {
	var top any
	if err := json.Unmarshal([]byte(text), &top); err != nil {
		return EmptyBucket(), fmt.Errorf("parse relevance: %w", err)
	}

	bucket := EmptyBucket()
	obj, ok := top.(map[string]any)
	if !ok {
		return bucket, nil
	}
	bucket.HighRelevance = tier(obj["high_relevance"])
	bucket.MediumRelevance = tier(obj["medium_relevance"])
	bucket.LowRelevance = tier(obj["low_relevance"])
	return bucket, nil
}

func parseArray(text string) ([]json.RawMessage, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if _, ok := v.([]any); !ok {
		return nil, ErrNotArray
	}
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(text), &elems); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return elems, nil
}

func nonEmptyString(raw json.RawMessage) (string, bool) {
	if raw == nil {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return "", false
	}
	return s, true
}

// tier re-decodes one bucket value as []Note; anything but an array is empty.
func tier(v any) []Note {
	arr, ok := v.([]any)
	if !ok {
		return []Note{}
	}
	data, err := json.Marshal(arr)
	if err != nil {
		return []Note{}
	}
	notes, err := ValidateNotes(string(data))
	if err != nil {
		return []Note{}
	}
	return notes
}
