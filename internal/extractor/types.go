package extractor

import (
	"encoding/json"
	"strconv"
)

// Note is one topic of structured study notes.
type Note struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description []string `json:"description"`
}

// UnmarshalJSON decodes whatever shape the model produced. A non-object
// becomes an empty note, a string description becomes a single bullet and
// scalar fields are kept as their JSON text. It only fails on invalid JSON.
func (n *Note) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*n = Note{Description: []string{}}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	n.Title, _ = scalarText(obj["title"])
	n.Subtitle, _ = scalarText(obj["subtitle"])

	switch d := obj["description"].(type) {
	case []any:
		for _, item := range d {
			if s, ok := scalarText(item); ok {
				n.Description = append(n.Description, s)
			}
		}
	default:
		if s, ok := scalarText(d); ok && s != "" {
			n.Description = append(n.Description, s)
		}
	}
	return nil
}

// scalarText renders strings, numbers and booleans as text. Null, objects and
// arrays report false.
func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

// QuestionType is the closed set of answer depths.
type QuestionType string

const (
	QuestionShort QuestionType = "short"
	QuestionLong  QuestionType = "long"
)

func (t QuestionType) Valid() bool {
	return t == QuestionShort || t == QuestionLong
}

// QuestionAnswer is a single exam question with its model answer.
type QuestionAnswer struct {
	Question string       `json:"question"`
	Answer   string       `json:"answer"`
	Type     QuestionType `json:"type"`
}

// RelevanceBucket classifies transcript topics against a user's request.
type RelevanceBucket struct {
	HighRelevance   []Note `json:"high_relevance"`
	MediumRelevance []Note `json:"medium_relevance"`
	LowRelevance    []Note `json:"low_relevance"`
}

// EmptyBucket returns a bucket whose tiers serialize as [] rather than null.
func EmptyBucket() RelevanceBucket {
	return RelevanceBucket{
		HighRelevance:   []Note{},
		MediumRelevance: []Note{},
		LowRelevance:    []Note{},
	}
}

// Count is the total number of notes across all tiers.
func (b RelevanceBucket) Count() int {
	return len(b.HighRelevance) + len(b.MediumRelevance) + len(b.LowRelevance)
}
