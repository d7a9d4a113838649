package extractor

import (
	"encoding/json"
	"fmt"
)

// Sampling temperatures per task.
const (
	notesTemperature     = 0.3
	questionsTemperature = 0.3
	relevanceTemperature = 0.2
)

const notesPrompt = `You are an academic assistant that turns educational video transcripts into clear, structured study notes for students preparing for exams or interviews.

Convert the transcript below into a JSON array of objects. Each object has:

- "title": the main subject area.
- "subtitle": the specific subtopic or concept.
- "description": an array of bullet points written in simple language. Cover:
  - precise definitions
  - real-world analogies or examples where they help
  - important terms in **bold** or *italic* (Markdown)
  - plain explanations of technical vocabulary
  - step-by-step breakdowns where the topic has steps

### Output format
` + "```json" + `
[
  {
    "title": "Main Topic",
    "subtitle": "Subtopic",
    "description": [
      "- Short, clear explanation of the subtopic.",
      "- Key concepts in **bold** or *italic*.",
      "- Analogy: a scheduler is like a traffic controller for processes.",
      "- How this concept shows up in exams or interviews."
    ]
  }
]
` + "```" + `

Return only the JSON array. Do not add any text before or after it.

Transcript:

"%s"`

const questionsPrompt = `You generate exam-style questions from educational notes.

Return a JSON array of question objects. Each object has:
- "question": the question (string)
- "answer": the model answer (string)
- "type": "short" or "long", based on how deep the answer needs to be

### Output example
` + "```json" + `
[
  {
    "question": "What is an operating system?",
    "answer": "System software that manages hardware and software resources and provides services to programs.",
    "type": "short"
  },
  {
    "question": "Explain the main types of operating systems.",
    "answer": "Batch, time-sharing, distributed, network and real-time systems. Each targets a different workload...",
    "type": "long"
  }
]
` + "```" + `

Rules:
- Mix both "short" and "long" questions.
- Answers must be exam-appropriate: clear, correct and detailed where needed.
- Return nothing except the JSON array. No introductions, no closing remarks.

Generate exam-style questions for these notes:

%s

Exam type: %s`

const relevancePrompt = `You analyse how relevant a transcript is to a user's request.

Steps:
1. Extract the key topics from the user's request (they may be separated by commas or semicolons).
2. For each requested topic, scan the transcript and classify it:
   - High Relevance: the transcript supports it with two or more explanatory points.
   - Medium Relevance: the transcript supports it with exactly one point.
3. Add every other major transcript topic that was not requested to Low Relevance, titled "Other: <topic>".

Each entry is an object with "title", "subtitle" ("High Relevance", "Medium Relevance" or "Low Relevance") and "description" (an array of concise bullet points: 2-4 for high, 1-2 for medium, 1-2 for low).

### Output format
` + "```json" + `
{
  "high_relevance": [
    {
      "title": "Topic Name",
      "subtitle": "High Relevance",
      "description": ["- First explanatory point.", "- Second explanatory point."]
    }
  ],
  "medium_relevance": [
    {
      "title": "Topic Name",
      "subtitle": "Medium Relevance",
      "description": ["- Brief mention."]
    }
  ],
  "low_relevance": [
    {
      "title": "Other: Topic Name",
      "subtitle": "Low Relevance",
      "description": ["- Summary of this unrequested topic."]
    }
  ]
}
` + "```" + `

Return only the JSON object. Do not add any text outside it.

### Transcript
` + "```" + `
%s
` + "```" + `

### User request
` + "```" + `
%s
` + "```"

// NotesPrompt builds the instruction that turns a transcript into a Note array.
func NotesPrompt(transcript string) string {
	return fmt.Sprintf(notesPrompt, transcript)
}

// QuestionsPrompt builds the instruction for a QuestionAnswer array. notes is
// embedded as indented JSON, so any JSON-encodable collection works.
func QuestionsPrompt(notes any, examType string) (string, error) {
	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode notes: %w", err)
	}
	return fmt.Sprintf(questionsPrompt, data, examType), nil
}

// RelevancePrompt builds the instruction for a RelevanceBucket.
func RelevancePrompt(transcript, userPrompt string) string {
	return fmt.Sprintf(relevancePrompt, transcript, userPrompt)
}
