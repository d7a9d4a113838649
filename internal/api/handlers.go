package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MikeSquared-Agency/studynotes/internal/extractor"
	"github.com/MikeSquared-Agency/studynotes/internal/processor"
)

// Client-facing messages. Their wording is part of the public API.
const (
	msgVideoIDRequired = "Video ID is required"
	msgSomethingWrong  = "Something went wrong"
	msgNoAudioLink     = "Failed to fetch MP3 link"
	msgRequiredData    = "Required data need"
)

type convertRequest struct {
	VideoID  string `json:"videoId"`
	NoteType string `json:"noteType"`
}

type analysisRequest struct {
	VideoID    string `json:"videoId"`
	UserPrompt string `json:"userPrompt"`
}

type questionsRequest struct {
	Notes    json.RawMessage `json:"notes"`
	ExamType string          `json:"examType"`
}

// conversionResponse is shared by /convert-mp3 and /content-analysis;
// StructureNotes is a Note array or a RelevanceBucket respectively.
type conversionResponse struct {
	Status              bool        `json:"status"`
	VideoID             string      `json:"videoId"`
	VideoAudio          string      `json:"videoAudio"`
	AudioCloudinaryLink string      `json:"audioCloudinaryLink"`
	AudioText           string      `json:"audioText"`
	StructureNotes      any         `json:"structureNotes"`
	AudioTitle          string      `json:"audioTitle"`
	AudioFileSize       json.Number `json:"audioFileSize"`
}

type questionsResponse struct {
	Data []extractor.QuestionAnswer `json:"data"`
}

type errorResponse struct {
	Status  bool   `json:"status"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// convertMP3 handles POST /convert-mp3.
func (s *Server) convertMP3(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !s.decode(w, r, &req) {
		return
	}

	res, err := s.svc.Convert(r.Context(), req.VideoID, req.NoteType)
	if err != nil {
		s.writeServiceError(w, "convert-mp3", err)
		return
	}
	writeJSON(w, http.StatusOK, newConversionResponse(res.Transcript, res.Notes))
}

// contentAnalysis handles POST /content-analysis.
func (s *Server) contentAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if !s.decode(w, r, &req) {
		return
	}

	res, err := s.svc.Analyze(r.Context(), req.VideoID, req.UserPrompt)
	if err != nil {
		s.writeServiceError(w, "content-analysis", err)
		return
	}
	writeJSON(w, http.StatusOK, newConversionResponse(res.Transcript, res.Relevance))
}

// generateQuestions handles POST /generate-questions.
func (s *Server) generateQuestions(w http.ResponseWriter, r *http.Request) {
	var req questionsRequest
	if !s.decode(w, r, &req) {
		return
	}

	var notes any
	if !isFalsy(req.Notes) {
		notes = req.Notes
	}

	qas, err := s.svc.Questions(r.Context(), notes, req.ExamType)
	if err != nil {
		s.writeServiceError(w, "generate-questions", err)
		return
	}
	if qas == nil {
		qas = []extractor.QuestionAnswer{}
	}
	writeJSON(w, http.StatusOK, questionsResponse{Data: qas})
}

// decode reads a JSON body into v. An empty body leaves v zero-valued so the
// handler reports the missing fields itself.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid JSON: %v", err)})
	return false
}

func (s *Server) writeServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, processor.ErrVideoIDRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgVideoIDRequired})
	case errors.Is(err, processor.ErrNoAudioLink):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgNoAudioLink})
	case errors.Is(err, processor.ErrQuestionsInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: msgRequiredData})
	case errors.Is(err, processor.ErrUpstream):
		s.logger.Warn("upstream failure", "route", route, "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: msgSomethingWrong})
	default:
		s.logger.Error("request failed", "route", route, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func newConversionResponse(tr processor.Transcript, notes any) conversionResponse {
	return conversionResponse{
		Status:              true,
		VideoID:             tr.VideoID,
		VideoAudio:          tr.AudioURL,
		AudioCloudinaryLink: tr.StoredURL,
		AudioText:           tr.Text,
		StructureNotes:      notes,
		AudioTitle:          tr.Title,
		AudioFileSize:       tr.FileSize,
	}
}

// isFalsy reports whether a raw JSON value counts as "not provided": absent,
// null, false, 0 or the empty string.
func isFalsy(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	switch string(v) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}
