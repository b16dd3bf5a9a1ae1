package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/ats"
	"github.com/jonathan/interview-coach/internal/confidence"
	"github.com/jonathan/interview-coach/internal/types"
)

// candidateHeader carries the authenticated candidate identity. The
// authentication collaborator in front of this service sets it; the core
// only verifies ownership against it.
const candidateHeader = "X-Candidate-ID"

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type startInterviewRequest struct {
	Type     string  `json:"type" validate:"required,oneof=behavioral technical general"`
	ResumeID *string `json:"resume_id,omitempty" validate:"omitempty,uuid"`
	Language string  `json:"language,omitempty" validate:"omitempty,alphanum"`
}

func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := s.callerID(w, r)
	if !ok {
		return
	}

	var req startInterviewRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	var resumeID *uuid.UUID
	if req.ResumeID != nil {
		id, err := uuid.Parse(*req.ResumeID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid resume_id")
			return
		}
		resumeID = &id
	}

	result, err := s.interviews.Start(r.Context(), candidateID, types.SessionType(req.Type), resumeID, req.Language)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"interview_id":    result.Session.ID,
		"interview_type":  result.Session.Type,
		"total_questions": result.Session.TotalQuestions,
		"first_question": map[string]any{
			"id":    result.FirstQuestion.ID,
			"text":  result.FirstQuestion.Text,
			"order": result.FirstQuestion.Order,
		},
	})
}

type submitAnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required,uuid"`
	Answer     string `json:"answer" validate:"required"`
	TimeTaken  int    `json:"time_taken" validate:"gte=0"`
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := s.callerID(w, r)
	if !ok {
		return
	}

	var req submitAnswerRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid question_id")
		return
	}

	result, err := s.interviews.SubmitAnswer(r.Context(), candidateID, questionID, req.Answer, req.TimeTaken)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	resp := map[string]any{
		"evaluation": result.Evaluation,
		"progress":   result.Progress,
	}
	if result.NextQuestion != nil {
		resp["next_question"] = map[string]any{
			"id":    result.NextQuestion.ID,
			"text":  result.NextQuestion.Text,
			"order": result.NextQuestion.Order,
		}
	}
	if result.Completed != nil {
		resp["status"] = result.Completed.Status
		resp["overall_score"] = result.Completed.OverallScore
		resp["readiness_status"] = result.Completed.ReadinessStatus()
		resp["feedback"] = result.Completed.Feedback
		resp["duration_seconds"] = result.Completed.DurationSeconds
	}
	writeJSON(w, http.StatusOK, resp)
}

type retryQuestionRequest struct {
	Answer string `json:"answer" validate:"required"`
}

func (s *Server) handleRetryQuestion(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := s.callerID(w, r)
	if !ok {
		return
	}
	questionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	var req retryQuestionRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	result, err := s.interviews.Retry(r.Context(), candidateID, questionID, req.Answer)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"new_score":               result.Question.Score,
		"evaluation":              result.Question.Evaluation,
		"interview_overall_score": result.Session.OverallScore,
	})
}

func (s *Server) handleGetReview(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := s.callerID(w, r)
	if !ok {
		return
	}
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid interview id")
		return
	}

	review, err := s.interviews.GetReview(r.Context(), candidateID, sessionID)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := s.callerID(w, r)
	if !ok {
		return
	}

	sessions, err := s.interviews.History(r.Context(), candidateID)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"interviews": sessions,
		"count":      len(sessions),
	})
}

func (s *Server) handleDeleteInterview(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := s.callerID(w, r)
	if !ok {
		return
	}
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid interview id")
		return
	}

	if err := s.interviews.Delete(r.Context(), candidateID, sessionID); err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "interview deleted"})
}

// handleAnalyzeResume recomputes the ATS score of a stored resume in place.
// The numeric result is always produced; the AI narrative is best-effort.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := s.callerID(w, r)
	if !ok {
		return
	}
	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid resume id")
		return
	}

	resume, err := s.db.GetResume(r.Context(), resumeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load resume")
		return
	}
	if resume == nil {
		writeError(w, http.StatusNotFound, "resume not found")
		return
	}
	if resume.CandidateID != candidateID {
		writeError(w, http.StatusForbidden, "resume does not belong to caller")
		return
	}

	result := s.scorer.Score(resume.Text, resume.Sections)

	// Narrative generation gets its own deadline so a slow language service
	// cannot delay the numeric result indefinitely.
	narrativeCtx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()
	result.Narrative = ats.Narrate(narrativeCtx, s.llmClient, resume.Text, result)

	if err := s.db.UpdateResumeResult(r.Context(), resumeID, &result); err != nil {
		log.Printf("failed to persist resume result: %v", err)
	}

	writeJSON(w, http.StatusOK, result)
}

type createCandidateRequest struct {
	Name          string `json:"name" validate:"required"`
	Tier          string `json:"tier" validate:"required,oneof=free pro"`
	MaxInterviews int    `json:"max_interviews" validate:"gte=0"`
}

func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req createCandidateRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	candidate := &types.Candidate{
		ID:            uuid.New(),
		Name:          req.Name,
		Tier:          req.Tier,
		MaxInterviews: req.MaxInterviews,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.db.CreateCandidate(r.Context(), candidate); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create candidate")
		return
	}
	writeJSON(w, http.StatusCreated, candidate)
}

type createResumeRequest struct {
	Text     string                `json:"text" validate:"required"`
	Profile  types.ResumeProfile   `json:"profile"`
	Sections *types.ParsedSections `json:"sections,omitempty"`
	ParentID *string               `json:"parent_id,omitempty" validate:"omitempty,uuid"`
}

// handleCreateResume stores a resume and scores it immediately. Improved
// variants reference their original through parent_id and are scored
// independently; the original is never touched.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := s.callerID(w, r)
	if !ok {
		return
	}

	var req createResumeRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	var parentID *uuid.UUID
	if req.ParentID != nil {
		id, err := uuid.Parse(*req.ParentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid parent_id")
			return
		}
		parent, err := s.db.GetResume(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load parent resume")
			return
		}
		if parent == nil {
			writeError(w, http.StatusNotFound, "parent resume not found")
			return
		}
		if parent.CandidateID != candidateID {
			writeError(w, http.StatusForbidden, "parent resume does not belong to caller")
			return
		}
		// Variants derive from originals only, so every improvement chain
		// stays one level deep.
		if parent.IsVariant() {
			writeError(w, http.StatusBadRequest, "parent resume is itself a variant; derive from the original")
			return
		}
		parentID = &id
	}

	// The extraction collaborator normally supplies the parse; fall back to
	// the header heuristics when it is absent.
	sections := ats.ParseSections(req.Text)
	if req.Sections != nil {
		sections = *req.Sections
	}

	result := s.scorer.Score(req.Text, sections)
	now := time.Now().UTC()
	resume := &types.ResumeDocument{
		ID:          uuid.New(),
		CandidateID: candidateID,
		Text:        req.Text,
		Sections:    sections,
		Profile:     req.Profile,
		Result:      &result,
		ParentID:    parentID,
		CreatedAt:   now,
		ScoredAt:    &now,
	}
	if err := s.db.CreateResume(r.Context(), resume); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create resume")
		return
	}
	writeJSON(w, http.StatusCreated, resume)
}

type videoAnswerRequest struct {
	TotalFrames    int `json:"total_frames" validate:"required,gt=0"`
	FramesWithFace int `json:"frames_with_face" validate:"gte=0"`
}

// handleRecordVideoAnswer maps a video answer's face-presence analysis to a
// confidence score and records it for future difficulty selection.
func (s *Server) handleRecordVideoAnswer(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := s.callerID(w, r)
	if !ok {
		return
	}

	var req videoAnswerRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	facePercentage := float64(req.FramesWithFace) / float64(req.TotalFrames) * 100
	score, err := confidence.FromFacePercentage(facePercentage)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	if err := s.db.RecordVideoAnswer(r.Context(), candidateID, req.TotalFrames, req.FramesWithFace, facePercentage, score); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record video answer")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"face_percentage":  facePercentage,
		"confidence_score": score,
	})
}

func (s *Server) handleCandidateRanking(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	rank, err := s.ranker.RankCandidate(r.Context(), candidateID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to rank candidate")
		return
	}
	writeJSON(w, http.StatusOK, rank)
}

// callerID extracts the authenticated candidate identity from the request.
func (s *Server) callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.Header.Get(candidateHeader))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "missing or invalid candidate identity")
		return uuid.Nil, false
	}
	return id, true
}

// decodeRequest decodes and validates a JSON request body.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func writeCoreError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
