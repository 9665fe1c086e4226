package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mfeldman/termsmith/internal/checklist"
	"github.com/mfeldman/termsmith/internal/profilestore"
	"github.com/mfeldman/termsmith/internal/types"
)

// generateResponse carries the generated markdown plus checklist gaps.
type generateResponse struct {
	types.GenerateResponse
	Gaps []types.Gap `json:"gaps"`
}

// handleGenerate drafts documents from ad-hoc product variables.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	docs, err := s.pipeline.AdHoc(r.Context(), req)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, buildGenerateResponse(docs, nil))
}

// handleGenerateFromProfile drafts documents from a stored profile.
func (s *Server) handleGenerateFromProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.loadProfile(w, r)
	if !ok {
		return
	}

	var body struct {
		Docs []types.DocType `json:"docs"`
		Tone types.Tone      `json:"tone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(body.Docs) == 0 {
		body.Docs = []types.DocType{types.DocTypeToS, types.DocTypePrivacy}
	}
	if body.Tone == "" {
		body.Tone = types.TonePlain
	}

	docs, err := s.pipeline.FromProfile(r.Context(), profile, body.Docs, body.Tone)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, buildGenerateResponse(docs, checklist.ProfileGaps(profile)))
}

// handleGeneratePrivacy runs the specialized single-pass privacy path.
func (s *Server) handleGeneratePrivacy(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.loadProfile(w, r)
	if !ok {
		return
	}

	doc, err := s.pipeline.PrivacyPolicy(r.Context(), profile)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	gaps := append(checklist.ValidatePrivacy(doc), checklist.ProfileGaps(profile)...)
	s.jsonResponse(w, http.StatusOK, generateResponse{
		GenerateResponse: types.GenerateResponse{PrivacyMarkdown: doc},
		Gaps:             gaps,
	})
}

func buildGenerateResponse(docs map[types.DocType]string, profileGaps []types.Gap) generateResponse {
	resp := generateResponse{Gaps: profileGaps}
	if resp.Gaps == nil {
		resp.Gaps = []types.Gap{}
	}
	if md, ok := docs[types.DocTypeToS]; ok {
		resp.ToSMarkdown = md
		resp.Gaps = append(resp.Gaps, checklist.ValidateToS(md)...)
	}
	if md, ok := docs[types.DocTypePrivacy]; ok {
		resp.PrivacyMarkdown = md
		resp.Gaps = append(resp.Gaps, checklist.ValidatePrivacy(md)...)
	}
	return resp
}

// handleCreateProfile stores a new company profile.
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var profile types.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := s.profiles.Create(&profile)
	if err != nil {
		s.profileError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleGetProfile returns a stored profile by ID.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.loadProfile(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleUpdateProfile replaces a stored profile.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile types.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	updated, err := s.profiles.Update(r.PathValue("id"), &profile)
	if err != nil {
		s.profileError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteProfile removes a stored profile.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.profiles.Delete(r.PathValue("id")); err != nil {
		s.profileError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListProfiles lists stored profile summaries.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.profiles.List()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleIngest runs corpus ingestion from a server-side CSV path.
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CSVPath string `json:"csv_path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.CSVPath == "" {
		s.errorResponse(w, http.StatusBadRequest, "csv_path is required")
		return
	}

	count, err := s.ingestor.IngestCSV(r.Context(), body.CSVPath)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]int{"chunks_ingested": count})
}

// handleHealth reports server and corpus status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.Count(r.Context())
	if err != nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]any{
			"status": "degraded",
			"error":  err.Error(),
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"corpus_chunks": count,
	})
}

// handleConfig exposes the static request vocabulary for clients.
func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"doc_types":     []types.DocType{types.DocTypeToS, types.DocTypePrivacy},
		"tones":         []types.Tone{types.TonePlain, types.ToneFormal},
		"jurisdictions": types.SupportedJurisdictions(),
	})
}

// loadProfile resolves the {id} path parameter to a stored profile,
// writing the error response itself on failure.
func (s *Server) loadProfile(w http.ResponseWriter, r *http.Request) (*types.CompanyProfile, bool) {
	profile, err := s.profiles.Read(r.PathValue("id"))
	if err != nil {
		s.profileError(w, err)
		return nil, false
	}
	return profile, true
}

// profileError maps profile store errors to HTTP status codes.
func (s *Server) profileError(w http.ResponseWriter, err error) {
	var notFound *profilestore.NotFoundError
	var exists *profilestore.AlreadyExistsError
	var invalid *profilestore.ValidationError
	switch {
	case errors.As(err, &notFound):
		s.errorResponse(w, http.StatusNotFound, err.Error())
	case errors.As(err, &exists):
		s.errorResponse(w, http.StatusConflict, err.Error())
	case errors.As(err, &invalid):
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
	}
}
