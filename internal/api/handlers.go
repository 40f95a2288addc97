// ABOUTME: HTTP handlers for dream journal endpoints
// ABOUTME: Request decoding, validation, and mapping onto journal services
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/harper/dreamdecoder/internal/domain"
	"github.com/harper/dreamdecoder/internal/insights"
	"github.com/harper/dreamdecoder/internal/journal"
)

const msgDreamNotFound = "Dream not found"

type addDreamRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Text   string `json:"dream_text" validate:"required"`
	Date   string `json:"dream_date" validate:"required,datetime=2006-01-02"`
}

// updateDreamRequest fields are optional; an invalid date is ignored by the
// store rather than rejected here.
type updateDreamRequest struct {
	Text *string `json:"dream_text" validate:"omitempty,min=1"`
	Date *string `json:"dream_date"`
}

type dreamifyResponse struct {
	DreamID string `json:"dream_id"`
	Style   string `json:"style"`
	Result  string `json:"result"`
}

type recommendationsResponse struct {
	DreamID         string   `json:"dream_id"`
	Recommendations []string `json:"recommendations"`
}

type reflectionsResponse struct {
	Reflections []string `json:"reflections"`
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Status: "OK", Message: "Dream Decoder API is running"})
}

func (s *Server) handleAddDream(w http.ResponseWriter, r *http.Request) {
	var req addDreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeBadRequest(w, validationMessage(err))
		return
	}

	id, err := s.journal.Add(req.UserID, req.Text, req.Date)
	if err != nil {
		writeServiceError(w, err, msgDreamNotFound)
		return
	}
	s.metrics.dreams.WithLabelValues("add").Inc()
	writeJSON(w, http.StatusCreated, MessageResponse{Message: "Dream added", DreamID: id})
}

func (s *Server) handleListDreams(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := q.Get("user_id")
	if userID == "" {
		writeBadRequest(w, "Missing user_id param")
		return
	}

	searching := false
	for _, key := range []string{"search_term", "start_date", "end_date", "filter_emotion", "filter_symbol"} {
		if q.Get(key) != "" {
			searching = true
		}
	}
	if !searching {
		entries := s.journal.List(userID)
		if entries == nil {
			entries = []domain.Entry{}
		}
		writeJSON(w, http.StatusOK, entries)
		return
	}

	filter, err := journal.BuildFilter(q.Get("search_term"), q.Get("start_date"), q.Get("end_date"), q.Get("filter_emotion"), q.Get("filter_symbol"))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	results := s.journal.Search(userID, filter)
	if results == nil {
		results = []journal.Result{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleGetDream(w http.ResponseWriter, r *http.Request) {
	entry, err := s.journal.Get(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err, msgDreamNotFound)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleUpdateDream(w http.ResponseWriter, r *http.Request) {
	var req updateDreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON")
		return
	}
	if req.Text == nil && req.Date == nil {
		writeBadRequest(w, "No update fields")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeBadRequest(w, validationMessage(err))
		return
	}

	entry, err := s.journal.Update(mux.Vars(r)["id"], journal.UpdateInput{Text: req.Text, Date: req.Date})
	if err != nil {
		writeServiceError(w, err, msgDreamNotFound)
		return
	}
	s.metrics.dreams.WithLabelValues("update").Inc()
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteDream(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.journal.Delete(id); err != nil {
		writeServiceError(w, err, msgDreamNotFound)
		return
	}
	s.metrics.dreams.WithLabelValues("delete").Inc()
	writeJSON(w, http.StatusOK, MessageResponse{Message: fmt.Sprintf("Dream '%s' deleted", id)})
}

func (s *Server) handleDNA(w http.ResponseWriter, r *http.Request) {
	profile, err := s.insights.DNA(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err, msgDreamNotFound)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleDreamify(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	style := r.URL.Query().Get("style")
	if style == "" {
		style = insights.StylePoem
	}
	result, err := s.insights.DreamifyEntry(id, style)
	if err != nil {
		writeServiceError(w, err, msgDreamNotFound)
		return
	}
	writeJSON(w, http.StatusOK, dreamifyResponse{DreamID: id, Style: style, Result: result})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	recs := s.insights.Recommendations(id)
	if insights.IsDreamNotFound(recs) {
		writeNotFound(w, msgDreamNotFound)
		return
	}
	writeJSON(w, http.StatusOK, recommendationsResponse{DreamID: id, Recommendations: recs})
}

func (s *Server) handleSymbol(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	details, err := s.guide.Details(name, r.URL.Query().Get("user_id"))
	if err != nil {
		writeServiceError(w, err, fmt.Sprintf("Symbol '%s' not found", name))
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (s *Server) handleReflections(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := q.Get("user_id")
	if userID == "" {
		writeBadRequest(w, "Missing user_id param")
		return
	}
	days := insights.DefaultReflectionDays
	if raw := q.Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(w, "days must be an integer")
			return
		}
		days = n
	}
	writeJSON(w, http.StatusOK, reflectionsResponse{Reflections: s.insights.Reflections(userID, days)})
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := q.Get("user_id")
	if userID == "" {
		writeBadRequest(w, "Missing user_id param")
		return
	}
	since, err := journal.ParseBound(q.Get("start_date"))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	until, err := journal.ParseBound(q.Get("end_date"))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.insights.Timeline(userID, since, until))
}

var exportTypes = map[string]struct{ ext, contentType string }{
	insights.FormatCSV:      {"csv", "text/csv"},
	insights.FormatMarkdown: {"md", "text/markdown; charset=utf-8"},
	insights.FormatJSON:     {"json", "application/json"},
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := q.Get("user_id")
	if userID == "" {
		writeBadRequest(w, "Missing user_id param")
		return
	}
	format := q.Get("format")
	if format == "" {
		format = insights.FormatCSV
	}

	// Buffer so a failed export can still produce a JSON error.
	var buf bytes.Buffer
	if err := s.insights.Export(userID, &buf, format); err != nil {
		writeServiceError(w, err, msgDreamNotFound)
		return
	}

	t := exportTypes[format]
	w.Header().Set("Content-Type", t.contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", userID+"_journal."+t.ext))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "datetime":
			parts = append(parts, fe.Field()+" must be a YYYY-MM-DD date")
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
