package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/dkarimoff/childscreen/internal/evidence"
	"github.com/dkarimoff/childscreen/internal/explain"
	"github.com/dkarimoff/childscreen/internal/instrument"
	"github.com/dkarimoff/childscreen/internal/scoring"
	"github.com/dkarimoff/childscreen/internal/session"
)

type Server struct {
	store   *session.Store
	gateway *explain.Gateway
}

func NewServer(store *session.Store, gateway *explain.Gateway) http.Handler {
	s := &Server{store: store, gateway: gateway}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/summaries", s.handleSummaries)
	mux.HandleFunc("/v1/explain", s.handleExplain)
	mux.HandleFunc("/v1/sessions/", s.handleSession)
	mux.HandleFunc("/v1/questions", s.handleQuestions)
	mux.HandleFunc("/v1/health", s.handleHealth)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"ok":    false,
		"error": map[string]any{"message": msg},
	})
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return []byte("{}"), nil
	}
	blob, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		blob = []byte("{}")
	}
	return blob, nil
}

func methodOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// screeningInput is the shared request shape: answers can come inline or be
// loaded from a stored session, with inline fields winning when both appear.
type screeningInput struct {
	SessionID     string          `json:"session_id"`
	ChildAgeYears int             `json:"child_age_years"`
	Answers       scoring.Answers `json:"answers"`
	Lang          string          `json:"lang"`
}

// resolve loads session fields when a session_id is given, then applies
// inline overrides. A missing session is the only resolution error.
func (s *Server) resolve(ctx context.Context, in screeningInput) (int, scoring.Answers, instrument.Lang, error) {
	age := in.ChildAgeYears
	answers := in.Answers
	lang := instrument.ParseLang(in.Lang)

	if in.SessionID != "" {
		sess, err := s.store.Get(ctx, in.SessionID)
		if err != nil {
			return 0, nil, lang, err
		}
		if age == 0 {
			age = sess.ChildAgeYears
		}
		if answers == nil {
			answers = sess.Answers
		}
		if in.Lang == "" {
			lang = sess.Lang
		}
	}
	return age, answers, lang, nil
}

func (s *Server) handleSummaries(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	blob, err := readBody(r)
	if err != nil {
		writeError(w, 400, "read body: "+err.Error())
		return
	}
	var req screeningInput
	if err := json.Unmarshal(blob, &req); err != nil {
		writeError(w, 400, "invalid JSON: "+err.Error())
		return
	}
	age, answers, lang, err := s.resolve(r.Context(), req)
	if errors.Is(err, session.ErrNotFound) {
		writeError(w, 404, "session not found")
		return
	}
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	if age <= 0 {
		writeError(w, 400, "child_age_years is required")
		return
	}

	summary := scoring.ComputeSummary(age, answers, lang)
	conclusion := evidence.BuildConclusion(summary, answers, lang)
	writeJSON(w, 200, map[string]any{
		"ok":         true,
		"summary":    summary,
		"conclusion": conclusion,
	})
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	blob, err := readBody(r)
	if err != nil {
		writeError(w, 400, "read body: "+err.Error())
		return
	}
	var req screeningInput
	if err := json.Unmarshal(blob, &req); err != nil {
		writeError(w, 400, "invalid JSON: "+err.Error())
		return
	}
	age, answers, lang, err := s.resolve(r.Context(), req)
	if errors.Is(err, session.ErrNotFound) {
		writeError(w, 404, "session not found")
		return
	}
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	if age <= 0 {
		writeError(w, 400, "child_age_years is required")
		return
	}

	summary := scoring.ComputeSummary(age, answers, lang)
	signals := evidence.BuildSignals(summary, answers, lang)
	digest := explain.BuildDigest(summary, &signals, lang)

	// Everything past input validation responds 200: a failed explanation is
	// a fallback report, never an error page in front of a caregiver.
	if req.SessionID == "" {
		report := s.gateway.Generate(r.Context(), digest)
		writeJSON(w, 200, map[string]any{"ok": true, "summary": summary, "report": report})
		return
	}

	guard := s.store.Guard(req.SessionID)
	seq := guard.Next()
	report := s.gateway.Generate(r.Context(), digest)
	if guard.Apply(seq) {
		if err := s.store.SaveReport(r.Context(), req.SessionID, report); err != nil {
			log.Printf("httpapi: save report for %s: %v", req.SessionID, err)
		}
	} else if latest, ok, err := s.store.LatestReport(r.Context(), req.SessionID); err == nil && ok {
		// A newer regenerate finished first; serve its result instead.
		report = latest
	}
	writeJSON(w, 200, map[string]any{"ok": true, "summary": summary, "report": report})
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/sessions/"), "/")
	if id == "" || strings.Contains(id, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodPut:
		blob, err := readBody(r)
		if err != nil {
			writeError(w, 400, "read body: "+err.Error())
			return
		}
		var req screeningInput
		if err := json.Unmarshal(blob, &req); err != nil {
			writeError(w, 400, "invalid JSON: "+err.Error())
			return
		}
		if req.ChildAgeYears <= 0 {
			writeError(w, 400, "child_age_years is required")
			return
		}
		if req.Answers == nil {
			req.Answers = scoring.Answers{}
		}
		err = s.store.Put(r.Context(), session.Session{
			ID:            id,
			ChildAgeYears: req.ChildAgeYears,
			Answers:       req.Answers,
			Lang:          instrument.ParseLang(req.Lang),
		})
		if err != nil {
			writeError(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, map[string]any{"ok": true, "session_id": id})

	case http.MethodGet:
		sess, err := s.store.Get(r.Context(), id)
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, 404, "session not found")
			return
		}
		if err != nil {
			writeError(w, 500, err.Error())
			return
		}
		payload := map[string]any{
			"ok":              true,
			"session_id":      sess.ID,
			"child_age_years": sess.ChildAgeYears,
			"answers":         sess.Answers,
			"lang":            sess.Lang,
			"created_at":      sess.CreatedAt,
			"updated_at":      sess.UpdatedAt,
		}
		if report, ok, err := s.store.LatestReport(r.Context(), id); err == nil && ok {
			payload["report"] = report
		}
		writeJSON(w, 200, payload)

	case http.MethodDelete:
		err := s.store.Delete(r.Context(), id)
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, 404, "session not found")
			return
		}
		if err != nil {
			writeError(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleQuestions serves the questionnaire for an age band so clients render
// the same items the scorer will count.
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	band := instrument.AgeBand(strings.TrimSpace(r.URL.Query().Get("band")))
	if band == "" {
		band = instrument.AgeBandFor(4)
	}
	type item struct {
		ID      string            `json:"id"`
		Domain  instrument.Domain `json:"domain"`
		Text    string            `json:"text"`
		Example string            `json:"example,omitempty"`
	}
	var items []item
	for _, q := range instrument.ApplicableQuestions(band) {
		items = append(items, item{ID: q.ID, Domain: q.Domain, Text: q.Text, Example: q.Example})
	}
	writeJSON(w, 200, map[string]any{"ok": true, "band": band, "questions": items})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, 200, map[string]any{
		"ok":        true,
		"questions": len(instrument.Questions),
	})
}
