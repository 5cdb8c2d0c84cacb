package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dkarimoff/childscreen/internal/explain"
	"github.com/dkarimoff/childscreen/internal/instrument"
	"github.com/dkarimoff/childscreen/internal/scoring"
	"github.com/dkarimoff/childscreen/internal/session"
)

type fakeCaller struct {
	response string
	err      error
	calls    int
}

func (f *fakeCaller) GenerateJSON(context.Context, string, string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestHandler(t *testing.T, caller explain.LLMCaller) http.Handler {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return NewServer(store, explain.NewGateway(caller))
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("%s %s: non-JSON body %q", method, path, rec.Body.String())
		}
	}
	return rec, payload
}

func favorableAnswers() scoring.Answers {
	a := scoring.Answers{}
	for _, q := range instrument.Questions {
		if q.Polarity == instrument.PolarityPositive {
			a[q.ID] = 2
		} else {
			a[q.ID] = 0
		}
	}
	return a
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, nil)
	rec, payload := doJSON(t, h, http.MethodGet, "/v1/health", nil)
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	if payload["ok"] != true {
		t.Fatalf("payload = %v", payload)
	}
	if payload["questions"].(float64) != float64(len(instrument.Questions)) {
		t.Fatalf("questions = %v", payload["questions"])
	}
}

func TestSummariesInline(t *testing.T) {
	h := newTestHandler(t, nil)
	rec, payload := doJSON(t, h, http.MethodPost, "/v1/summaries", map[string]any{
		"child_age_years": 3,
		"answers":         favorableAnswers(),
	})
	if rec.Code != 200 {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	summary := payload["summary"].(map[string]any)
	if summary["risk_label"] != string(instrument.RiskLow) {
		t.Fatalf("risk_label = %v", summary["risk_label"])
	}
	if summary["age_band"] != string(instrument.Band2to3) {
		t.Fatalf("age_band = %v", summary["age_band"])
	}
	if _, ok := payload["conclusion"]; !ok {
		t.Fatal("response missing conclusion")
	}
}

func TestSummariesRequireAge(t *testing.T) {
	h := newTestHandler(t, nil)
	rec, _ := doJSON(t, h, http.MethodPost, "/v1/summaries", map[string]any{
		"answers": scoring.Answers{"S1": 1},
	})
	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSummariesRejectBadJSON(t *testing.T) {
	h := newTestHandler(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/summaries", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestExplainAlways200OnModelFailure(t *testing.T) {
	h := newTestHandler(t, &fakeCaller{err: errors.New("status code: 500")})
	rec, payload := doJSON(t, h, http.MethodPost, "/v1/explain", map[string]any{
		"child_age_years": 4,
		"answers":         scoring.Answers{"S1": 0, "R1": 2},
	})
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200 despite model failure", rec.Code)
	}
	report := payload["report"].(map[string]any)
	if report["summary"] == "" {
		t.Fatal("fallback report has no summary")
	}
	if steps := report["next_steps"].([]any); len(steps) != 3 {
		t.Fatalf("next_steps = %v", steps)
	}
	if report["disclaimer"] == "" {
		t.Fatal("fallback report has no disclaimer")
	}
}

func TestExplainWithSessionPersistsReport(t *testing.T) {
	h := newTestHandler(t, &fakeCaller{response: `{"next_steps":["a","b","c"]}`})

	rec, _ := doJSON(t, h, http.MethodPut, "/v1/sessions/kid-1", map[string]any{
		"child_age_years": 5,
		"answers":         scoring.Answers{"S1": 0},
		"lang":            "en",
	})
	if rec.Code != 200 {
		t.Fatalf("put session: %d", rec.Code)
	}

	rec, _ = doJSON(t, h, http.MethodPost, "/v1/explain", map[string]any{"session_id": "kid-1"})
	if rec.Code != 200 {
		t.Fatalf("explain: %d body=%s", rec.Code, rec.Body.String())
	}

	rec, payload := doJSON(t, h, http.MethodGet, "/v1/sessions/kid-1", nil)
	if rec.Code != 200 {
		t.Fatalf("get session: %d", rec.Code)
	}
	if _, ok := payload["report"]; !ok {
		t.Fatal("stored session is missing the generated report")
	}
}

func TestExplainUnknownSession(t *testing.T) {
	h := newTestHandler(t, nil)
	rec, _ := doJSON(t, h, http.MethodPost, "/v1/explain", map[string]any{"session_id": "ghost"})
	if rec.Code != 404 {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestSessionLifecycle(t *testing.T) {
	h := newTestHandler(t, nil)

	rec, payload := doJSON(t, h, http.MethodPut, "/v1/sessions/s1", map[string]any{
		"child_age_years": 6,
		"answers":         scoring.Answers{"L1": 1},
		"lang":            "ru",
	})
	if rec.Code != 200 || payload["session_id"] != "s1" {
		t.Fatalf("put: %d %v", rec.Code, payload)
	}

	rec, payload = doJSON(t, h, http.MethodGet, "/v1/sessions/s1", nil)
	if rec.Code != 200 {
		t.Fatalf("get: %d", rec.Code)
	}
	if payload["child_age_years"].(float64) != 6 || payload["lang"] != "ru" {
		t.Fatalf("payload = %v", payload)
	}

	// The stored session feeds the summary endpoint by reference.
	rec, payload = doJSON(t, h, http.MethodPost, "/v1/summaries", map[string]any{"session_id": "s1"})
	if rec.Code != 200 {
		t.Fatalf("summaries via session: %d", rec.Code)
	}
	if payload["summary"].(map[string]any)["child_age_years"].(float64) != 6 {
		t.Fatal("summary did not use the stored age")
	}

	rec, _ = doJSON(t, h, http.MethodDelete, "/v1/sessions/s1", nil)
	if rec.Code != 200 {
		t.Fatalf("delete: %d", rec.Code)
	}
	rec, _ = doJSON(t, h, http.MethodGet, "/v1/sessions/s1", nil)
	if rec.Code != 404 {
		t.Fatalf("get after delete: %d, want 404", rec.Code)
	}
}

func TestSessionPutRequiresAge(t *testing.T) {
	h := newTestHandler(t, nil)
	rec, _ := doJSON(t, h, http.MethodPut, "/v1/sessions/s2", map[string]any{"answers": scoring.Answers{}})
	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestQuestionsEndpoint(t *testing.T) {
	h := newTestHandler(t, nil)
	rec, payload := doJSON(t, h, http.MethodGet, "/v1/questions?band=2-3", nil)
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	items := payload["questions"].([]any)
	if len(items) != len(instrument.ApplicableQuestions(instrument.Band2to3)) {
		t.Fatalf("got %d questions", len(items))
	}
	first := items[0].(map[string]any)
	if first["id"] == "" || first["text"] == "" {
		t.Fatalf("question item = %v", first)
	}
}
