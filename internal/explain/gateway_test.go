package explain

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dkarimoff/childscreen/internal/evidence"
	"github.com/dkarimoff/childscreen/internal/instrument"
	"github.com/dkarimoff/childscreen/internal/scoring"
)

type fakeCaller struct {
	response string
	err      error

	lastSystem string
	lastUser   string
}

func (f *fakeCaller) GenerateJSON(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func worstAnswers() scoring.Answers {
	a := scoring.Answers{}
	for _, q := range instrument.Questions {
		if q.Polarity == instrument.PolarityPositive {
			a[q.ID] = 0
		} else {
			a[q.ID] = 2
		}
	}
	return a
}

func testDigest(t *testing.T) Digest {
	t.Helper()
	answers := worstAnswers()
	summary := scoring.ComputeSummary(4, answers, instrument.LangEN)
	signals := evidence.BuildSignals(summary, answers, instrument.LangEN)
	return BuildDigest(summary, &signals, instrument.LangEN)
}

// checkComplete asserts the shape every report must have, whatever happened
// to the model call.
func checkComplete(t *testing.T, r Report, digest Digest) {
	t.Helper()
	if r.Summary == "" {
		t.Error("summary is empty")
	}
	if len(r.NextSteps) != nextStepsCount {
		t.Errorf("next steps = %d, want %d", len(r.NextSteps), nextStepsCount)
	}
	if len(r.Specialists) < minSpecialists || len(r.Specialists) > maxSpecialists {
		t.Errorf("specialists = %d, want %d..%d", len(r.Specialists), minSpecialists, maxSpecialists)
	}
	if n := len(r.HomeTips); n != 0 && (n < minHomeTips || n > maxHomeTips) {
		t.Errorf("home tips = %d, want 0 or %d..%d", n, minHomeTips, maxHomeTips)
	}
	if r.Urgency != string(digest.Urgency) {
		t.Errorf("urgency = %q, want %q", r.Urgency, digest.Urgency)
	}
	if r.Disclaimer == "" {
		t.Error("disclaimer is empty")
	}
}

func TestGenerateWithoutCallerFallsBack(t *testing.T) {
	digest := testDigest(t)
	r := NewGateway(nil).Generate(context.Background(), digest)
	checkComplete(t, r, digest)
	if !strings.Contains(r.Summary, "not configured") {
		t.Errorf("summary %q does not mention missing configuration", r.Summary)
	}
}

func TestGenerateTransportErrorFallsBack(t *testing.T) {
	digest := testDigest(t)
	caller := &fakeCaller{err: errors.New("unexpected status code: 503")}
	r := NewGateway(caller).Generate(context.Background(), digest)
	checkComplete(t, r, digest)
	if !strings.Contains(r.Summary, "503") {
		t.Errorf("summary %q does not surface the status code", r.Summary)
	}
}

func TestGenerateBadJSONFallsBack(t *testing.T) {
	digest := testDigest(t)
	caller := &fakeCaller{response: "I am not JSON at all"}
	r := NewGateway(caller).Generate(context.Background(), digest)
	checkComplete(t, r, digest)
}

func TestGenerateNormalizesDelimitedStrings(t *testing.T) {
	digest := testDigest(t)
	caller := &fakeCaller{response: `{
		"summary": "model text",
		"next_steps": "first step\nsecond step\nthird step\nfourth step",
		"specialists": "Pediatrician • Child neurologist • Speech therapist",
		"home_tips": ["tip one", "tip two"]
	}`}
	r := NewGateway(caller).Generate(context.Background(), digest)
	checkComplete(t, r, digest)

	if r.NextSteps[0] != "first step" {
		t.Errorf("next steps = %v", r.NextSteps)
	}
	if len(r.Specialists) != 3 || r.Specialists[1] != "Child neurologist" {
		t.Errorf("specialists = %v", r.Specialists)
	}
	// Two tips get padded up to the minimum.
	if len(r.HomeTips) != minHomeTips {
		t.Errorf("home tips = %v", r.HomeTips)
	}
}

func TestGenerateOverridesModelSummary(t *testing.T) {
	digest := testDigest(t)
	caller := &fakeCaller{response: `{"summary": "the child is definitely fine"}`}
	r := NewGateway(caller).Generate(context.Background(), digest)

	if strings.Contains(r.Summary, "definitely fine") {
		t.Fatalf("model summary %q survived the override", r.Summary)
	}
	if !strings.Contains(r.Summary, evidence.SummarySentence(digest.RiskLabel, digest.Lang)) {
		t.Fatalf("summary %q does not carry the fixed sentence", r.Summary)
	}
	for _, d := range instrument.Domains() {
		if digest.DomainStatuses[d] == instrument.StatusNormal {
			continue
		}
		if !strings.Contains(r.Summary, instrument.DomainShort(digest.Lang, d)) {
			t.Errorf("summary %q does not name elevated domain %s", r.Summary, d)
		}
	}
}

func TestGenerateReplacesEvidenceLists(t *testing.T) {
	digest := testDigest(t)
	caller := &fakeCaller{response: `{
		"strengths": ["invented strength"],
		"challenges": ["invented challenge"],
		"why_supports_higher_risk": ["invented reason"],
		"why_supports_lower_risk": ["another invention"]
	}`}
	r := NewGateway(caller).Generate(context.Background(), digest)

	for _, list := range [][]string{r.Strengths, r.Challenges, r.WhyHigherRisk, r.WhyLowerRisk} {
		for _, item := range list {
			if strings.Contains(item, "invented") || strings.Contains(item, "invention") {
				t.Fatalf("model-invented evidence %q survived filtering", item)
			}
		}
	}
	if len(r.Challenges) == 0 || len(r.Challenges) > maxChallenges {
		t.Fatalf("challenges = %d, want 1..%d from local risk items", len(r.Challenges), maxChallenges)
	}
	if len(r.WhyHigherRisk) > maxWhyItems {
		t.Fatalf("why-higher = %d, want at most %d", len(r.WhyHigherRisk), maxWhyItems)
	}
}

func TestGeneratePromptCarriesDigest(t *testing.T) {
	digest := testDigest(t)
	caller := &fakeCaller{response: `{}`}
	NewGateway(caller).Generate(context.Background(), digest)

	if !strings.Contains(caller.lastUser, string(digest.RiskLabel)) {
		t.Error("user prompt does not include the risk label")
	}
	if !strings.Contains(caller.lastSystem, "JSON") {
		t.Error("system prompt does not demand JSON")
	}
}

func TestGenerateHonorsTimeout(t *testing.T) {
	digest := testDigest(t)
	slow := callerFunc(func(ctx context.Context, _, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	start := time.Now()
	r := NewGatewayWithTimeout(slow, 20*time.Millisecond).Generate(context.Background(), digest)
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("generate took %v, timeout not applied", elapsed)
	}
	checkComplete(t, r, digest)
}

type callerFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

func (f callerFunc) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f(ctx, systemPrompt, userPrompt)
}

func TestToList(t *testing.T) {
	cases := []struct {
		in   any
		want []string
	}{
		{[]any{"a", "b"}, []string{"a", "b"}},
		{"a\nb", []string{"a", "b"}},
		{"a • b", []string{"a", "b"}},
		{"- a\n- b", []string{"a", "b"}},
		{nil, []string{}},
		{42.0, []string{}},
	}
	for _, tc := range cases {
		got := toList(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("toList(%v) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("toList(%v)[%d] = %q, want %q", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}

func TestStatusCodeFrom(t *testing.T) {
	if got := statusCodeFrom(errors.New("server returned 502 bad gateway")); got != "502" {
		t.Errorf("got %q, want 502", got)
	}
	if got := statusCodeFrom(errors.New("connection refused")); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
