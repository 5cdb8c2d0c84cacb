package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/dkarimoff/childscreen/internal/evidence"
	"github.com/dkarimoff/childscreen/internal/instrument"
)

// DefaultTimeout bounds a single explanation attempt. There is no retry:
// a slow or failed call degrades to the fallback report instead of making
// the caregiver wait.
const DefaultTimeout = 20 * time.Second

// Gateway turns a scoring digest into a caregiver-facing report. The model
// only ever contributes advice text; classification, evidence lists, and the
// summary line are decided locally and override whatever the model says.
type Gateway struct {
	caller  LLMCaller
	timeout time.Duration
}

func NewGateway(caller LLMCaller) *Gateway {
	return &Gateway{caller: caller, timeout: DefaultTimeout}
}

// NewGatewayWithTimeout is used by tests that cannot afford the full window.
func NewGatewayWithTimeout(caller LLMCaller, timeout time.Duration) *Gateway {
	return &Gateway{caller: caller, timeout: timeout}
}

// Generate produces a complete report. It never returns an error: missing
// credentials, transport failures, non-JSON replies, and malformed shapes all
// resolve to a fallback report carrying the same local classification.
func (g *Gateway) Generate(ctx context.Context, digest Digest) Report {
	if g.caller == nil {
		return g.fallback(digest, text(digest.Lang, notConfiguredText))
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.caller.GenerateJSON(ctx, systemPrompt(digest.Lang), userPrompt(digest))
	if err != nil {
		log.Printf("explain: model call failed: %v", err)
		msg := text(digest.Lang, unavailableText)
		if code := statusCodeFrom(err); code != "" {
			msg = fmt.Sprintf(text(digest.Lang, unavailableWithCodeText), code)
		}
		return g.fallback(digest, msg)
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &fields); err != nil {
		log.Printf("explain: model reply was not JSON: %v", err)
		return g.fallback(digest, text(digest.Lang, badJSONText))
	}

	report := normalize(fields, digest)
	applySignalFilters(&report, digest)
	report.Summary = strictSummary(digest)
	return report
}

// normalize coerces the model's loosely shaped JSON into a Report and fills
// per-field defaults so no field is ever missing.
func normalize(fields map[string]any, digest Digest) Report {
	lang := digest.Lang
	r := Report{
		Summary:       toText(fields["summary"]),
		Strengths:     toList(fields["strengths"]),
		Challenges:    toList(fields["challenges"]),
		WhyHigherRisk: toList(fields["why_supports_higher_risk"]),
		WhyLowerRisk:  toList(fields["why_supports_lower_risk"]),
		NextSteps:     toList(fields["next_steps"]),
		Specialists:   toList(fields["specialists"]),
		HomeTips:      toList(fields["home_tips"]),
		Urgency:       string(digest.Urgency),
		Disclaimer:    text(lang, disclaimerText),
	}

	if len(r.NextSteps) == 0 {
		r.NextSteps = list(lang, defaultNextSteps)
	}
	if len(r.NextSteps) > nextStepsCount {
		r.NextSteps = r.NextSteps[:nextStepsCount]
	}

	if len(r.Specialists) > maxSpecialists {
		r.Specialists = r.Specialists[:maxSpecialists]
	}
	for i := 0; len(r.Specialists) < minSpecialists; i++ {
		r.Specialists = append(r.Specialists, list(lang, defaultSpecialists)[i])
	}

	// Home tips are optional, but if present they come as a usable set.
	if len(r.HomeTips) > maxHomeTips {
		r.HomeTips = r.HomeTips[:maxHomeTips]
	}
	if n := len(r.HomeTips); n > 0 && n < minHomeTips {
		for _, tip := range list(lang, defaultHomeTips) {
			if len(r.HomeTips) >= minHomeTips {
				break
			}
			r.HomeTips = append(r.HomeTips, tip)
		}
	}
	return r
}

// applySignalFilters replaces the evidence-bound lists with the locally
// computed signals. The model cannot introduce an answer the caregiver never
// gave.
func applySignalFilters(r *Report, digest Digest) {
	if digest.Signals == nil {
		if len(r.Strengths) > maxStrengths {
			r.Strengths = r.Strengths[:maxStrengths]
		}
		if len(r.Challenges) > maxChallenges {
			r.Challenges = r.Challenges[:maxChallenges]
		}
		if len(r.WhyHigherRisk) > maxWhyItems {
			r.WhyHigherRisk = r.WhyHigherRisk[:maxWhyItems]
		}
		if len(r.WhyLowerRisk) > maxWhyItems {
			r.WhyLowerRisk = r.WhyLowerRisk[:maxWhyItems]
		}
		return
	}

	var risk []string
	for _, d := range instrument.Domains() {
		risk = append(risk, digest.Signals.RiskItemsByDomain[d]...)
	}
	strengths := digest.Signals.StrengthItems

	r.Strengths = capped(strengths, maxStrengths)
	r.Challenges = capped(risk, maxChallenges)
	r.WhyHigherRisk = capped(risk, maxWhyItems)
	r.WhyLowerRisk = capped(strengths, maxWhyItems)
}

func capped(items []string, n int) []string {
	out := make([]string, 0, n)
	for _, it := range items {
		if len(out) == n {
			break
		}
		out = append(out, it)
	}
	return out
}

// strictSummary builds the deterministic top line, parameterized by age and
// the non-normal domains. The model's own summary is discarded.
func strictSummary(digest Digest) string {
	base := evidence.SummarySentence(digest.RiskLabel, digest.Lang)
	if digest.RiskLabel == instrument.RiskLow {
		return fmt.Sprintf(text(digest.Lang, lowSummaryText), digest.ChildAgeYears, base)
	}
	var areas []string
	for _, d := range instrument.Domains() {
		status, ok := digest.DomainStatuses[d]
		if !ok || status == instrument.StatusNormal {
			continue
		}
		areas = append(areas, instrument.DomainShort(digest.Lang, d)+": "+instrument.StatusLabelFor(digest.Lang, status))
	}
	if len(areas) == 0 {
		return base
	}
	return base + " " + fmt.Sprintf(text(digest.Lang, areasSuffixText), strings.Join(areas, ", "))
}

// fallback is the complete report used whenever the model cannot contribute.
func (g *Gateway) fallback(digest Digest, msg string) Report {
	r := Report{
		Summary:       strictSummary(digest),
		Strengths:     []string{},
		Challenges:    []string{},
		WhyHigherRisk: []string{},
		WhyLowerRisk:  []string{},
		NextSteps:     list(digest.Lang, defaultNextSteps),
		Specialists:   list(digest.Lang, defaultSpecialists)[:minSpecialists+1],
		Urgency:       string(digest.Urgency),
		Disclaimer:    text(digest.Lang, disclaimerText),
	}
	if msg != "" {
		r.Summary = r.Summary + " " + msg
	}
	applySignalFilters(&r, digest)
	return r
}

var (
	statusCodeRe = regexp.MustCompile(`\b([45]\d\d)\b`)
	listSplitRe  = regexp.MustCompile(`\n|•|- `)
)

// statusCodeFrom pulls an HTTP status code out of a transport error when one
// is present, so the fallback summary can say what happened without leaking
// the full error text.
func statusCodeFrom(err error) string {
	if err == nil {
		return ""
	}
	m := statusCodeRe.FindStringSubmatch(err.Error())
	if m == nil {
		return ""
	}
	return m[1]
}

func toText(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// toList accepts either a JSON array of strings or a single delimited string;
// smaller models routinely return the latter.
func toList(v any) []string {
	var parts []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
	case string:
		parts = listSplitRe.Split(t, -1)
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(p), "-"))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
