package scoring

import (
	"math"
	"sort"

	"github.com/dkarimoff/childscreen/internal/instrument"
)

// Answers maps question ID to a graded response in {0,1,2}. Unanswered items
// are absent from the map, never present with a sentinel.
type Answers map[string]int

// DomainScore is derived fresh on every scoring pass; never persisted.
type DomainScore struct {
	Raw        int               `json:"raw"`
	Normalized float64           `json:"normalized"`
	Weighted   float64           `json:"weighted"`
	Status     instrument.Status `json:"status"`
	TopFlags   []string          `json:"top_flags"`
}

// Summary is the full output of one scoring pass: a pure value derived from
// (question bank, age, answers). Recomputing from the same inputs yields an
// identical result.
type Summary struct {
	ChildAgeYears    int                               `json:"child_age_years"`
	AgeBand          instrument.AgeBand                `json:"age_band"`
	AnsweredCount    int                               `json:"answered_count"`
	TotalApplicable  int                               `json:"total_applicable"`
	Domains          map[instrument.Domain]DomainScore `json:"domains"`
	CompositeIndex   float64                           `json:"composite_index"`
	CompositeMax     float64                           `json:"composite_max"`
	CompositePercent int                               `json:"composite_percent"`
	RiskLabel        instrument.RiskLabel              `json:"risk_label"`
	Urgency          instrument.Urgency                `json:"urgency"`
	Highlights       []string                          `json:"highlights"`
}

// RiskValue converts a raw answer into its unitless risk contribution.
// Negative-polarity items map identically; positive-polarity items invert
// the scale. Raw values are validated upstream to be in {0,1,2}.
func RiskValue(p instrument.Polarity, raw int) int {
	if p == instrument.PolarityNegative {
		return raw
	}
	return 2 - raw
}

func statusFor(normalized float64) instrument.Status {
	switch {
	case normalized < instrument.StatusModerateThreshold:
		return instrument.StatusNormal
	case normalized < instrument.StatusHighThreshold:
		return instrument.StatusModerate
	default:
		return instrument.StatusHigh
	}
}

func riskLabelFor(composite, max float64) instrument.RiskLabel {
	switch {
	case composite < instrument.RiskLowFraction*max:
		return instrument.RiskLow
	case composite < instrument.RiskMonitoringFraction*max:
		return instrument.RiskMonitoring
	case composite < instrument.RiskHighFraction*max:
		return instrument.RiskHigh
	default:
		return instrument.RiskVeryHigh
	}
}

type flagged struct {
	order int
	text  string
	risk  int
	core  bool
}

func flagRank(f flagged) int {
	bonus := 0
	if f.core {
		bonus = 10
	}
	return bonus + f.risk
}

// scoreDomain aggregates one domain for one age band. An unanswered item
// contributes risk 0 whatever its polarity, so an incomplete questionnaire
// can only bias toward the low-risk end, never toward the high-risk end.
func scoreDomain(domain instrument.Domain, band instrument.AgeBand, answers Answers) DomainScore {
	selected := instrument.QuestionsFor(domain, band)

	sumRisk := 0
	var flags []flagged
	for i, q := range selected {
		risk := 0
		if raw, ok := answers[q.ID]; ok {
			risk = RiskValue(q.Polarity, raw)
		}
		sumRisk += risk
		if risk >= 1 {
			flags = append(flags, flagged{order: i, text: q.Text, risk: risk, core: q.CoreFlag})
		}
	}

	sort.SliceStable(flags, func(i, j int) bool {
		return flagRank(flags[i]) > flagRank(flags[j])
	})

	rawCap := 2 * len(selected)
	raw := clamp(sumRisk, 0, rawCap)
	normalized := 0.0
	if rawCap > 0 {
		normalized = float64(raw) / float64(rawCap)
	}

	top := make([]string, 0, 3)
	for _, f := range flags {
		if len(top) == 3 {
			break
		}
		top = append(top, f.text)
	}

	return DomainScore{
		Raw:        raw,
		Normalized: normalized,
		Weighted:   normalized * instrument.Weights[domain],
		Status:     statusFor(normalized),
		TopFlags:   top,
	}
}

// ComputeSummary is the single scoring entry point. It is a pure function of
// (question bank, age, answers) with no side effects.
func ComputeSummary(ageYears int, answers Answers, lang instrument.Lang) Summary {
	band := instrument.AgeBandFor(ageYears)
	applicable := instrument.ApplicableQuestions(band)

	answered := 0
	for _, q := range applicable {
		if _, ok := answers[q.ID]; ok {
			answered++
		}
	}

	domains := make(map[instrument.Domain]DomainScore, len(instrument.Domains()))
	composite := 0.0
	for _, d := range instrument.Domains() {
		score := scoreDomain(d, band, answers)
		domains[d] = score
		composite += score.Weighted
	}

	max := instrument.CompositeMax()
	label := riskLabelFor(composite, max)

	var highlights []string
	for _, rule := range instrument.HighlightRules {
		fired := true
		for _, d := range rule.When {
			if domains[d].Status != instrument.StatusHigh {
				fired = false
				break
			}
		}
		if fired {
			highlights = append(highlights, rule.Text[lang])
		}
	}

	return Summary{
		ChildAgeYears:    ageYears,
		AgeBand:          band,
		AnsweredCount:    answered,
		TotalApplicable:  len(applicable),
		Domains:          domains,
		CompositeIndex:   composite,
		CompositeMax:     max,
		CompositePercent: int(math.Round(composite / max * 100)),
		RiskLabel:        label,
		Urgency:          instrument.UrgencyFor(label),
		Highlights:       highlights,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
