package explain

import (
	"github.com/dkarimoff/childscreen/internal/evidence"
	"github.com/dkarimoff/childscreen/internal/instrument"
	"github.com/dkarimoff/childscreen/internal/scoring"
)

const (
	maxStrengths   = 5
	maxChallenges  = 5
	maxWhyItems    = 3
	nextStepsCount = 3
	minSpecialists = 2
	maxSpecialists = 5
	minHomeTips    = 3
	maxHomeTips    = 5
)

// Digest is the structured request sent to the explanation service: the
// locally computed classification plus capped evidence signals. The service
// summarizes; it never gets to invent scores.
type Digest struct {
	ChildAgeYears    int                                     `json:"child_age_years"`
	AgeBand          instrument.AgeBand                      `json:"age_band"`
	CompositeIndex   float64                                 `json:"composite_index"`
	CompositePercent int                                     `json:"composite_percent"`
	RiskLabel        instrument.RiskLabel                    `json:"risk_label"`
	Urgency          instrument.Urgency                      `json:"urgency"`
	DomainStatuses   map[instrument.Domain]instrument.Status `json:"domain_statuses"`
	Highlights       []string                                `json:"highlights,omitempty"`
	Lang             instrument.Lang                         `json:"lang"`
	Signals          *evidence.Signals                       `json:"signals,omitempty"`
}

// BuildDigest assembles the gateway request from one scoring pass.
func BuildDigest(summary scoring.Summary, signals *evidence.Signals, lang instrument.Lang) Digest {
	statuses := make(map[instrument.Domain]instrument.Status, len(summary.Domains))
	for d, score := range summary.Domains {
		statuses[d] = score.Status
	}
	return Digest{
		ChildAgeYears:    summary.ChildAgeYears,
		AgeBand:          summary.AgeBand,
		CompositeIndex:   summary.CompositeIndex,
		CompositePercent: summary.CompositePercent,
		RiskLabel:        summary.RiskLabel,
		Urgency:          summary.Urgency,
		DomainStatuses:   statuses,
		Highlights:       summary.Highlights,
		Lang:             lang,
		Signals:          signals,
	}
}

// Report is the normalized, override-applied explanation. Every field is
// populated in every outcome, including total failure of the service.
type Report struct {
	Summary       string   `json:"summary"`
	Strengths     []string `json:"strengths"`
	Challenges    []string `json:"challenges"`
	WhyHigherRisk []string `json:"why_supports_higher_risk"`
	WhyLowerRisk  []string `json:"why_supports_lower_risk"`
	NextSteps     []string `json:"next_steps"`
	Specialists   []string `json:"specialists"`
	HomeTips      []string `json:"home_tips,omitempty"`
	Urgency       string   `json:"urgency"`
	Disclaimer    string   `json:"disclaimer"`
}
