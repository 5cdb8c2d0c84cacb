package instrument

// Package instrument holds the versioned screening instrument configuration:
// the question bank, domain weights, classification thresholds, highlight
// rules, and per-language display labels. Scoring logic lives in
// internal/scoring; everything here is immutable data loaded at process start.

const Disclaimer = "Note: this screening is not a diagnosis. A diagnosis can " +
	"only be made by a qualified specialist through an in-person evaluation."

type Domain string

const (
	DomainSocial     Domain = "social"
	DomainSpeech     Domain = "speech"
	DomainRepetitive Domain = "repetitive"
	DomainSensory    Domain = "sensory"
	DomainPlay       Domain = "play"
)

// Domains returns the fixed domain set in instrument order. The order is
// load-bearing: flag ranking uses stable sorts over bank order, and reports
// render domains in this sequence.
func Domains() []Domain {
	return []Domain{DomainSocial, DomainSpeech, DomainRepetitive, DomainSensory, DomainPlay}
}

type AgeBand string

const (
	Band2to3 AgeBand = "2-3"
	Band4to5 AgeBand = "4-5"
	Band6to7 AgeBand = "6-7"
)

// AgeBandFor maps an age in years onto the band whose items are scored.
func AgeBandFor(ageYears int) AgeBand {
	switch {
	case ageYears <= 3:
		return Band2to3
	case ageYears <= 5:
		return Band4to5
	default:
		return Band6to7
	}
}

type Polarity string

const (
	// PolarityPositive marks skill items: a higher raw answer means lower risk.
	PolarityPositive Polarity = "positive"
	// PolarityNegative marks concern items: a higher raw answer means higher risk.
	PolarityNegative Polarity = "negative"
)

// Question is one immutable catalog entry. Display copy (Text, Example,
// Explain) is opaque to scoring.
type Question struct {
	ID       string
	Domain   Domain
	Polarity Polarity
	Bands    []AgeBand
	CoreFlag bool
	Text     string
	Example  string
	Explain  string
}

func (q Question) InBand(band AgeBand) bool {
	for _, b := range q.Bands {
		if b == band {
			return true
		}
	}
	return false
}

// Weights carries the per-domain diagnostic salience used by the composite
// index. CompositeMax is their sum; risk-label thresholds are expressed as
// fractions of it so the weight table can change without breaking the tiers.
var Weights = map[Domain]float64{
	DomainSocial:     2.0,
	DomainSpeech:     1.7,
	DomainRepetitive: 1.4,
	DomainSensory:    1.2,
	DomainPlay:       1.3,
}

func CompositeMax() float64 {
	total := 0.0
	for _, d := range Domains() {
		total += Weights[d]
	}
	return total
}

// Domain status thresholds over the normalized [0,1] score.
const (
	StatusModerateThreshold = 0.30
	StatusHighThreshold     = 0.60
)

// Risk-label thresholds as fractions of CompositeMax. With the reference
// weight table (max 7.6) these land at 1.976, 3.496, 5.016.
const (
	RiskLowFraction        = 0.26
	RiskMonitoringFraction = 0.46
	RiskHighFraction       = 0.66
)

type Status string

const (
	StatusNormal   Status = "Normal"
	StatusModerate Status = "Moderate"
	StatusHigh     Status = "High"
)

type RiskLabel string

const (
	RiskLow        RiskLabel = "low likelihood"
	RiskMonitoring RiskLabel = "monitoring recommended"
	RiskHigh       RiskLabel = "high risk"
	RiskVeryHigh   RiskLabel = "very high risk — seek specialist"
)

type Urgency string

const (
	UrgencyGeneral    Urgency = "general guidance"
	UrgencyConsult    Urgency = "consult a specialist"
	UrgencyEvaluation Urgency = "seek evaluation soon"
)

func UrgencyFor(label RiskLabel) Urgency {
	switch label {
	case RiskLow:
		return UrgencyGeneral
	case RiskMonitoring:
		return UrgencyConsult
	default:
		return UrgencyEvaluation
	}
}

// HighlightRule fires when every listed domain has reached StatusHigh.
// The rule set is fixed instrument content, evaluated in order.
type HighlightRule struct {
	When []Domain
	Text map[Lang]string
}

var HighlightRules = []HighlightRule{
	{
		When: []Domain{DomainSocial},
		Text: map[Lang]string{
			LangEN: "Difficulties in social communication",
			LangRU: "Трудности в сфере социального общения",
		},
	},
	{
		When: []Domain{DomainSocial, DomainPlay},
		Text: map[Lang]string{
			LangEN: "Difficulties in both social interaction and imaginative play",
			LangRU: "Трудности в социальной сфере и воображаемой игре",
		},
	},
	{
		When: []Domain{DomainSpeech, DomainSocial},
		Text: map[Lang]string{
			LangEN: "Speech and social communication are affected together",
			LangRU: "Речь и социальное общение затронуты одновременно",
		},
	},
}

// QuestionsFor selects the bank items scored for one domain in one band,
// preserving bank order.
func QuestionsFor(domain Domain, band AgeBand) []Question {
	var out []Question
	for _, q := range Questions {
		if q.Domain == domain && q.InBand(band) {
			out = append(out, q)
		}
	}
	return out
}

// ApplicableQuestions selects every bank item scored for one band, across
// all domains, preserving bank order.
func ApplicableQuestions(band AgeBand) []Question {
	var out []Question
	for _, q := range Questions {
		if q.InBand(band) {
			out = append(out, q)
		}
	}
	return out
}

func QuestionByID(id string) (Question, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
