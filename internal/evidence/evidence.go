package evidence

// Package evidence derives the human-readable "why" material behind a
// summary: concerning items and strength items, rendered per language. One
// ranking algorithm serves both consumers — the capped signal payload sent to
// the explanation service and the uncapped parent conclusion shown locally —
// so the two can never diverge. Nothing here feeds back into scoring.

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dkarimoff/childscreen/internal/instrument"
	"github.com/dkarimoff/childscreen/internal/scoring"
)

const (
	signalRiskCapPerDomain = 3
	signalStrengthCap      = 5
	conclusionCapPerDomain = 2
)

// Item is one answered question with its derived risk standing.
type Item struct {
	QuestionID string
	Domain     instrument.Domain
	Text       string
	Answer     string
	Risk       int
	Core       bool
	Strength   bool
	order      int
}

// Render formats an item the way both the gateway payload and the local
// report present it: "{question}. {answer label} (parent answer)".
func (it Item) Render() string {
	return fmt.Sprintf("%s. %s", it.Text, it.Answer)
}

// QA is one applicable question with its (possibly defaulted) answer,
// included verbatim in the gateway digest.
type QA struct {
	ID          string            `json:"id"`
	Domain      instrument.Domain `json:"domain"`
	Question    string            `json:"question"`
	AnswerValue int               `json:"answer_value"`
	AnswerLabel string            `json:"answer_label"`
}

// Signals is the capped evidence payload for the explanation service.
type Signals struct {
	RiskItemsByDomain map[instrument.Domain][]string `json:"risk_items_by_domain"`
	StrengthItems     []string                       `json:"strength_items"`
	QA                []QA                           `json:"qa"`
}

// Conclusion is the locally displayed derivation from the parent's answers.
type Conclusion struct {
	SummaryText string   `json:"summary_text"`
	Strengths   []string `json:"strengths"`
	Concerns    []string `json:"concerns"`
}

func answerSuffix(lang instrument.Lang) string {
	if lang == instrument.LangRU {
		return "Ответ теста"
	}
	return "Parent answer"
}

// items derives every answered item for the band, in bank order. Unanswered
// questions are skipped: evidence only cites what the parent actually
// reported.
func items(band instrument.AgeBand, answers scoring.Answers, lang instrument.Lang) []Item {
	var out []Item
	for i, q := range instrument.ApplicableQuestions(band) {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		risk := scoring.RiskValue(q.Polarity, v)
		strength := (q.Polarity == instrument.PolarityPositive && v == 2) ||
			(q.Polarity == instrument.PolarityNegative && v == 0)
		out = append(out, Item{
			QuestionID: q.ID,
			Domain:     q.Domain,
			Text:       cleanText(q.Text),
			Answer:     fmt.Sprintf("%s (%s)", instrument.AnswerLabelFor(lang, v), answerSuffix(lang)),
			Risk:       risk,
			Core:       q.CoreFlag,
			Strength:   strength,
			order:      i,
		})
	}
	return out
}

func rank(it Item) int {
	bonus := 0
	if it.Core {
		bonus = 10
	}
	return bonus + it.Risk
}

// rankRisk orders concerning items by core-flag bonus plus risk value,
// descending, stable on bank order. This is the single ranking primitive
// shared by signal capping and the parent conclusion.
func rankRisk(in []Item) []Item {
	out := append([]Item(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return rank(out[i]) > rank(out[j]) })
	return out
}

func rankStrength(in []Item) []Item {
	out := append([]Item(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		bi, bj := 0, 0
		if out[i].Core {
			bi = 10
		}
		if out[j].Core {
			bj = 10
		}
		return bi > bj
	})
	return out
}

func riskItems(all []Item, domain instrument.Domain) []Item {
	var out []Item
	for _, it := range all {
		if it.Domain == domain && it.Risk >= 1 {
			out = append(out, it)
		}
	}
	return rankRisk(out)
}

func strengthItems(all []Item, domain instrument.Domain) []Item {
	var out []Item
	for _, it := range all {
		if (domain == "" || it.Domain == domain) && it.Strength {
			out = append(out, it)
		}
	}
	return rankStrength(out)
}

// BuildSignals produces the capped evidence payload for the gateway digest:
// up to 3 concerning items per domain and up to 5 strengths overall.
func BuildSignals(summary scoring.Summary, answers scoring.Answers, lang instrument.Lang) Signals {
	all := items(summary.AgeBand, answers, lang)

	byDomain := make(map[instrument.Domain][]string, len(instrument.Domains()))
	for _, d := range instrument.Domains() {
		rendered := []string{}
		for _, it := range riskItems(all, d) {
			if len(rendered) == signalRiskCapPerDomain {
				break
			}
			rendered = append(rendered, it.Render())
		}
		byDomain[d] = rendered
	}

	strengths := []string{}
	for _, it := range strengthItems(all, "") {
		if len(strengths) == signalStrengthCap {
			break
		}
		strengths = append(strengths, it.Render())
	}

	var qa []QA
	for _, q := range instrument.ApplicableQuestions(summary.AgeBand) {
		v := answers[q.ID]
		qa = append(qa, QA{
			ID:          q.ID,
			Domain:      q.Domain,
			Question:    cleanText(q.Text),
			AnswerValue: v,
			AnswerLabel: instrument.AnswerLabelFor(lang, v),
		})
	}

	return Signals{RiskItemsByDomain: byDomain, StrengthItems: strengths, QA: qa}
}

// BuildConclusion produces the locally displayed derivation: per-domain
// strengths for Normal domains and concern lines for the rest, plus a fixed
// top-line sentence per risk label. It never alters the computed summary.
func BuildConclusion(summary scoring.Summary, answers scoring.Answers, lang instrument.Lang) Conclusion {
	if answers == nil {
		return Conclusion{SummaryText: noAnswersText(lang)}
	}

	all := items(summary.AgeBand, answers, lang)

	var strengths, concerns []string
	for _, d := range instrument.Domains() {
		score := summary.Domains[d]
		label := instrument.DomainShort(lang, d)

		if score.Status == instrument.StatusNormal {
			top := strengthItems(all, d)
			if len(top) > conclusionCapPerDomain {
				top = top[:conclusionCapPerDomain]
			}
			if len(top) == 0 {
				strengths = append(strengths, noRiskNote(lang, label))
				continue
			}
			for _, it := range top {
				strengths = append(strengths, it.Render())
			}
			continue
		}

		top := riskItems(all, d)
		if len(top) > conclusionCapPerDomain {
			top = top[:conclusionCapPerDomain]
		}
		rendered := make([]string, 0, len(top))
		for _, it := range top {
			rendered = append(rendered, it.Render())
		}
		concerns = append(concerns, concernLine(lang, label, instrument.StatusLabelFor(lang, score.Status), rendered))
	}

	if len(strengths) == 0 {
		strengths = append(strengths, noStrengthsText(lang))
	}
	if len(concerns) == 0 {
		concerns = append(concerns, noConcernsText(lang))
	}

	return Conclusion{
		SummaryText: SummarySentence(summary.RiskLabel, lang),
		Strengths:   strengths,
		Concerns:    concerns,
	}
}

// SummarySentence is the fixed top-line sentence per risk label, shared with
// the gateway's strict-summary override.
func SummarySentence(label instrument.RiskLabel, lang instrument.Lang) string {
	ru := lang == instrument.LangRU
	switch label {
	case instrument.RiskLow:
		if ru {
			return "Результаты близки к возрастной норме. Риск низкий, но наблюдение полезно."
		}
		return "Results are close to the age norm. Risk is low, but continued observation is useful."
	case instrument.RiskMonitoring:
		if ru {
			return "Есть отдельные области, где требуется внимание. Это не диагноз, но наблюдение и поддержка важны."
		}
		return "Some areas need attention. This is not a diagnosis, but monitoring and support matter."
	case instrument.RiskHigh:
		if ru {
			return "Есть выраженные признаки, требующие оценки специалиста. Это не диагноз."
		}
		return "There are notable signs that call for a specialist's assessment. This is not a diagnosis."
	default:
		if ru {
			return "Риск очень высокий — нужна очная оценка специалиста. Это не диагноз."
		}
		return "Risk is very high — an in-person specialist evaluation is needed. This is not a diagnosis."
	}
}

func concernLine(lang instrument.Lang, domainLabel, statusLabel string, observed []string) string {
	if lang == instrument.LangRU {
		if len(observed) == 0 {
			return fmt.Sprintf("%s: %s. Наблюдаемые признаки не указаны.", domainLabel, statusLabel)
		}
		return fmt.Sprintf("%s: %s. Наблюдаемые признаки: %s.", domainLabel, statusLabel, strings.Join(observed, "; "))
	}
	if len(observed) == 0 {
		return fmt.Sprintf("%s: %s. No observed signs were reported.", domainLabel, statusLabel)
	}
	return fmt.Sprintf("%s: %s. Observed signs: %s.", domainLabel, statusLabel, strings.Join(observed, "; "))
}

func noRiskNote(lang instrument.Lang, domainLabel string) string {
	if lang == instrument.LangRU {
		return fmt.Sprintf("%s: выраженных рисков не отмечено.", domainLabel)
	}
	return fmt.Sprintf("%s: no notable risks observed.", domainLabel)
}

func noStrengthsText(lang instrument.Lang) string {
	if lang == instrument.LangRU {
		return "Выраженных сильных сторон по ответам не выделено."
	}
	return "No distinct strengths stood out from the answers."
}

func noConcernsText(lang instrument.Lang) string {
	if lang == instrument.LangRU {
		return "Явных зон риска не выявлено."
	}
	return "No clear areas of risk were identified."
}

func noAnswersText(lang instrument.Lang) string {
	if lang == instrument.LangRU {
		return "Данные ответов не найдены. Пожалуйста, пройдите тест заново."
	}
	return "No answer data found. Please retake the questionnaire."
}

func cleanText(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ". ")
}
