// Package report renders a screening result as a printable document.
package report

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dkarimoff/childscreen/internal/explain"
	"github.com/dkarimoff/childscreen/internal/instrument"
	"github.com/dkarimoff/childscreen/internal/scoring"
)

const idAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewReportID returns an identifier like SCR-20260901-K7M2QX. The suffix
// alphabet omits easily confused characters.
func NewReportID(now time.Time) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is close to unrecoverable; fall back to the
		// clock so the report still gets an identifier.
		return fmt.Sprintf("SCR-%s-%06d", now.Format("20060102"), now.UnixNano()%1000000)
	}
	suffix := make([]byte, len(buf))
	for i, b := range buf {
		suffix[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return fmt.Sprintf("SCR-%s-%s", now.Format("20060102"), suffix)
}

// BuildMarkdown lays out the full caregiver report: identification, the
// per-domain table, the explanation sections, and the disclaimer.
func BuildMarkdown(reportID string, summary scoring.Summary, rep explain.Report, lang instrument.Lang, now time.Time) string {
	var b strings.Builder

	b.WriteString("# " + t(lang, "Developmental Screening Report", "Отчёт о скрининге развития") + "\n\n")
	b.WriteString(fmt.Sprintf("**%s:** %s  \n", t(lang, "Report ID", "Номер отчёта"), reportID))
	b.WriteString(fmt.Sprintf("**%s:** %s  \n", t(lang, "Date", "Дата"), now.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("**%s:** %d (%s)  \n", t(lang, "Child age", "Возраст ребёнка"), summary.ChildAgeYears, summary.AgeBand))
	b.WriteString(fmt.Sprintf("**%s:** %d/%d\n\n", t(lang, "Questions answered", "Отвечено вопросов"), summary.AnsweredCount, summary.TotalApplicable))

	b.WriteString("## " + t(lang, "Result", "Результат") + "\n\n")
	b.WriteString(rep.Summary + "\n\n")
	b.WriteString(fmt.Sprintf("**%s:** %s (%d%%)\n\n",
		t(lang, "Overall level", "Общий уровень"), summary.RiskLabel, summary.CompositePercent))

	b.WriteString("## " + t(lang, "Domains", "Сферы развития") + "\n\n")
	b.WriteString("| " + t(lang, "Domain", "Сфера") + " | " + t(lang, "Score", "Балл") + " | " + t(lang, "Status", "Статус") + " |\n")
	b.WriteString("|---|---|---|\n")
	for _, d := range instrument.Domains() {
		score := summary.Domains[d]
		b.WriteString(fmt.Sprintf("| %s | %.2f | %s |\n",
			instrument.DomainTitle(lang, d), score.Normalized, instrument.StatusLabelFor(lang, score.Status)))
	}
	b.WriteString("\n")

	writeListSection(&b, t(lang, "Strengths", "Сильные стороны"), rep.Strengths)
	writeListSection(&b, t(lang, "Areas to watch", "На что обратить внимание"), rep.Challenges)
	writeListSection(&b, t(lang, "Next steps", "Дальнейшие шаги"), rep.NextSteps)
	writeListSection(&b, t(lang, "Specialists", "Специалисты"), rep.Specialists)
	writeListSection(&b, t(lang, "At home", "Дома"), rep.HomeTips)

	b.WriteString("---\n\n*" + rep.Disclaimer + "*\n")
	return b.String()
}

func writeListSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("## " + title + "\n\n")
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	b.WriteString("\n")
}

func t(lang instrument.Lang, en, ru string) string {
	if lang == instrument.LangRU {
		return ru
	}
	return en
}

// RenderHTML converts the report markdown into a standalone HTML fragment.
func RenderHTML(markdown string) (string, error) {
	var out strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &out); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return out.String(), nil
}
