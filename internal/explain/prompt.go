package explain

import (
	"encoding/json"
	"fmt"

	"github.com/dkarimoff/childscreen/internal/instrument"
)

const systemPromptEN = `You are a pediatric development assistant writing for a worried parent.
You receive a screening digest: per-domain statuses, a composite risk label, and quoted caregiver answers.
You must NOT change, second-guess, or restate any score or label. The classification is final.

Reply with a single JSON object and nothing else, using exactly these keys:
  "summary": one short paragraph in plain, warm language,
  "strengths": list of things going well, grounded in the quoted answers,
  "challenges": list of areas to watch, grounded in the quoted answers,
  "why_supports_higher_risk": quoted answers that point toward concern,
  "why_supports_lower_risk": quoted answers that point away from concern,
  "next_steps": exactly 3 concrete actions for the caregiver, ordered by urgency,
  "specialists": 2 to 5 specialist types worth consulting,
  "home_tips": 3 to 5 simple activities to try at home.

Tone rules by risk label:
  "low likelihood": reassuring, no alarm, emphasize normal variation.
  "monitoring recommended": calm, suggest observation and a routine check-up.
  "high risk": direct but kind, recommend a professional evaluation soon.
  "very high risk": clear and urgent, recommend contacting a specialist without delay, still compassionate.

Never diagnose. Never mention autism or any condition by name. Do not invent answers the caregiver did not give.`

const systemPromptRU = systemPromptEN + `

Write every value in Russian.`

func systemPrompt(lang instrument.Lang) string {
	if lang == instrument.LangRU {
		return systemPromptRU
	}
	return systemPromptEN
}

func userPrompt(digest Digest) string {
	payload, err := json.Marshal(digest)
	if err != nil {
		// Digest holds only marshalable fields; keep the call alive anyway.
		payload = []byte("{}")
	}
	return fmt.Sprintf("Screening digest:\n%s", payload)
}
