package instrument

import "strings"

type Lang string

const (
	LangEN Lang = "en"
	LangRU Lang = "ru"
)

// ParseLang normalizes a language tag, defaulting to English.
func ParseLang(tag string) Lang {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "ru":
		return LangRU
	default:
		return LangEN
	}
}

var domainTitles = map[Lang]map[Domain]string{
	LangEN: {
		DomainSocial:     "Social interaction",
		DomainSpeech:     "Speech and communication",
		DomainRepetitive: "Repetitive behavior",
		DomainSensory:    "Sensory sensitivity",
		DomainPlay:       "Play and imagination",
	},
	LangRU: {
		DomainSocial:     "Социальное взаимодействие",
		DomainSpeech:     "Речь и коммуникация",
		DomainRepetitive: "Повторяющееся поведение",
		DomainSensory:    "Сенсорная чувствительность",
		DomainPlay:       "Игра и воображение",
	},
}

// Short domain names used inline in conclusion sentences.
var domainShort = map[Lang]map[Domain]string{
	LangEN: {
		DomainSocial:     "Social",
		DomainSpeech:     "Speech",
		DomainRepetitive: "Repetitive",
		DomainSensory:    "Sensory",
		DomainPlay:       "Play",
	},
	LangRU: {
		DomainSocial:     "Социальные",
		DomainSpeech:     "Речь",
		DomainRepetitive: "Повторяющиеся",
		DomainSensory:    "Сенсорные",
		DomainPlay:       "Игра",
	},
}

var statusLabels = map[Lang]map[Status]string{
	LangEN: {
		StatusNormal:   "Normal",
		StatusModerate: "Moderate risk",
		StatusHigh:     "High risk",
	},
	LangRU: {
		StatusNormal:   "Норма",
		StatusModerate: "Средний риск",
		StatusHigh:     "Высокий риск",
	},
}

var answerLabels = map[Lang]map[int]string{
	LangEN: {
		0: "No / rarely",
		1: "Sometimes",
		2: "Yes / often",
	},
	LangRU: {
		0: "Нет / редко",
		1: "Иногда",
		2: "Да / часто",
	},
}

func DomainTitle(lang Lang, d Domain) string {
	if s, ok := domainTitles[lang][d]; ok {
		return s
	}
	return string(d)
}

func DomainShort(lang Lang, d Domain) string {
	if s, ok := domainShort[lang][d]; ok {
		return s
	}
	return string(d)
}

func StatusLabelFor(lang Lang, s Status) string {
	if v, ok := statusLabels[lang][s]; ok {
		return v
	}
	return string(s)
}

// AnswerLabelFor renders a raw {0,1,2} answer as display text. Values outside
// the scale are a programming error upstream; they fall back to the low label.
func AnswerLabelFor(lang Lang, v int) string {
	if s, ok := answerLabels[lang][v]; ok {
		return s
	}
	return answerLabels[lang][0]
}
