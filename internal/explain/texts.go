package explain

import "github.com/dkarimoff/childscreen/internal/instrument"

type textKey int

const (
	notConfiguredText textKey = iota
	unavailableText
	unavailableWithCodeText
	badJSONText
	disclaimerText
	lowSummaryText
	areasSuffixText
)

var texts = map[textKey]map[instrument.Lang]string{
	notConfiguredText: {
		instrument.LangEN: "The detailed explanation service is not configured; the standard guidance below still applies.",
		instrument.LangRU: "Сервис подробных пояснений не настроен; приведённые ниже стандартные рекомендации остаются в силе.",
	},
	unavailableText: {
		instrument.LangEN: "The detailed explanation is temporarily unavailable; the standard guidance below still applies.",
		instrument.LangRU: "Подробное пояснение временно недоступно; приведённые ниже стандартные рекомендации остаются в силе.",
	},
	unavailableWithCodeText: {
		instrument.LangEN: "The detailed explanation is temporarily unavailable (status %s); the standard guidance below still applies.",
		instrument.LangRU: "Подробное пояснение временно недоступно (статус %s); приведённые ниже стандартные рекомендации остаются в силе.",
	},
	badJSONText: {
		instrument.LangEN: "The detailed explanation could not be prepared this time; the standard guidance below still applies.",
		instrument.LangRU: "Подробное пояснение не удалось подготовить; приведённые ниже стандартные рекомендации остаются в силе.",
	},
	disclaimerText: {
		instrument.LangEN: instrument.Disclaimer,
		instrument.LangRU: "Важно: этот скрининг не является диагнозом. Только квалифицированный специалист может оценить развитие ребёнка.",
	},
	lowSummaryText: {
		instrument.LangEN: "For age %d, the answers are close to the expected range. %s",
		instrument.LangRU: "Для возраста %d лет ответы близки к ожидаемому диапазону. %s",
	},
	areasSuffixText: {
		instrument.LangEN: "Areas needing attention: %s.",
		instrument.LangRU: "Области, требующие внимания: %s.",
	},
}

type listKey int

const (
	defaultNextSteps listKey = iota
	defaultSpecialists
	defaultHomeTips
)

var lists = map[listKey]map[instrument.Lang][]string{
	defaultNextSteps: {
		instrument.LangEN: {
			"Within 48 hours: note down concrete examples of the behaviors you answered about.",
			"Within 1-2 weeks: discuss the results with your pediatrician at a routine visit.",
			"Within 1-3 months: repeat the screening and compare the answers.",
		},
		instrument.LangRU: {
			"В течение 48 часов: запишите конкретные примеры поведения, о котором шли вопросы.",
			"В течение 1-2 недель: обсудите результаты с педиатром на плановом приёме.",
			"В течение 1-3 месяцев: пройдите скрининг повторно и сравните ответы.",
		},
	},
	defaultSpecialists: {
		instrument.LangEN: {
			"Pediatrician",
			"Child neurologist",
			"Speech and language therapist",
			"Child psychologist",
		},
		instrument.LangRU: {
			"Педиатр",
			"Детский невролог",
			"Логопед-дефектолог",
			"Детский психолог",
		},
	},
	defaultHomeTips: {
		instrument.LangEN: {
			"Play face-to-face games and wait for your child's response before continuing.",
			"Narrate everyday routines in short, simple sentences.",
			"Follow your child's interests and join their play rather than directing it.",
		},
		instrument.LangRU: {
			"Играйте лицом к лицу и дожидайтесь ответной реакции ребёнка, прежде чем продолжать.",
			"Проговаривайте повседневные действия короткими простыми фразами.",
			"Следуйте за интересами ребёнка и присоединяйтесь к его игре, а не руководите ею.",
		},
	},
}

func text(lang instrument.Lang, key textKey) string {
	if s, ok := texts[key][lang]; ok {
		return s
	}
	return texts[key][instrument.LangEN]
}

func list(lang instrument.Lang, key listKey) []string {
	if l, ok := lists[key][lang]; ok {
		return l
	}
	return lists[key][instrument.LangEN]
}
