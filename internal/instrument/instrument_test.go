package instrument

import (
	"math"
	"testing"
)

func TestAgeBandFor(t *testing.T) {
	cases := []struct {
		age  int
		want AgeBand
	}{
		{2, Band2to3},
		{3, Band2to3},
		{4, Band4to5},
		{5, Band4to5},
		{6, Band6to7},
		{7, Band6to7},
	}
	for _, tc := range cases {
		if got := AgeBandFor(tc.age); got != tc.want {
			t.Errorf("AgeBandFor(%d) = %s, want %s", tc.age, got, tc.want)
		}
	}
}

func TestQuestionBankShape(t *testing.T) {
	if len(Questions) != 50 {
		t.Fatalf("bank has %d questions, want 50", len(Questions))
	}

	seen := map[string]bool{}
	perDomain := map[Domain]int{}
	var coreIDs []string
	for _, q := range Questions {
		if seen[q.ID] {
			t.Errorf("duplicate question ID %s", q.ID)
		}
		seen[q.ID] = true
		perDomain[q.Domain]++
		if q.CoreFlag {
			coreIDs = append(coreIDs, q.ID)
		}
		if q.Text == "" {
			t.Errorf("question %s has empty text", q.ID)
		}
		for _, band := range []AgeBand{Band2to3, Band4to5, Band6to7} {
			if !q.InBand(band) {
				t.Errorf("question %s missing band %s", q.ID, band)
			}
		}
	}

	for _, d := range Domains() {
		if perDomain[d] != 10 {
			t.Errorf("domain %s has %d questions, want 10", d, perDomain[d])
		}
	}

	wantCore := []string{"S1", "S2", "S3", "R1"}
	if len(coreIDs) != len(wantCore) {
		t.Fatalf("core flags = %v, want %v", coreIDs, wantCore)
	}
	for i, id := range wantCore {
		if coreIDs[i] != id {
			t.Errorf("core flag %d = %s, want %s", i, coreIDs[i], id)
		}
	}
}

func TestCompositeMax(t *testing.T) {
	if got := CompositeMax(); math.Abs(got-7.6) > 1e-9 {
		t.Fatalf("CompositeMax() = %v, want 7.6", got)
	}
}

func TestQuestionsForFiltersDomain(t *testing.T) {
	for _, d := range Domains() {
		qs := QuestionsFor(d, Band4to5)
		if len(qs) != 10 {
			t.Fatalf("QuestionsFor(%s) returned %d items", d, len(qs))
		}
		for _, q := range qs {
			if q.Domain != d {
				t.Errorf("QuestionsFor(%s) returned %s from %s", d, q.ID, q.Domain)
			}
		}
	}
}

func TestUrgencyFor(t *testing.T) {
	cases := map[RiskLabel]Urgency{
		RiskLow:        UrgencyGeneral,
		RiskMonitoring: UrgencyConsult,
		RiskHigh:       UrgencyEvaluation,
		RiskVeryHigh:   UrgencyEvaluation,
	}
	for label, want := range cases {
		if got := UrgencyFor(label); got != want {
			t.Errorf("UrgencyFor(%s) = %s, want %s", label, got, want)
		}
	}
}

func TestParseLang(t *testing.T) {
	if ParseLang(" RU ") != LangRU {
		t.Error("ParseLang should trim and lowercase")
	}
	if ParseLang("de") != LangEN {
		t.Error("unknown tags should default to English")
	}
	if ParseLang("") != LangEN {
		t.Error("empty tag should default to English")
	}
}

func TestAnswerLabelFor(t *testing.T) {
	if got := AnswerLabelFor(LangEN, 2); got != "Yes / often" {
		t.Errorf("AnswerLabelFor(en, 2) = %q", got)
	}
	if got := AnswerLabelFor(LangRU, 0); got != "Нет / редко" {
		t.Errorf("AnswerLabelFor(ru, 0) = %q", got)
	}
	if got := AnswerLabelFor(LangEN, 9); got != AnswerLabelFor(LangEN, 0) {
		t.Errorf("out-of-scale answers should use the low label, got %q", got)
	}
}
