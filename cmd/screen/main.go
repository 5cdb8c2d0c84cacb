package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dkarimoff/childscreen/internal/evidence"
	"github.com/dkarimoff/childscreen/internal/explain"
	"github.com/dkarimoff/childscreen/internal/instrument"
	"github.com/dkarimoff/childscreen/internal/report"
	"github.com/dkarimoff/childscreen/internal/scoring"
)

// screen scores an answer file offline and optionally renders the result as
// markdown or PDF. The answer file is a JSON object of question ID to 0..2.
func main() {
	age := flag.Int("age", 0, "Child age in years (2-7)")
	answersPath := flag.String("answers", "", "Path to answers JSON file")
	langFlag := flag.String("lang", "en", "Report language (en or ru)")
	mdPath := flag.String("out", "", "Write report markdown to this path")
	pdfPath := flag.String("pdf", "", "Render report PDF to this path (needs Chromium)")
	flag.Parse()

	if *age <= 0 {
		log.Fatal("-age is required")
	}
	if *answersPath == "" {
		log.Fatal("-answers is required")
	}
	blob, err := os.ReadFile(*answersPath)
	if err != nil {
		log.Fatal(err)
	}
	var answers scoring.Answers
	if err := json.Unmarshal(blob, &answers); err != nil {
		log.Fatalf("parse answers: %v", err)
	}

	lang := instrument.ParseLang(*langFlag)
	summary := scoring.ComputeSummary(*age, answers, lang)
	signals := evidence.BuildSignals(summary, answers, lang)
	digest := explain.BuildDigest(summary, &signals, lang)

	ctx := context.Background()
	gateway := explain.NewGateway(explain.NewAnthropicCallerFromEnv())
	rep := gateway.Generate(ctx, digest)

	out, err := json.MarshalIndent(map[string]any{"summary": summary, "report": rep}, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))

	if *mdPath == "" && *pdfPath == "" {
		return
	}

	now := time.Now()
	markdown := report.BuildMarkdown(report.NewReportID(now), summary, rep, lang, now)
	if *mdPath != "" {
		if err := os.WriteFile(*mdPath, []byte(markdown), 0o644); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *mdPath)
	}
	if *pdfPath != "" {
		pdf, err := report.NewChromiumPDFRenderer().Render(ctx, markdown)
		if err != nil {
			log.Fatalf("render pdf: %v", err)
		}
		if err := os.WriteFile(*pdfPath, pdf, 0o644); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *pdfPath)
	}
}
