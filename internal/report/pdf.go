package report

import (
	"context"
	"encoding/base64"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromiumPDFRenderer prints the report HTML to PDF with a headless Chromium.
type ChromiumPDFRenderer struct {
	chromePath string
}

func NewChromiumPDFRenderer() *ChromiumPDFRenderer {
	return &ChromiumPDFRenderer{chromePath: detectChromePath()}
}

const pdfStyleCSS = `body{font-family:Georgia,serif;color:#1c1917;max-width:760px;margin:0 auto;padding:0.6rem;line-height:1.5;}
h1{font-size:1.5rem;border-bottom:2px solid #92400e;padding-bottom:0.3rem;}
h2{font-size:1.1rem;margin-top:1.4rem;color:#78350f;}
table{width:100%;border-collapse:collapse;font-size:0.85rem;}
th,td{border:1px solid #a8a29e;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;}
thead th{background:#f1f5f9;font-weight:700;}
em{color:#44403c;font-size:0.85rem;}
html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;}`

// Render converts the report markdown to a PDF document.
func (r *ChromiumPDFRenderer) Render(ctx context.Context, markdown string) ([]byte, error) {
	body, err := RenderHTML(markdown)
	if err != nil {
		return nil, err
	}
	htmlDoc := "<!doctype html><html><head><meta charset='utf-8'><title>Screening Report</title>" +
		"<style>" + pdfStyleCSS + "</style></head><body>" + body + "</body></html>"

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;">` +
				`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.5).
				WithMarginBottom(0.75).
				WithMarginLeft(0.45).
				WithMarginRight(0.45).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, err
	}
	return pdf, nil
}

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
