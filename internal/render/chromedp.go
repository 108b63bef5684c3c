package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/ledongthuc/pdf"
)

// Renderer produces PDF bytes for a resume document.
type Renderer interface {
	RenderPDF(ctx context.Context, doc Document) ([]byte, error)
}

// ChromeRenderer renders documents to PDF through headless Chrome.
type ChromeRenderer struct {
	execPath string
}

// NewChromeRenderer constructs a ChromeRenderer. execPath may be empty to
// use the default browser discovery.
func NewChromeRenderer(execPath string) *ChromeRenderer {
	return &ChromeRenderer{execPath: execPath}
}

// RenderPDF writes the resume page to a temp file, prints it to PDF on A4
// paper and verifies the result parses as a PDF before returning it.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, doc Document) ([]byte, error) {
	html, err := BuildHTML(doc)
	if err != nil {
		return nil, fmt.Errorf("build html: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, 60*time.Second)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("write html: %w", err)
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}

	if err := verifyPDF(pdfBuf); err != nil {
		return nil, fmt.Errorf("rendered output invalid: %w", err)
	}
	return pdfBuf, nil
}

func verifyPDF(b []byte) error {
	reader, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return err
	}
	if reader.NumPage() < 1 {
		return errors.New("pdf has no pages")
	}
	return nil
}
