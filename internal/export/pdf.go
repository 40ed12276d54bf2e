// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export converts rendered proposal pages to PDF files that
// sales can attach to email. Rendering goes through headless Chromium
// so the PDF matches exactly what the client sees in the browser.
package export

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ErrChromiumMissing means no Chromium binary was found on PATH; PDF
// export is unavailable but the rest of the application keeps working.
var ErrChromiumMissing = errors.New("export: chromium not installed")

// Orientation selects the PDF page layout.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Result is a finished PDF ready to stream to the client.
type Result struct {
	Data     []byte
	Filename string
	MimeType string
}

// Available reports whether a Chromium binary is on PATH.
func Available() bool {
	if _, err := exec.LookPath("chromium-browser"); err == nil {
		return true
	}
	_, err := exec.LookPath("chromium")
	return err == nil
}

// FromHTML converts a rendered proposal page to PDF using headless
// Chromium. name becomes the download filename.
func FromHTML(ctx context.Context, html []byte, name string, orient Orientation) (*Result, error) {
	if !Available() {
		return nil, ErrChromiumMissing
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Headless flags suitable for running inside a container.
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	// A4 in inches.
	width, height := 8.27, 11.69
	if orient == Landscape {
		width, height = height, width
	}

	dataURL := "data:text/html;charset=utf-8," + percentEncodeForDataURL(string(html))

	var pdfData []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfData, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(false).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("export: pdf generation: %w", err)
	}

	return &Result{
		Data:     pdfData,
		Filename: sanitizeFilename(name) + ".pdf",
		MimeType: "application/pdf",
	}, nil
}

// percentEncodeForDataURL encodes HTML for embedding in a data URL.
// url.QueryEscape is unsuitable: it encodes spaces as "+", which a data
// URL interprets literally.
func percentEncodeForDataURL(s string) string {
	var result strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '-', r == '_', r == '.', r == '~':
			result.WriteRune(r)
		case r == ' ':
			result.WriteString("%20")
		default:
			for _, b := range []byte(string(r)) {
				fmt.Fprintf(&result, "%%%02X", b)
			}
		}
	}
	return result.String()
}

// sanitizeFilename reduces a proposal slug or title to a safe filename.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		case r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > 50 {
		out = out[:50]
	}
	if out == "" {
		out = "proposal"
	}
	return out
}
