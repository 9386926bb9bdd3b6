package rendering

import (
	"context"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/cv-dossier/internal/types"
)

// DefaultRenderTimeout bounds a single headless-Chrome print.
const DefaultRenderTimeout = 60 * time.Second

// A4 portrait paper size in inches.
const (
	a4WidthIn  = 8.27
	a4HeightIn = 11.69
)

// 16:9 slide size in inches, the usual presentation aspect.
const (
	slideWidthIn  = 13.333
	slideHeightIn = 7.5
)

// PDF renders a dossier to an A4 portrait PDF document.
// Requires Chrome/Chromium to be installed on the system.
func PDF(ctx context.Context, d *types.Dossier) ([]byte, error) {
	html, err := DocumentHTML(d)
	if err != nil {
		return nil, err
	}
	return printToPDF(ctx, html, a4WidthIn, a4HeightIn)
}

// Deck renders a dossier to a paginated 16:9 slide deck, one section per
// page, delivered as PDF.
func Deck(ctx context.Context, d *types.Dossier) ([]byte, error) {
	html, err := DeckHTML(d)
	if err != nil {
		return nil, err
	}
	return printToPDF(ctx, html, slideWidthIn, slideHeightIn)
}

// printToPDF loads the HTML in a headless browser and prints it at the
// given paper size.
func printToPDF(ctx context.Context, html string, widthIn, heightIn float64) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	if _, hasDeadline := browserCtx.Deadline(); !hasDeadline {
		browserCtx, cancel = context.WithTimeout(browserCtx, DefaultRenderTimeout)
		defer cancel()
	}

	dataURL := "data:text/html;charset=utf-8," + url.PathEscape(html)

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(widthIn).
				WithPaperHeight(heightIn).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, &RenderError{
			Message: "headless browser print failed",
			Cause:   err,
		}
	}

	return pdf, nil
}
