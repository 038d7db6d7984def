// Package navigate carries out the navigation produced by a subject selection.
package navigate

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/browser"
	"github.com/rs/zerolog"

	"github.com/jask/coursedeck/internal/catalog"
)

// Navigator performs a navigation.
type Navigator interface {
	Navigate(ctx context.Context, nav catalog.Navigation) error
}

// PrintNavigator writes the resolved URL on its own line.
type PrintNavigator struct {
	BaseURL string
	Out     io.Writer
}

func (p PrintNavigator) Navigate(_ context.Context, nav catalog.Navigation) error {
	_, err := fmt.Fprintln(p.Out, nav.URL(p.BaseURL))
	return err
}

// BrowserNavigator opens the resolved URL in the system browser.
type BrowserNavigator struct {
	BaseURL string
	Log     zerolog.Logger

	// open defaults to browser.OpenURL.
	open func(string) error
}

func (b BrowserNavigator) Navigate(ctx context.Context, nav catalog.Navigation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := nav.URL(b.BaseURL)
	if b.BaseURL == "" {
		return fmt.Errorf("open %s: navigation.base_url is not set", target)
	}
	open := b.open
	if open == nil {
		open = browser.OpenURL
	}
	b.Log.Info().Str("subject", nav.SubjectID).Str("url", target).Msg("opening browser")
	if err := open(target); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	return nil
}

// New picks the browser navigator when openBrowser is set, otherwise prints to out.
func New(baseURL string, openBrowser bool, out io.Writer, log zerolog.Logger) Navigator {
	if openBrowser {
		browser.Stdout = out
		browser.Stderr = out
		return BrowserNavigator{BaseURL: baseURL, Log: log}
	}
	return PrintNavigator{BaseURL: baseURL, Out: out}
}
