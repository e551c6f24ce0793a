// Package browser wraps a single playwright-driven Chromium session. The
// session is non-reentrant: one page, one lookup at a time, held for the
// whole sync run.
package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Headless       bool
	Timeout        time.Duration
	UserAgent      string
	ViewportWidth  int
	ViewportHeight int
	Locale         string
	TimezoneID     string
}

func DefaultOptions() *Options {
	return &Options{
		Headless:       true,
		Timeout:        30 * time.Second,
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		ViewportWidth:  1920,
		ViewportHeight: 1080,
		Locale:         "en-US",
		TimezoneID:     "UTC",
	}
}

type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	timeout time.Duration
}

// New launches Chromium and opens the session's single page.
func New(opts *Options) (*Session, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--disable-dev-shm-usage",
			"--no-sandbox",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent:  playwright.String(opts.UserAgent),
		Locale:     playwright.String(opts.Locale),
		TimezoneId: playwright.String(opts.TimezoneID),
		Viewport: &playwright.Size{
			Width:  opts.ViewportWidth,
			Height: opts.ViewportHeight,
		},
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(float64(opts.Timeout.Milliseconds()))

	log.Debug().
		Bool("headless", opts.Headless).
		Dur("timeout", opts.Timeout).
		Msg("Browser session started")

	return &Session{
		pw:      pw,
		browser: browser,
		context: context,
		page:    page,
		timeout: opts.Timeout,
	}, nil
}

func (s *Session) Navigate(url string) error {
	_, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(s.timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

func (s *Session) TypeInto(selector, text string) error {
	if err := s.page.Fill(selector, text); err != nil {
		return fmt.Errorf("failed to fill %s: %w", selector, err)
	}
	return nil
}

func (s *Session) PressEnter() error {
	if err := s.page.Keyboard().Press("Enter"); err != nil {
		return fmt.Errorf("failed to press enter: %w", err)
	}
	return nil
}

func (s *Session) WaitForSelector(selector string) error {
	_, err := s.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(s.timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("failed waiting for %s: %w", selector, err)
	}
	return nil
}

func (s *Session) Click(selector string) error {
	if err := s.page.Click(selector); err != nil {
		return fmt.Errorf("failed to click %s: %w", selector, err)
	}
	return nil
}

func (s *Session) WaitForNavigation() error {
	if err := s.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("failed waiting for navigation: %w", err)
	}
	return nil
}

// HTML snapshots the current page markup for extraction.
func (s *Session) HTML() (string, error) {
	content, err := s.page.Content()
	if err != nil {
		return "", fmt.Errorf("failed to read page content: %w", err)
	}
	return content, nil
}

// Alive reports whether the browser resource is still usable. A dead session
// is fatal to the run, not to a single title.
func (s *Session) Alive() bool {
	return s.browser.IsConnected() && !s.page.IsClosed()
}

// Close tears the session down page-first, collecting every error so a
// partial teardown is still visible in the log.
func (s *Session) Close() error {
	var errs []error

	if s.page != nil && !s.page.IsClosed() {
		if err := s.page.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close page: %w", err))
		}
	}
	if s.context != nil {
		if err := s.context.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close context: %w", err))
		}
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
		}
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}

	log.Debug().Msg("Browser session closed")
	return nil
}
