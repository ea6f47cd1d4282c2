package browser

import (
	"fmt"
	"math/rand"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightManager owns the playwright driver and the launched browser.
type PlaywrightManager struct {
	pw         *playwright.Playwright
	browser    playwright.Browser
	userAgents []string
}

// hideWebdriver is injected into every new document so the site's bot
// checks don't see navigator.webdriver.
const hideWebdriver = `Object.defineProperty(navigator, 'webdriver', { get: () => undefined })`

func NewPlaywright(headless bool, userAgents []string) (*PlaywrightManager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		Args: []string{
			"--no-sandbox",
			"--disable-blink-features=AutomationControlled",
			"--disable-infobars",
			"--start-maximized",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch chromium: %w", err)
	}

	return &PlaywrightManager{
		pw:         pw,
		browser:    browser,
		userAgents: userAgents,
	}, nil
}

// NewContext creates a browser context with a random user agent, the given
// cookies and the anti-detection init script applied.
func (pm *PlaywrightManager) NewContext(cookies []playwright.OptionalCookie) (playwright.BrowserContext, error) {
	opts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: 1920, Height: 1080},
	}
	if len(pm.userAgents) > 0 {
		opts.UserAgent = playwright.String(pm.userAgents[rand.Intn(len(pm.userAgents))])
	}

	browserCtx, err := pm.browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	if err := browserCtx.AddInitScript(playwright.Script{
		Content: playwright.String(hideWebdriver),
	}); err != nil {
		return nil, fmt.Errorf("could not add init script: %w", err)
	}

	if len(cookies) > 0 {
		if err := browserCtx.AddCookies(cookies); err != nil {
			return nil, fmt.Errorf("could not add cookies: %w", err)
		}
	}

	return browserCtx, nil
}

func (pm *PlaywrightManager) Close() error {
	if pm.browser != nil {
		if err := pm.browser.Close(); err != nil {
			return err
		}
	}
	if pm.pw != nil {
		return pm.pw.Stop()
	}
	return nil
}
