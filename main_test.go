package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/require"
)

// getBrowser finds an available Chrome or Chromium for testing
func getBrowser() (string, error) {
	browsers := []string{"chromium", "chromium-browser", "google-chrome", "chrome"}
	for _, browser := range browsers {
		if path, err := exec.LookPath(browser); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no suitable browser found")
}

// freePort asks the kernel for an unused port
func freePort(t *testing.T) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	return fmt.Sprint(listener.Addr().(*net.TCPAddr).Port)
}

// TestFrontendRendering tests that the app shell loads in a headless browser
func TestFrontendRendering(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	browserPath, err := getBrowser()
	if err != nil {
		t.Skip("No Chrome or Chromium found, skipping browser test")
	}
	t.Logf("Using browser: %s", browserPath)

	injectGlobals(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e, serverHandler, err := newServer(testServerConfig())
	require.NoError(t, err)
	defer serverHandler.Close()

	testPort := freePort(t)
	go func() {
		if err := e.Start("127.0.0.1:" + testPort); err != nil {
			t.Logf("Server stopped: %v", err)
		}
	}()
	defer e.Shutdown(context.Background())

	// Give server time to start
	time.Sleep(500 * time.Millisecond)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(browserPath),
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancel()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var pageTitle string
	var bodyHTML string
	err = chromedp.Run(ctx,
		chromedp.Navigate("http://127.0.0.1:"+testPort),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.Title(&pageTitle),
		chromedp.InnerHTML("body", &bodyHTML),
	)
	require.NoError(t, err)
	require.True(t, strings.Contains(pageTitle, "Travel Genius"), "unexpected title %q", pageTitle)
	require.NotEmpty(t, bodyHTML)
}
