package assembler

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hairizuan-noorazman/e2egen/action"
	"github.com/hairizuan-noorazman/e2egen/logger"
	"github.com/hairizuan-noorazman/e2egen/report"
	"github.com/hairizuan-noorazman/e2egen/runner"
	"github.com/hairizuan-noorazman/e2egen/storage"
	"github.com/hairizuan-noorazman/e2egen/target/cypress"
)

// Covers the whole scripted pipeline: three actions compile in authored
// order, assemble into one suite file named from the title, and a successful
// run reporting one passing test renders a 100% pass rate.
func TestScriptedPipeline(t *testing.T) {
	ctx := context.Background()
	tgt := cypress.New()

	actions := []action.Action{
		action.Navigate("/"),
		action.AssertElement("h1", action.AssertText, "Example Domain"),
		action.Screenshot("homepage"),
	}

	suite, err := CompileSuite(tgt, "Homepage checks", actions, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{
		"cy.visit('/');",
		"cy.get('h1').should('have.text', 'Example Domain');",
		"cy.screenshot('homepage');",
	}, suite.Statements)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	writer := NewWriter(store, "generated", logger.NewTestLogger())

	key, err := writer.Write(ctx, tgt, suite)
	require.NoError(t, err)
	assert.Equal(t, "generated/homepage_checks.cy.js", key)

	rc, err := store.Download(ctx, key)
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)

	// Statements appear in the file in authored order.
	text := string(content)
	first := strings.Index(text, "cy.visit")
	second := strings.Index(text, "cy.get('h1')")
	third := strings.Index(text, "cy.screenshot")
	assert.True(t, first < second && second < third)

	invoker := &runner.FakeInvoker{
		Stats: []runner.RunStats{
			{SpecFile: key, Tests: 1, Passes: 1, Failures: 0, DurationMs: 800},
		},
	}
	stats, err := invoker.Invoke(ctx, []string{key}, runner.Options{Browser: "chrome", Headless: true})
	require.NoError(t, err)

	rep := report.FromRunStats("Homepage checks", stats)
	assert.Equal(t, 1, rep.Summary.Passed)
	assert.Equal(t, 0, rep.Summary.Failed)
	assert.Equal(t, 100, rep.Summary.PassRate)
}
