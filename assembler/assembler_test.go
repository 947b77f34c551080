package assembler

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hairizuan-noorazman/e2egen/action"
	"github.com/hairizuan-noorazman/e2egen/logger"
	"github.com/hairizuan-noorazman/e2egen/storage"
	"github.com/hairizuan-noorazman/e2egen/target/cypress"
	"github.com/hairizuan-noorazman/e2egen/target/playwright"
)

func TestCompileSuite_PreservesOrder(t *testing.T) {
	suite, err := CompileSuite(cypress.New(), "Homepage checks", []action.Action{
		action.Navigate("/"),
		action.AssertElement("h1", action.AssertText, "Example Domain"),
		action.Screenshot("homepage"),
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"cy.visit('/');",
		"cy.get('h1').should('have.text', 'Example Domain');",
		"cy.screenshot('homepage');",
	}, suite.Statements)
}

func TestCompileSuite_ContinuesPastFailures(t *testing.T) {
	actions := []action.Action{
		action.Navigate("/"),
		action.AssertElement("h1", action.AssertionKind("hovered"), ""),
		action.Screenshot("homepage"),
	}

	suite, err := CompileSuite(cypress.New(), "partial", actions, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, action.ErrUnsupportedAssertionKind)

	// Statements of the compilable actions are still produced, in order.
	assert.Equal(t, []string{
		"cy.visit('/');",
		"cy.screenshot('homepage');",
	}, suite.Statements)

	var compileErr CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, 1, compileErr.Index)
}

func TestCompileSuite_StopOnError(t *testing.T) {
	actions := []action.Action{
		action.AssertElement("h1", action.AssertionKind("hovered"), ""),
		action.Screenshot("never-reached"),
	}

	suite, err := CompileSuite(cypress.New(), "stop", actions, Options{StopOnError: true})
	require.Error(t, err)
	assert.Empty(t, suite.Statements)
}

func TestFileName(t *testing.T) {
	cy := cypress.New()
	pw := playwright.New()

	name, err := FileName("Homepage Checks", cy)
	require.NoError(t, err)
	assert.Equal(t, "homepage_checks.cy.js", name)

	// Whitespace collapses to single underscores.
	name, err = FileName("  Checkout \t Flow  ", cy)
	require.NoError(t, err)
	assert.Equal(t, "checkout_flow.cy.js", name)

	name, err = FileName("Homepage Checks", pw)
	require.NoError(t, err)
	assert.Equal(t, "homepage_checks.spec.js", name)

	_, err = FileName("   ", cy)
	assert.ErrorIs(t, err, ErrEmptySuiteTitle)
}

func TestWriter_Write(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	w := NewWriter(store, "generated", logger.NewTestLogger())
	suite, err := CompileSuite(cypress.New(), "Homepage checks", []action.Action{
		action.Navigate("/"),
	}, Options{})
	require.NoError(t, err)

	key, err := w.Write(ctx, cypress.New(), suite)
	require.NoError(t, err)
	assert.Equal(t, "generated/homepage_checks.cy.js", key)

	rc, err := store.Download(ctx, key)
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)

	assert.Contains(t, string(content), "describe('Homepage checks', () => {")
	assert.Contains(t, string(content), "cy.visit('/');")
}

func TestWriter_WriteOverwritesSilently(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	w := NewWriter(store, "", logger.NewTestLogger())

	first := Suite{Title: "collide", Statements: []string{"cy.visit('/a');"}}
	second := Suite{Title: "Collide", Statements: []string{"cy.visit('/b');"}}

	_, err = w.Write(ctx, cypress.New(), first)
	require.NoError(t, err)
	key, err := w.Write(ctx, cypress.New(), second)
	require.NoError(t, err)

	rc, err := store.Download(ctx, key)
	require.NoError(t, err)
	defer rc.Close()
	content, _ := io.ReadAll(rc)
	assert.Contains(t, string(content), "cy.visit('/b');")
	assert.NotContains(t, string(content), "cy.visit('/a');")
}
