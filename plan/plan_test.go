package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hairizuan-noorazman/e2egen/action"
)

const samplePlan = `
name: example
base_url: https://example.com
viewports:
  - name: desktop
    width: 1280
    height: 800
  - name: mobile
    width: 375
    height: 812
routes:
  - name: home
    path: /
    checks:
      - selector: h1
        assert: text
        expected: Example Domain
      - selector: p
        assert: visible
  - name: signup
    path: /signup
    wait_ms: 250
    form:
      - selector: "#subscribe"
        value: true
      - selector: "#country select"
        value: US
      - selector: "#name"
        value: Alice
`

func TestLoad(t *testing.T) {
	p, err := Load([]byte(samplePlan))
	require.NoError(t, err)

	assert.Equal(t, "example", p.Name)
	assert.Equal(t, "https://example.com", p.BaseURL)
	require.Len(t, p.Viewports, 2)
	require.Len(t, p.Routes, 2)
	assert.Equal(t, action.AssertText, p.Routes[0].Checks[0].Assert)
	assert.Equal(t, true, p.Routes[1].Form[0].Value)
	assert.Equal(t, "US", p.Routes[1].Form[1].Value)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load([]byte("name: x\nbase_url: https://example.com\nroutes: []"))
	assert.ErrorIs(t, err, ErrNoRoutes)

	_, err = Load([]byte("base_url: https://example.com\nroutes:\n  - name: home\n    path: /"))
	assert.ErrorIs(t, err, ErrInvalidPlanName)

	_, err = Load([]byte(":::not yaml"))
	assert.Error(t, err)
}

func TestPlan_Validate(t *testing.T) {
	base := func() *Plan {
		return &Plan{
			Name:    "example",
			BaseURL: "https://example.com",
			Routes:  []Route{{Name: "home", Path: "/"}},
		}
	}

	p := base()
	assert.NoError(t, p.Validate())

	// Hyphenated route names would corrupt "{route}-{viewport}" grouping.
	p = base()
	p.Routes[0].Name = "home-page"
	assert.ErrorIs(t, p.Validate(), ErrInvalidRouteName)

	p = base()
	p.Viewports = []Viewport{{Name: "wide-screen", Width: 1920, Height: 1080}}
	assert.ErrorIs(t, p.Validate(), ErrInvalidViewportName)

	p = base()
	p.Viewports = []Viewport{{Name: "desktop", Width: 0, Height: 800}}
	assert.ErrorIs(t, p.Validate(), ErrInvalidViewportSize)

	p = base()
	p.BaseURL = ""
	assert.ErrorIs(t, p.Validate(), ErrInvalidBaseURL)

	p = base()
	p.Routes[0].Checks = []Check{{Selector: "h1", Assert: action.AssertionKind("hovered")}}
	assert.ErrorIs(t, p.Validate(), action.ErrUnsupportedAssertionKind)

	p = base()
	p.Routes[0].Form = []action.FormField{{Selector: "#age", Value: 5}}
	assert.ErrorIs(t, p.Validate(), action.ErrInvalidFieldValue)

	p = base()
	p.Routes[0].Form = []action.FormField{{Value: "x"}}
	assert.ErrorIs(t, p.Validate(), action.ErrInvalidSelector)
}

// YAML happily decodes numeric form values into interface{}, so loading must
// reject them before any target dereferences the value as a string.
func TestLoad_RejectsNumericFormValue(t *testing.T) {
	_, err := Load([]byte(`
name: example
base_url: https://example.com
routes:
  - name: signup
    path: /signup
    form:
      - selector: "#age"
        value: 5
`))
	assert.ErrorIs(t, err, action.ErrInvalidFieldValue)
}

func TestPlan_Expand(t *testing.T) {
	p, err := Load([]byte(samplePlan))
	require.NoError(t, err)

	suites := p.Expand()
	// Two routes times two viewports.
	require.Len(t, suites, 4)

	first := suites[0]
	assert.Equal(t, "example home desktop", first.Title)
	assert.Equal(t, "home", first.Route)
	assert.Equal(t, "desktop", first.Viewport)

	// navigate, two checks, screenshot.
	require.Len(t, first.Actions, 4)
	assert.Equal(t, action.TypeNavigate, first.Actions[0].Type)
	assert.Equal(t, "https://example.com/", first.Actions[0].URL)
	assert.Equal(t, action.TypeAssert, first.Actions[1].Type)
	assert.Equal(t, action.TypeScreenshot, first.Actions[3].Type)
	assert.Equal(t, "home-desktop-full", first.Actions[3].Name)

	// Signup suite has wait and form fill.
	signup := suites[2]
	assert.Equal(t, "example signup desktop", signup.Title)
	require.Len(t, signup.Actions, 4)
	assert.Equal(t, action.TypeWait, signup.Actions[1].Type)
	assert.Equal(t, action.TypeFillForm, signup.Actions[2].Type)
	assert.Equal(t, "signup-desktop-full", signup.Actions[3].Name)
}

func TestPlan_ExpandDefaultViewport(t *testing.T) {
	p := &Plan{
		Name:    "example",
		BaseURL: "https://example.com",
		Routes:  []Route{{Name: "home", Path: "/"}},
	}
	require.NoError(t, p.Validate())

	suites := p.Expand()
	require.Len(t, suites, 1)
	assert.Equal(t, "desktop", suites[0].Viewport)
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "https://example.com/about", joinURL("https://example.com/", "/about"))
	assert.Equal(t, "https://example.com/about", joinURL("https://example.com", "about"))
	assert.Equal(t, "https://example.com/", joinURL("https://example.com", "/"))
}
