// Package plan models the declarative test description: a base URL, routes
// with their selector checks and form fills, and the viewports each route is
// captured under. A plan expands into per-route, per-viewport action
// sequences whose screenshot names follow the "{route}-{viewport}-..."
// convention the grouping report consumes.
package plan

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hairizuan-noorazman/e2egen/action"
)

var (
	// ErrInvalidPlanName is returned when a plan has no name.
	ErrInvalidPlanName = errors.New("plan name is required")

	// ErrInvalidBaseURL is returned when a plan has no base URL.
	ErrInvalidBaseURL = errors.New("base_url is required")

	// ErrNoRoutes is returned when a plan declares no routes.
	ErrNoRoutes = errors.New("at least one route is required")

	// ErrInvalidRouteName is returned when a route has no name or the name
	// contains a hyphen, which would corrupt screenshot grouping.
	ErrInvalidRouteName = errors.New("route name is required and must not contain hyphens")

	// ErrInvalidViewportName is returned when a viewport has no name or the
	// name contains a hyphen.
	ErrInvalidViewportName = errors.New("viewport name is required and must not contain hyphens")

	// ErrInvalidViewportSize is returned when a viewport has non-positive dimensions.
	ErrInvalidViewportSize = errors.New("viewport width and height must be positive")
)

// Viewport is a named browser window size.
type Viewport struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Check is one selector assertion on a route.
type Check struct {
	Selector string               `yaml:"selector"`
	Assert   action.AssertionKind `yaml:"assert"`
	Expected string               `yaml:"expected,omitempty"`
}

// Route is one page under test.
type Route struct {
	Name   string             `yaml:"name"`
	Path   string             `yaml:"path"`
	Checks []Check            `yaml:"checks,omitempty"`
	Form   []action.FormField `yaml:"form,omitempty"`
	WaitMs int                `yaml:"wait_ms,omitempty"`
}

// Plan is the full declarative test description.
type Plan struct {
	Name      string     `yaml:"name"`
	BaseURL   string     `yaml:"base_url"`
	Viewports []Viewport `yaml:"viewports,omitempty"`
	Routes    []Route    `yaml:"routes"`
}

// Load parses a plan from YAML and validates it.
func Load(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile reads and parses a plan file.
func LoadFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	return Load(data)
}

// Validate checks the plan's required fields and naming constraints.
func (p *Plan) Validate() error {
	if p.Name == "" {
		return ErrInvalidPlanName
	}
	if p.BaseURL == "" {
		return ErrInvalidBaseURL
	}
	if len(p.Routes) == 0 {
		return ErrNoRoutes
	}
	for _, v := range p.Viewports {
		if v.Name == "" || strings.Contains(v.Name, "-") {
			return fmt.Errorf("%w: %q", ErrInvalidViewportName, v.Name)
		}
		if v.Width <= 0 || v.Height <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidViewportSize, v.Name)
		}
	}
	for _, r := range p.Routes {
		if r.Name == "" || strings.Contains(r.Name, "-") {
			return fmt.Errorf("%w: %q", ErrInvalidRouteName, r.Name)
		}
		for _, c := range r.Checks {
			a := action.AssertElement(c.Selector, c.Assert, c.Expected)
			if err := a.Validate(); err != nil {
				return fmt.Errorf("route %s: %w", r.Name, err)
			}
		}
		if len(r.Form) > 0 {
			if err := action.FillForm(r.Form).Validate(); err != nil {
				return fmt.Errorf("route %s: %w", r.Name, err)
			}
		}
	}
	return nil
}

// SuiteActions is one expanded suite: a title plus its ordered actions.
type SuiteActions struct {
	Title    string
	Route    string
	Viewport string
	Actions  []action.Action
}

// defaultViewport is used when a plan declares no viewports.
var defaultViewport = Viewport{Name: "desktop", Width: 1280, Height: 800}

// Expand produces one suite per route/viewport pair, in declaration order:
// navigate, optional wait, the route's checks, its form fills, then a
// screenshot named "{route}-{viewport}-full".
func (p *Plan) Expand() []SuiteActions {
	viewports := p.Viewports
	if len(viewports) == 0 {
		viewports = []Viewport{defaultViewport}
	}

	var suites []SuiteActions
	for _, r := range p.Routes {
		for _, v := range viewports {
			s := SuiteActions{
				Title:    fmt.Sprintf("%s %s %s", p.Name, r.Name, v.Name),
				Route:    r.Name,
				Viewport: v.Name,
			}
			s.Actions = append(s.Actions, action.Navigate(joinURL(p.BaseURL, r.Path)))
			if r.WaitMs > 0 {
				s.Actions = append(s.Actions, action.Wait(r.WaitMs))
			}
			for _, c := range r.Checks {
				s.Actions = append(s.Actions, action.AssertElement(c.Selector, c.Assert, c.Expected))
			}
			if len(r.Form) > 0 {
				s.Actions = append(s.Actions, action.FillForm(r.Form))
			}
			s.Actions = append(s.Actions, action.Screenshot(fmt.Sprintf("%s-%s-full", r.Name, v.Name)))
			suites = append(suites, s)
		}
	}
	return suites
}

func joinURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
