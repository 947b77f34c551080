package action

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedAssertionKind is returned when an assertion kind is not in the recognized set.
	ErrUnsupportedAssertionKind = errors.New("unsupported assertion kind")

	// ErrInvalidURL is returned when a navigate action has an empty URL.
	ErrInvalidURL = errors.New("url is required")

	// ErrInvalidSelector is returned when an action requiring a selector has none.
	ErrInvalidSelector = errors.New("selector is required")

	// ErrInvalidExpected is returned when the expected value does not match the assertion kind's shape.
	ErrInvalidExpected = errors.New("invalid expected value")

	// ErrInvalidScreenshotName is returned when a screenshot action has an empty name.
	ErrInvalidScreenshotName = errors.New("screenshot name is required")

	// ErrInvalidDuration is returned when a wait action has a non-positive duration.
	ErrInvalidDuration = errors.New("wait duration must be positive")

	// ErrInvalidFormFields is returned when a fill-form action has no fields.
	ErrInvalidFormFields = errors.New("at least one form field is required")

	// ErrInvalidFieldValue is returned when a form field value is neither bool nor string.
	ErrInvalidFieldValue = errors.New("form field value must be bool or string")
)

// Type identifies the variant of an Action.
type Type string

const (
	TypeNavigate   Type = "navigate"
	TypeAssert     Type = "assert"
	TypeFillForm   Type = "fillform"
	TypeScreenshot Type = "screenshot"
	TypeWait       Type = "wait"
)

// IsValid checks if the action type is valid.
func (t Type) IsValid() bool {
	switch t {
	case TypeNavigate, TypeAssert, TypeFillForm, TypeScreenshot, TypeWait:
		return true
	default:
		return false
	}
}

// AssertionKind identifies what an assert action checks against its selector.
type AssertionKind string

const (
	AssertExists       AssertionKind = "exists"
	AssertText         AssertionKind = "text"
	AssertAttribute    AssertionKind = "attribute"
	AssertClickable    AssertionKind = "clickable"
	AssertVisible      AssertionKind = "visible"
	AssertCount        AssertionKind = "count"
	AssertContainsText AssertionKind = "containsText"
	AssertCSSProperty  AssertionKind = "cssProperty"
)

// IsValid checks if the assertion kind is in the recognized set.
func (k AssertionKind) IsValid() bool {
	switch k {
	case AssertExists, AssertText, AssertAttribute, AssertClickable,
		AssertVisible, AssertCount, AssertContainsText, AssertCSSProperty:
		return true
	default:
		return false
	}
}

// RequiresExpected reports whether the kind needs an expected value at all.
func (k AssertionKind) RequiresExpected() bool {
	switch k {
	case AssertExists, AssertClickable, AssertVisible:
		return false
	default:
		return true
	}
}

// FormField is one selector/value pair of a fill-form action. Fields are kept
// as an ordered slice rather than a map so that compiled statements come out
// in exactly the order the caller authored them.
type FormField struct {
	Selector string      `json:"selector" yaml:"selector"`
	Value    interface{} `json:"value" yaml:"value"`
}

// Action is an abstract description of one UI interaction or assertion,
// independent of any target engine's syntax. An Action is immutable once
// constructed; the compiler consumes actions strictly in order.
type Action struct {
	Type       Type          `json:"type"`
	URL        string        `json:"url,omitempty"`
	Selector   string        `json:"selector,omitempty"`
	Assert     AssertionKind `json:"assert,omitempty"`
	Expected   string        `json:"expected,omitempty"`
	Fields     []FormField   `json:"fields,omitempty"`
	Name       string        `json:"name,omitempty"`
	DurationMs int           `json:"duration_ms,omitempty"`
}

// Navigate returns an action that opens the given URL.
func Navigate(url string) Action {
	return Action{Type: TypeNavigate, URL: url}
}

// AssertElement returns an action that asserts the given kind against the
// selector. Expected is ignored for kinds that take no expected value.
func AssertElement(selector string, kind AssertionKind, expected string) Action {
	return Action{Type: TypeAssert, Selector: selector, Assert: kind, Expected: expected}
}

// FillForm returns an action that fills the given fields in order.
func FillForm(fields []FormField) Action {
	return Action{Type: TypeFillForm, Fields: fields}
}

// Screenshot returns an action that captures a screenshot under the given name.
func Screenshot(name string) Action {
	return Action{Type: TypeScreenshot, Name: name}
}

// Wait returns an action that pauses execution for the given duration.
func Wait(durationMs int) Action {
	return Action{Type: TypeWait, DurationMs: durationMs}
}

// Validate checks that the action's fields match its type and, for assertions,
// that the expected value has the shape the kind requires.
func (a Action) Validate() error {
	switch a.Type {
	case TypeNavigate:
		if a.URL == "" {
			return ErrInvalidURL
		}
	case TypeAssert:
		if a.Selector == "" {
			return ErrInvalidSelector
		}
		if !a.Assert.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnsupportedAssertionKind, string(a.Assert))
		}
		return validateExpected(a.Assert, a.Expected)
	case TypeFillForm:
		if len(a.Fields) == 0 {
			return ErrInvalidFormFields
		}
		for _, f := range a.Fields {
			if f.Selector == "" {
				return ErrInvalidSelector
			}
			switch f.Value.(type) {
			case bool, string:
			default:
				return fmt.Errorf("%w: %s", ErrInvalidFieldValue, f.Selector)
			}
		}
	case TypeScreenshot:
		if a.Name == "" {
			return ErrInvalidScreenshotName
		}
	case TypeWait:
		if a.DurationMs <= 0 {
			return ErrInvalidDuration
		}
	default:
		return fmt.Errorf("invalid action type %q", string(a.Type))
	}
	return nil
}

// validateExpected enforces the per-kind expected-value shape: none for
// presence/visibility/click kinds, key=value for attribute and cssProperty,
// a numeric string for count, and a plain literal for the text kinds.
func validateExpected(kind AssertionKind, expected string) error {
	switch kind {
	case AssertExists, AssertClickable, AssertVisible:
		return nil
	case AssertAttribute, AssertCSSProperty:
		if _, _, err := SplitPair(expected); err != nil {
			return err
		}
	case AssertCount:
		if _, err := strconv.Atoi(expected); err != nil {
			return fmt.Errorf("%w: count requires a numeric string, got %q", ErrInvalidExpected, expected)
		}
	case AssertText, AssertContainsText:
		if expected == "" {
			return fmt.Errorf("%w: %s requires an expected string", ErrInvalidExpected, string(kind))
		}
	}
	return nil
}

// SplitPair splits a "key=value" expected value as used by the attribute and
// cssProperty kinds. The value half may itself contain '='.
func SplitPair(expected string) (key, value string, err error) {
	idx := strings.Index(expected, "=")
	if idx <= 0 {
		return "", "", fmt.Errorf("%w: expected key=value, got %q", ErrInvalidExpected, expected)
	}
	return expected[:idx], expected[idx+1:], nil
}
