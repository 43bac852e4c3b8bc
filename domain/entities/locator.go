package entities

import "fmt"

// LocatorStrategy is the closed set of ways a Step may address an element.
type LocatorStrategy string

const (
	ByRole  LocatorStrategy = "role"  // ARIA role plus accessible name
	ByLabel LocatorStrategy = "label" // form-field label text
	ByText  LocatorStrategy = "text"  // exact visible text
	ByCSS   LocatorStrategy = "css"   // raw CSS selector
)

// Locator addresses exactly one element on the page via one strategy.
type Locator struct {
	Strategy LocatorStrategy `json:"strategy"`
	Role     string          `json:"role,omitempty"`
	Name     string          `json:"name"`
}

// RoleLocator - addresses an element by ARIA role and accessible name
func RoleLocator(role, name string) Locator {
	return Locator{Strategy: ByRole, Role: role, Name: name}
}

// LabelLocator - addresses a form field by its label text
func LabelLocator(label string) Locator {
	return Locator{Strategy: ByLabel, Name: label}
}

// TextLocator - addresses an element by its exact visible text
func TextLocator(text string) Locator {
	return Locator{Strategy: ByText, Name: text}
}

// CSSLocator - addresses an element by CSS selector
func CSSLocator(selector string) Locator {
	return Locator{Strategy: ByCSS, Name: selector}
}

// IsZero reports whether the locator is unset.
func (l Locator) IsZero() bool {
	return l.Strategy == "" && l.Name == ""
}

func (l Locator) String() string {
	switch l.Strategy {
	case ByRole:
		return fmt.Sprintf("%s %q", l.Role, l.Name)
	case ByLabel:
		return fmt.Sprintf("label %q", l.Name)
	case ByText:
		return fmt.Sprintf("text %q", l.Name)
	default:
		return l.Name
	}
}
