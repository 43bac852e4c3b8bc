// Package scenarios holds the authored verification journeys. Each
// scenario is a finite linear sequence of steps; the only branching is
// the implicit abort-on-first-failure.
package scenarios

import (
	"fmt"
	"time"

	"ui_verification/domain/entities"

	"github.com/google/uuid"
)

// UI copy the verified application must render, pinned as contract. The
// whole point of these checks is catching regressions in exactly this
// copy, so a change here must be deliberate on both sides.
const (
	MsgItemAdded         = "Item added successfully"
	MsgInsufficientItems = "You need to add at least one of each: Bottom, Footwear."
	MsgInvalidImage      = "AI could not detect a clothing item. Please try another image."
	HeadingOutfitPick    = "Your Daily Outfit Pick"
	HeadingVirtualTryOn  = "Virtual Try-On"
	ButtonGenerateTryOn  = "Generate Virtual Try-On"
)

// recommenderCardSelector matches the outfit recommender card container.
const recommenderCardSelector = "div.bg-white.p-6.rounded-lg.shadow-md"

// Fixtures are the input images upload steps consume.
type Fixtures struct {
	Placeholder string // plain placeholder standing in for a clothing photo
	NonClothing string // image with no detectable clothing item
}

// All returns the verification journeys in their authored order.
func All(baseURL string, fixtures Fixtures) []entities.Scenario {
	return []entities.Scenario{
		InsufficientWardrobe(baseURL, fixtures),
		InvalidImage(baseURL, fixtures),
		FeedbackControls(baseURL),
		VirtualTryOn(baseURL),
		WardrobeUpdate(baseURL, fixtures),
	}
}

// InsufficientWardrobe signs up a fresh account, adds a single top and
// expects the homepage to name the missing categories.
func InsufficientWardrobe(baseURL string, fixtures Fixtures) entities.Scenario {
	email := fmt.Sprintf("user_%s@example.com", uuid.NewString()[:8])

	return entities.Scenario{
		Name:        "insufficient-wardrobe",
		Description: "a wardrobe with only a top prompts for the missing categories",
		Steps: []entities.Step{
			{Kind: entities.StepNavigate, URL: baseURL + "/auth/sign-up"},
			{Kind: entities.StepScreenshot, Checkpoint: "signup-page"},
			{Kind: entities.StepFill, Locator: entities.LabelLocator("Email"), Value: email},
			{Kind: entities.StepFill, Locator: entities.LabelLocator("Password"), Value: "password"},
			{Kind: entities.StepClick, Locator: entities.RoleLocator("button", "Sign Up")},
			{Kind: entities.StepWaitForURL, URL: baseURL + "/onboarding"},
			{Kind: entities.StepClick, Locator: entities.RoleLocator("button", "Get Started")},
			{Kind: entities.StepWaitForURL, URL: baseURL + "/wardrobe"},
			{Kind: entities.StepClick, Locator: entities.RoleLocator("button", "Add Item")},
			{Kind: entities.StepUpload, Locator: entities.CSSLocator(`input[type="file"]`), FilePath: fixtures.Placeholder},
			{Kind: entities.StepClick, Locator: entities.RoleLocator("button", "Add Item")},
			{Kind: entities.StepAssertVisible, Locator: entities.TextLocator(MsgItemAdded)},
			{Kind: entities.StepNavigate, URL: baseURL},
			{Kind: entities.StepAssertVisible, Locator: entities.TextLocator(MsgInsufficientItems)},
			{Kind: entities.StepScreenshot, Checkpoint: "insufficient-items"},
		},
	}
}

// InvalidImage uploads a non-clothing image to the add-item flow and
// expects the detection rejection message.
func InvalidImage(baseURL string, fixtures Fixtures) entities.Scenario {
	return entities.Scenario{
		Name:        "invalid-image",
		Description: "a non-clothing image is rejected by the detection step",
		Steps: []entities.Step{
			{Kind: entities.StepNavigate, URL: baseURL + "/wardrobe"},
			{Kind: entities.StepClick, Locator: entities.RoleLocator("button", "Add Item")},
			{Kind: entities.StepUpload, Locator: entities.CSSLocator(`input[type="file"]`), FilePath: fixtures.NonClothing},
			// Detection runs server-side; give it the long wait budget.
			{Kind: entities.StepWaitForSelector, Locator: entities.TextLocator(MsgInvalidImage), Timeout: 15 * time.Second},
			{Kind: entities.StepScreenshot, Checkpoint: "rejection"},
		},
	}
}

// FeedbackControls loads the homepage and expects the outfit recommender
// card with its feedback buttons.
func FeedbackControls(baseURL string) entities.Scenario {
	return entities.Scenario{
		Name:        "feedback-controls",
		Description: "the outfit recommender exposes like and dislike controls",
		Steps: []entities.Step{
			{Kind: entities.StepNavigate, URL: baseURL},
			// Model loading makes the card slow to appear.
			{Kind: entities.StepAssertVisible, Locator: entities.CSSLocator(recommenderCardSelector), Timeout: 15 * time.Second},
			{Kind: entities.StepAssertVisible, Locator: entities.RoleLocator("heading", HeadingOutfitPick)},
			{Kind: entities.StepAssertVisible, Locator: entities.RoleLocator("button", "Like")},
			{Kind: entities.StepAssertVisible, Locator: entities.RoleLocator("button", "Dislike")},
			{Kind: entities.StepScreenshot, Checkpoint: "feedback"},
		},
	}
}

// VirtualTryOn loads the homepage and expects the try-on component.
func VirtualTryOn(baseURL string) entities.Scenario {
	return entities.Scenario{
		Name:        "virtual-try-on",
		Description: "the homepage exposes the virtual try-on component",
		Steps: []entities.Step{
			{Kind: entities.StepNavigate, URL: baseURL},
			{Kind: entities.StepAssertVisible, Locator: entities.RoleLocator("heading", HeadingVirtualTryOn), Timeout: 10 * time.Second},
			{Kind: entities.StepAssertVisible, Locator: entities.RoleLocator("button", ButtonGenerateTryOn)},
			{Kind: entities.StepScreenshot, Checkpoint: "virtual-try-on"},
		},
	}
}

// WardrobeUpdate adds an item, then edits and saves it.
func WardrobeUpdate(baseURL string, fixtures Fixtures) entities.Scenario {
	return entities.Scenario{
		Name:        "wardrobe-update",
		Description: "an added wardrobe item can be edited and saved",
		Steps: []entities.Step{
			{Kind: entities.StepNavigate, URL: baseURL + "/wardrobe"},
			{Kind: entities.StepClick, Locator: entities.RoleLocator("button", "Add Item")},
			{Kind: entities.StepUpload, Locator: entities.CSSLocator(`input[type="file"]`), FilePath: fixtures.Placeholder},
			{Kind: entities.StepClick, Locator: entities.RoleLocator("button", "Add Item")},
			{Kind: entities.StepAssertVisible, Locator: entities.TextLocator(MsgItemAdded)},
			{Kind: entities.StepClick, Locator: entities.RoleLocator("button", "Edit")},
			{Kind: entities.StepClick, Locator: entities.RoleLocator("button", "Save Changes")},
			{Kind: entities.StepScreenshot, Checkpoint: "updated-item"},
		},
	}
}
