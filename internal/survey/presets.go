package survey

import (
	"sort"

	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/errors"
)

// Preset is a built-in questionnaire
type Preset struct {
	Name        string
	Title       string
	Description string
	Mode        domain.Mode
	Questions   []Question
}

// Catalog validates the preset's questions into a catalog
func (p Preset) Catalog() (*Catalog, error) {
	return NewCatalog(p.Name, p.Questions, WithTitle(p.Title), WithDescription(p.Description))
}

// GetPresets returns all available presets keyed by name
func GetPresets() map[string]Preset {
	return map[string]Preset{
		"service-review":     ServiceReviewPreset(),
		"product-review":     ProductReviewPreset(),
		"customer-feedback":  CustomerFeedbackPreset(),
		"product-listing":    ProductListingPreset(),
		"event-registration": EventRegistrationPreset(),
		"salon-feedback":     SalonFeedbackPreset(),
	}
}

// Presets returns all presets sorted by name
func Presets() []Preset {
	presets := GetPresets()
	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// PresetNames returns the sorted preset names
func PresetNames() []string {
	presets := Presets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// LookupPreset returns the named preset or a PRESET-001 error
func LookupPreset(name string) (Preset, error) {
	p, ok := GetPresets()[name]
	if !ok {
		return Preset{}, errors.NewPresetUnknownError(name, PresetNames())
	}
	return p, nil
}

// ServiceReviewPreset returns the one-question-at-a-time service feedback flow
func ServiceReviewPreset() Preset {
	return Preset{
		Name:        "service-review",
		Title:       "Share Your Feedback",
		Description: "Help us improve by sharing your experience",
		Mode:        domain.ModeSequential,
		Questions: []Question{
			{
				ID:          "satisfaction",
				Prompt:      "How satisfied are you with our service?",
				Description: "Rate your overall experience",
				Kind:        Rating(DefaultMaxStars),
				Required:    true,
			},
			{
				ID:          "recommendation",
				Prompt:      "How likely are you to recommend us?",
				Description: "On a scale of 1-10",
				Kind:        LinearScale(1, 10),
			},
			{
				ID:     "feature",
				Prompt: "Which feature did you like the most?",
				Kind:   SingleChoice("User Interface", "Performance", "Customer Support", "Pricing", "Features"),
			},
			{
				ID:     "would_return",
				Prompt: "Would you use our service again?",
				Kind:   Boolean(),
			},
			{
				ID:          "feedback",
				Prompt:      "Any additional feedback?",
				Description: "Share your thoughts, suggestions, or concerns",
				Kind:        FreeText(true),
			},
		},
	}
}

// ProductReviewPreset returns a short sequential product review
func ProductReviewPreset() Preset {
	return Preset{
		Name:        "product-review",
		Title:       "Product Review",
		Description: "We'd love to hear about your purchase",
		Mode:        domain.ModeSequential,
		Questions: []Question{
			{
				ID:       "quality",
				Prompt:   "Rate the product quality",
				Kind:     Rating(DefaultMaxStars),
				Required: true,
			},
			{
				ID:     "value",
				Prompt: "Rate the value for money",
				Kind:   Rating(DefaultMaxStars),
			},
			{
				ID:     "issue",
				Prompt: "Did you experience any issues?",
				Kind:   Boolean(),
			},
			{
				ID:     "description",
				Prompt: "Describe your experience in one sentence",
				Kind:   FreeText(false),
			},
			{
				ID:     "details",
				Prompt: "Tell us more about your experience",
				Kind:   FreeText(true),
			},
		},
	}
}

// CustomerFeedbackPreset returns the long single-page customer survey
func CustomerFeedbackPreset() Preset {
	return Preset{
		Name:        "customer-feedback",
		Title:       "Customer Feedback Survey",
		Description: "Help us improve by sharing your experience. This form takes about 3-5 minutes to complete.",
		Mode:        domain.ModePage,
		Questions: []Question{
			{
				ID:          "overall_satisfaction",
				Prompt:      "How satisfied are you with our service?",
				Description: "Rate your overall experience with us",
				Kind:        Rating(DefaultMaxStars),
				Required:    true,
			},
			{
				ID:       "name",
				Prompt:   "What is your name?",
				Kind:     FreeText(false),
				Required: true,
			},
			{
				ID:          "email",
				Prompt:      "Email address",
				Description: "We'll never share your email with anyone else",
				Kind:        FreeText(false),
			},
			{
				ID:          "recommendation_score",
				Prompt:      "How likely are you to recommend us to a friend or colleague?",
				Description: "Rate from 0 (not likely) to 10 (very likely)",
				Kind:        LinearScale(0, 10),
				Required:    true,
			},
			{
				ID:     "favorite_feature",
				Prompt: "Which feature do you value the most?",
				Kind: SingleChoice(
					"User Interface & Design",
					"Performance & Speed",
					"Customer Support",
					"Pricing & Value",
					"Feature Set",
					"Documentation & Resources",
				),
				Required: true,
			},
			{
				ID:     "ease_of_use",
				Prompt: "How easy was it to use our product?",
				Kind:   Rating(DefaultMaxStars),
			},
			{
				ID:     "would_purchase_again",
				Prompt: "Would you purchase from us again?",
				Kind:   Boolean(),
			},
			{
				ID:          "improvements",
				Prompt:      "What could we do better?",
				Description: "Please share any suggestions for improvement",
				Kind:        FreeText(true),
			},
			{
				ID:     "additional_comments",
				Prompt: "Any other comments or feedback?",
				Kind:   FreeText(true),
			},
		},
	}
}

// ProductListingPreset returns the single-page "write a review" form
func ProductListingPreset() Preset {
	return Preset{
		Name:        "product-listing",
		Title:       "Write a Review",
		Description: "Share your experience with this product",
		Mode:        domain.ModePage,
		Questions: []Question{
			{
				ID:       "product_rating",
				Prompt:   "Rate this product",
				Kind:     Rating(DefaultMaxStars),
				Required: true,
			},
			{
				ID:       "reviewer_name",
				Prompt:   "Your name",
				Kind:     FreeText(false),
				Required: true,
			},
			{
				ID:          "review_title",
				Prompt:      "Review title",
				Description: "Sum up your experience in one line",
				Kind:        FreeText(false),
			},
			{
				ID:          "review_text",
				Prompt:      "Your review",
				Description: "Tell others what you think about this product",
				Kind:        FreeText(true),
				Required:    true,
			},
			{
				ID:     "would_recommend",
				Prompt: "Would you recommend this product?",
				Kind:   Boolean(),
			},
		},
	}
}

// EventRegistrationPreset returns the event sign-up form
func EventRegistrationPreset() Preset {
	return Preset{
		Name:        "event-registration",
		Title:       "Event Registration & Feedback",
		Description: "Register for the event and tell us what you are looking for",
		Mode:        domain.ModePage,
		Questions: []Question{
			{
				ID:       "full_name",
				Prompt:   "Full Name",
				Kind:     FreeText(false),
				Required: true,
			},
			{
				ID:       "email_address",
				Prompt:   "Email Address",
				Kind:     FreeText(false),
				Required: true,
			},
			{
				ID:       "attendance",
				Prompt:   "Will you be attending the event?",
				Kind:     Boolean(),
				Required: true,
			},
			{
				ID:     "session_preference",
				Prompt: "Which session interests you most?",
				Kind: SingleChoice(
					"Opening Keynote",
					"Technical Workshop A",
					"Technical Workshop B",
					"Panel Discussion",
					"Networking Session",
					"Closing Remarks",
				),
			},
			{
				ID:     "dietary_requirements",
				Prompt: "Any dietary requirements?",
				Kind:   FreeText(false),
			},
			{
				ID:     "expectations",
				Prompt: "What are you hoping to learn or achieve?",
				Kind:   FreeText(true),
			},
		},
	}
}

// SalonFeedbackPreset returns the salon review card
func SalonFeedbackPreset() Preset {
	return Preset{
		Name:        "salon-feedback",
		Title:       "Salon Feedback",
		Description: "Tell us about your visit",
		Mode:        domain.ModePage,
		Questions: []Question{
			{
				ID:       "overall",
				Prompt:   "How would you rate your overall experience?",
				Kind:     Rating(DefaultMaxStars),
				Required: true,
			},
			{
				ID:       "recommend",
				Prompt:   "Would you recommend our services to others?",
				Kind:     Boolean(),
				Required: true,
			},
			{
				ID:       "service",
				Prompt:   "Which service did you receive?",
				Kind:     SingleChoice("Manicure", "Pedicure", "Makeup", "Other"),
				Required: true,
			},
			{
				ID:     "improvement",
				Prompt: "How can we improve our service?",
				Kind:   FreeText(false),
			},
			{
				ID:       "staff",
				Prompt:   "Rate the professionalism of our staff",
				Kind:     Rating(DefaultMaxStars),
				Required: true,
			},
		},
	}
}
