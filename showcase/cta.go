package showcase

import "github.com/rpupo63/storefront-site-backend/models"

// CTA is a labeled button bound to the inquiry it captures when pressed
type CTA struct {
	Text    string             `json:"text"`
	Icon    string             `json:"icon"`
	Inquiry models.InquiryType `json:"inquiry"`
}

// IsForSale is true when either the category or the status says "For Sale"
func IsForSale(project *models.Project) bool {
	return project.Category == models.CategoryForSale || project.Status == models.StatusForSale
}

func IsInvestment(project *models.Project) bool {
	return project.Category == models.CategoryInvestment
}

// DeriveCTAs returns the primary and secondary buttons for a project.
// For Sale wins over Investment when both apply.
func DeriveCTAs(project *models.Project) (primary, secondary CTA) {
	switch {
	case IsForSale(project):
		return CTA{Text: "Purchase License", Icon: "shopping-cart", Inquiry: models.InquiryPurchase},
			CTA{Text: "Request Demo", Icon: "play", Inquiry: models.InquiryDemo}
	case IsInvestment(project):
		return CTA{Text: "View Demo", Icon: "play", Inquiry: models.InquiryDemo},
			CTA{Text: "Investment Info", Icon: "trending-up", Inquiry: models.InquiryInvestment}
	default:
		return CTA{Text: "Learn More", Icon: "arrow-right", Inquiry: models.InquiryContact},
			CTA{Text: "Contact Us", Icon: "mail", Inquiry: models.InquiryContact}
	}
}

// FallbackActions are the two fixed buttons closing the fallback page,
// independent of DeriveCTAs
func FallbackActions() []CTA {
	return []CTA{
		{Text: "Contact Us", Icon: "mail", Inquiry: models.InquiryContact},
		{Text: "Request Demo", Icon: "play", Inquiry: models.InquiryDemo},
	}
}
