package showcase

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rpupo63/storefront-site-backend/models"
)

// SectionKind identifies one block of a project page
type SectionKind string

const (
	SectionHero       SectionKind = "hero"
	SectionOverview   SectionKind = "overview"
	SectionFeatures   SectionKind = "features"
	SectionUseCases   SectionKind = "use_cases"
	SectionInvestment SectionKind = "investment"
	SectionPurchase   SectionKind = "purchase"
	SectionStats      SectionKind = "stats"
	SectionDetails    SectionKind = "details"
)

const (
	seekingFallback      = "Contact for details"
	defaultLicensePeriod = "Full License"
)

func defaultIncludes() []string {
	return []string{"Source code", "Documentation", "Support"}
}

// Section is one rendered block; only the member matching Kind is set
type Section struct {
	Kind       SectionKind         `json:"kind"`
	Hero       *Hero               `json:"hero,omitempty"`
	Overview   *Overview           `json:"overview,omitempty"`
	Features   []models.KeyFeature `json:"features,omitempty"`
	UseCases   []models.UseCase    `json:"use_cases,omitempty"`
	Investment *InvestmentPanel    `json:"investment,omitempty"`
	Purchase   *PurchasePanel      `json:"purchase,omitempty"`
	Stats      []models.Stat       `json:"stats,omitempty"`
	Details    *DetailsCard        `json:"details,omitempty"`
}

type Hero struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     models.Category `json:"category"`
	Status       models.Status   `json:"status"`
	ImageURL     string          `json:"image_url,omitempty"`
	PrimaryCTA   CTA             `json:"primary_cta"`
	SecondaryCTA CTA             `json:"secondary_cta"`
	Minimal      bool            `json:"minimal"`
}

type Overview struct {
	Title      string             `json:"title"`
	Text       string             `json:"text"`
	Highlights []models.Highlight `json:"highlights,omitempty"`
}

// InvestmentPanel values are computed for display only and never written back
type InvestmentPanel struct {
	Seeking            string  `json:"seeking"`
	InvestmentAmount   float64 `json:"investment_amount"`
	InvestmentReceived float64 `json:"investment_received"`
	ProgressPercent    int     `json:"progress_percent"`
	MarketSize         string  `json:"market_size,omitempty"`
	Timeline           string  `json:"timeline,omitempty"`
	ProjectedROI       string  `json:"projected_roi,omitempty"`
}

type Pricing struct {
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
	Period  string  `json:"period"`
}

type PurchasePanel struct {
	Pricing  Pricing  `json:"pricing"`
	Includes []string `json:"includes"`
}

// DetailsCard is the summary block of the fallback page
type DetailsCard struct {
	Category          models.Category `json:"category"`
	Status            models.Status   `json:"status"`
	InvestmentAmount  *float64        `json:"investment_amount,omitempty"`
	InvestmentDisplay string          `json:"investment_display,omitempty"`
	Price             *float64        `json:"price,omitempty"`
	PriceDisplay      string          `json:"price_display,omitempty"`
}

// RenderPlan is everything a view needs to draw a project page
type RenderPlan struct {
	Template     Shape     `json:"template"`
	ProjectID    uuid.UUID `json:"project_id"`
	Title        string    `json:"title"`
	Route        string    `json:"route"`
	PrimaryCTA   CTA       `json:"primary_cta"`
	SecondaryCTA CTA       `json:"secondary_cta"`
	Sections     []Section `json:"sections"`
	Actions      []CTA     `json:"actions,omitempty"`
}

// Section returns the first section of the given kind
func (p RenderPlan) Section(kind SectionKind) (Section, bool) {
	for _, s := range p.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

func (p RenderPlan) Has(kind SectionKind) bool {
	_, ok := p.Section(kind)
	return ok
}

// Kinds lists section kinds in render order
func (p RenderPlan) Kinds() []SectionKind {
	kinds := make([]SectionKind, len(p.Sections))
	for i, s := range p.Sections {
		kinds[i] = s.Kind
	}
	return kinds
}

// Compose builds the render plan for project using the template picked by shape
func Compose(project *models.Project, shape Shape) RenderPlan {
	primary, secondary := DeriveCTAs(project)

	plan := RenderPlan{
		Template:     shape,
		ProjectID:    project.ID,
		Title:        project.Name,
		Route:        ResolvedRoute(project),
		PrimaryCTA:   primary,
		SecondaryCTA: secondary,
	}

	if shape == Rich {
		plan.Sections = richSections(project, primary, secondary)
		return plan
	}

	plan.Sections = []Section{
		{Kind: SectionHero, Hero: hero(project, primary, secondary, true)},
		{Kind: SectionDetails, Details: detailsCard(project)},
	}
	plan.Actions = FallbackActions()
	return plan
}

// richSections are purely additive: a missing field drops exactly its section
func richSections(project *models.Project, primary, secondary CTA) []Section {
	sections := []Section{{Kind: SectionHero, Hero: hero(project, primary, secondary, false)}}

	content := project.Content.Data()
	if content.Overview != "" {
		title := content.Title
		if title == "" {
			title = "Overview"
		}
		sections = append(sections, Section{Kind: SectionOverview, Overview: &Overview{
			Title:      title,
			Text:       content.Overview,
			Highlights: content.Highlights,
		}})
	}

	if len(project.KeyFeatures) > 0 {
		sections = append(sections, Section{Kind: SectionFeatures, Features: project.KeyFeatures})
	}

	if len(project.UseCases) > 0 {
		sections = append(sections, Section{Kind: SectionUseCases, UseCases: project.UseCases})
	}

	if IsInvestment(project) {
		sections = append(sections, Section{Kind: SectionInvestment, Investment: investmentPanel(project)})
	}

	if panel, ok := purchasePanel(project); ok {
		sections = append(sections, Section{Kind: SectionPurchase, Purchase: panel})
	}

	if len(project.Stats) > 0 {
		sections = append(sections, Section{Kind: SectionStats, Stats: project.Stats})
	}

	return sections
}

func hero(project *models.Project, primary, secondary CTA, minimal bool) *Hero {
	h := &Hero{
		Name:         project.Name,
		Description:  project.Description,
		Category:     project.Category,
		Status:       project.Status,
		PrimaryCTA:   primary,
		SecondaryCTA: secondary,
		Minimal:      minimal,
	}
	if project.HeroImageURL != nil && !minimal {
		h.ImageURL = *project.HeroImageURL
	}
	return h
}

func investmentPanel(project *models.Project) *InvestmentPanel {
	info := project.PurchaseInfo.Data()

	panel := &InvestmentPanel{
		Seeking:            seeking(info, project.InvestmentAmount),
		InvestmentAmount:   valueOrZero(project.InvestmentAmount),
		InvestmentReceived: valueOrZero(project.InvestmentReceived),
		MarketSize:         info.MarketSize.String(),
		Timeline:           info.Timeline.String(),
		ProjectedROI:       info.ProjectedROI.String(),
	}
	if panel.InvestmentAmount > 0 {
		percent := math.Round(panel.InvestmentReceived / panel.InvestmentAmount * 100)
		panel.ProgressPercent = int(math.Max(0, math.Min(100, percent)))
	}
	return panel
}

// seeking prefers purchase_info.investment_amount, then the project column
func seeking(info models.PurchaseInfo, amount *float64) string {
	if info.InvestmentAmount != "" {
		if v, ok := info.InvestmentAmount.Float(); ok {
			return FormatCurrency(v)
		}
		return info.InvestmentAmount.String()
	}
	if present(amount) {
		return FormatCurrency(*amount)
	}
	return seekingFallback
}

// purchasePanel is only offered for sale items carrying a price
func purchasePanel(project *models.Project) (*PurchasePanel, bool) {
	if !IsForSale(project) || !present(project.Price) {
		return nil, false
	}

	info := project.PurchaseInfo.Data()
	period := info.LicenseType
	if period == "" {
		period = defaultLicensePeriod
	}
	includes := info.Includes
	if includes == nil {
		includes = defaultIncludes()
	}

	return &PurchasePanel{
		Pricing: Pricing{
			Amount:  *project.Price,
			Display: FormatCurrency(*project.Price),
			Period:  period,
		},
		Includes: includes,
	}, true
}

func detailsCard(project *models.Project) *DetailsCard {
	card := &DetailsCard{Category: project.Category, Status: project.Status}
	if present(project.InvestmentAmount) {
		card.InvestmentAmount = project.InvestmentAmount
		card.InvestmentDisplay = FormatCurrency(*project.InvestmentAmount)
	}
	if present(project.Price) {
		card.Price = project.Price
		card.PriceDisplay = FormatCurrency(*project.Price)
	}
	return card
}

// present treats nil and zero amounts as absent
func present(v *float64) bool {
	return v != nil && *v != 0
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// FormatCurrency renders a dollar amount with thousands separators,
// dropping cents on whole amounts
func FormatCurrency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	if v == math.Trunc(v) && v < math.MaxInt64 {
		return sign + "$" + humanize.Comma(int64(v))
	}
	return sign + "$" + humanize.CommafWithDigits(v, 2)
}
