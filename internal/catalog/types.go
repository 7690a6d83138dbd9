package catalog

// ColorFamily is the unordered color bucket a dye belongs to.
type ColorFamily string

const (
	ColorRed    ColorFamily = "red"
	ColorYellow ColorFamily = "yellow"
	ColorBlue   ColorFamily = "blue"
	ColorGreen  ColorFamily = "green"
	ColorOther  ColorFamily = "other"
)

// Tier is how widely a dye is used in commercial food products.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// RiskFlag is the health-concern level attached to a dye.
type RiskFlag string

const (
	RiskNone    RiskFlag = "none"
	RiskCaution RiskFlag = "caution"
	RiskHigh    RiskFlag = "high"
)

// RegulatoryStatus tracks how regulators treat a dye, ordered from most
// permissive to most restrictive.
type RegulatoryStatus string

const (
	RegAllowed    RegulatoryStatus = "allowed"
	RegWarning    RegulatoryStatus = "warning"
	RegRestricted RegulatoryStatus = "restricted"
	RegBanned     RegulatoryStatus = "banned"
)

// FoodCategory is a product category a dye commonly shows up in.
// CategoryMixed is the wildcard: a dye tagged "mixed" turns up everywhere, so
// it always yields at least a partial overlap when compared.
type FoodCategory string

const (
	CategoryCandy     FoodCategory = "candy"
	CategoryBeverages FoodCategory = "beverages"
	CategoryCereal    FoodCategory = "cereal"
	CategorySnacks    FoodCategory = "snacks"
	CategoryBaked     FoodCategory = "baked"
	CategoryDairy     FoodCategory = "dairy"
	CategoryMixed     FoodCategory = "mixed"
)

var (
	colorFamilies = []ColorFamily{ColorRed, ColorYellow, ColorBlue, ColorGreen, ColorOther}

	// Ordinal scales. Slice position is the comparison rank.
	TierScale = []Tier{TierLow, TierMedium, TierHigh}
	RiskScale = []RiskFlag{RiskNone, RiskCaution, RiskHigh}
	RegScale  = []RegulatoryStatus{RegAllowed, RegWarning, RegRestricted, RegBanned}

	foodCategories = []FoodCategory{
		CategoryCandy, CategoryBeverages, CategoryCereal, CategorySnacks,
		CategoryBaked, CategoryDairy, CategoryMixed,
	}
)

// TierPosition returns the rank of t on the usage scale, or -1 if t is not a
// declared tier.
func TierPosition(t Tier) int { return position(TierScale, t) }

// RiskPosition returns the rank of r on the risk scale, or -1 if unknown.
func RiskPosition(r RiskFlag) int { return position(RiskScale, r) }

// RegPosition returns the rank of r on the regulatory scale, or -1 if unknown.
func RegPosition(r RegulatoryStatus) int { return position(RegScale, r) }

func position[T comparable](scale []T, v T) int {
	for i, s := range scale {
		if s == v {
			return i
		}
	}
	return -1
}

// Source cites where a dye's facts come from.
type Source struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url,omitempty"`
}

// Dye is one guessable catalog entry. Entries are immutable once loaded.
type Dye struct {
	ID               string           `yaml:"id"`
	DisplayName      string           `yaml:"display_name"`
	CodeName         string           `yaml:"code_name,omitempty"`
	ColorHex         string           `yaml:"color_hex,omitempty"`
	ColorFamily      ColorFamily      `yaml:"color_family"`
	UsageTier        Tier             `yaml:"usage_tier"`
	RiskFlag         RiskFlag         `yaml:"risk_flag"`
	RegulatoryStatus RegulatoryStatus `yaml:"regulatory_status"`
	CommonCategories []FoodCategory   `yaml:"common_categories"`
	Facts            []string         `yaml:"facts,omitempty"`
	Sources          []Source         `yaml:"sources,omitempty"`
}

// HasCategory reports whether the dye carries the given category tag.
func (d Dye) HasCategory(c FoodCategory) bool {
	for _, have := range d.CommonCategories {
		if have == c {
			return true
		}
	}
	return false
}
