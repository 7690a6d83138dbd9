package game

// MaxAttempts is the guess ceiling before a forced loss.
const MaxAttempts = 4

// ProductName prefixes share messages.
const ProductName = "DYELE"

// Feedback is the per-attribute verdict for one guess.
type Feedback string

const (
	FeedbackMatch    Feedback = "match"
	FeedbackPartial  Feedback = "partial"
	FeedbackNoMatch  Feedback = "no-match"
	FeedbackHigher   Feedback = "higher"
	FeedbackLower    Feedback = "lower"
	FeedbackStricter Feedback = "stricter"
	FeedbackLooser   Feedback = "looser"
)

// AttributeKey identifies one compared attribute. The JSON names are a
// compatibility contract: legacy per-day records carry them and the history
// migration reads them back.
type AttributeKey string

const (
	AttrColorFamily      AttributeKey = "colorFamily"
	AttrUsageTier        AttributeKey = "usageTier"
	AttrRiskFlag         AttributeKey = "riskFlag"
	AttrRegulatoryStatus AttributeKey = "regulatoryStatus"
	AttrCommonCategories AttributeKey = "commonCategories"
)

// AttributeMeta describes one attribute's fixed position in the feedback row.
// Hidden attributes are scored but left out of the share grid: the color
// family would give the answer away in one glance.
type AttributeMeta struct {
	Key    AttributeKey
	Label  string
	Hidden bool
}

// Attributes is the fixed comparison/display order.
var Attributes = []AttributeMeta{
	{Key: AttrColorFamily, Label: "Color", Hidden: true},
	{Key: AttrUsageTier, Label: "Usage"},
	{Key: AttrRiskFlag, Label: "Risk"},
	{Key: AttrRegulatoryStatus, Label: "Regulation"},
	{Key: AttrCommonCategories, Label: "Foods"},
}

// VisibleAttributes returns the attributes shown in the share grid, in order.
func VisibleAttributes() []AttributeMeta {
	out := make([]AttributeMeta, 0, len(Attributes))
	for _, a := range Attributes {
		if !a.Hidden {
			out = append(out, a)
		}
	}
	return out
}

type AttributeFeedback struct {
	Key   AttributeKey `json:"key"`
	Value Feedback     `json:"value"`
}

// Guess is one accepted submission with its computed feedback. Immutable
// once created.
type Guess struct {
	DyeID    string              `json:"dyeId"`
	Feedback []AttributeFeedback `json:"feedback"`
}

// Status is the session outcome so far.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Terminal reports whether s is an absorbing state.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

// GameState is the persisted shape of one day's progress.
type GameState struct {
	DayKey           string  `json:"dateKey"`
	Guesses          []Guess `json:"guesses"`
	Status           Status  `json:"status"`
	ResultsDismissed bool    `json:"resultsDismissed,omitempty"`
}

// HistoryEntry is one row of the cross-day ledger. Daily entries are keyed by
// day key; practice entries by an RFC3339 timestamp so they never collide.
type HistoryEntry struct {
	DayKey    string `json:"dateKey"`
	Status    Status `json:"status"`
	Attempts  int    `json:"attempts"`
	ShareGrid string `json:"shareGrid"`
	Practice  bool   `json:"isPractice,omitempty"`
}
