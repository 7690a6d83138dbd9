package catalog

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{1,63}$`)

// Catalog is the immutable, ordered list of guessable dyes. Order matters:
// the daily selector indexes into it by position.
type Catalog struct {
	dyes   []Dye
	byID   map[string]int
	byName map[string]int
}

type catalogFile struct {
	Dyes []Dye `yaml:"dyes"`
}

// Load parses and validates the catalog embedded in the binary.
func Load() (*Catalog, error) {
	return Parse(embeddedDyes)
}

// Parse builds a catalog from raw YAML.
func Parse(raw []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Dyes) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	c := &Catalog{
		dyes:   file.Dyes,
		byID:   make(map[string]int, len(file.Dyes)),
		byName: make(map[string]int, len(file.Dyes)),
	}
	for i, d := range c.dyes {
		if err := validateDye(d); err != nil {
			return nil, fmt.Errorf("dye %d (%s): %w", i, d.ID, err)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate dye id %q", d.ID)
		}
		name := strings.ToLower(d.DisplayName)
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("duplicate dye name %q", d.DisplayName)
		}
		c.byID[d.ID] = i
		c.byName[name] = i
	}
	return c, nil
}

func validateDye(d Dye) error {
	if !idPattern.MatchString(d.ID) {
		return fmt.Errorf("invalid id %q", d.ID)
	}
	if strings.TrimSpace(d.DisplayName) == "" {
		return fmt.Errorf("display_name is required")
	}
	if position(colorFamilies, d.ColorFamily) < 0 {
		return fmt.Errorf("invalid color_family %q", d.ColorFamily)
	}
	if TierPosition(d.UsageTier) < 0 {
		return fmt.Errorf("invalid usage_tier %q", d.UsageTier)
	}
	if RiskPosition(d.RiskFlag) < 0 {
		return fmt.Errorf("invalid risk_flag %q", d.RiskFlag)
	}
	if RegPosition(d.RegulatoryStatus) < 0 {
		return fmt.Errorf("invalid regulatory_status %q", d.RegulatoryStatus)
	}
	for _, cat := range d.CommonCategories {
		if position(foodCategories, cat) < 0 {
			return fmt.Errorf("invalid category %q", cat)
		}
	}
	return nil
}

// Len returns the number of dyes.
func (c *Catalog) Len() int { return len(c.dyes) }

// At returns the dye at position i.
func (c *Catalog) At(i int) Dye { return c.dyes[i] }

// Entries returns a copy of the ordered dye list.
func (c *Catalog) Entries() []Dye {
	out := make([]Dye, len(c.dyes))
	copy(out, c.dyes)
	return out
}

// ByID looks a dye up by identifier.
func (c *Catalog) ByID(id string) (Dye, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Dye{}, false
	}
	return c.dyes[i], true
}

// ByName looks a dye up by display name, case-insensitively.
func (c *Catalog) ByName(name string) (Dye, bool) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Dye{}, false
	}
	return c.dyes[i], true
}

// Names returns every display name in catalog order, for input completion.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.dyes))
	for i, d := range c.dyes {
		out[i] = d.DisplayName
	}
	return out
}

// Suggest returns up to max display names closest to the (unmatched) input,
// nearest first. Names further than half the input length away are not
// worth offering.
func (c *Catalog) Suggest(input string, max int) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || max <= 0 {
		return nil
	}
	cutoff := len(input)/2 + 1
	type scored struct {
		name string
		dist int
	}
	var candidates []scored
	for _, d := range c.dyes {
		dist := levenshtein.ComputeDistance(input, strings.ToLower(d.DisplayName))
		if dist <= cutoff {
			candidates = append(candidates, scored{name: d.DisplayName, dist: dist})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })
	if len(candidates) > max {
		candidates = candidates[:max]
	}
	out := make([]string, len(candidates))
	for i, s := range candidates {
		out[i] = s.name
	}
	return out
}
