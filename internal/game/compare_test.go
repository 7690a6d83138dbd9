package game

import (
	"testing"

	"dyele/internal/catalog"
)

func dye(id string, color catalog.ColorFamily, tier catalog.Tier, risk catalog.RiskFlag, reg catalog.RegulatoryStatus, cats ...catalog.FoodCategory) catalog.Dye {
	return catalog.Dye{
		ID:               id,
		DisplayName:      id,
		ColorFamily:      color,
		UsageTier:        tier,
		RiskFlag:         risk,
		RegulatoryStatus: reg,
		CommonCategories: cats,
	}
}

func feedbackMap(t *testing.T, fbs []AttributeFeedback) map[AttributeKey]Feedback {
	t.Helper()
	if len(fbs) != len(Attributes) {
		t.Fatalf("expected %d feedback entries, got %d", len(Attributes), len(fbs))
	}
	out := map[AttributeKey]Feedback{}
	for i, fb := range fbs {
		if fb.Key != Attributes[i].Key {
			t.Fatalf("feedback %d out of order: got %s want %s", i, fb.Key, Attributes[i].Key)
		}
		out[fb.Key] = fb.Value
	}
	return out
}

func TestCompareExactMatch(t *testing.T) {
	d := dye("same", catalog.ColorRed, catalog.TierHigh, catalog.RiskCaution, catalog.RegWarning, catalog.CategoryCandy)
	got := feedbackMap(t, Compare(d, d))
	for key, v := range got {
		if v != FeedbackMatch {
			t.Fatalf("%s = %s, want match", key, v)
		}
	}
}

func TestCompareOrdinalDirections(t *testing.T) {
	target := dye("t", catalog.ColorRed, catalog.TierHigh, catalog.RiskNone, catalog.RegAllowed, catalog.CategoryCandy)

	low := dye("g", catalog.ColorRed, catalog.TierLow, catalog.RiskHigh, catalog.RegBanned, catalog.CategoryCandy)
	got := feedbackMap(t, Compare(low, target))
	// Target tier is above the guess: the hint points higher, not lower.
	if got[AttrUsageTier] != FeedbackHigher {
		t.Fatalf("usage = %s, want higher", got[AttrUsageTier])
	}
	if got[AttrRiskFlag] != FeedbackLower {
		t.Fatalf("risk = %s, want lower", got[AttrRiskFlag])
	}
	if got[AttrRegulatoryStatus] != FeedbackLooser {
		t.Fatalf("regulation = %s, want looser", got[AttrRegulatoryStatus])
	}

	high := dye("g2", catalog.ColorRed, catalog.TierHigh, catalog.RiskNone, catalog.RegAllowed, catalog.CategoryCandy)
	got = feedbackMap(t, Compare(high, target))
	if got[AttrUsageTier] != FeedbackMatch {
		t.Fatalf("usage = %s, want match", got[AttrUsageTier])
	}

	stricter := dye("g3", catalog.ColorRed, catalog.TierHigh, catalog.RiskNone, catalog.RegAllowed, catalog.CategoryCandy)
	target2 := dye("t2", catalog.ColorRed, catalog.TierHigh, catalog.RiskNone, catalog.RegRestricted, catalog.CategoryCandy)
	got = feedbackMap(t, Compare(stricter, target2))
	if got[AttrRegulatoryStatus] != FeedbackStricter {
		t.Fatalf("regulation = %s, want stricter", got[AttrRegulatoryStatus])
	}
}

func TestCompareNominalColor(t *testing.T) {
	target := dye("t", catalog.ColorBlue, catalog.TierLow, catalog.RiskNone, catalog.RegAllowed)
	guess := dye("g", catalog.ColorGreen, catalog.TierLow, catalog.RiskNone, catalog.RegAllowed)
	got := feedbackMap(t, Compare(guess, target))
	if got[AttrColorFamily] != FeedbackNoMatch {
		t.Fatalf("color = %s, want no-match", got[AttrColorFamily])
	}
}

func TestCompareCategoryOverlapAndWildcard(t *testing.T) {
	base := func(cats ...catalog.FoodCategory) catalog.Dye {
		return dye("d", catalog.ColorRed, catalog.TierLow, catalog.RiskNone, catalog.RegAllowed, cats...)
	}

	target := base(catalog.CategoryCandy, catalog.CategoryMixed)
	guess := base(catalog.CategoryBeverages)
	got := feedbackMap(t, Compare(guess, target))
	if got[AttrCommonCategories] != FeedbackPartial {
		t.Fatalf("disjoint sets with wildcard: got %s, want partial", got[AttrCommonCategories])
	}

	guess = base(catalog.CategoryCandy)
	got = feedbackMap(t, Compare(guess, target))
	if got[AttrCommonCategories] != FeedbackMatch {
		t.Fatalf("overlapping sets: got %s, want match", got[AttrCommonCategories])
	}

	target = base(catalog.CategoryCandy)
	guess = base(catalog.CategoryCereal)
	got = feedbackMap(t, Compare(guess, target))
	if got[AttrCommonCategories] != FeedbackNoMatch {
		t.Fatalf("disjoint sets, no wildcard: got %s, want no-match", got[AttrCommonCategories])
	}

	target = base()
	guess = base(catalog.CategoryMixed)
	got = feedbackMap(t, Compare(guess, target))
	if got[AttrCommonCategories] != FeedbackPartial {
		t.Fatalf("wildcard on guess side: got %s, want partial", got[AttrCommonCategories])
	}
}

func TestComparePanicsOffScale(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for off-scale ordinal")
		}
	}()
	bad := dye("bad", catalog.ColorRed, catalog.Tier("enormous"), catalog.RiskNone, catalog.RegAllowed)
	ok := dye("ok", catalog.ColorRed, catalog.TierLow, catalog.RiskNone, catalog.RegAllowed)
	Compare(bad, ok)
}
