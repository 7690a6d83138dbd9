package game

import (
	"fmt"

	"dyele/internal/catalog"
)

// Compare scores a guessed dye against the target, one AttributeFeedback per
// declared attribute in fixed order. Pure function.
//
// Direction convention: ordinal feedback describes the target relative to the
// guess. A guess ranked below the target reads "higher" (the target is higher
// than you guessed); above reads "lower". The regulatory scale uses
// "stricter"/"looser" with the same positional rule.
func Compare(guess, target catalog.Dye) []AttributeFeedback {
	color := FeedbackNoMatch
	if guess.ColorFamily == target.ColorFamily {
		color = FeedbackMatch
	}

	return []AttributeFeedback{
		{Key: AttrColorFamily, Value: color},
		{Key: AttrUsageTier, Value: compareOrdinal(
			catalog.TierPosition(guess.UsageTier), catalog.TierPosition(target.UsageTier),
			FeedbackHigher, FeedbackLower)},
		{Key: AttrRiskFlag, Value: compareOrdinal(
			catalog.RiskPosition(guess.RiskFlag), catalog.RiskPosition(target.RiskFlag),
			FeedbackHigher, FeedbackLower)},
		{Key: AttrRegulatoryStatus, Value: compareOrdinal(
			catalog.RegPosition(guess.RegulatoryStatus), catalog.RegPosition(target.RegulatoryStatus),
			FeedbackStricter, FeedbackLooser)},
		{Key: AttrCommonCategories, Value: compareCategories(guess, target)},
	}
}

func compareOrdinal(guessPos, targetPos int, above, below Feedback) Feedback {
	if guessPos < 0 || targetPos < 0 {
		// Validated at catalog load; reaching this is a programmer error.
		panic(fmt.Sprintf("game: ordinal value off scale (guess=%d target=%d)", guessPos, targetPos))
	}
	switch {
	case guessPos == targetPos:
		return FeedbackMatch
	case guessPos < targetPos:
		return above
	default:
		return below
	}
}

func compareCategories(guess, target catalog.Dye) Feedback {
	for _, c := range guess.CommonCategories {
		if target.HasCategory(c) {
			return FeedbackMatch
		}
	}
	if guess.HasCategory(catalog.CategoryMixed) || target.HasCategory(catalog.CategoryMixed) {
		return FeedbackPartial
	}
	return FeedbackNoMatch
}
