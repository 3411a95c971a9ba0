package bot

import (
	"math/rand"
	"slices"

	"pitch/internal/bot/internal"
	"pitch/internal/domain"
)

// Ranks with special handling during play.
const (
	rankAce = 17
	rankTwo = 2
	rankOff = 2 // anything below is an off-suit card
)

// NewRandomStrategy plays a random trump when trump was led and one is held,
// otherwise any random card.
func NewRandomStrategy(rng *rand.Rand) PlayStrategy {
	return NewFuncStrategy("random", func(cards []domain.Card, ctx TrickContext) (domain.Card, bool) {
		if trumps := internal.Trumps(cards, ctx.Trump); ctx.TrumpLed && len(trumps) > 0 {
			return trumps[rng.Intn(len(trumps))], true
		}
		return cards[rng.Intn(len(cards))], true
	})
}

func playFirst(cards []domain.Card, _ TrickContext) (domain.Card, bool) {
	return internal.First(cards)
}

func playHighest(cards []domain.Card, _ TrickContext) (domain.Card, bool) {
	return internal.Highest(cards, internal.ByRank)
}

func playLowest(cards []domain.Card, ctx TrickContext) (domain.Card, bool) {
	if ctx.TrumpLed {
		if c, ok := internal.Lowest(internal.Trumps(cards, ctx.Trump), internal.ByRank); ok {
			return c, true
		}
	}
	return internal.Lowest(cards, internal.ByRank)
}

func playHighestNoPoint(cards []domain.Card, ctx TrickContext) (domain.Card, bool) {
	zero := internal.WithPoints(internal.Trumps(cards, ctx.Trump), 0)
	if c, ok := internal.Highest(zero, internal.ByRank); ok {
		return c, true
	}
	return internal.Highest(cards, internal.ByRank)
}

// playHighestPoints gives up the most valuable card that can still be caught:
// the top point tier without the Ace, and the 2 only when nothing else is left.
func playHighestPoints(cards []domain.Card, ctx TrickContext) (domain.Card, bool) {
	pointCards := internal.Filter(cards, func(c domain.Card) bool { return c.Points() > 0 })
	if top, ok := internal.Highest(pointCards, internal.ByPoints); ok {
		tier := internal.Filter(internal.WithPoints(pointCards, top.Points()), func(c domain.Card) bool {
			return c.Rank() != rankAce
		})
		catchable := internal.Filter(tier, func(c domain.Card) bool { return c.Rank() != rankTwo })
		if c, ok := internal.Lowest(catchable, internal.ByRank); ok {
			return c, true
		}
		if c, ok := internal.Lowest(tier, internal.ByRank); ok {
			return c, true
		}
	}
	if ctx.TrumpLed {
		if c, ok := internal.Lowest(internal.Trumps(cards, ctx.Trump), internal.ByPointsThenRank); ok {
			return c, true
		}
	}
	return internal.Lowest(cards, internal.ByRank)
}

// playJustHigher takes the trick as cheaply as possible. The 2 and 3 never
// beat a played trump so they are not candidates.
func playJustHigher(cards []domain.Card, ctx TrickContext) (domain.Card, bool) {
	played := internal.MaxPlayedRank(ctx.Trick)
	higher := internal.Filter(cards, func(c domain.Card) bool {
		return c.Rank() > played && c.Rank() != 2 && c.Rank() != 3
	})
	if c, ok := internal.Lowest(higher, internal.ByRank); ok {
		return c, true
	}
	return playLowestNoPoint(cards, ctx)
}

func playLowestNoPoint(cards []domain.Card, ctx TrickContext) (domain.Card, bool) {
	trumps := internal.Trumps(cards, ctx.Trump)
	if c, ok := internal.First(internal.WithRank(trumps, rankTwo)); ok {
		return c, true
	}
	if c, ok := internal.Lowest(internal.WithPoints(trumps, 0), internal.ByRank); ok {
		return c, true
	}
	if len(trumps) > 0 {
		// Keep the 3 for last.
		if c, ok := internal.Lowest(internal.WithPoints(trumps, 1), internal.ByRank); ok {
			return c, true
		}
		return internal.Lowest(trumps, internal.ByPoints)
	}
	return internal.Lowest(cards, internal.ByRank)
}

// catchableSingle reports a one-point card other than the 2 and the Ace.
func catchableSingle(c domain.Card) bool {
	return c.Points() == 1 && c.Rank() != rankTwo && c.Rank() != rankAce
}

func playSinglePoint(cards []domain.Card, ctx TrickContext) (domain.Card, bool) {
	if c, ok := internal.Lowest(internal.Filter(cards, catchableSingle), internal.ByRank); ok {
		return c, true
	}
	if c, ok := internal.First(internal.WithRank(cards, rankTwo)); ok {
		return c, true
	}
	if ctx.TrumpLed {
		trumps := internal.Trumps(cards, ctx.Trump)
		if c, ok := internal.Lowest(internal.WithPoints(trumps, 0), internal.ByRank); ok {
			return c, true
		}
		// Only the 3 or the Ace can be left here.
		if c, ok := internal.Lowest(trumps, internal.ByRank); ok {
			return c, true
		}
	}
	return internal.Lowest(cards, internal.ByRank)
}

func playSavePoint(cards []domain.Card, ctx TrickContext) (domain.Card, bool) {
	played := internal.MaxPlayedRank(ctx.Trick)
	saved := internal.Filter(cards, func(c domain.Card) bool {
		return catchableSingle(c) && c.Rank() > played
	})
	if c, ok := internal.Lowest(saved, internal.ByRank); ok {
		return c, true
	}
	return playOff(cards, ctx)
}

func playOff(cards []domain.Card, ctx TrickContext) (domain.Card, bool) {
	if !ctx.TrumpLed {
		if c, ok := internal.First(internal.Filter(cards, func(c domain.Card) bool { return c.Rank() < rankOff })); ok {
			return c, true
		}
	}
	if c, ok := internal.First(internal.WithRank(cards, rankTwo)); ok {
		return c, true
	}
	if c, ok := internal.Lowest(internal.WithPoints(cards, 0), internal.ByRank); ok {
		return c, true
	}
	if c, ok := internal.Lowest(internal.WithPoints(cards, 1), internal.ByRank); ok {
		return c, true
	}
	return internal.Lowest(cards, internal.ByRank)
}

// builtinPlays lists the deterministic strategies by name.
var builtinPlays = map[string]SelectFunc{
	"first":            playFirst,
	"highest":          playHighest,
	"lowest":           playLowest,
	"highest-no-point": playHighestNoPoint,
	"highest-points":   playHighestPoints,
	"just-higher":      playJustHigher,
	"lowest-no-point":  playLowestNoPoint,
	"single-point":     playSinglePoint,
	"save-point":       playSavePoint,
	"off":              playOff,
}

// BuiltinPlayStrategies returns the names of the built-in play strategies, sorted.
func BuiltinPlayStrategies() []string {
	names := []string{"random"}
	for name := range builtinPlays {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
