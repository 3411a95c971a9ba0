package internal

import "pitch/internal/domain"

// CardKey orders cards for Lowest and Highest.
type CardKey func(domain.Card) int

func ByRank(c domain.Card) int   { return c.Rank() }
func ByPoints(c domain.Card) int { return c.Points() }

// ByPointsThenRank orders by points and breaks ties on rank.
func ByPointsThenRank(c domain.Card) int { return c.Points()*100 + c.Rank() }

// Filter returns the cards matching keep, in order.
func Filter(cards []domain.Card, keep func(domain.Card) bool) []domain.Card {
	var out []domain.Card
	for _, c := range cards {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Trumps returns the cards that are trump for suit. NoTrump falls back to
// each card's own trump context.
func Trumps(cards []domain.Card, suit domain.Suit) []domain.Card {
	return Filter(cards, func(c domain.Card) bool { return c.IsTrump(suit) })
}

// WithRank returns the cards whose current rank is rank.
func WithRank(cards []domain.Card, rank int) []domain.Card {
	return Filter(cards, func(c domain.Card) bool { return c.Rank() == rank })
}

// WithPoints returns the cards worth exactly points.
func WithPoints(cards []domain.Card, points int) []domain.Card {
	return Filter(cards, func(c domain.Card) bool { return c.Points() == points })
}

// Lowest returns the first card with the minimum key.
func Lowest(cards []domain.Card, key CardKey) (domain.Card, bool) {
	if len(cards) == 0 {
		return domain.Card{}, false
	}
	best := cards[0]
	for _, c := range cards[1:] {
		if key(c) < key(best) {
			best = c
		}
	}
	return best, true
}

// Highest returns the first card with the maximum key.
func Highest(cards []domain.Card, key CardKey) (domain.Card, bool) {
	if len(cards) == 0 {
		return domain.Card{}, false
	}
	best := cards[0]
	for _, c := range cards[1:] {
		if key(c) > key(best) {
			best = c
		}
	}
	return best, true
}

// First returns cards[0], if any.
func First(cards []domain.Card) (domain.Card, bool) {
	if len(cards) == 0 {
		return domain.Card{}, false
	}
	return cards[0], true
}

// MaxPlayedRank is the highest rank among the played cards, skipping gaps.
// It is 0 for an empty trick.
func MaxPlayedRank(trick []*domain.Card) int {
	highest := 0
	for _, c := range trick {
		if c != nil && c.Rank() > highest {
			highest = c.Rank()
		}
	}
	return highest
}
