package domain

import (
	"fmt"
	"sort"
)

// Hand is an ordered collection of cards without duplicate identities.
type Hand struct {
	cards []Card
}

// NewHand builds a hand from cards, dropping repeated identities.
func NewHand(cards ...Card) *Hand {
	h := &Hand{}
	h.AddCards(cards...)
	return h
}

// Cards returns a copy of the hand's cards in order.
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

func (h *Hand) Len() int       { return len(h.cards) }
func (h *Hand) IsEmpty() bool  { return len(h.cards) == 0 }
func (h *Hand) At(i int) Card  { return h.cards[i] }
func (h *Hand) String() string { return joinCards(h.cards) }

// Contains reports whether a card with the same identity is held.
func (h *Hand) Contains(c Card) bool {
	return h.indexOf(c) >= 0
}

func (h *Hand) indexOf(c Card) int {
	for i, hc := range h.cards {
		if hc.SameIdentity(c) {
			return i
		}
	}
	return -1
}

// Lookup returns the held card with c's identity, carrying the hand's trump state.
func (h *Hand) Lookup(c Card) (Card, bool) {
	if i := h.indexOf(c); i >= 0 {
		return h.cards[i], true
	}
	return Card{}, false
}

// SetTrump applies the trump context to every card.
func (h *Hand) SetTrump(suit Suit) {
	for i := range h.cards {
		h.cards[i].SetTrump(suit)
	}
}

// TrumpCards returns the cards that are trump for suit (NoTrump uses each card's own trump).
func (h *Hand) TrumpCards(suit Suit) []Card {
	var out []Card
	for _, c := range h.cards {
		if c.IsTrump(suit) {
			out = append(out, c)
		}
	}
	return out
}

// SortByRank orders cards by descending rank, keeping the relative order of ties.
func (h *Hand) SortByRank() {
	sortByRankDesc(h.cards)
}

var suitOrder = map[Suit]int{Spades: 0, Hearts: 1, Clubs: 2, Diamonds: 3, Joker: 4}

// SortBySuitAndRank groups by suit (Spades, Hearts, Clubs, Diamonds, Joker)
// and orders each group by descending rank.
func (h *Hand) SortBySuitAndRank() {
	sort.SliceStable(h.cards, func(i, j int) bool {
		si, sj := suitOrder[h.cards[i].Suit()], suitOrder[h.cards[j].Suit()]
		if si != sj {
			return si < sj
		}
		return h.cards[i].Rank() > h.cards[j].Rank()
	})
}

// ReplaceCards discards the current cards and holds cards instead.
func (h *Hand) ReplaceCards(cards []Card) {
	h.cards = nil
	h.AddCards(cards...)
}

// AddCards appends cards whose identity is not already held.
func (h *Hand) AddCards(cards ...Card) {
	for _, c := range cards {
		if !h.Contains(c) {
			h.cards = append(h.cards, c)
		}
	}
}

// RemoveCards drops every held card matching one of cards by identity.
func (h *Hand) RemoveCards(cards ...Card) {
	kept := h.cards[:0]
	for _, hc := range h.cards {
		remove := false
		for _, c := range cards {
			if hc.SameIdentity(c) {
				remove = true
				break
			}
		}
		if !remove {
			kept = append(kept, hc)
		}
	}
	h.cards = kept
}

// DiscardAll empties the hand.
func (h *Hand) DiscardAll() {
	h.cards = nil
}

// DiscardNonTrumps keeps only the trump cards for suit. With more than
// MaxHandSize trumps every point card is kept and the remaining slots go to
// the highest non-point trumps. A bidder left short is padded back to
// MaxHandSize from the non-trumps it held, in dealt order. The result is
// sorted by descending rank. A hand that still exceeds MaxHandSize returns
// a *MisdealError and is left in its pruned state.
func (h *Hand) DiscardNonTrumps(suit Suit, isBidder bool) error {
	h.SetTrump(suit)

	var trumps, nonTrumps []Card
	for _, c := range h.cards {
		if c.IsTrump(suit) {
			trumps = append(trumps, c)
		} else if isBidder {
			nonTrumps = append(nonTrumps, c)
		}
	}

	if len(trumps) > MaxHandSize {
		var pointCards, nonPointCards []Card
		for _, c := range trumps {
			if c.Points() > 0 {
				pointCards = append(pointCards, c)
			} else {
				nonPointCards = append(nonPointCards, c)
			}
		}
		sortByRankDesc(nonPointCards)
		open := max(MaxHandSize-len(pointCards), 0)
		trumps = append(pointCards, nonPointCards[:min(open, len(nonPointCards))]...)
	}

	if isBidder && len(trumps) < MaxHandSize {
		need := MaxHandSize - len(trumps)
		trumps = append(trumps, nonTrumps[:min(need, len(nonTrumps))]...)
	}

	h.cards = trumps
	h.SortByRank()

	if len(h.cards) > MaxHandSize {
		return &MisdealError{Cards: h.Cards()}
	}
	return nil
}

func sortByRankDesc(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Rank() > cards[j].Rank()
	})
}

// GoString is used by %#v in test failures.
func (h *Hand) GoString() string {
	return fmt.Sprintf("Hand(%s)", h.String())
}
