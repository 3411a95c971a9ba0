package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// Deck holds the undealt cards of the 54-card Pitch deck.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds a full deck drawing randomness from rng, or a time-seeded
// source when rng is nil.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d := &Deck{rng: rng}
	d.build()
	return d
}

// build appends Ace..King of Hearts, Diamonds, Clubs, Spades, then both jokers.
func (d *Deck) build() {
	suits := []Suit{Hearts, Diamonds, Clubs, Spades}
	names := []string{"Ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King"}
	d.cards = make([]Card, 0, DeckSize)
	for _, s := range suits {
		for _, n := range names {
			d.cards = append(d.cards, MustCard(n, s))
		}
	}
	d.cards = append(d.cards, MustCard("Big", Joker), MustCard("Little", Joker))
}

// Cards returns a copy of the undealt cards.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Remaining returns how many cards are left.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Shuffle reorders the undealt cards.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

// Draw removes and returns the last card, or false when the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// Reset restores all 54 cards in build order.
func (d *Deck) Reset() {
	d.build()
}

// Deal samples ncards at random for each of nhands hands, removing them from
// the deck. Each hand is sorted by descending rank.
func (d *Deck) Deal(nhands, ncards int) ([]*Hand, error) {
	if nhands < 0 || ncards < 0 {
		return nil, fmt.Errorf("deal %d hands of %d cards: negative count", nhands, ncards)
	}
	if nhands*ncards > len(d.cards) {
		return nil, fmt.Errorf("%w: deal %d hands of %d cards from %d", ErrDeckExhausted, nhands, ncards, len(d.cards))
	}

	hands := make([]*Hand, 0, nhands)
	for h := 0; h < nhands; h++ {
		cards := make([]Card, 0, ncards)
		for k := 0; k < ncards; k++ {
			i := d.rng.Intn(len(d.cards))
			cards = append(cards, d.cards[i])
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
		}
		h := NewHand(cards...)
		h.SortByRank()
		hands = append(hands, h)
	}
	return hands, nil
}
