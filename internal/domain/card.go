package domain

import (
	"fmt"
)

// Suit names one of the four standard suits or the joker suit.
type Suit string

const (
	Spades   Suit = "Spades"
	Hearts   Suit = "Hearts"
	Clubs    Suit = "Clubs"
	Diamonds Suit = "Diamonds"
	Joker    Suit = "Joker"

	// NoTrump is the absent trump context.
	NoTrump Suit = ""
)

// TrumpSuits returns the biddable suits in bid evaluation order.
func TrumpSuits() []Suit {
	return []Suit{Spades, Hearts, Clubs, Diamonds}
}

// Valid reports whether s is one of the five card suits.
func (s Suit) Valid() bool {
	_, ok := suitSymbols[s]
	return ok
}

// Symbol returns the glyph used in short card names.
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

// OffSuit returns the other suit of the same color.
// Spades <-> Clubs, Hearts <-> Diamonds; any other suit has no partner.
func (s Suit) OffSuit() Suit {
	switch s {
	case Spades:
		return Clubs
	case Clubs:
		return Spades
	case Hearts:
		return Diamonds
	case Diamonds:
		return Hearts
	default:
		return NoTrump
	}
}

var suitSymbols = map[Suit]string{
	Spades:   "♠",
	Diamonds: "♦",
	Clubs:    "♣",
	Hearts:   "♥",
	Joker:    "J",
}

// Effective symbols that never appear as a base symbol.
const (
	SymbolOffJack  = "X"
	SymbolNonTrump = "N"
	SymbolNoPlay   = "_"
)

type symbolInfo struct {
	rank   int
	points int
	desc   string
}

// symbolTable is the fixed rank/points table keyed by effective symbol.
var symbolTable = map[string]symbolInfo{
	"A":            {rank: 17, points: 1, desc: "Ace"},
	"K":            {rank: 16, points: 0, desc: "King"},
	"Q":            {rank: 15, points: 0, desc: "Queen"},
	"J":            {rank: 14, points: 1, desc: "Jack"},
	SymbolOffJack:  {rank: 13, points: 1, desc: "Off Jack"},
	"B":            {rank: 12, points: 1, desc: "Big Joker"},
	"L":            {rank: 11, points: 1, desc: "Little Joker"},
	"10":           {rank: 10, points: 1, desc: "10"},
	"9":            {rank: 9, points: 0, desc: "9"},
	"8":            {rank: 8, points: 0, desc: "8"},
	"7":            {rank: 7, points: 0, desc: "7"},
	"6":            {rank: 6, points: 0, desc: "6"},
	"5":            {rank: 5, points: 0, desc: "5"},
	"4":            {rank: 4, points: 0, desc: "4"},
	"3":            {rank: 3, points: 3, desc: "3"},
	"2":            {rank: 2, points: 1, desc: "2"},
	SymbolNonTrump: {rank: 0, points: 0, desc: "Off"},
	SymbolNoPlay:   {rank: 0, points: 0, desc: "No play"},
}

// cardNames maps every accepted spelling to the canonical base name.
var cardNames = map[string]string{
	"Ace": "Ace", "A": "Ace",
	"King": "King", "K": "King",
	"Queen": "Queen", "Q": "Queen",
	"Jack": "Jack", "J": "Jack",
	"Big": "Big", "B": "Big",
	"Little": "Little", "L": "Little",
	"10": "10", "1": "10",
	"9": "9", "8": "8", "7": "7", "6": "6",
	"5": "5", "4": "4", "3": "3", "2": "2",
	SymbolOffJack: SymbolOffJack, SymbolNonTrump: SymbolNonTrump, SymbolNoPlay: SymbolNoPlay,
}

// BaseNames returns the canonical base names: numeric ranks, faces, jokers,
// then the placeholder identities X, N and _.
func BaseNames() []string {
	return []string{
		"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace", "Big", "Little",
		SymbolOffJack, SymbolNonTrump, SymbolNoPlay,
	}
}

// Card is one physical card. Its identity (name, suit) is fixed at
// construction; rank, points and symbol are derived from the identity and
// the trump suit last applied with SetTrump.
type Card struct {
	name  string
	suit  Suit
	trump Suit
}

// NewCard validates the identity and returns a card in its base (no trump) state.
func NewCard(name string, suit Suit) (Card, error) {
	canonical, ok := cardNames[name]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidIdentity, name)
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidSuit, string(suit))
	}
	return Card{name: canonical, suit: suit}, nil
}

// MustCard is NewCard for identities known to be valid. It panics otherwise.
func MustCard(name string, suit Suit) Card {
	c, err := NewCard(name, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Name() string      { return c.name }
func (c Card) Suit() Suit        { return c.suit }
func (c Card) TrumpSuit() Suit   { return c.trump }
func (c Card) ShortName() string { return c.BaseSymbol() + c.suit.Symbol() }

// BaseSymbol is the first character of the name, except the ten which keeps both.
func (c Card) BaseSymbol() string {
	if c.name == "10" {
		return c.name
	}
	if c.name == "" {
		return SymbolNoPlay
	}
	return c.name[:1]
}

// SetTrump applies a trump context; NoTrump restores the base state.
// It is the only mutator of a card's derived attributes.
func (c *Card) SetTrump(suit Suit) {
	c.trump = suit
}

// WithTrump returns a copy of the card under the given trump context.
func (c Card) WithTrump(suit Suit) Card {
	c.SetTrump(suit)
	return c
}

// Symbol is the effective symbol under the current trump.
func (c Card) Symbol() string {
	if c.trump == NoTrump {
		return c.BaseSymbol()
	}
	return c.TrumpSymbol(c.trump)
}

// Rank is the current rank, 0 for non-trump cards once a trump is set.
func (c Card) Rank() int {
	return symbolTable[c.Symbol()].rank
}

// Points is the current point value; only trump cards carry points.
func (c Card) Points() int {
	if c.trump == NoTrump {
		return 0
	}
	return symbolTable[c.Symbol()].points
}

// Desc describes the current effective symbol, e.g. "Off Jack" or "Off".
func (c Card) Desc() string {
	return symbolTable[c.Symbol()].desc
}

// IsTrump reports whether the card is trump for suit. NoTrump checks
// against the card's current trump, and is never trump when none is set.
func (c Card) IsTrump(suit Suit) bool {
	if suit == NoTrump {
		suit = c.trump
		if suit == NoTrump {
			return false
		}
	}
	return c.trumpUnder(suit, c.Symbol())
}

// IsNonTrump is the negation of IsTrump.
func (c Card) IsNonTrump(suit Suit) bool {
	return !c.IsTrump(suit)
}

// TrumpSymbol is the symbol the card takes in its base state when suit is trump.
func (c Card) TrumpSymbol(suit Suit) string {
	base := c.BaseSymbol()
	if !c.trumpUnder(suit, base) {
		return SymbolNonTrump
	}
	if base == "J" && c.isOffJackFor(suit) {
		return SymbolOffJack
	}
	return base
}

func (c Card) trumpUnder(suit Suit, symbol string) bool {
	if c.suit == suit || c.suit == Joker {
		return true
	}
	if symbol == SymbolOffJack {
		return true
	}
	return c.BaseSymbol() == "J" && c.isOffJackFor(suit)
}

func (c Card) isOffJackFor(suit Suit) bool {
	return suit != NoTrump && c.suit.OffSuit() == suit
}

// SameIdentity reports whether both cards are the same physical card.
func (c Card) SameIdentity(o Card) bool {
	return c.name == o.name && c.suit == o.suit
}

func (c Card) Less(o Card) bool    { return c.Rank() < o.Rank() }
func (c Card) Greater(o Card) bool { return c.Rank() > o.Rank() }

// Equal requires the same identity as well as the same current rank.
func (c Card) Equal(o Card) bool {
	return c.SameIdentity(o) && c.Rank() == o.Rank()
}

func (c Card) String() string {
	return fmt.Sprintf("%3s", c.ShortName())
}
