package domain

import (
	"fmt"
	"strings"
)

var suitCodes = map[Suit]string{
	Spades:   "S",
	Hearts:   "H",
	Clubs:    "C",
	Diamonds: "D",
	Joker:    "J",
}

// Code is a compact ASCII identity such as "AS", "10H" or "BJ".
func (c Card) Code() string {
	return c.BaseSymbol() + suitCodes[c.suit]
}

// ParseCard reads a card code produced by Card.Code. Matching is case-insensitive.
func ParseCard(code string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(code))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardCode, code)
	}
	symbol, suitCode := s[:len(s)-1], s[len(s)-1:]

	var suit Suit
	for st, sc := range suitCodes {
		if sc == suitCode {
			suit = st
			break
		}
	}
	if suit == NoTrump {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardCode, code)
	}

	c, err := NewCard(symbol, suit)
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCardCode, code, err)
	}
	if c.BaseSymbol() != symbol {
		return Card{}, fmt.Errorf("%w: %q is not a canonical code", ErrInvalidCardCode, code)
	}
	return c, nil
}

// ParseCards parses every code, failing on the first invalid one.
func ParseCards(codes []string) ([]Card, error) {
	out := make([]Card, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Codes returns the code of every card, in order.
func Codes(cards []Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Code())
	}
	return out
}

func joinCards(cards []Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.ShortName())
	}
	return strings.Join(parts, ", ")
}
