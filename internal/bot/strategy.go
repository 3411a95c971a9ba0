package bot

import (
	"pitch/internal/domain"
)

// TrickContext is the state of the trick a play strategy responds to.
// Trick holds one entry per seat in play order; nil marks a seat yet to play.
type TrickContext struct {
	Trump    domain.Suit
	TrumpLed bool
	Trick    []*domain.Card
}

// PlayStrategy selects one card held in hand. Implementations must not
// mutate the hand.
type PlayStrategy interface {
	Name() string
	SelectCard(hand *domain.Hand, ctx TrickContext) (domain.Card, error)
}

// SelectFunc adapts a selection function to PlayStrategy. It reports false
// when it finds nothing to play.
type SelectFunc func(cards []domain.Card, ctx TrickContext) (domain.Card, bool)

type funcStrategy struct {
	name   string
	choose SelectFunc
}

// NewFuncStrategy wraps choose as a named PlayStrategy.
func NewFuncStrategy(name string, choose SelectFunc) PlayStrategy {
	return &funcStrategy{name: name, choose: choose}
}

func (s *funcStrategy) Name() string { return s.name }

func (s *funcStrategy) SelectCard(hand *domain.Hand, ctx TrickContext) (domain.Card, error) {
	if hand == nil || hand.IsEmpty() {
		return domain.Card{}, ErrEmptyHand
	}
	c, ok := s.choose(hand.Cards(), ctx)
	if !ok {
		return domain.Card{}, ErrNoCard
	}
	return c, nil
}
