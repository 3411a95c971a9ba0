package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIdentity = errors.New("invalid card name")
	ErrInvalidSuit     = errors.New("invalid suit")
	ErrInvalidCardCode = errors.New("invalid card code")
	ErrMisdeal         = errors.New("misdeal: too many point cards in hand")
	ErrDeckExhausted   = errors.New("not enough cards in deck")
)

// MisdealError reports a hand still holding more than MaxHandSize cards
// after discarding, i.e. more point-carrying trumps than fit in a hand.
type MisdealError struct {
	Cards []Card
}

func (e *MisdealError) Error() string {
	return fmt.Sprintf("%v (%d cards): %s", ErrMisdeal, len(e.Cards), joinCards(e.Cards))
}

// Is lets errors.Is match ErrMisdeal.
func (e *MisdealError) Is(target error) bool {
	return target == ErrMisdeal
}
