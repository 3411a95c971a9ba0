package bot

import (
	"errors"
	"fmt"
)

var (
	ErrNoCard          = errors.New("strategy selected no card")
	ErrEmptyHand       = errors.New("hand is empty")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// StrategyFailure describes a play strategy that did not yield a held card.
// The agent recovers by playing a random card.
type StrategyFailure struct {
	Player   string
	Strategy string
	Hand     string
	Err      error
}

func (f *StrategyFailure) Error() string {
	return fmt.Sprintf("%s strategy %s did not select a card from [%s]: %v", f.Player, f.Strategy, f.Hand, f.Err)
}

func (f *StrategyFailure) Unwrap() error { return f.Err }
