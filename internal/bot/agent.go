package bot

import (
	"fmt"
	"math/rand"

	"github.com/heroiclabs/nakama-common/runtime"

	"pitch/internal/domain"
)

// AgentConfig selects the strategies and personality of one seat.
type AgentConfig struct {
	Name         string
	Seat         int
	BidStrategy  string
	PlayStrategy string
	Personality  Personality
	Strengths    StrengthTable
}

// Agent is a configured player: its hand, its last bid and the strategies
// it bids and plays with.
type Agent struct {
	Name        string
	Seat        int
	Hand        *domain.Hand
	BidValue    int
	BiddingSuit domain.Suit
	Personality Personality
	Strengths   StrengthTable

	bidder   BidStrategy
	player   PlayStrategy
	fallback PlayStrategy
	logger   runtime.Logger
}

// NewAgent resolves cfg's strategies in reg. The agent draws all randomness
// from rng.
func NewAgent(reg *Registry, cfg AgentConfig, rng *rand.Rand, logger runtime.Logger) (*Agent, error) {
	bidder, err := reg.BidStrategy(cfg.BidStrategy)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", cfg.Name, err)
	}
	player, err := reg.PlayStrategy(cfg.PlayStrategy, rng)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", cfg.Name, err)
	}
	name := cfg.Name
	if name == "" {
		name = fmt.Sprintf("Player %d", cfg.Seat+1)
	}
	// A zero table would pass every hand.
	strengths := cfg.Strengths
	if strengths == (StrengthTable{}) {
		strengths = DefaultStrengthTable()
	}
	return &Agent{
		Name:        name,
		Seat:        cfg.Seat,
		Hand:        domain.NewHand(),
		Personality: cfg.Personality,
		Strengths:   strengths,
		bidder:      bidder,
		player:      player,
		fallback:    NewRandomStrategy(rng),
		logger:      logger,
	}, nil
}

func (a *Agent) String() string { return a.Name }

// PlayStrategyName is the name of the configured play strategy.
func (a *Agent) PlayStrategyName() string { return a.player.Name() }

// BidStrategyName is the name of the configured bid strategy.
func (a *Agent) BidStrategyName() string { return a.bidder.Name() }

// Bid decides a bid against the current high bid. The evaluated suit is kept
// for ChooseTrumps even when the agent passes.
func (a *Agent) Bid(currentBid, currentBidder int) BidResult {
	res := a.bidder.Bid(a.Hand, BidContext{
		Seat:          a.Seat,
		CurrentBid:    currentBid,
		CurrentBidder: currentBidder,
		Personality:   a.Personality,
		Strengths:     a.Strengths,
	})
	a.BidValue = res.Value
	a.BiddingSuit = res.Suit
	a.logger.Debug("Bid: %s (aggressiveness %.1f, restraint %.1f) computed %.2f in %s, bid %d over %d",
		a.Name, a.Personality.Aggressiveness, a.Personality.Restraint, res.Strength, res.Suit, res.Value, currentBid)
	return res
}

// ChooseTrumps names the suit found during bidding.
func (a *Agent) ChooseTrumps() domain.Suit {
	return a.BiddingSuit
}

// PlayCard selects a card with the configured strategy and removes it from
// the hand. A strategy that errors or picks a card not held is logged and
// replaced by a random pick.
func (a *Agent) PlayCard(ctx TrickContext) (domain.Card, error) {
	if a.Hand.IsEmpty() {
		return domain.Card{}, fmt.Errorf("PlayCard: %s: %w", a.Name, ErrEmptyHand)
	}

	card, err := a.player.SelectCard(a.Hand, ctx)
	if err == nil {
		if held, ok := a.Hand.Lookup(card); ok {
			card = held
		} else {
			err = fmt.Errorf("%w: %s is not in hand", ErrNoCard, card.ShortName())
		}
	}
	if err != nil {
		failure := &StrategyFailure{Player: a.Name, Strategy: a.player.Name(), Hand: a.Hand.String(), Err: err}
		a.logger.Warn("PlayCard: %v; selecting random card instead", failure)
		card, err = a.fallback.SelectCard(a.Hand, ctx)
		if err != nil {
			return domain.Card{}, fmt.Errorf("PlayCard: %s: %w", a.Name, err)
		}
	}

	a.Hand.RemoveCards(card)
	return card, nil
}
