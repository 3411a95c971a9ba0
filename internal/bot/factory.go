package bot

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

// PlayFactory builds a play strategy around the agent's random source.
type PlayFactory func(rng *rand.Rand) PlayStrategy

// Registry resolves strategy names to implementations. Externally supplied
// strategies are added with RegisterPlay and RegisterBid.
type Registry struct {
	mu   sync.RWMutex
	play map[string]PlayFactory
	bid  map[string]BidStrategy
}

// NewRegistry returns a registry holding the built-in strategies.
func NewRegistry() *Registry {
	r := &Registry{
		play: map[string]PlayFactory{},
		bid:  map[string]BidStrategy{},
	}
	r.RegisterPlay("random", NewRandomStrategy)
	for name, fn := range builtinPlays {
		s := NewFuncStrategy(name, fn)
		r.RegisterPlay(name, func(*rand.Rand) PlayStrategy { return s })
	}
	r.RegisterBid("default", evaluatingBidder{})
	r.RegisterBid("pass", passBidder{})
	return r
}

// RegisterPlay adds or replaces a play strategy.
func (r *Registry) RegisterPlay(name string, factory PlayFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.play[NormalizePlayName(name)] = factory
}

// RegisterBid adds or replaces a bid strategy.
func (r *Registry) RegisterBid(name string, s BidStrategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bid[NormalizeBidName(name)] = s
}

// PlayStrategy builds the named play strategy. An empty name selects "first".
func (r *Registry) PlayStrategy(name string, rng *rand.Rand) (PlayStrategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.play[NormalizePlayName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: play strategy %q", ErrUnknownStrategy, name)
	}
	return f(rng), nil
}

// BidStrategy returns the named bid strategy. An empty name selects "default".
func (r *Registry) BidStrategy(name string) (BidStrategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.bid[NormalizeBidName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: bid strategy %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// NormalizePlayName maps configured spellings such as "play_highest_points"
// or "Highest_Points" onto "highest-points".
func NormalizePlayName(name string) string {
	n := normalize(name)
	n = strings.TrimPrefix(n, "play-")
	switch n {
	case "", "default", "default-play-strategy":
		return "first"
	}
	return n
}

// NormalizeBidName maps "default_bid_strategy" and "" onto "default".
func NormalizeBidName(name string) string {
	n := normalize(name)
	switch n {
	case "", "default-bid-strategy":
		return "default"
	}
	return strings.TrimSuffix(n, "-bid-strategy")
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}
