package bot

import (
	"math"

	"pitch/internal/domain"
)

const (
	// MinBid is the lowest bid that does not pass.
	MinBid = 5
	// maxOpeningBid caps a bid made with no opposing bid on the table.
	maxOpeningBid = 6
	// NoBidder marks a bidding round nobody has bid in yet.
	NoBidder = -1
)

// StrengthTable weights each card rank (0..17) when scoring a suit.
type StrengthTable [18]float64

// DefaultStrengthTable returns the built-in rank weights.
func DefaultStrengthTable() StrengthTable {
	return defaultStrengths
}

var defaultStrengths = StrengthTable{
	17: 2.5,
	16: 1.5,
	15: 1.25,
	14: 0.75, // jack
	13: 0.75, // off jack
	12: 0.5,
	11: 0.5,
	10: 0.5,
	9:  0.25,
	8:  0.25,
	7:  0.1,
	6:  0.1,
	5:  0.1,
	4:  0.1,
	3:  1.5,
	2:  1,
	1:  0,
	0:  0,
}

// Strength returns the weight for rank, or 0 outside the table.
func (t StrengthTable) Strength(rank int) float64 {
	if rank < 0 || rank >= len(t) {
		return 0
	}
	return t[rank]
}

// Personality shifts a computed bid. Aggressiveness is always added;
// restraint is subtracted while the partner holds the high bid.
type Personality struct {
	Aggressiveness float64 `json:"aggressiveness"`
	Restraint      float64 `json:"restraint"`
}

// BidContext is everything a bid decision sees besides the hand.
type BidContext struct {
	Seat          int
	CurrentBid    int
	CurrentBidder int
	Personality   Personality
	Strengths     StrengthTable
}

// BidResult is the outcome of evaluating a hand. Suit is set even on a pass.
type BidResult struct {
	Value         int
	Suit          domain.Suit
	Strength      float64
	SuitStrengths map[domain.Suit]float64
}

// Passed reports a zero bid.
func (r BidResult) Passed() bool { return r.Value == 0 }

// isPartner treats seat 0 like an absent bidder: a zero bidder is never a partner.
func isPartner(seat, bidder int) bool {
	if bidder <= 0 {
		return false
	}
	return seat == domain.PartnerSeat(bidder)
}

// SuitStrength scores hand with suit as trump, rounded to two decimals.
// The hand's trump is left set to suit.
func SuitStrength(hand *domain.Hand, suit domain.Suit, table StrengthTable) float64 {
	hand.SetTrump(suit)
	total := 0.0
	for _, c := range hand.Cards() {
		total += table.Strength(c.Rank())
	}
	return math.Round(total*100) / 100
}

// EvaluateBid scores the hand under each trump suit and turns the best score
// into a bid. The hand's trump is reset to NoTrump before returning.
func EvaluateBid(hand *domain.Hand, ctx BidContext) BidResult {
	res := BidResult{SuitStrengths: make(map[domain.Suit]float64, 4)}

	best := 0.0
	for _, suit := range domain.TrumpSuits() {
		s := SuitStrength(hand, suit, ctx.Strengths)
		res.SuitStrengths[suit] = s
		// A zero incumbent is always replaced.
		if best == 0 || s > best {
			best = s
			res.Suit = suit
		}
	}
	hand.SetTrump(domain.NoTrump)

	value := best + ctx.Personality.Aggressiveness
	if isPartner(ctx.Seat, ctx.CurrentBidder) {
		value = max(0, value-ctx.Personality.Restraint)
	}
	res.Strength = value

	bid := int(value)
	if bid < MinBid {
		bid = 0
	}
	switch {
	case bid <= ctx.CurrentBid:
		bid = 0
	case ctx.CurrentBid > 0:
		bid = ctx.CurrentBid + 1
	case bid >= maxOpeningBid+1:
		bid = maxOpeningBid
	}
	res.Value = bid
	return res
}

// BidStrategy decides a bid for a hand.
type BidStrategy interface {
	Name() string
	Bid(hand *domain.Hand, ctx BidContext) BidResult
}

type evaluatingBidder struct{}

func (evaluatingBidder) Name() string { return "default" }

func (evaluatingBidder) Bid(hand *domain.Hand, ctx BidContext) BidResult {
	return EvaluateBid(hand, ctx)
}

// passBidder always passes but still reports its best suit.
type passBidder struct{}

func (passBidder) Name() string { return "pass" }

func (passBidder) Bid(hand *domain.Hand, ctx BidContext) BidResult {
	res := EvaluateBid(hand, ctx)
	res.Value = 0
	return res
}
