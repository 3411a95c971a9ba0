package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"

	"pitch/internal/bot"
	"pitch/internal/domain"
	"pitch/internal/ports"
)

var (
	ErrTooFewPlayers = errors.New("a hand needs exactly four players")
	ErrRedealLimit   = errors.New("too many misdeals")
)

// DefaultMaxRedeals is how many misdeals a hand tolerates before giving up.
const DefaultMaxRedeals = 3

// TricksPerHand is one trick per card held after discarding.
const TricksPerHand = domain.MaxHandSize

// Service runs Pitch hands between configured agents.
type Service struct {
	rng        *rand.Rand
	logger     runtime.Logger
	sink       ports.EventSink
	MaxRedeals int
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand, logger runtime.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, logger: logger, MaxRedeals: DefaultMaxRedeals}
}

// SetSink forwards every emitted event to sink as well.
func (s *Service) SetSink(sink ports.EventSink) {
	s.sink = sink
}

// PlayedCard is one card contributed to a trick.
type PlayedCard struct {
	Seat int
	Card domain.Card
}

// TrickResult records one trick.
type TrickResult struct {
	Leader int
	Winner int
	Cards  []PlayedCard
	Points [2]int
}

// HandResult records one completed hand.
type HandResult struct {
	HandID     string
	Dealer     int
	Bidder     int
	Bid        int
	Trump      domain.Suit
	Forced     bool
	Redeals    int
	Tricks     []TrickResult
	TeamPoints [2]int
	Scores     [2]int
}

// Made reports whether the bidding team reached its bid.
func (r *HandResult) Made() bool {
	return r.TeamPoints[domain.TeamOf(r.Bidder)] >= r.Bid
}

// MatchResult accumulates consecutive hands.
type MatchResult struct {
	Hands    []*HandResult
	Totals   [2]int
	Misdeals int
}

// PlayHands plays n hands, passing the deal to the left after each.
func (s *Service) PlayHands(players []*bot.Agent, n int) (*MatchResult, []Event, error) {
	res := &MatchResult{}
	var events []Event
	for i := 0; i < n; i++ {
		dealer := i % domain.SeatCount
		hand, evs, err := s.PlayHand(players, dealer)
		events = append(events, evs...)
		if err != nil {
			return res, events, fmt.Errorf("hand %d: %w", i+1, err)
		}
		res.Hands = append(res.Hands, hand)
		res.Misdeals += hand.Redeals
		for team := range res.Totals {
			res.Totals[team] += hand.Scores[team]
		}
	}
	return res, events, nil
}

// PlayHand deals and plays one hand. A misdeal is redealt up to MaxRedeals
// times before ErrRedealLimit is returned.
func (s *Service) PlayHand(players []*bot.Agent, dealer int) (*HandResult, []Event, error) {
	if len(players) != domain.SeatCount {
		return nil, nil, fmt.Errorf("%w: got %d", ErrTooFewPlayers, len(players))
	}
	for seat, p := range players {
		p.Seat = seat
	}

	var events []Event
	for redeal := 0; ; redeal++ {
		id, err := uuid.NewRandomFromReader(s.rng)
		if err != nil {
			return nil, events, fmt.Errorf("hand id: %w", err)
		}
		r := &round{svc: s, id: id.String(), players: players, dealer: dealer}
		res, err := r.play()
		events = append(events, r.events...)
		if err == nil {
			res.Redeals = redeal
			return res, events, nil
		}

		var misdeal *misdealAt
		if !errors.As(err, &misdeal) {
			return nil, events, err
		}
		s.logger.Warn("PlayHand: %v (redeal %d of %d)", err, redeal+1, s.MaxRedeals)
		events = append(events, s.emit(r.id, EventMisdeal, MisdealPayload{
			Seat:   misdeal.seat,
			Player: players[misdeal.seat].Name,
			Cards:  domain.Codes(misdeal.err.Cards),
			Redeal: redeal + 1,
		}))
		if redeal >= s.MaxRedeals {
			return nil, events, fmt.Errorf("%w: %d redeals: %w", ErrRedealLimit, redeal, err)
		}
	}
}

func (s *Service) emit(handID string, kind EventKind, payload any, recipients ...string) Event {
	if s.sink != nil {
		s.sink.Publish(string(kind), handID, payload)
	}
	return Event{Kind: kind, HandID: handID, Payload: payload, Recipients: recipients}
}

// misdealAt ties a misdeal to the seat whose hand overflowed.
type misdealAt struct {
	seat int
	err  *domain.MisdealError
}

func (m *misdealAt) Error() string { return fmt.Sprintf("seat %d: %v", m.seat, m.err) }
func (m *misdealAt) Unwrap() error { return m.err }
