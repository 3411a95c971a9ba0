package app

import (
	"errors"
	"fmt"

	"pitch/internal/bot"
	"pitch/internal/domain"
)

// round is the state of one deal.
type round struct {
	svc     *Service
	id      string
	players []*bot.Agent
	dealer  int
	deck    *domain.Deck
	events  []Event

	bid    int
	bidder int
	trump  domain.Suit
	forced bool
}

func (r *round) emit(kind EventKind, payload any, recipients ...string) {
	r.events = append(r.events, r.svc.emit(r.id, kind, payload, recipients...))
}

// seatAfter returns the seat offset places to the left of seat.
func seatAfter(seat, offset int) int {
	return (seat + offset) % domain.SeatCount
}

func (r *round) play() (*HandResult, error) {
	if err := r.deal(); err != nil {
		return nil, err
	}
	r.auction()
	if err := r.discard(); err != nil {
		return nil, err
	}
	r.drawUp()

	res := &HandResult{
		HandID: r.id,
		Dealer: r.dealer,
		Bidder: r.bidder,
		Bid:    r.bid,
		Trump:  r.trump,
		Forced: r.forced,
	}
	leader := r.bidder
	for n := 0; n < TricksPerHand; n++ {
		trick, err := r.playTrick(n, leader)
		if err != nil {
			return nil, err
		}
		if len(trick.Cards) == 0 {
			break
		}
		res.Tricks = append(res.Tricks, trick)
		for team := range res.TeamPoints {
			res.TeamPoints[team] += trick.Points[team]
		}
		leader = trick.Winner
	}
	res.Scores = scoreHand(r.bidder, r.bid, res.TeamPoints)

	r.emit(EventHandScored, HandScoredPayload{
		Bidder:     r.bidder,
		Bid:        r.bid,
		Made:       res.Made(),
		TeamPoints: res.TeamPoints,
		Scores:     res.Scores,
	})
	return res, nil
}

func (r *round) deal() error {
	r.deck = domain.NewDeck(r.svc.rng)
	r.deck.Shuffle()
	hands, err := r.deck.Deal(domain.SeatCount, domain.DealSize)
	if err != nil {
		return fmt.Errorf("deal: %w", err)
	}
	for seat, p := range r.players {
		p.Hand.ReplaceCards(hands[seat].Cards())
		p.BidValue = 0
		p.BiddingSuit = domain.NoTrump
		r.emit(EventHandDealt, HandDealtPayload{
			Seat:   seat,
			Player: p.Name,
			Dealer: r.dealer,
			Cards:  domain.Codes(p.Hand.Cards()),
		}, p.Name)
	}
	return nil
}

// auction gives each seat one bid, starting left of the dealer. When every
// seat passes the dealer is held to the minimum bid in its best suit.
func (r *round) auction() {
	r.bidder = bot.NoBidder
	for i := 1; i <= domain.SeatCount; i++ {
		seat := seatAfter(r.dealer, i)
		p := r.players[seat]
		res := p.Bid(r.bid, r.bidder)
		r.emit(EventBidPlaced, BidPlacedPayload{
			Seat:       seat,
			Player:     p.Name,
			Bid:        res.Value,
			Suit:       res.Suit,
			Strength:   res.Strength,
			CurrentBid: r.bid,
		})
		if res.Value > r.bid {
			r.bid, r.bidder = res.Value, seat
		}
	}
	if r.bidder == bot.NoBidder {
		r.bidder, r.bid, r.forced = r.dealer, bot.MinBid, true
		r.svc.logger.Debug("auction: all passed, dealer %s takes %d", r.players[r.dealer].Name, bot.MinBid)
	}

	r.trump = r.players[r.bidder].ChooseTrumps()
	r.emit(EventTrumpChosen, TrumpChosenPayload{
		Bidder: r.bidder,
		Player: r.players[r.bidder].Name,
		Bid:    r.bid,
		Trump:  r.trump,
		Forced: r.forced,
	})
}

func (r *round) discard() error {
	for seat, p := range r.players {
		if err := p.Hand.DiscardNonTrumps(r.trump, seat == r.bidder); err != nil {
			var misdeal *domain.MisdealError
			if errors.As(err, &misdeal) {
				return &misdealAt{seat: seat, err: misdeal}
			}
			return fmt.Errorf("discard seat %d: %w", seat, err)
		}
	}
	return nil
}

// drawUp refills every short hand to MaxHandSize from the deck, left of the
// dealer first, until the deck runs out.
func (r *round) drawUp() {
	for i := 1; i <= domain.SeatCount; i++ {
		seat := seatAfter(r.dealer, i)
		p := r.players[seat]
		kept := domain.Codes(p.Hand.Cards())
		var drawn []domain.Card
		for p.Hand.Len()+len(drawn) < domain.MaxHandSize {
			c, ok := r.deck.Draw()
			if !ok {
				break
			}
			drawn = append(drawn, c.WithTrump(r.trump))
		}
		p.Hand.AddCards(drawn...)
		p.Hand.SortByRank()
		r.emit(EventHandDiscarded, HandDiscardedPayload{
			Seat:   seat,
			Player: p.Name,
			Kept:   kept,
			Drawn:  domain.Codes(drawn),
		})
	}
}

func (r *round) playTrick(n, leader int) (TrickResult, error) {
	trick := TrickResult{Leader: leader, Winner: leader}
	played := make([]*domain.Card, domain.SeatCount)
	trumpLed := false

	for i := 0; i < domain.SeatCount; i++ {
		seat := seatAfter(leader, i)
		p := r.players[seat]
		if p.Hand.IsEmpty() {
			continue
		}
		ctx := bot.TrickContext{Trump: r.trump, TrumpLed: trumpLed, Trick: append([]*domain.Card(nil), played...)}
		c, err := p.PlayCard(ctx)
		if err != nil {
			return trick, fmt.Errorf("trick %d: %w", n+1, err)
		}
		if len(trick.Cards) == 0 {
			trick.Leader = seat
			trumpLed = c.IsTrump(r.trump)
		}
		played[i] = &c
		trick.Cards = append(trick.Cards, PlayedCard{Seat: seat, Card: c})
		r.emit(EventCardPlayed, CardPlayedPayload{Trick: n + 1, Seat: seat, Player: p.Name, Card: c.Code()})
	}
	if len(trick.Cards) == 0 {
		return trick, nil
	}

	trick.Winner = trickWinner(trick.Cards, trick.Leader, r.trump)
	trick.Points = trickPoints(trick.Cards, trick.Winner, r.trump)
	r.emit(EventTrickWon, TrickWonPayload{
		Trick:  n + 1,
		Winner: trick.Winner,
		Player: r.players[trick.Winner].Name,
		Points: trick.Points,
	})
	return trick, nil
}
