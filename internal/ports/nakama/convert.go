package nakama

import (
	"fmt"

	"pitch/internal/app"
	"pitch/internal/bot"
	"pitch/internal/domain"
)

// parseTrump accepts one of the four biddable suits.
func parseTrump(s string) (domain.Suit, error) {
	suit := domain.Suit(s)
	for _, t := range domain.TrumpSuits() {
		if suit == t {
			return suit, nil
		}
	}
	return domain.NoTrump, fmt.Errorf("%w: trump %q", domain.ErrInvalidSuit, s)
}

// parseTrick reads played cards; an empty code is a seat yet to play.
func parseTrick(codes []string, trump domain.Suit) ([]*domain.Card, error) {
	out := make([]*domain.Card, 0, len(codes))
	for _, code := range codes {
		if code == "" {
			out = append(out, nil)
			continue
		}
		c, err := domain.ParseCard(code)
		if err != nil {
			return nil, err
		}
		c.SetTrump(trump)
		out = append(out, &c)
	}
	return out, nil
}

// strengthTable overlays rank-keyed weights on the default table.
func strengthTable(weights map[int]float64) (bot.StrengthTable, error) {
	table := bot.DefaultStrengthTable()
	for rank, w := range weights {
		if rank < 0 || rank >= len(table) {
			return table, fmt.Errorf("strength rank %d out of range 0-17", rank)
		}
		table[rank] = w
	}
	return table, nil
}

type trickDTO struct {
	Leader int      `json:"leader"`
	Winner int      `json:"winner"`
	Cards  []string `json:"cards"`
	Seats  []int    `json:"seats"`
	Points [2]int   `json:"points"`
}

type handDTO struct {
	HandID     string     `json:"hand_id"`
	Dealer     int        `json:"dealer"`
	Bidder     int        `json:"bidder"`
	Bid        int        `json:"bid"`
	Trump      string     `json:"trump"`
	Forced     bool       `json:"forced"`
	Made       bool       `json:"made"`
	Redeals    int        `json:"redeals"`
	TeamPoints [2]int     `json:"team_points"`
	Scores     [2]int     `json:"scores"`
	Tricks     []trickDTO `json:"tricks"`
}

func handToDTO(h *app.HandResult) handDTO {
	out := handDTO{
		HandID:     h.HandID,
		Dealer:     h.Dealer,
		Bidder:     h.Bidder,
		Bid:        h.Bid,
		Trump:      string(h.Trump),
		Forced:     h.Forced,
		Made:       h.Made(),
		Redeals:    h.Redeals,
		TeamPoints: h.TeamPoints,
		Scores:     h.Scores,
	}
	for _, t := range h.Tricks {
		dto := trickDTO{Leader: t.Leader, Winner: t.Winner, Points: t.Points}
		for _, pc := range t.Cards {
			dto.Cards = append(dto.Cards, pc.Card.Code())
			dto.Seats = append(dto.Seats, pc.Seat)
		}
		out.Tricks = append(out.Tricks, dto)
	}
	return out
}
