package app

import "pitch/internal/domain"

// EventKind identifies emitted hand events.
type EventKind string

const (
	EventHandDealt     EventKind = "hand_dealt"
	EventBidPlaced     EventKind = "bid_placed"
	EventTrumpChosen   EventKind = "trump_chosen"
	EventHandDiscarded EventKind = "hand_discarded"
	EventCardPlayed    EventKind = "card_played"
	EventTrickWon      EventKind = "trick_won"
	EventHandScored    EventKind = "hand_scored"
	EventMisdeal       EventKind = "misdeal"
)

// Event is a hand event with optional targeted recipients.
type Event struct {
	Kind       EventKind `json:"kind"`
	HandID     string    `json:"hand_id"`
	Payload    any       `json:"payload"`
	Recipients []string  `json:"recipients,omitempty"` // player names; empty means broadcast
}

type HandDealtPayload struct {
	Seat   int      `json:"seat"`
	Player string   `json:"player"`
	Dealer int      `json:"dealer"`
	Cards  []string `json:"cards"`
}

type BidPlacedPayload struct {
	Seat       int         `json:"seat"`
	Player     string      `json:"player"`
	Bid        int         `json:"bid"`
	Suit       domain.Suit `json:"suit"`
	Strength   float64     `json:"strength"`
	CurrentBid int         `json:"current_bid"`
}

type TrumpChosenPayload struct {
	Bidder int         `json:"bidder"`
	Player string      `json:"player"`
	Bid    int         `json:"bid"`
	Trump  domain.Suit `json:"trump"`
	Forced bool        `json:"forced"` // every seat passed and the dealer took the minimum bid
}

type HandDiscardedPayload struct {
	Seat   int      `json:"seat"`
	Player string   `json:"player"`
	Kept   []string `json:"kept"`
	Drawn  []string `json:"drawn,omitempty"`
}

type CardPlayedPayload struct {
	Trick  int    `json:"trick"`
	Seat   int    `json:"seat"`
	Player string `json:"player"`
	Card   string `json:"card"`
}

type TrickWonPayload struct {
	Trick  int    `json:"trick"`
	Winner int    `json:"winner"`
	Player string `json:"player"`
	Points [2]int `json:"points"`
}

type HandScoredPayload struct {
	Bidder     int    `json:"bidder"`
	Bid        int    `json:"bid"`
	Made       bool   `json:"made"`
	TeamPoints [2]int `json:"team_points"`
	Scores     [2]int `json:"scores"`
}

type MisdealPayload struct {
	Seat   int      `json:"seat"`
	Player string   `json:"player"`
	Cards  []string `json:"cards"`
	Redeal int      `json:"redeal"`
}
