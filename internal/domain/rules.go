package domain

const (
	// SeatCount is the number of players at a Pitch table.
	SeatCount = 4
	// DealSize is the number of cards dealt to each hand before trump is named.
	DealSize = 9
	// MaxHandSize is the hand size after discarding non-trumps.
	MaxHandSize = 6
	// DeckSize counts the 52 standard cards plus both jokers.
	DeckSize = 54
)

// PartnerSeat returns the seat across the table.
func PartnerSeat(seat int) int {
	return (seat + 2) % SeatCount
}

// TeamOf returns 0 for seats 0 and 2, 1 for seats 1 and 3.
func TeamOf(seat int) int {
	return seat % 2
}
