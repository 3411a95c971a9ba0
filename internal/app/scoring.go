package app

import "pitch/internal/domain"

// trickWinner is the seat of the highest trump played, or the leader when
// no trump was played.
func trickWinner(cards []PlayedCard, leader int, trump domain.Suit) int {
	winner, best := leader, 0
	for _, pc := range cards {
		if pc.Card.IsTrump(trump) && pc.Card.Rank() > best {
			winner, best = pc.Seat, pc.Card.Rank()
		}
	}
	return winner
}

// trickPoints credits the winner's team with the trick's points, except
// the 2 of trump which always scores for the team that played it.
func trickPoints(cards []PlayedCard, winner int, trump domain.Suit) [2]int {
	var points [2]int
	for _, pc := range cards {
		if !pc.Card.IsTrump(trump) {
			continue
		}
		team := domain.TeamOf(winner)
		if pc.Card.Rank() == 2 {
			team = domain.TeamOf(pc.Seat)
		}
		points[team] += pc.Card.Points()
	}
	return points
}

// scoreHand sets the bidding team back by its bid when it falls short.
func scoreHand(bidder, bid int, teamPoints [2]int) [2]int {
	scores := teamPoints
	team := domain.TeamOf(bidder)
	if teamPoints[team] < bid {
		scores[team] = -bid
	}
	return scores
}
