package console

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"pitch/internal/app"
	"pitch/internal/bot"
)

// RenderPlayers prints the configured seats.
func RenderPlayers(w io.Writer, players []*bot.Agent) error {
	data := pterm.TableData{{"Seat", "Name", "Team", "Bid", "Play", "Aggressiveness", "Restraint"}}
	for _, p := range players {
		data = append(data, []string{
			fmt.Sprint(p.Seat),
			p.Name,
			fmt.Sprint(p.Seat % 2),
			p.BidStrategyName(),
			p.PlayStrategyName(),
			fmt.Sprintf("%.2f", p.Personality.Aggressiveness),
			fmt.Sprintf("%.2f", p.Personality.Restraint),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(data).Render()
}

// RenderMatch prints one row per hand and the running totals.
func RenderMatch(w io.Writer, players []*bot.Agent, res *app.MatchResult) error {
	data := pterm.TableData{{"Hand", "Bidder", "Bid", "Trump", "Points", "Score", "Redeals"}}
	for i, h := range res.Hands {
		bidder := players[h.Bidder].Name
		if h.Forced {
			bidder += "*"
		}
		data = append(data, []string{
			fmt.Sprint(i + 1),
			bidder,
			fmt.Sprint(h.Bid),
			ColorSuit(h.Trump),
			fmt.Sprintf("%d / %d", h.TeamPoints[0], h.TeamPoints[1]),
			fmt.Sprintf("%d / %d", h.Scores[0], h.Scores[1]),
			fmt.Sprint(h.Redeals),
		})
	}
	data = append(data, []string{"Total", "", "", "", "", fmt.Sprintf("%d / %d", res.Totals[0], res.Totals[1]), fmt.Sprint(res.Misdeals)})
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithWriter(w).WithData(data).Render()
}
