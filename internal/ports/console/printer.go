package console

import (
	"io"
	"strings"

	"github.com/pterm/pterm"

	"pitch/internal/app"
	"pitch/internal/domain"
)

// Printer narrates hand events as they are published.
type Printer struct {
	w       io.Writer
	verbose bool
}

// NewPrinter writes to w. Without verbose only bids, trump and scores print.
func NewPrinter(w io.Writer, verbose bool) *Printer {
	return &Printer{w: w, verbose: verbose}
}

// Publish implements ports.EventSink.
func (p *Printer) Publish(kind, handID string, payload any) {
	switch ev := payload.(type) {
	case app.HandDealtPayload:
		if ev.Seat == 0 {
			pterm.Fprintln(p.w, pterm.DefaultSection.Sprintf("Hand %s (dealer seat %d)", shortID(handID), ev.Dealer))
		}
		p.printf("%-10s %s\n", ev.Player, ColorCodes(ev.Cards))
	case app.BidPlacedPayload:
		bid := "pass"
		if ev.Bid > 0 {
			bid = pterm.Bold.Sprint(ev.Bid)
		}
		p.printf("%-10s bids %s (%.2f in %s)\n", ev.Player, bid, ev.Strength, ev.Suit)
	case app.TrumpChosenPayload:
		forced := ""
		if ev.Forced {
			forced = " (stuck)"
		}
		p.printf("%s takes the bid at %d%s, trump is %s\n", ev.Player, ev.Bid, forced, ColorSuit(ev.Trump))
	case app.HandDiscardedPayload:
		if p.verbose {
			p.printf("%-10s keeps %s draws %s\n", ev.Player, ColorCodes(ev.Kept), ColorCodes(ev.Drawn))
		}
	case app.CardPlayedPayload:
		if p.verbose {
			p.printf("  trick %d: %-10s %s\n", ev.Trick, ev.Player, ColorCode(ev.Card))
		}
	case app.TrickWonPayload:
		if p.verbose {
			p.printf("  trick %d won by %s %v\n", ev.Trick, ev.Player, ev.Points)
		}
	case app.HandScoredPayload:
		made := pterm.Green("made")
		if !ev.Made {
			made = pterm.Red("set")
		}
		p.printf("bid %d %s: points %v, score %v\n", ev.Bid, made, ev.TeamPoints, ev.Scores)
	case app.MisdealPayload:
		pterm.Fprintln(p.w, pterm.Warning.Sprintf("misdeal at %s: %s", ev.Player, ColorCodes(ev.Cards)))
	default:
		p.printf("%s %v\n", kind, payload)
	}
}

func (p *Printer) printf(format string, a ...any) {
	pterm.Fprint(p.w, pterm.Sprintf(format, a...))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ColorSuit renders the suit glyph, red for hearts and diamonds.
func ColorSuit(s domain.Suit) string {
	switch s {
	case domain.Hearts, domain.Diamonds:
		return pterm.LightRed(s.Symbol())
	case domain.NoTrump:
		return "-"
	default:
		return s.Symbol()
	}
}

// ColorCode renders a card code such as "10H" as "10♥" in its suit color.
func ColorCode(code string) string {
	c, err := domain.ParseCard(code)
	if err != nil {
		return code
	}
	return c.BaseSymbol() + ColorSuit(c.Suit())
}

// ColorCodes renders a list of card codes.
func ColorCodes(codes []string) string {
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		out = append(out, ColorCode(code))
	}
	return strings.Join(out, " ")
}
