package bot

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"pitch/internal/domain"
)

func newTestAgent(t *testing.T, reg *Registry, play string, logger *recordingLogger) *Agent {
	t.Helper()
	a, err := NewAgent(reg, AgentConfig{
		Name:         "North",
		Seat:         0,
		PlayStrategy: play,
		Strengths:    DefaultStrengthTable(),
	}, rand.New(rand.NewSource(5)), logger)
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	return a
}

func TestAgentPlayCardRemovesCard(t *testing.T) {
	logger := &recordingLogger{}
	a := newTestAgent(t, NewRegistry(), "highest", logger)
	a.Hand.ReplaceCards(trumpHand(t, domain.Hearts, "AH", "4H", "10H").Cards())

	c, err := a.PlayCard(TrickContext{Trump: domain.Hearts})
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if c.Code() != "AH" {
		t.Errorf("played %s, want AH", c.Code())
	}
	if a.Hand.Len() != 2 || a.Hand.Contains(c) {
		t.Errorf("hand after play = [%s], want AH removed", a.Hand)
	}
	if c.TrumpSuit() != domain.Hearts {
		t.Errorf("played card lost its trump context")
	}
	if len(logger.warnings) != 0 {
		t.Errorf("unexpected warnings: %v", logger.warnings)
	}
}

func TestAgentFallsBackOnForeignCard(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterPlay("play_cheat", func(*rand.Rand) PlayStrategy {
		return NewFuncStrategy("cheat", func([]domain.Card, TrickContext) (domain.Card, bool) {
			return domain.MustCard("Ace", domain.Clubs), true
		})
	})
	logger := &recordingLogger{}
	a := newTestAgent(t, reg, "cheat", logger)
	a.Hand.ReplaceCards(handOf(t, "KH", "4D").Cards())

	c, err := a.PlayCard(TrickContext{})
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if c.Code() != "KH" && c.Code() != "4D" {
		t.Errorf("fallback played %s, not from the hand", c.Code())
	}
	if a.Hand.Len() != 1 {
		t.Errorf("hand size = %d, want 1", a.Hand.Len())
	}
	if len(logger.warnings) != 1 || !strings.Contains(logger.warnings[0], "cheat") {
		t.Errorf("warnings = %v, want one naming the cheat strategy", logger.warnings)
	}
}

func TestAgentFallsBackOnNoSelection(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterPlay("shy", func(*rand.Rand) PlayStrategy {
		return NewFuncStrategy("shy", func([]domain.Card, TrickContext) (domain.Card, bool) {
			return domain.Card{}, false
		})
	})
	logger := &recordingLogger{}
	a := newTestAgent(t, reg, "shy", logger)
	a.Hand.ReplaceCards(handOf(t, "9C").Cards())

	c, err := a.PlayCard(TrickContext{})
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if c.Code() != "9C" {
		t.Errorf("played %s, want 9C", c.Code())
	}
	if len(logger.warnings) != 1 {
		t.Errorf("warnings = %d, want 1", len(logger.warnings))
	}
}

func TestAgentPlayCardEmptyHand(t *testing.T) {
	a := newTestAgent(t, NewRegistry(), "", &recordingLogger{})
	if _, err := a.PlayCard(TrickContext{}); !errors.Is(err, ErrEmptyHand) {
		t.Errorf("PlayCard on empty hand = %v, want ErrEmptyHand", err)
	}
}

func TestAgentBidRecordsSuit(t *testing.T) {
	a := newTestAgent(t, NewRegistry(), "", &recordingLogger{})
	a.Hand.ReplaceCards(handOf(t, "AD", "KD", "QD", "JD", "JH", "2D", "4S", "9C", "7S").Cards())

	res := a.Bid(0, NoBidder)
	if a.ChooseTrumps() != domain.Diamonds {
		t.Errorf("ChooseTrumps = %s, want Diamonds", a.ChooseTrumps())
	}
	if a.BidValue != res.Value || res.Value != 6 {
		t.Errorf("bid = %d (stored %d), want 6", res.Value, a.BidValue)
	}
}

func TestNewAgentDefaultsStrengthTable(t *testing.T) {
	a, err := NewAgent(NewRegistry(), AgentConfig{Name: "West"}, rand.New(rand.NewSource(5)), noopLogger{})
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	if a.Strengths != DefaultStrengthTable() {
		t.Fatalf("Strengths = %v, want the default table", a.Strengths)
	}
	a.Hand.ReplaceCards(handOf(t, "AD", "KD", "QD", "JD", "JH", "2D", "4S", "9C", "7S").Cards())
	if res := a.Bid(0, NoBidder); res.Value != 6 {
		t.Errorf("bid = %d, want 6", res.Value)
	}

	custom := DefaultStrengthTable()
	custom[17] = 9
	b, err := NewAgent(NewRegistry(), AgentConfig{Strengths: custom}, rand.New(rand.NewSource(5)), noopLogger{})
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	if b.Strengths != custom {
		t.Errorf("custom strengths replaced: %v", b.Strengths)
	}
}

func TestNewAgentUnknownStrategy(t *testing.T) {
	_, err := NewAgent(NewRegistry(), AgentConfig{PlayStrategy: "telepathy"}, nil, noopLogger{})
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("NewAgent = %v, want ErrUnknownStrategy", err)
	}
	_, err = NewAgent(NewRegistry(), AgentConfig{BidStrategy: "bluff"}, nil, noopLogger{})
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("NewAgent = %v, want ErrUnknownStrategy", err)
	}
}

func TestStrategyFailureUnwraps(t *testing.T) {
	f := &StrategyFailure{Player: "East", Strategy: "off", Err: ErrNoCard}
	if !errors.Is(f, ErrNoCard) {
		t.Error("StrategyFailure does not unwrap to its cause")
	}
}
