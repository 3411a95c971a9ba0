package bot

import (
	"math/rand"
	"testing"

	"pitch/internal/domain"
)

func trumpHand(t *testing.T, trump domain.Suit, codes ...string) *domain.Hand {
	t.Helper()
	h := handOf(t, codes...)
	h.SetTrump(trump)
	return h
}

func playedCards(t *testing.T, trump domain.Suit, codes ...string) []*domain.Card {
	t.Helper()
	cards, err := domain.ParseCards(codes)
	if err != nil {
		t.Fatalf("ParseCards(%v): %v", codes, err)
	}
	trick := make([]*domain.Card, 0, len(cards))
	for i := range cards {
		cards[i].SetTrump(trump)
		trick = append(trick, &cards[i])
	}
	return trick
}

func TestPlayStrategies(t *testing.T) {
	tests := []struct {
		strategy string
		hand     []string
		trick    []string
		trumpLed bool
		want     string
	}{
		{"first", []string{"QS", "4H"}, nil, false, "QS"},
		{"highest", []string{"4H", "QS", "AS", "2S"}, nil, false, "AS"},
		{"lowest", []string{"QS", "4H", "2S"}, nil, false, "4H"},
		{"lowest", []string{"QS", "4H", "2S"}, nil, true, "2S"},
		{"highest-no-point", []string{"AS", "QS", "9S", "4H"}, nil, false, "QS"},
		{"highest-no-point", []string{"10S", "AS", "4H"}, nil, false, "AS"},
		{"highest-points", []string{"AS", "3S", "JS", "4H"}, nil, false, "3S"},
		{"highest-points", []string{"AS", "JS", "10S", "4H"}, nil, false, "10S"},
		{"highest-points", []string{"AS", "2S", "QS"}, nil, false, "2S"},
		{"highest-points", []string{"AS", "QS", "4H"}, nil, true, "QS"},
		{"highest-points", []string{"AS", "QS", "4H"}, nil, false, "4H"},
		{"just-higher", []string{"AS", "KS", "3S", "4H"}, []string{"QS"}, true, "KS"},
		{"just-higher", []string{"KS", "2S", "9S"}, []string{"AS"}, true, "2S"},
		{"just-higher", []string{"3S", "JS"}, nil, false, "JS"},
		{"lowest-no-point", []string{"AS", "9S", "7S", "4H"}, nil, false, "7S"},
		{"lowest-no-point", []string{"AS", "3S", "10S", "4H"}, nil, false, "10S"},
		{"lowest-no-point", []string{"3S", "4H"}, nil, false, "3S"},
		{"lowest-no-point", []string{"4H", "5D"}, nil, false, "4H"},
		{"lowest-no-point", []string{"QS", "2S", "4H"}, nil, false, "2S"},
		{"single-point", []string{"AS", "10S", "JS", "4H"}, nil, false, "10S"},
		{"single-point", []string{"AS", "2S", "4H"}, nil, false, "2S"},
		{"single-point", []string{"AS", "3S", "9S", "4H"}, nil, true, "9S"},
		{"single-point", []string{"AS", "3S", "9S", "4H"}, nil, false, "4H"},
		{"single-point", []string{"AS", "3S"}, nil, true, "3S"},
		{"save-point", []string{"JS", "10S", "4H"}, []string{"9S"}, false, "10S"},
		{"save-point", []string{"JS", "10S", "4H"}, []string{"QS"}, false, "4H"},
		{"off", []string{"QS", "4H", "5D"}, nil, false, "4H"},
		{"off", []string{"QS", "2S", "4H"}, nil, true, "2S"},
		{"off", []string{"QS", "9S", "AS"}, nil, true, "9S"},
		{"off", []string{"AS", "3S", "10S"}, nil, true, "10S"},
	}

	reg := NewRegistry()
	for _, tc := range tests {
		t.Run(tc.strategy+"/"+tc.want, func(t *testing.T) {
			s, err := reg.PlayStrategy(tc.strategy, rand.New(rand.NewSource(1)))
			if err != nil {
				t.Fatalf("PlayStrategy(%q): %v", tc.strategy, err)
			}
			hand := trumpHand(t, domain.Spades, tc.hand...)
			before := hand.String()
			got, err := s.SelectCard(hand, TrickContext{
				Trump:    domain.Spades,
				TrumpLed: tc.trumpLed,
				Trick:    playedCards(t, domain.Spades, tc.trick...),
			})
			if err != nil {
				t.Fatalf("SelectCard: %v", err)
			}
			if got.Code() != tc.want {
				t.Errorf("%s on [%s] played %s, want %s", tc.strategy, before, got.Code(), tc.want)
			}
			if hand.String() != before {
				t.Errorf("%s mutated hand: [%s] -> [%s]", tc.strategy, before, hand)
			}
		})
	}
}

func TestRandomStrategyFollowsTrump(t *testing.T) {
	s := NewRandomStrategy(rand.New(rand.NewSource(3)))
	hand := trumpHand(t, domain.Spades, "QS", "4H", "5D", "9S")
	for i := 0; i < 50; i++ {
		c, err := s.SelectCard(hand, TrickContext{Trump: domain.Spades, TrumpLed: true})
		if err != nil {
			t.Fatalf("SelectCard: %v", err)
		}
		if !c.IsTrump(domain.Spades) {
			t.Fatalf("random played %s off trump while holding trump", c.ShortName())
		}
	}
}

func TestEveryStrategyPlaysHeldCard(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	reg := NewRegistry()
	for _, name := range BuiltinPlayStrategies() {
		s, err := reg.PlayStrategy(name, rng)
		if err != nil {
			t.Fatalf("PlayStrategy(%q): %v", name, err)
		}
		for round := 0; round < 40; round++ {
			deck := domain.NewDeck(rng)
			hands, err := deck.Deal(2, 6)
			if err != nil {
				t.Fatalf("Deal: %v", err)
			}
			trump := domain.TrumpSuits()[round%4]
			hand := hands[0]
			hand.SetTrump(trump)
			other := hands[1].Cards()
			trick := []*domain.Card{nil, nil, nil, nil}
			for i := 0; i < round%4; i++ {
				other[i].SetTrump(trump)
				trick[i] = &other[i]
			}
			ctx := TrickContext{Trump: trump, TrumpLed: round%2 == 0, Trick: trick}
			c, err := s.SelectCard(hand, ctx)
			if err != nil {
				t.Fatalf("%s: SelectCard: %v", name, err)
			}
			if !hand.Contains(c) {
				t.Fatalf("%s played %s, not in [%s]", name, c.ShortName(), hand)
			}
		}
	}
}

func TestStrategyOnEmptyHand(t *testing.T) {
	s, err := NewRegistry().PlayStrategy("highest", nil)
	if err != nil {
		t.Fatalf("PlayStrategy: %v", err)
	}
	if _, err := s.SelectCard(domain.NewHand(), TrickContext{}); err != ErrEmptyHand {
		t.Errorf("SelectCard on empty hand = %v, want ErrEmptyHand", err)
	}
}
