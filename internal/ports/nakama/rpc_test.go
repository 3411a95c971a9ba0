package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/heroiclabs/nakama-common/runtime"
)

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func wantCode(t *testing.T, err error, code int) {
	t.Helper()
	var rerr *runtime.Error
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *runtime.Error, got %v", err)
	}
	if rerr.Code != code {
		t.Fatalf("code = %d, want %d (%s)", rerr.Code, code, rerr.Message)
	}
}

func TestEvaluateBidRPC(t *testing.T) {
	strengths := make(map[int]float64, 18)
	for r := 0; r < 18; r++ {
		strengths[r] = 0
	}
	strengths[17] = 6.8

	payload := mustJSON(t, EvaluateBidRequest{
		Hand:      []string{"AS", "KH", "9D"},
		Strengths: strengths,
	})
	out, err := rpcEvaluateBid(context.Background(), noopLogger{}, nil, nil, payload)
	if err != nil {
		t.Fatalf("rpcEvaluateBid: %v", err)
	}

	var resp EvaluateBidResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Bid != 6 || resp.Suit != "Spades" || resp.Strength != 6.8 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.SuitStrengths) != 4 {
		t.Fatalf("expected four suit strengths, got %v", resp.SuitStrengths)
	}
}

func TestEvaluateBidRPCRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"not json":   "{",
		"bad card":   `{"hand":["ZZ"]}`,
		"bad weight": `{"hand":["AS"],"strengths":{"18":1}}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := rpcEvaluateBid(context.Background(), noopLogger{}, nil, nil, payload)
			wantCode(t, err, codeInvalidArgument)
		})
	}
}

func TestSelectCardRPC(t *testing.T) {
	payload := mustJSON(t, SelectCardRequest{
		Hand:     []string{"2S", "AS", "KH"},
		Trump:    "Spades",
		Trick:    []string{"QS", ""},
		Strategy: "play_highest",
	})
	out, err := rpcSelectCard(context.Background(), noopLogger{}, nil, nil, payload)
	if err != nil {
		t.Fatalf("rpcSelectCard: %v", err)
	}

	var resp SelectCardResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Card != "AS" || resp.Strategy != "highest" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if !slices.Equal(resp.Remaining, []string{"2S", "KH"}) {
		t.Fatalf("remaining = %v", resp.Remaining)
	}
}

func TestSelectCardRPCRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"no trump":     `{"hand":["AS"]}`,
		"joker trump":  `{"hand":["AS"],"trump":"Joker"}`,
		"empty hand":   `{"hand":[],"trump":"Hearts"}`,
		"bad strategy": `{"hand":["AS"],"trump":"Hearts","strategy":"cheat"}`,
		"bad trick":    `{"hand":["AS"],"trump":"Hearts","trick":["1X"]}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := rpcSelectCard(context.Background(), noopLogger{}, nil, nil, payload)
			wantCode(t, err, codeInvalidArgument)
		})
	}
}

func simulate(t *testing.T, payload string) map[string]any {
	t.Helper()
	out, err := rpcSimulateHand(context.Background(), noopLogger{}, nil, nil, payload)
	if err != nil {
		t.Fatalf("rpcSimulateHand: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return m
}

func TestSimulateHandRPC(t *testing.T) {
	payload := `{"seed":11,"hands":2,"players":[{"name":"North","strategies":{"play_strategy":"highest"}}]}`
	got := simulate(t, payload)

	hands, ok := got["hands"].([]any)
	if !ok || len(hands) != 2 {
		t.Fatalf("expected 2 hands, got %v", got["hands"])
	}
	events, ok := got["events"].([]any)
	if !ok || len(events) == 0 {
		t.Fatalf("expected events, got %v", got["events"])
	}
	first, _ := events[0].(map[string]any)
	if first["kind"] != "hand_dealt" {
		t.Fatalf("first event = %v", first["kind"])
	}

	var totals [2]float64
	for _, h := range hands {
		scores := h.(map[string]any)["scores"].([]any)
		for i := range totals {
			totals[i] += scores[i].(float64)
		}
	}
	wantTotals := got["totals"].([]any)
	for i := range totals {
		if wantTotals[i].(float64) != totals[i] {
			t.Fatalf("totals = %v, summed hands = %v", wantTotals, totals)
		}
	}

	if again := simulate(t, payload); !reflect.DeepEqual(got, again) {
		t.Fatal("same seed produced different simulations")
	}
}

func TestSimulateHandRPCRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"zero hands":   `{"hands":0}`,
		"too many":     `{"hands":101}`,
		"five players": `{"players":[{},{},{},{},{}]}`,
		"bad strategy": `{"players":[{"strategies":{"bid_strategy":"psychic"}}]}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := rpcSimulateHand(context.Background(), noopLogger{}, nil, nil, payload)
			wantCode(t, err, codeInvalidArgument)
		})
	}
}

func TestEncodeStruct(t *testing.T) {
	out, err := encodeStruct(map[string]any{"hand_id": "abc", "scores": [2]int{3, -5}})
	if err != nil {
		t.Fatalf("encodeStruct: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if m["hand_id"] != "abc" || !reflect.DeepEqual(m["scores"], []any{3.0, -5.0}) {
		t.Fatalf("unexpected struct: %v", m)
	}
}
