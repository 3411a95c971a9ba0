package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"pitch/internal/app"
	"pitch/internal/bot"
	"pitch/internal/config"
	"pitch/internal/domain"
)

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	rpcs := map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error){
		RpcEvaluateBid:  rpcEvaluateBid,
		RpcSelectCard:   rpcSelectCard,
		RpcSimulateHand: rpcSimulateHand,
	}
	for id, fn := range rpcs {
		if err := initializer.RegisterRpc(id, fn); err != nil {
			return err
		}
	}
	return nil
}

type EvaluateBidRequest struct {
	Hand           []string        `json:"hand"`
	Seat           int             `json:"seat"`
	CurrentBid     int             `json:"current_bid"`
	CurrentBidder  *int            `json:"current_bidder"`
	Aggressiveness float64         `json:"aggressiveness"`
	Restraint      float64         `json:"restraint"`
	Strengths      map[int]float64 `json:"strengths"`
}

type EvaluateBidResponse struct {
	Bid           int                `json:"bid"`
	Suit          string             `json:"suit"`
	Strength      float64            `json:"strength"`
	SuitStrengths map[string]float64 `json:"suit_strengths"`
}

func rpcEvaluateBid(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req EvaluateBidRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		logger.Warn("rpcEvaluateBid: bad payload: %v", err)
		return "", runtime.NewError("invalid payload", codeInvalidArgument)
	}
	cards, err := domain.ParseCards(req.Hand)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	table, err := strengthTable(req.Strengths)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	bidder := bot.NoBidder
	if req.CurrentBidder != nil {
		bidder = *req.CurrentBidder
	}

	res := bot.EvaluateBid(domain.NewHand(cards...), bot.BidContext{
		Seat:          req.Seat,
		CurrentBid:    req.CurrentBid,
		CurrentBidder: bidder,
		Personality:   bot.Personality{Aggressiveness: req.Aggressiveness, Restraint: req.Restraint},
		Strengths:     table,
	})
	resp := EvaluateBidResponse{
		Bid:           res.Value,
		Suit:          string(res.Suit),
		Strength:      res.Strength,
		SuitStrengths: make(map[string]float64, len(res.SuitStrengths)),
	}
	for suit, s := range res.SuitStrengths {
		resp.SuitStrengths[string(suit)] = s
	}
	b, _ := json.Marshal(resp)
	return string(b), nil
}

type SelectCardRequest struct {
	Hand     []string `json:"hand"`
	Trump    string   `json:"trump"`
	TrumpLed bool     `json:"trump_led"`
	Trick    []string `json:"trick"`
	Strategy string   `json:"strategy"`
	Seed     *int64   `json:"seed"`
}

type SelectCardResponse struct {
	Card      string   `json:"card"`
	Strategy  string   `json:"strategy"`
	Remaining []string `json:"remaining"`
}

func rpcSelectCard(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req SelectCardRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		logger.Warn("rpcSelectCard: bad payload: %v", err)
		return "", runtime.NewError("invalid payload", codeInvalidArgument)
	}
	trump, err := parseTrump(req.Trump)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	cards, err := domain.ParseCards(req.Hand)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	trick, err := parseTrick(req.Trick, trump)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	agent, err := bot.NewAgent(bot.NewRegistry(), bot.AgentConfig{PlayStrategy: req.Strategy}, newRand(req.Seed), logger)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	agent.Hand.ReplaceCards(cards)
	agent.Hand.SetTrump(trump)

	card, err := agent.PlayCard(bot.TrickContext{Trump: trump, TrumpLed: req.TrumpLed, Trick: trick})
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	b, _ := json.Marshal(SelectCardResponse{
		Card:      card.Code(),
		Strategy:  agent.PlayStrategyName(),
		Remaining: domain.Codes(agent.Hand.Cards()),
	})
	return string(b), nil
}

type SimulateHandRequest struct {
	Seed       *int64                `json:"seed"`
	Hands      int                   `json:"hands"`
	MaxRedeals *int                  `json:"max_redeals"`
	Players    []config.PlayerConfig `json:"players"`
}

type simulateResponse struct {
	Hands  []handDTO   `json:"hands"`
	Totals [2]int      `json:"totals"`
	Events []app.Event `json:"events"`
}

// rpcSimulateHand plays bot-only hands. The response is a protobuf Struct
// in its canonical JSON form.
func rpcSimulateHand(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	req := SimulateHandRequest{Hands: 1}
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			logger.Warn("rpcSimulateHand: bad payload: %v", err)
			return "", runtime.NewError("invalid payload", codeInvalidArgument)
		}
	}
	if req.Hands < 1 || req.Hands > maxSimulatedHands {
		return "", runtime.NewError("hands must be between 1 and 100", codeInvalidArgument)
	}

	cfg := *config.GetGameConfig()
	if len(req.Players) > 0 {
		cfg.Players = append([]config.PlayerConfig(nil), req.Players...)
		for i := len(cfg.Players); i < domain.SeatCount; i++ {
			cfg.Players = append(cfg.Players, config.Default().Players[i])
		}
	}
	if err := cfg.Validate(); err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	rng := newRand(req.Seed)
	reg := bot.NewRegistry()
	agents := make([]*bot.Agent, 0, domain.SeatCount)
	for _, ac := range cfg.AgentConfigs(logger) {
		a, err := bot.NewAgent(reg, ac, rng, logger)
		if err != nil {
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
		agents = append(agents, a)
	}

	svc := app.NewService(rng, logger)
	svc.MaxRedeals = cfg.MaxRedeals
	if req.MaxRedeals != nil {
		svc.MaxRedeals = *req.MaxRedeals
	}
	match, events, err := svc.PlayHands(agents, req.Hands)
	if err != nil {
		logger.Error("rpcSimulateHand: %v", err)
		return "", runtime.NewError(err.Error(), codeInternal)
	}

	resp := simulateResponse{Totals: match.Totals, Events: events}
	for _, h := range match.Hands {
		resp.Hands = append(resp.Hands, handToDTO(h))
	}
	out, err := encodeStruct(resp)
	if err != nil {
		logger.Error("rpcSimulateHand: encode: %v", err)
		return "", runtime.NewError("failed to encode result", codeInternal)
	}
	return out, nil
}

// encodeStruct renders v as a google.protobuf.Struct in protojson form.
func encodeStruct(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", err
	}
	st, err := structpb.NewStruct(fields)
	if err != nil {
		return "", err
	}
	b, err := protojson.MarshalOptions{UseProtoNames: true}.Marshal(st)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func newRand(seed *int64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(*seed))
}
