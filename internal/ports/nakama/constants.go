package nakama

const (
	// RpcEvaluateBid scores a hand and returns the bid it supports.
	RpcEvaluateBid = "pitch_evaluate_bid"
	// RpcSelectCard asks a play strategy for a card.
	RpcSelectCard = "pitch_select_card"
	// RpcSimulateHand plays whole hands between bots and returns the event log.
	RpcSimulateHand = "pitch_simulate_hand"

	// configPathEnv names the game config loaded at module start.
	configPathEnv = "PITCH_CONFIG"
	// maxSimulatedHands bounds a single simulate request.
	maxSimulatedHands = 100
)

// gRPC status codes used in RPC errors.
const (
	codeInvalidArgument = 3
	codeInternal        = 13
)
