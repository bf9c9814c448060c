package response

import "github.com/kaungzawhein/thadingyut-voting/internal/domain"

// VoteResult is the envelope shared by all vote submissions.
type VoteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RewardClaimResult extends VoteResult with the claimed reward.
type RewardClaimResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	RewardValue string `json:"reward_value"`
	Token       string `json:"token"`
}

// TokenStatusResponse exposes which slots a token has spent. Who
// spent them stays server-side.
type TokenStatusResponse struct {
	Token       string `json:"token"`
	KingUsed    bool   `json:"king_used"`
	QueenUsed   bool   `json:"queen_used"`
	LanternUsed bool   `json:"lantern_used"`
	RewardUsed  bool   `json:"reward_used"`
}

// MyVotesResponse lists which categories the subject has voted in.
type MyVotesResponse struct {
	Votes []domain.Vote `json:"votes"`
}

type LoginResponse struct {
	Token  string        `json:"token"`
	Claims domain.Claims `json:"claims"`
}

type CandidatesResponse struct {
	Kings  []domain.Candidate `json:"kings"`
	Queens []domain.Candidate `json:"queens"`
}

type LanternsResponse struct {
	Lanterns []domain.Candidate `json:"lanterns"`
}

type FinalCandidatesResponse struct {
	Kings  []domain.FinalCandidate `json:"kings"`
	Queens []domain.FinalCandidate `json:"queens"`
}
