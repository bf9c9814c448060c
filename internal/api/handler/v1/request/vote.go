package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// CastVoteRequest is the form payload of the main-round vote.
type CastVoteRequest struct {
	CandidateID uint   `form:"candidate_id"`
	Category    string `form:"category"`
}

func (req *CastVoteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CandidateID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Category, validation.Required, validation.In("king", "queen", "lantern")),
	)
}

// LanternVoteRequest is the lantern-page payload. The token field is
// accepted for wire compatibility and plays no role in the vote.
type LanternVoteRequest struct {
	LanternID uint   `json:"lantern_id"`
	Token     string `json:"token"`
}

func (req *LanternVoteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.LanternID, validation.Required, validation.Min(uint(1))),
	)
}
