package domain

import "time"

// Vote is one row of the identity-gated ledger. At most one exists
// per (subject, category); the database constraint is the arbiter.
type Vote struct {
	ID          uint      `json:"id"`
	SubjectID   string    `json:"subject_id"`
	Category    Category  `json:"category"`
	CandidateID uint      `json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// FinalVote is the append-only audit record of token redemptions.
// CandidateID is nil for reward redemptions.
type FinalVote struct {
	ID          uint      `json:"id"`
	Token       string    `json:"token"`
	Category    Category  `json:"category"`
	CandidateID *uint     `json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
}
