package domain

import "time"

// Candidate is a contestant in one category. Kings, queens and
// lanterns are structurally identical but tallied separately.
type Candidate struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Batch     string    `json:"batch"`
	Bio       string    `json:"bio"`
	ImagePath string    `json:"image_path"`
	VoteCount int       `json:"vote_count"`
	CreatedAt time.Time `json:"created_at"`
}

// FinalCandidate is the trimmed listing used by the final round page.
type FinalCandidate struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Batch string `json:"batch"`
}
