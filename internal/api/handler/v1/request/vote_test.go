package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastVoteRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CastVoteRequest
		wantErr bool
	}{
		{
			name: "valid king vote",
			req:  CastVoteRequest{CandidateID: 1, Category: "king"},
		},
		{
			name: "valid lantern vote",
			req:  CastVoteRequest{CandidateID: 12, Category: "lantern"},
		},
		{
			name:    "missing candidate",
			req:     CastVoteRequest{Category: "queen"},
			wantErr: true,
		},
		{
			name:    "missing category",
			req:     CastVoteRequest{CandidateID: 1},
			wantErr: true,
		},
		{
			name:    "reward is not a form vote category",
			req:     CastVoteRequest{CandidateID: 1, Category: "reward"},
			wantErr: true,
		},
		{
			name:    "unknown category",
			req:     CastVoteRequest{CandidateID: 1, Category: "prince"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLanternVoteRequestValidate(t *testing.T) {
	t.Run("valid without a token", func(t *testing.T) {
		req := LanternVoteRequest{LanternID: 3}
		require.NoError(t, req.Validate())
	})

	t.Run("token is accepted and ignored", func(t *testing.T) {
		req := LanternVoteRequest{LanternID: 3, Token: "anything at all"}
		require.NoError(t, req.Validate())
	})

	t.Run("missing lantern", func(t *testing.T) {
		req := LanternVoteRequest{}
		require.Error(t, req.Validate())
	})
}
