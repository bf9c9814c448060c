package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{
			name: "already canonical",
			raw:  "ABC123",
			want: "ABC123",
		},
		{
			name: "lowercase is folded",
			raw:  "abc123",
			want: "ABC123",
		},
		{
			name: "surrounding whitespace is trimmed",
			raw:  "  xY12z9\n",
			want: "XY12Z9",
		},
		{
			name:    "too short",
			raw:     "AB1",
			wantErr: ErrMalformedToken,
		},
		{
			name:    "too long",
			raw:     "ABC1234",
			wantErr: ErrMalformedToken,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: ErrMalformedToken,
		},
		{
			name:    "whitespace only",
			raw:     "      ",
			wantErr: ErrMalformedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeToken(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFinalTokenSlot(t *testing.T) {
	token := FinalToken{
		Token: "ABC123",
		King:  TokenSlot{Used: true, UsedBy: "uid-1"},
	}

	slot, ok := token.Slot(CategoryKing)
	require.True(t, ok)
	assert.True(t, slot.Used)
	assert.Equal(t, "uid-1", slot.UsedBy)

	slot, ok = token.Slot(CategoryReward)
	require.True(t, ok)
	assert.False(t, slot.Used)

	_, ok = token.Slot(Category("banana"))
	assert.False(t, ok)
}
