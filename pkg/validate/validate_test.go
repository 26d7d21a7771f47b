package validate

import (
	"math"
	"testing"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Upper-cased", input: "alice", want: "ALICE"},
		{name: "Trimmed", input: "  bob_2 ", want: "BOB_2"},
		{name: "Too short", input: "al", wantErr: true},
		{name: "Blank", input: "   ", wantErr: true},
		{name: "Too long", input: "abcdefghijklmnopqrstuvwxyzabcdefg", wantErr: true},
		{name: "Bad characters", input: "al ice", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Username(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmount(t *testing.T) {
	assert.NoError(t, Amount(1))
	assert.ErrorIs(t, Amount(0), domain.ErrInvalidAmount)
	assert.ErrorIs(t, Amount(-5), domain.ErrInvalidAmount)
}

func TestAmountAtMost(t *testing.T) {
	assert.NoError(t, AmountAtMost(100, 100))
	assert.ErrorIs(t, AmountAtMost(0, 100), domain.ErrInvalidAmount)

	err := AmountAtMost(101, 100)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Contains(t, err.Error(), "must not exceed 100")
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		count   int
		want    int64
		wantErr bool
	}{
		{name: "Product", amount: 60, count: 2, want: 120},
		{name: "No recipients", amount: 5, count: 0, want: 0},
		{name: "Exactly max", amount: math.MaxInt64 / 4, count: 4, want: math.MaxInt64 / 4 * 4},
		{name: "Would wrap", amount: 1<<62 + 1, count: 4, wantErr: true},
		{name: "Non-positive amount", amount: 0, count: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Total(tt.amount, tt.count)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
