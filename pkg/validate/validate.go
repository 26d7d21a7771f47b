package validate

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/alexrkaufman/strawcoin/internal/domain"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
)

// Username trims and upper-cases raw and checks its length and alphabet.
func Username(raw string) (string, error) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	n := len([]rune(name))
	if n < MinUsernameLength {
		return "", domain.Validation("username must be at least 3 characters")
	}
	if n > MaxUsernameLength {
		return "", domain.Validation("username must be at most 32 characters")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return "", domain.Validation("username may contain only letters, digits, '_' and '-'")
		}
	}
	return name, nil
}

func Amount(amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	return nil
}

// AmountAtMost is Amount with an upper bound.
func AmountAtMost(amount, max int64) error {
	if err := Amount(amount); err != nil {
		return err
	}
	if amount > max {
		return domain.InvalidAmount(fmt.Sprintf("amount must not exceed %d", max))
	}
	return nil
}

// Total returns amount multiplied by count, or ErrInvalidAmount when the
// product does not fit in an int64.
func Total(amount int64, count int) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	if count > 0 && amount > math.MaxInt64/int64(count) {
		return 0, domain.InvalidAmount("amount too large for the number of recipients")
	}
	return amount * int64(count), nil
}
