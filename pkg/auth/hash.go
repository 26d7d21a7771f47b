package auth

//go:generate mockgen -source=hash.go -destination=mock_hash.go -package=auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const MinPassphraseLength = 8

var ErrWeakPassphrase = errors.New("passphrase must be at least 8 characters")

// HashServiceInterface guards the privileged login with a bcrypt passphrase.
type HashServiceInterface interface {
	HashPassphrase(passphrase string) (string, error)
	ComparePassphrase(hash, passphrase string) bool
}

type HashService struct{}

func (b *HashService) HashPassphrase(passphrase string) (string, error) {
	if len(passphrase) < MinPassphraseLength {
		return "", ErrWeakPassphrase
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *HashService) ComparePassphrase(hash, passphrase string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passphrase)) == nil
}
