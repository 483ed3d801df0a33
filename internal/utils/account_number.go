package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

// AccountNumberLength is the number of digits of a customer facing account number.
const AccountNumberLength = 10

var (
	accountNumberPattern = regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, AccountNumberLength))
	accountNumberSpace   = new(big.Int).Exp(big.NewInt(10), big.NewInt(AccountNumberLength), nil)
)

// GenerateAccountNumber returns a cryptographically random, zero padded account number.
// Uniqueness is enforced by the store, callers retry on a duplicate.
func GenerateAccountNumber() (string, error) {
	n, err := rand.Int(rand.Reader, accountNumberSpace)
	if err != nil {
		return "", fmt.Errorf("failed to read random number: %w", err)
	}
	return fmt.Sprintf("%0*d", AccountNumberLength, n), nil
}

// IsValidAccountNumber reports whether s has the account number shape.
func IsValidAccountNumber(s string) bool {
	return accountNumberPattern.MatchString(s)
}
