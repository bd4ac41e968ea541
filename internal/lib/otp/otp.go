// Package otp содержит генерацию и проверку одноразовых кодов подтверждения email.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

const codePattern = `^\d{6}$`

var codeRe = regexp.MustCompile(codePattern)

// GenerateCode возвращает случайный шестизначный код подтверждения.
func GenerateCode() (string, error) {
	const op = "otp.GenerateCode"
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// IsValidFormat проверяет, что код состоит ровно из шести цифр.
func IsValidFormat(code string) bool {
	return codeRe.MatchString(code)
}
