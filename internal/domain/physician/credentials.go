package physician

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	loginCodeMin    = 10000000
	loginCodeSpan   = 90000000
	resetTokenChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	resetTokenLen   = 6
	MinPasswordLen  = 6
	MaxPasswordLen  = 72 // limite do bcrypt, em bytes
)

// CodeSource gera códigos de login e tokens de redefinição.
type CodeSource interface {
	LoginCode() (string, error)
	ResetToken() (string, error)
}

type RandomCodes struct{}

// LoginCode devolve um número de 8 dígitos (10000000–99999999).
func (RandomCodes) LoginCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(loginCodeSpan))
	if err != nil {
		return "", fmt.Errorf("generate login code: %w", err)
	}
	return fmt.Sprintf("%d", loginCodeMin+n.Int64()), nil
}

// ResetToken devolve 6 caracteres alfanuméricos maiúsculos.
func (RandomCodes) ResetToken() (string, error) {
	var sb strings.Builder
	sb.Grow(resetTokenLen)

	size := big.NewInt(int64(len(resetTokenChars)))
	for i := 0; i < resetTokenLen; i++ {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("generate reset token: %w", err)
		}
		sb.WriteByte(resetTokenChars[n.Int64()])
	}
	return sb.String(), nil
}

// PasswordTooLong indica uma senha que o bcrypt recusaria.
func PasswordTooLong(password string) bool {
	return len(password) > MaxPasswordLen
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NormalizeEmail deixa o e-mail em minúsculas e sem espaços.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeResetToken aceita o código digitado com espaços ou minúsculas.
func NormalizeResetToken(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}

// TokensEqual compara em tempo constante.
func TokensEqual(stored, provided string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(provided)) == 1
}
