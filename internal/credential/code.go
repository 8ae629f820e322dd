package credential

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// CodeAlphabet is the set of characters pairing codes are drawn from. It
// leaves out 0, O, 1, I and L.
const CodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// CodeLength is the number of characters in a pairing code.
const CodeLength = 6

// GeneratePairingCode returns a random pairing code of [CodeLength]
// characters from [CodeAlphabet].
func GeneratePairingCode() (string, error) {
	max := big.NewInt(int64(len(CodeAlphabet)))
	code := make([]byte, CodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = CodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// ValidPairingCode reports whether code could have been produced by
// [GeneratePairingCode].
func ValidPairingCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(CodeAlphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}
