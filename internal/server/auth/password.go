package auth

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/saferoom/internal/common"
	"golang.org/x/crypto/argon2"
)

const saltSize = 32

// Credential is what the user table keeps in place of a password.
type Credential struct {
	Salt     []byte
	Verifier []byte
}

// DeriveVerifier stretches password with salt using argon2id.
func DeriveVerifier(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// NewCredential salts and stretches password. The caller's copy of the
// password is not modified.
func NewCredential(password string) Credential {
	salt := common.GenerateRandByteArray(saltSize)

	raw := []byte(password)
	defer common.WipeByteArray(raw)

	return Credential{Salt: salt, Verifier: DeriveVerifier(raw, salt)}
}

// Matches reports whether password reproduces the stored verifier. The
// comparison is constant time.
func (c Credential) Matches(password string) bool {
	if len(c.Salt) == 0 || len(c.Verifier) == 0 {
		return false
	}

	raw := []byte(password)
	defer common.WipeByteArray(raw)

	return subtle.ConstantTimeCompare(c.Verifier, DeriveVerifier(raw, c.Salt)) == 1
}
