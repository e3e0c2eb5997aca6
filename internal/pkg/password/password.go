package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a one-way bcrypt digest from a plaintext password. The salt is
// embedded in the digest, so verification needs nothing besides the digest.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored digest. A malformed
// digest verifies false rather than surfacing an error; callers treat every
// mismatch the same way.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
