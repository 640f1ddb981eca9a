package usecase

// TokenManager signs and verifies bearer tokens carrying the user identity.
type TokenManager interface {
	Sign(userID string, admin bool) (string, error)
	Verify(token string) (userID string, admin bool, err error)
}

// PasswordHasher wraps the password hashing primitive.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashed, password string) bool
}
