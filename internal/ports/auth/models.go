package auth

// Claims representa a identidade extraída do token.
type Claims struct {
	UserID string
	Email  string
}
