package responses

type Login struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type Register struct {
	UserID string `json:"user_id"`
}
