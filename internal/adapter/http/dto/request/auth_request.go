package request

type VIPLoginRequest struct {
	ProfileID string `json:"profileId" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type VerifyTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
	Name    string `json:"name"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
