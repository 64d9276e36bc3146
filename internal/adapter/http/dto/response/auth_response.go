package response

import (
	"time"

	"nct_portal/internal/domain/entities"
	"nct_portal/internal/usecase"
)

type ProfileResponse struct {
	ID          string    `json:"id,omitempty"`
	ProfileID   string    `json:"profileId,omitempty"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email,omitempty"`
	DriveFolder string    `json:"driveFolder,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

func FromProfile(p entities.VIPProfile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		ProfileID:   p.ProfileID,
		Name:        p.Name,
		Phone:       p.Phone,
		Email:       p.Email,
		DriveFolder: p.DriveFolder,
		CreatedAt:   p.CreatedAt,
	}
}

type SessionResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	ExpiresIn    int64           `json:"expiresIn"`
	Profile      ProfileResponse `json:"profile"`
	IsAdmin      bool            `json:"isAdmin"`
}

func FromSession(s usecase.Session) SessionResponse {
	return SessionResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresIn:    s.ExpiresIn,
		Profile:      FromProfile(s.Profile),
		IsAdmin:      s.IsAdmin,
	}
}

type MeResponse struct {
	Profile    ProfileResponse `json:"profile"`
	IsAdmin    bool            `json:"isAdmin"`
	OrderCount int             `json:"orderCount"`
}
