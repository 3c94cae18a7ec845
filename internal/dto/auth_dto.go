package dto

import "github.com/greensteps/greensteps-api/internal/model"

type SignupInput struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Department string `json:"department" binding:"required"`
	Campus     string `json:"campus" binding:"required"`

	// Commute baseline: the usual trip the user makes. DistanceKm is the
	// distance of one trip; Trips is how many such trips a typical day has.
	Mode       string  `json:"mode" binding:"required"`
	DistanceKm float64 `json:"distance_km" binding:"gte=0"`
	Trips      int     `json:"trips" binding:"required,min=1"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int64       `json:"expires_in"`
	User        *model.User `json:"user"`
}
