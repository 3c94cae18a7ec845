package service

import (
	"context"
	"testing"

	"github.com/greensteps/greensteps-api/internal/dto"
	"github.com/greensteps/greensteps-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validSignupInput() dto.SignupInput {
	return dto.SignupInput{
		Name:       "Nadia",
		Email:      "nadia@campus.edu",
		Password:   "correct-horse",
		Department: "Computer Science",
		Campus:     "Main Campus",
		Mode:       "Bus",
		DistanceKm: 6.5,
		Trips:      2,
	}
}

func TestSignupCreatesUserWithBaseline(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo, nil)

	resp, err := svc.Signup(context.Background(), validSignupInput())
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.Equal(t, "nadia@campus.edu", repo.created.Email)
	assert.Equal(t, "Bus", repo.created.DefaultMode)
	assert.InDelta(t, 6.5, repo.created.DefaultDistanceKm, 1e-9)
	assert.Equal(t, 2, repo.created.DefaultTrips)

	// The baseline never produces emissions or points on its own.
	assert.Zero(t, repo.created.TotalPoints)
	assert.Zero(t, repo.created.TotalEmissions)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)

	// Stored hash must verify against the original password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("correct-horse")))
}

func TestSignupRejectsUnknownDepartment(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, nil)

	input := validSignupInput()
	input.Department = "Astrology"
	_, err := svc.Signup(context.Background(), input)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestSignupRejectsUnknownCampus(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, nil)

	input := validSignupInput()
	input.Campus = "Moon Base"
	_, err := svc.Signup(context.Background(), input)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestSignupRejectsTakenEmail(t *testing.T) {
	existing := newTestUser()
	existing.Email = "nadia@campus.edu"
	svc := NewAuthService(&fakeUserRepo{user: existing}, nil)

	_, err := svc.Signup(context.Background(), validSignupInput())
	assert.ErrorIs(t, err, apperror.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	user := newTestUser()
	user.PasswordHash = string(hash)
	svc := NewAuthService(&fakeUserRepo{user: user}, nil)

	resp, err := svc.Login(context.Background(), dto.LoginInput{
		Email: user.Email, Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, user.ID, resp.User.ID)

	_, err = svc.Login(context.Background(), dto.LoginInput{
		Email: user.Email, Password: "wrong",
	})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Login(context.Background(), dto.LoginInput{
		Email: "nobody@campus.edu", Password: "correct-horse",
	})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestSignupTokenSubjectIsUserID(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo, nil)

	resp, err := svc.Signup(context.Background(), validSignupInput())
	require.NoError(t, err)

	// Created users get a generated ID before the token is signed.
	assert.NotEqual(t, uuid.Nil, resp.User.ID)
}
