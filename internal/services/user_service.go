package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/easyevent/server/internal/helpers"
	"github.com/easyevent/server/internal/models"
)

type UserService struct {
	usersRepo models.UsersRepo
}

func NewUserService(usersRepo models.UsersRepo) *UserService {
	return &UserService{
		usersRepo: usersRepo,
	}
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=user venueOwner"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult carries the signed token and the public projection of the
// account it belongs to.
type AuthResult struct {
	Token string             `json:"token"`
	User  *models.PublicUser `json:"user"`
}

func (us *UserService) Signup(ctx context.Context, req *SignupRequest) (*AuthResult, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid signup data provided: %v", err)
	}
	if !helpers.IsPasswordStrong(req.Password) {
		return nil, fmt.Errorf("password must be at least 8 characters with upper, lower and numeric characters")
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
	}

	created, err := us.usersRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return us.issueToken(created)
}

func (us *UserService) Login(ctx context.Context, req *LoginRequest) (*AuthResult, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid login data provided: %v", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := us.usersRepo.GetUserByEmail(ctx, email)
	if err != nil {
		// Same response for unknown email and bad password.
		return nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	return us.issueToken(user)
}

func (us *UserService) GetProfile(ctx context.Context, userId string) (*models.PublicUser, error) {
	id, err := models.ParseObjectID(userId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	user, err := us.usersRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func (us *UserService) issueToken(user *models.User) (*AuthResult, error) {
	token, err := helpers.NewAccessToken(user.ID.Hex(), user.Role, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %v", err)
	}
	return &AuthResult{Token: token, User: user.Public()}, nil
}
