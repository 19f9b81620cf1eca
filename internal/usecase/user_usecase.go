package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"polymesh/internal/domain/entities"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var (
	ErrInvalidName         = fmt.Errorf("name is required: %w", entities.ErrValidation)
	ErrInvalidEmail        = fmt.Errorf("invalid email: %w", entities.ErrValidation)
	ErrWeakPassword        = fmt.Errorf("password must have at least 6 characters: %w", entities.ErrValidation)
	ErrEmailTaken          = fmt.Errorf("email already registered: %w", entities.ErrConflict)
	ErrInvalidCredentials  = fmt.Errorf("invalid credentials: %w", entities.ErrUnauthorized)
	ErrUserNotFound        = fmt.Errorf("user not found: %w", entities.ErrNotFound)
	errTokenIssuerNotReady = errors.New("token issuer not configured")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type IUserUseCase interface {
	Register(ctx context.Context, in RegisterInput) (entities.User, error)
	Login(ctx context.Context, email, password string) (string, entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
}

type UserUseCase struct {
	repo   interfaces.IUserRepository
	tokens interfaces.ITokenIssuer
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, tokens interfaces.ITokenIssuer) *UserUseCase {
	return &UserUseCase{repo: repo, tokens: tokens}
}

func (u *UserUseCase) Register(ctx context.Context, in RegisterInput) (entities.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.User{}, ErrInvalidName
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return entities.User{}, err
	}
	if len(in.Password) < minPasswordLength {
		return entities.User{}, ErrWeakPassword
	}
	phone := strings.TrimSpace(in.Phone)
	if phone != "" && !ValidMSISDN(phone) {
		return entities.User{}, ErrInvalidPhone
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entities.RoleCustomer,
		Phone:        phone,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, user)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return entities.User{}, ErrEmailTaken
	}
	if err != nil {
		logger.FromCtx(ctx).Error("[user][usecase] repository create failed", zap.Error(err))
		return entities.User{}, err
	}
	logger.FromCtx(ctx).Info("[user][usecase] registered", zap.String("user_id", created.ID))
	return created, nil
}

func (u *UserUseCase) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", entities.User{}, ErrInvalidCredentials
	}
	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.User{}, err
	}
	if user.ID == "" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		logger.FromCtx(ctx).Info("[user][usecase] login rejected")
		return "", entities.User{}, ErrInvalidCredentials
	}
	if u.tokens == nil {
		return "", entities.User{}, errTokenIssuerNotReady
	}
	token, err := u.tokens.Issue(user)
	if err != nil {
		return "", entities.User{}, err
	}
	return token, user, nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func normalizeEmail(s string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	if err != nil || addr.Name != "" {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}
