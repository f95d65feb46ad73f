package services

import (
	"errors"
	"strings"
	"time"

	"newsapp-api/config"
	"newsapp-api/export"
	"newsapp-api/models"
	"newsapp-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Create(req models.CreateUserRequest) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetList(f models.UserFilter) ([]models.User, int64, error)
	Update(id uint, req models.UpdateUserRequest) (*models.User, error)
	Delete(id uint) error
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	ExportCSV(f models.UserFilter) (string, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(req models.CreateUserRequest) (*models.User, error) {
	if req.Email != nil {
		exists, err := s.userRepo.EmailExists(*req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, models.ErrorConflict{Message: "Email already exists."}
		}
	}

	// Passwords are stored as bcrypt hashes; the login endpoint compares
	// hashes, never plain text.
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Anything other than the two known roles silently becomes "User".
	role := req.Role
	if !models.ValidRole(role) {
		role = models.RoleUser
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrorNotFound{Message: "User not found"}
	}
	return user, err
}

func (s *userService) GetList(f models.UserFilter) ([]models.User, int64, error) {
	return s.userRepo.GetList(f)
}

func (s *userService) Update(id uint, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, err
	}

	if req.FullName != nil && strings.TrimSpace(*req.FullName) != "" {
		user.FullName = req.FullName
	}
	// An unrecognized role on update is ignored, not coerced.
	if req.Role != nil && models.ValidRole(*req.Role) {
		user.Role = *req.Role
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(id uint) error {
	ok, err := s.userRepo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrorNotFound{Message: "User not found"}
	}
	return nil
}

func (s *userService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "Invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "Invalid credentials"}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *userService) ExportCSV(f models.UserFilter) (string, error) {
	users, err := s.userRepo.GetAllFiltered(f)
	if err != nil {
		return "", err
	}
	return export.CSV(users, export.UserColumns()), nil
}

func (s *userService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     now.Add(config.JWTExpiration).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}
