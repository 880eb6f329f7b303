package services

import (
	"errors"
	"strings"

	"quizbank/models"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AuthService verifies bearer credentials minted by the external identity
// provider and maintains the local user rows that mirror its accounts. It
// never checks passwords; that stays with the provider.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

// Verify parses and validates a bearer token and returns the principal's
// user id. Absent, malformed, expired and badly signed tokens all come back
// as ErrInvalidToken.
func (s *AuthService) Verify(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}

	return sub, nil
}

// RegisterUser upserts the local row for a provider account. Repeated
// registration with the same firebaseId returns the existing user.
func (s *AuthService) RegisterUser(firebaseID, email string) (*models.User, error) {
	firebaseID = strings.TrimSpace(firebaseID)
	email = strings.TrimSpace(email)
	if firebaseID == "" || email == "" {
		return nil, ErrEmptyName
	}

	row := models.User{FirebaseID: firebaseID, Email: email}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "firebase_id"}},
		DoNothing: true,
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("firebase_id = ?", firebaseID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile reads one user by id.
func (s *AuthService) GetProfile(userID string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
