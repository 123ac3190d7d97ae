package repositoryImp

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"chili/entities"
	"chili/pkg/credential/repository"
)

type credentialRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CredentialRepository { return &credentialRepo{db} }

// hashPassword matches the legacy scheme: unsalted single-round sha256 hex.
// Existing databases hold these digests, so the algorithm cannot change
// without a migration.
func hashPassword(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

func (r *credentialRepo) CreateAccount(username, password, role string) (uint, error) {
	if strings.TrimSpace(username) == "" {
		return 0, entities.Invalid("username", "must not be empty")
	}
	if password == "" {
		return 0, entities.Invalid("password", "must not be empty")
	}
	if role == "" {
		role = "user"
	}
	if role != "user" && role != "admin" {
		return 0, entities.Invalid("role", "must be user or admin")
	}

	u := entities.User{Username: username, PasswordHash: hashPassword(password), Role: role}
	if err := r.db.Create(&u).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, repository.ErrDuplicateUsername
		}
		return 0, fmt.Errorf("create account: %w", err)
	}
	return u.ID, nil
}

func (r *credentialRepo) Authenticate(username, password string) (*entities.User, error) {
	var u entities.User
	err := r.db.Where("username = ? AND password = ?", username, hashPassword(password)).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthFailed
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return &u, nil
}

func (r *credentialRepo) FindByID(id uint) (*entities.User, error) {
	var u entities.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
