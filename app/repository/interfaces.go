package repository

import (
	"github.com/bagaskara/polisku/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
}

// PolicyRepository defines the interface for policy-record operations.
// Policies are keyed by their generated policy number; there is no
// partial-field patch, mutation is full-record update only.
type PolicyRepository interface {
	Create(policy *models.Policy) error
	GetAll() ([]models.Policy, error)
	GetByPolicyNumber(policyNumber string) (*models.Policy, error)
	Update(policy *models.Policy) error
	DeleteByPolicyNumber(policyNumber string) error
	Count() (int64, error)
}
