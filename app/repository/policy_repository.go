package repository

import (
	"github.com/bagaskara/polisku/app/models"
	"gorm.io/gorm"
)

// policyRepository implements the PolicyRepository interface
type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository creates a new policy repository instance
func NewPolicyRepository(db *gorm.DB) PolicyRepository {
	return &policyRepository{db: db}
}

// Create inserts a new policy record
func (r *policyRepository) Create(policy *models.Policy) error {
	return r.db.Create(policy).Error
}

// GetAll retrieves every policy record, newest first
func (r *policyRepository) GetAll() ([]models.Policy, error) {
	var policies []models.Policy
	err := r.db.Order("created_at DESC").Find(&policies).Error
	return policies, err
}

// GetByPolicyNumber retrieves a policy record by its policy number
func (r *policyRepository) GetByPolicyNumber(policyNumber string) (*models.Policy, error) {
	var policy models.Policy
	err := r.db.Where("policy_number = ?", policyNumber).First(&policy).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// Update writes a full policy record back to the store
func (r *policyRepository) Update(policy *models.Policy) error {
	return r.db.Save(policy).Error
}

// DeleteByPolicyNumber removes the policy record with the given policy number
func (r *policyRepository) DeleteByPolicyNumber(policyNumber string) error {
	return r.db.Where("policy_number = ?", policyNumber).Delete(&models.Policy{}).Error
}

// Count returns the total number of policy records
func (r *policyRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Policy{}).Count(&count).Error
	return count, err
}
