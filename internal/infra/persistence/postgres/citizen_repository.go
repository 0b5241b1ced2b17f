package postgres

import (
	"context"

	"mahalla/internal/domain/entity"
	"mahalla/internal/domain/repository"
	"mahalla/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const hasPhoneCondition = "phone IS NOT NULL AND phone <> ''"

// citizenRepository implements the repository.CitizenRepository interface.
type citizenRepository struct {
	db *gorm.DB
}

// NewCitizenRepository is the constructor for citizenRepository.
func NewCitizenRepository(db *gorm.DB) repository.CitizenRepository {
	return &citizenRepository{
		db: db,
	}
}

func (repo *citizenRepository) active(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.CitizenModel{}).
		Where("is_active = ?", true)
}

// CountActive counts active citizens.
func (repo *citizenRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.active(ctx).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active citizens")
	}

	return count, nil
}

// CountActiveWithPhone counts active citizens with a non-empty phone.
func (repo *citizenRepository) CountActiveWithPhone(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.active(ctx).Where(hasPhoneCondition).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count citizens with phone")
	}

	return count, nil
}

// ListActiveWithPhone lists active citizens with a non-empty phone, ordered by full name.
func (repo *citizenRepository) ListActiveWithPhone(ctx context.Context) ([]*entity.Citizen, error) {
	var citizenModels []*model.CitizenModel

	if err := repo.active(ctx).
		Where(hasPhoneCondition).
		Order("full_name").
		Find(&citizenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list citizens with phone")
	}

	citizens := make([]*entity.Citizen, 0, len(citizenModels))
	for _, citizenM := range citizenModels {
		citizens = append(citizens, toCitizenDomain(citizenM))
	}

	return citizens, nil
}

func toCitizenDomain(data *model.CitizenModel) *entity.Citizen {
	citizen := &entity.Citizen{
		ID:       data.ID,
		FullName: data.FullName,
		IsActive: data.IsActive,
	}
	if data.Phone != nil {
		citizen.Phone = *data.Phone
	}

	return citizen
}
