package postgres

import (
	"context"
	"errors"

	"github.com/inkwell/bookshop/internal/domain"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

func (r *categoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	rec := categoryModel{Name: category.Name}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Category{}, err
	}
	return toDomainCategory(rec), nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (domain.Category, error) {
	var rec categoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Category{}, domain.ErrNotFound
		}
		return domain.Category{}, err
	}
	return toDomainCategory(rec), nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var recs []categoryModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(recs))
	for _, rec := range recs {
		categories = append(categories, toDomainCategory(rec))
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category domain.Category) error {
	res := r.db.WithContext(ctx).
		Model(&categoryModel{}).
		Where("id = ?", category.ID).
		Update("name", category.Name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&categoryModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toDomainCategory(row categoryModel) domain.Category {
	return domain.Category{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
