package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"estate-cms/models"
)

// ListOptions narrows and orders a List or First query. Where keys are
// column names matched for equality.
type ListOptions struct {
	Where  map[string]any
	Order  string
	Limit  int
	Offset int
	Select []string
}

// OrderNewestFirst is the ordering used by every time-ordered feed.
const OrderNewestFirst = "created_at desc, id desc"

// Repository is the persistence contract shared by every entity type.
// Each call runs a fresh query; nothing is cached between calls.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id uint) (*T, error)
	First(ctx context.Context, opts ListOptions) (*T, error)
	List(ctx context.Context, opts ListOptions) ([]T, error)
	Count(ctx context.Context, where map[string]any) (int64, error)
	UpdateMerge(ctx context.Context, id uint, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id uint) error
}

type repository[T any] struct {
	db   *gorm.DB
	name string
}

// NewRepository returns a gorm-backed Repository. name is used in not-found
// messages ("Project not found").
func NewRepository[T any](db *gorm.DB, name string) Repository[T] {
	return &repository[T]{db: db, name: name}
}

func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("creating %s: %w", r.name, err)
	}
	return nil
}

func (r *repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &entity, nil
}

func (r *repository[T]) First(ctx context.Context, opts ListOptions) (*T, error) {
	var entity T
	opts.Limit = 1
	err := r.query(ctx, opts).First(&entity).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &entity, nil
}

func (r *repository[T]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	entities := []T{}
	if err := r.query(ctx, opts).Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.name, err)
	}
	return entities, nil
}

func (r *repository[T]) Count(ctx context.Context, where map[string]any) (int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(new(T))
	if len(where) > 0 {
		query = query.Where(where)
	}
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("counting %s: %w", r.name, err)
	}
	return total, nil
}

// UpdateMerge overwrites only the columns present in fields and returns the
// stored entity afterwards. Columns absent from fields keep their value.
func (r *repository[T]) UpdateMerge(ctx context.Context, id uint, fields map[string]any) (*T, error) {
	entity, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return entity, nil
	}

	if err := r.db.WithContext(ctx).Model(entity).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("updating %s %d: %w", r.name, id, err)
	}
	return r.GetByID(ctx, id)
}

func (r *repository[T]) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return fmt.Errorf("deleting %s %d: %w", r.name, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("%s not found", r.name)
	}
	return nil
}

func (r *repository[T]) query(ctx context.Context, opts ListOptions) *gorm.DB {
	query := r.db.WithContext(ctx).Model(new(T))
	if len(opts.Select) > 0 {
		query = query.Select(opts.Select)
	}
	if len(opts.Where) > 0 {
		query = query.Where(opts.Where)
	}
	if opts.Order != "" {
		query = query.Order(opts.Order)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}
	return query
}

func (r *repository[T]) translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("%s not found", r.name)
	}
	return fmt.Errorf("loading %s: %w", r.name, err)
}
