package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListOptions narrows and pages a list query. Zero Limit means no limit.
type ListOptions struct {
	Limit  int
	Offset int
	Order  []clause.OrderByColumn
	Where  *Condition
}

func (o ListOptions) apply(db *gorm.DB) *gorm.DB {
	if o.Limit > 0 {
		db = db.Limit(o.Limit)
	}
	if o.Offset > 0 {
		db = db.Offset(o.Offset)
	}
	for _, col := range o.Order {
		db = db.Order(col)
	}
	return db
}

// CRUDRepository is the persistence surface shared by the catalog entities.
type CRUDRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, opts ListOptions) ([]T, int64, error)
	Delete(ctx context.Context, id uint) error
}

type crudRepository[T any] struct {
	db       *gorm.DB
	preloads []string
}

// NewCRUDRepository builds a GORM-backed repository that preloads the given
// relations on every read.
func NewCRUDRepository[T any](db *gorm.DB, preloads ...string) CRUDRepository[T] {
	return &crudRepository[T]{db: db, preloads: preloads}
}

func (r *crudRepository[T]) withPreloads(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		tx = tx.Preload(p)
	}
	return tx
}

func (r *crudRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *crudRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.withPreloads(ctx).First(&entity, id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *crudRepository[T]) List(ctx context.Context, opts ListOptions) ([]T, int64, error) {
	var count int64
	countQuery := r.db.WithContext(ctx).Model(new(T))
	if opts.Where != nil {
		countQuery = countQuery.Where(opts.Where.SQL, opts.Where.Args...)
	}
	if err := countQuery.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]T, 0)
	query := r.withPreloads(ctx)
	if opts.Where != nil {
		query = query.Where(opts.Where.SQL, opts.Where.Args...)
	}
	if len(opts.Order) == 0 {
		query = query.Order("id")
	}
	if err := opts.apply(query).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

func (r *crudRepository[T]) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(new(T), id).Error
}
