package persistence

import (
	"context"
	"errors"

	"OssLarare/internal/modules/contact/domain/entity"
	"OssLarare/internal/modules/contact/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type contactEdgeRepositoryImpl struct {
	db *gorm.DB
}

func NewContactEdgeRepository(db *gorm.DB) repository.ContactEdgeRepository {
	return &contactEdgeRepositoryImpl{db: db}
}

func (r *contactEdgeRepositoryImpl) Exists(ctx context.Context, ownerID, contactID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.ContactEdge{}).
		Where("owner_id = ? AND contact_id = ?", ownerID, contactID).
		Limit(1).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// InsertIfAbsent 依赖 uk_owner_contact 唯一索引，冲突时不写入
func (r *contactEdgeRepositoryImpl) InsertIfAbsent(ctx context.Context, edge *entity.ContactEdge) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "contact_id"}},
			DoNothing: true,
		}).
		Create(edge)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *contactEdgeRepositoryImpl) Delete(ctx context.Context, ownerID, contactID string) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND contact_id = ?", ownerID, contactID).
		Delete(&entity.ContactEdge{}).Error
}

func (r *contactEdgeRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]entity.ContactEdge, error) {
	var edges []entity.ContactEdge
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&edges).Error
	if err != nil {
		return nil, err
	}
	return edges, nil
}
