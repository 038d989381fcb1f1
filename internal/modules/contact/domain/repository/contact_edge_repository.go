package repository

import (
	"context"

	"OssLarare/internal/modules/contact/domain/entity"
)

// ContactEdgeRepository 后端存储契约，所有错误原样返回，由 service 归类
type ContactEdgeRepository interface {
	Exists(ctx context.Context, ownerID, contactID string) (bool, error)
	// InsertIfAbsent 单条原子插入，已存在时返回 (false, nil)
	InsertIfAbsent(ctx context.Context, edge *entity.ContactEdge) (bool, error)
	// Delete 删除不存在的边不是错误
	Delete(ctx context.Context, ownerID, contactID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]entity.ContactEdge, error)
}
