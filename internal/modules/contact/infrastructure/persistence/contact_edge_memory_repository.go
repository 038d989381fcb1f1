package persistence

import (
	"context"
	"sort"
	"sync"

	"OssLarare/internal/modules/contact/domain/entity"
	"OssLarare/internal/modules/contact/domain/repository"
)

type edgeKey struct {
	owner   string
	contact string
}

// ContactEdgeMemoryRepository 进程内实现，本地开发和测试使用
type ContactEdgeMemoryRepository struct {
	mu    sync.RWMutex
	edges map[edgeKey]entity.ContactEdge
	seq   int64
}

var _ repository.ContactEdgeRepository = (*ContactEdgeMemoryRepository)(nil)

func NewContactEdgeMemoryRepository() *ContactEdgeMemoryRepository {
	return &ContactEdgeMemoryRepository{edges: make(map[edgeKey]entity.ContactEdge)}
}

func (r *ContactEdgeMemoryRepository) Exists(ctx context.Context, ownerID, contactID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.edges[edgeKey{ownerID, contactID}]
	return ok, nil
}

func (r *ContactEdgeMemoryRepository) InsertIfAbsent(ctx context.Context, edge *entity.ContactEdge) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	k := edgeKey{edge.OwnerId, edge.ContactId}
	if _, ok := r.edges[k]; ok {
		return false, nil
	}
	r.seq++
	edge.Id = r.seq
	r.edges[k] = *edge
	return true, nil
}

func (r *ContactEdgeMemoryRepository) Delete(ctx context.Context, ownerID, contactID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.edges, edgeKey{ownerID, contactID})
	return nil
}

func (r *ContactEdgeMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.ContactEdge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]entity.ContactEdge, 0)
	for k, e := range r.edges {
		if k.owner == ownerID {
			out = append(out, e)
		}
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

// Len 当前边总数
func (r *ContactEdgeMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.edges)
}
