package persistence

import (
	"context"
	"errors"
	"time"

	"OssLarare/internal/modules/contact/domain/entity"
	"OssLarare/internal/modules/contact/domain/repository"

	"github.com/redis/go-redis/v9"
)

const contactEdgeKeyPrefix = "oss:contact:edge:"

// contactEdgeRedisRepositoryImpl 每个 owner 一个有序集合，member 为 contact_id，score 为创建时间
type contactEdgeRedisRepositoryImpl struct {
	client *redis.Client
}

func NewContactEdgeRedisRepository(client *redis.Client) repository.ContactEdgeRepository {
	return &contactEdgeRedisRepositoryImpl{client: client}
}

func contactEdgeKey(ownerID string) string {
	return contactEdgeKeyPrefix + ownerID
}

func (r *contactEdgeRedisRepositoryImpl) Exists(ctx context.Context, ownerID, contactID string) (bool, error) {
	_, err := r.client.ZScore(ctx, contactEdgeKey(ownerID), contactID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// InsertIfAbsent ZADD NX 是单条原子命令，返回值即是否真正写入
func (r *contactEdgeRedisRepositoryImpl) InsertIfAbsent(ctx context.Context, edge *entity.ContactEdge) (bool, error) {
	createdAt := edge.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	n, err := r.client.ZAddNX(ctx, contactEdgeKey(edge.OwnerId), redis.Z{
		Score:  float64(createdAt.UnixMilli()),
		Member: edge.ContactId,
	}).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *contactEdgeRedisRepositoryImpl) Delete(ctx context.Context, ownerID, contactID string) error {
	return r.client.ZRem(ctx, contactEdgeKey(ownerID), contactID).Err()
}

func (r *contactEdgeRedisRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]entity.ContactEdge, error) {
	zs, err := r.client.ZRangeWithScores(ctx, contactEdgeKey(ownerID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	edges := make([]entity.ContactEdge, 0, len(zs))
	for _, z := range zs {
		contactID, ok := z.Member.(string)
		if !ok {
			continue
		}
		edges = append(edges, entity.ContactEdge{
			OwnerId:   ownerID,
			ContactId: contactID,
			CreatedAt: time.UnixMilli(int64(z.Score)),
		})
	}
	return edges, nil
}
