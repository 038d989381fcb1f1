package service

import (
	"context"
	"strings"
	"time"

	"OssLarare/internal/metrics"
	contactRequest "OssLarare/internal/modules/contact/application/dto/request"
	contactRespond "OssLarare/internal/modules/contact/application/dto/respond"
	contactEntity "OssLarare/internal/modules/contact/domain/entity"
	contactRepository "OssLarare/internal/modules/contact/domain/repository"
	"OssLarare/pkg/util"
	"OssLarare/pkg/xerr"
	"OssLarare/pkg/zlog"

	"go.uber.org/zap"
)

type ContactService interface {
	ToggleContact(ctx context.Context, req contactRequest.ToggleContactRequest) (*contactRespond.ToggleContactRespond, error)
	GetContactStatus(ctx context.Context, req contactRequest.GetContactStatusRequest) (*contactRespond.ContactStatusRespond, error)
	GetContactList(ctx context.Context, req contactRequest.GetContactListRequest) ([]contactRespond.ContactListItem, error)
}

type contactServiceImpl struct {
	edgeRepo  contactRepository.ContactEdgeRepository
	publisher contactRepository.ContactEventPublisher
	notifier  contactRepository.ContactNotifier
	now       func() time.Time
}

type Option func(*contactServiceImpl)

// WithPublisher 关系变更后发布事件
func WithPublisher(p contactRepository.ContactEventPublisher) Option {
	return func(s *contactServiceImpl) { s.publisher = p }
}

// WithNotifier 新增关系后通知被添加的用户
func WithNotifier(n contactRepository.ContactNotifier) Option {
	return func(s *contactServiceImpl) { s.notifier = n }
}

func WithClock(now func() time.Time) Option {
	return func(s *contactServiceImpl) { s.now = now }
}

func NewContactService(edgeRepo contactRepository.ContactEdgeRepository, opts ...Option) ContactService {
	s := &contactServiceImpl{
		edgeRepo: edgeRepo,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ToggleContact 按 believed_state 决定删除还是添加。
// 删除无条件且幂等；添加先查存在再条件插入，两次往返之间的竞争由存储层唯一约束兜底。
func (s *contactServiceImpl) ToggleContact(ctx context.Context, req contactRequest.ToggleContactRequest) (*contactRespond.ToggleContactRespond, error) {
	start := s.now()
	ownerID := strings.TrimSpace(req.OwnerId)
	contactID := strings.TrimSpace(req.ContactId)

	outcome, err := s.toggle(ctx, ownerID, contactID, req.BelievedState)
	metrics.RecordToggle(outcome.String(), s.now().Sub(start))

	resp := &contactRespond.ToggleContactRespond{
		OwnerId:   ownerID,
		ContactId: contactID,
		Outcome:   outcome.String(),
		Present:   outcome.Present(),
	}
	if err != nil {
		return resp, err
	}

	switch outcome {
	case contactEntity.OutcomeAdded:
		s.afterChange(ctx, contactEntity.EventContactAdded, ownerID, contactID)
		s.notify(ownerID, contactID)
	case contactEntity.OutcomeRemoved:
		s.afterChange(ctx, contactEntity.EventContactRemoved, ownerID, contactID)
	}
	return resp, nil
}

func (s *contactServiceImpl) toggle(ctx context.Context, ownerID, contactID string, believedPresent bool) (contactEntity.ToggleOutcome, error) {
	if ownerID == "" || contactID == "" {
		return contactEntity.OutcomeInvalidOperation, xerr.ErrParam
	}
	if ownerID == contactID {
		return contactEntity.OutcomeInvalidOperation, xerr.ErrSelfContact
	}

	if believedPresent {
		if err := s.edgeRepo.Delete(ctx, ownerID, contactID); err != nil {
			logStoreError("delete contact edge failed", ownerID, contactID, err)
			return contactEntity.OutcomeTransientFailure, xerr.ErrTransient
		}
		return contactEntity.OutcomeRemoved, nil
	}

	exists, err := s.edgeRepo.Exists(ctx, ownerID, contactID)
	if err != nil {
		logStoreError("check contact edge failed", ownerID, contactID, err)
		return contactEntity.OutcomeTransientFailure, xerr.ErrTransient
	}
	if exists {
		return contactEntity.OutcomeAlreadyExists, nil
	}

	inserted, err := s.edgeRepo.InsertIfAbsent(ctx, &contactEntity.ContactEdge{
		Uuid:      util.GenerateUUID(),
		OwnerId:   ownerID,
		ContactId: contactID,
		CreatedAt: s.now(),
	})
	if err != nil {
		logStoreError("insert contact edge failed", ownerID, contactID, err)
		return contactEntity.OutcomeTransientFailure, xerr.ErrTransient
	}
	if !inserted {
		// 另一个请求在 Exists 之后抢先写入
		return contactEntity.OutcomeAlreadyExists, nil
	}
	return contactEntity.OutcomeAdded, nil
}

func (s *contactServiceImpl) afterChange(ctx context.Context, eventType, ownerID, contactID string) {
	if s.publisher == nil {
		return
	}
	evt := contactEntity.ContactEvent{
		Type:       eventType,
		OwnerId:    ownerID,
		ContactId:  contactID,
		OccurredAt: s.now(),
	}
	if err := s.publisher.PublishContactEvent(ctx, evt); err != nil {
		metrics.RecordEventPublishFailure()
		zlog.Warn("publish contact event failed",
			zap.String("type", eventType),
			zap.String("owner_id", ownerID),
			zap.String("contact_id", contactID),
			zap.Error(err))
	}
}

func (s *contactServiceImpl) notify(ownerID, contactID string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyContactAdded(ownerID, contactID); err != nil {
		zlog.Warn("notify contact added failed",
			zap.String("owner_id", ownerID),
			zap.String("contact_id", contactID),
			zap.Error(err))
	}
}

func (s *contactServiceImpl) GetContactStatus(ctx context.Context, req contactRequest.GetContactStatusRequest) (*contactRespond.ContactStatusRespond, error) {
	ownerID := strings.TrimSpace(req.OwnerId)
	contactID := strings.TrimSpace(req.ContactId)
	if ownerID == "" || contactID == "" {
		return nil, xerr.ErrParam
	}
	if ownerID == contactID {
		return nil, xerr.ErrSelfContact
	}

	exists, err := s.edgeRepo.Exists(ctx, ownerID, contactID)
	if err != nil {
		logStoreError("check contact edge failed", ownerID, contactID, err)
		return nil, xerr.ErrTransient
	}
	return &contactRespond.ContactStatusRespond{
		OwnerId:   ownerID,
		ContactId: contactID,
		Present:   exists,
	}, nil
}

func (s *contactServiceImpl) GetContactList(ctx context.Context, req contactRequest.GetContactListRequest) ([]contactRespond.ContactListItem, error) {
	ownerID := strings.TrimSpace(req.OwnerId)
	if ownerID == "" {
		return nil, xerr.ErrParam
	}

	edges, err := s.edgeRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		zlog.Error("list contact edges failed", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, xerr.ErrTransient
	}

	out := make([]contactRespond.ContactListItem, 0, len(edges))
	for _, e := range edges {
		out = append(out, contactRespond.ContactListItem{
			ContactId: e.ContactId,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}

func logStoreError(msg, ownerID, contactID string, err error) {
	zlog.Error(msg,
		zap.String("owner_id", ownerID),
		zap.String("contact_id", contactID),
		zap.Error(err))
}
