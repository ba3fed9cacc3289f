package feedback

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
)

var _ feedbackRepo = &feedbackRepoMock{}

type feedbackRepoMock struct {
	CreateFunc     func(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	GetByLogIDFunc func(ctx context.Context, userID, logID uuid.UUID) (*domain.Feedback, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.FeedbackWithDate, error)
	MarkReadFunc   func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			F   *domain.Feedback
		}
		GetByLogID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			LogID  uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		MarkRead []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGetByLogID sync.RWMutex
	lockListByUser sync.RWMutex
	lockMarkRead   sync.RWMutex
}

func (mock *feedbackRepoMock) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	if mock.CreateFunc == nil {
		panic("feedbackRepoMock.CreateFunc: method is nil but feedbackRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   *domain.Feedback
	}{Ctx: ctx, F: f}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *feedbackRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   *domain.Feedback
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) GetByLogID(ctx context.Context, userID, logID uuid.UUID) (*domain.Feedback, error) {
	if mock.GetByLogIDFunc == nil {
		panic("feedbackRepoMock.GetByLogIDFunc: method is nil but feedbackRepo.GetByLogID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		LogID  uuid.UUID
	}{Ctx: ctx, UserID: userID, LogID: logID}
	mock.lockGetByLogID.Lock()
	mock.calls.GetByLogID = append(mock.calls.GetByLogID, callInfo)
	mock.lockGetByLogID.Unlock()
	return mock.GetByLogIDFunc(ctx, userID, logID)
}

func (mock *feedbackRepoMock) GetByLogIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	LogID  uuid.UUID
} {
	mock.lockGetByLogID.RLock()
	calls := mock.calls.GetByLogID
	mock.lockGetByLogID.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FeedbackWithDate, error) {
	if mock.ListByUserFunc == nil {
		panic("feedbackRepoMock.ListByUserFunc: method is nil but feedbackRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *feedbackRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) MarkRead(ctx context.Context, id uuid.UUID) error {
	if mock.MarkReadFunc == nil {
		panic("feedbackRepoMock.MarkReadFunc: method is nil but feedbackRepo.MarkRead was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, id)
}

func (mock *feedbackRepoMock) MarkReadCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkRead.RLock()
	calls := mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}
