package dailylog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
)

var _ routineRepo = &routineRepoMock{}

type routineRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, id uuid.UUID) (*domain.Routine, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *routineRepoMock) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Routine, error) {
	if mock.GetByIDFunc == nil {
		panic("routineRepoMock.GetByIDFunc: method is nil but routineRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *routineRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
