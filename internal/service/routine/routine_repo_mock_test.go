package routine

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
)

var _ routineRepo = &routineRepoMock{}

type routineRepoMock struct {
	CreateFunc     func(ctx context.Context, rt *domain.Routine) (*domain.Routine, error)
	GetByIDFunc    func(ctx context.Context, userID, id uuid.UUID) (*domain.Routine, error)
	GetByNameFunc  func(ctx context.Context, userID uuid.UUID, name string) (*domain.Routine, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]domain.Routine, error)
	UpdateFunc     func(ctx context.Context, rt *domain.Routine) (*domain.Routine, error)
	DeactivateFunc func(ctx context.Context, userID, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Rt  *domain.Routine
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		GetByName []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Name   string
		}
		ListByUser []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			ActiveOnly bool
		}
		Update []struct {
			Ctx context.Context
			Rt  *domain.Routine
		}
		Deactivate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockGetByName  sync.RWMutex
	lockListByUser sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDeactivate sync.RWMutex
}

func (mock *routineRepoMock) Create(ctx context.Context, rt *domain.Routine) (*domain.Routine, error) {
	if mock.CreateFunc == nil {
		panic("routineRepoMock.CreateFunc: method is nil but routineRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rt  *domain.Routine
	}{Ctx: ctx, Rt: rt}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rt)
}

func (mock *routineRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rt  *domain.Routine
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *routineRepoMock) GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Routine, error) {
	if mock.GetByNameFunc == nil {
		panic("routineRepoMock.GetByNameFunc: method is nil but routineRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Name   string
	}{Ctx: ctx, UserID: userID, Name: name}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, userID, name)
}

func (mock *routineRepoMock) GetByNameCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Name   string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *routineRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]domain.Routine, error) {
	if mock.ListByUserFunc == nil {
		panic("routineRepoMock.ListByUserFunc: method is nil but routineRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		ActiveOnly bool
	}{Ctx: ctx, UserID: userID, ActiveOnly: activeOnly}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, activeOnly)
}

func (mock *routineRepoMock) ListByUserCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	ActiveOnly bool
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *routineRepoMock) Update(ctx context.Context, rt *domain.Routine) (*domain.Routine, error) {
	if mock.UpdateFunc == nil {
		panic("routineRepoMock.UpdateFunc: method is nil but routineRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rt  *domain.Routine
	}{Ctx: ctx, Rt: rt}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rt)
}

func (mock *routineRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Rt  *domain.Routine
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *routineRepoMock) Deactivate(ctx context.Context, userID, id uuid.UUID) error {
	if mock.DeactivateFunc == nil {
		panic("routineRepoMock.DeactivateFunc: method is nil but routineRepo.Deactivate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDeactivate.Lock()
	mock.calls.Deactivate = append(mock.calls.Deactivate, callInfo)
	mock.lockDeactivate.Unlock()
	return mock.DeactivateFunc(ctx, userID, id)
}

func (mock *routineRepoMock) DeactivateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDeactivate.RLock()
	calls := mock.calls.Deactivate
	mock.lockDeactivate.RUnlock()
	return calls
}
