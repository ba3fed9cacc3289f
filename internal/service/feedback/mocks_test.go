package feedback

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
	"github.com/daymentor/mentor-backend/internal/textgen"
)

// ---------------------------------------------------------------------------
// routineRepo mock
// ---------------------------------------------------------------------------

var _ routineRepo = &routineRepoMock{}

type routineRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]domain.Routine, error)

	calls struct {
		ListByUser []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			ActiveOnly bool
		}
	}
	lockListByUser sync.RWMutex
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

// ---------------------------------------------------------------------------
// userRepo mock
// ---------------------------------------------------------------------------

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// textgen.Generator mock
// ---------------------------------------------------------------------------

var _ textgen.Generator = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, req textgen.Request) textgen.Result

	calls struct {
		Generate []struct {
			Ctx context.Context
			Req textgen.Request
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, req textgen.Request) textgen.Result {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but Generator.Generate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req textgen.Request
	}{Ctx: ctx, Req: req}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, req)
}

func (mock *generatorMock) GenerateCalls() []struct {
	Ctx context.Context
	Req textgen.Request
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
