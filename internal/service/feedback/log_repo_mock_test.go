package feedback

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	GetLogByIDFunc        func(ctx context.Context, userID, id uuid.UUID) (*domain.DailyLog, error)
	ListLogsRawFunc       func(ctx context.Context, userID uuid.UUID) ([]domain.DailyLog, error)
	ListEntriesByLogFunc  func(ctx context.Context, logID uuid.UUID) ([]domain.EntryWithRoutine, error)
	ListEntriesByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.RoutineEntry, error)

	calls struct {
		GetLogByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		ListLogsRaw []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListEntriesByLog []struct {
			Ctx   context.Context
			LogID uuid.UUID
		}
		ListEntriesByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetLogByID        sync.RWMutex
	lockListLogsRaw       sync.RWMutex
	lockListEntriesByLog  sync.RWMutex
	lockListEntriesByUser sync.RWMutex
}

func (mock *logRepoMock) GetLogByID(ctx context.Context, userID, id uuid.UUID) (*domain.DailyLog, error) {
	if mock.GetLogByIDFunc == nil {
		panic("logRepoMock.GetLogByIDFunc: method is nil but logRepo.GetLogByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetLogByID.Lock()
	mock.calls.GetLogByID = append(mock.calls.GetLogByID, callInfo)
	mock.lockGetLogByID.Unlock()
	return mock.GetLogByIDFunc(ctx, userID, id)
}

func (mock *logRepoMock) GetLogByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetLogByID.RLock()
	calls := mock.calls.GetLogByID
	mock.lockGetLogByID.RUnlock()
	return calls
}

func (mock *logRepoMock) ListLogsRaw(ctx context.Context, userID uuid.UUID) ([]domain.DailyLog, error) {
	if mock.ListLogsRawFunc == nil {
		panic("logRepoMock.ListLogsRawFunc: method is nil but logRepo.ListLogsRaw was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListLogsRaw.Lock()
	mock.calls.ListLogsRaw = append(mock.calls.ListLogsRaw, callInfo)
	mock.lockListLogsRaw.Unlock()
	return mock.ListLogsRawFunc(ctx, userID)
}

func (mock *logRepoMock) ListLogsRawCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListLogsRaw.RLock()
	calls := mock.calls.ListLogsRaw
	mock.lockListLogsRaw.RUnlock()
	return calls
}

func (mock *logRepoMock) ListEntriesByLog(ctx context.Context, logID uuid.UUID) ([]domain.EntryWithRoutine, error) {
	if mock.ListEntriesByLogFunc == nil {
		panic("logRepoMock.ListEntriesByLogFunc: method is nil but logRepo.ListEntriesByLog was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		LogID uuid.UUID
	}{Ctx: ctx, LogID: logID}
	mock.lockListEntriesByLog.Lock()
	mock.calls.ListEntriesByLog = append(mock.calls.ListEntriesByLog, callInfo)
	mock.lockListEntriesByLog.Unlock()
	return mock.ListEntriesByLogFunc(ctx, logID)
}

func (mock *logRepoMock) ListEntriesByLogCalls() []struct {
	Ctx   context.Context
	LogID uuid.UUID
} {
	mock.lockListEntriesByLog.RLock()
	calls := mock.calls.ListEntriesByLog
	mock.lockListEntriesByLog.RUnlock()
	return calls
}

func (mock *logRepoMock) ListEntriesByUser(ctx context.Context, userID uuid.UUID) ([]domain.RoutineEntry, error) {
	if mock.ListEntriesByUserFunc == nil {
		panic("logRepoMock.ListEntriesByUserFunc: method is nil but logRepo.ListEntriesByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListEntriesByUser.Lock()
	mock.calls.ListEntriesByUser = append(mock.calls.ListEntriesByUser, callInfo)
	mock.lockListEntriesByUser.Unlock()
	return mock.ListEntriesByUserFunc(ctx, userID)
}

func (mock *logRepoMock) ListEntriesByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListEntriesByUser.RLock()
	calls := mock.calls.ListEntriesByUser
	mock.lockListEntriesByUser.RUnlock()
	return calls
}
