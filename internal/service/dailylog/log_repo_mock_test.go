package dailylog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateLogFunc        func(ctx context.Context, l *domain.DailyLog) (*domain.DailyLog, error)
	GetLogByIDFunc       func(ctx context.Context, userID, id uuid.UUID) (*domain.DailyLog, error)
	GetLogByDateFunc     func(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyLog, error)
	ListLogsByUserFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.DailyLogWithCount, error)
	UpdateLogFunc        func(ctx context.Context, l *domain.DailyLog) (*domain.DailyLog, error)
	CreateEntryFunc      func(ctx context.Context, e *domain.RoutineEntry) (*domain.RoutineEntry, error)
	GetEntryByIDFunc     func(ctx context.Context, userID, id uuid.UUID) (*domain.RoutineEntry, error)
	UpdateEntryFunc      func(ctx context.Context, e *domain.RoutineEntry) (*domain.RoutineEntry, error)
	ListEntriesByLogFunc func(ctx context.Context, logID uuid.UUID) ([]domain.EntryWithRoutine, error)

	calls struct {
		CreateLog []struct {
			Ctx context.Context
			L   *domain.DailyLog
		}
		GetLogByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		GetLogByDate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Date   time.Time
		}
		ListLogsByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpdateLog []struct {
			Ctx context.Context
			L   *domain.DailyLog
		}
		CreateEntry []struct {
			Ctx context.Context
			E   *domain.RoutineEntry
		}
		GetEntryByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		UpdateEntry []struct {
			Ctx context.Context
			E   *domain.RoutineEntry
		}
		ListEntriesByLog []struct {
			Ctx   context.Context
			LogID uuid.UUID
		}
	}
	lockCreateLog        sync.RWMutex
	lockGetLogByID       sync.RWMutex
	lockGetLogByDate     sync.RWMutex
	lockListLogsByUser   sync.RWMutex
	lockUpdateLog        sync.RWMutex
	lockCreateEntry      sync.RWMutex
	lockGetEntryByID     sync.RWMutex
	lockUpdateEntry      sync.RWMutex
	lockListEntriesByLog sync.RWMutex
}

func (mock *logRepoMock) CreateLog(ctx context.Context, l *domain.DailyLog) (*domain.DailyLog, error) {
	if mock.CreateLogFunc == nil {
		panic("logRepoMock.CreateLogFunc: method is nil but logRepo.CreateLog was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.DailyLog
	}{Ctx: ctx, L: l}
	mock.lockCreateLog.Lock()
	mock.calls.CreateLog = append(mock.calls.CreateLog, callInfo)
	mock.lockCreateLog.Unlock()
	return mock.CreateLogFunc(ctx, l)
}

func (mock *logRepoMock) CreateLogCalls() []struct {
	Ctx context.Context
	L   *domain.DailyLog
} {
	mock.lockCreateLog.RLock()
	calls := mock.calls.CreateLog
	mock.lockCreateLog.RUnlock()
	return calls
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

func (mock *logRepoMock) GetLogByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyLog, error) {
	if mock.GetLogByDateFunc == nil {
		panic("logRepoMock.GetLogByDateFunc: method is nil but logRepo.GetLogByDate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, Date: date}
	mock.lockGetLogByDate.Lock()
	mock.calls.GetLogByDate = append(mock.calls.GetLogByDate, callInfo)
	mock.lockGetLogByDate.Unlock()
	return mock.GetLogByDateFunc(ctx, userID, date)
}

func (mock *logRepoMock) GetLogByDateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Date   time.Time
} {
	mock.lockGetLogByDate.RLock()
	calls := mock.calls.GetLogByDate
	mock.lockGetLogByDate.RUnlock()
	return calls
}

func (mock *logRepoMock) ListLogsByUser(ctx context.Context, userID uuid.UUID) ([]domain.DailyLogWithCount, error) {
	if mock.ListLogsByUserFunc == nil {
		panic("logRepoMock.ListLogsByUserFunc: method is nil but logRepo.ListLogsByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListLogsByUser.Lock()
	mock.calls.ListLogsByUser = append(mock.calls.ListLogsByUser, callInfo)
	mock.lockListLogsByUser.Unlock()
	return mock.ListLogsByUserFunc(ctx, userID)
}

func (mock *logRepoMock) ListLogsByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListLogsByUser.RLock()
	calls := mock.calls.ListLogsByUser
	mock.lockListLogsByUser.RUnlock()
	return calls
}

func (mock *logRepoMock) UpdateLog(ctx context.Context, l *domain.DailyLog) (*domain.DailyLog, error) {
	if mock.UpdateLogFunc == nil {
		panic("logRepoMock.UpdateLogFunc: method is nil but logRepo.UpdateLog was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.DailyLog
	}{Ctx: ctx, L: l}
	mock.lockUpdateLog.Lock()
	mock.calls.UpdateLog = append(mock.calls.UpdateLog, callInfo)
	mock.lockUpdateLog.Unlock()
	return mock.UpdateLogFunc(ctx, l)
}

func (mock *logRepoMock) UpdateLogCalls() []struct {
	Ctx context.Context
	L   *domain.DailyLog
} {
	mock.lockUpdateLog.RLock()
	calls := mock.calls.UpdateLog
	mock.lockUpdateLog.RUnlock()
	return calls
}

func (mock *logRepoMock) CreateEntry(ctx context.Context, e *domain.RoutineEntry) (*domain.RoutineEntry, error) {
	if mock.CreateEntryFunc == nil {
		panic("logRepoMock.CreateEntryFunc: method is nil but logRepo.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.RoutineEntry
	}{Ctx: ctx, E: e}
	mock.lockCreateEntry.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lockCreateEntry.Unlock()
	return mock.CreateEntryFunc(ctx, e)
}

func (mock *logRepoMock) CreateEntryCalls() []struct {
	Ctx context.Context
	E   *domain.RoutineEntry
} {
	mock.lockCreateEntry.RLock()
	calls := mock.calls.CreateEntry
	mock.lockCreateEntry.RUnlock()
	return calls
}

func (mock *logRepoMock) GetEntryByID(ctx context.Context, userID, id uuid.UUID) (*domain.RoutineEntry, error) {
	if mock.GetEntryByIDFunc == nil {
		panic("logRepoMock.GetEntryByIDFunc: method is nil but logRepo.GetEntryByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetEntryByID.Lock()
	mock.calls.GetEntryByID = append(mock.calls.GetEntryByID, callInfo)
	mock.lockGetEntryByID.Unlock()
	return mock.GetEntryByIDFunc(ctx, userID, id)
}

func (mock *logRepoMock) GetEntryByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetEntryByID.RLock()
	calls := mock.calls.GetEntryByID
	mock.lockGetEntryByID.RUnlock()
	return calls
}

func (mock *logRepoMock) UpdateEntry(ctx context.Context, e *domain.RoutineEntry) (*domain.RoutineEntry, error) {
	if mock.UpdateEntryFunc == nil {
		panic("logRepoMock.UpdateEntryFunc: method is nil but logRepo.UpdateEntry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.RoutineEntry
	}{Ctx: ctx, E: e}
	mock.lockUpdateEntry.Lock()
	mock.calls.UpdateEntry = append(mock.calls.UpdateEntry, callInfo)
	mock.lockUpdateEntry.Unlock()
	return mock.UpdateEntryFunc(ctx, e)
}

func (mock *logRepoMock) UpdateEntryCalls() []struct {
	Ctx context.Context
	E   *domain.RoutineEntry
} {
	mock.lockUpdateEntry.RLock()
	calls := mock.calls.UpdateEntry
	mock.lockUpdateEntry.RUnlock()
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
