package availability

import (
	"context"
	"sync"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
)

// Snapshot снимок занятости для одного флоу бронирования
// Заменяется целиком при каждом успешном запросе, никогда не мутируется
type Snapshot struct {
	Date      string
	Occupancy domain.OccupancyMap
}

// Request параметры запроса занятости
type Request struct {
	FlowID     string
	BranchID   int64
	StaffID    int64
	ServiceIDs []int64
	Date       string // YYYY-MM-DD
}

// Resolver получает карты занятости у API салона и хранит последний снимок
// на каждый флоу. Запросы нумеруются монотонно растущим счётчиком:
// опоздавший ответ на вытесненный запрос отбрасывается (last-request-wins),
// чтобы медленный ранний ответ не перетёр более свежие данные
type Resolver struct {
	client SalonAPIClient
	logger Logger

	mu    sync.Mutex
	flows map[string]*flowState
}

type flowState struct {
	latestSeq uint64
	snapshot  *Snapshot
}

// NewResolver создает новый resolver занятости
func NewResolver(client SalonAPIClient, logger Logger) *Resolver {
	return &Resolver{
		client: client,
		logger: logger,
		flows:  make(map[string]*flowState),
	}
}

// Resolve запрашивает занятость и возвращает актуальный снимок флоу.
// Если за время запроса флоу успел выпустить более новый запрос, результат
// отбрасывается: возвращается уже сохранённый более свежий снимок, а если
// его ещё нет — ErrSuperseded (ответ на новый запрос принесёт данные сам)
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Snapshot, error) {
	r.mu.Lock()
	fs, ok := r.flows[req.FlowID]
	if !ok {
		fs = &flowState{}
		r.flows[req.FlowID] = fs
	}
	fs.latestSeq++
	seq := fs.latestSeq
	r.mu.Unlock()

	occupancy, err := r.client.GetAvailability(ctx, req.BranchID, req.StaffID, req.ServiceIDs, req.Date)

	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != fs.latestSeq {
		// Запрос вытеснен более новым: его результат не должен попасть
		// в состояние флоу независимо от успеха или ошибки
		r.logger.Debug("Resolve: discarding superseded response flow=%s date=%s seq=%d latest=%d",
			req.FlowID, req.Date, seq, fs.latestSeq)
		if fs.snapshot != nil {
			return fs.snapshot, nil
		}
		return nil, ErrSuperseded
	}

	if err != nil {
		return nil, err
	}

	fs.snapshot = &Snapshot{
		Date:      req.Date,
		Occupancy: occupancy,
	}

	return fs.snapshot, nil
}

// Current возвращает последний сохранённый снимок флоу, если он есть
func (r *Resolver) Current(flowID string) (*Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fs, ok := r.flows[flowID]
	if !ok || fs.snapshot == nil {
		return nil, false
	}
	return fs.snapshot, true
}

// Invalidate сбрасывает состояние флоу
// Вызывается при удалении черновика и после успешной отправки бронирования:
// фоновых запросов после выхода из флоу быть не должно
func (r *Resolver) Invalidate(flowID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.flows, flowID)
}
