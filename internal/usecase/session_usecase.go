package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/filter"
	pkgerrors "github.com/surfquest-catalog/internal/pkg/errors"
	"github.com/surfquest-catalog/internal/session"
	"github.com/surfquest-catalog/internal/usecase/dto"
)

// settleTimeout - сколько ждать завершения debounce-запроса перед ответом
const settleTimeout = 5 * time.Second

// SessionUseCase - серверные сессии фильтров страниц каталога
type SessionUseCase struct {
	manager *session.Manager
	logger  *zap.Logger
}

// NewSessionUseCase создает новый экземпляр SessionUseCase
func NewSessionUseCase(manager *session.Manager, logger *zap.Logger) *SessionUseCase {
	return &SessionUseCase{
		manager: manager,
		logger:  logger,
	}
}

// Create открывает сессию страницы page и выполняет первичную загрузку
func (uc *SessionUseCase) Create(ctx context.Context, page string) (*dto.SessionResponse, error) {
	id, ctrl, err := uc.manager.Create(ctx, session.Page(page))
	if err != nil {
		if errors.Is(err, session.ErrUnknownPage) {
			return nil, pkgerrors.ErrInvalidRequest.WithDetails(map[string]interface{}{"page": page})
		}
		return nil, err
	}
	return toSessionResponse(id, ctrl.State(), ""), nil
}

// Get возвращает состояние сессии. При wait=true дожидается завершения отложенного поиска.
func (uc *SessionUseCase) Get(ctx context.Context, id string, wait bool) (*dto.SessionResponse, error) {
	ctrl, ok := uc.manager.Get(id)
	if !ok {
		return nil, pkgerrors.ErrSessionNotFound
	}
	state := ctrl.State()
	if wait {
		state = uc.settle(ctx, ctrl)
	}
	return toSessionResponse(id, state, ""), nil
}

// SetFilter меняет значение фасета. При wait=true ответ содержит уже обновлённые результаты.
func (uc *SessionUseCase) SetFilter(ctx context.Context, id, key, value string, wait bool) (*dto.SessionResponse, error) {
	ctrl, ok := uc.manager.Get(id)
	if !ok {
		return nil, pkgerrors.ErrSessionNotFound
	}

	effect, err := ctrl.SetFilter(filter.Facet(key), value)
	if err != nil {
		return nil, sessionError(err, key)
	}

	state := ctrl.State()
	if wait {
		state = uc.settle(ctx, ctrl)
	}
	return toSessionResponse(id, state, string(effect)), nil
}

// Reset возвращает фильтры страницы к значениям по умолчанию
func (uc *SessionUseCase) Reset(ctx context.Context, id string, wait bool) (*dto.SessionResponse, error) {
	ctrl, ok := uc.manager.Get(id)
	if !ok {
		return nil, pkgerrors.ErrSessionNotFound
	}
	if err := ctrl.Reset(); err != nil {
		return nil, sessionError(err, "")
	}

	state := ctrl.State()
	if wait {
		state = uc.settle(ctx, ctrl)
	}
	return toSessionResponse(id, state, ""), nil
}

// Delete закрывает сессию
func (uc *SessionUseCase) Delete(id string) error {
	if !uc.manager.Delete(id) {
		return pkgerrors.ErrSessionNotFound
	}
	return nil
}

func (uc *SessionUseCase) settle(ctx context.Context, ctrl *session.Controller) session.State {
	ctx, cancel := context.WithTimeout(ctx, settleTimeout)
	defer cancel()

	state, err := ctrl.Settle(ctx)
	if err != nil {
		uc.logger.Debug("Session did not settle in time", zap.Error(err))
	}
	return state
}

func sessionError(err error, key string) error {
	switch {
	case errors.Is(err, session.ErrUnknownFacet):
		return pkgerrors.ErrInvalidFilter.WithDetails(map[string]interface{}{"key": key})
	case errors.Is(err, session.ErrClosed):
		return pkgerrors.ErrSessionNotFound
	default:
		return err
	}
}

func toSessionResponse(id string, state session.State, effect string) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		ID:         id,
		Page:       string(state.Page),
		Entity:     string(state.Entity),
		Strategy:   string(state.Strategy),
		Selection:  state.Selection,
		SurfZones:  state.SurfZones,
		SurfSpots:  state.SurfSpots,
		Loading:    state.Loading,
		Error:      state.Error,
		Generation: state.Generation,
		Effect:     effect,
	}
	if resp.Selection == nil {
		resp.Selection = filter.Selection{}
	}
	if state.Entity == session.EntitySurfSpots {
		resp.Total = len(state.SurfSpots)
	} else {
		resp.Total = len(state.SurfZones)
	}
	if !state.UpdatedAt.IsZero() {
		updated := state.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}
