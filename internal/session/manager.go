package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultIdleTTL - сколько живёт неиспользуемая сессия
const DefaultIdleTTL = 30 * time.Minute

type entry struct {
	ctrl     *Controller
	lastUsed time.Time
}

// Manager хранит контроллеры живых просмотров по id сессии
type Manager struct {
	source  Source
	opts    []Option
	now     func() time.Time
	idleTTL time.Duration
	logger  *zap.Logger

	mu       sync.Mutex
	sessions map[string]*entry
}

// ManagerConfig - конфигурация Manager
type ManagerConfig struct {
	Debounce time.Duration
	IdleTTL  time.Duration
	Now      func() time.Time
}

// NewManager создаёт реестр сессий. opts применяются к каждому
// создаваемому контроллеру.
func NewManager(source Source, cfg ManagerConfig, logger *zap.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	ttl := cfg.IdleTTL
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	base := []Option{WithClock(now), WithDebounce(debounce), WithLogger(logger)}

	return &Manager{
		source:   source,
		opts:     append(base, opts...),
		now:      now,
		idleTTL:  ttl,
		logger:   logger,
		sessions: make(map[string]*entry),
	}
}

// Create открывает сессию страницы p и выполняет первичную загрузку. Сессия
// регистрируется и при ошибке загрузки, ошибка остаётся в её состоянии.
func (m *Manager) Create(ctx context.Context, p Page) (string, *Controller, error) {
	ctrl, err := NewController(p, m.source, m.opts...)
	if err != nil {
		return "", nil, err
	}

	id := uuid.NewString()

	m.mu.Lock()
	m.sessions[id] = &entry{ctrl: ctrl, lastUsed: m.now()}
	m.mu.Unlock()

	if err := ctrl.Load(ctx); err != nil {
		m.logger.Warn("initial load failed",
			zap.String("session_id", id),
			zap.String("page", string(p)),
			zap.Error(err))
	}

	m.logger.Debug("session created", zap.String("session_id", id), zap.String("page", string(p)))
	return id, ctrl, nil
}

// Get возвращает контроллер id и отмечает его использование
func (m *Manager) Get(id string) (*Controller, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastUsed = m.now()
	return e.ctrl, true
}

// Delete закрывает и удаляет сессию
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	e, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		e.ctrl.Close()
	}
	return ok
}

// Len возвращает число живых сессий
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Evict закрывает сессии, простаивающие дольше TTL, и возвращает их число
func (m *Manager) Evict() int {
	cutoff := m.now().Add(-m.idleTTL)

	m.mu.Lock()
	var expired []*Controller
	for id, e := range m.sessions {
		if e.lastUsed.Before(cutoff) {
			expired = append(expired, e.ctrl)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, c := range expired {
		c.Close()
	}
	if len(expired) > 0 {
		m.logger.Info("evicted idle sessions", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// Run вытесняет простаивающие сессии каждые interval до отмены ctx
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = m.idleTTL / 2
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Evict()
		}
	}
}

// Close закрывает все сессии
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*entry)
	m.mu.Unlock()

	for _, e := range sessions {
		e.ctrl.Close()
	}
}
