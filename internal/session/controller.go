package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/catalog"
	"github.com/surfquest-catalog/internal/domain"
	"github.com/surfquest-catalog/internal/filter"
)

// DefaultDebounce - окно склейки частых изменений на backend-query страницах
const DefaultDebounce = 300 * time.Millisecond

var (
	ErrUnknownPage  = errors.New("unknown page")
	ErrUnknownFacet = errors.New("facet not available on this page")
	ErrClosed       = errors.New("session closed")
)

// Source - источник данных каталога для контроллеров
type Source interface {
	SurfZones(ctx context.Context) ([]domain.SurfZone, error)
	SurfSpots(ctx context.Context) ([]domain.SurfSpot, error)
	SearchSurfZones(ctx context.Context, sel filter.Selection) ([]domain.SurfZone, error)
	SearchSurfSpots(ctx context.Context, sel filter.Selection) ([]domain.SurfSpot, error)
}

// State - снимок состояния контроллера
type State struct {
	Page       Page
	Entity     Entity
	Strategy   Strategy
	Selection  filter.Selection
	SurfZones  []domain.SurfZone
	SurfSpots  []domain.SurfSpot
	Loading    bool
	Error      string
	Generation uint64
	UpdatedAt  time.Time
}

// Option - опция Controller
type Option func(*Controller)

// WithClock задаёт источник времени
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithDebounce задаёт окно склейки для backend-query страниц
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.debounce = d
		}
	}
}

// WithCatalog подменяет справочник диапазонов in-memory движка
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *Controller) {
		if cat != nil {
			c.cat = cat
		}
	}
}

// WithLogger задаёт логгер
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller - выборка и результаты одного просмотра страницы.
// Безопасен для конкурентного использования.
type Controller struct {
	profile  Profile
	source   Source
	cat      *catalog.Catalog
	now      func() time.Time
	debounce time.Duration
	logger   *zap.Logger

	baseCtx    context.Context
	baseCancel context.CancelFunc

	mu        sync.Mutex
	selection filter.Selection
	allZones  []domain.SurfZone
	allSpots  []domain.SurfSpot
	loaded    bool
	zones     []domain.SurfZone
	spots     []domain.SurfSpot
	err       string
	updatedAt time.Time
	closed    bool

	// generation растёт на каждое изменение выборки, результат коммитит
	// только запрос с текущим поколением
	generation uint64
	timer      *time.Timer
	cancel     context.CancelFunc
	pending    bool
	idle       chan struct{}
}

// NewController создаёт контроллер страницы p с её значениями по умолчанию
func NewController(p Page, source Source, opts ...Option) (*Controller, error) {
	profile, ok := ProfileFor(p)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, p)
	}

	c := &Controller{
		profile:  profile,
		source:   source,
		cat:      catalog.Default(),
		now:      time.Now,
		debounce: DefaultDebounce,
		logger:   zap.NewNop(),
		idle:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	close(c.idle)
	c.baseCtx, c.baseCancel = context.WithCancel(context.Background())
	c.selection = profile.Defaults(c.now())
	c.logger = c.logger.With(zap.String("page", string(p)))

	return c, nil
}

// Profile возвращает профиль страницы
func (c *Controller) Profile() Profile {
	return c.profile
}

// Load загружает первичные результаты. In-memory страницы один раз скачивают
// всю коллекцию, backend-query страницы сразу выполняют текущую выборку без
// debounce. Ошибка попадает в состояние и возвращается, прежние результаты
// остаются на месте.
func (c *Controller) Load(ctx context.Context) error {
	if c.profile.Strategy == Query {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return ErrClosed
		}
		gen := c.bumpLocked()
		c.mu.Unlock()
		return c.fetch(ctx, gen)
	}

	zones, spots, err := c.collect(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.storeLocked(zones, spots, err)
}

// collect скачивает полную коллекцию сущности страницы
func (c *Controller) collect(ctx context.Context) ([]domain.SurfZone, []domain.SurfSpot, error) {
	if c.profile.Entity == EntitySurfZones {
		zones, err := c.source.SurfZones(ctx)
		return zones, nil, err
	}
	spots, err := c.source.SurfSpots(ctx)
	return nil, spots, err
}

func (c *Controller) storeLocked(zones []domain.SurfZone, spots []domain.SurfSpot, err error) error {
	if err != nil {
		c.err = err.Error()
		c.logger.Warn("failed to load collection", zap.Error(err))
		return err
	}

	c.allZones, c.allSpots = zones, spots
	c.loaded = true
	c.err = ""
	c.applyLocked()
	return nil
}

// reload повторяет загрузку коллекции после неудачного Load. Результат
// применяется к выборке, актуальной на момент завершения.
func (c *Controller) reload() {
	zones, spots, err := c.collect(c.baseCtx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	_ = c.storeLocked(zones, spots, err)
	c.finishLocked()
}

// SetFilter заменяет значение фасета и запускает обновление. Пустое
// значение сбрасывает фасет. Если коллекция in-memory страницы ещё не
// загрузилась из-за ошибки, загрузка повторяется.
func (c *Controller) SetFilter(key filter.Facet, value string) (Effect, error) {
	if !c.profile.Accepts(key) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFacet, key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return "", ErrClosed
	}

	c.selection.Set(key, value)
	if key == filter.Month && value == "" && c.profile.clearsSeasonalFacets() {
		for _, f := range filter.MonthScoped {
			c.selection.Set(f, "")
		}
		c.selection.Set(filter.BestMonths, "")
	}

	c.refreshLocked()

	if key == filter.Month {
		return ScrollMonthFilters, nil
	}
	return ScrollResults, nil
}

// Reset возвращает значения по умолчанию и запускает обновление
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	c.selection = c.profile.Defaults(c.now())
	c.refreshLocked()
	return nil
}

// State возвращает копию текущего состояния
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Settle ждёт, пока не останется отложенных и выполняющихся запросов,
// и возвращает итоговое состояние
func (c *Controller) Settle(ctx context.Context) (State, error) {
	c.mu.Lock()
	idle := c.idle
	c.mu.Unlock()

	select {
	case <-idle:
		return c.State(), nil
	case <-ctx.Done():
		return c.State(), ctx.Err()
	}
}

// Close останавливает отложенную работу. Дальше изменения возвращают ErrClosed.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
	}
	c.finishLocked()
	c.baseCancel()
}

func (c *Controller) stateLocked() State {
	return State{
		Page:       c.profile.Page,
		Entity:     c.profile.Entity,
		Strategy:   c.profile.Strategy,
		Selection:  c.selection.Clone(),
		SurfZones:  append([]domain.SurfZone(nil), c.zones...),
		SurfSpots:  append([]domain.SurfSpot(nil), c.spots...),
		Loading:    c.pending,
		Error:      c.err,
		Generation: c.generation,
		UpdatedAt:  c.updatedAt,
	}
}

func (c *Controller) refreshLocked() {
	if c.profile.Strategy == InMemory {
		c.generation++
		if c.loaded {
			c.applyLocked()
			return
		}
		if c.err != "" && !c.pending {
			c.pending = true
			c.idle = make(chan struct{})
			go c.reload()
		}
		return
	}

	gen := c.bumpLocked()
	c.timer = time.AfterFunc(c.debounce, func() {
		_ = c.fetch(c.baseCtx, gen)
	})
}

// bumpLocked начинает новое поколение: сбрасывает таймер и отменяет
// выполняющийся запрос
func (c *Controller) bumpLocked() uint64 {
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if !c.pending {
		c.pending = true
		c.idle = make(chan struct{})
	}
	return c.generation
}

func (c *Controller) finishLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.pending {
		c.pending = false
		close(c.idle)
	}
}

func (c *Controller) applyLocked() {
	switch c.profile.Entity {
	case EntitySurfZones:
		c.zones = filter.Zones(c.allZones, c.selection, c.cat)
	case EntitySurfSpots:
		c.spots = filter.Spots(c.allSpots, c.selection, c.cat)
	}
	c.updatedAt = c.now()
}

// fetch выполняет запрос к бэкенду для поколения gen и коммитит результат,
// только если за это время не пришла более новая выборка
func (c *Controller) fetch(parent context.Context, gen uint64) error {
	c.mu.Lock()
	if gen != c.generation || c.closed {
		c.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(parent)
	c.cancel = cancel
	sel := c.selection.Clone()
	c.mu.Unlock()

	defer cancel()

	var (
		zones []domain.SurfZone
		spots []domain.SurfSpot
		err   error
	)
	if c.profile.Entity == EntitySurfZones {
		zones, err = c.source.SearchSurfZones(ctx, sel)
	} else {
		spots, err = c.source.SearchSurfSpots(ctx, sel)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debug("discarding stale results",
			zap.Uint64("generation", gen),
			zap.Uint64("current", c.generation))
		return nil
	}

	c.cancel = nil
	defer c.finishLocked()

	if err != nil {
		c.err = err.Error()
		c.logger.Warn("search failed, keeping previous results", zap.Error(err))
		return err
	}

	c.err = ""
	if c.profile.Entity == EntitySurfZones {
		c.zones = zones
	} else {
		c.spots = spots
	}
	c.updatedAt = c.now()
	return nil
}
