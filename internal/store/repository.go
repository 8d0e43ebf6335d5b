package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/trangvu/lunacycle/internal/advice"
	"github.com/trangvu/lunacycle/internal/config"
	"github.com/trangvu/lunacycle/internal/cycle"
)

// Repository is the typed persistence layer over the KV substrate. It
// owns the three record kinds (profile, cycle list, advice cache), the
// newest-first sort order of the cycle list, and the recalculation
// trigger. Consumers always get copies decoded fresh from storage; no
// record is shared by reference across calls.
//
// All operations are synchronous and single-writer: there is no staging
// and no transaction across record kinds, so a crash between a cycle
// write and the following recalculation leaves the profile stats stale
// until the next recalculation, which is acceptable for this data.
type Repository struct {
	kv    KV
	Clock cycle.Clock
}

// NewRepository wires a repository over the given store.
func NewRepository(kv KV) *Repository {
	return &Repository{kv: kv, Clock: cycle.RealClock{}}
}

// -----------------------------------------------------------------------------
// Profile
// -----------------------------------------------------------------------------

// Profile reads the singleton profile. ok is false before onboarding.
func (r *Repository) Profile() (cycle.Profile, bool) {
	var p cycle.Profile
	if !r.getJSON(config.KeyProfile, &p) {
		return cycle.Profile{}, false
	}
	return p, true
}

// SaveProfile overwrites the stored profile wholesale; there is no merge.
func (r *Repository) SaveProfile(p cycle.Profile) error {
	if err := r.setJSON(config.KeyProfile, p); err != nil {
		return err
	}
	slog.Debug(config.MsgProfileSaved, config.LogKeyComponent, config.CompRepo)
	return nil
}

// -----------------------------------------------------------------------------
// Cycles
// -----------------------------------------------------------------------------

// Cycles returns the stored collection, newest first. Missing or
// undecodable data yields an empty slice.
func (r *Repository) Cycles() []cycle.Cycle {
	var cs []cycle.Cycle
	if !r.getJSON(config.KeyCycles, &cs) {
		return []cycle.Cycle{}
	}
	return cs
}

// SaveCycles replaces the whole collection, sorting it newest-first
// before persisting so every reader sees the canonical order.
func (r *Repository) SaveCycles(cs []cycle.Cycle) error {
	ordered := cycle.Sorted(cs)
	return r.setJSON(config.KeyCycles, ordered)
}

// AddCycle inserts a cycle and persists the re-sorted collection,
// returning it. Duplicate ids are accepted as-is; id discipline is the
// caller's responsibility.
func (r *Repository) AddCycle(c cycle.Cycle) ([]cycle.Cycle, error) {
	cs := append(r.Cycles(), c)
	if err := r.SaveCycles(cs); err != nil {
		return nil, err
	}
	slog.Debug(config.MsgCycleAdded,
		config.LogKeyComponent, config.CompRepo,
		config.LogKeyCycleID, c.ID,
		config.LogKeyCount, len(cs),
	)
	return cycle.Sorted(cs), nil
}

// UpdateCycle replaces the entry whose id matches. An unknown id leaves
// the collection unchanged; that is not an error.
func (r *Repository) UpdateCycle(c cycle.Cycle) ([]cycle.Cycle, error) {
	cs := r.Cycles()
	for i := range cs {
		if cs[i].ID == c.ID {
			cs[i] = c
			break
		}
	}
	if err := r.SaveCycles(cs); err != nil {
		return nil, err
	}
	slog.Debug(config.MsgCycleUpdated,
		config.LogKeyComponent, config.CompRepo,
		config.LogKeyCycleID, c.ID,
	)
	return cycle.Sorted(cs), nil
}

// DeleteCycle removes the entry with the given id. An absent id is a
// silent no-op.
func (r *Repository) DeleteCycle(id string) ([]cycle.Cycle, error) {
	cs := r.Cycles()
	kept := cs[:0]
	for _, c := range cs {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if err := r.SaveCycles(kept); err != nil {
		return nil, err
	}
	slog.Debug(config.MsgCycleDeleted,
		config.LogKeyComponent, config.CompRepo,
		config.LogKeyCycleID, id,
		config.LogKeyCount, len(kept),
	)
	return cycle.Sorted(kept), nil
}

// -----------------------------------------------------------------------------
// Recalculation
// -----------------------------------------------------------------------------

// RecalculateProfile refreshes the profile's averages from the cycle
// history and persists the result. Each average is only overwritten when
// the statistics engine found qualifying samples; with insufficient data
// the previous estimate survives, never zeroed out. ok is false when no
// profile exists yet (onboarding not finished), which callers tolerate.
func (r *Repository) RecalculateProfile() (p cycle.Profile, ok bool, err error) {
	p, ok = r.Profile()
	if !ok {
		slog.Debug(config.MsgRecalcSkipped, config.LogKeyComponent, config.CompRepo)
		return cycle.Profile{}, false, nil
	}

	cs := r.Cycles()
	if avg, computed := cycle.AveragePeriodDuration(cs); computed {
		p.AveragePeriodDuration = avg
	}
	if avg, computed := cycle.AverageCycleLength(cs); computed {
		p.AverageCycleLength = avg
	}

	if err := r.SaveProfile(p); err != nil {
		return cycle.Profile{}, false, err
	}

	slog.Debug(config.MsgRecalcDone,
		config.LogKeyComponent, config.CompRepo,
		config.LogKeyCycleLen, p.AverageCycleLength,
		config.LogKeyPeriodDur, p.AveragePeriodDuration,
	)
	return p, true, nil
}

// -----------------------------------------------------------------------------
// Advice Cache
// -----------------------------------------------------------------------------

// Advice reads the cached entry for a calendar-day key.
func (r *Repository) Advice(dateKey string) (*advice.Daily, bool) {
	var d advice.Daily
	if !r.getJSON(config.KeyAdvicePfx+dateKey, &d) {
		return nil, false
	}
	return &d, true
}

// SaveAdvice caches an entry best-effort. A failed write triggers one
// round of eviction, dropping entries older than the retention window,
// and one retry; a second failure is logged and swallowed, so advice is
// still shown for the session even when it cannot be persisted.
func (r *Repository) SaveAdvice(dateKey string, d *advice.Daily) {
	key := config.KeyAdvicePfx + dateKey
	err := r.setJSON(key, d)
	if err == nil {
		return
	}

	if evicted := r.evictStaleAdvice(); evicted > 0 {
		err = r.setJSON(key, d)
	}
	if err != nil {
		slog.Warn(config.MsgAdviceSaveFail,
			config.LogKeyComponent, config.CompRepo,
			config.LogKeyDateKey, dateKey,
			config.LogKeyError, err,
		)
	}
}

// evictStaleAdvice removes advice entries older than the retention
// window, returning how many were dropped. Entries with unparseable date
// suffixes are dropped too; they can never be read back by date key.
func (r *Repository) evictStaleAdvice() int {
	cutoff := cycle.DateOf(r.Clock.Now()).AddDays(-config.AdviceRetentionDays)

	evicted := 0
	for _, key := range r.kv.Keys() {
		if !strings.HasPrefix(key, config.KeyAdvicePfx) {
			continue
		}
		day, err := cycle.ParseDate(strings.TrimPrefix(key, config.KeyAdvicePfx))
		if err != nil || day.Before(cutoff.Time) {
			r.kv.Remove(key)
			evicted++
		}
	}

	if evicted > 0 {
		slog.Info(config.MsgAdviceEvicted,
			config.LogKeyComponent, config.CompRepo,
			config.LogKeyEvicted, evicted,
		)
	}
	return evicted
}

// -----------------------------------------------------------------------------
// Reset
// -----------------------------------------------------------------------------

// ClearAll erases every persisted key: profile, cycles and the whole
// advice cache. Irreversible; used only for the full app reset.
func (r *Repository) ClearAll() {
	r.kv.Clear()
	slog.Info(config.MsgStoreCleared, config.LogKeyComponent, config.CompRepo)
}

// -----------------------------------------------------------------------------
// JSON plumbing
// -----------------------------------------------------------------------------

// getJSON decodes the value at key into out. Undecodable data is logged
// and reported as absent rather than failing the read path; a corrupt
// record should degrade like a missing one.
func (r *Repository) getJSON(key string, out any) bool {
	raw, ok := r.kv.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		slog.Warn(config.ErrDataDecode,
			config.LogKeyComponent, config.CompRepo,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return false
	}
	return true
}

func (r *Repository) setJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrDataEncode, err)
	}
	return r.kv.Set(key, string(raw))
}
