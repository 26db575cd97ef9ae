package scheduler

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressflow/pressflow/pkg/db"
)

func TestResolveTrigger(t *testing.T) {
	tests := []struct {
		name    string
		kind    db.TriggerKind
		custom  string
		want    string
		wantErr string
	}{
		{name: "once has no expression", kind: db.TriggerOnce, want: ""},
		{name: "every 5 min", kind: db.TriggerEvery5Min, want: "*/5 * * * *"},
		{name: "every 10 min", kind: db.TriggerEvery10Min, want: "*/10 * * * *"},
		{name: "every 30 min", kind: db.TriggerEvery30Min, want: "*/30 * * * *"},
		{name: "hourly", kind: db.TriggerHourly, want: "0 * * * *"},
		{name: "every 2 hours", kind: db.TriggerEvery2Hours, want: "0 */2 * * *"},
		{name: "every 6 hours", kind: db.TriggerEvery6Hours, want: "0 */6 * * *"},
		{name: "every 12 hours", kind: db.TriggerEvery12Hours, want: "0 */12 * * *"},
		{name: "daily at 8am", kind: db.TriggerDaily, want: "0 8 * * *"},
		{name: "weekly monday 8am", kind: db.TriggerWeekly, want: "0 8 * * 1"},
		{name: "valid custom", kind: db.TriggerCustom, custom: "15 3 * * 2", want: "15 3 * * 2"},
		{name: "custom without expression", kind: db.TriggerCustom, wantErr: "requires a cron expression"},
		{name: "invalid custom rejected synchronously", kind: db.TriggerCustom, custom: "99 99 * * *", wantErr: "invalid cron expression"},
		{name: "garbage custom", kind: db.TriggerCustom, custom: "not cron", wantErr: "invalid cron expression"},
		{name: "unknown kind", kind: db.TriggerKind("MONTHLY"), wantErr: "unknown trigger kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTrigger(tt.kind, tt.custom)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextFire_Recurring(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC) // a Tuesday

	t.Run("hourly fires at next top of hour", func(t *testing.T) {
		s := &db.Schedule{TriggerKind: db.TriggerHourly, CronExpr: "0 * * * *", Timezone: "UTC"}
		next, ok, err := NextFire(s, now)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC), next)
	})

	t.Run("daily resolves to 8am in the schedule timezone", func(t *testing.T) {
		s := &db.Schedule{TriggerKind: db.TriggerDaily, CronExpr: "0 8 * * *", Timezone: "America/New_York"}
		next, ok, err := NextFire(s, now)
		require.NoError(t, err)
		require.True(t, ok)

		loc, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		assert.Equal(t, 8, next.In(loc).Hour())
		assert.Equal(t, 0, next.In(loc).Minute())
		assert.True(t, next.After(now))
	})

	t.Run("weekly fires monday", func(t *testing.T) {
		s := &db.Schedule{TriggerKind: db.TriggerWeekly, CronExpr: "0 8 * * 1", Timezone: "UTC"}
		next, ok, err := NextFire(s, now)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, time.Monday, next.Weekday())
		assert.Equal(t, 8, next.Hour())
	})

	t.Run("next fire strictly after now", func(t *testing.T) {
		// exactly on the boundary: the next fire is the following slot
		boundary := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
		s := &db.Schedule{TriggerKind: db.TriggerHourly, CronExpr: "0 * * * *", Timezone: "UTC"}
		next, ok, err := NextFire(s, boundary)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC), next)
	})

	t.Run("successive fires strictly increase", func(t *testing.T) {
		s := &db.Schedule{TriggerKind: db.TriggerEvery5Min, CronExpr: "*/5 * * * *", Timezone: "UTC"}
		cur := now
		for range 10 {
			next, ok, err := NextFire(s, cur)
			require.NoError(t, err)
			require.True(t, ok)
			require.True(t, next.After(cur))
			cur = next
		}
	})

	t.Run("bad expression", func(t *testing.T) {
		s := &db.Schedule{TriggerKind: db.TriggerCustom, CronExpr: "broken", Timezone: "UTC"}
		_, _, err := NextFire(s, now)
		assert.ErrorContains(t, err, "parse cron expression")
	})

	t.Run("bad timezone", func(t *testing.T) {
		s := &db.Schedule{TriggerKind: db.TriggerHourly, CronExpr: "0 * * * *", Timezone: "Mars/Olympus"}
		_, _, err := NextFire(s, now)
		assert.ErrorContains(t, err, "load timezone")
	})
}

func TestNextFire_Once(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	t.Run("future instant", func(t *testing.T) {
		runAt := now.Add(2 * time.Hour)
		s := &db.Schedule{TriggerKind: db.TriggerOnce, RunAt: sql.NullTime{Time: runAt, Valid: true}, Timezone: "UTC"}
		next, ok, err := NextFire(s, now)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, runAt, next)
	})

	t.Run("elapsed instant fires immediately", func(t *testing.T) {
		s := &db.Schedule{TriggerKind: db.TriggerOnce, RunAt: sql.NullTime{Time: now.Add(-time.Minute), Valid: true}, Timezone: "UTC"}
		_, ok, err := NextFire(s, now)
		require.NoError(t, err)
		assert.False(t, ok, "elapsed one-shot means fire now, not arm")
	})

	t.Run("missing run_at", func(t *testing.T) {
		s := &db.Schedule{ID: 3, TriggerKind: db.TriggerOnce, Timezone: "UTC"}
		_, _, err := NextFire(s, now)
		assert.ErrorContains(t, err, "has no run_at")
	})
}
