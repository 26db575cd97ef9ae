package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pressflow/pressflow/pkg/db"
)

// canonical cron expressions for the fixed trigger kinds
var canonicalExprs = map[db.TriggerKind]string{
	db.TriggerEvery5Min:    "*/5 * * * *",
	db.TriggerEvery10Min:   "*/10 * * * *",
	db.TriggerEvery30Min:   "*/30 * * * *",
	db.TriggerHourly:       "0 * * * *",
	db.TriggerEvery2Hours:  "0 */2 * * *",
	db.TriggerEvery6Hours:  "0 */6 * * *",
	db.TriggerEvery12Hours: "0 */12 * * *",
	db.TriggerDaily:        "0 8 * * *",
	db.TriggerWeekly:       "0 8 * * 1",
}

// ResolveTrigger validates a trigger kind and returns its canonical cron
// expression. CUSTOM expressions are validated synchronously; an invalid
// expression is rejected and never stored. ONCE has no expression.
func ResolveTrigger(kind db.TriggerKind, customExpr string) (string, error) {
	if kind == db.TriggerOnce {
		return "", nil
	}
	if kind == db.TriggerCustom {
		if customExpr == "" {
			return "", fmt.Errorf("custom trigger requires a cron expression")
		}
		if _, err := cron.ParseStandard(customExpr); err != nil {
			return "", fmt.Errorf("invalid cron expression %q: %w", customExpr, err)
		}
		return customExpr, nil
	}

	expr, ok := canonicalExprs[kind]
	if !ok {
		return "", fmt.Errorf("unknown trigger kind %q", kind)
	}
	return expr, nil
}

// NextFire computes the next fire instant strictly after now, in the
// schedule's timezone. For an elapsed ONCE schedule it returns ok=false,
// meaning the schedule should fire immediately instead of being armed.
func NextFire(s *db.Schedule, now time.Time) (next time.Time, ok bool, err error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("load timezone %q: %w", s.Timezone, err)
	}

	if s.TriggerKind == db.TriggerOnce {
		if !s.RunAt.Valid {
			return time.Time{}, false, fmt.Errorf("one-shot schedule %d has no run_at", s.ID)
		}
		if s.RunAt.Time.After(now) {
			return s.RunAt.Time, true, nil
		}
		return time.Time{}, false, nil // already elapsed
	}

	sched, err := cron.ParseStandard(s.CronExpr)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse cron expression %q: %w", s.CronExpr, err)
	}
	return sched.Next(now.In(loc)), true, nil
}
