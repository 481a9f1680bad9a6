// Package models defines the core domain models for dailypick.
//
// # Models
//
//   - Roster: a named, ordered, immutable list of people plus the start date
//     and the number of people picked per day
//   - DayPicks: the selection for one roster on one day
//   - Stats: per-person pick counts recomputed over a date range
//   - PersonCount: one row of the count table
//
// # Design Principles
//
// 1. **No stored results**: DayPicks and Stats are always recomputed from the
// roster and a date; only rosters are persisted
// 2. **Frozen rosters**: a roster never changes after creation, since that
// would silently rewrite history
// 3. **Names, not IDs**: people are identified by their display name, which
// is also the unit the selection shuffles
package models
