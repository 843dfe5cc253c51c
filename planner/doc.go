// Package planner provides the day-itinerary scheduling engine.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - activity.go: activity identity, key normalization, and the three
//     acquisition modes (standby, premier, priority)
//   - scheduler.go: the greedy planning loop over the simulated clock
//   - rights.go: the per-mode reservation right state machine
//
// # Architecture
//
// A Scheduler consults three read-only models and owns all mutable state of
// a run:
//   - WaitTable: expected standby wait per attraction per hour bucket
//   - AvailabilityTable: sellout buckets and obtainable slots for the
//     constrained modes
//   - RightsTracker: per-mode reservation cooldowns (scheduler-local)
//
// A single Plan call is a pure, sequential run: the clock only moves
// forward, and every result the caller observes — the ordered action list
// and the unsatisfied selections — is produced at the end. Presentation
// lives in planner/timeline; dataset parsing in planner/dataset.
//
// The load score (score.go) is deliberately independent of the scheduler:
// it is the original app's points arithmetic over the same catalog and
// selections.
package planner
