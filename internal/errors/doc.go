// Package errors provides the error handling for gem-battle.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers for dependency configs
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("no battle in progress")
//	err := errors.InvalidArgumentf("invalid hand index: %d", index)
//
// Adding metadata:
//
//	err := errors.Internal("gem not in registry").
//	    WithMeta("gem_key", gemKey)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load proficiency records")
//	}
//
// # Error Checking
//
// Use the Is* helpers rather than comparing codes directly:
//
//	if errors.IsNotFound(err) {
//	    // treat as absent, continue with defaults
//	}
//
// # Conventions
//
// Everything reachable from stale UI state (bad selection index, unknown
// proficiency key) is normalized at the boundary where it occurs and never
// returned to callers. Unavailable persistence is logged and swallowed by
// the battle orchestrator. CodeInternal marks programming errors (a gem key
// missing from the static registry) and does surface.
package errors
