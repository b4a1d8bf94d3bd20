// Package logging builds the zerolog loggers used across resultpager.
//
// Loggers are configured from a Config (level, format, optional file),
// tagged with a component name, and carried through context.Context
// together with a per-invocation trace id.
package logging
