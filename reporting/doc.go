// Package reporting adapts compute's progress/log callbacks to
// concrete external sinks: a terminal progress bar and a structured
// logger. Neither compute nor matrix import this package — it depends
// on them, never the reverse, so the core stays free of rendering and
// logging concerns.
package reporting
