// Package structlog is a structured logging library built around a small
// dispatch pipeline: a log call is level-filtered, snapshotted into an
// immutable Entry, rendered by a pluggable Formatter, written to a single
// lock-protected sink, and finally fanned out to any registered Hooks.
//
// A Logger is configured once through a Builder and is safe for concurrent
// use afterwards; the output sink is the only shared mutable state and is
// guarded by a mutex for the duration of one write:
//
//	log := structlog.NewBuilder().
//	    WithLevel(structlog.DebugLevel).
//	    WithFormatter(structlog.NewJSONFormatter(structlog.JSONConfig{})).
//	    WithOutput(os.Stderr).
//	    Build()
//
//	log.WithField("user", "alice").Info("User logged in")
//
// The package also maintains a lazily-built default Logger so simple
// programs can log without any setup:
//
//	structlog.Info("ready")
//	structlog.WithField("port", 8080).Info("listening")
//
// Hooks receive every entry whose level is in their declared set. Hooks
// whose side effect is itself asynchronous (a network publish, for
// example) implement AsyncHook; the dispatch pipeline bridges into the
// asynchronous form and waits for the result, so hook attempts always
// finish before Fatal or Panic post-actions run. Hook failures are
// reported to a diagnostics stream and never fail the logging call.
//
// Subpackages provide ready-made integrations: kafkahook publishes entries
// to a Kafka topic, zaphook mirrors entries into a zap.Logger, and sink
// provides a rotating file sink.
package structlog
