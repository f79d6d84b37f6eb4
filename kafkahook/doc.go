// Package kafkahook publishes log entries to a Kafka topic.
//
// The hook is asynchronous-only: its side effect is a network publish,
// so Fire refuses with structlog.ErrAsyncOnly and the dispatch pipeline
// uses FireAsync instead. Each entry is published as its JSON rendering;
// an optional key field selects one string field value as the message's
// partitioning key.
package kafkahook
