// Package subscriber implements the collapse-event observer protocol
// (C10): every resolver run notifies an attached Subscriber of
// generation start, each committed collapse, and generation end, in
// the exact order collapses are committed — a faithful replay log.
//
// NoOp discards every event. History accumulates them into an indexed,
// randomly-accessible list supporting step-forward/step-backward/rewind
// visualization and full replay onto an empty grid. Multi fans one
// stream of events out to several subscribers. LoggingSubscriber and
// MetricsSubscriber are ambient observability adapters: the former
// writes structured log lines tagged with a per-run id, the latter
// exports Prometheus counters.
package subscriber
