package metrics

// Package metrics defines the events emitted for each analytics run and the
// Sink interface that records them. Sinks such as PromSink and InfluxSink live
// in infra/metrics and register themselves with RegisterSink; NewSink builds
// the sinks listed in the configuration and fans out through a MultiSink when
// more than one is configured.
