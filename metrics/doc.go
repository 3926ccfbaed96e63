/*
Package metrics provides a client for creating custom metrics through the
Tarmac host runtime.

The package exposes constructors for Counter, Gauge, and Histogram metric
handles, each backed by protobuf payloads sent over waPC host calls, and a
Fetch recorder that the fetch package uses to count requests, transport
failures, and not-ok responses and to observe request latency.

Inc/Dec/Observe are best-effort and do not return errors. Marshal or host-call
failures are swallowed.
*/
package metrics
