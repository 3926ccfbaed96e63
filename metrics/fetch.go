package metrics

import "time"

// Metric names emitted by the Fetch recorder.
const (
	FetchRequests = "fetch_requests"
	FetchFailures = "fetch_failures"
	FetchNotOK    = "fetch_not_ok"
	FetchInflight = "fetch_inflight"
	FetchDuration = "fetch_duration_seconds"
)

// Fetch records the outcome of fetch calls. A nil *Fetch records nothing.
type Fetch struct {
	requests *Counter
	failures *Counter
	notOK    *Counter
	inflight *Gauge
	duration *Histogram
}

// NewFetch builds the fetch instruments on top of c.
func NewFetch(c Client) (*Fetch, error) {
	var (
		f   Fetch
		err error
	)
	if f.requests, err = c.NewCounter(FetchRequests); err != nil {
		return nil, err
	}
	if f.failures, err = c.NewCounter(FetchFailures); err != nil {
		return nil, err
	}
	if f.notOK, err = c.NewCounter(FetchNotOK); err != nil {
		return nil, err
	}
	if f.inflight, err = c.NewGauge(FetchInflight); err != nil {
		return nil, err
	}
	if f.duration, err = c.NewHistogram(FetchDuration); err != nil {
		return nil, err
	}
	return &f, nil
}

// Begin marks a fetch as started.
func (f *Fetch) Begin() {
	if f == nil {
		return
	}
	f.requests.Inc()
	f.inflight.Inc()
}

// Done marks a fetch as finished. A non-nil err counts as a transport
// failure; otherwise ok=false counts as an application failure.
func (f *Fetch) Done(ok bool, err error, elapsed time.Duration) {
	if f == nil {
		return
	}
	f.inflight.Dec()
	switch {
	case err != nil:
		f.failures.Inc()
	case !ok:
		f.notOK.Inc()
	}
	f.duration.Observe(elapsed.Seconds())
}
