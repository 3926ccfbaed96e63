package metrics

import (
	"errors"
	"regexp"

	"github.com/tarmac-project/fetchkit"
	proto "github.com/tarmac-project/protobuf-go/sdk/metrics"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	capabilityName = "metrics"
	fnCounter      = "counter"
	fnGauge        = "gauge"
	fnHistogram    = "histogram"
	actionInc      = "inc"
	actionDec      = "dec"
)

var (
	// ErrInvalidMetricName indicates a metric name that does not match the supported format.
	ErrInvalidMetricName = errors.New("metric name is invalid")

	isMetricNameValid = regexp.MustCompile(`^[a-zA-Z0-9_:]+$`)
)

// Client defines the metrics capability interface.
type Client interface {
	// NewCounter creates a named counter metric handle.
	NewCounter(name string) (*Counter, error)

	// NewGauge creates a named gauge metric handle.
	NewGauge(name string) (*Gauge, error)

	// NewHistogram creates a named histogram metric handle.
	NewHistogram(name string) (*Histogram, error)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig fetchkit.RuntimeConfig

	// HostCall overrides the waPC host function used for metrics operations.
	HostCall fetchkit.HostCall
}

// HostMetrics is the metrics capability client implementation.
type HostMetrics struct {
	runtime  fetchkit.RuntimeConfig
	hostCall fetchkit.HostCall
}

var _ Client = (*HostMetrics)(nil)

// New creates a metrics client with namespace defaults and optional host-call override.
func New(config Config) (*HostMetrics, error) {
	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &HostMetrics{runtime: config.SDKConfig.WithDefaults(), hostCall: hostCall}, nil
}

// handle is the routing shared by every metric kind.
type handle struct {
	name      string
	namespace string
	hostCall  fetchkit.HostCall
}

// vtMessage is implemented by every generated metrics payload.
type vtMessage interface {
	MarshalVT() ([]byte, error)
}

// emit sends a payload as a best-effort call; marshal and host failures are dropped.
func (h handle) emit(fn string, msg vtMessage) {
	payload, err := msg.MarshalVT()
	if err != nil {
		return
	}
	_, _ = h.hostCall(h.namespace, capabilityName, fn, payload)
}

func (c *HostMetrics) handle(name string) (handle, error) {
	if !isMetricNameValid.MatchString(name) {
		return handle{}, ErrInvalidMetricName
	}
	return handle{name: name, namespace: c.runtime.Namespace, hostCall: c.hostCall}, nil
}

// Counter is a named counter metric handle.
type Counter struct{ handle }

// NewCounter creates a named counter metric handle.
func (c *HostMetrics) NewCounter(name string) (*Counter, error) {
	h, err := c.handle(name)
	if err != nil {
		return nil, err
	}
	return &Counter{h}, nil
}

// Inc increments the counter by one.
func (c *Counter) Inc() {
	c.emit(fnCounter, &proto.MetricsCounter{Name: c.name})
}

// Gauge is a named gauge metric handle.
type Gauge struct{ handle }

// NewGauge creates a named gauge metric handle.
func (c *HostMetrics) NewGauge(name string) (*Gauge, error) {
	h, err := c.handle(name)
	if err != nil {
		return nil, err
	}
	return &Gauge{h}, nil
}

// Inc increments the gauge by one.
func (g *Gauge) Inc() { g.action(actionInc) }

// Dec decrements the gauge by one.
func (g *Gauge) Dec() { g.action(actionDec) }

func (g *Gauge) action(action string) {
	g.emit(fnGauge, &proto.MetricsGauge{Name: g.name, Action: action})
}

// Histogram is a named histogram metric handle.
type Histogram struct{ handle }

// NewHistogram creates a named histogram metric handle.
func (c *HostMetrics) NewHistogram(name string) (*Histogram, error) {
	h, err := c.handle(name)
	if err != nil {
		return nil, err
	}
	return &Histogram{h}, nil
}

// Observe records a value for the histogram.
func (h *Histogram) Observe(value float64) {
	h.emit(fnHistogram, &proto.MetricsHistogram{Name: h.name, Value: value})
}
