package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/tarmac-project/fetchkit"
	"github.com/tarmac-project/fetchkit/logging"
	"github.com/tarmac-project/fetchkit/metrics"
	proto "github.com/tarmac-project/protobuf-go/sdk/http"
	wapc "github.com/wapc/wapc-guest-tinygo"
	"github.com/zoobzio/clockz"
)

const (
	capabilityName = "httpclient"
	fnCall         = "call"

	// RequestIDHeader is stamped on every request that does not already carry it.
	RequestIDHeader = "X-Request-Id"

	hostStatusOK       = int32(200)
	hostStatusPartial  = int32(206)
	hostStatusBadInput = int32(400)
	hostStatusMissing  = int32(404)
	hostStatusError    = int32(500)
)

// HostConfig configures the host-backed Fetcher.
//
// Zero values fall back to defaults: the namespace to fetchkit.DefaultNamespace,
// HostCall to wapc.HostCall, Logger to logging.Nop, and Clock to
// clockz.RealClock. A nil Metrics records nothing.
type HostConfig struct {
	// SDKConfig provides the runtime namespace for host calls.
	SDKConfig fetchkit.RuntimeConfig
	// InsecureSkipVerify disables TLS verification when supported.
	InsecureSkipVerify bool
	// HostCall overrides the waPC host function used for requests.
	HostCall fetchkit.HostCall
	// Logger receives one entry per request.
	Logger logging.Client
	// Metrics records request outcomes and latency.
	Metrics *metrics.Fetch
	// Clock measures request latency.
	Clock clockz.Clock
}

// Host implements Fetcher using waPC host calls.
type Host struct {
	cfg      HostConfig
	hostCall fetchkit.HostCall
	log      logging.Client
	clock    clockz.Clock
}

var _ Fetcher = (*Host)(nil)

// NewHost creates a host-backed Fetcher.
func NewHost(cfg HostConfig) (*Host, error) {
	cfg.SDKConfig = cfg.SDKConfig.WithDefaults()

	h := &Host{cfg: cfg, hostCall: wapc.HostCall, log: logging.Nop(), clock: clockz.RealClock}
	if cfg.HostCall != nil {
		h.hostCall = cfg.HostCall
	}
	if cfg.Logger != nil {
		h.log = cfg.Logger
	}
	if cfg.Clock != nil {
		h.clock = cfg.Clock
	}
	return h, nil
}

// Fetch sends the request through the host and translates the reply.
func (h *Host) Fetch(ctx context.Context, rawURL string, opts *Options) (*Response, error) {
	req, err := h.buildRequest(rawURL, opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	requestID := req.GetHeaders()[RequestIDHeader].GetValues()[0]

	h.cfg.Metrics.Begin()
	start := h.clock.Now()
	res, err := h.call(req)
	elapsed := h.clock.Now().Sub(start)

	if err != nil {
		h.cfg.Metrics.Done(false, err, elapsed)
		h.log.Error("fetch failed",
			"method", req.GetMethod(), "url", rawURL, "request_id", requestID, "error", err)
		return nil, err
	}

	h.cfg.Metrics.Done(res.OK, nil, elapsed)
	h.log.Debug("fetch",
		"method", req.GetMethod(), "url", rawURL, "status", res.Status,
		"request_id", requestID, "elapsed", elapsed)
	return res, nil
}

// buildRequest validates the caller's input and converts it to the protobuf request.
func (h *Host) buildRequest(rawURL string, opts *Options) (*proto.HTTPClient, error) {
	method := opts.MethodOrDefault()
	if !isValidMethod(method) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMethod, method)
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, ErrInvalidURL
	}

	req := &proto.HTTPClient{
		Method:   method,
		Url:      u.String(),
		Insecure: h.cfg.InsecureSkipVerify,
		Headers:  make(map[string]*proto.Header),
	}

	if opts != nil {
		if len(opts.Body) > 0 && (method == http.MethodGet || method == http.MethodHead) {
			return nil, ErrBodyNotAllowed
		}
		req.Body = opts.Body
		for key, values := range opts.Header {
			req.Headers[http.CanonicalHeaderKey(key)] = &proto.Header{Values: values}
		}
	}

	if hdr, ok := req.Headers[RequestIDHeader]; !ok || len(hdr.GetValues()) == 0 {
		req.Headers[RequestIDHeader] = &proto.Header{Values: []string{uuid.NewString()}}
	}

	return req, nil
}

// call marshals the request, performs the host call, and unmarshals the reply.
func (h *Host) call(req *proto.HTTPClient) (*Response, error) {
	b, err := req.MarshalVT()
	if err != nil {
		return nil, errors.Join(ErrMarshalRequest, err)
	}

	raw, err := h.hostCall(h.cfg.SDKConfig.Namespace, capabilityName, fnCall, b)
	if err != nil {
		return nil, errors.Join(fetchkit.ErrHostCall, err)
	}

	var r proto.HTTPClientResponse
	if err := r.UnmarshalVT(raw); err != nil {
		return nil, errors.Join(ErrUnmarshalResponse, err)
	}

	status := r.GetStatus()
	if status == nil {
		return nil, fetchkit.ErrHostResponseInvalid
	}

	switch code := status.GetCode(); code {
	case hostStatusOK, hostStatusPartial:
	case hostStatusBadInput, hostStatusMissing, hostStatusError:
		detail := fmt.Sprintf("host status %d", code)
		if msg := status.GetStatus(); msg != "" {
			detail = fmt.Sprintf("%s: %s", detail, msg)
		}
		return nil, errors.Join(fetchkit.ErrHostError, errors.New(detail))
	default:
		return nil, errors.Join(
			fetchkit.ErrHostResponseInvalid,
			fmt.Errorf("unexpected host status code %d", code),
		)
	}

	header := make(http.Header)
	for name, hdr := range r.GetHeaders() {
		header[http.CanonicalHeaderKey(name)] = hdr.GetValues()
	}

	res := NewResponse(int(r.GetCode()), header, nil)
	res.URL = req.GetUrl()
	if body := r.GetBody(); len(body) > 0 {
		res.WithBody(func() ([]byte, error) { return body, nil })
	}
	return res, nil
}
