package fetchmock

import (
	"fmt"
	"net/http"

	"github.com/tarmac-project/fetchkit/fetch"
	"github.com/tarmac-project/fetchkit/hostmock"
	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	proto "github.com/tarmac-project/protobuf-go/sdk/http"
	pb "google.golang.org/protobuf/proto"
)

const hostCapability = "httpclient"

// HostCall answers host httpclient calls from the same script as Fetch, so a
// fetch.Host built on top of it sees the scripted outcomes. Rejections become
// host call failures. Over this path the response OK flag is derived from the
// status code by the host client.
func (m *Mock) HostCall(_, capability, _ string, payload []byte) ([]byte, error) {
	if capability != hostCapability {
		return nil, fmt.Errorf("%w: expected capability %s, got %s",
			hostmock.ErrUnexpectedCapability, hostCapability, capability)
	}

	var req proto.HTTPClient
	if err := pb.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("failed to decode host request: %w", err)
	}

	call := Call{URL: req.GetUrl(), Options: &fetch.Options{Method: req.GetMethod()}}
	if len(req.GetBody()) > 0 {
		call.Options.Body = append([]byte{}, req.GetBody()...)
	}
	if hdrs := req.GetHeaders(); len(hdrs) > 0 {
		call.Options.Header = make(http.Header, len(hdrs))
		for k, h := range hdrs {
			call.Options.Header[http.CanonicalHeaderKey(k)] = append([]string(nil), h.GetValues()...)
		}
	}

	next, ok := m.take(call, true)
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrUnscripted, req.GetMethod(), req.GetUrl())
	}
	if next.err != nil {
		return nil, next.err
	}

	body, err := next.res.encode()
	if err != nil {
		return nil, err
	}

	resp := &proto.HTTPClientResponse{
		Status:  &sdkproto.Status{Status: "OK", Code: 200},
		Code:    int32(next.res.status()),
		Headers: make(map[string]*proto.Header, len(next.res.Header)),
		Body:    body,
	}
	for k, v := range next.res.Header {
		resp.Headers[k] = &proto.Header{Values: v}
	}
	return resp.MarshalVT()
}
