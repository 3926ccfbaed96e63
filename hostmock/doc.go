/*
Package hostmock provides a pretend Tarmac host for waPC calls.

It is used to check exactly what the fetch, logging, and metrics clients send
to the host without needing a real host running.

  - Validate routing: ensure calls use the expected namespace, capability, and function when you set them.
  - Inspect payloads: plug in a PayloadValidator to assert protobuf contents, or read Calls afterwards.
  - Script responses: return custom bytes or simulate failures.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "tarmac",
	  ExpectedCapability: "httpclient",
	  ExpectedFunction:   "call",
	  PayloadValidator: func(p []byte) error {
	    // Unmarshal and assert fields here
	    return nil
	  },
	  Response: func() []byte { return []byte("ok") },
	})

	f, _ := fetch.NewHost(fetch.HostConfig{HostCall: m.HostCall})

Behavior

  - Every invocation is appended to Calls, even the ones that fail.
  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise, HostCall enforces ExpectedNamespace/Capability/Function when set
    and runs PayloadValidator when provided. Response (when set) provides the
    return bytes; otherwise it returns nil.

Leave fields blank when you want a wildcard. For request/response scripting at
the fetch level use the fetchmock package instead.
*/
package hostmock
