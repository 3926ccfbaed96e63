/*
Package fetchmock provides a scripted stand-in for the fetch capability.

A Mock never performs network I/O. Each test scripts the outcomes it needs and
the Mock hands them out in order, one per invocation, while recording every
invocation in a ledger for later assertions.

# Basic Usage

	func TestProduct(t *testing.T) {
		m := fetchmock.Install(t) // reset automatically when the test ends

		m.QueueResponse(fetchmock.Response{
			OK:   true,
			Body: func() any { return map[string]any{"id": 2, "title": "Samsung Galaxy"} },
		})

		res, err := m.Fetch(ctx, "https://dummyjson.com/products/2", nil)
		// res.OK == true, res.JSON(&p) decodes the body
	}

# Rejections

QueueRejection makes the next invocation fail with exactly the given error:

	m.QueueRejection(errors.New("Network Error"))
	_, err := m.Fetch(ctx, url, nil) // err.Error() == "Network Error"

# Ordering

Scripted outcomes are consumed first in, first out. There is no implicit
reuse: an invocation with nothing left to consume fails with ErrUnscripted,
unless Config.DefaultResponse is set.

# Inspecting Calls

	m.CalledWith("https://dummyjson.com/products/add", opts)
	for _, c := range m.Calls() {
		// c.URL, c.Options
	}

# Driving the host client

HostCall speaks the host httpclient protocol, so the same script can drive a
fetch.Host:

	h, _ := fetch.NewHost(fetch.HostConfig{HostCall: m.HostCall})
*/
package fetchmock
