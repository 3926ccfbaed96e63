/*
Package fetch provides the network-fetch capability used by Tarmac functions.

A Fetcher takes a URL and optional Options (method, body, headers) and returns
a Response. Transport failures come back as errors; application failures do
not. A response with a non-2xx status has OK set to false and its body can
still be read, so callers must inspect OK explicitly:

	res, err := f.Fetch(ctx, "https://dummyjson.com/products/1", nil)
	if err != nil {
		return err // the request never completed
	}
	var p catalog.Product
	if err := res.JSON(&p); err != nil {
		return err
	}

Response bodies are produced lazily and can be read exactly once.

Host is the Fetcher backed by the host httpclient capability. Tests replace it
with the scripted stand-in in the fetchmock package.
*/
package fetch
