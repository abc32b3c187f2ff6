// Package client implements the request pipeline the Trellis SDK's
// resource methods are built on.
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithBaseURL("https://api.trellis.dev"),
//		client.WithToken("tr_live_..."),
//		client.WithTimeout(10*time.Second),
//	)
//
// # Making Calls
//
// [Client.Call] executes one request and decodes the result:
//
//	var created struct {
//		ID string `json:"id"`
//	}
//	err = c.Call(ctx, http.MethodPost, "/workspaces",
//		client.WithJSONBody(params),
//		client.WithResult(&created),
//	)
//
// Optional query parameters are assembled with [Query]; absent values
// are never serialized:
//
//	q := client.NewQuery().Set("workspace_id", wsID)
//	err = c.Call(ctx, http.MethodGet, "/datasets", client.WithQuery(q))
//
// # Uploads and Downloads
//
// Binary payloads travel as multipart bodies built with
// [NewMultipartBytes] or [NewMultipart]; download-style endpoints
// return raw bytes via [WithBinaryResult]:
//
//	mp := client.NewMultipartBytes(buf, client.WithFilename("train.parquet"))
//	err = c.Call(ctx, http.MethodPost, "/datasets", client.WithMultipartBody(mp))
//
//	var raw []byte
//	err = c.Call(ctx, http.MethodGet, "/datasets/d1/download", client.WithBinaryResult(&raw))
//
// # Errors
//
// Every failed call maps onto one of four conditions: [APIError]
// (non-2xx response), [ParseError] (2xx with an undecodable body), or
// errors wrapping [ErrTimeout] and [ErrTransport] when no response was
// obtained. Branch with [errors.Is] / [errors.As]:
//
//	var apiErr *client.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
//		// ...
//	}
package client
