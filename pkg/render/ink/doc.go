// Package ink renders Mermaid scripts through a mermaid.ink compatible
// server.
//
// The script is sent URL-safe base64 encoded in the request path:
//
//	GET <server>/svg/<encoded>[?width=..&height=..&scale=..]
//	GET <server>/img/<encoded>?type=png[&width=..]
//
// The server defaults to https://mermaid.ink and can be changed with the
// MERMAID_INK_SERVER environment variable or [Config.Server].
//
// # Sizing
//
// [Options] carries the optional width, height and scale. Scale must lie in
// [1, 3] and needs a width or a height; [Options.Validate] rejects anything
// else before a request is made.
//
// # Caching and retries
//
// Rendered artifacts are cached in a [cache.Cache] under a key derived from
// the script hash and the options. Transport errors and 5xx responses are
// retried with exponential backoff. 4xx responses are mapped to
// [errors.ErrCodeInvalidInput], [errors.ErrCodeNotFound] and
// [errors.ErrCodeRateLimited] and returned at once.
package ink
