// Package kodi wraps the Kodi JSON-RPC HTTP interface.
//
// Client owns the request/response plumbing (ids, auth, decoding, error
// classification); the VideoLibrary helpers on top are thin pass-throughs
// that each enforce a single domain rule: an expected-but-empty result is
// reported as ErrNoData, distinct from transport or host failures.
package kodi
