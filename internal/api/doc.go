// Package api implements the HTTP layer of the Stream Chat SDK:
// request envelope construction, authentication headers and wire-level
// error parsing. The typed endpoint surface lives in the root
// streamchat package; this package only knows how to address, sign and
// execute a single request.
package api
