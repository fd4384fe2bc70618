// Package api exposes the conversion service over HTTP. Handlers read query
// parameters, delegate to internal/service and translate errors into the
// fixed client-facing messages defined in errors.go.
package api
