// Package mocks provides hand-written test doubles for the service and
// platform interfaces. Each mock exposes function fields for per-test
// behaviour and plain fields for simple canned responses.
package mocks
