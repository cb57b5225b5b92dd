// Package integration_testing runs the whole service against real postgres and
// redis containers. The tests are behind the integration_test build tag:
//
//	go test -tags integration_test ./integration_testing/...
package integration_testing
