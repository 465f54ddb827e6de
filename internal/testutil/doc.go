// Package testutil holds helpers shared by the test suites: a thread-safe log
// buffer, temporary config trees, record fixtures and an integration harness
// that runs the whole app.
package testutil
