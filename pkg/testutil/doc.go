// Package testutil holds helpers shared by tsscaffold's tests: a mock
// filesystem for failure injection, tree snapshots for idempotence checks
// and an isolated environment so tests never write logs or config into the
// developer's home.
package testutil
