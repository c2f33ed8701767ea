// Package process stops the headless browser tree left behind by a
// renderer. Errors are dropped: the launcher's own Kill runs afterwards.
package process
