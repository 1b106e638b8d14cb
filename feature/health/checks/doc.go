// Package checks holds the individual health checks of the track manager.
//
// Each check returns a typed report. Failures of the dependency being checked are part
// of the report; only failures to run the check at all are returned as errors.
package checks
