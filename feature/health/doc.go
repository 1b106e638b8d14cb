// Package health implements the health feature.
//
// It verifies the dependencies the sync engine relies on:
//  1. Object store: the bucket exists and the track namespace can be listed.
//  2. Library: the local directory exists and can be scanned.
//  3. Database: the sync_attempts table matches its model (only when retry state is persisted).
//
// # HTTP Endpoints
//
//   - GET /health          : run every check. 503 when degraded.
//   - GET /health?fix=true : additionally create a missing bucket.
package health
