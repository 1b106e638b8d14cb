// Package tracks exposes the hybrid track library over HTTP.
//
// # HTTP Endpoints
//
//   - GET /tracks                     : local inventory.
//   - GET /tracks/:name/location      : local and remote presence and the primary copy.
//   - GET /tracks/:name/playback      : playback URL; ?redirect=true answers with a 302.
//   - GET <media_route>/*             : the local library as static files (not in remote mode).
package tracks
