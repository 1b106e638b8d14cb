// Package assets manages the local track library and its mirror in the object store.
//
// Scan enumerates the library directory (flat, allow-listed audio extensions, optional
// exclude globs). StorageManager answers "where does this track live" and performs the
// upload of one track, applying the configured Mode:
//
//   - local:  disk is authoritative, the object store is a mirror.
//   - hybrid: local copy preferred, remote used as a fallback.
//   - remote: playback always goes through presigned object store URLs.
//
// Object keys follow "<namespace>/<name>". Every object store call runs under the
// configured per-call timeout; a timeout is an error for that track only.
package assets
