// Package imaging provides the low-level raster operations used by table
// region detection: decoding, cropping with padding, upscaling, and
// encoding to base64 PNG for transport.
//
// All operations are pure: they never mutate their input and every
// transform allocates a fresh buffer, so independent images can be
// processed in parallel without synchronization.
//
// # Errors
//
// Two error types let callers distinguish fatal from skippable failures:
//
//   - [DecodeError] - the input bytes are not a valid image; fatal for
//     the detection call that needed the decode.
//   - [EncodeError] - a cropped region could not be serialized (for
//     example a degenerate zero-area crop); callers skip that region
//     and continue.
//
// Both support errors.As.
package imaging
