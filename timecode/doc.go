// Package timecode implements SMPTE timecode parsing, validation and
// arithmetic. The two primary types in this package are:
//
//	type Timecode[FR Framerate]
//
//	and
//
//	type Rate
//
// A Timecode is an immutable hours:minutes:seconds:frames position in
// a video stream, tied to a framerate that decides how many frames
// make up one second and whether drop-frame counting applies. The
// Rate is the runtime framerate value; fixed types such as NDF30 or
// DF2997 carry the same information at compile time for callers that
// know the rate statically.
//
// All operations are pure value computations. Fallible operations
// return errors from the taxonomy in errors.go; nothing here performs
// I/O or holds shared state, so every value is safe to share between
// goroutines.
package timecode
