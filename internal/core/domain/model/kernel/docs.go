// Package kernel provides core domain primitives shared by the booking model.
//
// The package includes:
//   - UUID: the identity of an order aggregate
//   - Optional: an explicit "resolved or absent" wrapper for composed attachments
//   - Destination: a normalized location tag used to filter hotels, restaurants and packages
//
// These primitives are immutable and safe for concurrent use.
package kernel
