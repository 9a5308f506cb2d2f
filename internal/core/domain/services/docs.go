// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the booking system. It implements workflows
// that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - AvailabilitySelector: draws one resource from a pool, skipping excluded identities
//   - AttachmentComposer: resolves a package's hotel, guide and car rental references
//   - OrderLocator: finds a user's order through the destination of its package
//
// Services are stateless apart from their injected collaborators and are safe for
// concurrent use when those collaborators are.
package services
