// Package order provides the Order aggregate: a customer's booking of a package
// together with the concrete hotel, guide and flight pinned to it.
//
// The package includes:
//   - Order: the aggregate root holding the natural key (username, package) and the
//     pinned resource ids
//
// Key business rules:
//   - A new order copies the package's current hotel and guide references. Later
//     changes to the package never propagate into existing orders.
//   - The flight is chosen at creation time and is always set.
//   - Pinned resources change only through ReassignGuide, ReassignHotel and
//     ReassignFlight. There are no other setters.
//   - An order is either present or deleted; there is no status field.
package order
