// Package catalog holds the reference data customers browse and orders pin:
// hotels, guides, car rentals, flights, restaurants and the packages that bundle them.
//
// Catalog rows are created out of band. The core only reads them, so the types are
// plain value structs. A Package carries foreign keys to its attachments and, once
// composed, the resolved attachments themselves in kernel.Optional fields.
//
// AttachmentKind is the closed set of attachments a package can reference. Each kind
// knows its storage table and how to read its foreign key from a Package, which lets
// composition and integrity auditing iterate kinds instead of hard-coding three lookups.
package catalog
