package services

import (
	"context"
	"errors"
	"fmt"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/core/ports"
	"trippy/internal/pkg/errs"
)

// FaultRecorder receives the integrity faults found while composing.
type FaultRecorder interface {
	RecordIntegrityFault(ctx context.Context, fault *errs.IntegrityFaultError)
}

// OrderedPackageLister lists a user's orders joined to their packages.
type OrderedPackageLister interface {
	ListPackagesForUser(ctx context.Context, username string) ([]ports.OrderedPackage, error)
}

type discardFaults struct{}

func (discardFaults) RecordIntegrityFault(context.Context, *errs.IntegrityFaultError) {}

// AttachmentComposer resolves the foreign-keyed attachments of packages.
//
// A reference to a missing row is an integrity fault: the attachment stays empty,
// the fault goes to the FaultRecorder and composition carries on. Storage failures
// are returned to the caller.
//
// Example:
//
//	composer := services.NewAttachmentComposer(uow.CatalogRepository(), recorder)
//	if err := composer.ComposePackage(ctx, pkg); err != nil {
//	    return err
//	}
//	hotel, ok := pkg.Hotel.Get()
type AttachmentComposer struct {
	reader ports.AttachmentReader
	faults FaultRecorder
}

// NewAttachmentComposer creates a composer. A nil recorder discards faults.
func NewAttachmentComposer(reader ports.AttachmentReader, faults FaultRecorder) AttachmentComposer {
	if faults == nil {
		faults = discardFaults{}
	}
	return AttachmentComposer{reader: reader, faults: faults}
}

// ComposePackage fills pkg's Hotel, Guide and CarRental from its references and
// reports dangling references to the recorder.
func (c AttachmentComposer) ComposePackage(ctx context.Context, pkg *catalog.Package) error {
	faults, err := c.Compose(ctx, pkg)
	for _, f := range faults {
		c.faults.RecordIntegrityFault(ctx, f)
	}
	return err
}

// Compose fills pkg's attachments and returns the integrity faults instead of
// recording them. Every kind is looked up even when an earlier one fails.
func (c AttachmentComposer) Compose(ctx context.Context, pkg *catalog.Package) ([]*errs.IntegrityFaultError, error) {
	if pkg == nil {
		return nil, errs.NewValueIsRequiredError("package")
	}

	var (
		faults  []*errs.IntegrityFaultError
		storage []error
	)
	for _, kind := range catalog.AttachmentKinds() {
		id := kind.ForeignKey(pkg)
		resetAttachment(kind, pkg)
		if id == nil {
			continue
		}

		err := c.resolve(ctx, kind, pkg, *id)
		switch {
		case err == nil:
		case errors.Is(err, errs.ErrObjectNotFound):
			faults = append(faults, errs.NewIntegrityFaultError("package", pkg.ID, kind.String(), *id))
		default:
			storage = append(storage, fmt.Errorf("resolve %s %d: %w", kind, *id, err))
		}
	}

	return faults, errors.Join(storage...)
}

// ComposeOrderPackages returns the user's ordered packages, each composed. An order
// whose package no longer exists is kept as an entry with an empty Package.
func (c AttachmentComposer) ComposeOrderPackages(
	ctx context.Context,
	orders OrderedPackageLister,
	username string,
) ([]ports.OrderedPackage, error) {
	rows, err := orders.ListPackagesForUser(ctx, username)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		pkg, ok := row.Package.Get()
		if !ok || pkg == nil {
			c.faults.RecordIntegrityFault(ctx,
				errs.NewIntegrityFaultError("order", row.OrderID.String(), "package", row.PackageID))
			continue
		}
		if err = c.ComposePackage(ctx, pkg); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func (c AttachmentComposer) resolve(ctx context.Context, kind catalog.AttachmentKind, pkg *catalog.Package, id int64) error {
	switch kind {
	case catalog.AttachmentHotel:
		h, err := c.reader.GetHotel(ctx, id)
		if err != nil {
			return err
		}
		pkg.Hotel = kernel.Some(h)
	case catalog.AttachmentGuide:
		g, err := c.reader.GetGuide(ctx, id)
		if err != nil {
			return err
		}
		pkg.Guide = kernel.Some(g)
	case catalog.AttachmentCarRental:
		r, err := c.reader.GetCarRental(ctx, id)
		if err != nil {
			return err
		}
		pkg.CarRental = kernel.Some(r)
	default:
		return errs.NewValueIsInvalidError(kind.String())
	}
	return nil
}

func resetAttachment(kind catalog.AttachmentKind, pkg *catalog.Package) {
	switch kind {
	case catalog.AttachmentHotel:
		pkg.Hotel = kernel.None[catalog.Hotel]()
	case catalog.AttachmentGuide:
		pkg.Guide = kernel.None[catalog.Guide]()
	case catalog.AttachmentCarRental:
		pkg.CarRental = kernel.None[catalog.CarRental]()
	}
}
