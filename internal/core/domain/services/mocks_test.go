package services_test

import (
	"context"

	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/model/order"
	"trippy/internal/core/ports"
	"trippy/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

type fixedPolicy struct{ idx int }

func (p fixedPolicy) Choose(int) int { return p.idx }

type lastPolicy struct{}

func (lastPolicy) Choose(n int) int { return n - 1 }

type MockAttachmentReader struct{ mock.Mock }

func (m *MockAttachmentReader) GetHotel(ctx context.Context, id int64) (catalog.Hotel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Hotel), args.Error(1)
}

func (m *MockAttachmentReader) GetGuide(ctx context.Context, id int64) (catalog.Guide, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Guide), args.Error(1)
}

func (m *MockAttachmentReader) GetCarRental(ctx context.Context, id int64) (catalog.CarRental, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.CarRental), args.Error(1)
}

type MockOrderedPackageLister struct{ mock.Mock }

func (m *MockOrderedPackageLister) ListPackagesForUser(ctx context.Context, username string) ([]ports.OrderedPackage, error) {
	args := m.Called(ctx, username)
	rows, _ := args.Get(0).([]ports.OrderedPackage)
	return rows, args.Error(1)
}

type MockPackageFinder struct{ mock.Mock }

func (m *MockPackageFinder) FirstPackageByDestination(ctx context.Context, destination string) (*catalog.Package, error) {
	args := m.Called(ctx, destination)
	pkg, _ := args.Get(0).(*catalog.Package)
	return pkg, args.Error(1)
}

type MockOrderFinder struct{ mock.Mock }

func (m *MockOrderFinder) GetByUserAndPackage(ctx context.Context, username string, packageID int64) (*order.Order, error) {
	args := m.Called(ctx, username, packageID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type recordingFaults struct {
	faults []*errs.IntegrityFaultError
}

func (r *recordingFaults) RecordIntegrityFault(_ context.Context, f *errs.IntegrityFaultError) {
	r.faults = append(r.faults, f)
}

func ptr(v int64) *int64 { return &v }
