package queries

import (
	"errors"

	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/guard"
)

var (
	ErrAuditPackageIntegrityQueryIsNotConstructed = errors.New(
		"AuditPackageIntegrityQuery must be created via NewAuditPackageIntegrityQuery constructor",
	)
)

// AuditPackageIntegrityQuery scans every package for dangling attachment references.
type AuditPackageIntegrityQuery struct {
	guard guard.ConstructorGuard
}

// NewAuditPackageIntegrityQuery creates the query.
func NewAuditPackageIntegrityQuery() AuditPackageIntegrityQuery {
	return AuditPackageIntegrityQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q AuditPackageIntegrityQuery) Validate() error {
	return q.guard.Validate(ErrAuditPackageIntegrityQueryIsNotConstructed)
}

// AuditPackageIntegrityQueryResponse summarises one audit pass.
type AuditPackageIntegrityQueryResponse struct {
	PackagesChecked int
	Faults          []*errs.IntegrityFaultError
}
