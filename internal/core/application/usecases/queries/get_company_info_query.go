package queries

import (
	"errors"
	"strings"

	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/guard"
)

// DefaultInfoName is the info entry served on the company page.
const DefaultInfoName = "company"

var (
	ErrGetCompanyInfoQueryIsNotConstructed = errors.New(
		"GetCompanyInfoQuery must be created via NewGetCompanyInfoQuery constructor",
	)
)

// GetCompanyInfoQuery retrieves a named block of company information text.
//
// Example:
//
//	query, _ := NewGetCompanyInfoQuery(queries.DefaultInfoName)
//	info, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // nothing configured yet
//	}
type GetCompanyInfoQuery struct {
	name  string
	guard guard.ConstructorGuard
}

// NewGetCompanyInfoQuery creates the query. An empty name selects DefaultInfoName.
func NewGetCompanyInfoQuery(name string) (GetCompanyInfoQuery, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultInfoName
	}
	if len(name) > 64 {
		return GetCompanyInfoQuery{}, errs.NewValueIsOutOfRangeError("info name length", len(name), 1, 64)
	}
	return GetCompanyInfoQuery{name: name, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompanyInfoQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyInfoQueryIsNotConstructed)
}

// Name returns the info entry to read.
func (q GetCompanyInfoQuery) Name() string {
	return q.name
}

// GetCompanyInfoQueryResponse is a single info entry.
type GetCompanyInfoQueryResponse struct {
	Name    string `gorm:"column:info_name"    json:"info_name"`
	Content string `gorm:"column:info_content" json:"info_content"`
}
