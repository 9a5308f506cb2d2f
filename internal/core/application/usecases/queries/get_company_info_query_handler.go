package queries

import (
	"context"

	"trippy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCompanyInfoQueryHandler reads company information straight from the infos table.
//
// Example:
//
//	handler := NewGetCompanyInfoQueryHandler(db)
//	query, _ := NewGetCompanyInfoQuery("")
//
//	info, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(info.Content)
type GetCompanyInfoQueryHandler struct {
	db *gorm.DB
}

// NewGetCompanyInfoQueryHandler creates a handler backed by a GORM connection.
func NewGetCompanyInfoQueryHandler(db *gorm.DB) GetCompanyInfoQueryHandler {
	return GetCompanyInfoQueryHandler{db: db}
}

// Handle returns the info entry or errs.ObjectNotFoundError.
func (h GetCompanyInfoQueryHandler) Handle(
	ctx context.Context,
	query GetCompanyInfoQuery,
) (GetCompanyInfoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCompanyInfoQueryResponse{}, err
	}

	var info GetCompanyInfoQueryResponse
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			info_name,
			info_content
		FROM infos
		WHERE info_name = ?
		LIMIT 1
	`, query.Name()).Scan(&info)
	if result.Error != nil {
		return GetCompanyInfoQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetCompanyInfoQueryResponse{}, errs.NewObjectNotFoundError("info", query.Name())
	}

	return info, nil
}
