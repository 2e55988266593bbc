package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetBranchesQueryHandler lists branches straight from the branches table.
type GetBranchesQueryHandler struct {
	db *gorm.DB
}

// NewGetBranchesQueryHandler creates a handler for branch listing queries.
func NewGetBranchesQueryHandler(db *gorm.DB) GetBranchesQueryHandler {
	return GetBranchesQueryHandler{db: db}
}

// Handle executes the branch listing query in creation order.
func (h GetBranchesQueryHandler) Handle(
	ctx context.Context,
	query GetBranchesQuery,
) ([]GetBranchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address
		FROM branches
		ORDER BY seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := make([]GetBranchesQueryResponse, 0)
	for rows.Next() {
		var resp GetBranchesQueryResponse
		if err = rows.Scan(&resp.ID, &resp.Name, &resp.Address); err != nil {
			return nil, err
		}
		branches = append(branches, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return branches, nil
}
