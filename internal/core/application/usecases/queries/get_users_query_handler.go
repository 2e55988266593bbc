package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetUsersQueryHandler lists principals straight from the users table.
// The credential hash column is deliberately never selected.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for user listing queries.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// Handle executes the user listing query in registration order.
func (h GetUsersQueryHandler) Handle(
	ctx context.Context,
	query GetUsersQuery,
) ([]GetUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			role,
			branch_id
		FROM users
		ORDER BY seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]GetUsersQueryResponse, 0)
	for rows.Next() {
		var resp GetUsersQueryResponse
		var branchID sql.NullString
		if err = rows.Scan(&resp.ID, &resp.Username, &resp.Role, &branchID); err != nil {
			return nil, err
		}
		resp.BranchID = branchID.String
		users = append(users, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
