package queries

import (
	"context"
	"database/sql"

	"transport/internal/core/ports"

	"gorm.io/gorm"
)

// AuthenticateUserQueryHandler verifies login credentials. The stored hash
// never leaves this handler; the response carries only identity and scope.
type AuthenticateUserQueryHandler struct {
	db       *gorm.DB
	verifier ports.CredentialVerifier
}

// NewAuthenticateUserQueryHandler creates a handler for login queries.
func NewAuthenticateUserQueryHandler(db *gorm.DB, verifier ports.CredentialVerifier) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db, verifier: verifier}
}

// Handle executes the login query. Unknown usernames and wrong passwords both
// return ErrInvalidCredentials.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			credential_hash,
			role,
			branch_id
		FROM users
		WHERE username = ?
	`, query.Username()).Rows()
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AuthenticateUserQueryResponse{}, err
		}
		return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
	}

	var id, credentialHash, role string
	var branchID sql.NullString
	if err = rows.Scan(&id, &credentialHash, &role, &branchID); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	if !h.verifier.Verify(credentialHash, query.Password()) {
		return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
	}

	return AuthenticateUserQueryResponse{
		UserID:   id,
		Username: query.Username(),
		Role:     role,
		BranchID: branchID.String,
	}, nil
}
