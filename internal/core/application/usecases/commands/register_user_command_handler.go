package commands

import (
	"context"

	"transport/internal/core/domain/model/user"
	"transport/internal/core/ports"
)

// RegisterUserCommandHandler handles principal registration.
// The plaintext password is hashed through the credential port before the
// user aggregate is built, so persistence only ever sees the hash.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.CredentialHasher
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.CredentialHasher,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the user registration command.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	credentialHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newUser, err := user.NewUser(cmd.UserID(), cmd.Username(), credentialHash, cmd.Role(), cmd.Branch())
	if err != nil {
		return err
	}

	if err = uow.UserRepository().Add(ctx, newUser); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
