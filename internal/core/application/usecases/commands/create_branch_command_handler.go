package commands

import (
	"context"

	"transport/internal/core/domain/model/branch"
)

// CreateBranchCommandHandler handles branch creation.
type CreateBranchCommandHandler struct {
	uowFactory BranchUoWFactory
}

// NewCreateBranchCommandHandler creates a handler for branch creation.
func NewCreateBranchCommandHandler(uowFactory BranchUoWFactory) CreateBranchCommandHandler {
	return CreateBranchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the branch creation command.
func (h *CreateBranchCommandHandler) Handle(ctx context.Context, cmd CreateBranchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newBranch, err := branch.NewBranch(cmd.BranchID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	if err = uow.BranchRepository().Add(ctx, newBranch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
