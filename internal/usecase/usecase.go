package usecase

import (
	"github.com/Loandr1324/InsertManagerInOrder/internal/repository"
	"github.com/Loandr1324/InsertManagerInOrder/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	RunUsecaseInterface
	FranchiseUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	platform repository.OrderPlatform,
	franchises repository.FranchiseDirectoryInterface,
	opts domain.Options,
) InterfaceUsecase {
	return domain.New(log, platform, franchises, opts)
}
