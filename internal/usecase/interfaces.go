package usecase

import (
	"context"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
	"github.com/Loandr1324/InsertManagerInOrder/internal/usecase/domain"
)

// RunUsecaseInterface abstracts assignment runs for the delivery layer.
type RunUsecaseInterface interface {
	Run(ctx context.Context, dryRun bool) (entities.RunReport, error)
	LastReport() (entities.RunReport, error)
}

// FranchiseUsecaseInterface abstracts franchise directory diagnostics.
type FranchiseUsecaseInterface interface {
	Franchises(ctx context.Context) (domain.FranchiseView, error)
}
