package repository

import (
	"context"
	"fmt"

	"github.com/Loandr1324/InsertManagerInOrder/config"
	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
	"github.com/Loandr1324/InsertManagerInOrder/internal/repository/abcp"
	"github.com/Loandr1324/InsertManagerInOrder/internal/repository/sheets"
	"github.com/Loandr1324/InsertManagerInOrder/internal/repository/xlsx"

	"go.uber.org/zap"
)

// NewOrderPlatform constructs the order platform client.
func NewOrderPlatform(log *zap.SugaredLogger, cfg *config.Config) OrderPlatform {
	return abcp.New(log, cfg.ABCP)
}

// NewFranchiseDirectory constructs the franchise directory backend by name.
func NewFranchiseDirectory(name string, log *zap.SugaredLogger, cfg *config.Config) (FranchiseDirectory, error) {
	switch name {
	case config.FranchiseSourceSheets:
		return sheets.New(log, cfg.Sheets), nil
	case config.FranchiseSourceXLSX:
		return xlsx.New(log, cfg.Franchise.XLSXPath), nil
	default:
		return nil, fmt.Errorf("%w: unknown franchise backend: %s", entities.ErrConfiguration, name)
	}
}

// Start runs OnStart on every component and stops the already started ones on failure.
func Start(ctx context.Context, components ...LifecycleInterface) error {
	for i, c := range components {
		if err := c.OnStart(ctx); err != nil {
			Stop(ctx, components[:i]...)
			return err
		}
	}
	return nil
}

// Stop runs OnStop on every component in reverse order.
func Stop(ctx context.Context, components ...LifecycleInterface) {
	for i := len(components) - 1; i >= 0; i-- {
		_ = components[i].OnStop(ctx)
	}
}
