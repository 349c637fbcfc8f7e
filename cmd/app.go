package main

import (
	"context"
	"fmt"

	"github.com/Loandr1324/InsertManagerInOrder/config"
	"github.com/Loandr1324/InsertManagerInOrder/internal/repository"
	"github.com/Loandr1324/InsertManagerInOrder/internal/usecase"
	"github.com/Loandr1324/InsertManagerInOrder/internal/usecase/domain"
	"github.com/Loandr1324/InsertManagerInOrder/pkg/logger"

	"go.uber.org/zap"
)

// app holds the started components shared by every command.
type app struct {
	cfg        *config.Config
	log        *zap.SugaredLogger
	uc         usecase.InterfaceUsecase
	components []repository.LifecycleInterface
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{
		Level:      cfg.Logging.Level,
		File:       cfg.Logging.File,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return nil, err
	}

	overrides, err := config.LoadFranchiseOverrides(cfg.Franchise.OverridesFile)
	if err != nil {
		log.Errorw("franchise overrides error", "error", err)
		return nil, err
	}

	platform := repository.NewOrderPlatform(log, cfg)
	franchises, err := repository.NewFranchiseDirectory(cfg.Franchise.Source, log, cfg)
	if err != nil {
		log.Errorw("franchise directory initialization error", "error", err)
		return nil, err
	}

	components := []repository.LifecycleInterface{platform, franchises}
	if err := repository.Start(ctx, components...); err != nil {
		log.Errorw("repository start error", "error", err)
		return nil, err
	}

	uc := usecase.New(log, platform, franchises, domain.Options{
		Rules: domain.Rules{
			DefaultManagerID:     cfg.Assign.DefaultManagerID,
			EmployeeNameMarker:   cfg.Assign.EmployeeNameMarker,
			OriginalOrderMarker:  cfg.Assign.OriginalOrderMarker,
			DefaultOnMissingNote: cfg.Assign.MissingNotePolicy == config.MissingNoteDefault,
		},
		Lookback:    cfg.Assign.Lookback,
		SheetIndex:  cfg.Franchise.SheetIndex,
		CallTimeout: cfg.Assign.CallTimeout,
		Overrides:   overrides,
	})

	log.Infow("service configured",
		"franchise_source", cfg.Franchise.Source,
		"overrides", len(overrides),
		"lookback", cfg.Assign.Lookback,
		"missing_note_policy", cfg.Assign.MissingNotePolicy,
	)
	return &app{cfg: cfg, log: log, uc: uc, components: components}, nil
}

// close stops every component and flushes the logger.
func (a *app) close() {
	repository.Stop(context.Background(), a.components...)
	_ = a.log.Sync()
}

func withApp(ctx context.Context, fn func(*app) error) error {
	a, err := bootstrap(ctx)
	if err != nil {
		return fmt.Errorf("startup: %w", err)
	}
	defer a.close()
	return fn(a)
}
