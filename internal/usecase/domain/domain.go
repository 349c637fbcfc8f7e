package domain

import (
	"context"
	"sync"
	"time"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
	"github.com/Loandr1324/InsertManagerInOrder/internal/repository"

	"go.uber.org/zap"
)

// Options carries the run parameters that come from configuration.
type Options struct {
	Rules       Rules
	Lookback    time.Duration
	SheetIndex  int
	CallTimeout time.Duration
	Overrides   entities.FranchiseMap
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log        *zap.SugaredLogger
	orders     repository.OrderSourceInterface
	staff      repository.StaffDirectoryInterface
	mutator    repository.OrderMutatorInterface
	franchises repository.FranchiseDirectoryInterface
	opts       Options
	now        func() time.Time

	mu      sync.Mutex
	running bool
	last    *entities.RunReport
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	platform repository.OrderPlatform,
	franchises repository.FranchiseDirectoryInterface,
	opts Options,
) *Usecase {
	if opts.Lookback <= 0 {
		opts.Lookback = entities.LookbackWindow
	}
	if opts.Overrides == nil {
		opts.Overrides = entities.FranchiseMap{}
	}
	return &Usecase{
		log:        log.Named("usecase"),
		orders:     platform,
		staff:      platform,
		mutator:    platform,
		franchises: franchises,
		opts:       opts,
		now:        time.Now,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
