package domain

import (
	"context"
	"fmt"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
)

// FranchiseView is the effective franchise directory with its source worksheet titles.
type FranchiseView struct {
	Titles []string
	Map    entities.FranchiseMap
}

// Franchises reads the directory the same way a run does and adds the worksheet titles.
func (u *Usecase) Franchises(ctx context.Context) (FranchiseView, error) {
	m, err := u.franchiseMap(ctx)
	if err != nil {
		return FranchiseView{}, err
	}

	ctx, cancel := withTimeout(ctx, u.opts.CallTimeout)
	defer cancel()
	titles, err := u.franchises.SheetTitles(ctx)
	if err != nil {
		return FranchiseView{}, fmt.Errorf("list worksheets: %w", err)
	}
	return FranchiseView{Titles: titles, Map: m}, nil
}

func (u *Usecase) franchiseMap(ctx context.Context) (entities.FranchiseMap, error) {
	ctx, cancel := withTimeout(ctx, u.opts.CallTimeout)
	defer cancel()

	rows, err := u.franchises.ReadSheet(ctx, u.opts.SheetIndex)
	if err != nil {
		return nil, fmt.Errorf("read franchise worksheet %d: %w", u.opts.SheetIndex, err)
	}
	return MergeFranchises(BuildFranchiseMap(rows), u.opts.Overrides), nil
}
