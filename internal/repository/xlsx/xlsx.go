// Package xlsx reads the franchise directory from a local workbook export.
package xlsx

import (
	"context"
	"fmt"
	"os"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Workbook reads worksheets of an .xlsx file. The file is reopened on every read
// so that a refreshed export is picked up without restarting the service.
type Workbook struct {
	log  *zap.SugaredLogger
	path string
}

// New creates a workbook directory for path.
func New(log *zap.SugaredLogger, path string) *Workbook {
	return &Workbook{
		log:  log.Named("repo.xlsx"),
		path: path,
	}
}

// OnStart checks that the workbook exists.
func (w *Workbook) OnStart(_ context.Context) error {
	if _, err := os.Stat(w.path); err != nil {
		return fmt.Errorf("%w: franchise workbook: %v", entities.ErrConfiguration, err)
	}
	w.log.Infow("workbook ready", "path", w.path)
	return nil
}

// OnStop is a no-op.
func (w *Workbook) OnStop(_ context.Context) error {
	return nil
}

// SheetTitles returns worksheet names in workbook order.
func (w *Workbook) SheetTitles(_ context.Context) ([]string, error) {
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", entities.ErrAPIFailure, err)
	}
	defer func() { _ = f.Close() }()

	return f.GetSheetList(), nil
}

// ReadSheet returns all rows of the worksheet at index.
func (w *Workbook) ReadSheet(_ context.Context, index int) ([][]string, error) {
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", entities.ErrAPIFailure, err)
	}
	defer func() { _ = f.Close() }()

	names := f.GetSheetList()
	if index < 0 || index >= len(names) {
		return nil, fmt.Errorf("%w: worksheet %d not found, workbook has %d", entities.ErrAPIFailure, index, len(names))
	}

	rows, err := f.GetRows(names[index])
	if err != nil {
		w.log.Errorw("failed to read worksheet", "error", err, "sheet", names[index])
		return nil, fmt.Errorf("%w: read worksheet %q: %v", entities.ErrAPIFailure, names[index], err)
	}
	w.log.Debugw("worksheet read", "sheet", names[index], "rows", len(rows))
	return rows, nil
}
