package xlsx

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	_, err := f.NewSheet("franchises")
	require.NoError(t, err)

	rows := [][]any{
		{"code", "name", "manager"},
		{"C1", "x", "M1"},
		{"C2", "y", 99},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("franchises", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "franchises.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadSheet(t *testing.T) {
	w := New(zap.NewNop().Sugar(), writeWorkbook(t))
	require.NoError(t, w.OnStart(context.Background()))

	titles, err := w.SheetTitles(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Sheet1", "franchises"}, titles)

	rows, err := w.ReadSheet(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"code", "name", "manager"},
		{"C1", "x", "M1"},
		{"C2", "y", "99"},
	}, rows)
}

func TestReadSheetIndexOutOfRange(t *testing.T) {
	w := New(zap.NewNop().Sugar(), writeWorkbook(t))

	_, err := w.ReadSheet(context.Background(), 6)
	require.ErrorIs(t, err, entities.ErrAPIFailure)
}

func TestOnStartMissingFile(t *testing.T) {
	w := New(zap.NewNop().Sugar(), filepath.Join(t.TempDir(), "missing.xlsx"))
	require.ErrorIs(t, w.OnStart(context.Background()), entities.ErrConfiguration)
}
