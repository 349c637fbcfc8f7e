package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Loandr1324/InsertManagerInOrder/config"
	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
	"github.com/Loandr1324/InsertManagerInOrder/internal/repository/sheets"
	"github.com/Loandr1324/InsertManagerInOrder/internal/repository/xlsx"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewFranchiseDirectory(t *testing.T) {
	log := zap.NewNop().Sugar()
	cfg := &config.Config{}

	dir, err := NewFranchiseDirectory(config.FranchiseSourceSheets, log, cfg)
	require.NoError(t, err)
	require.IsType(t, &sheets.Sheets{}, dir)

	dir, err = NewFranchiseDirectory(config.FranchiseSourceXLSX, log, cfg)
	require.NoError(t, err)
	require.IsType(t, &xlsx.Workbook{}, dir)

	_, err = NewFranchiseDirectory("csv", log, cfg)
	require.ErrorIs(t, err, entities.ErrConfiguration)
}

type lifecycleStub struct {
	name    string
	failOn  bool
	journal *[]string
}

func (s lifecycleStub) OnStart(_ context.Context) error {
	*s.journal = append(*s.journal, "start "+s.name)
	if s.failOn {
		return errors.New("start failed")
	}
	return nil
}

func (s lifecycleStub) OnStop(_ context.Context) error {
	*s.journal = append(*s.journal, "stop "+s.name)
	return nil
}

func TestStartRollsBackOnFailure(t *testing.T) {
	var journal []string
	err := Start(context.Background(),
		lifecycleStub{name: "a", journal: &journal},
		lifecycleStub{name: "b", journal: &journal},
		lifecycleStub{name: "c", failOn: true, journal: &journal},
	)
	require.Error(t, err)
	require.Equal(t, []string{"start a", "start b", "start c", "stop b", "stop a"}, journal)
}

func TestStopReverseOrder(t *testing.T) {
	var journal []string
	Stop(context.Background(),
		lifecycleStub{name: "a", journal: &journal},
		lifecycleStub{name: "b", journal: &journal},
	)
	require.Equal(t, []string{"stop b", "stop a"}, journal)
}
