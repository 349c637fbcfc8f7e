// Package sheets reads the franchise directory from a Google spreadsheet.
package sheets

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Loandr1324/InsertManagerInOrder/config"
	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Sheets wraps a service-account authorised Sheets API client.
type Sheets struct {
	log  *zap.SugaredLogger
	cfg  config.SheetsConfig
	opts []option.ClientOption
	svc  *sheetsapi.Service
}

// New creates a Sheets directory; the API client is built in OnStart.
func New(log *zap.SugaredLogger, cfg config.SheetsConfig, opts ...option.ClientOption) *Sheets {
	return &Sheets{
		log:  log.Named("repo.sheets"),
		cfg:  cfg,
		opts: opts,
	}
}

// OnStart authorises the service account and builds the API client.
func (s *Sheets) OnStart(ctx context.Context) error {
	opts := s.opts
	if len(opts) == 0 {
		data, err := os.ReadFile(s.cfg.CredentialsFile)
		if err != nil {
			return fmt.Errorf("%w: read credentials %s: %v", entities.ErrConfiguration, s.cfg.CredentialsFile, err)
		}
		jwtCfg, err := google.JWTConfigFromJSON(data, sheetsapi.SpreadsheetsReadonlyScope)
		if err != nil {
			return fmt.Errorf("%w: parse credentials: %v", entities.ErrConfiguration, err)
		}
		opts = []option.ClientOption{option.WithTokenSource(jwtCfg.TokenSource(ctx))}
	}

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return fmt.Errorf("%w: create sheets service: %v", entities.ErrConfiguration, err)
	}
	s.svc = svc
	s.log.Infow("sheets client ready", "spreadsheet", s.cfg.SpreadsheetKey)
	return nil
}

// OnStop is a no-op; the API client holds no resources of its own.
func (s *Sheets) OnStop(_ context.Context) error {
	return nil
}

// SheetTitles returns worksheet titles in spreadsheet order.
func (s *Sheets) SheetTitles(ctx context.Context) ([]string, error) {
	ss, err := s.spreadsheet(ctx)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(ss.Sheets))
	for _, sh := range ss.Sheets {
		titles = append(titles, sh.Properties.Title)
	}
	return titles, nil
}

// ReadSheet returns all values of the worksheet at index as strings.
func (s *Sheets) ReadSheet(ctx context.Context, index int) ([][]string, error) {
	ss, err := s.spreadsheet(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(ss.Sheets) {
		return nil, fmt.Errorf("%w: worksheet %d not found, spreadsheet has %d", entities.ErrAPIFailure, index, len(ss.Sheets))
	}
	title := ss.Sheets[index].Properties.Title

	resp, err := s.svc.Spreadsheets.Values.Get(s.cfg.SpreadsheetKey, quoteTitle(title)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		s.log.Errorw("failed to read worksheet", "error", err, "sheet", title)
		return nil, fmt.Errorf("%w: read worksheet %q: %v", entities.ErrAPIFailure, title, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, r := range resp.Values {
		row := make([]string, 0, len(r))
		for _, cell := range r {
			row = append(row, cellString(cell))
		}
		rows = append(rows, row)
	}
	s.log.Debugw("worksheet read", "sheet", title, "rows", len(rows))
	return rows, nil
}

func (s *Sheets) spreadsheet(ctx context.Context) (*sheetsapi.Spreadsheet, error) {
	if s.svc == nil {
		return nil, fmt.Errorf("%w: sheets client is not started", entities.ErrAPIFailure)
	}
	ss, err := s.svc.Spreadsheets.Get(s.cfg.SpreadsheetKey).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		s.log.Errorw("failed to open spreadsheet", "error", err)
		return nil, fmt.Errorf("%w: open spreadsheet: %v", entities.ErrAPIFailure, err)
	}
	return ss, nil
}

// cellString renders a decoded JSON cell; numbers never use exponent form.
func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// quoteTitle turns a worksheet title into an A1 range covering the whole sheet.
func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
