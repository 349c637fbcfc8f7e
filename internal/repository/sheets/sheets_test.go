package sheets

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Loandr1324/InsertManagerInOrder/config"
	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

func newTestSheets(t *testing.T, handler http.HandlerFunc) *Sheets {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s := New(zap.NewNop().Sugar(), config.SheetsConfig{SpreadsheetKey: "key1"},
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, s.OnStart(context.Background()))
	return s
}

func TestReadSheet(t *testing.T) {
	s := newTestSheets(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/spreadsheets/key1"):
			_, _ = fmt.Fprint(w, `{"sheets": [
				{"properties": {"title": "settings"}},
				{"properties": {"title": "franchises"}}
			]}`)
		case strings.Contains(r.URL.Path, "/spreadsheets/key1/values/"):
			require.Contains(t, r.URL.Path, "franchises")
			require.Equal(t, "FORMATTED_VALUE", r.URL.Query().Get("valueRenderOption"))
			_, _ = fmt.Fprint(w, `{"range": "franchises!A1:C5", "values": [
				["code", "name", "manager"],
				["C1", "x", "M1"],
				["C2", "y", 99],
				["C3", "z", 25191400],
				[10452, "w", 1.5]
			]}`)
		default:
			http.NotFound(w, r)
		}
	})

	rows, err := s.ReadSheet(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"code", "name", "manager"},
		{"C1", "x", "M1"},
		{"C2", "y", "99"},
		{"C3", "z", "25191400"},
		{"10452", "w", "1.5"},
	}, rows)

	titles, err := s.SheetTitles(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"settings", "franchises"}, titles)
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell interface{}
		want string
	}{
		{cell: "25191325", want: "25191325"},
		{cell: float64(25191400), want: "25191400"},
		{cell: float64(123456789012), want: "123456789012"},
		{cell: 0.25, want: "0.25"},
		{cell: true, want: "true"},
		{cell: nil, want: ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, cellString(tt.cell))
	}
}

func TestReadSheetIndexOutOfRange(t *testing.T) {
	s := newTestSheets(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"sheets": [{"properties": {"title": "only"}}]}`)
	})

	_, err := s.ReadSheet(context.Background(), 6)
	require.ErrorIs(t, err, entities.ErrAPIFailure)
}

func TestReadSheetAPIError(t *testing.T) {
	s := newTestSheets(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = fmt.Fprint(w, `{"error": {"code": 403, "message": "denied"}}`)
	})

	_, err := s.ReadSheet(context.Background(), 0)
	require.ErrorIs(t, err, entities.ErrAPIFailure)
}

func TestOnStartMissingCredentials(t *testing.T) {
	s := New(zap.NewNop().Sugar(), config.SheetsConfig{CredentialsFile: "/nonexistent/credentials.json"})
	require.ErrorIs(t, s.OnStart(context.Background()), entities.ErrConfiguration)
}

func TestQuoteTitle(t *testing.T) {
	require.Equal(t, "'franchises'", quoteTitle("franchises"))
	require.Equal(t, "'Bob''s'", quoteTitle("Bob's"))
}
