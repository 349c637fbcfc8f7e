package abcp

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Loandr1324/InsertManagerInOrder/config"
	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(zap.NewNop().Sugar(), config.ABCPConfig{
		Host:           srv.URL,
		Login:          "api@id1",
		Password:       "secret",
		RequestTimeout: 5 * time.Second,
	})
	require.NoError(t, c.OnStart(context.Background()))
	t.Cleanup(func() { _ = c.OnStop(context.Background()) })
	return c
}

func passwordHash() string {
	sum := md5.Sum([]byte("secret"))
	return hex.EncodeToString(sum[:])
}

func TestListOrders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/cp/orders/list", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "api@id1", q.Get("userlogin"))
		require.Equal(t, passwordHash(), q.Get("userpsw"))
		require.Equal(t, "2024-04-12 09:30:00", q.Get("dateCreatedStart"))
		require.Equal(t, "short", q.Get("format"))

		_, _ = fmt.Fprint(w, `[
			{"number": 1001, "managerId": "0", "userCode": "C1", "userName": "ООО Ромашка",
			 "notes": [{"id": 55, "author": "Иван Петров", "value": "Номер исходного заказа 77"}]},
			{"number": "1002", "managerId": 42, "userCode": 17, "userName": "ИП Сидоров", "notes": null}
		]`)
	})

	orders, err := c.ListOrders(context.Background(), "2024-04-12 09:30:00")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	require.Equal(t, entities.Order{
		Number:       "1001",
		ManagerID:    "0",
		CustomerCode: "C1",
		CustomerName: "ООО Ромашка",
		Notes:        []entities.Note{{ID: "55", Author: "Иван Петров", Text: "Номер исходного заказа 77"}},
	}, orders[0])
	require.Equal(t, "42", orders[1].ManagerID)
	require.Equal(t, "17", orders[1].CustomerCode)
	require.Empty(t, orders[1].Notes)
}

func TestListOrdersFollowsPages(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		n := ordersPageSize
		if skip > 0 {
			n = 3
		}
		items := make([]string, 0, n)
		for i := 0; i < n; i++ {
			items = append(items, fmt.Sprintf(`{"number": "%d", "managerId": "0"}`, skip+i))
		}
		_, _ = fmt.Fprintf(w, `{"count": %d, "items": [%s]}`, ordersPageSize+3, strings.Join(items, ","))
	})

	orders, err := c.ListOrders(context.Background(), "2024-04-12 09:30:00")
	require.NoError(t, err)
	require.Len(t, orders, ordersPageSize+3)
	require.Equal(t, 2, calls)
}

func TestListOrdersAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"errorCode": 102, "errorMessage": "Invalid credentials"}`)
	})

	_, err := c.ListOrders(context.Background(), "2024-04-12 09:30:00")
	require.ErrorIs(t, err, entities.ErrAPIFailure)
	require.Contains(t, err.Error(), "Invalid credentials")
}

func TestListOrdersHTTPStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := c.ListOrders(context.Background(), "2024-04-12 09:30:00")
	require.ErrorIs(t, err, entities.ErrAPIFailure)
}

func TestListStaff(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cp/staff", r.URL.Path)
		_, _ = fmt.Fprint(w, `[{"id": 42, "firstName": "Иван", "lastName": "Петров"}]`)
	})

	staff, err := c.ListStaff(context.Background())
	require.NoError(t, err)
	require.Equal(t, []entities.StaffMember{{ID: "42", FirstName: "Иван", LastName: "Петров"}}, staff)
}

func TestUpdateOrder(t *testing.T) {
	tests := []struct {
		name     string
		noteID   *string
		wantNote string
	}{
		{name: "with note removal", noteID: ptr("55"), wantNote: "55"},
		{name: "manager only"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/cp/order", r.URL.Path)
				require.NoError(t, r.ParseForm())
				require.Equal(t, "1001", r.PostForm.Get("number"))
				require.Equal(t, "42", r.PostForm.Get("managerId"))
				require.Equal(t, tt.wantNote, r.PostForm.Get("delNote"))
				require.Equal(t, passwordHash(), r.PostForm.Get("userpsw"))
				_, _ = fmt.Fprint(w, `{"number": "1001"}`)
			})

			require.NoError(t, c.UpdateOrder(context.Background(), "1001", "42", tt.noteID))
		})
	}
}

func TestClientNotStarted(t *testing.T) {
	c := New(zap.NewNop().Sugar(), config.ABCPConfig{Host: "example.org", Login: "l", Password: "p"})
	_, err := c.ListStaff(context.Background())
	require.ErrorIs(t, err, entities.ErrAPIFailure)
}

func TestOnStartRequiresCredentials(t *testing.T) {
	c := New(zap.NewNop().Sugar(), config.ABCPConfig{Host: "example.org"})
	require.ErrorIs(t, c.OnStart(context.Background()), entities.ErrConfiguration)
}

func TestBaseURL(t *testing.T) {
	require.Equal(t, "https://id1.public.api.abcp.ru/cp/", baseURL("id1.public.api.abcp.ru"))
	require.Equal(t, "http://127.0.0.1:80/cp/", baseURL("http://127.0.0.1:80/"))
}

func TestTransportErrorHidesCredentials(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := New(zap.NewNop().Sugar(), config.ABCPConfig{
		Host:           srv.URL,
		Login:          "api@id1",
		Password:       "secret",
		RequestTimeout: time.Second,
	})
	require.NoError(t, c.OnStart(context.Background()))
	defer func() { _ = c.OnStop(context.Background()) }()

	_, err := c.ListOrders(context.Background(), "2024-03-07 09:30:15")
	require.ErrorIs(t, err, entities.ErrAPIFailure)
	require.Contains(t, err.Error(), "GET orders/list")
	require.NotContains(t, err.Error(), "userpsw")
	require.NotContains(t, err.Error(), passwordHash())
	require.NotContains(t, err.Error(), "userlogin")

	err = c.UpdateOrder(context.Background(), "100", "42", nil)
	require.ErrorIs(t, err, entities.ErrAPIFailure)
	require.NotContains(t, err.Error(), passwordHash())
}

func ptr(s string) *string { return &s }
