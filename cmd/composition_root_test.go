package cmd_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fooddelivery/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_WiresRouterAndJobs(t *testing.T) {
	configs := cmd.DefaultConfig()
	configs.OrderTickInterval = time.Second
	app := cmd.NewCompositionRoot(configs, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e, err := app.CreateHTTPRouter()
	require.NoError(t, err)

	post := func(target, body string) int {
		req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}
	require.Equal(t, http.StatusCreated, post("/menu", `{"name":"Pizza","price":9.99,"category":"Main Course"}`))
	require.Equal(t, http.StatusCreated, post("/orders", `{"items":[{"id":1}],"customer":{"name":"A","address":"B"}}`))

	jobManager := app.CreateJobManager()
	require.NoError(t, jobManager.StartAll())
	defer jobManager.StopAll()

	assert.Eventually(t, func() bool {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/1", nil))
		return strings.Contains(rec.Body.String(), `"status":"Out for Delivery"`) ||
			strings.Contains(rec.Body.String(), `"status":"Delivered"`)
	}, 4*time.Second, 50*time.Millisecond)
}
