package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/foomo/notion-jarkup/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// readEvent reads one SSE frame and returns its event name and data line.
func readEvent(t *testing.T, r *bufio.Reader) (string, string) {
	t.Helper()
	var name, data string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			return name, data
		case strings.HasPrefix(line, "event: "):
			name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestHandleConvertSSE(t *testing.T) {
	sseServer := NewMCPSSEServer(zaptest.NewLogger(t), newStubService(), nil)
	defer sseServer.Close()

	tests := []struct {
		name       string
		method     string
		body       string
		wantStatus int
		contains   []string
	}{
		{
			name:       "converts",
			method:     http.MethodPost,
			body:       `{"blockId":"page"}`,
			wantStatus: http.StatusOK,
			contains:   []string{"event: convert_start", "event: convert_result", `"type":"Divider"`, "event: convert_complete"},
		},
		{
			name:       "service error",
			method:     http.MethodPost,
			body:       `{"blockId":"missing","format":"html"}`,
			wantStatus: http.StatusOK,
			contains:   []string{"event: convert_start", "event: convert_error", "object_not_found"},
		},
		{
			name:       "wrong method",
			method:     http.MethodGet,
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "invalid json",
			method:     http.MethodPost,
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing block id",
			method:     http.MethodPost,
			body:       `{"format":"html"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown format",
			method:     http.MethodPost,
			body:       `{"blockId":"page","format":"pdf"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/mcp/sse/convert", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			sseServer.HandleConvertSSE(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			for _, want := range tt.contains {
				assert.Contains(t, rec.Body.String(), want)
			}
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestMcpHTTPSSEServer(t *testing.T) {
	stub := newStubService()
	reg := prometheus.NewRegistry()
	metrics.New(reg)

	handler := NewMcpHTTPSSEServer(zaptest.NewLogger(t), NewServer(stub), stub, reg, "/mcp", nil)
	srv := httptest.NewServer(handler)
	defer srv.Close()
	defer handler.GetSSEServer().Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// subscribe
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/mcp/sse", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	stream := bufio.NewReader(resp.Body)

	name, _ := readEvent(t, stream)
	require.Equal(t, EventConnected, name)

	statsResp, err := srv.Client().Get(srv.URL + "/mcp/sse/stats")
	require.NoError(t, err)
	var stats Stats
	require.NoError(t, json.NewDecoder(statsResp.Body).Decode(&stats))
	statsResp.Body.Close()
	assert.Equal(t, 1, stats.ConnectedClients)
	assert.Equal(t, Version, stats.ServerVersion)

	convertResp, err := srv.Client().Post(srv.URL+"/mcp/sse/convert", "application/json", strings.NewReader(`{"blockId":"page","format":"markdown"}`))
	require.NoError(t, err)
	body, err := io.ReadAll(convertResp.Body)
	convertResp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "event: convert_complete")

	name, data := readEvent(t, stream)
	assert.Equal(t, EventBlockConverted, name)
	assert.Contains(t, data, `"blockId":"page"`)
	assert.Contains(t, data, `"format":"markdown"`)

	metricsResp, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	metricsBody, err := io.ReadAll(metricsResp.Body)
	metricsResp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(metricsBody), "notion_jarkup_conversion_duration_seconds")
}
