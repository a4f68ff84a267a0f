package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weiyue/internal/interfaces/http/handlers/testutil"
)

func TestOptionsHandler(t *testing.T) {
	h := NewOptionsHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/options/severity", nil)
	h.Severity(c)
	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var severities []Option
	require.NoError(t, json.Unmarshal(resp.Data, &severities))
	assert.Equal(t, []Option{{"high", "高"}, {"medium", "中"}, {"low", "低"}}, severities)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/options/status", nil)
	h.Status(c)
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var statuses []Option
	require.NoError(t, json.Unmarshal(resp.Data, &statuses))
	assert.Equal(t, []Option{{"pending", "待审核"}, {"approved", "同意"}, {"rejected", "拒绝"}}, statuses)
}
