package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-portal-api/pkg/response"
)

func assertEnvelope(t *testing.T, body []byte, wantSuccess bool, wantMessage string) {
	t.Helper()

	var result response.Result
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, wantSuccess, result.Success)
	assert.Equal(t, wantMessage, result.Message)
}
