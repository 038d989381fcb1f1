package mcptool

import (
	"context"
	"encoding/json"
	"testing"

	contactService "OssLarare/internal/modules/contact/application/service"
	"OssLarare/internal/modules/contact/infrastructure/persistence"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callTool(t *testing.T, fn func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), owner, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	ctx := context.Background()
	if owner != "" {
		ctx = WithOwner(ctx, owner)
	}
	res, err := fn(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)
	return tc.Text
}

func TestContactTools(t *testing.T) {
	repo := persistence.NewContactEdgeMemoryRepository()
	h := NewContactToolHandler(contactService.NewContactService(repo))

	res := callTool(t, h.handleToggle, "u1", ToolContactToggle, map[string]interface{}{
		"contact_id": "u2", "believed_state": false,
	})
	assert.False(t, res.IsError)
	var toggled map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &toggled))
	assert.Equal(t, "added", toggled["outcome"])
	assert.Equal(t, 1, repo.Len())

	res = callTool(t, h.handleStatus, "u1", ToolContactStatus, map[string]interface{}{
		"contact_id": "u2",
	})
	assert.JSONEq(t, `{"owner_id":"u1","contact_id":"u2","present":true}`, resultText(t, res))

	res = callTool(t, h.handleList, "u1", ToolContactList, map[string]interface{}{})
	var listed struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &listed))
	assert.Equal(t, 1, listed.Count)
}

func TestContactToolsRejectBadArguments(t *testing.T) {
	h := NewContactToolHandler(contactService.NewContactService(persistence.NewContactEdgeMemoryRepository()))

	tests := []struct {
		name  string
		owner string
		args  map[string]interface{}
	}{
		{name: "no owner in context", owner: "", args: map[string]interface{}{"contact_id": "u2", "believed_state": false}},
		{name: "missing contact", owner: "u1", args: map[string]interface{}{"believed_state": false}},
		{name: "missing believed state", owner: "u1", args: map[string]interface{}{"contact_id": "u2"}},
		{name: "self loop", owner: "u1", args: map[string]interface{}{"contact_id": "u1", "believed_state": false}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := callTool(t, h.handleToggle, tc.owner, ToolContactToggle, tc.args)
			assert.True(t, res.IsError)
		})
	}
}

func TestContactToolsIgnoreOwnerArgument(t *testing.T) {
	repo := persistence.NewContactEdgeMemoryRepository()
	h := NewContactToolHandler(contactService.NewContactService(repo))

	// 参数里的 tenant_user_id 不会覆盖 ctx 中的用户
	res := callTool(t, h.handleToggle, "u1", ToolContactToggle, map[string]interface{}{
		"tenant_user_id": "victim", "contact_id": "u2", "believed_state": false,
	})
	require.False(t, res.IsError)
	present, err := repo.Exists(context.Background(), "u1", "u2")
	require.NoError(t, err)
	assert.True(t, present)
	present, err = repo.Exists(context.Background(), "victim", "u2")
	require.NoError(t, err)
	assert.False(t, present)

	res = callTool(t, h.handleList, "", ToolContactList, map[string]interface{}{"tenant_user_id": "u1"})
	assert.True(t, res.IsError)
}

func TestNewServerRegistersTools(t *testing.T) {
	s := NewServer("oss-test", "0.0.1", contactService.NewContactService(persistence.NewContactEdgeMemoryRepository()))
	resp := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	for _, name := range []string{ToolContactToggle, ToolContactStatus, ToolContactList} {
		assert.Contains(t, string(raw), `"name":"`+name+`"`)
	}
}
