package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	contactRequest "OssLarare/internal/modules/contact/application/dto/request"
	contactService "OssLarare/internal/modules/contact/application/service"
	"OssLarare/pkg/xerr"
	"OssLarare/pkg/zlog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const (
	ToolContactToggle = "contact_toggle"
	ToolContactStatus = "contact_status"
	ToolContactList   = "contact_list"
)

type ownerKey struct{}

// WithOwner 把已认证的用户写入 ctx，工具只对该用户的关系生效
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

// OwnerFrom 取出 WithOwner 写入的用户
func OwnerFrom(ctx context.Context) string {
	ownerID, _ := ctx.Value(ownerKey{}).(string)
	return ownerID
}

// ContactToolHandler 把联系人关系操作暴露为 MCP 工具，owner 取自调用方的 token
type ContactToolHandler struct {
	contactSvc contactService.ContactService
}

func NewContactToolHandler(svc contactService.ContactService) *ContactToolHandler {
	return &ContactToolHandler{contactSvc: svc}
}

// NewServer 创建 MCP Server 并注册联系人工具
func NewServer(name, version string, svc contactService.ContactService) *server.MCPServer {
	s := server.NewMCPServer(name, version, server.WithToolCapabilities(false))
	NewContactToolHandler(svc).RegisterTools(s)
	return s
}

func (h *ContactToolHandler) RegisterTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool(ToolContactToggle,
		mcp.WithDescription("添加或移除联系人。believed_state 为当前界面认为的关系状态：true 表示移除，false 表示添加"),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("目标用户ID")),
		mcp.WithBoolean("believed_state", mcp.Required(), mcp.Description("当前是否已是联系人")),
	), h.handleToggle)

	s.AddTool(mcp.NewTool(ToolContactStatus,
		mcp.WithDescription("查询当前用户是否已将目标用户加为联系人"),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("目标用户ID")),
	), h.handleStatus)

	s.AddTool(mcp.NewTool(ToolContactList,
		mcp.WithDescription("列出当前用户的联系人，按添加时间排序"),
	), h.handleList)
}

func (h *ContactToolHandler) handleToggle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format, expected map"), nil
	}
	ownerID, contactID, errResult := ownerAndContact(ctx, args)
	if errResult != nil {
		return errResult, nil
	}
	believed, ok := args["believed_state"].(bool)
	if !ok {
		return mcp.NewToolResultError("believed_state is required"), nil
	}

	resp, err := h.contactSvc.ToggleContact(ctx, contactRequest.ToggleContactRequest{
		OwnerId:       ownerID,
		ContactId:     contactID,
		BelievedState: believed,
	})
	if err != nil {
		zlog.Warn("contact_toggle failed",
			zap.String("owner_id", ownerID),
			zap.String("contact_id", contactID),
			zap.Error(err))
		return toolError(err), nil
	}
	return jsonResult(resp)
}

func (h *ContactToolHandler) handleStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format, expected map"), nil
	}
	ownerID, contactID, errResult := ownerAndContact(ctx, args)
	if errResult != nil {
		return errResult, nil
	}

	resp, err := h.contactSvc.GetContactStatus(ctx, contactRequest.GetContactStatusRequest{
		OwnerId:   ownerID,
		ContactId: contactID,
	})
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(resp)
}

func (h *ContactToolHandler) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ownerID := OwnerFrom(ctx)
	if strings.TrimSpace(ownerID) == "" {
		return mcp.NewToolResultError("unauthenticated"), nil
	}

	items, err := h.contactSvc.GetContactList(ctx, contactRequest.GetContactListRequest{OwnerId: ownerID})
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(map[string]interface{}{
		"contacts": items,
		"count":    len(items),
	})
}

func ownerAndContact(ctx context.Context, args map[string]interface{}) (string, string, *mcp.CallToolResult) {
	ownerID := OwnerFrom(ctx)
	if strings.TrimSpace(ownerID) == "" {
		return "", "", mcp.NewToolResultError("unauthenticated")
	}
	contactID, _ := args["contact_id"].(string)
	if strings.TrimSpace(contactID) == "" {
		return "", "", mcp.NewToolResultError("contact_id is required")
	}
	return ownerID, contactID, nil
}

func toolError(err error) *mcp.CallToolResult {
	if ce, ok := xerr.As(err); ok {
		if ce.Retryable {
			return mcp.NewToolResultError(fmt.Sprintf("%s (retryable)", ce.Message))
		}
		return mcp.NewToolResultError(ce.Message)
	}
	return mcp.NewToolResultError(err.Error())
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}
