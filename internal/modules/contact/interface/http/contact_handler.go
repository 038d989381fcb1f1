package handler

import (
	contactRequest "OssLarare/internal/modules/contact/application/dto/request"
	"OssLarare/internal/modules/contact/application/service"
	"OssLarare/pkg/back"
	"OssLarare/pkg/xerr"
	"OssLarare/pkg/zlog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler struct {
	svc service.ContactService
}

func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// ToggleContact owner_id 一律取自 token，请求体里的值会被覆盖
func (h *ContactHandler) ToggleContact(c *gin.Context) {
	var req contactRequest.ToggleContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zlog.Warn("bind toggle contact request failed", zap.Error(err))
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	if uuid := c.GetString("uuid"); uuid != "" {
		req.OwnerId = uuid
	}

	data, err := h.svc.ToggleContact(c.Request.Context(), req)
	back.Result(c, data, err)
}

func (h *ContactHandler) GetContactStatus(c *gin.Context) {
	var req contactRequest.GetContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zlog.Warn("bind contact status request failed", zap.Error(err))
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	if uuid := c.GetString("uuid"); uuid != "" {
		req.OwnerId = uuid
	}

	data, err := h.svc.GetContactStatus(c.Request.Context(), req)
	back.Result(c, data, err)
}

func (h *ContactHandler) GetContactList(c *gin.Context) {
	var req contactRequest.GetContactListRequest
	if uuid := c.GetString("uuid"); uuid != "" {
		req.OwnerId = uuid
	}

	data, err := h.svc.GetContactList(c.Request.Context(), req)
	back.Result(c, data, err)
}
