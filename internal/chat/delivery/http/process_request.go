package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSessionID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errIDRequired
	}
	return id, nil
}

// processSendMessageReq binds the message body and the session URI param.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processSessionID(c)
	if err != nil {
		return req, err
	}
	req.SessionID = id
	return req, req.validate()
}

// processOpenDetailReq binds the detail body and the session URI param.
func (h *handler) processOpenDetailReq(c *gin.Context) (openDetailReq, error) {
	var req openDetailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processSessionID(c)
	if err != nil {
		return req, err
	}
	req.SessionID = id
	return req, req.validate()
}

func (h *handler) processImageReq(c *gin.Context) (imageReq, error) {
	var req imageReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
