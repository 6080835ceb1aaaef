package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soroia/pkg/response"
)

// CreateSession godoc
// @Summary     Start a conversation
// @Description Opens a new session seeded with the assistant greeting.
// @Tags        Chat
// @Produce     json
// @Success     201 {object} sessionResp
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	out := h.uc.CreateSession(c.Request.Context())
	response.Created(c, h.newSessionResp(out))
}

// GetSession godoc
// @Summary     Get a conversation
// @Description Returns every turn of the session and the open detail, if any.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.GetSession(c.Request.Context(), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(out))
}

// DeleteSession godoc
// @Summary     Drop a conversation
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.DeleteSession(c.Request.Context(), id); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// SendMessage godoc
// @Summary     Ask the assistant
// @Description Routes the message through the assistant and returns its reply,
// @Description together with every turn the message added (debug turns included).
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Session ID"
// @Param       body body sendMessageReq true "User message"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - a turn is already in flight"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SendMessage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SendMessage: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSendMessageResp(out))
}

// OpenDetail godoc
// @Summary     Open an artifact detail
// @Description Sets the session detail view to an artifact shown earlier and returns its catalog record.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Session ID"
// @Param       body body openDetailReq true "Artifact path"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id}/detail [POST]
func (h *handler) OpenDetail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOpenDetailReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.OpenDetail(ctx, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(out))
}

// CloseDetail godoc
// @Summary     Close the artifact detail
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id}/detail [DELETE]
func (h *handler) CloseDetail(c *gin.Context) {
	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.CloseDetail(c.Request.Context(), id); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// Image godoc
// @Summary     Artifact image
// @Description Streams the image file behind an artifact path.
// @Tags        Artifacts
// @Produce     image/jpeg
// @Param       path query string true "Artifact path, e.g. imagenes/00445/00445_1.jpg"
// @Success     200 {file} binary
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/artifacts/image [GET]
func (h *handler) Image(c *gin.Context) {
	req, err := h.processImageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	data, err := h.images.Load(c.Request.Context(), req.Path)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.Data(http.StatusOK, http.DetectContentType(data), data)
}
