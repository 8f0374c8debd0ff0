package handler

import (
	"errors"
	"io"
	"net/http"

	"Worklog/pkg/context"
	"Worklog/pkg/log"
	"Worklog/pkg/response"
	"Worklog/service"
	"Worklog/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Note struct {
	NoteService service.INoteService
}

func (n *Note) RegisterRouter(r gin.IRouter) {
	g := r.Group("/notes")
	g.GET("", context.Wrap(n.List))
	g.POST("", context.Wrap(n.Create))
	g.PUT("/:id", context.Wrap(n.Update))
	g.DELETE("/:id", context.Wrap(n.Delete))
}

// List 笔记列表
func (n *Note) List(c *gin.Context) error {
	notes, err := n.NoteService.List(c.Request.Context())
	if err != nil {
		return noteError(err, "fetch notes")
	}
	response.Success(c, notes)
	return nil
}

// Create 创建笔记
func (n *Note) Create(c *gin.Context) error {
	var req types.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	note, err := n.NoteService.Create(c.Request.Context(), &req)
	if err != nil {
		return noteError(err, "create note")
	}
	response.Created(c, note)
	return nil
}

// Update 更新笔记，只修改 body 中出现的字段
func (n *Note) Update(c *gin.Context) error {
	var req types.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	note, err := n.NoteService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		return noteError(err, "update note")
	}
	response.Success(c, note)
	return nil
}

// Delete 删除笔记，body 可为空
func (n *Note) Delete(c *gin.Context) error {
	var req types.DeleteNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return response.NewError(http.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	if err := n.NoteService.Delete(c.Request.Context(), c.Param("id"), req.ID); err != nil {
		return noteError(err, "delete note")
	}
	response.Success(c, types.MessageResponse{Message: "Note deleted."})
	return nil
}

// noteError 把 service 错误映射为 HTTP 状态，存储错误只记录日志不外露
func noteError(err error, op string) error {
	switch {
	case errors.Is(err, service.ErrInvalidNote):
		return response.NewError(http.StatusBadRequest, "Title and date are required.")
	case errors.Is(err, service.ErrInvalidID):
		return response.NewError(http.StatusBadRequest, "Invalid note id.")
	case errors.Is(err, service.ErrInvalidMonth):
		return response.NewError(http.StatusBadRequest, "Invalid month, expected YYYY-MM.")
	case errors.Is(err, service.ErrNoteNotFound):
		return response.NewError(http.StatusNotFound, "Note not found.")
	default:
		log.L.Error(op+" failed", zap.Error(err))
		return response.NewError(http.StatusInternalServerError, "Failed to "+op+".")
	}
}
