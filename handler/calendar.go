package handler

import (
	"net/http"

	"Worklog/pkg/context"
	"Worklog/pkg/response"
	"Worklog/service"
	"Worklog/types"

	"github.com/gin-gonic/gin"
)

type Calendar struct {
	CalendarService service.ICalendarService
}

func (h *Calendar) RegisterRouter(r gin.IRouter) {
	r.GET("/calendar", context.Wrap(h.Month))
	r.GET("/calendar.ics", context.Wrap(h.Export))
}

// Month 月视图，?month=YYYY-MM
func (h *Calendar) Month(c *gin.Context) error {
	var req types.CalendarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.CalendarService.Month(c.Request.Context(), req.Month)
	if err != nil {
		return noteError(err, "build calendar")
	}
	response.Success(c, resp)
	return nil
}

// Export 导出 ics
func (h *Calendar) Export(c *gin.Context) error {
	out, err := h.CalendarService.ExportICS(c.Request.Context())
	if err != nil {
		return noteError(err, "export calendar")
	}
	c.Header("Content-Disposition", `attachment; filename="worklog.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(out))
	return nil
}
