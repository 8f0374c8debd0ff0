package types

import (
	"Worklog/models"
	"time"
)

// CreateNoteRequest 创建笔记请求，title/date 的必填校验在 service 层做（需要先 trim）
type CreateNoteRequest struct {
	Title        string `json:"title" binding:"max=255"`
	Date         string `json:"date" binding:"max=10"`
	EndDate      string `json:"endDate" binding:"max=10"`
	Location     string `json:"location" binding:"max=255"`
	StartTime    string `json:"startTime" binding:"max=16"`
	EndTime      string `json:"endTime" binding:"max=16"`
	Activities   string `json:"activities"`
	Result       string `json:"result"`
	Blockers     string `json:"blockers"`
	Participants string `json:"participants"`
	Tags         string `json:"tags" binding:"max=255"`
	Color        string `json:"color" binding:"max=32"`
}

// UpdateNoteRequest 部分更新，未出现或为 null 的字段保持不变
type UpdateNoteRequest struct {
	ID           string  `json:"_id"`
	Title        *string `json:"title" binding:"omitempty,max=255"`
	Date         *string `json:"date" binding:"omitempty,max=10"`
	EndDate      *string `json:"endDate" binding:"omitempty,max=10"`
	Location     *string `json:"location" binding:"omitempty,max=255"`
	StartTime    *string `json:"startTime" binding:"omitempty,max=16"`
	EndTime      *string `json:"endTime" binding:"omitempty,max=16"`
	Activities   *string `json:"activities"`
	Result       *string `json:"result"`
	Blockers     *string `json:"blockers"`
	Participants *string `json:"participants"`
	Tags         *string `json:"tags" binding:"omitempty,max=255"`
	Color        *string `json:"color" binding:"omitempty,max=32"`
}

// DeleteNoteRequest 删除时 body 里可选的 _id
type DeleteNoteRequest struct {
	ID string `json:"_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// CalendarRequest 月视图查询，Month 为空时取当前月
type CalendarRequest struct {
	Month string `form:"month"`
}

type CalendarResponse struct {
	Month string         `json:"month"`
	Label string         `json:"label"`
	Prev  string         `json:"prev"`
	Next  string         `json:"next"`
	Today string         `json:"today"`
	Days  []*CalendarDay `json:"days"`
}

// CalendarDay 日历格子，Notes 为全部笔记，Preview 只取前两条用于展示
type CalendarDay struct {
	Date    string         `json:"date"`
	Day     int            `json:"day"`
	InMonth bool           `json:"inMonth"`
	IsToday bool           `json:"isToday"`
	Notes   []*models.Note `json:"notes"`
	Preview []*models.Note `json:"preview"`
	More    int            `json:"more"`
}

// 笔记变更事件类型
const (
	NoteEventCreated = "note.created"
	NoteEventUpdated = "note.updated"
	NoteEventDeleted = "note.deleted"
)

type NoteEvent struct {
	Type string       `json:"type"`
	ID   string       `json:"id"`
	Note *models.Note `json:"note,omitempty"`
	At   time.Time    `json:"at"`
}
