package service

import (
	"errors"

	"Worklog/dao"
)

var (
	// ErrInvalidNote 缺少 title 或 date
	ErrInvalidNote = errors.New("title and date are required")
	// ErrInvalidID 路径和 body 中都没有合法的 ID
	ErrInvalidID = errors.New("invalid note id")
	// ErrInvalidMonth month 参数不是 YYYY-MM
	ErrInvalidMonth = errors.New("invalid month")
	// ErrNoteNotFound 目标笔记不存在
	ErrNoteNotFound = dao.ErrNotFound
)
