package server

import (
	"Worklog/handler"
)

type Handlers struct {
	Note     *handler.Note
	Calendar *handler.Calendar
}
