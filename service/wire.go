package service

import (
	"Worklog/pkg/rocketmq"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(NoteService), "*"),
	wire.Bind(new(INoteService), new(*NoteService)),
	wire.Bind(new(EventProducer), new(*rocketmq.Producer)),

	wire.Struct(new(CalendarService), "NoteService", "Calendar"),
	wire.Bind(new(ICalendarService), new(*CalendarService)),
)
