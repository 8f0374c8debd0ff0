package service

import (
	"context"
	"strings"
	"time"

	"Worklog/models"
	"Worklog/pkg/color"
	"Worklog/pkg/datekey"

	ics "github.com/arran4/golang-ical"
)

const icsProductID = "-//Worklog//Notes//EN"

// ExportICS 导出全部笔记为 iCalendar，有 startTime 的按时间段导出，否则为全天事件
func (s *CalendarService) ExportICS(ctx context.Context) (string, error) {
	notes, err := s.NoteService.List(ctx)
	if err != nil {
		return "", err
	}
	loc, err := s.Calendar.Location()
	if err != nil {
		loc = time.Local
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName("Worklog")
	cal.SetXWRTimezone(loc.String())

	stamp := s.today()
	for _, n := range notes {
		addEvent(cal, n, loc, stamp)
	}
	return cal.Serialize(), nil
}

func addEvent(cal *ics.Calendar, n *models.Note, loc *time.Location, stamp time.Time) {
	days := datekey.Expand(n.Date, n.EndDate)
	if len(days) == 0 {
		return
	}
	first, _ := datekey.Parse(days[0])
	last, _ := datekey.Parse(days[len(days)-1])

	ev := cal.AddEvent(n.ID + "@worklog")
	ev.SetDtStampTime(stamp)
	if !n.CreatedAt.IsZero() {
		ev.SetCreatedTime(n.CreatedAt)
	}
	if !n.UpdatedAt.IsZero() {
		ev.SetModifiedAt(n.UpdatedAt)
	}
	ev.SetSummary(n.Title)
	if n.Location != "" {
		ev.SetLocation(n.Location)
	}
	if desc := description(n); desc != "" {
		ev.SetDescription(desc)
	}
	if n.Tags != "" {
		ev.AddProperty(ics.ComponentPropertyCategories, n.Tags)
	}
	ev.AddProperty(ics.ComponentProperty("COLOR"), color.Normalize(n.Color))

	start, ok := at(first, n.StartTime, loc)
	if !ok {
		ev.SetAllDayStartAt(first)
		ev.SetAllDayEndAt(last.AddDate(0, 0, 1))
		return
	}
	end, ok := at(last, n.EndTime, loc)
	if !ok || !end.After(start) {
		end = start.Add(time.Hour)
	}
	ev.SetStartAt(start)
	ev.SetEndAt(end)
}

// at 把 HH:MM 落到指定日期上
func at(day time.Time, clock string, loc *time.Location) (time.Time, bool) {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), true
}

func description(n *models.Note) string {
	var b strings.Builder
	for _, field := range []struct{ label, value string }{
		{"Activities", n.Activities},
		{"Result", n.Result},
		{"Blockers", n.Blockers},
		{"Participants", n.Participants},
	} {
		if field.value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(field.label + ": " + field.value)
	}
	return b.String()
}
