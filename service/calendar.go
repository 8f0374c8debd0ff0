package service

import (
	"context"
	"time"

	"Worklog/config"
	"Worklog/models"
	"Worklog/pkg/calendar"
	"Worklog/pkg/datekey"
	"Worklog/types"
)

var _ ICalendarService = (*CalendarService)(nil)

type ICalendarService interface {
	// Month monthKey 为空时使用配置时区下的当前月份
	Month(ctx context.Context, monthKey string) (*types.CalendarResponse, error)
	ExportICS(ctx context.Context) (string, error)
}

type CalendarService struct {
	NoteService INoteService
	Calendar    *config.Calendar

	now func() time.Time
}

func (s *CalendarService) today() time.Time {
	loc, err := s.Calendar.Location()
	if err != nil {
		loc = time.Local
	}
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	return now().In(loc)
}

func noteSpan(n *models.Note) (string, string) {
	return n.Date, n.EndDate
}

// Month 月视图
func (s *CalendarService) Month(ctx context.Context, monthKey string) (*types.CalendarResponse, error) {
	today := s.today()
	year, month := today.Year(), today.Month()
	if monthKey != "" {
		var ok bool
		if year, month, ok = datekey.ParseMonth(monthKey); !ok {
			return nil, ErrInvalidMonth
		}
	}

	notes, err := s.NoteService.List(ctx)
	if err != nil {
		return nil, err
	}

	m := calendar.Project(year, month, today, notes, noteSpan)
	resp := &types.CalendarResponse{
		Month: m.Key(),
		Label: m.Label(),
		Prev:  m.Prev(),
		Next:  m.Next(),
		Today: datekey.Format(today),
		Days:  make([]*types.CalendarDay, 0, len(m.Days)),
	}
	for _, d := range m.Days {
		if d.Items == nil {
			d.Items = make([]*models.Note, 0)
		}
		resp.Days = append(resp.Days, &types.CalendarDay{
			Date:    d.Key,
			Day:     d.Date.Day(),
			InMonth: d.InMonth,
			IsToday: d.IsToday,
			Notes:   d.Items,
			Preview: d.Preview(calendar.PreviewLimit),
			More:    d.Hidden(calendar.PreviewLimit),
		})
	}
	return resp, nil
}
