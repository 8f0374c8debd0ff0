package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"Worklog/dao"
	"Worklog/dao/cache"
	"Worklog/models"
	"Worklog/pkg/color"
	"Worklog/pkg/log"
	"Worklog/types"

	"go.uber.org/zap"
)

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	List(ctx context.Context) ([]*models.Note, error)
	Create(ctx context.Context, req *types.CreateNoteRequest) (*models.Note, error)
	// Update pathID 不合法时回退到 req.ID
	Update(ctx context.Context, pathID string, req *types.UpdateNoteRequest) (*models.Note, error)
	Delete(ctx context.Context, pathID, bodyID string) error
}

// EventProducer 笔记变更事件的发送方
type EventProducer interface {
	Enabled() bool
	Topic() string
	SendMsg(ctx context.Context, topic string, body []byte) error
}

type NoteService struct {
	Repo   dao.NoteRepository
	Cache  *cache.NoteListCache
	Events EventProducer
}

// List 获取全部笔记，颜色统一为 #RRGGBB
func (s *NoteService) List(ctx context.Context) ([]*models.Note, error) {
	if notes, ok := s.Cache.Get(ctx); ok {
		return notes, nil
	}
	version, cacheable := s.Cache.Version(ctx)
	notes, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if notes == nil {
		notes = make([]*models.Note, 0)
	}
	for _, n := range notes {
		display(n)
	}
	if cacheable {
		s.Cache.Set(ctx, version, notes)
	}
	return notes, nil
}

// Create 创建笔记
func (s *NoteService) Create(ctx context.Context, req *types.CreateNoteRequest) (*models.Note, error) {
	title := strings.TrimSpace(req.Title)
	date := strings.TrimSpace(req.Date)
	if title == "" || date == "" {
		return nil, ErrInvalidNote
	}

	now := time.Now()
	note := &models.Note{
		Title:        title,
		Date:         date,
		EndDate:      strings.TrimSpace(req.EndDate),
		Location:     strings.TrimSpace(req.Location),
		StartTime:    strings.TrimSpace(req.StartTime),
		EndTime:      strings.TrimSpace(req.EndTime),
		Activities:   strings.TrimSpace(req.Activities),
		Result:       strings.TrimSpace(req.Result),
		Blockers:     strings.TrimSpace(req.Blockers),
		Participants: strings.TrimSpace(req.Participants),
		Tags:         strings.TrimSpace(req.Tags),
		Color:        color.Normalize(req.Color),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.Cache.Invalidate(ctx)
	s.publish(ctx, types.NoteEventCreated, note.ID, note)
	return note, nil
}

// Update 部分更新笔记
func (s *NoteService) Update(ctx context.Context, pathID string, req *types.UpdateNoteRequest) (*models.Note, error) {
	id, ok := s.resolveID(pathID, req.ID)
	if !ok {
		return nil, ErrInvalidID
	}

	updated, err := s.Repo.Update(ctx, id, patchFrom(req), time.Now())
	if err != nil {
		return nil, fmt.Errorf("update note %s: %w", id, err)
	}
	display(updated)

	s.Cache.Invalidate(ctx)
	s.publish(ctx, types.NoteEventUpdated, updated.ID, updated)
	return updated, nil
}

// Delete 删除笔记
func (s *NoteService) Delete(ctx context.Context, pathID, bodyID string) error {
	id, ok := s.resolveID(pathID, bodyID)
	if !ok {
		return ErrInvalidID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}

	s.Cache.Invalidate(ctx)
	s.publish(ctx, types.NoteEventDeleted, id, nil)
	return nil
}

// resolveID 取第一个符合存储 ID 格式的候选值
func (s *NoteService) resolveID(candidates ...string) (string, bool) {
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c != "" && s.Repo.ValidID(c) {
			return c, true
		}
	}
	return "", false
}

// patchFrom title/date/color 为空白时忽略，其余字段允许清空
func patchFrom(req *types.UpdateNoteRequest) *models.NotePatch {
	trim := func(v *string) *string {
		if v == nil {
			return nil
		}
		t := strings.TrimSpace(*v)
		return &t
	}
	required := func(v *string) *string {
		if t := trim(v); t != nil && *t != "" {
			return t
		}
		return nil
	}

	patch := &models.NotePatch{
		Title:        required(req.Title),
		Date:         required(req.Date),
		EndDate:      trim(req.EndDate),
		Location:     trim(req.Location),
		StartTime:    trim(req.StartTime),
		EndTime:      trim(req.EndTime),
		Activities:   trim(req.Activities),
		Result:       trim(req.Result),
		Blockers:     trim(req.Blockers),
		Participants: trim(req.Participants),
		Tags:         trim(req.Tags),
	}
	if c := required(req.Color); c != nil {
		normalized := color.Normalize(*c)
		patch.Color = &normalized
	}
	return patch
}

func display(n *models.Note) {
	n.Color = color.Normalize(n.Color)
}

// publish 事件发送失败只记日志，不影响写操作结果
func (s *NoteService) publish(ctx context.Context, typ, id string, note *models.Note) {
	if s.Events == nil || !s.Events.Enabled() {
		return
	}
	body, err := json.Marshal(&types.NoteEvent{Type: typ, ID: id, Note: note, At: time.Now()})
	if err != nil {
		return
	}
	if err := s.Events.SendMsg(ctx, s.Events.Topic(), body); err != nil {
		log.L.Warn("publish note event failed", zap.String("type", typ), zap.String("id", id), zap.Error(err))
	}
}
