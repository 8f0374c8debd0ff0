package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"Worklog/config"
	"Worklog/dao"
	"Worklog/dao/cache"
	"Worklog/models"
	"Worklog/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// memRepo 内存实现，ID 规则与 Mongo 一致
type memRepo struct {
	mu    sync.Mutex
	notes map[string]*models.Note
	err   error
}

func newMemRepo() *memRepo {
	return &memRepo{notes: map[string]*models.Note{}}
}

func (r *memRepo) List(ctx context.Context) ([]*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*models.Note, 0, len(r.notes))
	for _, n := range r.notes {
		cp := *n
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		if a.StartTime != b.StartTime {
			return a.StartTime > b.StartTime
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return out, nil
}

func (r *memRepo) Create(ctx context.Context, note *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if note.ID == "" {
		note.ID = bson.NewObjectID().Hex()
	}
	cp := *note
	r.notes[note.ID] = &cp
	return nil
}

func (r *memRepo) Update(ctx context.Context, id string, patch *models.NotePatch, updatedAt time.Time) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	n, ok := r.notes[id]
	if !ok {
		return nil, dao.ErrNotFound
	}
	patch.Apply(n)
	n.UpdatedAt = updatedAt
	cp := *n
	return &cp, nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.notes[id]; !ok {
		return dao.ErrNotFound
	}
	delete(r.notes, id)
	return nil
}

func (r *memRepo) ValidID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}

func (r *memRepo) Migrate(ctx context.Context) error { return nil }

type recordedEvent struct {
	topic string
	event types.NoteEvent
}

type fakeProducer struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (p *fakeProducer) Enabled() bool { return true }
func (p *fakeProducer) Topic() string { return "notes" }
func (p *fakeProducer) SendMsg(ctx context.Context, topic string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var evt types.NoteEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return err
	}
	p.events = append(p.events, recordedEvent{topic: topic, event: evt})
	return p.err
}

func newTestService(t *testing.T) (*NoteService, *memRepo, *fakeProducer) {
	t.Helper()
	repo := newMemRepo()
	events := &fakeProducer{}
	return &NoteService{Repo: repo, Cache: cache.NewNoteListCache(nil, nil), Events: events}, repo, events
}

func ptr(s string) *string { return &s }

func TestCreate_DefaultsColor(t *testing.T) {
	s, repo, _ := newTestService(t)
	note, err := s.Create(context.Background(), &types.CreateNoteRequest{Title: "Standup", Date: "2024-03-05"})
	require.NoError(t, err)

	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "#3b82f6", note.Color)
	assert.False(t, note.CreatedAt.IsZero())
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
	assert.Equal(t, "#3b82f6", repo.notes[note.ID].Color)
}

func TestCreate_TrimsAndNormalizes(t *testing.T) {
	s, _, _ := newTestService(t)
	note, err := s.Create(context.Background(), &types.CreateNoteRequest{
		Title:    "  Planning  ",
		Date:     " 2024-03-05 ",
		Location: " HQ ",
		Color:    "f97316",
	})
	require.NoError(t, err)
	assert.Equal(t, "Planning", note.Title)
	assert.Equal(t, "2024-03-05", note.Date)
	assert.Equal(t, "HQ", note.Location)
	assert.Equal(t, "#f97316", note.Color)

	note, err = s.Create(context.Background(), &types.CreateNoteRequest{Title: "x", Date: "2024-03-05", Color: "chartreuse"})
	require.NoError(t, err)
	assert.Equal(t, "#3b82f6", note.Color)
}

func TestCreate_RequiresTitleAndDate(t *testing.T) {
	s, repo, events := newTestService(t)
	for _, req := range []*types.CreateNoteRequest{
		{Title: "", Date: "2024-03-05"},
		{Title: "   ", Date: "2024-03-05"},
		{Title: "Standup", Date: ""},
	} {
		_, err := s.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidNote)
	}
	assert.Empty(t, repo.notes)
	assert.Empty(t, events.events)
}

func TestList_NormalizesStoredColors(t *testing.T) {
	s, repo, _ := newTestService(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range []string{"rose", "", "red", "ABCDEF"} {
		require.NoError(t, repo.Create(ctx, &models.Note{Title: c, Date: "2024-03-05", Color: c, CreatedAt: base.Add(time.Duration(i) * time.Minute)}))
	}

	notes, err := s.List(ctx)
	require.NoError(t, err)
	got := map[string]string{}
	for _, n := range notes {
		got[n.Title] = n.Color
	}
	assert.Equal(t, map[string]string{
		"rose":   "#f43f5e",
		"":       "#3b82f6",
		"red":    "#3b82f6",
		"ABCDEF": "#ABCDEF",
	}, got)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	s, _, _ := newTestService(t)
	notes, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestList_StoreError(t *testing.T) {
	s, repo, _ := newTestService(t)
	repo.err = errors.New("connection reset")
	_, err := s.List(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoteNotFound)
}

func TestUpdate_ColorThenRead(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	note, err := s.Create(ctx, &types.CreateNoteRequest{Title: "Standup", Date: "2024-03-05"})
	require.NoError(t, err)

	updated, err := s.Update(ctx, note.ID, &types.UpdateNoteRequest{Color: ptr("emerald")})
	require.NoError(t, err)
	assert.Equal(t, "#10b981", updated.Color)

	notes, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "#10b981", notes[0].Color)
	assert.Equal(t, "Standup", notes[0].Title)
}

func TestUpdate_PartialFields(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	note, err := s.Create(ctx, &types.CreateNoteRequest{
		Title: "Standup", Date: "2024-03-05", Location: "Room 4", Tags: "daily", Color: "rose",
	})
	require.NoError(t, err)

	updated, err := s.Update(ctx, note.ID, &types.UpdateNoteRequest{
		Title:    ptr("   "),
		Date:     ptr(""),
		Location: ptr(""),
		EndDate:  ptr(" 2024-03-07 "),
		Color:    ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Standup", updated.Title)
	assert.Equal(t, "2024-03-05", updated.Date)
	assert.Equal(t, "2024-03-07", updated.EndDate)
	assert.Equal(t, "", updated.Location)
	assert.Equal(t, "daily", updated.Tags)
	assert.Equal(t, "#f43f5e", updated.Color)
	assert.Equal(t, note.ID, updated.ID)
}

func TestUpdate_IDResolution(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	note, err := s.Create(ctx, &types.CreateNoteRequest{Title: "Standup", Date: "2024-03-05"})
	require.NoError(t, err)

	// 路径 ID 不合法时使用 body 中的 _id
	updated, err := s.Update(ctx, "not-an-id", &types.UpdateNoteRequest{ID: note.ID, Title: ptr("Retro")})
	require.NoError(t, err)
	assert.Equal(t, "Retro", updated.Title)

	_, err = s.Update(ctx, "not-an-id", &types.UpdateNoteRequest{ID: "also-bad", Title: ptr("x")})
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = s.Update(ctx, "", &types.UpdateNoteRequest{Title: ptr("x")})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestUpdate_NotFound(t *testing.T) {
	s, _, events := newTestService(t)
	_, err := s.Update(context.Background(), bson.NewObjectID().Hex(), &types.UpdateNoteRequest{Title: ptr("x")})
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.Empty(t, events.events)
}

func TestDelete(t *testing.T) {
	s, repo, _ := newTestService(t)
	ctx := context.Background()
	note, err := s.Create(ctx, &types.CreateNoteRequest{Title: "Standup", Date: "2024-03-05"})
	require.NoError(t, err)

	err = s.Delete(ctx, bson.NewObjectID().Hex(), "")
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.Len(t, repo.notes, 1)

	assert.ErrorIs(t, s.Delete(ctx, "bad", ""), ErrInvalidID)

	require.NoError(t, s.Delete(ctx, "bad", note.ID))
	assert.Empty(t, repo.notes)
}

func TestEventsPublished(t *testing.T) {
	s, _, events := newTestService(t)
	ctx := context.Background()
	note, err := s.Create(ctx, &types.CreateNoteRequest{Title: "Standup", Date: "2024-03-05"})
	require.NoError(t, err)
	_, err = s.Update(ctx, note.ID, &types.UpdateNoteRequest{Tags: ptr("daily")})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, note.ID, ""))

	require.Len(t, events.events, 3)
	assert.Equal(t, types.NoteEventCreated, events.events[0].event.Type)
	assert.Equal(t, types.NoteEventUpdated, events.events[1].event.Type)
	assert.Equal(t, "daily", events.events[1].event.Note.Tags)
	assert.Equal(t, types.NoteEventDeleted, events.events[2].event.Type)
	assert.Nil(t, events.events[2].event.Note)
	for _, e := range events.events {
		assert.Equal(t, "notes", e.topic)
		assert.Equal(t, note.ID, e.event.ID)
	}
}

func TestEventFailureDoesNotFailWrite(t *testing.T) {
	s, repo, events := newTestService(t)
	events.err = errors.New("broker down")
	_, err := s.Create(context.Background(), &types.CreateNoteRequest{Title: "Standup", Date: "2024-03-05"})
	require.NoError(t, err)
	assert.Len(t, repo.notes, 1)
}

func TestList_CacheInvalidatedOnWrite(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s, repo, _ := newTestService(t)
	s.Cache = cache.NewNoteListCache(client, &config.Redis{TTL: 60})
	ctx := context.Background()

	_, err := s.Create(ctx, &types.CreateNoteRequest{Title: "first", Date: "2024-03-05"})
	require.NoError(t, err)
	notes, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	// 直接写入存储不会刷新缓存
	require.NoError(t, repo.Create(ctx, &models.Note{Title: "sneaky", Date: "2024-03-06"}))
	notes, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	_, err = s.Create(ctx, &types.CreateNoteRequest{Title: "second", Date: "2024-03-07"})
	require.NoError(t, err)
	notes, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 3)
}

// gatedRepo 第一次 List 读完存储后停住，直到 release 关闭
type gatedRepo struct {
	*memRepo
	once    sync.Once
	listed  chan struct{}
	release chan struct{}
}

func (r *gatedRepo) List(ctx context.Context) ([]*models.Note, error) {
	notes, err := r.memRepo.List(ctx)
	r.once.Do(func() {
		close(r.listed)
		<-r.release
	})
	return notes, err
}

func TestList_ConcurrentUpdateNotMaskedByCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s, repo, _ := newTestService(t)
	s.Cache = cache.NewNoteListCache(client, &config.Redis{TTL: 300})
	ctx := context.Background()

	note, err := s.Create(ctx, &types.CreateNoteRequest{Title: "Standup", Date: "2024-03-05"})
	require.NoError(t, err)

	gated := &gatedRepo{memRepo: repo, listed: make(chan struct{}), release: make(chan struct{})}
	s.Repo = gated

	done := make(chan error, 1)
	go func() {
		_, err := s.List(ctx)
		done <- err
	}()
	<-gated.listed

	_, err = s.Update(ctx, note.ID, &types.UpdateNoteRequest{Color: ptr("emerald")})
	require.NoError(t, err)
	close(gated.release)
	require.NoError(t, <-done)

	notes, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "#10b981", notes[0].Color)
}
