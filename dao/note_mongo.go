package dao

import (
	"context"
	"errors"
	"time"

	"Worklog/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// noteDocument worklogs 集合中的文档结构，字段名与旧数据保持一致
type noteDocument struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Title        string        `bson:"title"`
	Date         string        `bson:"date"`
	EndDate      string        `bson:"endDate,omitempty"`
	Location     string        `bson:"location,omitempty"`
	StartTime    string        `bson:"startTime,omitempty"`
	EndTime      string        `bson:"endTime,omitempty"`
	Activities   string        `bson:"activities,omitempty"`
	Result       string        `bson:"result,omitempty"`
	Blockers     string        `bson:"blockers,omitempty"`
	Participants string        `bson:"participants,omitempty"`
	Tags         string        `bson:"tags,omitempty"`
	Color        string        `bson:"color,omitempty"`
	CreatedAt    time.Time     `bson:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt"`
}

func (d *noteDocument) model() *models.Note {
	return &models.Note{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Date:         d.Date,
		EndDate:      d.EndDate,
		Location:     d.Location,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		Activities:   d.Activities,
		Result:       d.Result,
		Blockers:     d.Blockers,
		Participants: d.Participants,
		Tags:         d.Tags,
		Color:        d.Color,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func newNoteDocument(n *models.Note) *noteDocument {
	return &noteDocument{
		Title:        n.Title,
		Date:         n.Date,
		EndDate:      n.EndDate,
		Location:     n.Location,
		StartTime:    n.StartTime,
		EndTime:      n.EndTime,
		Activities:   n.Activities,
		Result:       n.Result,
		Blockers:     n.Blockers,
		Participants: n.Participants,
		Tags:         n.Tags,
		Color:        n.Color,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

// NoteMongoDAO Mongo 下的笔记存储，ID 为 ObjectID
type NoteMongoDAO struct {
	Coll *mongo.Collection
}

func NewNoteMongoDAO(coll *mongo.Collection) *NoteMongoDAO {
	return &NoteMongoDAO{Coll: coll}
}

func noteOrder() bson.D {
	return bson.D{
		{Key: "date", Value: -1},
		{Key: "startTime", Value: -1},
		{Key: "createdAt", Value: -1},
	}
}

func (d *NoteMongoDAO) List(ctx context.Context) ([]*models.Note, error) {
	cursor, err := d.Coll.Find(ctx, bson.D{}, options.Find().SetSort(noteOrder()))
	if err != nil {
		return nil, err
	}
	var docs []*noteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	notes := make([]*models.Note, 0, len(docs))
	for _, doc := range docs {
		notes = append(notes, doc.model())
	}
	return notes, nil
}

func (d *NoteMongoDAO) Create(ctx context.Context, note *models.Note) error {
	doc := newNoteDocument(note)
	doc.ID = bson.NewObjectID()
	if _, err := d.Coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	note.ID = doc.ID.Hex()
	return nil
}

// noteUpdate 只 $set 补丁中出现的字段
func noteUpdate(patch *models.NotePatch, updatedAt time.Time) bson.M {
	set := bson.M{"updatedAt": updatedAt}
	for key, v := range patch.Fields() {
		set[key] = v
	}
	return bson.M{"$set": set}
}

func (d *NoteMongoDAO) Update(ctx context.Context, id string, patch *models.NotePatch, updatedAt time.Time) (*models.Note, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc noteDocument
	err = d.Coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		noteUpdate(patch, updatedAt),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.model(), nil
}

func (d *NoteMongoDAO) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := d.Coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *NoteMongoDAO) ValidID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}

// Migrate 创建排序用的复合索引
func (d *NoteMongoDAO) Migrate(ctx context.Context) error {
	_, err := d.Coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    noteOrder(),
		Options: options.Index().SetName("idx_note_order"),
	})
	return err
}
