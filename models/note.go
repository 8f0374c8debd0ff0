package models

import (
	"time"
)

// Note 工作记录，Mongo 与 SQL 存储共用
type Note struct {
	ID           string    `gorm:"column:id;type:varchar(32);primaryKey" json:"_id"`
	Title        string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Date         string    `gorm:"column:date;type:varchar(10);not null;index:idx_note_order,priority:1,sort:desc" json:"date"`
	EndDate      string    `gorm:"column:end_date;type:varchar(10)" json:"endDate,omitempty"`
	Location     string    `gorm:"column:location;type:varchar(255)" json:"location,omitempty"`
	StartTime    string    `gorm:"column:start_time;type:varchar(16);index:idx_note_order,priority:2,sort:desc" json:"startTime,omitempty"`
	EndTime      string    `gorm:"column:end_time;type:varchar(16)" json:"endTime,omitempty"`
	Activities   string    `gorm:"column:activities;type:text" json:"activities,omitempty"`
	Result       string    `gorm:"column:result;type:text" json:"result,omitempty"`
	Blockers     string    `gorm:"column:blockers;type:text" json:"blockers,omitempty"`
	Participants string    `gorm:"column:participants;type:text" json:"participants,omitempty"`
	Tags         string    `gorm:"column:tags;type:varchar(255)" json:"tags,omitempty"`
	Color        string    `gorm:"column:color;type:varchar(16);not null;default:'#3b82f6'" json:"color"`
	CreatedAt    time.Time `gorm:"column:created_at;index:idx_note_order,priority:3,sort:desc" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (n Note) TableName() string {
	return "notes"
}

// NotePatch 部分更新，nil 字段保持原值
type NotePatch struct {
	Title        *string
	Date         *string
	EndDate      *string
	Location     *string
	StartTime    *string
	EndTime      *string
	Activities   *string
	Result       *string
	Blockers     *string
	Participants *string
	Tags         *string
	Color        *string
}

// Fields returns the supplied values keyed by their JSON/document name.
func (p *NotePatch) Fields() map[string]string {
	out := make(map[string]string)
	set := func(key string, v *string) {
		if v != nil {
			out[key] = *v
		}
	}
	set("title", p.Title)
	set("date", p.Date)
	set("endDate", p.EndDate)
	set("location", p.Location)
	set("startTime", p.StartTime)
	set("endTime", p.EndTime)
	set("activities", p.Activities)
	set("result", p.Result)
	set("blockers", p.Blockers)
	set("participants", p.Participants)
	set("tags", p.Tags)
	set("color", p.Color)
	return out
}

// Apply 把补丁应用到内存中的笔记上
func (p *NotePatch) Apply(n *Note) {
	assign := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	assign(&n.Title, p.Title)
	assign(&n.Date, p.Date)
	assign(&n.EndDate, p.EndDate)
	assign(&n.Location, p.Location)
	assign(&n.StartTime, p.StartTime)
	assign(&n.EndTime, p.EndTime)
	assign(&n.Activities, p.Activities)
	assign(&n.Result, p.Result)
	assign(&n.Blockers, p.Blockers)
	assign(&n.Participants, p.Participants)
	assign(&n.Tags, p.Tags)
	assign(&n.Color, p.Color)
}
