// Package schedule holds the fixed day timetable and event ordering.
package schedule

import "github.com/undokai/rostercheck/internal/domain/model"

// ItemType distinguishes competition slots from ceremony and logistics slots.
type ItemType string

const (
	Competition ItemType = "competition"
	Other       ItemType = "other"
)

// Item is one timetable row.
type Item struct {
	Time      string          `json:"time"` // e.g. "09:30"
	Title     string          `json:"title"`
	Type      ItemType        `json:"type"`
	EventName model.EventKind `json:"event_name,omitempty"` // set for competition rows
	Note      string          `json:"note,omitempty"`
}

// Timetable returns the day schedule in chronological order.
func Timetable() []Item {
	return []Item{
		{Time: "08:30", Title: "担当教員／スポーツ大会委員 集合・準備", Type: Other},
		{Time: "09:00", Title: "各校教員 集合・準備", Type: Other},
		{Time: "09:15", Title: "全学生 集合（待機場所に荷物を置いて集合）", Type: Other},
		{Time: "09:30", Title: "開会式", Type: Other},
		{Time: "09:50", Title: "準備体操", Type: Other},
		{Time: "10:10", Title: "玉入れ", Type: Competition, EventName: model.Tamaire},
		{Time: "11:10", Title: "Let'sボール運び", Type: Competition, EventName: model.BallCarry},
		{Time: "12:30", Title: "20人21脚", Type: Competition, EventName: model.LeggedRace},
		{Time: "13:40", Title: "綱引き", Type: Competition, EventName: model.TugOfWar},
		{Time: "14:10", Title: "学校対抗リレー", Type: Competition, EventName: model.Relay},
		{Time: "14:50", Title: "得点集計", Type: Other},
		{Time: "15:10", Title: "閉会式", Type: Other},
		{Time: "16:00", Title: "清掃・片付け後 解散", Type: Other},
	}
}

// EventOrder returns the running order index for an event kind, or -1 when
// the kind has no competition slot.
func EventOrder(k model.EventKind) int {
	for i, kind := range model.EventKinds() {
		if kind == k {
			return i
		}
	}
	return -1
}

// StartTime returns the scheduled start for a competition event. The second
// return is false for kinds without a slot.
func StartTime(k model.EventKind) (string, bool) {
	for _, it := range Timetable() {
		if it.Type == Competition && it.EventName == k {
			return it.Time, true
		}
	}
	return "", false
}
