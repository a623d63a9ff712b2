package gormrepo

import "time"

// decisionRow is the persisted form of one decision record. Actions and
// results are stored as JSON payloads; the orchestration core never
// queries inside them.
type decisionRow struct {
	ID        uint   `gorm:"primaryKey"`
	RecordID  string `gorm:"uniqueIndex;size:64"`
	AgentID   string `gorm:"index;size:128"`
	Trigger   string `gorm:"size:16"`
	Situation string
	Reasoning string `gorm:"type:text"`
	Actions   []byte `gorm:"type:jsonb"`
	Results   []byte `gorm:"type:jsonb"`
	DecidedAt time.Time
}

func (decisionRow) TableName() string {
	return "decision_log"
}
