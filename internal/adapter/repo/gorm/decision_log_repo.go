package gormrepo

import (
	"context"
	"encoding/json"

	"bannermind/internal/app/ports"
	"bannermind/internal/domain/mind"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DecisionLogRepo struct {
	db *gorm.DB
}

func NewDecisionLogRepo(db *gorm.DB) DecisionLogRepo {
	return DecisionLogRepo{db: db}
}

var _ ports.DecisionLogRepository = DecisionLogRepo{}

func (r DecisionLogRepo) Save(ctx context.Context, rec ports.DecisionRecord) error {
	actions, err := json.Marshal(rec.Actions)
	if err != nil {
		return err
	}
	results, err := json.Marshal(toResultRows(rec.Results))
	if err != nil {
		return err
	}
	row := decisionRow{
		RecordID:  rec.RecordID,
		AgentID:   rec.AgentID,
		Trigger:   rec.Trigger,
		Situation: rec.Situation,
		Reasoning: rec.Reasoning,
		Actions:   actions,
		Results:   results,
		DecidedAt: rec.DecidedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r DecisionLogRepo) ListByAgentID(ctx context.Context, agentID string, limit int) ([]ports.DecisionRecord, error) {
	rows := []decisionRow{}
	query := r.db.WithContext(ctx).
		Where(&decisionRow{AgentID: agentID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "decided_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]ports.DecisionRecord, 0, len(rows))
	for _, row := range rows {
		rec := ports.DecisionRecord{
			RecordID:  row.RecordID,
			AgentID:   row.AgentID,
			Trigger:   row.Trigger,
			Situation: row.Situation,
			Reasoning: row.Reasoning,
			DecidedAt: row.DecidedAt,
		}
		if len(row.Actions) > 0 {
			_ = json.Unmarshal(row.Actions, &rec.Actions)
		}
		if len(row.Results) > 0 {
			var results []resultRow
			_ = json.Unmarshal(row.Results, &results)
			rec.Results = fromResultRows(results)
		}
		out = append(out, rec)
	}
	return out, nil
}

// resultRow flattens ActionResult for storage: the error, if any, survives
// only as text.
type resultRow struct {
	Succeeded bool   `json:"succeeded"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
}

func toResultRows(results []mind.ActionResult) []resultRow {
	out := make([]resultRow, 0, len(results))
	for _, res := range results {
		row := resultRow{Succeeded: res.Succeeded, Message: res.Message}
		if res.Err != nil {
			row.Error = res.Err.Error()
		}
		out = append(out, row)
	}
	return out
}

func fromResultRows(rows []resultRow) []mind.ActionResult {
	out := make([]mind.ActionResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, mind.ActionResult{Succeeded: row.Succeeded, Message: row.Message})
	}
	return out
}
