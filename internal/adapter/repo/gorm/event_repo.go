package gormrepo

import (
	"context"

	"ashfall/internal/adapter/repo/gorm/model"
	"ashfall/internal/domain/world"

	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, events []world.TransitionEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.TransitionEvent, 0, len(events))
	for _, ev := range events {
		rows = append(rows, model.TransitionEvent{
			FromKey:    ev.FromKey,
			ToKey:      ev.ToKey,
			Fresh:      ev.Fresh,
			OccurredAt: ev.OccurredAt,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListRecent(ctx context.Context, limit int) ([]world.TransitionEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []model.TransitionEvent
	err := getDBFromCtx(ctx, r.db).
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]world.TransitionEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, world.TransitionEvent{
			FromKey:    row.FromKey,
			ToKey:      row.ToKey,
			Fresh:      row.Fresh,
			OccurredAt: row.OccurredAt,
		})
	}
	return out, nil
}
