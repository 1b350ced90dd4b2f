package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ashfall/internal/adapter/repo/gorm/model"
	"ashfall/internal/app/ports"
	"ashfall/internal/domain/world"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ZoneStateRepo struct {
	db *gorm.DB
}

func NewZoneStateRepo(db *gorm.DB) ZoneStateRepo {
	return ZoneStateRepo{db: db}
}

func (r ZoneStateRepo) GetByZoneKey(ctx context.Context, zoneKey string) (ports.ZoneStateRecord, error) {
	var row model.ZoneState
	if err := getDBFromCtx(ctx, r.db).Where("zone_key = ?", zoneKey).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ZoneStateRecord{}, ports.ErrNotFound
		}
		return ports.ZoneStateRecord{}, err
	}
	slots, err := decodeJSON[[]world.Point](row.ClearedSlots)
	if err != nil {
		return ports.ZoneStateRecord{}, err
	}
	creatures, err := decodeJSON[[]world.CreatureSnapshot](row.Creatures)
	if err != nil {
		return ports.ZoneStateRecord{}, err
	}
	characters, err := decodeJSON[[]world.CharacterSnapshot](row.Characters)
	if err != nil {
		return ports.ZoneStateRecord{}, err
	}
	return ports.ZoneStateRecord{
		ZoneKey:      row.ZoneKey,
		Visited:      row.Visited,
		ClearedSlots: slots,
		Creatures:    creatures,
		Characters:   characters,
	}, nil
}

func (r ZoneStateRepo) Save(ctx context.Context, rec ports.ZoneStateRecord) error {
	slots, err := json.Marshal(rec.ClearedSlots)
	if err != nil {
		return err
	}
	creatures, err := json.Marshal(rec.Creatures)
	if err != nil {
		return err
	}
	characters, err := json.Marshal(rec.Characters)
	if err != nil {
		return err
	}
	row := model.ZoneState{
		ZoneKey:      rec.ZoneKey,
		Visited:      rec.Visited,
		ClearedSlots: slots,
		Creatures:    creatures,
		Characters:   characters,
		UpdatedAt:    time.Now(),
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "zone_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"visited", "cleared_slots", "creatures", "characters", "updated_at"}),
	}).Create(&row).Error
}

func decodeJSON[T any](data []byte) (T, error) {
	var out T
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, err
	}
	return out, nil
}
