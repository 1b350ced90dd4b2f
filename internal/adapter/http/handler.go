package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"ashfall/internal/app/observe"
	"ashfall/internal/app/ports"
	"ashfall/internal/app/transition"
	"ashfall/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	ObserveUC  observe.UseCase
	Transition *transition.Controller
	Events     ports.EventRepository
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	worldGroup := s.Group("/api/world")
	worldGroup.GET("/current", h.currentZone)
	worldGroup.GET("/zones", h.listZones)
	worldGroup.GET("/map", h.mapView)
	worldGroup.GET("/events", h.events)
	worldGroup.POST("/move", h.move)

	s.GET("/ops/kpi", h.kpi)
}

type moveRequest struct {
	Direction string `json:"direction"`
}

func (h Handler) currentZone(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ObserveUC.CurrentZone(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listZones(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.ObserveUC.ListZones(c))
}

func (h Handler) mapView(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ObserveUC.MapView(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) events(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	events, err := h.Events.ListRecent(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"events": events})
}

func (h Handler) move(c context.Context, ctx *app.RequestContext) {
	var body moveRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	dir, ok := world.ParseDirection(body.Direction)
	if !ok {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_direction", "direction must be north, south, west or east")
		return
	}

	resp, err := h.Transition.MoveTraveler(c, dir)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, observe.ErrNoResidentZone),
		errors.Is(err, transition.ErrNotStarted):
		writeErrorBody(ctx, consts.StatusConflict, "not_started", err.Error())
	case errors.Is(err, transition.ErrUnknownZone):
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_zone", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
