package main

import (
	"context"
	"os"
	"strconv"
	"strings"

	httpadapter "ashfall/internal/adapter/http"
	metricsinmem "ashfall/internal/adapter/metrics/inmemory"
	"ashfall/internal/adapter/notify"
	gormrepo "ashfall/internal/adapter/repo/gorm"
	"ashfall/internal/adapter/repo/memory"
	"ashfall/internal/adapter/worlddef"
	"ashfall/internal/app/observe"
	"ashfall/internal/app/ports"
	"ashfall/internal/app/transition"
	"ashfall/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/sirupsen/logrus"
)

func main() {
	log := buildLogger()

	graph, def, err := buildWorld()
	if err != nil {
		log.Fatalf("build world: %v", err)
	}

	stateRepo, eventRepo, txManager := buildRepos(log)
	kpiRecorder := metricsinmem.NewRecorder()
	notifier := notify.NewFanout(notify.NewLogNotifier(log))

	ctrl := &transition.Controller{
		Graph:     graph,
		StateRepo: stateRepo,
		Events:    eventRepo,
		Tx:        txManager,
		Notifier:  notifier,
		Metrics:   kpiRecorder,
		Log:       log,
	}
	if err := ctrl.Start(context.Background(), def.Start, def.Traveler); err != nil {
		log.Fatalf("enter start zone: %v", err)
	}

	h := httpadapter.Handler{
		ObserveUC:  observe.UseCase{Session: ctrl},
		Transition: ctrl,
		Events:     eventRepo,
		KPI:        kpiRecorder,
	}

	addr := ":" + strconv.Itoa(intEnv("PORT", 8080))
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.WithFields(logrus.Fields{
		"addr":  addr,
		"start": def.Start,
		"zones": len(def.Zones),
	}).Info("ashfall server listening")
	s.Spin()
}

func buildLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(strings.TrimSpace(os.Getenv("LOG_LEVEL"))); err == nil {
		log.SetLevel(lvl)
	}
	return log
}

// buildWorld loads the zone graph from WORLD_DEF when set, otherwise
// the built-in six-zone world.
func buildWorld() (*world.Graph, worlddef.Definition, error) {
	if path := strings.TrimSpace(os.Getenv("WORLD_DEF")); path != "" {
		return worlddef.LoadFile(path)
	}
	def := worlddef.Default()
	graph, err := worlddef.Build(def)
	return graph, def, err
}

// buildRepos wires postgres-backed persistence when ASHFALL_DB_DSN is
// set and falls back to the in-memory store otherwise, so the server
// runs without a database but forgets zone state on restart.
func buildRepos(log *logrus.Logger) (ports.ZoneStateRepository, ports.EventRepository, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("ASHFALL_DB_DSN"))
	if dsn == "" {
		store := memory.NewStore()
		return memory.NewZoneStateRepo(store), memory.NewEventRepo(store), memory.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if dir := migrationsDir(); dir != "" {
		if err := gormrepo.ApplyMigrations(context.Background(), db, dir); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
	}
	return gormrepo.NewZoneStateRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db)
}

func migrationsDir() string {
	if dir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")); dir != "" {
		return dir
	}
	if _, err := os.Stat("./migrations"); err == nil {
		return "./migrations"
	}
	return ""
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
