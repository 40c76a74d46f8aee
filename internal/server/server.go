package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/dgennetten/trailsMapper/internal/catalog"
	"github.com/dgennetten/trailsMapper/internal/config"
	"github.com/dgennetten/trailsMapper/internal/gate"
	"github.com/dgennetten/trailsMapper/internal/kv"
	"github.com/dgennetten/trailsMapper/internal/session"
	"github.com/dgennetten/trailsMapper/internal/stream"
	"github.com/dgennetten/trailsMapper/internal/triplog"
	"github.com/dgennetten/trailsMapper/internal/viewport"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

//go:embed web/*
var webAssets embed.FS

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) (*Server, error) {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	if err := registerRoutes(s); err != nil {
		return nil, err
	}
	return s, nil
}

// store picks the kv backend: postgres when a pool is configured,
// otherwise redis.
func (s *Server) store() kv.Store {
	if s.DB != nil {
		return kv.NewPostgresStore(s.DB)
	}
	return kv.NewRedisStore(s.Redis)
}

func registerRoutes(s *Server) error {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	store := s.store()
	gateSvc, err := gate.NewService(s.Cfg.GateSecretHash, s.Cfg.GateSecret, s.Cfg.JWTSecret, store)
	if err != nil {
		return err
	}
	tripSvc := triplog.NewService(store, s.Stream)
	sessions := session.NewManager(catalog.CanyonLakesTrails, gateSvc, tripSvc)
	gateMiddleware := gate.Middleware(s.Cfg.JWTSecret)

	catalog.RegisterRoutes(s.App.Group("/trails"), catalog.CanyonLakesTrails)
	viewport.RegisterRoutes(s.App.Group("/map"))
	session.RegisterRoutes(s.App.Group("/session"), sessions)
	triplog.RegisterRoutes(s.App.Group("/trips"), tripSvc, gateMiddleware)
	gate.RegisterRoutes(s.App.Group("/gate"), gateSvc)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)

	web, err := fs.Sub(webAssets, "web")
	if err != nil {
		return err
	}
	s.App.Use("/", filesystem.New(filesystem.Config{
		Root:  http.FS(web),
		Index: "index.html",
	}))
	return nil
}
