package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"conectify/config"
	"conectify/logger"
	mid "conectify/middleware"
	midsec "conectify/middleware/security"
	msgservice "conectify/module/messaging/service"
	"conectify/module/messaging/store"
	"conectify/service/chat"
	"conectify/service/events"
	storage "conectify/service/storage"
	ids "conectify/tools/ids"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfgPath := os.Getenv("CONECTIFY_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	defer logger.Sync()

	ids.SetNodeID(cfg.Server.NodeID)
	mid.Config(midsec.DefaultOptions([]byte(cfg.Auth.JWTSecret)))

	st, cleanup, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("init store: %v", err)
	}
	defer cleanup()

	if cfg.Redis.Addr != "" {
		if err := storage.InitRedis(storage.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}); err != nil {
			logger.Errorf("redis unavailable, presence disabled: %v", err)
		}
	}

	pub, err := events.Connect(cfg.Nats.URL)
	if err != nil {
		logger.Errorf("nats unavailable, events disabled: %v", err)
		pub = nil
	}
	defer pub.Close()

	gwID := os.Getenv("GATEWAY_ID")
	if gwID == "" {
		gwID = "conectify-gw-1"
	}
	conns := chat.NewConnManager(gwID)
	defer conns.Close()
	relay := chat.NewRelay(conns)
	ws := chat.NewServer(conns, relay)

	h := msgservice.NewHandler(st, relay, pub)

	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/ws", ws.HandleWS) // e.g. ws://localhost:8080/ws?userId=u1
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	msgservice.RegisterRoutes(r, h)

	logger.Infof("[HTTP] gateway %s listening on %s (storage=%s)", gwID, cfg.Server.Addr, cfg.Storage.Driver)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}

func buildStore(cfg config.AppConfig) (store.Store, func(), error) {
	switch cfg.Storage.Driver {
	case "memory":
		return store.NewMemory(), func() {}, nil
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cli, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Storage.Mongo.URI))
		if err != nil {
			return nil, nil, err
		}
		if err := cli.Ping(ctx, nil); err != nil {
			return nil, nil, err
		}
		s := store.NewMongo(cli.Database(cfg.Storage.Mongo.Database))
		if err := s.EnsureIndexes(ctx); err != nil {
			return nil, nil, err
		}
		cleanup := func() { _ = cli.Disconnect(context.Background()) }
		return s, cleanup, nil
	}
}
