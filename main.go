package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lumen-bot/lumen-api/api"
	"github.com/lumen-bot/lumen-api/metrics"
	"github.com/lumen-bot/lumen-api/pkg/config"
	"github.com/lumen-bot/lumen-api/pkg/discord"
	"github.com/lumen-bot/lumen-api/pkg/logger"
	"github.com/lumen-bot/lumen-api/pkg/stats"
	"github.com/lumen-bot/lumen-api/pkg/topgg"
)

var (
	version = "1.4.0"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := runServer(); err != nil {
		fmt.Fprintf(os.Stderr, "lumen-api exited with an error: %v\n", err)
		os.Exit(1)
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.SentryDSN)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer zlog.Sync()
	log := zlog.Sugar()

	log.Infof("lumen-api %s (commit %s, built %s)", version, commit, date)
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	store := stats.New(cfg.Bot.Name)
	m := metrics.New(store)

	relay := discord.NewClient(discord.Config{
		APIBase:      cfg.Discord.APIBase,
		ClientID:     cfg.Discord.ClientID,
		ClientSecret: cfg.Discord.ClientSecret,
		BotToken:     cfg.Discord.BotToken,
		BotID:        cfg.Discord.BotID,
	}, log, m)
	if cfg.Discord.ClientID == "" || cfg.Discord.ClientSecret == "" {
		log.Warn("discord client credentials not set; /oauth/exchange will report a misconfiguration")
	}
	if cfg.Discord.BotToken == "" || cfg.Discord.BotID == "" {
		log.Warn("bot credentials not set; /bot/guilds_status will report a misconfiguration")
	}

	publisher, err := topgg.New(cfg.TopGG.Token, cfg.Discord.BotID, log)
	if err != nil {
		log.Warnf("top.gg client disabled: %v", err)
	} else if publisher == nil {
		log.Info("no top.gg token provided; listing stats will not be published")
	}

	a := api.NewApi(version, cfg.Server.URL, cfg.Cors.AllowedOrigins, store, relay, publisher, zlog)
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: a.Router(),
	}
	ops := metrics.NewOpsServer(cfg.Server.MetricsPort, cfg.Discord.APIBase, m, log)

	go func() {
		log.Infof("api listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("api server: %v", err)
		}
	}()
	go func() {
		log.Infof("ops endpoints listening on :%s", cfg.Server.MetricsPort)
		if err := ops.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("ops server: %v", err)
		}
	}()

	log.Info("relay is now running, press CTRL-C to exit")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warnf("api shutdown: %v", err)
	}
	if err := ops.Shutdown(ctx); err != nil {
		log.Warnf("ops shutdown: %v", err)
	}
	return nil
}
