package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/secplus/internal/config"
	"github.com/abhisek/secplus/internal/content"
	"github.com/abhisek/secplus/internal/kv"
	"github.com/abhisek/secplus/internal/logger"
	"github.com/abhisek/secplus/internal/mastery"
	"github.com/abhisek/secplus/internal/prefs"
	"github.com/abhisek/secplus/internal/screen"
	"github.com/abhisek/secplus/internal/store"
)

// env holds everything a command needs. Close releases it.
type env struct {
	cfg    *config.Config
	log    *zap.Logger
	store  *store.Store
	source *content.FSSource
	svc    screen.Services
}

// bootstrap loads configuration, resolves the database path, then opens
// the logger, the store and the content bundle, and wires the services.
func bootstrap(cmd *cobra.Command) (*env, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{ConfigFile: configFile})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if dir, _ := cmd.Flags().GetString("content"); dir != "" {
		cfg.ContentDir = dir
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	cfg.Log.File = cfg.LogPath(dbPath)
	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	st, err := store.Open(dbPath, store.WithMaxValueBytes(cfg.Storage.MaxValueBytes))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	src, err := openContent(cfg.ContentDir)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("open content: %w", err)
	}

	adapter := kv.New(st.KVRepo(), log)
	e := &env{
		cfg:    cfg,
		log:    log,
		store:  st,
		source: src,
		svc: screen.Services{
			Catalog:  content.NewCatalog(src, log),
			Progress: mastery.NewService(adapter, mastery.WithLogger(log)),
			Prefs:    prefs.NewService(adapter, prefs.NewNotifier(), log),
			Logger:   log,
		},
	}

	log.Debug("bootstrapped",
		zap.String("command", cmd.Name()),
		zap.String("db", dbPath),
		zap.String("content", src.Manifest().Title),
		zap.String("format", src.Manifest().Format))
	return e, nil
}

func openContent(dir string) (*content.FSSource, error) {
	if dir == "" {
		return content.Embedded()
	}
	return content.OpenDir(dir)
}

// Close flushes the logger and closes the store.
func (e *env) Close() {
	_ = e.log.Sync()
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store", zap.Error(err))
	}
}
