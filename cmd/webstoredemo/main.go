// Command webstoredemo builds a provider from the environment, writes a few
// values and logs what it reads back. Built for GOOS=js GOARCH=wasm it talks
// to the page's localStorage/sessionStorage; natively it runs on memory.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/webstore"
	"github.com/unkn0wn-root/webstore/backend"
	"github.com/unkn0wn-root/webstore/backend/bigcache"
	"github.com/unkn0wn-root/webstore/backend/memory"
	"github.com/unkn0wn-root/webstore/backend/ristretto"
	"github.com/unkn0wn-root/webstore/codec"
	"github.com/unkn0wn-root/webstore/internal/config"
	wszap "github.com/unkn0wn-root/webstore/log/zap"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting webstore demo", zap.String("version", Version))

	var closers []backend.Closer
	p, err := webstore.New(webstore.Options{
		StoreType: webstore.StoreType(cfg.Store.Type),
		Prefix:    webstore.Prefix(cfg.Store.Prefix),
		Memory:    memoryFactory(cfg.Store, &closers),
		Codec:     valueCodec(cfg.Store.Codec),
		Logger:    wszap.New(logger),
	})
	if err != nil {
		logger.Fatal("failed to create store provider", zap.Error(err))
	}
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	logger.Info("store provider ready",
		zap.Stringer("store_type", p.StoreType()),
		zap.String("prefix", p.Prefix()),
		zap.Bool("browser", p.Browser()))

	if err := run(p, logger); err != nil {
		logger.Error("demo failed", zap.Error(err))
	}
}

func run(p *webstore.Provider, logger *zap.Logger) error {
	values := map[string]any{
		"user":     map[string]any{"name": "Ada", "visits": 3},
		"theme":    "dark",
		"features": []any{"search", "sync"},
	}
	for k, v := range values {
		if err := p.SetValue(k, v); err != nil {
			return err
		}
	}
	for k := range values {
		logger.Info("read value", zap.String("key", k), zap.Any("value", p.GetValue(k)))
	}

	if err := p.RemoveValue("theme"); err != nil {
		return err
	}
	logger.Info("after remove", zap.String("key", "theme"), zap.Any("value", p.GetValue("theme")))
	return nil
}

func memoryFactory(sc config.StoreConfig, closers *[]backend.Closer) webstore.MemoryFactory {
	switch sc.Memory {
	case "bigcache":
		return func() (backend.Backend, error) {
			b, err := bigcache.New(bigcache.Config{HardMaxCacheSizeMB: sc.BigcacheMaxMB})
			if err != nil {
				return nil, err
			}
			*closers = append(*closers, b)
			return b, nil
		}
	case "ristretto":
		return func() (backend.Backend, error) {
			rc := ristretto.DefaultConfig()
			rc.MaxCost = sc.RistrettoMaxCost
			b, err := ristretto.New(rc)
			if err != nil {
				return nil, err
			}
			*closers = append(*closers, b)
			return b, nil
		}
	default:
		return func() (backend.Backend, error) { return memory.New(), nil }
	}
}

// valueCodec keeps stored values text: binary encodings go through base64.
func valueCodec(name string) codec.Codec[any] {
	switch name {
	case "cbor":
		return codec.Base64[any]{Inner: codec.MustCBOR[any](true)}
	case "msgpack":
		return codec.Base64[any]{Inner: codec.Msgpack[any]{}}
	default:
		return codec.JSON[any]{}
	}
}

func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapLevel)
	zcfg.EncoderConfig.TimeKey = "timestamp"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zcfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return logger
}
