package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/Badsnus/coolqr/internal/domain/common/errorz"
	"github.com/Badsnus/coolqr/internal/domain/utils/validator"
	qr "github.com/Badsnus/coolqr/pkg/qrcode"
	"go.uber.org/zap"
)

type renderCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

type QrService struct {
	cache  renderCache
	qrCFG  qr.Config
	ttl    time.Duration
	logger *zap.SugaredLogger
}

// NewQrService renders codes from qrCFG. cache may be nil, then every call renders.
func NewQrService(cache renderCache, qrCFG qr.Config, ttl time.Duration, logger *zap.SugaredLogger) *QrService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	qrCFG.Logger = logger
	return &QrService{
		cache:  cache,
		qrCFG:  qrCFG,
		ttl:    ttl,
		logger: logger,
	}
}

// GetQR returns the PNG for content, rendering it on a cache miss.
func (s *QrService) GetQR(ctx context.Context, content string) ([]byte, error) {
	cfg := s.config(content)
	if err := validator.Config(cfg); err != nil {
		return nil, err
	}

	key, err := cacheKey(cfg)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		data, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			s.logger.Debugf("cache hit for %s", key)
			return data, nil
		case !errors.Is(err, errorz.ErrCacheMiss):
			s.logger.Warnf("failed to read cached qr %s: %v", key, err)
		}
	}

	data, err := cfg.Generate()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err = s.cache.Set(ctx, key, data, s.ttl); err != nil {
			s.logger.Warnf("failed to cache qr %s: %v", key, err)
		}
	}
	return data, nil
}

// RevokeQR drops the cached rendering of content.
func (s *QrService) RevokeQR(ctx context.Context, content string) error {
	if s.cache == nil {
		return nil
	}
	key, err := cacheKey(s.config(content))
	if err != nil {
		return err
	}
	return s.cache.Delete(ctx, key)
}

func (s *QrService) config(content string) qr.Config {
	cfg := s.qrCFG
	cfg.Data = content
	cfg.OutputPath = ""
	return cfg
}

func cacheKey(cfg qr.Config) (string, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
