// Package taxconfig keeps the tax configuration singleton in a local YAML file.
package taxconfig

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"pricing/config"
	"pricing/internal/domain/entity"
	"pricing/internal/domain/repository"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	yamlv3 "gopkg.in/yaml.v3"
)

// FileStore implements repository.TaxConfigStore on a YAML file.
// A missing file means the configured defaults are in effect.
type FileStore struct {
	path     string
	defaults entity.TaxConfiguration

	mu     sync.RWMutex
	cached *entity.TaxConfiguration
}

// NewFileStore creates a store backed by path.
func NewFileStore(path string, defaults entity.TaxConfiguration) *FileStore {
	return &FileStore{
		path:     path,
		defaults: defaults,
	}
}

// Load returns the stored configuration, reading the file once.
func (s *FileStore) Load(ctx context.Context) (*entity.TaxConfiguration, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		current := *cached

		return &current, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached == nil {
		loaded, err := s.readFile()
		if err != nil {
			return nil, err
		}
		s.cached = loaded
	}
	current := *s.cached

	return &current, nil
}

// Save replaces the file atomically and updates the cached copy.
func (s *FileStore) Save(ctx context.Context, cfg *entity.TaxConfiguration) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if cfg == nil {
		return errors.New("tax configuration is nil")
	}

	data, err := yamlv3.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to encode tax configuration")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeAtomic(s.path, data); err != nil {
		return err
	}

	saved := *cfg
	s.cached = &saved

	return nil
}

func (s *FileStore) readFile() (*entity.TaxConfiguration, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		defaults := s.defaults

		return &defaults, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %s", s.path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(s.path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", s.path)
	}

	// Keys absent from the file keep their default value.
	loaded := s.defaults
	if err := k.UnmarshalWithConf("", &loaded, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", s.path)
	}

	return &loaded, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".tax_config-*.yaml")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return errors.Wrap(err, "failed to write temp file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()

		return errors.Wrap(err, "failed to sync temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", path)
	}

	return nil
}

// StoreParams holds dependencies for the tax configuration store, injected by Fx.
type StoreParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewStore builds the FileStore from pricing configuration.
func NewStore(params StoreParams) repository.TaxConfigStore {
	pricingCfg := params.Config.Pricing
	defaults := entity.TaxConfiguration{
		VATRatePercent:            pricingCfg.DefaultTax.VATRatePercent,
		VATInclusive:              pricingCfg.DefaultTax.VATInclusive,
		SeniorPWDDiscountEnabled:  pricingCfg.DefaultTax.SeniorPWDDiscountEnabled,
		WithholdingTaxEnabled:     pricingCfg.DefaultTax.WithholdingTaxEnabled,
		WithholdingTaxRatePercent: pricingCfg.DefaultTax.WithholdingTaxRatePercent,
	}

	params.Logger.Info("Tax configuration store ready", slog.String("path", pricingCfg.TaxConfigPath))

	return NewFileStore(pricingCfg.TaxConfigPath, defaults)
}
