package config

import (
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Opt = (func(*Config) (*Config, error))

func New(opts ...Opt) (ret *Config, err error) {
	defer Wrap(&err, "load configuration")

	cfg := &Config{}
	for i := range opts {
		cfg, err = opts[i](cfg)
		if err != nil {
			cfg = nil
			return
		}
	}

	if cfg.log == nil {
		cfg.log = zap.NewNop().Sugar()
	}

	if cfg.raw == nil {
		err = ErrContentMissing
		return
	}

	err = yaml.Unmarshal(cfg.raw, cfg)
	if err != nil {
		Wrap(&err, "unmarshal configuration")
		return
	}

	err = cfg.check()
	if err != nil {
		return
	}

	ret = cfg
	return
}

func WithContent(content []byte) Opt {
	return func(cfg *Config) (ret *Config, err error) {
		cfg.raw = content
		ret = cfg
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(cfg *Config) (ret *Config, err error) {
		cfg.log = log
		ret = cfg
		return
	}
}
