package dispatch

import (
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

type Dispatcher struct {
	chains Chains
	log    *zap.SugaredLogger
}

func New(opts ...Opt) (ret *Dispatcher, err error) {
	defer Wrap(&err, "create handler dispatcher")

	d := &Dispatcher{}
	for i := range opts {
		d, err = opts[i](d)
		if err != nil {
			return
		}
	}

	if d.chains == nil {
		err = ErrChainsMissing
		return
	}

	if d.log == nil {
		d.log = zap.NewNop().Sugar()
	}

	ret = d
	return
}

type Opt func(d *Dispatcher) (ret *Dispatcher, err error)

func WithChains(chains Chains) Opt {
	return func(d *Dispatcher) (ret *Dispatcher, err error) {
		if chains == nil {
			err = ErrChainsMissing
			return
		}

		d.chains = chains
		ret = d
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(d *Dispatcher) (ret *Dispatcher, err error) {
		d.log = log
		ret = d
		return
	}
}
