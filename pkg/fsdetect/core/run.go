package core

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/sourcegraph/conc/pool"
)

// Run polls the detector every configured interval
// until ctx is done or SIGTERM or SIGINT is received.
// A move-out still held at that point is reported before Run returns.
func (c *Core) Run(ctx context.Context) (err error) {
	defer Wrap(&err, "running fsdetect core")

	c.components, err = injectedComponents(c.cfg, c.log, c.opts)
	if err != nil {
		return
	}
	defer func() {
		closeErr := c.components.d.Close()
		if closeErr == nil {
			return
		}

		c.log.Errorw("Failed to close detector.",
			"error", closeErr,
		)
	}()

	err = c.register()
	if err != nil {
		return
	}

	p := pool.New().
		WithContext(ctx).
		WithFirstError().
		WithCancelOnError()

	p.Go(c.waitSig)
	p.Go(c.runDetector)

	return p.Wait()
}

func (c *Core) waitSig(ctx context.Context) (err error) {
	defer Wrap(&err)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	var sig os.Signal
	select {
	case <-ctx.Done():
		return ctx.Err()
	case sig = <-sigChan:
		c.log.Debugw(
			"Receive signal.",
			"signal", sig,
		)
		return &ErrCancelBySignal{sig}
	}
}

func (c *Core) runDetector(ctx context.Context) (err error) {
	defer c.log.Debugw("Detector exited.")

	d := c.components.d

	c.log.Debugw("Start detector.",
		"root", d.Root(),
		"interval", c.cfg.Interval,
	)

	timer := time.NewTimer(c.cfg.Interval)
	defer timer.Stop()

	for {
		err = d.Poll()
		if err != nil {
			return
		}

		timer.Reset(c.cfg.Interval)

		select {
		case <-ctx.Done():
			err = d.Flush()
			if err != nil {
				return
			}

			return ctx.Err()
		case <-timer.C:
		}
	}
}
