// Package fakesource provides a watch source fed by tests.
package fakesource

import (
	"errors"
	"sync"
	"time"

	"github.com/black-desk/fsdetect/pkg/interfaces"
	"github.com/black-desk/fsdetect/pkg/types"
)

var ErrClosed = errors.New("fake source is closed.")

const always = types.FlagIgnored | types.FlagQOverflow | types.FlagUnmount

// Source returns one queued batch per Poll.
// Push and Poll may be called from different goroutines.
type Source struct {
	mu sync.Mutex

	// Widened records every mask passed to Watch.
	Widened []types.Flag
	// WatchErr makes the next Watch fail.
	WatchErr error

	installed types.Flag
	batches   [][]types.RawRecord
	pollErrs  []error
	polls     int
	closed    bool
}

var _ interfaces.Source = &Source{}

func New() *Source {
	return &Source{}
}

// Push queues one batch returned by a later Poll.
// Records whose bits are not installed are dropped at Poll,
// like a real inotify watch would never report them,
// except the bits inotify always reports.
func (s *Source) Push(records ...types.RawRecord) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.batches = append(s.batches, records)
	s.pollErrs = append(s.pollErrs, nil)
	return s
}

// PushErr queues a failing Poll.
func (s *Source) PushErr(err error) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.batches = append(s.batches, nil)
	s.pollErrs = append(s.pollErrs, err)
	return s
}

func (s *Source) Installed() types.Flag {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.installed
}

func (s *Source) Polls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.polls
}

func (s *Source) Watch(mask types.Flag) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WatchErr != nil {
		err = s.WatchErr
		s.WatchErr = nil
		return
	}

	s.Widened = append(s.Widened, mask)
	s.installed |= mask
	return
}

func (s *Source) Poll(time.Duration) (records []types.RawRecord, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		err = ErrClosed
		return
	}

	s.polls++

	if len(s.batches) == 0 {
		return
	}

	batch := s.batches[0]
	err = s.pollErrs[0]
	s.batches = s.batches[1:]
	s.pollErrs = s.pollErrs[1:]

	for i := range batch {
		op := batch[i].Flags &^ types.FlagIsDir
		if op&always == 0 && s.installed&op == 0 {
			continue
		}
		records = append(records, batch[i])
	}

	return
}

func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
