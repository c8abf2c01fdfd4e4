package notifysrc

import (
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/black-desk/fsdetect/pkg/types"
	"github.com/rjeczalik/notify"
	"golang.org/x/sys/unix"
)

var eventTable = []struct {
	flag  types.Flag
	event notify.Event
}{
	{types.FlagAccess, notify.InAccess},
	{types.FlagModify, notify.InModify},
	{types.FlagAttrib, notify.InAttrib},
	{types.FlagCloseWrite, notify.InCloseWrite},
	{types.FlagCloseNowrite, notify.InCloseNowrite},
	{types.FlagOpen, notify.InOpen},
	{types.FlagMovedFrom, notify.InMovedFrom},
	{types.FlagMovedTo, notify.InMovedTo},
	{types.FlagCreate, notify.InCreate},
	{types.FlagDelete, notify.InDelete},
	{types.FlagDeleteSelf, notify.InDeleteSelf},
	{types.FlagMoveSelf, notify.InMoveSelf},
}

func notifyEvents(mask types.Flag) (events []notify.Event) {
	for i := range eventTable {
		if mask.Has(eventTable[i].flag) {
			events = append(events, eventTable[i].event)
		}
	}
	return
}

func (s *Source) record(event notify.EventInfo) (rec types.RawRecord) {
	rec.Path = event.Path()

	raw, ok := event.Sys().(*unix.InotifyEvent)
	if !ok || raw == nil {
		rec.Flags = types.Flag(event.Event())
		return
	}

	rec.Flags = types.Flag(raw.Mask)
	rec.Cookie = raw.Cookie
	return
}

func (s *Source) drain(records []types.RawRecord) []types.RawRecord {
	for {
		select {
		case event := <-s.eventsIn:
			records = append(records, s.record(event))
		default:
			return records
		}
	}
}

// wait keeps receiving until every rename half in records has its partner
// or the settle duration passes.
func (s *Source) wait(records []types.RawRecord) []types.RawRecord {
	if s.settle == 0 {
		return records
	}

	timer := time.NewTimer(s.settle)
	defer timer.Stop()

	for {
		select {
		case event := <-s.eventsIn:
			records = append(records, s.record(event))
			records = s.drain(records)
			if !unpaired(records) {
				return records
			}
		case <-timer.C:
			s.log.Debugw("Rename half left without partner.",
				"count", len(records),
			)
			return records
		}
	}
}

func moveHalves(records []types.RawRecord) map[uint32]types.Flag {
	halves := map[uint32]types.Flag{}
	for i := range records {
		if records[i].Cookie == 0 {
			continue
		}
		halves[records[i].Cookie] |= records[i].Flags &
			(types.FlagMovedFrom | types.FlagMovedTo)
	}
	return halves
}

func unpaired(records []types.RawRecord) bool {
	for _, flags := range moveHalves(records) {
		if flags == types.FlagMovedFrom || flags == types.FlagMovedTo {
			return true
		}
	}
	return false
}

// pairMoves puts every MOVED_FROM record
// right before the MOVED_TO record sharing its cookie.
// Other records keep their relative order.
func pairMoves(records []types.RawRecord) []types.RawRecord {
	halves := moveHalves(records)
	paired := func(rec *types.RawRecord) bool {
		return rec.Cookie != 0 &&
			halves[rec.Cookie] == types.FlagMovedFrom|types.FlagMovedTo
	}

	from := map[uint32]types.RawRecord{}
	for i := range records {
		if records[i].IsMovedFrom() && paired(&records[i]) {
			from[records[i].Cookie] = records[i]
		}
	}
	if len(from) == 0 {
		return records
	}

	ret := make([]types.RawRecord, 0, len(records))
	for i := range records {
		rec := records[i]
		if !paired(&rec) {
			ret = append(ret, rec)
			continue
		}
		if rec.IsMovedFrom() {
			continue
		}
		ret = append(ret, from[rec.Cookie], rec)
	}
	return ret
}

// expand reports the content of new directories
// and drops create records already reported.
func (s *Source) expand(records []types.RawRecord, now time.Time) []types.RawRecord {
	for path, at := range s.created {
		if now.Sub(at) > createWindow {
			delete(s.created, path)
		}
	}

	ret := make([]types.RawRecord, 0, len(records))
	for i := range records {
		rec := records[i]
		if !rec.Flags.Has(types.FlagCreate) {
			if rec.Flags.Has(types.FlagDelete) || rec.IsMovedFrom() {
				delete(s.created, rec.Path)
			}
			ret = append(ret, rec)
			continue
		}

		if _, ok := s.created[rec.Path]; ok {
			s.log.Debugw("Create already reported.",
				"path", rec.Path,
			)
			continue
		}

		s.created[rec.Path] = now
		ret = append(ret, rec)

		if rec.IsDir() {
			ret = s.walk(ret, rec.Path, now)
		}
	}
	return ret
}

func (s *Source) walkFn(
	dir string, records *[]types.RawRecord, now time.Time,
) fs.WalkDirFunc {
	return func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				s.log.Debugw("Directory content had been removed.",
					"path", path,
				)
				return nil
			}
			s.log.Errorw("Errors occurred while going through new directory.",
				"path", path,
				"error", err,
			)
			return nil
		}

		if path == dir {
			return nil
		}

		if _, ok := s.created[path]; ok {
			return nil
		}

		flags := types.FlagCreate
		if d.IsDir() {
			flags |= types.FlagIsDir
		}

		s.created[path] = now
		*records = append(*records, types.RawRecord{
			Flags: flags,
			Path:  path,
		})
		return nil
	}
}

func (s *Source) walk(
	records []types.RawRecord, dir string, now time.Time,
) []types.RawRecord {
	err := filepath.WalkDir(dir, s.walkFn(dir, &records, now))
	if err != nil {
		s.log.Debugw("Failed to go through new directory.",
			"path", dir,
			"error", err,
		)
	}
	return records
}
