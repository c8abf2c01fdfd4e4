package types

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// Flag is a set of raw inotify bits carried by a RawRecord.
type Flag uint32

const (
	FlagAccess       Flag = unix.IN_ACCESS
	FlagModify       Flag = unix.IN_MODIFY
	FlagAttrib       Flag = unix.IN_ATTRIB
	FlagCloseWrite   Flag = unix.IN_CLOSE_WRITE
	FlagCloseNowrite Flag = unix.IN_CLOSE_NOWRITE
	FlagOpen         Flag = unix.IN_OPEN
	FlagMovedFrom    Flag = unix.IN_MOVED_FROM
	FlagMovedTo      Flag = unix.IN_MOVED_TO
	FlagCreate       Flag = unix.IN_CREATE
	FlagDelete       Flag = unix.IN_DELETE
	FlagDeleteSelf   Flag = unix.IN_DELETE_SELF
	FlagMoveSelf     Flag = unix.IN_MOVE_SELF
	FlagUnmount      Flag = unix.IN_UNMOUNT
	FlagQOverflow    Flag = unix.IN_Q_OVERFLOW
	FlagIgnored      Flag = unix.IN_IGNORED
	FlagIsDir        Flag = unix.IN_ISDIR
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{FlagAccess, "IN_ACCESS"},
	{FlagModify, "IN_MODIFY"},
	{FlagAttrib, "IN_ATTRIB"},
	{FlagCloseWrite, "IN_CLOSE_WRITE"},
	{FlagCloseNowrite, "IN_CLOSE_NOWRITE"},
	{FlagOpen, "IN_OPEN"},
	{FlagMovedFrom, "IN_MOVED_FROM"},
	{FlagMovedTo, "IN_MOVED_TO"},
	{FlagCreate, "IN_CREATE"},
	{FlagDelete, "IN_DELETE"},
	{FlagDeleteSelf, "IN_DELETE_SELF"},
	{FlagMoveSelf, "IN_MOVE_SELF"},
	{FlagUnmount, "IN_UNMOUNT"},
	{FlagQOverflow, "IN_Q_OVERFLOW"},
	{FlagIgnored, "IN_IGNORED"},
	{FlagIsDir, "IN_ISDIR"},
}

// Has reports whether every bit of x is set in f.
func (f Flag) Has(x Flag) bool {
	return x != 0 && f&x == x
}

func (f Flag) String() string {
	if f == 0 {
		return "0"
	}

	var (
		names []string
		rest  = f
	)
	for i := range flagNames {
		if !f.Has(flagNames[i].flag) {
			continue
		}
		names = append(names, flagNames[i].name)
		rest &^= flagNames[i].flag
	}

	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(rest)))
	}

	return strings.Join(names, "|")
}
