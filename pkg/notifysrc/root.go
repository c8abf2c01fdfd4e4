package notifysrc

import (
	"errors"
	"io/fs"
	"path/filepath"

	. "github.com/black-desk/lib/go/errwrap"
)

// ResolveRoot returns root as an absolute path with symlinks resolved.
// A root that does not exist yet is only made absolute.
func ResolveRoot(root string) (ret string, err error) {
	defer Wrap(&err, "resolve root %s", root)

	ret, err = filepath.Abs(root)
	if err != nil {
		return
	}

	var resolved string
	resolved, err = filepath.EvalSymlinks(ret)
	if errors.Is(err, fs.ErrNotExist) {
		err = nil
		return
	}
	if err != nil {
		return
	}

	ret = resolved
	return
}
