package hidden

import (
	"path/filepath"

	. "github.com/black-desk/lib/go/errwrap"
)

// DefaultPrefix marks hidden files and directories.
const DefaultPrefix = "."

type Filter struct {
	root   string
	prefix string
}

func New(opts ...Opt) (ret *Filter, err error) {
	defer Wrap(&err, "create hidden path filter")

	f := &Filter{prefix: DefaultPrefix}
	for i := range opts {
		f, err = opts[i](f)
		if err != nil {
			return
		}
	}

	ret = f
	return
}

type Opt func(f *Filter) (ret *Filter, err error)

// WithRoot makes components between the root and the leaf count too,
// so everything below a hidden directory is hidden.
func WithRoot(root string) Opt {
	return func(f *Filter) (ret *Filter, err error) {
		if root == "" {
			err = ErrRootMissing
			return
		}

		f.root = filepath.Clean(root)
		ret = f
		return
	}
}

func WithPrefix(prefix string) Opt {
	return func(f *Filter) (ret *Filter, err error) {
		if prefix == "" {
			err = ErrPrefixMissing
			return
		}

		f.prefix = prefix
		ret = f
		return
	}
}
