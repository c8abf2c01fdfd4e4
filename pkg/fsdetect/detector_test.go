package fsdetect_test

import (
	"errors"

	"github.com/black-desk/fsdetect/internal/tests/fakesource"
	"github.com/black-desk/fsdetect/pkg/dispatch"
	. "github.com/black-desk/fsdetect/pkg/fsdetect"
	"github.com/black-desk/fsdetect/pkg/types"
	. "github.com/black-desk/lib/go/ginkgo-helper"
	. "github.com/black-desk/lib/go/gomega-helper"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const root = "/tmp/files"

func rec(flags types.Flag, name string) types.RawRecord {
	return types.RawRecord{Flags: flags, Path: root + "/" + name}
}

func at(name string) string {
	if name == "" {
		return ""
	}
	return root + "/" + name
}

type calls struct {
	events []types.Event
}

func (c *calls) handler(verdict types.Verdict, err error) dispatch.Handler {
	return dispatch.HandlerFunc(func(ev types.Event) (types.Verdict, error) {
		c.events = append(c.events, ev)
		return verdict, err
	})
}

var _ = Describe("Detector with a fake watch source", func() {
	var (
		src *fakesource.Source
		d   *Detector
		err error
	)

	BeforeEach(func() {
		src = fakesource.New()
		d, err = New(
			WithRoot(root),
			WithSource(src),
			WithLogger(log),
		)
		Expect(err).To(Succeed())
	})

	Context("registration", func() {
		It("should be chainable.", func() {
			var c calls
			ret, err := d.On("create", c.handler(types.Continue, nil))
			Expect(err).To(Succeed())
			ret, err = ret.On("move", c.handler(types.Continue, nil))
			Expect(err).To(Succeed())
			Expect(ret).To(BeIdenticalTo(d))
		})

		It("should widen the watch additively.", func() {
			_, err = d.OnFunc("create", func(types.Event) (types.Verdict, error) {
				return types.Continue, nil
			})
			Expect(err).To(Succeed())
			_, err = d.OnFunc("delete", func(types.Event) (types.Verdict, error) {
				return types.Continue, nil
			})
			Expect(err).To(Succeed())

			Expect(src.Widened).To(Equal([]types.Flag{
				types.FlagCreate,
				types.FlagCreate | types.FlagDelete,
			}))
		})

		ContextTable("register an unknown name (%s)", func(name string) {
			BeforeEach(func() {
				var c calls
				_, err = d.On("create", c.handler(types.Continue, nil))
				Expect(err).To(Succeed())

				_, err = d.On(name, c.handler(types.Continue, nil))
			})

			It("should fail with an unknown event kind error.", func() {
				Expect(err).To(MatchErr(new(types.ErrUnknownEventKind)))
			})

			It("should not touch the installed watch.", func() {
				Expect(src.Widened).To(Equal([]types.Flag{types.FlagCreate}))
				Expect(src.Installed()).To(Equal(types.FlagCreate))
			})
		},
			ContextTableEntry("rename"),
			ContextTableEntry("moved_to"),
			ContextTableEntry("IN_CREATE"),
		)

		It("should pass the error of the watch source through.", func() {
			boom := errors.New("no such file or directory")
			src.WatchErr = boom

			var c calls
			_, err = d.On("create", c.handler(types.Continue, nil))
			Expect(err).To(MatchErr(boom))
			Expect(src.Installed()).To(BeZero())
		})
	})

	Context("create events", func() {
		var c calls

		BeforeEach(func() {
			c = calls{}
			_, err = d.On("create", c.handler(types.Continue, nil))
			Expect(err).To(Succeed())
		})

		It("should report a created file once with its path.", func() {
			src.Push(rec(types.FlagCreate, "myfile.txt"))
			Expect(d.Poll()).To(Succeed())
			Expect(c.events).To(Equal([]types.Event{{Path: at("myfile.txt")}}))
		})

		It("should report every object created in one batch.", func() {
			src.Push(
				rec(types.FlagCreate|types.FlagIsDir, "sub1"),
				rec(types.FlagCreate|types.FlagIsDir, "sub1/sub2"),
				rec(types.FlagCreate|types.FlagIsDir, "sub1/sub2/sub3"),
				rec(types.FlagCreate, "sub1/sub2/sub3/file.txt"),
			)
			Expect(d.Poll()).To(Succeed())
			Expect(c.events).To(Equal([]types.Event{
				{Path: at("sub1")},
				{Path: at("sub1/sub2")},
				{Path: at("sub1/sub2/sub3")},
				{Path: at("sub1/sub2/sub3/file.txt")},
			}))
		})

		It("should do nothing when no record is available.", func() {
			Expect(d.Poll()).To(Succeed())
			Expect(c.events).To(BeEmpty())
			Expect(src.Polls()).To(Equal(1))
		})
	})

	Context("handler chain", func() {
		var first, second calls

		BeforeEach(func() {
			first = calls{}
			second = calls{}
		})

		DescribeTable("first handler returns a verdict",
			func(verdict types.Verdict, expectSecond int) {
				_, err = d.On("create", first.handler(verdict, nil))
				Expect(err).To(Succeed())
				_, err = d.On("create", second.handler(types.Continue, nil))
				Expect(err).To(Succeed())

				src.Push(rec(types.FlagCreate, "myfile.txt"))
				Expect(d.Poll()).To(Succeed())

				Expect(first.events).To(HaveLen(1))
				Expect(second.events).To(HaveLen(expectSecond))
			},
			Entry("stop", types.Stop, 0),
			Entry("continue", types.Continue, 1),
		)

		Context("the first handler fails", func() {
			var boom error

			BeforeEach(func() {
				boom = errors.New("boom")
				_, err = d.On("create", first.handler(types.Continue, boom))
				Expect(err).To(Succeed())
				_, err = d.On("create", second.handler(types.Continue, nil))
				Expect(err).To(Succeed())

				src.Push(
					rec(types.FlagCreate, "a.txt"),
					rec(types.FlagCreate, "b.txt"),
				)
				err = d.Poll()
			})

			It("should return the failure to the caller.", func() {
				Expect(err).To(MatchErr(boom))
				Expect(err).To(MatchErr(new(dispatch.HandlerFailure)))
			})

			It("should abort the chain and the batch.", func() {
				Expect(first.events).To(Equal([]types.Event{{Path: at("a.txt")}}))
				Expect(second.events).To(BeEmpty())
			})

			It("should go on with the next batch.", func() {
				src.Push(rec(types.FlagCreate, "c.txt"))
				Expect(d.Poll()).To(MatchErr(boom))
				Expect(first.events).To(HaveLen(2))
			})
		})
	})

	Context("move events", func() {
		var (
			moves   calls
			creates calls
		)

		BeforeEach(func() {
			moves = calls{}
			creates = calls{}
			_, err = d.On("move", moves.handler(types.Continue, nil))
			Expect(err).To(Succeed())
			_, err = d.On("create", creates.handler(types.Continue, nil))
			Expect(err).To(Succeed())
		})

		It("should pair a rename inside the tree.", func() {
			src.Push(
				rec(types.FlagMovedFrom, "old.txt"),
				rec(types.FlagMovedTo, "new.txt"),
			)
			Expect(d.Poll()).To(Succeed())
			Expect(moves.events).To(Equal([]types.Event{
				{Path: at("new.txt"), SrcPath: at("old.txt")},
			}))
		})

		It("should pair a rename split over two polls.", func() {
			src.Push(rec(types.FlagMovedFrom, "old.txt"))
			src.Push(rec(types.FlagMovedTo, "new.txt"))
			Expect(d.Poll()).To(Succeed())
			Expect(moves.events).To(BeEmpty())
			Expect(d.Poll()).To(Succeed())
			Expect(moves.events).To(Equal([]types.Event{
				{Path: at("new.txt"), SrcPath: at("old.txt")},
			}))
		})

		It("should report a move into the tree without origin.", func() {
			src.Push(rec(types.FlagMovedTo, "new.txt"))
			Expect(d.Poll()).To(Succeed())
			Expect(moves.events).To(Equal([]types.Event{{Path: at("new.txt")}}))
		})

		It("should report a move out of the tree after the next record.", func() {
			src.Push(rec(types.FlagMovedFrom, "old.txt"))
			Expect(d.Poll()).To(Succeed())
			Expect(moves.events).To(BeEmpty())

			src.Push(rec(types.FlagCreate, "throwaway"))
			Expect(d.Poll()).To(Succeed())
			Expect(moves.events).To(Equal([]types.Event{{SrcPath: at("old.txt")}}))
			Expect(creates.events).To(Equal([]types.Event{{Path: at("throwaway")}}))
		})

		It("should report two moves out of the tree in order.", func() {
			src.Push(
				rec(types.FlagMovedFrom, "old1"),
				rec(types.FlagMovedFrom, "old2"),
				rec(types.FlagCreate, "throwaway"),
			)
			Expect(d.Poll()).To(Succeed())
			Expect(moves.events).To(Equal([]types.Event{
				{SrcPath: at("old1")},
				{SrcPath: at("old2")},
			}))
		})

		It("should report a held move-out on flush.", func() {
			src.Push(rec(types.FlagMovedFrom, "old.txt"))
			Expect(d.Poll()).To(Succeed())
			Expect(d.Flush()).To(Succeed())
			Expect(moves.events).To(Equal([]types.Event{{SrcPath: at("old.txt")}}))
		})

		It("should keep state processed before a failure.", func() {
			boom := errors.New("boom")
			_, err = d.On("move", dispatch.HandlerFunc(
				func(ev types.Event) (types.Verdict, error) {
					if ev.Path == "" {
						return types.Continue, boom
					}
					return types.Continue, nil
				},
			))
			Expect(err).To(Succeed())

			src.Push(
				rec(types.FlagMovedFrom, "old.txt"),
				rec(types.FlagCreate, "a.txt"),
				rec(types.FlagCreate, "b.txt"),
			)
			Expect(d.Poll()).To(MatchErr(boom))
			Expect(moves.events).To(Equal([]types.Event{{SrcPath: at("old.txt")}}))
			Expect(creates.events).To(BeEmpty())

			// The flushed move-out is not replayed.
			src.Push(rec(types.FlagCreate, "c.txt"))
			Expect(d.Poll()).To(Succeed())
			Expect(moves.events).To(HaveLen(1))
			Expect(creates.events).To(Equal([]types.Event{{Path: at("c.txt")}}))
		})
	})

	Context("hidden paths", func() {
		var (
			moves   calls
			creates calls
		)

		BeforeEach(func() {
			moves = calls{}
			creates = calls{}
			_, err = d.On("create", creates.handler(types.Continue, nil))
			Expect(err).To(Succeed())
			_, err = d.On("move", moves.handler(types.Continue, nil))
			Expect(err).To(Succeed())
		})

		It("should ignore a hidden directory and its content.", func() {
			src.Push(
				rec(types.FlagCreate|types.FlagIsDir, ".hidden"),
				rec(types.FlagCreate|types.FlagIsDir, ".hidden/sub"),
				rec(types.FlagCreate, ".hidden/sub/file.txt"),
			)
			Expect(d.Poll()).To(Succeed())
			Expect(creates.events).To(BeEmpty())
		})

		It("should not let a hidden record flush a held move-out.", func() {
			src.Push(
				rec(types.FlagMovedFrom, "old.txt"),
				rec(types.FlagCreate, ".swp"),
				rec(types.FlagMovedTo, "new.txt"),
			)
			Expect(d.Poll()).To(Succeed())
			Expect(moves.events).To(Equal([]types.Event{
				{Path: at("new.txt"), SrcPath: at("old.txt")},
			}))
		})

		It("should report a hidden file renamed to a visible name without origin.", func() {
			move := rec(types.FlagMovedTo, "visible.txt")
			move.SecondaryPath = at(".hidden.txt")
			src.Push(rec(types.FlagMovedFrom, ".hidden.txt"), move)
			Expect(d.Poll()).To(Succeed())
			Expect(moves.events).To(Equal([]types.Event{{Path: at("visible.txt")}}))
		})

		It("should report a visible file renamed to a hidden name as moved out.", func() {
			src.Push(
				rec(types.FlagCreate, "a.txt"),
				rec(types.FlagMovedFrom, "a.txt"),
				rec(types.FlagMovedTo, ".a.txt"),
				rec(types.FlagCreate, "b.txt"),
			)
			Expect(d.Poll()).To(Succeed())
			Expect(creates.events).To(Equal([]types.Event{
				{Path: at("a.txt")}, {Path: at("b.txt")},
			}))
			Expect(moves.events).To(Equal([]types.Event{{SrcPath: at("a.txt")}}))
		})
	})

	Context("raw kinds", func() {
		It("should pass through raw kinds by name.", func() {
			var c calls
			_, err = d.On("close_write", c.handler(types.Continue, nil))
			Expect(err).To(Succeed())

			src.Push(rec(types.FlagCloseWrite, "a.txt"))
			Expect(d.Poll()).To(Succeed())
			Expect(c.events).To(Equal([]types.Event{{Path: at("a.txt")}}))
		})
	})

	It("should return errors of the watch source unchanged.", func() {
		boom := errors.New("watch removed")
		src.PushErr(boom)
		Expect(d.Poll()).To(BeIdenticalTo(boom))
	})

	DescribeTable("create with invalid options",
		func(opts []Opt, expectErr error) {
			_, err := New(opts...)
			Expect(err).To(MatchErr(expectErr))
		},
		Entry("no root", []Opt{WithSource(fakesource.New())}, ErrRootMissing),
		Entry("empty root", []Opt{WithRoot("")}, ErrRootMissing),
		Entry("nil source", []Opt{WithRoot(root), WithSource(nil)}, ErrSourceMissing),
		Entry("zero timeout", []Opt{WithRoot(root), WithPollTimeout(0)}, ErrInvalidPollTimeout),
		Entry("empty hidden prefix", []Opt{WithRoot(root), WithHiddenPrefix("")}, ErrHiddenPrefixMissing),
	)
})
