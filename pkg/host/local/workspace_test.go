// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package local_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vditor-wsl/vditor-bridge/pkg/host"
	"github.com/vditor-wsl/vditor-bridge/pkg/host/local"
	"github.com/vditor-wsl/vditor-bridge/pkg/writers/writersfakes"
	"k8s.io/utils/exec"
	testingexec "k8s.io/utils/exec/testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type recorder struct {
	mu     sync.Mutex
	events []host.ChangeEvent
}

func (r *recorder) record(e host.ChangeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) Events() []host.ChangeEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]host.ChangeEvent{}, r.events...)
}

var _ = Describe("Workspace", func() {
	var (
		ctx  context.Context
		dir  string
		file string
		ws   *local.Workspace
		doc  *local.Document
		rec  *recorder
		err  error
	)

	BeforeEach(func() {
		ctx = context.TODO()
		dir, err = os.MkdirTemp("", "local-test")
		Expect(err).NotTo(HaveOccurred())
		file = filepath.Join(dir, "README.md")
		Expect(os.WriteFile(file, []byte("# Title\n"), 0644)).To(Succeed())
		ws, err = local.NewWorkspace("")
		Expect(err).NotTo(HaveOccurred())
		doc, err = ws.Open(file)
		Expect(err).NotTo(HaveOccurred())
		rec = &recorder{}
	})

	AfterEach(func() {
		Expect(ws.Close()).To(Succeed())
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	Describe("Open", func() {
		It("loads the file", func() {
			Expect(doc.Text()).To(Equal("# Title\n"))
			Expect(doc.FileName()).To(Equal(file))
			Expect(doc.URI()).To(Equal("file://" + filepath.ToSlash(file)))
		})

		It("returns the same document for the same file", func() {
			again, err := ws.Open(filepath.Join(dir, ".", "README.md"))
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(BeIdenticalTo(doc))
			Expect(ws.Documents()).To(HaveLen(1))
		})

		It("fails for missing files", func() {
			_, err := ws.Open(filepath.Join(dir, "missing.md"))
			Expect(err).To(HaveOccurred())
		})

		It("looks documents up by URI", func() {
			found, ok := ws.Document(doc.URI())
			Expect(ok).To(BeTrue())
			Expect(found).To(BeIdenticalTo(doc))
			_, ok = ws.Document("file:///nowhere.md")
			Expect(ok).To(BeFalse())
		})

		It("lists documents ordered by URI", func() {
			other := filepath.Join(dir, "A.md")
			Expect(os.WriteFile(other, nil, 0644)).To(Succeed())
			_, err := ws.Open(other)
			Expect(err).NotTo(HaveOccurred())
			docs := ws.Documents()
			Expect(docs).To(HaveLen(2))
			Expect(docs[0].FileName()).To(Equal(other))
			Expect(docs[1].FileName()).To(Equal(file))
		})
	})

	Describe("ApplyEdit", func() {
		It("persists the text and notifies listeners with the origin", func() {
			ws.OnDidChangeTextDocument(rec.record)
			Expect(ws.ApplyEdit(ctx, host.FullReplace{URI: doc.URI(), Text: "# New\n", Origin: "bridge-1"})).To(Succeed())
			Expect(doc.Text()).To(Equal("# New\n"))
			content, err := os.ReadFile(file)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("# New\n"))
			events := rec.Events()
			Expect(events).To(HaveLen(1))
			Expect(events[0].URI).To(Equal(doc.URI()))
			Expect(events[0].Origin).To(Equal("bridge-1"))
			Expect(events[0].Document.Text()).To(Equal("# New\n"))
		})

		It("does not report its own write as an external change", func() {
			ws.OnDidChangeTextDocument(rec.record)
			Expect(ws.ApplyEdit(ctx, host.FullReplace{URI: doc.URI(), Text: "# New\n", Origin: "bridge-1"})).To(Succeed())
			Consistently(rec.Events, 300*time.Millisecond).Should(HaveLen(1))
		})

		It("fails for unknown documents", func() {
			err := ws.ApplyEdit(ctx, host.FullReplace{URI: "file:///nowhere.md", Text: "x"})
			Expect(errors.Is(err, local.ErrUnknownDocument)).To(BeTrue())
		})

		It("keeps the previous text when the write fails", func() {
			writer := &writersfakes.FakeWriter{}
			writer.WriteReturns(errors.New("disk full"))
			ws.Writer = writer
			ws.OnDidChangeTextDocument(rec.record)
			err := ws.ApplyEdit(ctx, host.FullReplace{URI: doc.URI(), Text: "# New\n"})
			Expect(err).To(MatchError(ContainSubstring("disk full")))
			Expect(doc.Text()).To(Equal("# Title\n"))
			Expect(rec.Events()).To(BeEmpty())
			path, content := writer.WriteArgsForCall(0)
			Expect(path).To(Equal(file))
			Expect(string(content)).To(Equal("# New\n"))
		})

		It("stops notifying disposed listeners", func() {
			sub := ws.OnDidChangeTextDocument(rec.record)
			sub.Dispose()
			Expect(ws.ApplyEdit(ctx, host.FullReplace{URI: doc.URI(), Text: "# New\n"})).To(Succeed())
			Expect(rec.Events()).To(BeEmpty())
		})
	})

	Describe("external changes", func() {
		It("reloads the file and notifies with an empty origin", func() {
			ws.OnDidChangeTextDocument(rec.record)
			Expect(os.WriteFile(file, []byte("# Changed\n"), 0644)).To(Succeed())
			Eventually(rec.Events, 5*time.Second).ShouldNot(BeEmpty())
			e := rec.Events()[0]
			Expect(e.URI).To(Equal(doc.URI()))
			Expect(e.Origin).To(BeEmpty())
			Expect(doc.Text()).To(Equal("# Changed\n"))
		})

		It("ignores other files in the directory", func() {
			ws.OnDidChangeTextDocument(rec.record)
			Expect(os.WriteFile(filepath.Join(dir, "other.md"), []byte("x"), 0644)).To(Succeed())
			Consistently(rec.Events, 300*time.Millisecond).Should(BeEmpty())
		})
	})

	Describe("OpenWith", func() {
		var (
			fakeExec *testingexec.FakeExec
			fakeCmd  *testingexec.FakeCmd
			runErr   error
		)

		BeforeEach(func() {
			runErr = nil
			fakeCmd = &testingexec.FakeCmd{
				RunScript: []testingexec.FakeAction{
					func() ([]byte, []byte, error) { return nil, []byte("no display"), runErr },
				},
			}
			fakeExec = &testingexec.FakeExec{
				CommandScript: []testingexec.FakeCommandAction{
					func(cmd string, args ...string) exec.Cmd {
						return testingexec.InitFakeCmd(fakeCmd, cmd, args...)
					},
				},
			}
			ws.Exec = fakeExec
			ws.OpenCommand = []string{"rundll32", "url.dll,FileProtocolHandler"}
		})

		It("runs the open command with the file", func() {
			Expect(ws.OpenWith(ctx, doc.URI(), host.DefaultViewType)).To(Succeed())
			Expect(fakeExec.CommandCalls).To(Equal(1))
			Expect(fakeCmd.Argv).To(Equal([]string{"rundll32", "url.dll,FileProtocolHandler", file}))
		})

		It("reports failures with the command output", func() {
			runErr = errors.New("exit status 3")
			err := ws.OpenWith(ctx, doc.URI(), host.DefaultViewType)
			Expect(err).To(MatchError(ContainSubstring("no display")))
		})

		It("rejects unknown view types", func() {
			Expect(ws.OpenWith(ctx, doc.URI(), "vditor.editor")).NotTo(Succeed())
			Expect(fakeExec.CommandCalls).To(Equal(0))
		})

		It("rejects unknown documents", func() {
			err := ws.OpenWith(ctx, "file:///nowhere.md", host.DefaultViewType)
			Expect(errors.Is(err, local.ErrUnknownDocument)).To(BeTrue())
		})
	})

	It("closes idempotently", func() {
		Expect(ws.Close()).To(Succeed())
		Expect(ws.Close()).To(Succeed())
	})
})

var _ = Describe("FileURI", func() {
	It("builds file URIs", func() {
		Expect(local.FileURI("/tmp/a b.md")).To(Equal("file:///tmp/a%20b.md"))
	})

	It("prefixes drive letters", func() {
		Expect(local.FileURI("C:/docs/a.md")).To(Equal("file:///C:/docs/a.md"))
	})
})

var _ = Describe("DefaultOpenCommand", func() {
	It("is never empty", func() {
		Expect(local.DefaultOpenCommand()).NotTo(BeEmpty())
	})
})
