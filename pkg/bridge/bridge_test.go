// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package bridge_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vditor-wsl/vditor-bridge/pkg/bridge"
	"github.com/vditor-wsl/vditor-bridge/pkg/bridge/bridgefakes"
	"github.com/vditor-wsl/vditor-bridge/pkg/host"
	"github.com/vditor-wsl/vditor-bridge/pkg/host/hostfakes"
	"github.com/vditor-wsl/vditor-bridge/pkg/protocol"
	"github.com/vditor-wsl/vditor-bridge/pkg/upload"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const docURI = "file:///home/user/notes/todo.md"

var _ = Describe("Bridge", func() {
	var (
		ctx       context.Context
		cancel    context.CancelFunc
		doc       *hostfakes.FakeDocument
		workspace *hostfakes.FakeWorkspace
		notifier  *hostfakes.FakeNotifier
		uploader  *bridgefakes.FakeUploader
		surface   *chanSurface
		b         *bridge.Bridge

		mu        sync.Mutex
		listener  func(host.ChangeEvent)
		disposals int
		done      chan error
		stopped   chan struct{}
	)

	notify := func(e host.ChangeEvent) {
		mu.Lock()
		l := listener
		mu.Unlock()
		Expect(l).NotTo(BeNil())
		l(e)
	}
	send := func(msg protocol.Message) {
		Eventually(surface.in).Should(BeSent(msg))
	}
	closeSurface := func() {
		close(surface.in)
		Eventually(done).Should(Receive(BeNil()))
	}

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		doc = &hostfakes.FakeDocument{}
		doc.URIReturns(docURI)
		doc.FileNameReturns("/home/user/notes/todo.md")
		doc.TextReturns("# Todo\n")
		workspace = &hostfakes.FakeWorkspace{}
		workspace.OnDidChangeTextDocumentCalls(func(l func(host.ChangeEvent)) host.Disposable {
			mu.Lock()
			defer mu.Unlock()
			listener = l
			return host.DisposeFunc(func() {
				mu.Lock()
				defer mu.Unlock()
				disposals++
			})
		})
		notifier = &hostfakes.FakeNotifier{}
		notifier.WithProgressCalls(func(ctx context.Context, title string, task func(context.Context) error) error {
			return task(ctx)
		})
		uploader = &bridgefakes.FakeUploader{}
		surface = newChanSurface()
		mu.Lock()
		listener = nil
		disposals = 0
		mu.Unlock()
	})

	JustBeforeEach(func() {
		b = bridge.New(doc, workspace, surface, uploader, notifier)
		// the goroutine must not read the suite variables, they are
		// reassigned by the next spec
		d, s, bb, c := make(chan error, 1), make(chan struct{}), b, ctx
		done, stopped = d, s
		go func() {
			defer close(s)
			d <- bb.Run(c)
		}()
		Eventually(func() int { return workspace.OnDidChangeTextDocumentCallCount() }).Should(Equal(1))
	})

	AfterEach(func() {
		cancel()
		Eventually(stopped).Should(BeClosed())
	})

	It("pushes the document text when the surface is ready", func() {
		send(protocol.Ready{})
		Eventually(surface.Posted).Should(ConsistOf(protocol.Update{Content: "# Todo\n"}))
	})

	Describe("surface updates", func() {
		BeforeEach(func() {
			workspace.ApplyEditCalls(func(ctx context.Context, edit host.FullReplace) error {
				// hosts notify synchronously while applying the edit
				notify(host.ChangeEvent{Document: doc, URI: edit.URI, Origin: edit.Origin})
				notify(host.ChangeEvent{Document: doc, URI: edit.URI})
				return nil
			})
		})

		It("replaces the whole document exactly once without echo", func() {
			send(protocol.Update{Content: "# Done\n"})
			closeSurface()
			Expect(workspace.ApplyEditCallCount()).To(Equal(1))
			_, edit := workspace.ApplyEditArgsForCall(0)
			Expect(edit).To(Equal(host.FullReplace{URI: docURI, Text: "# Done\n", Origin: b.ID()}))
			Expect(surface.Posted()).To(BeEmpty())
		})

		It("round trips pushed content", func() {
			send(protocol.Ready{})
			Eventually(surface.Posted).Should(HaveLen(1))
			send(protocol.Update{Content: "# Todo\n"})
			closeSurface()
			Expect(workspace.ApplyEditCallCount()).To(Equal(1))
			_, edit := workspace.ApplyEditArgsForCall(0)
			Expect(edit.Text).To(Equal("# Todo\n"))
			Expect(surface.Posted()).To(HaveLen(1))
		})
	})

	Describe("failed updates", func() {
		BeforeEach(func() {
			workspace.ApplyEditReturns(errors.New("disk full"))
		})

		It("reports the failure and keeps echoing external changes", func() {
			send(protocol.Update{Content: "lost"})
			Eventually(notifier.ShowErrorCallCount).Should(Equal(1))
			Expect(notifier.ShowErrorArgsForCall(0)).To(ContainSubstring("disk full"))

			notify(host.ChangeEvent{Document: doc, URI: docURI})
			Expect(surface.Posted()).To(ConsistOf(protocol.Update{Content: "# Todo\n"}))
		})
	})

	Describe("external changes", func() {
		It("pushes exactly one update with the full text", func() {
			doc.TextReturns("# Changed on disk\n")
			notify(host.ChangeEvent{Document: doc, URI: docURI})
			Expect(surface.Posted()).To(ConsistOf(protocol.Update{Content: "# Changed on disk\n"}))
		})

		It("ignores other documents", func() {
			notify(host.ChangeEvent{URI: "file:///home/user/notes/other.md"})
			Expect(surface.Posted()).To(BeEmpty())
		})

		It("ignores changes tagged with its own origin", func() {
			notify(host.ChangeEvent{Document: doc, URI: docURI, Origin: b.ID()})
			Expect(surface.Posted()).To(BeEmpty())
		})

		It("pushes changes made by other bridges", func() {
			notify(host.ChangeEvent{Document: doc, URI: docURI, Origin: "another-view"})
			Expect(surface.Posted()).To(HaveLen(1))
		})
	})

	Describe("uploads", func() {
		var data []byte

		BeforeEach(func() {
			data = []byte("0123456789")
		})

		Context("succeeding", func() {
			BeforeEach(func() {
				uploader.UploadReturns("https://img.example.com/pic.png", nil)
			})

			It("answers with the url and the display name", func() {
				send(protocol.UploadImage{FileName: "pic.PNG", FileData: data, ID: protocol.ID("7")})
				Eventually(surface.Posted).Should(ConsistOf(protocol.UploadSuccess{
					ID:           protocol.ID("7"),
					URL:          "https://img.example.com/pic.png",
					OriginalName: "pic",
				}))
				Expect(uploader.UploadCallCount()).To(Equal(1))
				_, fileName, payload, dir := uploader.UploadArgsForCall(0)
				Expect(fileName).To(Equal("pic.PNG"))
				Expect(payload).To(Equal(data))
				Expect(dir).To(Equal("/home/user/notes"))
				Eventually(notifier.ShowInformationCallCount).Should(Equal(1))
				Expect(notifier.ShowInformationArgsForCall(0)).To(ContainSubstring("781e5e245d69b566979b86e28d23f2c7.PNG"))
				_, title, _ := notifier.WithProgressArgsForCall(0)
				Expect(title).To(Equal("Uploading image..."))
			})
		})

		Context("failing", func() {
			BeforeEach(func() {
				uploader.UploadReturns("", errors.New("picgo: command not found"))
			})

			It("answers with the error and notifies the user", func() {
				send(protocol.UploadImage{FileName: "pic.png", FileData: data, ID: protocol.ID("8")})
				Eventually(surface.Posted).Should(ConsistOf(protocol.UploadError{
					ID:    protocol.ID("8"),
					Error: "picgo: command not found",
				}))
				Eventually(notifier.ShowErrorCallCount).Should(Equal(1))
				Expect(notifier.ShowErrorArgsForCall(0)).To(ContainSubstring("command not found"))
			})

			It("keeps serving the surface", func() {
				send(protocol.UploadImage{FileName: "pic.png", FileData: data, ID: protocol.ID("9")})
				send(protocol.Ready{})
				Eventually(surface.Posted).Should(ContainElement(protocol.Update{Content: "# Todo\n"}))
			})
		})

		Context("untitled documents", func() {
			BeforeEach(func() {
				doc.FileNameReturns("")
				uploader.UploadReturns("https://img.example.com/pic.png", nil)
			})

			It("uploads without working directory", func() {
				send(protocol.UploadImage{FileName: "pic.png", FileData: data, ID: protocol.ID("10")})
				Eventually(uploader.UploadCallCount).Should(Equal(1))
				_, _, _, dir := uploader.UploadArgsForCall(0)
				Expect(dir).To(BeEmpty())
			})
		})

		Context("timing out", func() {
			var dir string

			BeforeEach(func() {
				var err error
				dir, err = os.MkdirTemp("", "bridge-upload")
				Expect(err).NotTo(HaveOccurred())
				script := filepath.Join(dir, "hung-picgo")
				Expect(os.WriteFile(script, []byte("#!/bin/sh\nexec sleep 30\n"), 0755)).To(Succeed())
				doc.FileNameReturns(filepath.Join(dir, "todo.md"))
				uploader.UploadCalls(upload.New(script, 200*time.Millisecond).Upload)
			})

			AfterEach(func() {
				Expect(os.RemoveAll(dir)).To(Succeed())
			})

			It("answers with the timeout error", func() {
				send(protocol.UploadImage{FileName: "pic.png", FileData: data, ID: protocol.ID("12")})
				Eventually(surface.Posted, 10*time.Second).Should(HaveLen(1))
				posted, ok := surface.Posted()[0].(protocol.UploadError)
				Expect(ok).To(BeTrue())
				Expect(posted.ID).To(Equal(protocol.ID("12")))
				Expect(posted.Error).To(ContainSubstring(context.DeadlineExceeded.Error()))
				Eventually(notifier.ShowErrorCallCount).Should(Equal(1))
				_, err := os.Stat(filepath.Join(dir, upload.TempFileName("pic.png", data)))
				Expect(os.IsNotExist(err)).To(BeTrue())
			})
		})

		Context("closing the view", func() {
			BeforeEach(func() {
				uploader.UploadCalls(func(ctx context.Context, _ string, _ []byte, _ string) (string, error) {
					<-ctx.Done()
					return "", ctx.Err()
				})
			})

			It("cancels in-flight uploads", func() {
				send(protocol.UploadImage{FileName: "pic.png", FileData: data, ID: protocol.ID("11")})
				Eventually(uploader.UploadCallCount).Should(Equal(1))
				closeSurface()
				Expect(surface.Posted()).To(BeEmpty())
				Expect(notifier.ShowErrorCallCount()).To(Equal(0))
			})
		})
	})

	It("opens the document with the default editor", func() {
		send(protocol.SwitchEditor{})
		Eventually(workspace.OpenWithCallCount).Should(Equal(1))
		_, uri, viewType := workspace.OpenWithArgsForCall(0)
		Expect(uri).To(Equal(docURI))
		Expect(viewType).To(Equal(host.DefaultViewType))
	})

	It("reports failures to switch editors", func() {
		workspace.OpenWithReturns(errors.New("no opener"))
		send(protocol.SwitchEditor{})
		Eventually(notifier.ShowErrorCallCount).Should(Equal(1))
	})

	It("releases the subscription when the surface closes", func() {
		closeSurface()
		mu.Lock()
		Expect(disposals).To(Equal(1))
		mu.Unlock()
		notify(host.ChangeEvent{Document: doc, URI: docURI})
		Expect(surface.Posted()).To(BeEmpty())
	})

	It("stops when the context is cancelled", func() {
		cancel()
		Eventually(done).Should(Receive(BeNil()))
	})
})
