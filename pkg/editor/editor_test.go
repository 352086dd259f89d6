// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package editor_test

import (
	"context"
	"errors"

	"github.com/vditor-wsl/vditor-bridge/pkg/bridge"
	"github.com/vditor-wsl/vditor-bridge/pkg/bridge/bridgefakes"
	"github.com/vditor-wsl/vditor-bridge/pkg/editor"
	"github.com/vditor-wsl/vditor-bridge/pkg/host"
	"github.com/vditor-wsl/vditor-bridge/pkg/host/hostfakes"
	"github.com/vditor-wsl/vditor-bridge/pkg/protocol"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// closedSurface is a surface that is closed right after it sent msgs
type closedSurface struct {
	msgs   []protocol.Message
	posted []protocol.Message
}

func (s *closedSurface) Receive(context.Context) (protocol.Message, error) {
	if len(s.msgs) == 0 {
		return nil, bridge.ErrSurfaceClosed
	}
	msg := s.msgs[0]
	s.msgs = s.msgs[1:]
	return msg, nil
}

func (s *closedSurface) Post(msg protocol.Message) error {
	s.posted = append(s.posted, msg)
	return nil
}

var _ = Describe("Registry", func() {
	var (
		registry *editor.Registry
		doc      *hostfakes.FakeDocument
	)

	BeforeEach(func() {
		registry = editor.NewRegistry()
		doc = &hostfakes.FakeDocument{}
		doc.URIReturns("file:///tmp/a.md")
		doc.TextReturns("content")
	})

	It("dispatches to the registered provider", func() {
		var resolved host.Document
		_, err := registry.RegisterCustomEditorProvider("test.view", editor.ProviderFunc(func(ctx context.Context, d host.Document, s bridge.Surface) error {
			resolved = d
			return nil
		}), editor.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(registry.Open(context.TODO(), "test.view", doc, &closedSurface{})).To(Succeed())
		Expect(resolved).To(BeIdenticalTo(doc))
	})

	It("rejects duplicate registrations", func() {
		p := editor.ProviderFunc(func(context.Context, host.Document, bridge.Surface) error { return nil })
		_, err := registry.RegisterCustomEditorProvider("test.view", p, editor.Options{})
		Expect(err).NotTo(HaveOccurred())
		_, err = registry.RegisterCustomEditorProvider("test.view", p, editor.Options{})
		Expect(err).To(HaveOccurred())
	})

	It("fails for unknown view types", func() {
		err := registry.Open(context.TODO(), "missing", doc, &closedSurface{})
		Expect(errors.Is(err, editor.ErrUnknownViewType)).To(BeTrue())
	})

	It("unregisters on dispose", func() {
		p := editor.ProviderFunc(func(context.Context, host.Document, bridge.Surface) error { return nil })
		d, err := registry.RegisterCustomEditorProvider("test.view", p, editor.Options{EnableFindWidget: true})
		Expect(err).NotTo(HaveOccurred())
		_, ok := registry.Options("test.view")
		Expect(ok).To(BeTrue())
		d.Dispose()
		_, ok = registry.Options("test.view")
		Expect(ok).To(BeFalse())
	})

	Describe("Activate", func() {
		var (
			workspace *hostfakes.FakeWorkspace
			notifier  *hostfakes.FakeNotifier
			uploader  *bridgefakes.FakeUploader
		)

		BeforeEach(func() {
			workspace = &hostfakes.FakeWorkspace{}
			workspace.OnDidChangeTextDocumentReturns(host.DisposeFunc(func() {}))
			notifier = &hostfakes.FakeNotifier{}
			uploader = &bridgefakes.FakeUploader{}
			_, err := editor.Activate(registry, workspace, uploader, notifier)
			Expect(err).NotTo(HaveOccurred())
		})

		It("requests the find widget and retained context", func() {
			options, ok := registry.Options(editor.ViewType)
			Expect(ok).To(BeTrue())
			Expect(options).To(Equal(editor.Options{EnableFindWidget: true, RetainContextWhenHidden: true}))
		})

		It("bridges opened documents", func() {
			surface := &closedSurface{msgs: []protocol.Message{protocol.Ready{}}}
			Expect(registry.Open(context.TODO(), editor.ViewType, doc, surface)).To(Succeed())
			Expect(surface.posted).To(ConsistOf(protocol.Update{Content: "content"}))
			Expect(workspace.OnDidChangeTextDocumentCallCount()).To(Equal(1))
		})

		It("cannot be activated twice", func() {
			_, err := editor.Activate(registry, workspace, uploader, notifier)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ActivateWithOptions", func() {
		It("registers the given view options", func() {
			options := editor.Options{EnableFindWidget: false, RetainContextWhenHidden: true}
			_, err := editor.ActivateWithOptions(registry, &hostfakes.FakeWorkspace{}, &bridgefakes.FakeUploader{}, &hostfakes.FakeNotifier{}, options)
			Expect(err).NotTo(HaveOccurred())
			registered, ok := registry.Options(editor.ViewType)
			Expect(ok).To(BeTrue())
			Expect(registered).To(Equal(options))
		})
	})
})
