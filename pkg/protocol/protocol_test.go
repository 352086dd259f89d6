// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package protocol_test

import (
	"encoding/json"
	"errors"

	"github.com/vditor-wsl/vditor-bridge/pkg/protocol"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Protocol", func() {
	Describe("Decode", func() {
		DescribeTable("surface messages",
			func(raw string, want protocol.Message) {
				got, err := protocol.Decode([]byte(raw))
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(want))
			},
			Entry("ready", `{"type":"ready"}`, protocol.Ready{}),
			Entry("switch editor", `{"type":"switchEditor"}`, protocol.SwitchEditor{}),
			Entry("update", `{"type":"update","content":"# Title\n"}`, protocol.Update{Content: "# Title\n"}),
			Entry("upload with byte array", `{"type":"uploadImage","fileName":"pic.png","fileData":[137,80,78,71],"id":1700000000000}`,
				protocol.UploadImage{FileName: "pic.png", FileData: protocol.FileData{137, 80, 78, 71}, ID: protocol.ID("1700000000000")}),
			Entry("upload with base64 data", `{"type":"uploadImage","fileName":"a.gif","fileData":"R0lG","id":"x1"}`,
				protocol.UploadImage{FileName: "a.gif", FileData: protocol.FileData("GIF"), ID: protocol.ID(`"x1"`)}),
		)

		It("rejects unknown types", func() {
			_, err := protocol.Decode([]byte(`{"type":"bogus"}`))
			Expect(errors.Is(err, protocol.ErrUnknownMessage)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("bogus"))
		})

		It("rejects malformed json", func() {
			_, err := protocol.Decode([]byte(`{"type":`))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("malformed message"))
		})

		It("rejects out of range byte values", func() {
			_, err := protocol.Decode([]byte(`{"type":"uploadImage","fileName":"a.png","fileData":[256],"id":1}`))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("out of range"))
		})
	})

	Describe("Encode", func() {
		It("tags upload successes and keeps numeric ids", func() {
			b, err := protocol.Encode(protocol.UploadSuccess{ID: protocol.ID("42"), URL: "https://img.example.com/a.png", OriginalName: "pic"})
			Expect(err).NotTo(HaveOccurred())
			Expect(b).To(MatchJSON(`{"type":"uploadSuccess","id":42,"url":"https://img.example.com/a.png","originalName":"pic"}`))
		})

		It("tags upload errors and keeps string ids", func() {
			b, err := protocol.Encode(protocol.UploadError{ID: protocol.ID(`"abc"`), Error: "boom"})
			Expect(err).NotTo(HaveOccurred())
			Expect(b).To(MatchJSON(`{"type":"uploadError","id":"abc","error":"boom"}`))
		})

		It("tags updates", func() {
			b, err := protocol.Encode(protocol.Update{Content: "text"})
			Expect(err).NotTo(HaveOccurred())
			Expect(b).To(MatchJSON(`{"type":"update","content":"text"}`))
		})

		It("encodes empty ids as null", func() {
			b, err := protocol.Encode(protocol.UploadError{Error: "webview error"})
			Expect(err).NotTo(HaveOccurred())
			var fields map[string]interface{}
			Expect(json.Unmarshal(b, &fields)).To(Succeed())
			Expect(fields).To(HaveKeyWithValue("id", BeNil()))
		})

		It("fails on nil", func() {
			_, err := protocol.Encode(nil)
			Expect(err).To(HaveOccurred())
		})
	})
})
