// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package upload_test

import (
	"errors"

	"github.com/vditor-wsl/vditor-bridge/pkg/upload"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Output parsing", func() {
	DescribeTable("ParseURL",
		func(output string, want string) {
			got, err := upload.ParseURL(output)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("single url on the last line",
			"[PicGo INFO]: Before transform\n[PicGo SUCCESS]: \nhttps://img.example.com/2026/a.png\n",
			"https://img.example.com/2026/a.png"),
		Entry("url surrounded by text on the last line",
			"uploaded: https://cdn.example.com/x.png (200)",
			"https://cdn.example.com/x.png"),
		Entry("trailing blank lines",
			"https://cdn.example.com/y.png\r\n\r\n\n",
			"https://cdn.example.com/y.png"),
		Entry("url only on an earlier line",
			"[PicGo SUCCESS]: https://cdn.example.com/early.png\n[PicGo INFO]: done\n",
			"https://cdn.example.com/early.png"),
		Entry("last line wins over earlier lines",
			"https://cdn.example.com/first.png\nhttps://cdn.example.com/second.png",
			"https://cdn.example.com/second.png"),
		Entry("non http scheme",
			"s3://bucket/key.png",
			"s3://bucket/key.png"),
	)

	It("fails with the original output when there is no url", func() {
		output := "[PicGo ERROR]: no uploader configured\n"
		_, err := upload.ParseURL(output)
		Expect(errors.Is(err, upload.ErrUnparsableOutput)).To(BeTrue())
		var perr *upload.UnparsableOutputError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Output).To(Equal(output))
		Expect(err.Error()).To(ContainSubstring("no uploader configured"))
	})

	It("fails on empty output", func() {
		_, err := upload.ParseURL("")
		Expect(errors.Is(err, upload.ErrUnparsableOutput)).To(BeTrue())
	})

	Describe("TempFileName", func() {
		It("is the md5 digest followed by the original extension", func() {
			Expect(upload.TempFileName("pic.PNG", []byte("0123456789"))).To(Equal("781e5e245d69b566979b86e28d23f2c7.PNG"))
		})
		It("is stable for identical content", func() {
			data := []byte{1, 2, 3, 4}
			Expect(upload.TempFileName("a.jpg", data)).To(Equal(upload.TempFileName("b.jpg", data)))
		})
		It("has no extension when the name has none", func() {
			Expect(upload.TempFileName("clipboard", nil)).To(Equal("d41d8cd98f00b204e9800998ecf8427e"))
		})
	})

	Describe("DisplayName", func() {
		It("drops directory and extension", func() {
			Expect(upload.DisplayName("shots/screen shot.final.png")).To(Equal("screen shot.final"))
			Expect(upload.DisplayName("pic")).To(Equal("pic"))
		})
	})
})
