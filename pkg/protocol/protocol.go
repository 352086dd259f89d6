// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package protocol defines the messages exchanged between a document
// bridge and the embedded editor surface. Every message is a JSON object
// identified by its "type" tag.
package protocol

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// Type is the tag identifying a message variant
type Type string

const (
	// TypeReady is sent by the surface once the widget finished initializing
	TypeReady Type = "ready"
	// TypeUpdate carries the full document text, in both directions
	TypeUpdate Type = "update"
	// TypeUploadImage is sent by the surface to request an image upload
	TypeUploadImage Type = "uploadImage"
	// TypeSwitchEditor asks the host to reopen the document with its default editor
	TypeSwitchEditor Type = "switchEditor"
	// TypeUploadSuccess answers an upload request with the uploaded image URL
	TypeUploadSuccess Type = "uploadSuccess"
	// TypeUploadError answers an upload request with a failure
	TypeUploadError Type = "uploadError"
)

// ErrUnknownMessage is returned by Decode for messages with an unsupported type tag
var ErrUnknownMessage = errors.New("unknown message type")

// Message is implemented by every message variant. The set of variants is closed.
type Message interface {
	Type() Type
	message()
}

// Ready signals that the surface can receive the document content
type Ready struct{}

// Update carries the complete markdown content of the document
type Update struct {
	Content string `json:"content"`
}

// UploadImage is an upload request issued by the surface
type UploadImage struct {
	FileName string   `json:"fileName"`
	FileData FileData `json:"fileData"`
	ID       ID       `json:"id"`
}

// SwitchEditor requests opening the document with the default editor
type SwitchEditor struct{}

// UploadSuccess reports the URL of an uploaded image to the surface
type UploadSuccess struct {
	ID           ID     `json:"id"`
	URL          string `json:"url"`
	OriginalName string `json:"originalName"`
}

// UploadError reports a failed upload to the surface
type UploadError struct {
	ID    ID     `json:"id"`
	Error string `json:"error"`
}

func (Ready) Type() Type         { return TypeReady }
func (Update) Type() Type        { return TypeUpdate }
func (UploadImage) Type() Type   { return TypeUploadImage }
func (SwitchEditor) Type() Type  { return TypeSwitchEditor }
func (UploadSuccess) Type() Type { return TypeUploadSuccess }
func (UploadError) Type() Type   { return TypeUploadError }

func (Ready) message()         {}
func (Update) message()        {}
func (UploadImage) message()   {}
func (SwitchEditor) message()  {}
func (UploadSuccess) message() {}
func (UploadError) message()   {}

// ID correlates an upload request with its response. It keeps the raw
// JSON value (number or string) so the surface receives back exactly what
// it sent.
type ID string

// UnmarshalJSON implements json.Unmarshaler
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("invalid message id %s: %w", data, err)
		}
	}
	*id = ID(data)
	return nil
}

// MarshalJSON implements json.Marshaler
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return []byte(id), nil
}

// FileData is the binary payload of an upload request. The surface sends
// it as an array of byte values; a base64 encoded string is accepted too.
type FileData []byte

// UnmarshalJSON implements json.Unmarshaler
func (f *FileData) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = nil
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return fmt.Errorf("invalid base64 file data: %w", err)
		}
		*f = b
		return nil
	}
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("invalid file data: %w", err)
	}
	b := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return fmt.Errorf("invalid file data: byte value %d at %d out of range", v, i)
		}
		b[i] = byte(v)
	}
	*f = b
	return nil
}

type envelope struct {
	Type Type `json:"type"`
}

// Decode parses a message received from the surface or the bridge
func Decode(data []byte) (Message, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("malformed message: %w", err)
	}
	var msg Message
	switch env.Type {
	case TypeReady:
		return Ready{}, nil
	case TypeSwitchEditor:
		return SwitchEditor{}, nil
	case TypeUpdate:
		m := Update{}
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("malformed %s message: %w", env.Type, err)
		}
		msg = m
	case TypeUploadImage:
		m := UploadImage{}
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("malformed %s message: %w", env.Type, err)
		}
		msg = m
	case TypeUploadSuccess:
		m := UploadSuccess{}
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("malformed %s message: %w", env.Type, err)
		}
		msg = m
	case TypeUploadError:
		m := UploadError{}
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("malformed %s message: %w", env.Type, err)
		}
		msg = m
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, env.Type)
	}
	return msg, nil
}

// Encode serializes a message together with its type tag
func Encode(msg Message) ([]byte, error) {
	if msg == nil {
		return nil, errors.New("cannot encode nil message")
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err = json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if fields["type"], err = json.Marshal(msg.Type()); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}
