// Package frame lets an embedded frame report its content size to the host that embeds it.
//
// The embedded side posts a size-change message to its parent whenever its size
// changes. The host trusts a message only when it comes from the frame it embeds
// and has the expected shape; everything else is dropped. There is no handshake,
// acknowledgement or retry: the last message wins.
package frame

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/young1lin/pillrow/internal/observe"
)

// TypeFrameSizeChange identifies a size-change message on the wire.
const TypeFrameSizeChange = "Surfer_frameSizeChange"

var (
	// ErrUnknownType is returned for messages of another type.
	ErrUnknownType = errors.New("frame: unknown message type")
	// ErrMissingField is returned when width or height is absent.
	ErrMissingField = errors.New("frame: missing field")
)

// Message is a size-change report.
type Message struct {
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// NewSizeChange builds the message reporting size.
func NewSizeChange(size observe.Size) Message {
	return Message{Type: TypeFrameSizeChange, Width: size.Width, Height: size.Height}
}

// Size returns the reported size.
func (m Message) Size() observe.Size {
	return observe.Size{Width: m.Width, Height: m.Height}
}

// Marshal encodes m in wire format.
func (m Message) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

// wireMessage distinguishes absent fields from zero values.
type wireMessage struct {
	Type   *string `json:"type"`
	Width  *int    `json:"width"`
	Height *int    `json:"height"`
}

// Decode parses and validates a size-change message.
func Decode(data []byte) (Message, error) {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return Message{}, fmt.Errorf("frame: decode message: %w", err)
	}
	if w.Type == nil || *w.Type != TypeFrameSizeChange {
		return Message{}, ErrUnknownType
	}
	if w.Width == nil {
		return Message{}, fmt.Errorf("%w: width", ErrMissingField)
	}
	if w.Height == nil {
		return Message{}, fmt.Errorf("%w: height", ErrMissingField)
	}
	return Message{Type: *w.Type, Width: *w.Width, Height: *w.Height}, nil
}
