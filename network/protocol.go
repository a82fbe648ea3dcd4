package network

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/game"
)

// MessageType identifies the payload of a frame
type MessageType uint8

const (
	MsgHello    MessageType = 0x02 // first frame on connect
	MsgSnapshot MessageType = 0x11 // full run snapshot
	MsgEvents   MessageType = 0x12 // notifications raised since the last frame
)

// HeaderSize precedes every frame: [Type:1][Seq:4]
const HeaderSize = 5

// ErrShortFrame is returned for frames without a complete header
var ErrShortFrame = errors.New("frame shorter than header")

// Hello greets a new viewer
type Hello struct {
	RunID      string `msgpack:"run"`
	Seed       uint64 `msgpack:"seed"`
	TickRate   int    `msgpack:"rate"`
	ViewerID   uint32 `msgpack:"viewer"`
	Broadcast  int    `msgpack:"every"`
	ServerTime int64  `msgpack:"time"`
}

// EventView is the wire form of one notification
type EventView struct {
	Type string `msgpack:"type" json:"type"`
	Tick int64  `msgpack:"tick" json:"tick"`
}

// Frame is one decoded message
type Frame struct {
	Type    MessageType
	Seq     uint32
	Payload []byte
}

// Encode frames a msgpack payload
func Encode(t MessageType, seq uint32, v any) ([]byte, error) {
	body, err := msgpack.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "encode message 0x%02x", uint8(t))
	}
	out := make([]byte, HeaderSize+len(body))
	out[0] = byte(t)
	binary.BigEndian.PutUint32(out[1:5], seq)
	copy(out[HeaderSize:], body)
	return out, nil
}

// Decode splits a frame into header and payload
func Decode(b []byte) (Frame, error) {
	if len(b) < HeaderSize {
		return Frame{}, ErrShortFrame
	}
	return Frame{
		Type:    MessageType(b[0]),
		Seq:     binary.BigEndian.Uint32(b[1:5]),
		Payload: b[HeaderSize:],
	}, nil
}

// Unmarshal decodes the frame payload into v
func (f Frame) Unmarshal(v any) error {
	return errors.Wrap(msgpack.Unmarshal(f.Payload, v), "decode payload")
}

// EncodeSnapshot frames a run snapshot
func EncodeSnapshot(seq uint32, s *game.Snapshot) ([]byte, error) {
	return Encode(MsgSnapshot, seq, s)
}

// EncodeEvents frames a batch of notifications by name
func EncodeEvents(seq uint32, evs []event.GameEvent) ([]byte, error) {
	views := make([]EventView, 0, len(evs))
	for _, ev := range evs {
		views = append(views, EventView{Type: ev.Type.String(), Tick: ev.Tick})
	}
	return Encode(MsgEvents, seq, views)
}
