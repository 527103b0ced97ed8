package cadence

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v4"
)

// MsgPackDataConverter is a cadence DataConverter carrying workflow
// and activity payloads as msgpack instead of the default json.
type MsgPackDataConverter struct{}

func NewMsgPackDataConverter() *MsgPackDataConverter {
	return &MsgPackDataConverter{}
}

// ToData encodes the argument list into a single msgpack stream.
func (c *MsgPackDataConverter) ToData(value ...interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for i, obj := range value {
		if err := enc.Encode(obj); err != nil {
			return nil, fmt.Errorf(
				"unable to encode argument: %d, %v, with msgpack error: %v", i, reflect.TypeOf(obj), err)
		}
	}
	return buf.Bytes(), nil
}

// FromData decodes the stream back into the given pointers, in the
// order ToData wrote them.
func (c *MsgPackDataConverter) FromData(input []byte, valuePtr ...interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewBuffer(input))
	for i, obj := range valuePtr {
		if err := dec.Decode(obj); err != nil {
			return fmt.Errorf(
				"unable to decode argument: %d, %v, with msgpack error: %v", i, reflect.TypeOf(obj), err)
		}
	}
	return nil
}
