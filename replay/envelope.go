package replay

import (
	"fmt"

	"github.com/algorand/go-codec/codec"
)

// envelopeHandle decodes the MessagePack envelope. Unknown keys are ignored
// so newer game versions still parse.
var envelopeHandle *codec.MsgpackHandle

func init() {
	envelopeHandle = new(codec.MsgpackHandle)
	envelopeHandle.WriteExt = true
}

// Replay is the outer envelope of a replay file
type Replay struct {
	TypeID    int32  `codec:"typeId"`
	Version   int32  `codec:"version"`
	UpdatedAt string `codec:"updatedAt"`
	Data      Data   `codec:"data"`
}

// Data is the run a replay belongs to
type Data struct {
	Level        string    `codec:"level"`
	Player       string    `codec:"player"`
	Score        float64   `codec:"score"`
	Cosmetics    Cosmetics `codec:"cosmetics"`
	ReplayBuffer []byte    `codec:"replayBuffer"`
}

// Cosmetics are the player's equipped cosmetic items
type Cosmetics struct {
	Skin    string `codec:"skin"`
	Trail   string `codec:"trail"`
	Respawn string `codec:"respawn"`
	Hat     string `codec:"hat"`
	Blast   string `codec:"blast"`
}

// String summarizes the run without dumping the replay buffer
func (d Data) String() string {
	return fmt.Sprintf("level=%s player=%s score=%g replayBuffer=%d bytes",
		d.Level, d.Player, d.Score, len(d.ReplayBuffer))
}

// ParseReplay decodes a replay file's MessagePack envelope
func ParseReplay(data []byte) (*Replay, error) {
	var rp Replay
	dec := codec.NewDecoderBytes(data, envelopeHandle)
	if err := dec.Decode(&rp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructuralDecode, err)
	}
	return &rp, nil
}

// MarshalEnvelope encodes rp as a MessagePack envelope
func MarshalEnvelope(rp *Replay) ([]byte, error) {
	var out []byte
	enc := codec.NewEncoderBytes(&out, envelopeHandle)
	if err := enc.Encode(rp); err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return out, nil
}

// DecodeReplayBuffer decodes the envelope's replay buffer
func (rp *Replay) DecodeReplayBuffer(opts ...DecoderOption) (*Buffer, error) {
	return NewDecoder(opts...).Decode(rp.Data.ReplayBuffer)
}
