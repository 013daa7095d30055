// Package marblereplay decodes replay files recorded by a marble-rolling game.
//
// A replay file is a MessagePack envelope carrying run metadata and a binary
// replay buffer. The buffer holds a small header followed by a raw deflate
// stream of rewindables: recorded game objects whose fields are type-tagged,
// time-sampled curves.
//
// Basic usage:
//
//	dec, err := marblereplay.New(
//		marblereplay.WithMaxInflatedSize(64 << 20),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rp, buf, err := dec.DecodeReplay(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	marble, err := buf.Marble()
//	if err != nil {
//		log.Fatal(err)
//	}
//	pos, err := marble.Position()
//	fmt.Println(rp.Data.Player, pos.Curve.Len())
//
// The library supports:
//
//   - Strict, bounds-checked decoding of every curve type
//   - Typed accessors for marbles, powerups, bumpers and elevators
//   - Structured logging through a pluggable Logger (logrus by default)
//   - Decode metrics through a pluggable MetricsCollector
//
// Lower-level packages are available for finer control: replay (envelope
// and buffer decoding), curve (curve types and field access), protocol (the
// binary reader) and ring (the sample store).
package marblereplay
