// Package replay decodes marble-game replay files.
//
// A replay file is a MessagePack envelope (Replay) whose data.replayBuffer
// field holds the binary replay buffer:
//
//	session   int32
//	version   int32
//	payload   raw deflate stream of:
//	  count   int32
//	  count × rewindable (game object name, type name, reference position,
//	                      fields of type-tagged curves)
//
// Basic usage:
//
//	rp, err := replay.ParseReplay(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	buf, err := rp.DecodeReplayBuffer()
//	if err != nil {
//		log.Fatal(err)
//	}
//	marble, err := buf.Marble()
//	if err != nil {
//		log.Fatal(err)
//	}
//	pos, err := marble.Position()
//
// Extraction methods on Buffer remove the rewindables they return; what
// remains keeps its stream order.
package replay
