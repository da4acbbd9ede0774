package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash"

	"fortio.org/safecast"

	"taml/internal/model"
)

// Digest is a SHA-256 content key for cached artefacts.
type Digest [32]byte

// Signature hashes the structure of one template: its name, kind flags
// and every event with its placement and rendered label. Any edit that
// could change an exploration changes the digest, so stale cache
// entries are simply never found.
func Signature(doc *model.Document, id model.TemplateID) Digest {
	t := doc.Template(id)
	table := doc.Table()
	h := sha256.New()

	writeString(h, table.Name(t.Sym))
	writeString(h, t.Type)
	writeString(h, t.Mode)
	writeBool(h, t.IsTA)
	writeBool(h, t.Dynamic)
	writeBool(h, t.HasPrechart)

	writeLen(h, len(t.Lines))
	for i := range t.Lines {
		line := &t.Lines[i]
		writeInt(h, int(line.Nr))
		writeInt(h, int(line.Template))
		writeInt(h, line.Arguments)
		writeInt(h, line.Unbound)
	}

	writeLen(h, len(t.Messages))
	for i := range t.Messages {
		m := &t.Messages[i]
		writeInt(h, int(m.Src))
		writeInt(h, int(m.Dst))
		writeInt(h, m.Location)
		writeBool(h, m.InPrechart)
		writeString(h, doc.Exprs().Render(m.Label, table))
	}

	writeLen(h, len(t.Conditions))
	for i := range t.Conditions {
		c := &t.Conditions[i]
		writeLen(h, len(c.Anchors))
		for _, a := range c.Anchors {
			writeInt(h, int(a))
		}
		writeInt(h, c.Location)
		writeBool(h, c.InPrechart)
		writeBool(h, c.Hot)
		writeString(h, doc.Exprs().Render(c.Label, table))
	}

	writeLen(h, len(t.Updates))
	for i := range t.Updates {
		u := &t.Updates[i]
		writeInt(h, int(u.Anchor))
		writeInt(h, u.Location)
		writeBool(h, u.InPrechart)
		writeString(h, doc.Exprs().Render(u.Label, table))
	}

	var out Digest
	h.Sum(out[:0])
	return out
}

func writeLen(h hash.Hash, n int) {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("signature length overflow: %w", err))
	}
	_ = binary.Write(h, binary.BigEndian, v)
}

// writeInt accepts sentinel values, which may be negative.
func writeInt(h hash.Hash, v int) {
	_ = binary.Write(h, binary.BigEndian, int64(v))
}

func writeBool(h hash.Hash, b bool) {
	if b {
		h.Write([]byte{1})
		return
	}
	h.Write([]byte{0})
}

func writeString(h hash.Hash, s string) {
	writeLen(h, len(s))
	h.Write([]byte(s))
}
