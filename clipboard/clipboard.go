// Package clipboard round-trips a text-plus-metadata item through a
// system clipboard that only stores plain text. The text travels in the
// ordinary text slot; the metadata travels in a private slot bound to
// the text by a stable content hash, so metadata written by this
// process is never surfaced for text some other process put there.
package clipboard

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/termshell/termshell/internal/logging"
	"github.com/termshell/termshell/internal/logging/events"
)

// Private, application-namespaced slot names. Other applications do not
// interpret these; their absence degrades to "no metadata".
const (
	SlotTextHash = "termshell-text-hash"
	SlotMetadata = "termshell-metadata"
)

// Item is one clipboard entry. Metadata is optional and only valid for
// the exact text it was stored with.
type Item struct {
	Text     string
	Metadata *string
}

// New returns an item carrying text and no metadata.
func New(text string) Item {
	return Item{Text: text}
}

// WithMetadata returns a copy of the item carrying metadata.
func (it Item) WithMetadata(metadata string) Item {
	it.Metadata = &metadata
	return it
}

// TextHash returns the stable 64-bit content hash binding metadata to
// its text. FNV-1a over the UTF-8 bytes: deterministic, versionless,
// and identical across process restarts.
func TextHash(text string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	return h.Sum64()
}

// Codec implements the read/write protocol over a Board.
type Codec struct {
	board Board
}

// NewCodec returns a codec bound to the given board.
func NewCodec(board Board) *Codec {
	return &Codec{board: board}
}

// Write clears every slot, stores the text, and, when metadata is
// present, stores the big-endian content hash and the metadata verbatim
// in the private slots. A metadata-less write leaves no stale private
// slots behind because the clear always runs first.
func (c *Codec) Write(item Item) error {
	if err := c.board.Clear(); err != nil {
		return fmt.Errorf("clear clipboard: %w", err)
	}
	if err := c.board.WriteText(item.Text); err != nil {
		return fmt.Errorf("write clipboard text: %w", err)
	}
	if item.Metadata == nil {
		return nil
	}
	var hashBytes [8]byte
	binary.BigEndian.PutUint64(hashBytes[:], TextHash(item.Text))
	if err := c.board.WriteSlot(SlotTextHash, hashBytes[:]); err != nil {
		return fmt.Errorf("write clipboard hash: %w", err)
	}
	if err := c.board.WriteSlot(SlotMetadata, []byte(*item.Metadata)); err != nil {
		return fmt.Errorf("write clipboard metadata: %w", err)
	}
	return nil
}

// Read reconstructs the current clipboard item. The boolean is false
// when no text slot is present at all. Metadata is attached only when
// both private slots are readable and the stored hash matches the hash
// of the text currently present; a mismatch means another process
// replaced the text after our write, and the stale metadata is dropped.
func (c *Codec) Read() (Item, bool) {
	text, ok, err := c.board.ReadText()
	if err != nil {
		logging.Error(fmt.Errorf("read clipboard text: %w", err))
		return Item{}, false
	}
	if !ok {
		return Item{}, false
	}
	item := Item{Text: strings.ToValidUTF8(text, "�")}

	hashBytes, hashOK := c.readSlot(SlotTextHash)
	metaBytes, metaOK := c.readSlot(SlotMetadata)
	if hashOK && metaOK && len(hashBytes) == 8 {
		stored := binary.BigEndian.Uint64(hashBytes)
		if stored == TextHash(item.Text) {
			metadata := string(metaBytes)
			item.Metadata = &metadata
		} else {
			events.Clipboard.StaleMetadata()
		}
	}
	return item, true
}

func (c *Codec) readSlot(slot string) ([]byte, bool) {
	data, ok, err := c.board.ReadSlot(slot)
	if err != nil {
		logging.Error(fmt.Errorf("read clipboard slot %s: %w", slot, err))
		return nil, false
	}
	return data, ok
}
