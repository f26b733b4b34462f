package clipboard

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// Board is the slot-level clipboard surface the codec writes through.
// The text slot is the one every application shares; the named slots
// are private to this application.
type Board interface {
	Clear() error
	WriteText(text string) error
	// ReadText reports false when the text slot holds nothing.
	ReadText() (string, bool, error)
	WriteSlot(slot string, data []byte) error
	ReadSlot(slot string) ([]byte, bool, error)
}

// SystemBoard backs the text slot with the operating system clipboard
// and the private slots with a sidecar file in the user cache
// directory. The OS clipboard offers no transactional guarantee, which
// is exactly why the codec binds metadata to a content hash: another
// process replacing the text leaves the sidecar stale, and the stale
// metadata is detected and dropped on read.
type SystemBoard struct {
	sidecarPath string
}

// NewSystemBoard locates the sidecar under the user cache directory.
func NewSystemBoard() (*SystemBoard, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("locate cache dir: %w", err)
	}
	return &SystemBoard{sidecarPath: filepath.Join(dir, "termshell", "clipboard.json")}, nil
}

func (b *SystemBoard) Clear() error {
	if err := os.Remove(b.sidecarPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear sidecar: %w", err)
	}
	return clipboard.WriteAll("")
}

func (b *SystemBoard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

func (b *SystemBoard) ReadText() (string, bool, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", false, err
	}
	if text == "" {
		return "", false, nil
	}
	return text, true, nil
}

func (b *SystemBoard) WriteSlot(slot string, data []byte) error {
	slots, err := b.loadSidecar()
	if err != nil {
		return err
	}
	slots[slot] = data
	if err := os.MkdirAll(filepath.Dir(b.sidecarPath), 0o755); err != nil {
		return fmt.Errorf("create sidecar dir: %w", err)
	}
	encoded, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("encode sidecar: %w", err)
	}
	return os.WriteFile(b.sidecarPath, encoded, 0o644)
}

func (b *SystemBoard) ReadSlot(slot string) ([]byte, bool, error) {
	slots, err := b.loadSidecar()
	if err != nil {
		return nil, false, err
	}
	data, ok := slots[slot]
	return data, ok, nil
}

func (b *SystemBoard) loadSidecar() (map[string][]byte, error) {
	raw, err := os.ReadFile(b.sidecarPath)
	if os.IsNotExist(err) {
		return map[string][]byte{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read sidecar: %w", err)
	}
	slots := map[string][]byte{}
	if err := json.Unmarshal(raw, &slots); err != nil {
		// A corrupt sidecar degrades to "no private slots".
		return map[string][]byte{}, nil
	}
	return slots, nil
}

// MemoryBoard is an in-process board used by tests and headless runs.
type MemoryBoard struct {
	text    string
	hasText bool
	slots   map[string][]byte
}

// NewMemoryBoard returns an empty in-memory board.
func NewMemoryBoard() *MemoryBoard {
	return &MemoryBoard{slots: map[string][]byte{}}
}

func (b *MemoryBoard) Clear() error {
	b.text = ""
	b.hasText = false
	b.slots = map[string][]byte{}
	return nil
}

// WriteText replaces only the text slot, leaving the private slots
// untouched, exactly as an external process writing the system
// clipboard would.
func (b *MemoryBoard) WriteText(text string) error {
	b.text = text
	b.hasText = true
	return nil
}

func (b *MemoryBoard) ReadText() (string, bool, error) {
	return b.text, b.hasText, nil
}

func (b *MemoryBoard) WriteSlot(slot string, data []byte) error {
	b.slots[slot] = append([]byte(nil), data...)
	return nil
}

func (b *MemoryBoard) ReadSlot(slot string) ([]byte, bool, error) {
	data, ok := b.slots[slot]
	return data, ok, nil
}
