package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"os"
)

// BlockSource lists the immediate children of a block in document order.
//
// The returned sequence is lazy and restartable: every range over it starts
// again from the first child. An error ends the sequence.
type BlockSource interface {
	ListChildren(ctx context.Context, parentID string) iter.Seq2[*Block, error]
}

// MapSource serves children from memory, keyed by parent id.
type MapSource map[string][]*Block

func (m MapSource) ListChildren(ctx context.Context, parentID string) iter.Seq2[*Block, error] {
	return func(yield func(*Block, error) bool) {
		for _, block := range m[parentID] {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			if !yield(block, nil) {
				return
			}
		}
	}
}

// LoadMapSource reads a JSON fixture of the form {"<parent id>": [<block>, ...]}.
func LoadMapSource(path string) (MapSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	source := MapSource{}
	if err := json.Unmarshal(data, &source); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return source, nil
}
