// Package fingerprint summarises catalog contents as a merkle root, so two
// catalogs can be checked for equality without walking both.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"strconv"

	mt "github.com/txaty/go-merkletree"

	"catalog-go/internal/catalog"
	"catalog-go/internal/hash"
)

const emptyCatalog = "empty-catalog"

// block is one entry's contribution: kind, folded name and size. Creation
// time and name casing are left out.
type block struct {
	data []byte
}

func (b block) Serialize() ([]byte, error) {
	return b.data, nil
}

func blockOf(e catalog.Entry) block {
	data := make([]byte, 0, len(e.Key())+24)
	data = strconv.AppendInt(data, int64(e.Kind), 10)
	data = append(data, '|')
	data = append(data, e.Key()...)
	data = append(data, '|')
	data = strconv.AppendUint(data, e.Size, 10)
	return block{data: data}
}

// Of returns the hex fingerprint of every entry in idx, in key order.
func Of(idx *catalog.Index) (string, error) {
	blocks := make([]mt.DataBlock, 0, idx.Count())
	for e := range idx.All() {
		blocks = append(blocks, blockOf(e))
	}

	// The merkle tree needs at least two blocks
	switch len(blocks) {
	case 0:
		return hash.Sum([]byte(emptyCatalog)), nil
	case 1:
		data, _ := blocks[0].Serialize()
		return hash.Sum(data), nil
	}

	tree, err := mt.New(&mt.Config{
		HashFunc: hash.XXHashFunc,
		Mode:     mt.ModeTreeBuild,
	}, blocks)
	if err != nil {
		return "", fmt.Errorf("failed to build merkle tree: %w", err)
	}

	return hex.EncodeToString(tree.Root), nil
}
