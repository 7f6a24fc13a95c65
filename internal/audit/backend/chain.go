package backend

import (
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/sha3"

	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
)

// Block is one link in the hash chain maintained by the blockchain backend.
// Each block commits to its predecessor's hash, so rewriting any historical
// entry invalidates every later block.
type Block struct {
	Height    uint64
	CreatedAt time.Time
	Entry     *auditDomain.Entry
	PrevHash  string
	Hash      string
}

// computeHash returns the hex SHA3-256 over the block's height, timestamp,
// entry content hash and predecessor hash.
func (b *Block) computeHash() string {
	data := fmt.Sprintf(
		"%d:%s:%s:%s",
		b.Height, b.CreatedAt.UTC().Format(time.RFC3339), b.Entry.ContentHash, b.PrevHash,
	)
	hash := sha3.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// genesisHash seeds the chain so the first block has a fixed predecessor.
const genesisHash = "0000000000000000000000000000000000000000000000000000000000000000"

// chain is the append-only block sequence. Callers must serialize access;
// BlockchainBackend holds its own mutex around every chain operation.
type chain struct {
	blocks []*Block
}

// prepare builds and links the next block for an entry without storing it.
// The caller anchors the block hash first and commits only on success, so a
// failed anchor never leaves a half-recorded entry in the chain.
func (c *chain) prepare(entry *auditDomain.Entry) *Block {
	prev := genesisHash
	if n := len(c.blocks); n > 0 {
		prev = c.blocks[n-1].Hash
	}

	block := &Block{
		Height:    uint64(len(c.blocks)),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Entry:     entry,
		PrevHash:  prev,
	}
	block.Hash = block.computeHash()

	return block
}

// commit stores a previously prepared block.
func (c *chain) commit(block *Block) {
	c.blocks = append(c.blocks, block)
}

// verify walks the chain and returns ErrChainTampered on the first block
// whose hash or predecessor link no longer holds.
func (c *chain) verify() error {
	prev := genesisHash
	for _, block := range c.blocks {
		if block.PrevHash != prev {
			return fmt.Errorf(
				"%w: block %d predecessor link broken",
				auditDomain.ErrChainTampered, block.Height,
			)
		}
		if !block.Entry.VerifyHash() {
			return fmt.Errorf(
				"%w: block %d entry content modified",
				auditDomain.ErrChainTampered, block.Height,
			)
		}
		if block.computeHash() != block.Hash {
			return fmt.Errorf(
				"%w: block %d hash mismatch",
				auditDomain.ErrChainTampered, block.Height,
			)
		}
		prev = block.Hash
	}
	return nil
}
