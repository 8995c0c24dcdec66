package insight

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-insight-keeper/models"
)

// ApplyResult is the merged collection plus per-action counters.
type ApplyResult struct {
	Blocks  []models.InsightBlock
	Added   int
	Updated int
	// Removed counts blocks actually deleted.
	Removed int
	// Skipped counts operations that changed nothing: adds of an existing
	// id, updates and removes of a missing id, unknown actions.
	Skipped int
	// FirstTitle is the trimmed title of the first appended block that has
	// one. Skipped adds never contribute.
	FirstTitle string
}

// Apply applies ops to a copy of blocks in order and returns the result
// stable-sorted by descending strength.
func Apply(blocks []models.InsightBlock, ops []models.BlockOperation) ApplyResult {
	merged := Clone(blocks)
	result := ApplyResult{}

	index := make(map[string]int, len(merged))
	for i, block := range merged {
		index[block.ID] = i
	}

	for _, op := range ops {
		switch op.Action {
		case models.ActionAdd:
			if _, exists := index[op.ID]; exists {
				result.Skipped++
				continue
			}
			block := op.ToBlock()
			index[op.ID] = len(merged)
			merged = append(merged, block)
			result.Added++
			if result.FirstTitle == "" {
				result.FirstTitle = strings.TrimSpace(block.Title)
			}

		case models.ActionUpdate:
			i, exists := index[op.ID]
			if !exists {
				result.Skipped++
				continue
			}
			op.ApplyTo(&merged[i])
			result.Updated++

		case models.ActionRemove:
			i, exists := index[op.ID]
			if !exists {
				result.Skipped++
				continue
			}
			merged = slices.Delete(merged, i, i+1)
			delete(index, op.ID)
			for id, pos := range index {
				if pos > i {
					index[id] = pos - 1
				}
			}
			result.Removed++

		default:
			result.Skipped++
		}
	}

	SortByStrength(merged)
	result.Blocks = merged

	return result
}

// SortByStrength stable-sorts blocks in place, strongest first.
func SortByStrength(blocks []models.InsightBlock) {
	slices.SortStableFunc(blocks, func(a, b models.InsightBlock) int {
		return b.Strength - a.Strength
	})
}

// Clone deep-copies a collection so later merges cannot alias the caller's
// slices. A nil input yields an empty, non-nil collection.
func Clone(blocks []models.InsightBlock) []models.InsightBlock {
	out := make([]models.InsightBlock, len(blocks))
	for i, block := range blocks {
		block.Questions = slices.Clone(block.Questions)
		block.Inspirations = slices.Clone(block.Inspirations)
		out[i] = block
	}

	return out
}

// Reduce strips blocks to the digest sent back to the analysis engine.
func Reduce(blocks []models.InsightBlock) []models.BlockDigest {
	digests := make([]models.BlockDigest, 0, len(blocks))
	for _, block := range blocks {
		digests = append(digests, models.BlockDigest{
			ID:       block.ID,
			Type:     block.Type,
			Title:    block.Title,
			Summary:  block.Summary,
			Strength: block.Strength,
		})
	}

	return digests
}
