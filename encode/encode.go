// Package encode drives solinas64's bulk field operations to compute an
// erasure-coding recovery packet over a set of equal-length data shards.
package encode

import (
	"encoding/hex"

	"github.com/minio/sha256-simd"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/catid/solinas64"
	"github.com/catid/solinas64/internal/location"
)

// EncodeRecovery computes a single recovery packet over originals, as a
// linear combination over the field mod p:
//
//	R = sum_i HashToNonzeroFp(seedMix + i) * originals[i]
//
// seed is hashed once (via solinas64.HashU64) into seedMix so that callers
// can pass any convenient seed (a block index, a timestamp, a counter) and
// still get well-distributed, nonzero coefficients. Every block in
// originals must have the same length.
func EncodeRecovery(originals [][]byte, seed uint64) ([]byte, error) {
	if len(originals) == 0 {
		return nil, errors.Errorf("[%s] no input blocks", location.Here(0))
	}

	blockLen := len(originals[0])
	for i, block := range originals {
		if len(block) != blockLen {
			return nil, errors.Errorf("[%s] block %d has length %d, want %d",
				location.Here(0), i, len(block), blockLen)
		}
	}

	seedMix := solinas64.HashU64(seed)

	workspace := make([]byte, solinas64.GetWorkspaceBytes(blockLen))
	output := make([]byte, solinas64.GetMaxOutputBytes(blockLen))

	written := 0
	for i, block := range originals {
		coeff := solinas64.HashToNonzeroFp(seedMix + uint64(i))

		digest := sha256.Sum256(block)
		logger.WithFields(logrus.Fields{
			"index":  i,
			"bytes":  len(block),
			"digest": hex.EncodeToString(digest[:8]),
		}).Info("encoding block")

		var blockWritten int
		if i == 0 {
			blockWritten = solinas64.MultiplyRegion(block, coeff, workspace, output)
		} else {
			blockWritten = solinas64.MultiplyAddRegion(block, coeff, workspace, output)
		}
		if blockWritten > written {
			written = blockWritten
		}
	}

	output = output[:written]

	digest := sha256.Sum256(output)
	logger.WithFields(logrus.Fields{
		"bytes":  len(output),
		"digest": hex.EncodeToString(digest[:8]),
	}).Info("encoded recovery packet")

	return output, nil
}
