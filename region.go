package solinas64

import "github.com/klauspost/cpuid/v2"

// regionUnroll is the number of 8-byte words the bulk loops in
// MultiplyRegion/MultiplyAddRegion process per outer iteration. It is picked
// once at package init time based on the host's SIMD capability:
// AVX2-capable cores get 8 words per iteration, everything else gets 4. The
// words of one iteration are handled by an ordinary counted inner loop over
// regionUnroll, not by statements written out one per word, and there is no
// assembly; cpuid only sets the inner loop's count.
var regionUnroll = 4

func init() {
	if cpuid.CPU.Supports(cpuid.AVX2) {
		regionUnroll = 8
	}
}

// MultiplyRegion computes output = data * coeff, where data is interpreted
// as a little-endian stream of field words via AppDataReader. coeff must be
// in [0, p). workspace must be at least GetWorkspaceBytes(len(data)) bytes,
// and output at least GetMaxOutputBytes(len(data)) bytes. Returns the
// number of bytes written to output.
func MultiplyRegion(data []byte, coeff uint64, workspace, output []byte) int {
	bytes := len(data)
	minimumOutputBytes := (bytes + 7) &^ 7

	if coeff <= 1 {
		if coeff == 0 {
			for i := 0; i < minimumOutputBytes; i++ {
				output[i] = 0
			}
		} else {
			copy(output[:bytes], data)
			for i := bytes; i < minimumOutputBytes; i++ {
				output[i] = 0
			}
		}
		return minimumOutputBytes
	}

	var reader AppDataReader
	reader.SetupWorkspace(workspace)

	dataPos, outPos := 0, 0

	unrollBytes := regionUnroll * 8
	for bytes >= unrollBytes {
		bytes -= unrollBytes
		for w := 0; w < regionUnroll; w++ {
			x := Multiply(coeff, reader.ReadNext8Bytes(data[dataPos+w*8:]))
			WriteU64LE(output[outPos+w*8:], x)
		}
		dataPos += unrollBytes
		outPos += unrollBytes
	}

	for bytes >= 8 {
		bytes -= 8
		x := Multiply(coeff, reader.ReadNext8Bytes(data[dataPos:]))
		dataPos += 8
		WriteU64LE(output[outPos:], x)
		outPos += 8
	}

	if bytes > 0 {
		x := Multiply(coeff, reader.ReadFinalBytes(data[dataPos:], bytes))
		WriteU64LE(output[outPos:], x)
		outPos += 8
	}

	extraWordBytes := reader.FlushAndGetWordCount() * 8
	readPtr := workspace

	for i := 0; i < extraWordBytes; i += 8 {
		WriteU64LE(output[outPos+i:], Multiply(coeff, ReadU64LE(readPtr[i:])))
	}

	return minimumOutputBytes + extraWordBytes
}

// MultiplyAddRegion computes output += data * coeff in place, with the same
// preconditions and buffer sizing as MultiplyRegion.
func MultiplyAddRegion(data []byte, coeff uint64, workspace, output []byte) int {
	bytes := len(data)
	minimumOutputBytes := (bytes + 7) &^ 7

	if coeff == 0 {
		return minimumOutputBytes
	}

	var reader AppDataReader
	reader.SetupWorkspace(workspace)

	dataPos, outPos := 0, 0

	unrollBytes := regionUnroll * 8
	for bytes >= unrollBytes {
		bytes -= unrollBytes
		for w := 0; w < regionUnroll; w++ {
			x := Add(Multiply(coeff, reader.ReadNext8Bytes(data[dataPos+w*8:])), ReadU64LE(output[outPos+w*8:]))
			WriteU64LE(output[outPos+w*8:], x)
		}
		dataPos += unrollBytes
		outPos += unrollBytes
	}

	for bytes >= 8 {
		bytes -= 8
		x := Add(Multiply(coeff, reader.ReadNext8Bytes(data[dataPos:])), ReadU64LE(output[outPos:]))
		dataPos += 8
		WriteU64LE(output[outPos:], x)
		outPos += 8
	}

	if bytes > 0 {
		x := Add(Multiply(coeff, reader.ReadFinalBytes(data[dataPos:], bytes)), ReadU64LE(output[outPos:]))
		WriteU64LE(output[outPos:], x)
		outPos += 8
	}

	extraWordBytes := reader.FlushAndGetWordCount() * 8
	readPtr := workspace

	for i := 0; i < extraWordBytes; i += 8 {
		x := ReadU64LE(output[outPos+i:])
		WriteU64LE(output[outPos+i:], Add(Multiply(coeff, ReadU64LE(readPtr[i:])), x))
	}

	return minimumOutputBytes + extraWordBytes
}
