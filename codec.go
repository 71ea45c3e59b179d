package solinas64

// AppDataReader packs application byte data into field words.
//
// 64-bit words >= p are not valid field elements, so to pack them in
// efficiently ReadNext8Bytes emits an extra bit whenever the top half of the
// word is all ones except for the high bit (see IsU64Ambiguous). Those extra
// bits accumulate into overflow words that the caller must process after all
// the original data, via FlushAndGetWordCount.
type AppDataReader struct {
	data         []byte
	dataWritePos int
	workspace    uint64
	available    int
}

// GetWorkspaceBytes returns the number of extra temporary workspace bytes
// needed to read bytes of application data.
func GetWorkspaceBytes(bytes int) int {
	inputBits := bytes * 8

	// All words may be expanded by one bit, hence the /64 factor, but only
	// full words can be too large, so round down.
	maxExtraBits := inputBits / 64

	// Each overflow word only holds 63 payload bits: ReadNext8Bytes flushes
	// r.workspace once r.available reaches 63, never filling bit 63, so
	// sizing by 64 bits/word here can undercount the words the packer
	// actually needs.
	words := (maxExtraBits + 62) / 63

	return words * 8
}

// GetMaxOutputBytes returns the number of bytes overall that MultiplyRegion
// or MultiplyAddRegion will produce for the given input length: the
// original data converted to words plus the extra overflow words.
func GetMaxOutputBytes(bytes int) int {
	originalWords := (bytes + 7) / 8
	return GetWorkspaceBytes(bytes) + originalWords*8
}

// SetupWorkspace points the reader at a scratch buffer sized by
// GetWorkspaceBytes and resets its internal state.
func (r *AppDataReader) SetupWorkspace(workspace []byte) {
	r.data = workspace
	r.dataWritePos = 0
	r.workspace = 0
	r.available = 0
}

// ReadNext8Bytes fits a word of data into a field element, emitting an
// extra bit into the workspace if needed. Call this for every 8-byte word
// of input, first word to last.
func (r *AppDataReader) ReadNext8Bytes(data []byte) uint64 {
	word := ReadU64LE(data)

	if IsU64Ambiguous(word) {
		if r.available >= 63 {
			WriteU64LE(r.data[r.dataWritePos:], r.workspace)
			r.dataWritePos += 8
			r.workspace = word >> 63
			r.available = 1
		} else {
			r.workspace |= (word >> 63) << uint(r.available)
			r.available++
		}

		word &= highBitMask
	}

	return word
}

// ReadFinalBytes reads the final, partial (< 8 byte) tail of input data.
// No disambiguation is needed: at least the high 8 bits are already zero.
func (r *AppDataReader) ReadFinalBytes(data []byte, bytes int) uint64 {
	return ReadBytesLE(data, bytes)
}

// FlushAndGetWordCount flushes any remaining overflow bits and returns the
// number of overflow words written to the workspace buffer passed to
// SetupWorkspace. Each word can be read back with ReadU64LE.
func (r *AppDataReader) FlushAndGetWordCount() int {
	if r.available != 0 {
		WriteU64LE(r.data[r.dataWritePos:], r.workspace)
		r.dataWritePos += 8
	}
	return r.dataWritePos / 8
}
