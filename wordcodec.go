package solinas64

// wordBits is the width of the dense word format this file packs: 61
// bits, chosen so every packed word is numerically less than p (p needs
// all 64 bits to express its top end). WordWriter/WordReader trust the
// caller to have already Finalized every value, so every word there is
// always already a valid field element with no ambiguity to resolve.
// ByteWriter/ByteReader below pack the same wordBits-wide chunks, but
// carve them directly out of arbitrary application bytes rather than
// trusting the caller to supply them, so they do have one ambiguous
// pattern to resolve (see allOnes60/allOnes61).
const wordBits = 61

// ReadResult is the outcome of a single WordReader/ByteReader read.
type ReadResult int

const (
	// ReadSuccess indicates a word was read.
	ReadSuccess ReadResult = iota
	// ReadEmpty indicates the reader has no more data.
	ReadEmpty
)

// bitWriter is the shared dense-bit-stream packer behind WordWriter and
// ByteWriter: it writes nbits low bits of value starting at a running bit
// cursor, LSB-first within the destination buffer.
type bitWriter struct {
	data      []byte
	bitCursor int
}

func (w *bitWriter) begin(data []byte) {
	w.data = data
	w.bitCursor = 0
}

func (w *bitWriter) writeBits(value uint64, nbits int) {
	remaining := nbits
	for remaining > 0 {
		byteIndex := w.bitCursor >> 3
		bitIndex := uint(w.bitCursor & 7)

		free := 8 - int(bitIndex)
		take := remaining
		if take > free {
			take = free
		}

		mask := byte((uint64(1)<<uint(take) - 1))
		w.data[byteIndex] |= (byte(value) & mask) << bitIndex

		value >>= uint(take)
		remaining -= take
		w.bitCursor += take
	}
}

// flushBytes returns the number of bytes touched so far, rounding up to a
// whole byte.
func (w *bitWriter) flushBytes() int {
	return (w.bitCursor + 7) / 8
}

type bitReader struct {
	data      []byte
	totalBits int
	bitCursor int
}

func (r *bitReader) begin(data []byte, totalBits int) {
	r.data = data
	r.totalBits = totalBits
	r.bitCursor = 0
}

func (r *bitReader) readBits(nbits int) uint64 {
	var value uint64
	shift := uint(0)
	remaining := nbits

	for remaining > 0 {
		byteIndex := r.bitCursor >> 3
		bitIndex := uint(r.bitCursor & 7)

		free := 8 - int(bitIndex)
		take := remaining
		if take > free {
			take = free
		}

		mask := byte((uint64(1)<<uint(take) - 1))
		chunk := (r.data[byteIndex] >> bitIndex) & mask

		value |= uint64(chunk) << shift

		shift += uint(take)
		remaining -= take
		r.bitCursor += take
	}

	return value
}

// WordWriter packs a known number of dense 61-bit words into a byte buffer.
type WordWriter struct {
	w bitWriter
}

// WordWriterBytesNeeded returns the number of bytes needed to hold words dense
// 61-bit words.
func WordWriterBytesNeeded(words int) int {
	return (words*wordBits + 7) / 8
}

// BeginWrite points the writer at dst, which must be at least
// WordWriterBytesNeeded(words) bytes and pre-zeroed.
func (w *WordWriter) BeginWrite(dst []byte) {
	w.w.begin(dst)
}

// Write packs the low 61 bits of word into the stream.
func (w *WordWriter) Write(word uint64) {
	w.w.writeBits(word&(uint64(1)<<wordBits - 1), wordBits)
}

// Flush returns the number of bytes written so far.
func (w *WordWriter) Flush() int {
	return w.w.flushBytes()
}

// WordReader unpacks a known number of dense 61-bit words from a byte
// buffer produced by WordWriter.
type WordReader struct {
	r bitReader
}

// WordCount returns how many full 61-bit words fit in bytes bytes of dense
// packed data (any trailing partial word is not counted).
func WordCount(bytes int) int {
	return (bytes * 8) / wordBits
}

// BeginRead points the reader at src, which holds bytes bytes of data
// produced by WordWriter.
func (r *WordReader) BeginRead(src []byte, bytes int) {
	r.r.begin(src, bytes*8)
}

// Read returns the next 61-bit word. Callers must not call this more than
// WordCount(bytes) times for a given BeginRead.
func (r *WordReader) Read() uint64 {
	return r.r.readBits(wordBits)
}

// codeBits is the width ByteReader/ByteWriter use for an ordinary chunk of
// the dense bitstream they pack application bytes into: the low wordBits-1
// bits of a value. The top bit is read or written as one separate bit
// after it (see allOnes60/allOnes61); since the two pieces together always
// cover the same wordBits bits, the stream layout is the same as a plain
// wordBits-bit chunk.
const codeBits = wordBits - 1

// allOnes60 is the low 60 bits of a chunk all set: the code after which
// the following bit is treated as a disambiguator, selecting allOnes61 (1)
// or allOnes60 (0).
const allOnes60 = uint64(1)<<codeBits - 1

// allOnes61 is every bit of a wordBits-wide chunk set. A plain 61-bit
// write/read already round-trips this value correctly on its own;
// ByteWriter writes it as allOnes60 in 60 bits followed by a disambiguator
// bit of 1, which puts the same 61 one-bits in the stream.
const allOnes61 = uint64(1)<<wordBits - 1

// ByteWriter packs a sequence of field elements, each at most wordBits
// bits wide, into a dense little-endian bitstream: the inverse of
// ByteReader. Every Write consumes exactly wordBits bits of output, so
// BeginWrite/Write/Flush reproduce the exact chunk boundaries ByteReader
// used to produce the values in the first place.
type ByteWriter struct {
	w bitWriter
}

// MaxBytesNeeded returns the number of bytes needed to hold words values
// written by ByteWriter.
func MaxBytesNeeded(words int) int {
	return (words*wordBits + 7) / 8
}

// BeginWrite points the writer at dst, which must be at least
// MaxBytesNeeded(words) bytes for however many values will be written,
// and pre-zeroed: Write only ORs bits into dst, it never clears any.
func (w *ByteWriter) BeginWrite(dst []byte) {
	w.w.begin(dst)
}

// Write packs word as the next wordBits-bit chunk of the dense bitstream.
// word must be less than 2^wordBits; ByteReader never produces anything
// wider.
func (w *ByteWriter) Write(word uint64) {
	switch word {
	case allOnes61:
		w.w.writeBits(allOnes60, codeBits)
		w.w.writeBits(1, 1)
	case allOnes60:
		w.w.writeBits(allOnes60, codeBits)
		w.w.writeBits(0, 1)
	default:
		w.w.writeBits(word, wordBits)
	}
}

// Flush returns the number of bytes written so far.
func (w *ByteWriter) Flush() int {
	return w.w.flushBytes()
}

// ByteReader slices a raw byte buffer into a dense sequence of field
// elements, each at most wordBits bits wide, suitable for WordWriter or
// any other consumer that only accepts values below 2^wordBits. Unlike
// AppDataReader (§4.4's 64-bit-word-with-overflow scheme), this reads
// wordBits bits at a time directly off the input bitstream rather than
// off 8-byte-aligned windows, so every value it returns already fits in
// wordBits bits with nothing held back in an auxiliary buffer.
//
// allOnes60 and allOnes61 share the same low codeBits bits. ByteReader
// reads every full chunk as a codeBits-wide code plus one more bit; after
// an allOnes60 code that bit is the disambiguator that selects allOnes61
// (1) or allOnes60 (0), mirroring what ByteWriter writes. Either way the
// chunk occupies the same wordBits bits a plain wordBits-bit read takes.
type ByteReader struct {
	r         bitReader
	totalBits int
}

// MaxWords returns an upper bound on the number of field elements bytes
// bytes of input data can expand to. Every chunk but the last consumes at
// least codeBits bits of input, so that bounds the count.
func MaxWords(bytes int) int {
	totalBits := bytes * 8
	return (totalBits + codeBits - 1) / codeBits
}

// BeginRead points the reader at src, which holds bytes bytes of
// application data.
func (r *ByteReader) BeginRead(src []byte, bytes int) {
	r.totalBits = bytes * 8
	r.r.begin(src, r.totalBits)
}

// Read returns the next value and ReadSuccess, or 0 and ReadEmpty once
// every bit of input has been consumed.
func (r *ByteReader) Read() (uint64, ReadResult) {
	remaining := r.totalBits - r.r.bitCursor
	if remaining <= 0 {
		return 0, ReadEmpty
	}

	if remaining < codeBits {
		return r.r.readBits(remaining), ReadSuccess
	}

	code := r.r.readBits(codeBits)
	if code != allOnes60 {
		if r.totalBits-r.r.bitCursor < 1 {
			return code, ReadSuccess
		}
		top := r.r.readBits(1)
		return code | top<<codeBits, ReadSuccess
	}

	if r.totalBits-r.r.bitCursor < 1 {
		return allOnes60, ReadSuccess
	}
	disambiguator := r.r.readBits(1)
	if disambiguator == 1 {
		return allOnes61, ReadSuccess
	}
	return allOnes60, ReadSuccess
}
