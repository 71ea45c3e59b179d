package solinas64

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWordWriterReaderRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for words := 1; words < 200; words++ {
		bytesNeeded := WordWriterBytesNeeded(words)
		data := make([]byte, bytesNeeded)
		wordData := make([]uint64, words)

		var writer WordWriter
		writer.BeginWrite(data)

		for j := 0; j < words; j++ {
			w := rng.Uint64() & (uint64(1)<<wordBits - 1)
			wordData[j] = w
			writer.Write(w)
		}
		writer.Flush()

		var reader WordReader
		reader.BeginRead(data, bytesNeeded)

		for j := 0; j < words; j++ {
			got := reader.Read()
			require.Equal(t, wordData[j], got, "words=%d j=%d", words, j)
		}
	}
}

func TestWordCountMatchesBytesNeeded(t *testing.T) {
	for words := 0; words < 200; words++ {
		bytesNeeded := WordWriterBytesNeeded(words)
		require.Equal(t, words, WordCount(bytesNeeded))
	}
}

func TestByteReaderByteWriterRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(14))

	for i := 1; i < 200; i++ {
		bytesLen := i

		original := make([]byte, bytesLen+8)
		for k := 0; k < bytesLen; k += 8 {
			w := rng.Uint64()
			if rng.Intn(25) <= 3 {
				w = ^uint64(0)
			}
			end := k + 8
			if end > len(original) {
				end = len(original)
			}
			tmp := make([]byte, 8)
			WriteU64LE(tmp, w)
			copy(original[k:end], tmp)
		}

		var reader ByteReader
		reader.BeginRead(original, bytesLen)

		maxWords := MaxWords(bytesLen)
		maxBytes := MaxBytesNeeded(maxWords)
		recovered := make([]byte, maxBytes)

		var writer ByteWriter
		writer.BeginWrite(recovered)

		actualWords := 0
		for {
			word, result := reader.Read()
			if result == ReadEmpty {
				break
			}
			writer.Write(word)
			actualWords++
		}
		writtenBytes := writer.Flush()

		require.LessOrEqual(t, actualWords, maxWords)
		require.LessOrEqual(t, writtenBytes, maxBytes)
		require.Equal(t, original[:bytesLen], recovered[:bytesLen])
	}
}

// TestByteReaderAmbiguityScenario pins down the one input ByteReader must
// not get wrong: eight 0xFF bytes followed by a zero byte. The first 60
// bits of that run are all ones, which is the one pattern ByteReader
// cannot return as a plain chunk (see allOnes60/allOnes61): it reads the
// disambiguator bit immediately after and reports the true 61-bit value
// (all 61 bits of the 0xFF run are one, so the disambiguator is 1). The
// remaining 11 bits of input - three more ones from the run, then the
// zero byte - come back as a second, short value. ByteWriter must still
// reproduce the original nine bytes from those two values.
func TestByteReaderAmbiguityScenario(t *testing.T) {
	original := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

	var reader ByteReader
	reader.BeginRead(original, len(original))

	word, result := reader.Read()
	require.Equal(t, ReadSuccess, result)
	require.Equal(t, allOnes61, word)

	word2, result := reader.Read()
	require.Equal(t, ReadSuccess, result)
	require.Equal(t, uint64(7), word2)

	_, result = reader.Read()
	require.Equal(t, ReadEmpty, result)

	maxWords := MaxWords(len(original))
	recovered := make([]byte, MaxBytesNeeded(maxWords))

	var writer ByteWriter
	writer.BeginWrite(recovered)
	writer.Write(word)
	writer.Write(word2)
	writer.Flush()

	require.Equal(t, original, recovered[:len(original)])
}

// TestByteReaderAllOnes60RoundTrips pins the other half of the
// disambiguator: a chunk whose low 60 bits are one but whose 61st bit is
// zero must come back as allOnes60, not get confused with allOnes61.
func TestByteReaderAllOnes60RoundTrips(t *testing.T) {
	data := make([]byte, 8)
	WriteU64LE(data, allOnes60) // bit 60 and up are zero

	var reader ByteReader
	reader.BeginRead(data, len(data))

	word, result := reader.Read()
	require.Equal(t, ReadSuccess, result)
	require.Equal(t, allOnes60, word)

	recovered := make([]byte, MaxBytesNeeded(MaxWords(len(data))))
	var writer ByteWriter
	writer.BeginWrite(recovered)
	writer.Write(word)
	writer.Flush()

	require.Equal(t, data, recovered[:len(data)])
}
