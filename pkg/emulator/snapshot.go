package emulator

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// Version is the snapshot format version written by Encode.
	Version uint8 = 1

	headerSize = 15
	// payloadSize is the length of the uncompressed payload: eight 8-bit
	// registers followed by SP and PC.
	payloadSize = 8 + 2*2
)

var magic = [4]byte{'S', 'M', '8', '3'}

// Compression is the payload encoding of a snapshot.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionBrotli
)

var (
	ErrBadMagic    = errors.New("snapshot: bad magic")
	ErrVersion     = errors.New("snapshot: unsupported version")
	ErrCompression = errors.New("snapshot: unsupported compression")
	ErrChecksum    = errors.New("snapshot: checksum mismatch")
	ErrTrailing    = errors.New("snapshot: trailing data after registers")
)

// Snapshot is a register file together with the model it was
// powered up as.
//
// The file layout is:
//
//	0   4  magic "SM83"
//	4   1  version
//	5   1  model
//	6   1  compression
//	7   8  xxhash64 of the uncompressed payload
//	15  n  payload
type Snapshot struct {
	Model     types.Model
	Registers cpu.Registers
}

type options struct {
	compression Compression
	quality     int
	log         log.Logger
}

// Opt configures Encode.
type Opt func(o *options)

// WithCompression compresses the payload with brotli at the given
// quality (0-11).
func WithCompression(quality int) Opt {
	return func(o *options) {
		o.compression = CompressionBrotli
		o.quality = quality
	}
}

// WithoutCompression stores the payload as is.
func WithoutCompression() Opt {
	return func(o *options) {
		o.compression = CompressionNone
	}
}

// WithLogger logs encode/decode activity to l.
func WithLogger(l log.Logger) Opt {
	return func(o *options) {
		o.log = l
	}
}

func newOptions(opts []Opt) *options {
	o := &options{
		compression: CompressionBrotli,
		quality:     brotli.DefaultCompression,
		log:         log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Encode writes the snapshot to w.
func (s *Snapshot) Encode(w io.Writer, opts ...Opt) error {
	o := newOptions(opts)
	if !s.Model.Valid() {
		return fmt.Errorf("snapshot: %w: %d", types.ErrUnknownModel, uint8(s.Model))
	}
	if o.compression == CompressionBrotli && (o.quality < brotli.BestSpeed || o.quality > brotli.BestCompression) {
		return fmt.Errorf("snapshot: brotli quality %d out of range", o.quality)
	}

	state := types.NewState()
	s.Registers.Save(state)
	raw := state.Bytes()

	header := make([]byte, headerSize)
	copy(header, magic[:])
	header[4] = Version
	header[5] = uint8(s.Model)
	header[6] = uint8(o.compression)
	binary.LittleEndian.PutUint64(header[7:], xxhash.Sum64(raw))

	payload := raw
	if o.compression == CompressionBrotli {
		var buf bytes.Buffer
		bw := brotli.NewWriterLevel(&buf, o.quality)
		if _, err := bw.Write(raw); err != nil {
			return fmt.Errorf("snapshot: compressing: %w", err)
		}
		if err := bw.Close(); err != nil {
			return fmt.Errorf("snapshot: compressing: %w", err)
		}
		payload = buf.Bytes()
	}

	if _, err := w.Write(header); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}

	o.log.Debugf("encoded %s snapshot: %d bytes of state, %d bytes of payload", s.Model, len(raw), len(payload))
	return nil
}

// Decode reads a snapshot written by Encode.
func Decode(r io.Reader, opts ...Opt) (*Snapshot, error) {
	o := newOptions(opts)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < headerSize || !bytes.Equal(data[:4], magic[:]) {
		return nil, ErrBadMagic
	}
	if data[4] != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, data[4])
	}

	model := types.Model(data[5])
	if !model.Valid() {
		return nil, fmt.Errorf("snapshot: %w: %d", types.ErrUnknownModel, data[5])
	}

	sum := binary.LittleEndian.Uint64(data[7:headerSize])
	payload := data[headerSize:]

	var raw []byte
	switch Compression(data[6]) {
	case CompressionNone:
		raw = payload
	case CompressionBrotli:
		// one byte past the payload is enough to reject oversized streams
		raw, err = io.ReadAll(io.LimitReader(brotli.NewReader(bytes.NewReader(payload)), payloadSize+1))
		if err != nil {
			return nil, fmt.Errorf("snapshot: decompressing: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrCompression, data[6])
	}
	if len(raw) > payloadSize {
		return nil, fmt.Errorf("%w: payload exceeds %d bytes", ErrTrailing, payloadSize)
	}

	if xxhash.Sum64(raw) != sum {
		return nil, ErrChecksum
	}

	s := &Snapshot{Model: model}
	state := types.StateFromBytes(raw)
	s.Registers.Load(state)
	if err := state.Err(); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if state.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailing, state.Remaining())
	}

	o.log.Debugf("decoded %s snapshot: %s", s.Model, s.Registers)
	return s, nil
}
