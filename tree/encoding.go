package tree

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

var (
	ErrInvalidLength  = errors.New("arion: invalid encoding length")
	ErrInvalidElement = errors.New("arion: invalid field element encoding")
)

// LevelSize returns the encoded size of a Level of the given width.
func LevelSize(width int) int {
	return width*fr.Bytes + 8
}

// BranchSize returns the encoded size of a Branch.
func BranchSize(depth, width int) int {
	return depth*LevelSize(width) + fr.Bytes
}

// AppendBinary appends the little-endian encodings of every element followed
// by the little-endian index.
func (l *Level) AppendBinary(buf []byte) ([]byte, error) {
	var enc [fr.Bytes]byte
	for i := range l.Elements {
		fr.LittleEndian.PutElement(&enc, l.Elements[i])
		buf = append(buf, enc[:]...)
	}
	return binary.LittleEndian.AppendUint64(buf, l.Index), nil
}

func (l *Level) MarshalBinary() ([]byte, error) {
	return l.AppendBinary(make([]byte, 0, LevelSize(len(l.Elements))))
}

// DecodeLevel parses a Level of the given width. The buffer must have the
// exact size.
func DecodeLevel(buf []byte, width int) (Level, error) {
	if len(buf) != LevelSize(width) {
		return Level{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(buf), LevelSize(width))
	}
	l := Level{Elements: make([]fr.Element, width)}
	for i := range l.Elements {
		e, err := decodeElement(buf[i*fr.Bytes:])
		if err != nil {
			return Level{}, fmt.Errorf("level element %d: %w", i, err)
		}
		l.Elements[i] = e
	}
	l.Index = binary.LittleEndian.Uint64(buf[width*fr.Bytes:])
	return l, nil
}

// AppendBinary appends every level encoding, leaf level first, followed by
// the root encoding.
func (b *Branch) AppendBinary(buf []byte) ([]byte, error) {
	var err error
	for i := range b.Path {
		if buf, err = b.Path[i].AppendBinary(buf); err != nil {
			return nil, err
		}
	}
	var enc [fr.Bytes]byte
	fr.LittleEndian.PutElement(&enc, b.Root)
	return append(buf, enc[:]...), nil
}

func (b *Branch) MarshalBinary() ([]byte, error) {
	return b.AppendBinary(make([]byte, 0, BranchSize(b.Depth(), b.Width())))
}

// DecodeBranch parses a Branch of the given depth and width.
func DecodeBranch(buf []byte, depth, width int) (*Branch, error) {
	if len(buf) != BranchSize(depth, width) {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(buf), BranchSize(depth, width))
	}
	size := LevelSize(width)
	b := &Branch{Path: make([]Level, depth)}
	for i := range b.Path {
		l, err := DecodeLevel(buf[i*size:(i+1)*size], width)
		if err != nil {
			return nil, fmt.Errorf("branch level %d: %w", i, err)
		}
		b.Path[i] = l
	}
	root, err := decodeElement(buf[depth*size:])
	if err != nil {
		return nil, fmt.Errorf("branch root: %w", err)
	}
	b.Root = root
	return b, nil
}

func decodeElement(buf []byte) (fr.Element, error) {
	e, err := fr.LittleEndian.Element((*[fr.Bytes]byte)(buf[:fr.Bytes]))
	if err != nil {
		return fr.Element{}, fmt.Errorf("%w: %v", ErrInvalidElement, err)
	}
	return e, nil
}
