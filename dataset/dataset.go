package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// MaxRecordLen limits the size of a single encoded sequence
	MaxRecordLen = 64 * 1024 * 1024
	recordHdrLen = 4
)

var (
	ErrRecordTooLarge = errors.New("record exceeds maximum length")
	ErrNotNumber      = errors.New("list value is not a number")
	ErrShortRecord    = errors.New("truncated record")
)

// Encode returns the protobuf ListValue encoding of a sequence.
func Encode(values []float64) ([]byte, error) {
	return proto.Marshal(ToListValue(values))
}

// Decode parses a protobuf ListValue of numbers.
func Decode(b []byte) ([]float64, error) {
	lv := &structpb.ListValue{}
	if err := proto.Unmarshal(b, lv); err != nil {
		return nil, err
	}
	return FromListValue(lv)
}

func ToListValue(values []float64) *structpb.ListValue {
	lv := &structpb.ListValue{
		Values: make([]*structpb.Value, len(values)),
	}
	for i, v := range values {
		lv.Values[i] = structpb.NewNumberValue(v)
	}
	return lv
}

func FromListValue(lv *structpb.ListValue) ([]float64, error) {
	values := make([]float64, len(lv.GetValues()))
	for i, v := range lv.GetValues() {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, fmt.Errorf("%w: element %d", ErrNotNumber, i)
		}
		values[i] = n.NumberValue
	}
	return values, nil
}

// Writer writes length prefixed sequence records.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(values []float64) error {
	b, err := Encode(values)
	if err != nil {
		return err
	}
	if len(b) > MaxRecordLen {
		return fmt.Errorf("%w: %d bytes", ErrRecordTooLarge, len(b))
	}
	lb := make([]byte, recordHdrLen)
	binary.BigEndian.PutUint32(lb, uint32(len(b)))
	if _, err := w.w.Write(lb); err != nil {
		return err
	}
	_, err = w.w.Write(b)
	return err
}

// Reader reads records written by Writer.
type Reader struct {
	r io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next returns the next sequence, io.EOF when there are no more records.
func (r *Reader) Next() ([]float64, error) {
	lb := make([]byte, recordHdrLen)
	if _, err := io.ReadFull(r.r, lb); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: length of the record", ErrShortRecord)
		}
		return nil, err
	}
	l := binary.BigEndian.Uint32(lb)
	if l > MaxRecordLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrRecordTooLarge, l)
	}
	b := make([]byte, l)
	if _, err := io.ReadFull(r.r, b); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: expected %d bytes", ErrShortRecord, l)
		}
		return nil, err
	}
	return Decode(b)
}
