package dataset

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestWriteRead(t *testing.T) {
	records := [][]float64{
		{9, 4, 6, 3, 8, 7, 1, 5, 2},
		{},
		{math.MaxFloat64, 1.0, -1.0},
		{-100, 99.5},
	}
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	for _, r := range records {
		if err := w.Write(r); err != nil {
			t.Fatalf("supposed to succeed but failed with error: %+v", err)
		}
	}
	r := NewReader(buf)
	for i, expect := range records {
		got, err := r.Next()
		if err != nil {
			t.Fatalf("record %d: supposed to succeed but failed with error: %+v", i, err)
		}
		if diff := deep.Equal(got, expect); diff != nil {
			t.Errorf("record %d: %+v", i, diff)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %+v", err)
	}
}

func TestReadErrors(t *testing.T) {
	notNumber, err := proto.Marshal(&structpb.ListValue{
		Values: []*structpb.Value{structpb.NewNumberValue(1), structpb.NewStringValue("a")},
	})
	if err != nil {
		t.Fatal(err)
	}
	withHdr := func(l uint32, b []byte) []byte {
		h := make([]byte, 4)
		binary.BigEndian.PutUint32(h, l)
		return append(h, b...)
	}
	tests := []struct {
		name  string
		input []byte
		err   error
	}{
		{
			name:  "truncated header",
			input: []byte{0, 0},
			err:   ErrShortRecord,
		},
		{
			name:  "truncated body",
			input: withHdr(10, []byte{1, 2}),
			err:   ErrShortRecord,
		},
		{
			name:  "too large",
			input: withHdr(MaxRecordLen+1, nil),
			err:   ErrRecordTooLarge,
		},
		{
			name:  "not a number",
			input: withHdr(uint32(len(notNumber)), notNumber),
			err:   ErrNotNumber,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(bytes.NewReader(tt.input)).Next()
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %+v, got %+v", tt.err, err)
			}
		})
	}
}

func TestFeeder(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "seq.bin")
	f, err := os.Create(fn)
	if err != nil {
		t.Fatal(err)
	}
	records := [][]float64{{3, 2, 1}, {5, 3, 5, 1, 5}}
	w := NewWriter(f)
	for _, r := range records {
		if err := w.Write(r); err != nil {
			t.Fatal(err)
		}
	}
	f.Close()

	feeder, err := NewFeeder(fn)
	if err != nil {
		t.Fatalf("supposed to succeed but failed with error: %+v", err)
	}
	var got [][]float64
	for feed := range feeder.GetFeed() {
		if feed.Err != nil {
			t.Fatalf("supposed to succeed but failed with error: %+v", feed.Err)
		}
		got = append(got, feed.Values)
	}
	if diff := deep.Equal(got, records); diff != nil {
		t.Errorf("%+v", diff)
	}
}

func TestFeederMissingFile(t *testing.T) {
	if _, err := NewFeeder(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Fatalf("supposed to fail but succeeded")
	}
}
