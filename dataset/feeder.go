package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
)

// Feed carries one sequence read from a dataset file, or the error which
// terminated reading.
type Feed struct {
	Values []float64
	Err    error
}

// Feeder streams the sequences of a dataset file, the feed channel is closed
// after the last record.
type Feeder interface {
	GetFeed() chan *Feed
	Stop()
}

var _ Feeder = &fileFeeder{}

type fileFeeder struct {
	file *os.File
	feed chan *Feed
	stop chan struct{}
}

func (f *fileFeeder) GetFeed() chan *Feed {
	return f.feed
}

func (f *fileFeeder) retrieve() {
	defer close(f.feed)
	defer f.file.Close()
	r := NewReader(f.file)
	for n := 0; ; n++ {
		values, err := r.Next()
		if err == io.EOF {
			glog.Infof("processing dataset file %s completed, %d records", f.file.Name(), n)
			return
		}
		if err != nil {
			glog.Errorf("failed to read record %d with error: %+v", n, err)
		}
		select {
		case f.feed <- &Feed{Values: values, Err: err}:
		case <-f.stop:
			return
		}
		if err != nil {
			return
		}
	}
}

func (f *fileFeeder) Stop() {
	close(f.stop)
}

// NewFeeder opens a dataset file and starts reading it.
func NewFeeder(fn string) (Feeder, error) {
	file, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file %s with error: %+v", fn, err)
	}
	f := &fileFeeder{
		feed: make(chan *Feed),
		stop: make(chan struct{}),
		file: file,
	}
	go f.retrieve()

	return f, nil
}
