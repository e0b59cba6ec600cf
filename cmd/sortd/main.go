package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/jfhansen/algorithms"
	"github.com/jfhansen/algorithms/sortsrv"
)

var (
	addr string
)

func init() {
	flag.StringVar(&addr, "addr", ":50051", "address to serve the sort service on")
}

func main() {
	flag.Parse()
	_ = flag.Set("logtostderr", "true")

	srv, err := sortsrv.New(addr)
	if err != nil {
		glog.Errorf("failed to start sort service on %s with error: %+v", addr, err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Infof("sort service %s listening on %s", sortsrv.ServiceName, srv.Addr())

	stopCh := algorithms.SetupSignalHandler()
	<-stopCh
	glog.Info("received interrupt, stopping sort service")
	srv.Stop()
	glog.Flush()
}
