// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
ctsemulator launches the in-memory Cloud Tabletstore server on the given address.
*/
package main

import (
	"flag"
	"fmt"
	"log"

	"cloud.google.com/go/tabletstore/tstest"
	"google.golang.org/grpc"
)

var (
	host = flag.String("host", "localhost", "the address to bind to on the local machine")
	port = flag.Int("port", 9000, "the port number to bind to on the local machine")

	interceptors tstest.EmulatorInterceptorBuilder
)

const (
	maxMsgSize = 256 * 1024 * 1024 // 256 MiB
)

func init() {
	flag.Var(&interceptors.LatencyTargets, "inject-latency",
		"Latency to inject on a streaming method, e.g. ReadRows:p50:100ms. May be repeated.")
	flag.Var(&interceptors.GrpcErrorCodeTargets, "inject-error",
		"gRPC error code to inject on a streaming method, e.g. ReadRows:10%:14. May be repeated.")
}

func main() {
	grpc.EnableTracing = false
	flag.Parse()
	opts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(maxMsgSize),
		grpc.MaxSendMsgSize(maxMsgSize),
	}
	if len(interceptors.LatencyTargets) > 0 || len(interceptors.GrpcErrorCodeTargets) > 0 {
		opts = append(opts, interceptors.BuildStreamInterceptor())
	}

	srv, err := tstest.NewServer(fmt.Sprintf("%s:%d", *host, *port), opts...)
	if err != nil {
		log.Fatalf("Failed to start emulator: %v", err)
	}

	fmt.Printf("Cloud Tabletstore emulator running on %s\n", srv.Addr)
	select {}
}
