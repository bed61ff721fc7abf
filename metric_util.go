package tabletstore

import (
	"fmt"
	"strconv"
	"strings"

	tspb "cloud.google.com/go/tabletstore/apiv2/tabletstorepb"
	"github.com/golang/protobuf/proto"
	"google.golang.org/grpc/metadata"
)

// mdValues returns the values for key from the response header metadata,
// falling back to the trailer metadata. Unary responses carry the metrics
// metadata in headers, streaming responses in trailers.
func mdValues(headerMD, trailerMD *metadata.MD, key string) []string {
	if headerMD != nil {
		if vals := headerMD.Get(key); len(vals) > 0 {
			return vals
		}
	}
	if trailerMD != nil {
		if vals := trailerMD.Get(key); len(vals) > 0 {
			return vals
		}
	}
	return nil
}

// getServerLatency extracts the frontend latency from the server-timing
// response metadata.
func getServerLatency(headerMD *metadata.MD, trailerMD *metadata.MD) (float64, error) {
	serverTimingStr := ""
	if vals := mdValues(headerMD, trailerMD, serverTimingMDKey); len(vals) > 0 {
		serverTimingStr = vals[0]
	}

	millisStr := strings.TrimPrefix(serverTimingStr, serverTimingValPrefix)
	millis, err := strconv.ParseFloat(strings.TrimSpace(millisStr), 64)
	if !strings.HasPrefix(serverTimingStr, serverTimingValPrefix) || err != nil {
		return millis, err
	}
	return millis, nil
}

// getLocation extracts the cluster and zone that served the request from the
// binary ResponseParams response metadata.
func getLocation(headerMD *metadata.MD, trailerMD *metadata.MD) (string, string, error) {
	locationMetadata := mdValues(headerMD, trailerMD, locationMDKey)
	if len(locationMetadata) < 1 {
		return "", "", fmt.Errorf("Failed to get location metadata")
	}

	responseParams := &tspb.ResponseParams{}
	if err := proto.Unmarshal([]byte(locationMetadata[0]), responseParams); err != nil {
		return "", "", err
	}
	return responseParams.GetClusterId(), responseParams.GetZoneId(), nil
}
