package main

import (
	"strings"

	"github.com/posener/complete"

	"rcmate/internal/rc"
)

// newEndpointPredictor returns a predictor for the 'rc' command's endpoint
// argument. It suggests the well-known endpoints; anything else can still be
// typed in full.
func newEndpointPredictor() complete.Predictor {
	return &endpointPredictor{endpoints: []string{
		rc.EndpointNoop,
		rc.EndpointCoreQuit,
		rc.EndpointCoreStats,
		rc.EndpointCoreVer,
		rc.EndpointListRemote,
	}}
}

type endpointPredictor struct {
	endpoints []string
}

// Predict implements complete.Predictor.
func (p *endpointPredictor) Predict(args complete.Args) []string {
	var results []string
	for _, ep := range p.endpoints {
		if strings.HasPrefix(ep, args.Last) {
			results = append(results, ep)
		}
	}
	return results
}
