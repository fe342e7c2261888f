//go:build lambda

package main

import (
	"context"
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

//go:embed testdata/catalog.json
var defaultCatalog []byte

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type optimizeRequest struct {
	// Catalog is a full catalog document; when omitted the embedded default
	// catalog is searched instead.
	Catalog               json.RawMessage `json:"catalog"`
	PriorityTripods       *int            `json:"priorityTripods"`
	DisablePriorityCutoff bool            `json:"disablePriorityCutoff"`
	DisableRedundancySkip bool            `json:"disableRedundancySkip"`
}

type optimizeResponse struct {
	Priority     int    `json:"priority"`
	Total        int    `json:"total"`
	Cost         int    `json:"cost"`
	TripodMask   uint64 `json:"tripodMask"`
	Items        []int  `json:"items"`
	Found        bool   `json:"found"`
	Improvements int    `json:"improvements"`
	TimeMs       int64  `json:"timeMs"`
	Detail       string `json:"detail"`
}

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errorResponse(400, fmt.Errorf("decode body: %w", err)), nil
		}
		body = string(decoded)
	}

	var req optimizeRequest
	if body != "" {
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			return errorResponse(400, fmt.Errorf("decode request: %w", err)), nil
		}
	}

	catalogJSON := defaultCatalog
	if len(req.Catalog) > 0 {
		catalogJSON = req.Catalog
	}
	cat, err := ParseCatalog(catalogJSON)
	if err != nil {
		return errorResponse(400, err), nil
	}

	cfg := DefaultConfig()
	if req.PriorityTripods != nil {
		cfg.PriorityTripods = *req.PriorityTripods
	}
	cfg.DisablePriorityCutoff = req.DisablePriorityCutoff
	cfg.DisableRedundancySkip = req.DisableRedundancySkip

	s := NewSearcher(cat, cfg)
	improvements := 0
	start := time.Now()
	best, found := s.Run(func(Solution) { improvements++ })
	elapsed := time.Since(start)

	resp := optimizeResponse{
		Priority:     best.Priority,
		Total:        best.Total,
		Cost:         best.Score.Cost,
		TripodMask:   best.Score.Tripods,
		Items:        best.Items,
		Found:        found,
		Improvements: improvements,
		TimeMs:       elapsed.Milliseconds(),
	}
	if found {
		resp.Detail = FormatSolution(cat, best)
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return errorResponse(500, err), nil
	}
	return events.LambdaFunctionURLResponse{
		StatusCode: 200,
		Headers:    jsonHeader,
		Body:       string(out),
	}, nil
}

func errorResponse(status int, err error) events.LambdaFunctionURLResponse {
	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	return events.LambdaFunctionURLResponse{
		StatusCode: status,
		Headers:    jsonHeader,
		Body:       string(body),
	}
}

func main() {
	lambda.Start(handler)
}
