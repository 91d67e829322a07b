/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package main is the AWS Lambda entry point for the translation pipeline.
// Configuration comes from CIVICLINK_* environment variables.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/valpere/civiclink/internal"
	"github.com/valpere/civiclink/internal/config"
	"github.com/valpere/civiclink/internal/logger"
	"github.com/valpere/civiclink/internal/orchestrator"
)

// Request is the translation event payload.
type Request struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
	SourceLanguage string `json:"source_language,omitempty"`
}

// Response carries either the translation result fields or an error.
type Response struct {
	*internal.TranslationResult
	Error     string `json:"error,omitempty"`
	ErrorType string `json:"error_type,omitempty"`
}

type translatorFunc func(ctx context.Context, text, targetLang, sourceLang string) (*internal.TranslationResult, error)

var (
	initMu sync.Mutex
	orch   *orchestrator.Orchestrator
	log    = logger.New(os.Stderr, os.Getenv("CIVICLINK_LOG_VERBOSE") == "true")

	// buildOrchestrator is replaced in tests.
	buildOrchestrator = func() (*orchestrator.Orchestrator, error) {
		cfg, err := config.Load("")
		if err != nil {
			return nil, err
		}
		o, _, err := orchestrator.NewFromConfig(context.Background(), cfg, log)
		return o, err
	}
)

// loadOrchestrator builds the provider once per container. The client
// outlives any single invocation, so it is not tied to a request context.
// Only success is kept: a failed build is retried on the next invocation.
func loadOrchestrator() (*orchestrator.Orchestrator, error) {
	initMu.Lock()
	defer initMu.Unlock()

	if orch != nil {
		return orch, nil
	}
	o, err := buildOrchestrator()
	if err != nil {
		return nil, err
	}
	orch = o
	return orch, nil
}

func main() {
	lambda.Start(handleRequest)
}

func handleRequest(ctx context.Context, event json.RawMessage) (any, error) {
	// Warmup detection must come before any other processing.
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, warmup, nil)
	}

	o, err := loadOrchestrator()
	if err != nil {
		return errorResponse(err), nil
	}
	return handle(ctx, event, o.Translate)
}

func handle(ctx context.Context, event json.RawMessage, translate translatorFunc) (*Response, error) {
	var req Request
	if err := json.Unmarshal(event, &req); err != nil {
		return &Response{Error: "invalid request payload", ErrorType: "invalid_input"}, nil
	}

	result, err := translate(ctx, req.Text, req.TargetLanguage, req.SourceLanguage)
	if err != nil {
		return errorResponse(err), nil
	}
	return &Response{TranslationResult: result}, nil
}

func errorResponse(err error) *Response {
	resp := &Response{Error: err.Error(), ErrorType: "internal"}
	switch {
	case errors.Is(err, internal.ErrInvalidInput):
		resp.ErrorType = "invalid_input"
	case errors.Is(err, internal.ErrProviderUnavailable):
		resp.ErrorType = "provider_unavailable"
	default:
		log.Error("Translation failed: %v", err)
	}
	return resp
}
