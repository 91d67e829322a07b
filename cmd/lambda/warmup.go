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
package main

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

const (
	// WarmupSource identifies scheduled warmup events.
	WarmupSource = "warmup"

	// WarmupDelay keeps this instance busy long enough for the
	// self-invocations to land on other instances.
	WarmupDelay = 75 * time.Millisecond
)

type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

type WarmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instances_warmed"`
}

type lambdaInvoker interface {
	Invoke(ctx context.Context, params *lambdasdk.InvokeInput, optFns ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error)
}

// IsWarmupEvent reports whether event is a warmup ping. Concurrency is
// optional and defaults to 0.
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var w struct {
		Source      string   `json:"source"`
		Concurrency *float64 `json:"concurrency"`
	}
	if err := json.Unmarshal(event, &w); err != nil || w.Source != WarmupSource {
		return nil, false
	}

	warmup := &WarmupEvent{Source: w.Source}
	if w.Concurrency != nil && *w.Concurrency > 0 {
		warmup.Concurrency = int(*w.Concurrency)
	}
	return warmup, true
}

// HandleWarmup answers a warmup ping and, when Concurrency > 0, invokes the
// function that many more times asynchronously. invoker may be nil, in which
// case a client is built from the default AWS configuration.
func HandleWarmup(ctx context.Context, warmup *WarmupEvent, invoker lambdaInvoker) (*WarmupResponse, error) {
	instancesWarmed := 1

	if warmup.Concurrency > 0 {
		if err := selfInvoke(ctx, invoker, warmup.Concurrency); err != nil {
			log.Warn("Warmup self-invoke failed: %v", err)
		} else {
			instancesWarmed += warmup.Concurrency
		}
	}

	time.Sleep(WarmupDelay)

	return &WarmupResponse{Status: "warm", InstancesWarmed: instancesWarmed}, nil
}

func selfInvoke(ctx context.Context, invoker lambdaInvoker, count int) error {
	if invoker == nil {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return err
		}
		invoker = lambdasdk.NewFromConfig(cfg)
	}

	// Children get concurrency 0 so they do not fan out again.
	payload, err := json.Marshal(WarmupEvent{Source: WarmupSource})
	if err != nil {
		return err
	}
	functionName := os.Getenv("AWS_LAMBDA_FUNCTION_NAME")

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := invoker.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return firstErr
}
