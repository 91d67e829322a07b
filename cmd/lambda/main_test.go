package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valpere/civiclink/internal"
	"github.com/valpere/civiclink/internal/orchestrator"
	"github.com/valpere/civiclink/internal/translator"
)

type fakeInvoker struct {
	mu     sync.Mutex
	inputs []*lambdasdk.InvokeInput
	err    error
}

func (f *fakeInvoker) Invoke(ctx context.Context, in *lambdasdk.InvokeInput, _ ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)
	return &lambdasdk.InvokeOutput{}, f.err
}

func TestIsWarmupEvent(t *testing.T) {
	tests := []struct {
		name            string
		event           string
		wantOK          bool
		wantConcurrency int
	}{
		{name: "warmup", event: `{"source":"warmup"}`, wantOK: true},
		{name: "warmup with concurrency", event: `{"source":"warmup","concurrency":3}`, wantOK: true, wantConcurrency: 3},
		{name: "negative concurrency", event: `{"source":"warmup","concurrency":-2}`, wantOK: true},
		{name: "other source", event: `{"source":"aws.events"}`, wantOK: false},
		{name: "translation request", event: `{"text":"Hi.","target_language":"es"}`, wantOK: false},
		{name: "not json", event: `nope`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := IsWarmupEvent(json.RawMessage(tt.event))
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantConcurrency, w.Concurrency)
			}
		})
	}
}

func TestHandleWarmup(t *testing.T) {
	inv := &fakeInvoker{}
	resp, err := HandleWarmup(context.Background(), &WarmupEvent{Source: WarmupSource, Concurrency: 2}, inv)
	require.NoError(t, err)
	assert.Equal(t, "warm", resp.Status)
	assert.Equal(t, 3, resp.InstancesWarmed)

	require.Len(t, inv.inputs, 2)
	for _, in := range inv.inputs {
		assert.Equal(t, types.InvocationTypeEvent, in.InvocationType)
		var child WarmupEvent
		require.NoError(t, json.Unmarshal(in.Payload, &child))
		assert.Zero(t, child.Concurrency)
	}
}

func TestHandleWarmup_InvokeFailure(t *testing.T) {
	inv := &fakeInvoker{err: errors.New("throttled")}
	resp, err := HandleWarmup(context.Background(), &WarmupEvent{Source: WarmupSource, Concurrency: 2}, inv)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.InstancesWarmed)
}

func TestHandle(t *testing.T) {
	translate := func(ctx context.Context, text, target, source string) (*internal.TranslationResult, error) {
		if text == "" {
			return nil, fmt.Errorf("%w: text is empty", internal.ErrInvalidInput)
		}
		return &internal.TranslationResult{OriginalText: text, TranslatedText: "Hola.", TargetLanguage: target}, nil
	}

	resp, err := handle(context.Background(), json.RawMessage(`{"text":"Hello.","target_language":"es"}`), translate)
	require.NoError(t, err)
	require.NotNil(t, resp.TranslationResult)
	assert.Equal(t, "Hola.", resp.TranslatedText)
	assert.Empty(t, resp.Error)

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"translated_text":"Hola."`)
	assert.NotContains(t, string(out), `"error"`)

	resp, err = handle(context.Background(), json.RawMessage(`{"text":"","target_language":"es"}`), translate)
	require.NoError(t, err)
	assert.Nil(t, resp.TranslationResult)
	assert.Equal(t, "invalid_input", resp.ErrorType)

	resp, err = handle(context.Background(), json.RawMessage(`[1,2]`), translate)
	require.NoError(t, err)
	assert.Equal(t, "invalid_input", resp.ErrorType)
}

func TestErrorResponse(t *testing.T) {
	assert.Equal(t, "provider_unavailable",
		errorResponse(fmt.Errorf("%w: amazon", internal.ErrProviderUnavailable)).ErrorType)
	assert.Equal(t, "internal", errorResponse(errors.New("boom")).ErrorType)
}

func TestLoadOrchestrator_RetriesAfterFailure(t *testing.T) {
	orig := buildOrchestrator
	t.Cleanup(func() {
		buildOrchestrator = orig
		orch = nil
	})
	orch = nil

	built := orchestrator.New(translator.Func{Fn: func(ctx context.Context, text, target, source string) (string, error) {
		return text, nil
	}}, orchestrator.Config{})

	calls := 0
	buildOrchestrator = func() (*orchestrator.Orchestrator, error) {
		calls++
		if calls == 1 {
			return nil, fmt.Errorf("%w: credentials not found", internal.ErrProviderUnavailable)
		}
		return built, nil
	}

	_, err := loadOrchestrator()
	require.ErrorIs(t, err, internal.ErrProviderUnavailable)

	o, err := loadOrchestrator()
	require.NoError(t, err)
	assert.Same(t, built, o)

	o, err = loadOrchestrator()
	require.NoError(t, err)
	assert.Same(t, built, o)
	assert.Equal(t, 2, calls)
}
