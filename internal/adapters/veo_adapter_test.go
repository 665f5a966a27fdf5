package adapters

import (
	"errors"
	"testing"

	"veo-dream-web/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestJobFromOperation_Pending(t *testing.T) {
	job, err := jobFromOperation(&genai.GenerateVideosOperation{
		Name:     "projects/p/locations/us-central1/publishers/google/models/veo/operations/1",
		Metadata: map[string]any{"state": "RUNNING"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusPending, job.Status)
	assert.Equal(t, "RUNNING", job.State)
	assert.False(t, job.Done())
}

func TestJobFromOperation_Succeeded(t *testing.T) {
	job, err := jobFromOperation(&genai.GenerateVideosOperation{
		Name: "operations/1",
		Done: true,
		Response: &genai.GenerateVideosResponse{
			GeneratedVideos: []*genai.GeneratedVideo{
				{Video: &genai.Video{URI: "gs://b/v.mp4"}},
				{Video: &genai.Video{URI: "gs://b/other.mp4"}},
			},
		},
	})

	require.NoError(t, err)
	assert.True(t, job.Done())
	assert.Equal(t, "gs://b/v.mp4", job.ResultURI)
	assert.Empty(t, job.Error)
}

func TestJobFromOperation_Failed(t *testing.T) {
	job, err := jobFromOperation(&genai.GenerateVideosOperation{
		Name:  "operations/1",
		Done:  true,
		Error: map[string]any{"code": float64(8), "message": "quota exceeded"},
	})

	require.NoError(t, err)
	assert.True(t, job.Failed())
	assert.Equal(t, "quota exceeded", job.Error)
	assert.Empty(t, job.ResultURI)
}

func TestJobFromOperation_NoVideo(t *testing.T) {
	tests := []struct {
		name string
		op   *genai.GenerateVideosOperation
	}{
		{name: "nil response", op: &genai.GenerateVideosOperation{Name: "op", Done: true}},
		{name: "empty list", op: &genai.GenerateVideosOperation{Name: "op", Done: true, Response: &genai.GenerateVideosResponse{}}},
		{name: "missing uri", op: &genai.GenerateVideosOperation{Name: "op", Done: true, Response: &genai.GenerateVideosResponse{
			GeneratedVideos: []*genai.GeneratedVideo{{Video: &genai.Video{}}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jobFromOperation(tt.op)
			assert.ErrorIs(t, err, domain.ErrMalformedLocation)
		})
	}
}

type statusPayload struct{ msg string }

func (s statusPayload) GetMessage() string { return s.msg }

func TestOperationErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    string
	}{
		{name: "nil", payload: nil, want: ""},
		{name: "mapping with message", payload: map[string]any{"message": "quota exceeded"}, want: "quota exceeded"},
		{name: "mapping without message", payload: map[string]any{"code": 3}, want: "map[code:3]"},
		{name: "structured object", payload: statusPayload{msg: "prompt blocked"}, want: "prompt blocked"},
		{name: "error value", payload: errors.New("internal"), want: "internal"},
		{name: "plain string", payload: "deadline exceeded", want: "deadline exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, operationErrorMessage(tt.payload))
		})
	}
}

func TestMetadataState(t *testing.T) {
	assert.Equal(t, "", metadataState(nil))
	assert.Equal(t, "RUNNING", metadataState(map[string]any{"state": "RUNNING"}))
	assert.Equal(t, "SUCCEEDED", metadataState(map[string]any{"state": map[string]any{"name": "SUCCEEDED"}}))
}
