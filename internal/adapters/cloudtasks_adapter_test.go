package adapters

import (
	"encoding/json"
	"testing"
	"time"

	"veo-dream-web/internal/domain"

	"cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudTasksAdapter_BuildCreateTaskRequest(t *testing.T) {
	a := &CloudTasksAdapter{
		parent:         "projects/p/locations/us-central1/queues/veo-queue",
		workerURL:      "https://dream.example.com/tasks/generate-video",
		audience:       "https://dream.example.com",
		serviceAccount: "tasks@p.iam.gserviceaccount.com",
	}
	payload := domain.GenerateTaskPayload{
		TaskID:      "task-1",
		Prompt:      "a dream",
		RequestedAt: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
	}

	req, err := a.buildCreateTaskRequest(payload)
	require.NoError(t, err)

	assert.Equal(t, a.parent, req.GetParent())
	httpReq := req.GetTask().GetHttpRequest()
	require.NotNil(t, httpReq)
	assert.Equal(t, cloudtaskspb.HttpMethod_POST, httpReq.GetHttpMethod())
	assert.Equal(t, a.workerURL, httpReq.GetUrl())
	assert.Equal(t, "application/json", httpReq.GetHeaders()["Content-Type"])
	assert.Equal(t, a.audience, httpReq.GetOidcToken().GetAudience())
	assert.Equal(t, a.serviceAccount, httpReq.GetOidcToken().GetServiceAccountEmail())

	var decoded domain.GenerateTaskPayload
	require.NoError(t, json.Unmarshal(httpReq.GetBody(), &decoded))
	assert.Equal(t, payload, decoded)
}
