package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeCampaignDispatch = "campaign:dispatch"
	TypeCampaignPromote  = "campaign:promote"
)

// Queue names
const (
	QueueHigh    = "high"
	QueueDefault = "default"
)

// CampaignDispatchPayload identifies a campaign whose notifications should be fanned out
type CampaignDispatchPayload struct {
	CampaignID string `json:"campaign_id"`
	BusinessID string `json:"business_id"`
}

// NewCampaignDispatchTask creates a dispatch task. The task id is derived from the campaign
// so repeated triggers for the same campaign collapse into one queued task.
func NewCampaignDispatchTask(payload CampaignDispatchPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCampaignDispatch, data,
		asynq.Queue(QueueHigh),
		asynq.MaxRetry(5),
		asynq.TaskID(fmt.Sprintf("dispatch:%s", payload.CampaignID)),
		asynq.Retention(24*time.Hour),
	), nil
}

// CampaignPromotePayload bounds one promotion sweep
type CampaignPromotePayload struct {
	Limit int `json:"limit"`
}

// NewCampaignPromoteTask creates a promotion sweep task
func NewCampaignPromoteTask(payload CampaignPromotePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCampaignPromote, data, asynq.Queue(QueueDefault), asynq.MaxRetry(1)), nil
}
