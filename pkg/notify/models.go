package notify

import "github.com/clipframe/clipframe/pkg/models"

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeJobUpdate is for messages carrying job progress and terminal state.
	MessageTypeJobUpdate MessageType = "jobUpdate"
	// MessageTypeWalletUpdate is for messages that update wallet balances.
	MessageTypeWalletUpdate MessageType = "walletUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// JobUpdatePayload is the payload for a jobUpdate message.
type JobUpdatePayload struct {
	JobID     string           `json:"job_id"`
	AccountID string           `json:"account_id"`
	Status    models.JobStatus `json:"status"`
	Progress  int32            `json:"progress"`
	Message   string           `json:"message"`
}

// WalletUpdatePayload is the payload for a walletUpdate message.
type WalletUpdatePayload struct {
	AccountID  string `json:"account_id"`
	Change     int64  `json:"change"`
	NewBalance int64  `json:"new_balance"`
}

// NewJobUpdate builds a jobUpdate message from a job record.
func NewJobUpdate(job *models.Job) Message {
	return Message{
		Type: MessageTypeJobUpdate,
		Payload: JobUpdatePayload{
			JobID:     job.Id,
			AccountID: job.AccountId,
			Status:    job.Status,
			Progress:  job.Progress,
			Message:   job.Message,
		},
	}
}

// NewWalletUpdate builds a walletUpdate message from a wallet and the signed
// amount that just changed it.
func NewWalletUpdate(wallet *models.Wallet, change int64) Message {
	return Message{
		Type: MessageTypeWalletUpdate,
		Payload: WalletUpdatePayload{
			AccountID:  wallet.AccountId,
			Change:     change,
			NewBalance: wallet.Balance(),
		},
	}
}
