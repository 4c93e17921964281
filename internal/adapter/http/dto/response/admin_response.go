package response

import "towdispatch/internal/domain/entities"

type RepairResponse struct {
	Success bool                  `json:"success"`
	Report  entities.RepairReport `json:"report"`
}

type DrainResponse struct {
	Success bool                 `json:"success"`
	Report  entities.DrainReport `json:"report"`
}

type DeadLetterResponse struct {
	Success bool                    `json:"success"`
	Intents []entities.OutboxIntent `json:"intents"`
}

func FromDeadLetters(intents []entities.OutboxIntent) DeadLetterResponse {
	if intents == nil {
		intents = []entities.OutboxIntent{}
	}
	return DeadLetterResponse{Success: true, Intents: intents}
}

// PayoutResponse is the JSON form of a payout batch; the file itself is
// served with format=file.
type PayoutResponse struct {
	Success bool                 `json:"success"`
	Batch   entities.PayoutBatch `json:"batch"`
}

type VisitorStatsResponse struct {
	Success bool                  `json:"success"`
	Stats   entities.VisitorStats `json:"stats"`
}
