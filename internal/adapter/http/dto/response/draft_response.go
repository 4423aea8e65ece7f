package response

import (
	"time"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase/draft"
)

type RecoveryPromptResponse struct {
	SavedAt     time.Time `json:"saved_at"`
	PatientName string    `json:"patient_name"`
	ItemCount   int       `json:"item_count"`
	Total       int64     `json:"total"`
}

// StartDraftResponse is returned by the startup check. When RecoveryRequired is
// set the session has not started and the client must answer Prompt.
type StartDraftResponse struct {
	RecoveryRequired bool                    `json:"recovery_required"`
	Prompt           *RecoveryPromptResponse `json:"prompt,omitempty"`
	Outcome          string                  `json:"outcome,omitempty"`
	Notice           string                  `json:"notice,omitempty"`
	Session          *draft.View             `json:"session,omitempty"`
}

func FromRecoveryPrompt(p draft.RecoveryPrompt) StartDraftResponse {
	return StartDraftResponse{
		RecoveryRequired: true,
		Prompt: &RecoveryPromptResponse{
			SavedAt:     p.SavedAt,
			PatientName: p.PatientName,
			ItemCount:   p.ItemCount,
			Total:       p.Total,
		},
	}
}

func FromStartResult(res draft.StartResult, v draft.View) StartDraftResponse {
	return StartDraftResponse{Outcome: string(res.Outcome), Notice: res.Notice, Session: &v}
}

type LineItemResponse struct {
	Item    entities.LineItem `json:"item"`
	Session draft.View        `json:"session"`
}

// SubmissionResponse is the confirmation summary shown after finalize.
type SubmissionResponse struct {
	Message     string            `json:"message"`
	WorkOrder   WorkOrderResponse `json:"work_order"`
	PatientName string            `json:"patient_name"`
	Total       int64             `json:"total"`
	ItemCount   int               `json:"item_count"`
	UnitCount   int               `json:"unit_count"`
}

func FromReceipt(r entities.SubmissionReceipt) SubmissionResponse {
	return SubmissionResponse{
		Message:     "Orden de trabajo creada",
		WorkOrder:   FromWorkOrder(r.WorkOrder),
		PatientName: r.PatientName,
		Total:       r.Total,
		ItemCount:   r.ItemCount,
		UnitCount:   r.UnitCount,
	}
}
