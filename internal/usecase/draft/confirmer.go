package draft

import (
	"context"
	"time"
)

// RecoveryPrompt describes the snapshot the user is asked to recover.
type RecoveryPrompt struct {
	SavedAt     time.Time
	PatientName string
	ItemCount   int
	Total       int64
}

// Confirmer answers the blocking "recover previous work?" question.
type Confirmer interface {
	ConfirmRecovery(ctx context.Context, p RecoveryPrompt) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, p RecoveryPrompt) bool

func (f ConfirmFunc) ConfirmRecovery(ctx context.Context, p RecoveryPrompt) bool {
	return f(ctx, p)
}

// Answer is a Confirmer that always gives the same answer, typically the one the
// client sent along with the request.
type Answer bool

func (a Answer) ConfirmRecovery(context.Context, RecoveryPrompt) bool {
	return bool(a)
}
