package infrastructure

import (
	"context"
	"fmt"

	"prompt-optimizer/backend/internal/apperr"
	"prompt-optimizer/backend/internal/features/modelgateway/domain"
)

// UnavailableGenerator fails every call. It stands in when the provider has no credentials,
// so that everything except model calls keeps working.
type UnavailableGenerator struct {
	Reason string
}

func (u UnavailableGenerator) Generate(_ context.Context, req domain.GenerateRequest) (string, error) {
	return "", &apperr.GatewayError{
		Op:    "generate",
		Model: req.Model,
		Err:   fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, u.Reason),
	}
}
