package payment

import "context"

// noopGateway accepts every capture without side effects. It backs
// cash-on-delivery, the stubbed card path, and tests.
type noopGateway struct{}

func NewNoopGateway() Gateway {
	return noopGateway{}
}

func (noopGateway) Capture(_ context.Context, req CaptureRequest) (CaptureResult, error) {
	return CaptureResult{Status: "accepted"}, nil
}
