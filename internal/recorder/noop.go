package recorder

import "ClientCourier/internal/model"

// NoopRecorder is used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *model.RunSummary) error   { return nil }
func (n *NoopRecorder) RecordDelivery(_ *DeliveryEvent) error { return nil }
func (n *NoopRecorder) RecordAccount(_ *AccountEvent) error   { return nil }
func (n *NoopRecorder) Close() error                          { return nil }
