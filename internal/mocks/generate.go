// Package mocks provides test doubles for the client's ports.
//
// Most doubles here are hand-written function-field fakes: small, no
// codegen, good enough for scripting backend behavior in unit tests.
// The replica slot mock is generated with go.uber.org/mock (gomock)
// because tests assert fine-grained call expectations on it.
//
// To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	replica := mocks.NewMockReplicaSlot(ctrl)
//	replica.EXPECT().Write(gomock.Any(), "tok", gomock.Any()).Return(nil)
package mocks

// Generate mock for ReplicaSlot interface from internal/ports.
// This creates MockReplicaSlot with Write, Read and Clear.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=replica_slot_mock.go github.com/corpevents/eventdesk/internal/ports ReplicaSlot
