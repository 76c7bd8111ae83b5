package negotiate_test

import (
	"context"
	"net"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/dep2p/go-dep2p-upgrade/pkg/protocol"
)

// MockInboundUpgrader is a hand-written gomock double for
// upgrade.InboundUpgrader, in the shape mockgen would generate.
type MockInboundUpgrader struct {
	ctrl     *gomock.Controller
	recorder *MockInboundUpgraderMockRecorder
}

type MockInboundUpgraderMockRecorder struct {
	mock *MockInboundUpgrader
}

func NewMockInboundUpgrader(ctrl *gomock.Controller) *MockInboundUpgrader {
	m := &MockInboundUpgrader{ctrl: ctrl}
	m.recorder = &MockInboundUpgraderMockRecorder{m}
	return m
}

func (m *MockInboundUpgrader) EXPECT() *MockInboundUpgraderMockRecorder {
	return m.recorder
}

func (m *MockInboundUpgrader) Protocols() []protocol.Protocol {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Protocols")
	ret0, _ := ret[0].([]protocol.Protocol)
	return ret0
}

func (mr *MockInboundUpgraderMockRecorder) Protocols() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Protocols", reflect.TypeOf((*MockInboundUpgrader)(nil).Protocols))
}

func (m *MockInboundUpgrader) UpgradeInbound(ctx context.Context, conn net.Conn, selected protocol.Protocol) (any, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpgradeInbound", ctx, conn, selected)
	ret0, _ := ret[0].(any)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockInboundUpgraderMockRecorder) UpgradeInbound(ctx, conn, selected any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpgradeInbound", reflect.TypeOf((*MockInboundUpgrader)(nil).UpgradeInbound), ctx, conn, selected)
}
