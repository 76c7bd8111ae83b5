package upgrade_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-dep2p-upgrade/pkg/protocol"
	"github.com/dep2p/go-dep2p-upgrade/pkg/upgrade"
)

func TestReady_CompletesImmediately(t *testing.T) {
	p := protocol.FromStatic("/ready/1.0.0")
	r := upgrade.NewReady(p, "fixed-value")

	assert.Equal(t, []protocol.Protocol{p}, r.Protocols())

	v, err := r.UpgradeInbound(context.Background(), nil, p)
	require.NoError(t, err)
	assert.Equal(t, "fixed-value", v)

	v, err = r.UpgradeOutbound(context.Background(), nil, p)
	require.NoError(t, err)
	assert.Equal(t, "fixed-value", v)
}
