package upgrade_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-dep2p-upgrade/pkg/protocol"
	"github.com/dep2p/go-dep2p-upgrade/pkg/upgrade"
)

func TestSelectInbound_DispatchesToOwningSide(t *testing.T) {
	pa := protocol.FromStatic("/a/1.0.0")
	pb := protocol.FromStatic("/b/1.0.0")

	s := upgrade.NewSelectInbound(
		upgrade.NewReady(pa, "left-value"),
		upgrade.NewReady(pb, "right-value"),
	)

	assert.ElementsMatch(t, []protocol.Protocol{pa, pb}, s.Protocols())

	v, err := s.UpgradeInbound(context.Background(), nil, pa)
	require.NoError(t, err)
	either, ok := v.(upgrade.Either)
	require.True(t, ok)
	assert.True(t, either.Left)
	assert.Equal(t, "left-value", either.Value)

	v, err = s.UpgradeInbound(context.Background(), nil, pb)
	require.NoError(t, err)
	either, ok = v.(upgrade.Either)
	require.True(t, ok)
	assert.False(t, either.Left)
	assert.Equal(t, "right-value", either.Value)
}

func TestSelectInbound_DuplicateNameIsLeftBiasedAndOfferedOnce(t *testing.T) {
	shared := protocol.FromStatic("/shared/1.0.0")

	s := upgrade.NewSelectInbound(
		upgrade.NewReady(shared, "left-value"),
		upgrade.NewReady(shared, "right-value"),
	)

	protocols := s.Protocols()
	require.Len(t, protocols, 1)
	assert.True(t, protocols[0].Equal(shared))

	v, err := s.UpgradeInbound(context.Background(), nil, shared)
	require.NoError(t, err)
	either := v.(upgrade.Either)
	assert.True(t, either.Left)
	assert.Equal(t, "left-value", either.Value)
}

func TestSelectOutbound_DispatchesToRightWhenLeftOffersNothing(t *testing.T) {
	pa := protocol.FromStatic("/a/1.0.0")

	s := upgrade.NewSelectOutbound(upgrade.Denied{}, upgrade.NewReady(pa, "v"))

	v, err := s.UpgradeOutbound(context.Background(), nil, pa)
	require.NoError(t, err)
	either := v.(upgrade.Either)
	assert.False(t, either.Left)
	assert.Equal(t, "v", either.Value)
}
