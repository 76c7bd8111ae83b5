package upgrade_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dep2p/go-dep2p-upgrade/pkg/protocol"
	"github.com/dep2p/go-dep2p-upgrade/pkg/upgrade"
)

func TestDenied_OffersNothingAndAlwaysFails(t *testing.T) {
	d := upgrade.Denied{}
	assert.Empty(t, d.Protocols())

	_, err := d.UpgradeInbound(context.Background(), nil, protocol.FromStatic("/x/1.0.0"))
	assert.ErrorIs(t, err, upgrade.ErrDenied)

	_, err = d.UpgradeOutbound(context.Background(), nil, protocol.FromStatic("/x/1.0.0"))
	assert.ErrorIs(t, err, upgrade.ErrDenied)
}
