package commands

import (
	"testing"

	"github.com/fivetwenty-io/hapi/internal/constants"
	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigPairs(t *testing.T) {
	t.Parallel()

	config, err := parseConfigPairs([]string{"version=16", "fork=other-db", "empty="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"version": "16", "fork": "other-db", "empty": ""}, config)

	config, err = parseConfigPairs(nil)
	require.NoError(t, err)
	assert.Empty(t, config)

	_, err = parseConfigPairs([]string{"novalue"})
	require.ErrorIs(t, err, ErrInvalidConfigPair)

	_, err = parseConfigPairs([]string{"=value"})
	require.ErrorIs(t, err, ErrInvalidConfigPair)
}

func TestParsePortRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		from, to int
		wantErr  bool
	}{
		{input: "443", from: 443, to: 443},
		{input: "80-443", from: 80, to: 443},
		{input: "0-65535", from: 0, to: 65535},
		{input: "443-80", wantErr: true},
		{input: "http", wantErr: true},
		{input: "80-", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			from, to, err := parsePortRange(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPortRange)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestParseOutboundRule(t *testing.T) {
	t.Parallel()

	rule, err := parseOutboundRule("10.0.0.0/8:tcp:80-443")
	require.NoError(t, err)
	assert.Equal(t, heroku.OutboundRule{Target: "10.0.0.0/8", Protocol: "tcp", FromPort: 80, ToPort: 443}, rule)

	rule, err = parseOutboundRule("2001:db8::/32:udp:53")
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::/32", rule.Target)
	assert.Equal(t, "udp", rule.Protocol)
	assert.Equal(t, 53, rule.FromPort)

	_, err = parseOutboundRule("10.0.0.0/8")
	require.ErrorIs(t, err, ErrInvalidOutboundRule)

	_, err = parseOutboundRule("tcp:443")
	require.ErrorIs(t, err, ErrInvalidOutboundRule)
}

func TestMaskToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constants.NotAvailable, maskToken(""))
	assert.Equal(t, "***", maskToken("abcd"))
	assert.Equal(t, "0123***", maskToken("0123456789"))
}

func TestFormatting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constants.NotAvailable, formatBytes(nil))
	assert.Equal(t, "512 B", formatBytes(heroku.Int(512)))
	assert.Equal(t, "1.5 KB", formatBytes(heroku.Int(1536)))
	assert.Equal(t, "2.0 MB", formatBytes(heroku.Int(2*1024*1024)))

	assert.Equal(t, constants.NotAvailable, valueOr(nil))
	assert.Equal(t, constants.NotAvailable, valueOr(heroku.String("")))
	assert.Equal(t, "x", valueOr(heroku.String("x")))

	assert.Equal(t, constants.NotAvailable, nameOr(nil))
	assert.Equal(t, "id-1", nameOr(&heroku.Reference{ID: "id-1"}))
	assert.Equal(t, "web", nameOr(&heroku.Reference{ID: "id-1", Name: "web"}))

	assert.Equal(t, Yes, yesNo(true))
	assert.Equal(t, No, yesNo(false))
}
