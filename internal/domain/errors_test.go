package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLookupError(t *testing.T) {
	err := fmt.Errorf("upgrade farm: %w", &ConfigLookupError{Network: "mainnet", Name: "farm"})

	var lookupErr *ConfigLookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "farm", lookupErr.Name)
	assert.Equal(t, "mainnet", lookupErr.Network)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `contract "farm" not found in registry for network "mainnet"`)
}

func TestExternalCallError(t *testing.T) {
	cause := errors.New("execution reverted")
	err := &ExternalCallError{Op: "deploy proxy", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "deploy proxy failed: execution reverted", err.Error())
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("permission denied")
	err := fmt.Errorf("save: %w", &PersistenceError{Op: "write", Path: "/tmp/contracts.json", Err: cause})

	var persistErr *PersistenceError
	require.True(t, errors.As(err, &persistErr))
	assert.Equal(t, "write", persistErr.Op)
	assert.ErrorIs(t, err, cause)
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "lowercase is checksummed",
			input: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
			want:  "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		},
		{
			name:  "already checksummed",
			input: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
			want:  "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		},
		{
			name:    "too short",
			input:   "0xA",
			wantErr: true,
		},
		{
			name:    "not hex",
			input:   "pho",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAddress(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUint256(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: DefaultPhoPerBlock, want: DefaultPhoPerBlock, ok: true},
		{in: "10031542", want: "10031542", ok: true},
		{in: "010031542", want: "10031542", ok: true},
		{in: "0100", want: "100", ok: true},
		{in: "0x10", want: "16", ok: true},
		{in: "0X10", want: "16", ok: true},
		{in: "0", want: "0", ok: true},
		{in: "1_000"},
		{in: "0b101"},
		{in: "0o17"},
		{in: "0x"},
		{in: "0x-1"},
		{in: "+5"},
		{in: "-1"},
		{in: ""},
		{in: "forty"},
		{in: "0x1" + strings.Repeat("0", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, ok := ParseUint256(tt.in)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, v.String())
			}
		})
	}
}

func TestParseInteger(t *testing.T) {
	v, ok := ParseInteger("-007")
	require.True(t, ok)
	assert.Equal(t, int64(-7), v.Int64())

	v, ok = ParseInteger("-0x10")
	require.True(t, ok)
	assert.Equal(t, int64(-16), v.Int64())

	_, ok = ParseInteger("--1")
	assert.False(t, ok)
}
