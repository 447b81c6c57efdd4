package activitylog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/activitylog"
)

func Test_OperationKind_String(t *testing.T) {
	tests := []struct {
		kind     activitylog.OperationKind
		expected string
	}{
		{activitylog.OperationAdd, "ADD"},
		{activitylog.OperationRemove, "REMOVE"},
		{activitylog.OperationUpdate, "UPDATE"},
		{activitylog.OperationBorrow, "BORROW"},
		{activitylog.OperationReturn, "RETURN"},
		{activitylog.OperationKind(0), "OperationKind(0)"},
		{activitylog.OperationKind(200), "OperationKind(200)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func Test_OperationKind_AllKindsAreValidAndParseable(t *testing.T) {
	for _, kind := range activitylog.AllOperationKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			assert.True(t, kind.IsValid())

			parsed, err := activitylog.ParseOperationKind(kind.String())
			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
		})
	}
}

func Test_ParseOperationKind_IgnoresCaseAndSurroundingSpace(t *testing.T) {
	// act
	kind, err := activitylog.ParseOperationKind("  borrow ")

	// assert
	require.NoError(t, err)
	assert.Equal(t, activitylog.OperationBorrow, kind)
}

func Test_ParseOperationKind_RejectsUnknownNames(t *testing.T) {
	// act
	_, err := activitylog.ParseOperationKind("LEND")

	// assert
	assert.ErrorIs(t, err, activitylog.ErrUnknownOperationKind)
}

func Test_OperationKind_MarshalText_RejectsInvalidKind(t *testing.T) {
	// act
	_, err := activitylog.OperationKind(0).MarshalText()

	// assert
	assert.ErrorIs(t, err, activitylog.ErrUnknownOperationKind)
}

func Test_OperationKind_UnmarshalText(t *testing.T) {
	// setup
	var kind activitylog.OperationKind

	// act
	err := kind.UnmarshalText([]byte("return"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, activitylog.OperationReturn, kind)
	assert.Error(t, kind.UnmarshalText([]byte("")))
}
