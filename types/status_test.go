package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"merchantcore/apperror"
)

func TestTransactionStatus_Allows(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		status  TransactionStatus
		op      Operation
		allowed bool
	}{
		{name: "check is always allowed", status: StatusDeclined, op: OperationCheck, allowed: true},
		{name: "authorized allows capture", status: StatusAuthorized, op: OperationCapture, allowed: true},
		{name: "authorized allows void", status: StatusAuthorized, op: OperationVoid, allowed: true},
		{name: "authorized allows edit", status: StatusAuthorized, op: OperationEditAuthorization, allowed: true},
		{name: "authorized allows adjust", status: StatusAuthorized, op: OperationAdjustAuthorization, allowed: true},
		{name: "authorized allows reverse", status: StatusAuthorized, op: OperationReverse, allowed: true},
		{name: "captured allows refund", status: StatusCaptured, op: OperationRefund, allowed: true},
		{name: "captured allows reverse", status: StatusCaptured, op: OperationReverse, allowed: true},
		{name: "captured forbids capture", status: StatusCaptured, op: OperationCapture, allowed: false},
		{name: "captured forbids void", status: StatusCaptured, op: OperationVoid, allowed: false},
		{name: "pending allows void", status: StatusPending, op: OperationVoid, allowed: true},
		{name: "pending forbids capture", status: StatusPending, op: OperationCapture, allowed: false},
		{name: "processing allows void", status: StatusProcessing, op: OperationVoid, allowed: true},
		{name: "declined forbids refund", status: StatusDeclined, op: OperationRefund, allowed: false},
		{name: "failed forbids everything but check", status: StatusFailed, op: OperationVoid, allowed: false},
		{name: "voided forbids refund", status: StatusVoided, op: OperationRefund, allowed: false},
		{name: "refunded forbids refund", status: StatusRefunded, op: OperationRefund, allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.status.Allows(tc.op))
		})
	}
}

func TestNewTransactionStatus(t *testing.T) {
	t.Parallel()

	for _, status := range AvailableTransactionStatuses {
		parsed, err := NewTransactionStatus(string(status))
		assert.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := NewTransactionStatus("settled")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestNewReversalReason(t *testing.T) {
	t.Parallel()

	for _, reason := range AvailableReversalReasons {
		parsed, err := NewReversalReason(string(reason))
		assert.NoError(t, err)
		assert.Equal(t, reason, parsed)
	}

	_, err := NewReversalReason("because")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
