package qerr

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransportErrorStringer(t *testing.T) {
	t.Run("with error message", func(t *testing.T) {
		err := &TransportError{
			ErrorCode:    FlowControlError,
			ErrorMessage: "foobar",
		}
		require.Equal(t, "FLOW_CONTROL_ERROR (local): foobar", err.Error())
	})

	t.Run("without error message", func(t *testing.T) {
		err := &TransportError{ErrorCode: FlowControlError}
		require.Equal(t, "FLOW_CONTROL_ERROR (local)", err.Error())
	})

	t.Run("with frame type", func(t *testing.T) {
		err := &TransportError{
			Remote:    true,
			ErrorCode: FlowControlError,
			FrameType: 0x1337,
		}
		require.Equal(t, "FLOW_CONTROL_ERROR (remote) (frame type: 0x1337)", err.Error())
	})
}

type myError int

var _ error = myError(0)

func (e myError) Error() string { return fmt.Sprintf("my error %d", e) }

func TestCryptoErrorUnwrapsErrors(t *testing.T) {
	var myErr myError
	err := NewLocalCryptoError(0x42, myError(1337))
	require.True(t, errors.As(err, &myErr))
	require.Equal(t, myError(1337), myErr)
}

func TestCryptoErrorStringRepresentation(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		myErr := myError(1337)
		err := NewLocalCryptoError(0x42, myErr)
		require.Equal(t, "CRYPTO_ERROR 0x142 (local): my error 1337", err.Error())
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewLocalCryptoError(0x2a, nil)
		require.Equal(t, "CRYPTO_ERROR 0x12a (local): tls: bad certificate", err.Error())
	})
}

func TestCryptoErrorDeterminism(t *testing.T) {
	// translating the same alert twice yields the same error code
	for alert := 0; alert < 256; alert++ {
		err1 := NewLocalCryptoError(uint8(alert), nil)
		err2 := NewLocalCryptoError(uint8(alert), nil)
		require.Equal(t, err1.ErrorCode, err2.ErrorCode)
		require.True(t, err1.ErrorCode.IsCryptoError())
	}
}

func TestTransportErrorIsNetErrClosed(t *testing.T) {
	require.ErrorIs(t, &TransportError{ErrorCode: InternalError}, net.ErrClosed)
}
