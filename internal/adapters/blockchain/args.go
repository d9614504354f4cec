package blockchain

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/phoswap/phodeploy/internal/domain"
)

// ConvertArgs converts string arguments into the Go values abi.Pack expects
// for inputs. Non-string values are passed through untouched.
func ConvertArgs(inputs abi.Arguments, args []any) ([]any, error) {
	if len(inputs) != len(args) {
		return nil, fmt.Errorf("argument count mismatch: expected %d, got %d", len(inputs), len(args))
	}

	converted := make([]any, len(args))
	for i, input := range inputs {
		value, err := convertArg(input.Type, args[i])
		if err != nil {
			name := input.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("argument %s (%s): %w", name, input.Type.String(), err)
		}
		converted[i] = value
	}
	return converted, nil
}

func convertArg(t abi.Type, arg any) (any, error) {
	s, ok := arg.(string)
	if !ok {
		return arg, nil
	}
	s = strings.TrimSpace(s)

	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid address %q", s)
		}
		return common.HexToAddress(s), nil

	case abi.UintTy:
		v, ok := domain.ParseInteger(s)
		if !ok || v.Sign() < 0 || v.BitLen() > t.Size {
			return nil, fmt.Errorf("invalid uint%d %q", t.Size, s)
		}
		return sizedUint(v, t.Size), nil

	case abi.IntTy:
		v, ok := domain.ParseInteger(s)
		if !ok || v.BitLen() > t.Size-1 {
			return nil, fmt.Errorf("invalid int%d %q", t.Size, s)
		}
		return sizedInt(v, t.Size), nil

	case abi.BoolTy:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid bool %q", s)
		}
		return v, nil

	case abi.StringTy:
		return s, nil

	case abi.BytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("invalid bytes %q: %w", s, err)
		}
		return b, nil

	case abi.FixedBytesTy:
		if t.Size != 32 {
			return nil, fmt.Errorf("bytes%d from string is not supported", t.Size)
		}
		b, err := hexutil.Decode(s)
		if err != nil || len(b) != 32 {
			return nil, fmt.Errorf("invalid bytes32 %q", s)
		}
		return common.BytesToHash(b), nil
	}

	return nil, fmt.Errorf("unsupported type for string conversion")
}

// sizedUint returns the Go type abi.Pack requires for a uint of the given size
func sizedUint(v *big.Int, size int) any {
	switch size {
	case 8:
		return uint8(v.Uint64())
	case 16:
		return uint16(v.Uint64())
	case 32:
		return uint32(v.Uint64())
	case 64:
		return v.Uint64()
	}
	return v
}

func sizedInt(v *big.Int, size int) any {
	switch size {
	case 8:
		return int8(v.Int64())
	case 16:
		return int16(v.Int64())
	case 32:
		return int32(v.Int64())
	case 64:
		return v.Int64()
	}
	return v
}
