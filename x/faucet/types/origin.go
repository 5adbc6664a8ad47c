package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

type OriginKind uint8

const (
	// OriginNone is an unsigned request.
	OriginNone OriginKind = iota
	// OriginSigned is a request signed by a single account.
	OriginSigned
	// OriginRoot is the chain's administrative origin. It has no account.
	OriginRoot
)

func (k OriginKind) String() string {
	switch k {
	case OriginNone:
		return "none"
	case OriginSigned:
		return "signed"
	case OriginRoot:
		return "root"
	default:
		return "unknown"
	}
}

// Origin is the verified source of a request. Signature verification has
// already happened by the time an Origin is built.
type Origin struct {
	kind   OriginKind
	signer sdk.AccAddress
}

func NoneOrigin() Origin { return Origin{kind: OriginNone} }

func RootOrigin() Origin { return Origin{kind: OriginRoot} }

func SignedOrigin(signer sdk.AccAddress) Origin {
	return Origin{kind: OriginSigned, signer: signer}
}

func (o Origin) Kind() OriginKind { return o.kind }

// EnsureSigned resolves the origin to the account that signed it.
func EnsureSigned(o Origin) (sdk.AccAddress, error) {
	if o.kind != OriginSigned || o.signer.Empty() {
		return nil, ErrBadOrigin.Wrapf("%s origin", o.kind)
	}
	return o.signer, nil
}
