package signedtoken

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// Core Deterministic Encoding keeps the signed bytes stable for identical
// claims, so a re-minted token with the same fields signs the same payload.
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("signedtoken: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("signedtoken: CBOR decoder initialization failed: " + err.Error())
	}
}
