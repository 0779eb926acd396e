package wire

import "github.com/shiwano/drivererr"

var (
	ErrDecodeFailure = drivererr.Define("drivererr/wire.decode_failure", drivererr.NoTrace())
	ErrCodeNotFound  = drivererr.Define("drivererr/wire.code_not_found", drivererr.NoTrace())
	ErrEncodeFailure = drivererr.Define("drivererr/wire.encode_failure", drivererr.NoTrace())
)
