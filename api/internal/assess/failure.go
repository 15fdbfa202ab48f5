package assess

import "errors"

// FailureKind discriminates the anticipated ways an assessment can fail.
type FailureKind string

const (
	FailureMissingCredentials FailureKind = "missing_credentials"
	FailureDecode             FailureKind = "decode"
	FailureTransport          FailureKind = "transport"
	FailureExtract            FailureKind = "extract"
	FailureParse              FailureKind = "parse"
)

// Failure is an anticipated assessment failure. It is reported to clients as
// a degraded Result, not as an HTTP error.
type Failure struct {
	Kind    FailureKind
	Message string
	Detail  string
}

func (f *Failure) Error() string { return f.Message }

// Result converts the failure into the degraded result shape: unsafe, no
// detected food, the failure captured in the message.
func (f *Failure) Result() Result {
	return Result{
		Safe:        false,
		Message:     f.Message,
		Details:     f.Detail,
		FailureKind: f.Kind,
	}
}

// Normalize folds an anticipated failure into its degraded result. Any other
// error is returned unchanged for the caller's catch-all to handle.
func Normalize(res Result, err error) (Result, error) {
	if err == nil {
		return res, nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Result(), nil
	}
	return res, err
}
