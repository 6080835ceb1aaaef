package narrator

import "errors"

var (
	ErrNarrationFailed = errors.New("narration failed")
)
