package chrome

import (
	"errors"
	"log"

	"solar-chrome-service/internal/domain"
)

// FallbackErrorText is shown when a failure carries no usable message.
const FallbackErrorText = "오류가 발생했습니다."

// HandleAPIError is the terminal handler for failed upstream
// operations. It logs err tagged with op, unconditionally hides the
// loading overlay, and shows exactly one danger alert. The display
// text comes from the upstream {"error": ...} payload when present,
// else from err itself, else the fixed fallback. It never panics,
// including on a nil err.
func (s *Service) HandleAPIError(err error, op string) {
	log.Printf("api error op=%s err=%v", op, err)

	s.HideLoading()

	text := FallbackErrorText
	var re *domain.ResponseError
	matched := errors.As(err, &re)
	switch {
	case matched && re == nil:
		// a typed nil *ResponseError carries no usable message
	case matched && re.Message() != "":
		text = re.Message()
	case err != nil && err.Error() != "":
		text = err.Error()
	}

	s.ShowAlert(text, SeverityDanger)
}
