package ftd

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrEmptyPayload indicates the decoded archive yielded zero data rows.
var ErrEmptyPayload = eris.New("fails-to-deliver file contained no data rows")

// ErrInvalidCount indicates a non-positive result count. It is raised before
// any network access.
var ErrInvalidCount = eris.New("result count must be greater than zero")

// ExhaustedError indicates every candidate period failed to fetch. It carries
// the full list of attempted URLs.
type ExhaustedError struct {
	URLs []string
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("no fails-to-deliver file accessible within: [%s]", strings.Join(e.URLs, ", "))
}
