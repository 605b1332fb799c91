package output

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tjsl-project/tjslctl/internal/client/api"
)

// RenderError writes err to stderr in a form an operator can act on,
// recognising the client error taxonomy: connectivity problems get a hint
// about the base URL, validation failures list each offending field.
func (p *Printer) RenderError(err error) {
	var ve *api.ValidationError
	if errors.As(err, &ve) {
		p.Error("%s", ve.Message)
		fields := make([]string, 0, len(ve.Fields))
		for f := range ve.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			for _, msg := range ve.Fields[f] {
				fmt.Fprintf(p.err, "  %s: %s\n", f, msg)
			}
		}
		return
	}

	switch {
	case errors.Is(err, api.ErrUnauthorized):
		p.Error("not authenticated, run 'login' first")
	case errors.Is(err, api.ErrTimeout):
		p.Error("request timed out, the backend may be overloaded")
	case errors.Is(err, api.ErrUnreachable):
		p.Error("cannot reach the backend, check the API base URL")
	case errors.Is(err, api.ErrBadResponse):
		p.Error("unexpected reply from the backend, check the API base URL")
	default:
		p.Error("%s", err)
	}
}
