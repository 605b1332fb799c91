package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tjsl-project/tjslctl/internal/client/api"
)

func newTestPrinter() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errw := &bytes.Buffer{}
	return NewPrinterWithWriters(out, errw, false), out, errw
}

func TestPrinter_PlainOutput(t *testing.T) {
	p, out, errw := newTestPrinter()

	p.Print("hello %s", "world")
	p.Success("saved")
	p.Warning("careful")
	p.Error("boom")

	assert.Equal(t, "hello world\n[OK] saved\n", out.String())
	assert.Equal(t, "[WARN] careful\n[ERROR] boom\n", errw.String())
}

func TestPrinter_BoldDimPassThroughWithoutColors(t *testing.T) {
	p, _, _ := newTestPrinter()
	assert.Equal(t, "title", p.Bold("title"))
	assert.Equal(t, "hint", p.Dim("hint"))
}

func TestPrinter_StatusBadgePlain(t *testing.T) {
	p, _, _ := newTestPrinter()
	assert.Equal(t, "[published]", p.StatusBadge(true, "published"))
	assert.Equal(t, "[-]", p.StatusBadge(false, "published"))
}

func TestRenderError_Sentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unauthorized", api.ErrUnauthorized, "[ERROR] not authenticated, run 'login' first\n"},
		{"timeout", api.ErrTimeout, "[ERROR] request timed out, the backend may be overloaded\n"},
		{"unreachable", api.ErrUnreachable, "[ERROR] cannot reach the backend, check the API base URL\n"},
		{"bad response", api.ErrBadResponse, "[ERROR] unexpected reply from the backend, check the API base URL\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, errw := newTestPrinter()
			p.RenderError(tt.err)
			assert.Equal(t, tt.want, errw.String())
		})
	}
}

func TestRenderError_ValidationListsFields(t *testing.T) {
	p, _, errw := newTestPrinter()

	p.RenderError(&api.ValidationError{
		Message: "The given data was invalid.",
		Fields: map[string][]string{
			"title": {"The title field is required."},
			"date":  {"The date is not a valid date."},
		},
	})

	assert.Equal(t,
		"[ERROR] The given data was invalid.\n"+
			"  date: The date is not a valid date.\n"+
			"  title: The title field is required.\n",
		errw.String())
}

func TestRenderError_APIErrorMessage(t *testing.T) {
	p, _, errw := newTestPrinter()
	p.RenderError(&api.APIError{Status: 404, Message: "News not found"})
	assert.Contains(t, errw.String(), "News not found")
}
