package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ptable/internal/store"
	"github.com/roach88/ptable/internal/testutil"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	data := map[string]string{"result": "success"}
	err := formatter.Success(data)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error("E005", "element not found: Xx", nil)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, "E005", resp.Error.Code)
	assert.Equal(t, "element not found: Xx", resp.Error.Message)
}

func TestOutputFormatter_JSONErrorWithDetails(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	details := map[string]string{"file": "elements.csv", "line": "42"}
	err := formatter.Error("E004", "column count does not match header", details)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.NotNil(t, resp.Error)
	assert.NotNil(t, resp.Error.Details)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Success("Average relative atomic mass: 2.51")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Average relative atomic mass: 2.51")
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: false,
	}

	err := formatter.Error("E001", "failed to load data", nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [E001]")
	assert.Contains(t, buf.String(), "failed to load data")
}

func TestOutputFormatter_TextErrorVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: true,
	}

	details := map[string]string{"file": "elements.csv"}
	err := formatter.Error("E001", "failed to load data", details)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [E001]")
	assert.Contains(t, buf.String(), "Details:")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	tests := []struct {
		name     string
		verbose bool
		wantLog bool
	}{
		{"verbose_enabled", true, true},
		{"verbose_disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			formatter := &OutputFormatter{
				Format:  "text",
				Writer:  buf,
				Verbose: tt.verbose,
			}

			formatter.VerboseLog("%d of %d records matched", 1, 2)

			if tt.wantLog {
				assert.Contains(t, buf.String(), "1 of 2 records matched")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestCLIResponse_JSON(t *testing.T) {
	resp := CLIResponse{
		Status: "ok",
		Data:   map[string]int{"records": 118},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded CLIResponse
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, "ok", decoded.Status)
}

func TestCLIError_JSON(t *testing.T) {
	cliErr := CLIError{
		Code:    "E008",
		Message: "unknown format",
		Details: []string{"csv"},
	}

	data, err := json.Marshal(cliErr)
	require.NoError(t, err)

	var decoded CLIError
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, "E008", decoded.Code)
	assert.Equal(t, "unknown format", decoded.Message)
}

func TestOutputFormatter_RecordsText(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, formatter.Records(testutil.SampleRecords()))
	assert.Equal(t, 2, strings.Count(buf.String(), "Element properties:"))
	assert.Contains(t, buf.String(), "Symbol: He\n")
}

func TestOutputFormatter_RecordsJSONKeepsFieldOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, formatter.Records(testutil.SampleRecords()[:1]))
	assert.Equal(t,
		`{"status":"ok","data":[{"Element":"Hydrogen","Symbol":"H","AtomicNumber":"1","AtomicMass":"1.008","Group":"1","Period":"1"}]}`+"\n",
		buf.String())
}

func TestOutputFormatter_RecordsJSONEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, formatter.Records(nil))
	assert.Equal(t, `{"status":"ok","data":[]}`+"\n", buf.String())
}

func TestOutputFormatter_VerboseLogUsesErrWriter(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: out, ErrWriter: errOut, Verbose: true}

	formatter.VerboseLog("loaded %d", 2)
	assert.Empty(t, out.String())
	assert.Equal(t, "loaded 2\n", errOut.String())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "failed to load data", errors.New("boom"))))
	assert.Equal(t, ExitFailure, GetExitCode(fmt.Errorf("wrapped: %w", NewExitError(ExitFailure, "element not found"))))
}

func TestExitError_Message(t *testing.T) {
	assert.Equal(t, "element not found", NewExitError(ExitFailure, "element not found").Error())
	err := WrapExitError(ExitCommandError, "failed to load data", errors.New("boom"))
	assert.Equal(t, "failed to load data: boom", err.Error())
	assert.EqualError(t, errors.Unwrap(err), "boom")
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeReadFailed, errorCode(&store.IOError{Path: "x", Op: "read", Err: errors.New("nope")}))
	assert.Equal(t, ErrCodeWriteFailed, errorCode(&store.IOError{Path: "x", Op: "write", Err: errors.New("nope")}))
	assert.Equal(t, ErrCodeFormat, errorCode(WrapExitError(ExitCommandError, "failed to load data", &store.FormatError{Message: "no header row"})))
	assert.Equal(t, ErrCodeGeneric, errorCode(errors.New("other")))
}
