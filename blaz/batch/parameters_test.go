package batch

import (
	"log/slog"
	"testing"

	dicomcodec "github.com/cocosip/go-dicom/pkg/imaging/codec"
)

func TestNewParameters(t *testing.T) {
	params := NewParameters()

	if params.Workers != 0 {
		t.Errorf("Default Workers should be 0, got %d", params.Workers)
	}
	if params.Stride != 0 {
		t.Errorf("Default Stride should be 0, got %d", params.Stride)
	}
	if params.IsVerbose {
		t.Error("Default IsVerbose should be false")
	}
	if params.workers() < 1 {
		t.Errorf("effective workers = %d, want >= 1", params.workers())
	}
}

func TestParametersInterface(t *testing.T) {
	var _ dicomcodec.Parameters = (*Parameters)(nil)

	params := NewParameters()
	var genericParams dicomcodec.Parameters = params
	if genericParams == nil {
		t.Fatal("Parameters should implement codec.Parameters")
	}
}

func TestGetSetParameter(t *testing.T) {
	params := NewParameters()
	params.SetParameter("workers", 6)
	params.SetParameter("stride", 32)
	params.SetParameter("isVerbose", true)
	params.SetParameter("custom", "value")
	params.SetParameter("workers", "not an int")

	if got := params.GetParameter("workers"); got != 6 {
		t.Errorf("GetParameter(workers) = %v, want 6", got)
	}
	if got := params.GetParameter("stride"); got != 32 {
		t.Errorf("GetParameter(stride) = %v, want 32", got)
	}
	if got := params.GetParameter("isVerbose"); got != true {
		t.Errorf("GetParameter(isVerbose) = %v, want true", got)
	}
	if got := params.GetParameter("custom"); got != "value" {
		t.Errorf("GetParameter(custom) = %v, want value", got)
	}
	logger := slog.Default()
	params.SetParameter("logger", logger)
	if got := params.GetParameter("logger"); got != logger {
		t.Errorf("GetParameter(logger) = %v, want the default logger", got)
	}
	if got := params.GetParameter("missing"); got != nil {
		t.Errorf("GetParameter(missing) = %v, want nil", got)
	}
}

func TestValidate(t *testing.T) {
	params := &Parameters{}
	params.Workers = -3
	params.Stride = -1

	if err := params.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if params.Workers != 0 {
		t.Errorf("After validation, Workers = %d, want 0", params.Workers)
	}
	if params.Stride != 0 {
		t.Errorf("After validation, Stride = %d, want 0", params.Stride)
	}

	// zero-value parameters accept custom keys too
	params.SetParameter("custom", 1)
	if got := params.GetParameter("custom"); got != 1 {
		t.Errorf("GetParameter(custom) = %v, want 1", got)
	}
}
