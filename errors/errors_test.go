package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "truncated record",
			err:      TruncatedRecord(134, 1, 50, 30),
			contains: []string{"[decode]", "truncated_record", "offset 134", "record 1", "expected 50 bytes", "30 available"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindTruncatedHeader,
			},
			contains: []string{"[decode]", "truncated_header"},
		},
		{
			name:     "error with cause",
			err:      IOFailure(84, 0, errors.New("disk on fire")),
			contains: []string{"[decode]", "io_failure", "offset 84", "caused by", "disk on fire"},
		},
		{
			name:     "load error",
			err:      Load("open model.stl", errors.New("no such file")),
			contains: []string{"[load]", "io_failure", "open model.stl", "no such file"},
		},
		{
			name:     "count mismatch",
			err:      CountMismatch(134, 3, 1),
			contains: []string{"count_mismatch", "declares 3 triangles", "holds 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_LoadOmitsOffset(t *testing.T) {
	msg := Load("open x.stl", nil).Error()
	if strings.Contains(msg, "offset") {
		t.Errorf("load error should not report an offset: %q", msg)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := IOFailure(0, 0, cause)

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find cause through the chain")
	}
}

func TestError_Is(t *testing.T) {
	err := TruncatedRecord(84, 0, 50, 12)

	if !err.Is(ErrTruncatedRecord) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseLoad, Kind: KindTruncatedRecord}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(ErrTruncatedHeader) {
		t.Error("Is should not match different kind")
	}

	var wrapped error = err
	if !errors.Is(wrapped, ErrTruncatedRecord) {
		t.Error("errors.Is should match")
	}

	var target *Error
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As should find *Error")
	}
	if target.Available != 12 {
		t.Errorf("Available = %d, want 12", target.Available)
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindTruncatedRecord).
		Offset(184).
		Record(2).
		Short(50, 7).
		Decoded(2).
		Cause(cause).
		Detail("record %d cut short", 2).
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindTruncatedRecord {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTruncatedRecord)
	}
	if err.Offset != 184 {
		t.Errorf("Offset = %d, want 184", err.Offset)
	}
	if err.Record != 2 {
		t.Errorf("Record = %d, want 2", err.Record)
	}
	if err.Expected != 50 || err.Available != 7 {
		t.Errorf("Expected/Available = %d/%d, want 50/7", err.Expected, err.Available)
	}
	if err.Decoded != 2 {
		t.Errorf("Decoded = %d, want 2", err.Decoded)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "record 2 cut short" {
		t.Errorf("Detail = %q, want 'record 2 cut short'", err.Detail)
	}
}

func TestBuilder_DefaultRecord(t *testing.T) {
	err := New(PhaseDecode, KindIOFailure).Build()
	if err.Record != -1 {
		t.Errorf("Record = %d, want -1 outside the record section", err.Record)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("TruncatedHeader", func(t *testing.T) {
		err := TruncatedHeader(80, 79)
		if err.Kind != KindTruncatedHeader {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTruncatedHeader)
		}
		if err.Offset != 0 || err.Expected != 80 || err.Available != 79 {
			t.Errorf("got offset=%d expected=%d available=%d", err.Offset, err.Expected, err.Available)
		}
	})

	t.Run("TruncatedCount", func(t *testing.T) {
		err := TruncatedCount(80, 4, 2)
		if err.Kind != KindTruncatedCount {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTruncatedCount)
		}
		if err.Offset != 80 {
			t.Errorf("Offset = %d, want 80", err.Offset)
		}
	})

	t.Run("TruncatedRecord", func(t *testing.T) {
		err := TruncatedRecord(184, 2, 50, 30)
		if err.Decoded != 2 {
			t.Errorf("Decoded = %d, want 2", err.Decoded)
		}
	})

	t.Run("TrailingData", func(t *testing.T) {
		err := TrailingData(134, 1)
		if err.Kind != KindTrailingData {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTrailingData)
		}
	})

	t.Run("LimitExceeded", func(t *testing.T) {
		err := LimitExceeded(184, 2)
		if !strings.Contains(err.Detail, "2") {
			t.Errorf("Detail = %v, should contain the limit", err.Detail)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseDecode, "nil reader")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})
}

func TestError_DetailKeptVerbatim(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"load", Load("open 100%d.stl", nil), "open 100%d.stl"},
		{"invalid input", InvalidInput(PhaseDecode, "50% of a record"), "50% of a record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Detail != tt.want {
				t.Errorf("Detail = %q, want %q", tt.err.Detail, tt.want)
			}
			if !strings.Contains(tt.err.Error(), tt.want) {
				t.Errorf("Error() = %q, want it to contain %q", tt.err.Error(), tt.want)
			}
		})
	}
}
