package seqregex

import "testing"

func TestInvalidPatternArgumentError(t *testing.T) {
	err := invalidArg("Repeat", "min", "must be >= 0")
	want := `seqregex: Repeat: invalid argument "min": must be >= 0`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
