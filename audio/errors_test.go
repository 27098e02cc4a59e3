package audio

import (
	"errors"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	messages := make(map[string]string)
	allErrors := map[string]error{
		"ErrUnsupportedBitDepth": ErrUnsupportedBitDepth,
		"ErrUnknownBuffer":       ErrUnknownBuffer,
		"ErrNilClip":             ErrNilClip,
		"ErrUnknownFormat":       ErrUnknownFormat,
	}

	for name, err := range allErrors {
		if err == nil {
			t.Fatalf("%s is nil", name)
		}
		msg := err.Error()
		if existing, found := messages[msg]; found {
			t.Errorf("%s has same message as %s: %q", name, existing, msg)
		}
		messages[msg] = name
	}
}

func TestErrUnsupportedBitDepth_Wrapping(t *testing.T) {
	t.Parallel()

	wrappedErr := errors.Join(ErrUnsupportedBitDepth, errors.New("additional context"))
	if !errors.Is(wrappedErr, ErrUnsupportedBitDepth) {
		t.Error("errors.Is() failed for wrapped ErrUnsupportedBitDepth")
	}

	fe := &FormatError{Ext: ".mp3"}
	if !errors.Is(fe, ErrUnknownFormat) {
		t.Error("errors.Is(FormatError, ErrUnknownFormat) = false")
	}
	if errors.Is(fe, ErrNilClip) {
		t.Error("errors.Is(FormatError, ErrNilClip) = true")
	}
}
