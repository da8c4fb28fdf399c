package clipboard

import (
	"errors"
	"testing"

	gerrors "github.com/zhubert/gigglegen/internal/errors"
)

func mockWrite(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := writeFunc
	writeFunc = fn
	t.Cleanup(func() { writeFunc = orig })
}

func TestWriteText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		writeErr error
		wantKind gerrors.Kind
		wantCall bool
	}{
		{"success", "What do you call a fish with no eyes? Fsh!", nil, gerrors.KindUnknown, true},
		{"native failure", "joke", errors.New("no display"), gerrors.KindIO, true},
		{"empty text", "", nil, gerrors.KindInvalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			called := false
			mockWrite(t, func(s string) error {
				called = true
				got = s
				return tt.writeErr
			})

			err := WriteText(tt.text)

			if called != tt.wantCall {
				t.Fatalf("native write called = %v, want %v", called, tt.wantCall)
			}
			if tt.wantKind == gerrors.KindUnknown {
				if err != nil {
					t.Fatalf("WriteText() error = %v", err)
				}
				if got != tt.text {
					t.Errorf("wrote %q, want %q", got, tt.text)
				}
				return
			}
			if !gerrors.Is(err, tt.wantKind) {
				t.Errorf("WriteText() error = %v, want kind %v", err, tt.wantKind)
			}
			if tt.writeErr != nil && !errors.Is(err, tt.writeErr) {
				t.Error("error should wrap the native failure")
			}
		})
	}
}
