package domain

import "testing"

func TestNewStyle(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Style
		wantErr bool
	}{
		{name: "compact", value: "compact", want: StyleCompact},
		{name: "fullscreen", value: "fullscreen", want: StyleFullscreen},
		{name: "page", value: "page", want: StylePage},
		{name: "unknown", value: "modal", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStyle(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewStyle() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("NewStyle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultStyleFor(t *testing.T) {
	if got := DefaultStyleFor(ModePage); got != StylePage {
		t.Errorf("DefaultStyleFor(page) = %v, want %v", got, StylePage)
	}
	if got := DefaultStyleFor(ModeSequential); got != StyleCompact {
		t.Errorf("DefaultStyleFor(sequential) = %v, want %v", got, StyleCompact)
	}
}
