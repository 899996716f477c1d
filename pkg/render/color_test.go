package render

import "testing"

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "0,255,0", want: ColorGreen},
		{in: " 255, 255 ,0 ", want: ColorYellow},
		{in: "12,34,56", want: RGB(12, 34, 56)},
		{in: "256,0,0", wantErr: true},
		{in: "-1,0,0", wantErr: true},
		{in: "1,2", wantErr: true},
		{in: "red", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRGB(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseRGB(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseRGB(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
