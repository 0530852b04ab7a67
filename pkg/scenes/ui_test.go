package scenes

import "testing"

// TestButtonContains 点击区域包含内边距扩展
func TestButtonContains(t *testing.T) {
	b := Button{X: 100, Y: 100, W: 180, H: 44}

	tests := []struct {
		name   string
		mx, my int
		want   bool
	}{
		{"center", 190, 122, true},
		{"top-left corner", 100, 100, true},
		{"inside padding", 96, 96, true},
		{"outside padding", 80, 80, false},
		{"right of button", 300, 122, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.mx, tt.my); got != tt.want {
				t.Errorf("Contains(%d, %d): got %v, want %v", tt.mx, tt.my, got, tt.want)
			}
		})
	}
}

// TestTruncate 长字符串缩略显示
func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"https://a-very-long-phishing-url.example.com", 20, "https://a-very-lo..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d): got %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
