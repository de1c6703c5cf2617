package render

import "testing"

func TestEventConstructors(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		kind EventKind
		str  string
	}{
		{"key", KeyEvent(KeyUp), EventKeyDown, "KeyDown(up)"},
		{"motion", MotionEvent(10, 20), EventMouseMotion, "MouseMotion(10,20)"},
		{"button", ButtonEvent(MouseButtonLeft, 1, 2), EventMouseButtonDown, "MouseButtonDown(0,1,2)"},
		{"wheel", WheelEvent(-1), EventMouseWheel, "MouseWheel(-1)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.ev.Kind != tc.kind {
				t.Errorf("Expected kind %d, got %d", tc.kind, tc.ev.Kind)
			}
			if got := tc.ev.String(); got != tc.str {
				t.Errorf("Expected %q, got %q", tc.str, got)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	if KeyEscape.String() != "escape" {
		t.Errorf("Expected 'escape', got '%s'", KeyEscape.String())
	}
	if Key(999).String() != "key(999)" {
		t.Errorf("Expected 'key(999)', got '%s'", Key(999).String())
	}
}
