package terminal

import "testing"

func TestGetSize_Positive(t *testing.T) {
	width, height := GetSize()
	if width <= 0 || height <= 0 {
		t.Errorf("GetSize() = %d, %d, want positive", width, height)
	}
}

func TestFits(t *testing.T) {
	if !Fits(1, 1) {
		t.Error("Fits(1, 1) = false, want true")
	}
	if Fits(1<<20, 1) {
		t.Error("Fits(huge, 1) = true, want false")
	}
}
