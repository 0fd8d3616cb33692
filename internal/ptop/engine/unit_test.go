package engine

import (
	"testing"
)

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"㎡", "M2"},
		{"m²", "M2"},
		{"M²", "M2"},
		{"m2", "M2"},
		{"ea", "EA"},
		{"EA", "EA"},
		{"m", "M"},
		{"M", "M"},
		{"kg", "KG"},
		{" kg ", "KG"},
		{"", "EA"},
		{"   ", "EA"},
		{"box", "EA"},
	}
	for _, tt := range tests {
		if got := NormalizeUnit(tt.in); got != tt.want {
			t.Errorf("NormalizeUnit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSetWidthFromStandard(t *testing.T) {
	tests := []struct {
		standard string
		want     float64
	}{
		{"W2000", 2.0},
		{"w2000", 2.0},
		{"W-2400", 2.4},
		{"W_1800", 1.8},
		{"1500", 1.5},
		{"800", 0.8},
		{"DST-2000형", 2.0},
		{"", 2.0},         // fallback
		{"규격미상", 2.0}, // 숫자 없음 → fallback
	}
	for _, tt := range tests {
		if got := SetWidthFromStandard(tt.standard, DefaultSpanWidthM); got != tt.want {
			t.Errorf("SetWidthFromStandard(%q) = %v, want %v", tt.standard, got, tt.want)
		}
	}
}

func TestSetWidthFromStandardCustomFallback(t *testing.T) {
	if got := SetWidthFromStandard("", 3.5); got != 3.5 {
		t.Errorf("fallback not honored: got %v", got)
	}
}

func TestStockPieceCount(t *testing.T) {
	tests := []struct {
		required float64
		stock    float64
		want     int
	}{
		{0, 6.0, 0},
		{12.0, 6.0, 2},
		{12.1, 6.0, 3},
		{24.0, 6.0, 4},
		{5.9, 6.0, 1},
		{6.0, 6.0, 1},
		{1.0, 0, 1},   // 표준길이 0 → 기본 6.0m
		{13.0, -1, 3}, // 음수 표준길이도 기본값으로
		{-4.0, 6.0, 0},
	}
	for _, tt := range tests {
		if got := StockPieceCount(tt.required, tt.stock); got != tt.want {
			t.Errorf("StockPieceCount(%v, %v) = %d, want %d", tt.required, tt.stock, got, tt.want)
		}
	}
}

func TestFormatStockLength(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{6.0, "6.0"},
		{5.85, "5.85"},
		{12, "12.0"},
	}
	for _, tt := range tests {
		if got := formatStockLength(tt.in); got != tt.want {
			t.Errorf("formatStockLength(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
