package engine

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultSpanWidthM 규격에서 폭을 못 읽었을 때의 세트폭
	DefaultSpanWidthM = 2.0
	// DefaultStockLengthM 파이프 원자재 표준길이 (1본)
	DefaultStockLengthM = 6.0
)

// NormalizeUnit 단위 표기를 정규 단위 {EA, M, KG, M2} 로 통일한다.
// 빈 값/모르는 값은 EA.
func NormalizeUnit(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "EA"
	}
	switch strings.ToUpper(s) {
	case "EA":
		return "EA"
	case "M":
		return "M"
	case "KG":
		return "KG"
	case "M2", "㎡", "M²":
		return "M2"
	}
	return "EA"
}

var (
	// 폭 표기: 선택적 W 마커 + 선택적 구분자 + 3~5자리 숫자 (예: W2000, W-2400)
	widthMarkerPattern = regexp.MustCompile(`[WwＷ]?\s*[-_×x]?\s*([0-9]{3,5})`)
	// 느슨한 2차 패턴: 숫자만
	widthDigitsPattern = regexp.MustCompile(`[0-9]{3,5}`)
)

// SetWidthFromStandard 모델 규격 문자열에서 세트폭(m)을 추정한다.
// 10 초과 값은 mm 로 보고 1000 으로 나눠 소수 3자리 반올림, 이하는 m 그대로.
// 아무 숫자도 없으면 fallback. 입력이 이상해도 패닉 없이 fallback 으로 흡수한다.
func SetWidthFromStandard(standard string, fallback float64) float64 {
	s := strings.TrimSpace(standard)
	if s == "" {
		return fallback
	}
	if m := widthMarkerPattern.FindStringSubmatch(s); m != nil {
		if w, err := strconv.ParseFloat(m[1], 64); err == nil {
			return widthToMeters(w)
		}
	}
	if m := widthDigitsPattern.FindString(s); m != "" {
		if w, err := strconv.ParseFloat(m, 64); err == nil {
			return widthToMeters(w)
		}
	}
	return fallback
}

func widthToMeters(w float64) float64 {
	if w > 10 {
		return math.Round(w) / 1000
	}
	return w
}

// StockPieceCount 필요 길이를 표준길이 본 수로 올림 환산한다.
// 필요 길이 0 이하 → 0, 표준길이 0 이하 → 기본 6.0m 적용.
func StockPieceCount(requiredLengthM, stockLengthM float64) int {
	if requiredLengthM <= 0 {
		return 0
	}
	if stockLengthM <= 0 {
		stockLengthM = DefaultStockLengthM
	}
	return int(math.Ceil(requiredLengthM / stockLengthM))
}

// formatStockLength 파이프 길이 접미 표기. 정수 길이도 소수 한 자리를 유지한다
// (예: 6 → "6.0", 5.85 → "5.85"). 기존 단가표 규격 표기와의 호환 목적.
func formatStockLength(lengthM float64) string {
	s := strconv.FormatFloat(lengthM, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
