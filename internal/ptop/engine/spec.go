package engine

import (
	"regexp"
	"strings"
)

// 지름 기호 이형태 → Ø 로 통일. 입력 경로마다 다른 글자가 들어온다.
var specGlyphReplacer = strings.NewReplacer("∅", "Ø", "Φ", "Ø", "φ", "Ø")

// 치수 규격: <정수>*<정수>*<나머지(두께 등)>
var dimSpecPattern = regexp.MustCompile(`^([0-9]+)\*([0-9]+)\*(.+)$`)

// 길이 접미 구분 기호 (규격에 붙는 ×6.0m 류)
var crossSigns = []string{"×", "✕"}

// EquivalentSpec 두 규격 문자열의 동치 판정. 상류 데이터 입력이 치수 순서와
// 특수문자 표기에 일관성이 없어서 필요한 비교다. 판정 순서:
//  1. trim 후 정확 일치
//  2. 지름 기호 통일 + 대문자화 후 일치
//  3. A*B*T 꼴에서 꼬리(T)가 같고 앞 두 치수가 순서만 바뀐 경우
func EquivalentSpec(a, b string) bool {
	ac, bc := strings.TrimSpace(a), strings.TrimSpace(b)
	if ac == "" || bc == "" {
		return false
	}
	if ac == bc {
		return true
	}
	if normalizeSpecGlyphs(ac) == normalizeSpecGlyphs(bc) {
		return true
	}
	return equalSwappedDimensions(ac, bc)
}

func normalizeSpecGlyphs(spec string) string {
	return strings.ToUpper(specGlyphReplacer.Replace(spec))
}

func equalSwappedDimensions(a, b string) bool {
	am := dimSpecPattern.FindStringSubmatch(a)
	bm := dimSpecPattern.FindStringSubmatch(b)
	if am == nil || bm == nil {
		return false
	}
	if strings.TrimSpace(am[3]) != strings.TrimSpace(bm[3]) {
		return false
	}
	return (am[1] == bm[1] && am[2] == bm[2]) || (am[1] == bm[2] && am[2] == bm[1])
}

// TrimLengthSuffix 규격에서 첫 길이 접미 기호 이후를 잘라낸다.
// "40*40*1.5×6.0m" → "40*40*1.5". 비교와 표시 양쪽에서 접미 제거본을 쓴다.
func TrimLengthSuffix(spec string) string {
	for _, sign := range crossSigns {
		if i := strings.Index(spec, sign); i >= 0 {
			spec = spec[:i]
		}
	}
	return spec
}
