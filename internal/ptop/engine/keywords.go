package engine

import (
	"strings"
)

// Keywords 업무 규칙 키워드 모음. 레거시 시트에서 넘어온 문자열 포함 판정을
// 한 곳에 모아 설정으로 교체할 수 있게 한다. 분류 체계가 바뀌면 코드가 아니라
// 이 목록을 고친다.
type Keywords struct {
	Pipe       []string // 파이프 분류 (m → 본 환산 대상)
	Canopy     []string // 차양 분류 (경간 배수 강제 1)
	Galvanized []string // 아연도 재질
	Stainless  []string // STS 재질
}

// DefaultKeywords 레거시 기본값
func DefaultKeywords() Keywords {
	return Keywords{
		Pipe:       []string{"PIPE", "파이프"},
		Canopy:     []string{"차양"},
		Galvanized: []string{"HGI", "아연도"},
		Stainless:  []string{"STS"},
	}
}

// normalized 빈 항목을 기본값으로 채움 (설정 일부만 준 경우)
func (k Keywords) normalized() Keywords {
	def := DefaultKeywords()
	if len(k.Pipe) == 0 {
		k.Pipe = def.Pipe
	}
	if len(k.Canopy) == 0 {
		k.Canopy = def.Canopy
	}
	if len(k.Galvanized) == 0 {
		k.Galvanized = def.Galvanized
	}
	if len(k.Stainless) == 0 {
		k.Stainless = def.Stainless
	}
	return k
}

// IsPipeCategory BOM 분류가 파이프 계열인지 (대소문자 무시 부분 일치)
func (k Keywords) IsPipeCategory(category string) bool {
	return containsAny(category, k.Pipe)
}

// IsCanopyCategory 모델 분류가 차양 계열인지
func (k Keywords) IsCanopyCategory(category string) bool {
	return containsAny(category, k.Canopy)
}

func containsAny(s string, keywords []string) bool {
	upper := strings.ToUpper(s)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(upper, strings.ToUpper(kw)) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return false
	}
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(substr))
}
