package engine

import (
	"fmt"
)

// Diagnostics 파이프라인이 수집하는 회복 가능한 진단.
// 자재/단가 미해결, 재질 미분류 등은 전체 전개를 중단시키지 않고 여기에 쌓인다.
type Diagnostics struct {
	Warnings          []string `json:"warnings,omitempty"`
	UnresolvedCount   int      `json:"unresolved_count"`   // 양쪽 자재표 모두에서 못 찾은 행 수
	UnclassifiedCount int      `json:"unclassified_count"` // 재질 분류 실패로 아연도 기본값을 쓴 행 수
	SkippedItems      []string `json:"skipped_items,omitempty"`
}

// Warnf 경고 추가
func (d *Diagnostics) Warnf(format string, args ...interface{}) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

// Skip 항목 건너뜀 기록 (경고 겸용)
func (d *Diagnostics) Skip(item, reason string) {
	d.SkippedItems = append(d.SkippedItems, item)
	d.Warnf("%s: %s", item, reason)
}

// HasWarnings 경고 존재 여부
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}
