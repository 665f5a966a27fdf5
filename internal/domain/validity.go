package domain

import "time"

// ValidityPolicy は署名付き URL の有効期間 (分) の決め方を表します。
type ValidityPolicy struct {
	// Default は指定が無い (0 以下) 場合に使う値です。
	Default int
	Min     int
	Max     int
	// Clamp が false の場合は範囲補正を行わず、0 以下のみ Default に置き換えます。
	Clamp bool
}

// DefaultValidityPolicy は 15 分を既定とし、1〜50 分に丸めます。
var DefaultValidityPolicy = ValidityPolicy{Default: 15, Min: 1, Max: 50, Clamp: true}

// Minutes は要求された有効期間をポリシーに従って解決します。
func (p ValidityPolicy) Minutes(requested int) int {
	if !p.Clamp {
		if requested <= 0 {
			return p.Default
		}
		return requested
	}
	if requested < p.Min {
		return p.Min
	}
	if requested > p.Max {
		return p.Max
	}
	return requested
}

// Duration は Minutes を time.Duration で返します。
func (p ValidityPolicy) Duration(requested int) time.Duration {
	return time.Duration(p.Minutes(requested)) * time.Minute
}
