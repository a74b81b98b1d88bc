package rule

import "reflect"

// compare reports whether a and b are mutually orderable and, if so, their
// ordering: -1, 0, or 1. Numbers compare numerically, strings lexically;
// anything else (including a numeric/string mismatch) is not orderable.
func compare(a, b any) (ordered bool, cmp int) {
	if af, aNum := toFloat(a); aNum {
		if bf, bNum := toFloat(b); bNum {
			switch {
			case af < bf:
				return true, -1
			case af > bf:
				return true, 1
			default:
				return true, 0
			}
		}
		return false, 0
	}

	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		switch {
		case as < bs:
			return true, -1
		case as > bs:
			return true, 1
		default:
			return true, 0
		}
	}

	return false, 0
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// valuesEqual reports whether a and b represent the same value, tolerating
// mixed numeric Go types the way JSON decoding produces them.
func valuesEqual(a, b any) bool {
	if ordered, cmp := compare(a, b); ordered {
		return cmp == 0
	}
	return reflect.DeepEqual(a, b)
}
