package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt Целое число, которое в JSON может прийти числом или строкой ("7", 7, 7.9 -> 7).
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw, isNull, err := flexRaw(data)
	if err != nil || isNull {
		return err
	}

	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*f = FlexInt(i)
		return nil
	}

	fl, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(fl) || math.IsInf(fl, 0) {
		return fmt.Errorf("значение %q не является целым числом", raw)
	}

	// float64(math.MaxInt64) равен 2^63 и в int64 уже не помещается
	if fl < math.MinInt64 || fl >= math.MaxInt64 {
		return fmt.Errorf("значение %q вне допустимого диапазона", raw)
	}

	*f = FlexInt(math.Trunc(fl))
	return nil
}

// FlexFloat Дробное число, которое в JSON может прийти числом или строкой.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	raw, isNull, err := flexRaw(data)
	if err != nil || isNull {
		return err
	}

	fl, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(fl) || math.IsInf(fl, 0) {
		return fmt.Errorf("значение %q не является числом", raw)
	}

	*f = FlexFloat(fl)
	return nil
}

// flexRaw Достает текст числа из JSON-значения, снимая кавычки у строки.
func flexRaw(data []byte) (string, bool, error) {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return "", true, nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		raw = strings.TrimSpace(s)
	}

	if raw == "" {
		return "", false, fmt.Errorf("пустое числовое значение")
	}

	return raw, false, nil
}
