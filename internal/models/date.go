package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout Формат календарной даты в API и БД.
const DateLayout = "2006-01-02"

// Date Календарная дата без времени суток. Внутри всегда полночь UTC,
// поэтому арифметика по дням не зависит от перехода на летнее время.
type Date struct {
	time.Time
}

// NewDate Конструктор Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf Календарная дата момента t в его часовом поясе.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today Текущая календарная дата в указанном часовом поясе (nil - часовой пояс now).
func Today(now time.Time, loc *time.Location) Date {
	if loc != nil {
		now = now.In(loc)
	}

	return DateOf(now)
}

// ParseDate Разбор даты в формате YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("невалидная дата %q: %w", s, err)
	}

	return DateOf(t), nil
}

// AddDays Сдвиг на days календарных дней.
func (d Date) AddDays(days int) Date {
	y, m, day := d.Date()
	return NewDate(y, m, day+days)
}

// Before Дата d строго раньше other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan Реализация sql.Scanner: pgx отдает DATE как time.Time.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("невозможно преобразовать %T в Date", src)
	}
}

// Value Реализация driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// IsAccountActive Единое правило активности учетной записи:
// флаг активности установлен и срок действия не истек.
func IsAccountActive(isActive bool, expiresOn Date, today Date) bool {
	return isActive && !expiresOn.Before(today)
}
