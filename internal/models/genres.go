package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Genres is an unordered list of free-text genre tags stored as a JSON
// text column, so the same model works against Postgres and the sqlite
// driver used in tests.
type Genres []string

func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		g = Genres{}
	}
	return json.Marshal(g)
}

func (g *Genres) Scan(value interface{}) error {
	if value == nil {
		*g = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Genres", value)
	}

	if len(raw) == 0 {
		*g = nil
		return nil
	}
	return json.Unmarshal(raw, g)
}
